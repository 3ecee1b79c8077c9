package validation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hance08/bankist/internal/utils"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// ValidateUsername checks the shape of a typed username. Whether the account
// exists is decided by the service.
func ValidateUsername(s string) error {
	name := strings.TrimSpace(s)
	if name == "" {
		return fmt.Errorf("username can't be empty")
	}
	if strings.ContainsFunc(name, func(r rune) bool { return r == ' ' || r == '\t' }) {
		return fmt.Errorf("username cannot contain spaces")
	}
	return nil
}

// ParsePIN reads a numeric PIN.
func ParsePIN(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("pin can't be empty")
	}
	pin, err := strconv.Atoi(s)
	if err != nil || pin < 0 {
		return 0, fmt.Errorf("pin must be a number")
	}
	return pin, nil
}

func ValidatePIN(s string) error {
	_, err := ParsePIN(s)
	return err
}

// ValidateAmount only checks that the input is a number. Sign and balance
// rules belong to the operation receiving it.
func ValidateAmount(s string) error {
	_, err := utils.ParseAmount(s)
	return err
}

// ValidateCurrency validates a currency code. Empty means "use the default".
func ValidateCurrency(s string) error {
	code := strings.TrimSpace(strings.ToUpper(s))
	if code == "" {
		return nil
	}
	if len(code) != 3 {
		return fmt.Errorf("currency code must be 3 characters (e.g. USD)")
	}
	if _, err := currency.ParseISO(code); err != nil {
		return fmt.Errorf("unknown currency code '%s'", code)
	}
	return nil
}

// ValidateLocale validates a BCP 47 locale tag such as "pt-PT".
func ValidateLocale(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("locale can't be empty")
	}
	if _, err := language.Parse(s); err != nil {
		return fmt.Errorf("invalid locale '%s': %w", s, err)
	}
	return nil
}
