package utils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount reads a plain decimal amount such as "150", "150.5" or "-20".
// Group separators and currency symbols are not accepted.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	s := strings.TrimSpace(amountStr)
	if s == "" {
		return decimal.Zero, fmt.Errorf("amount is required")
	}

	if strings.Count(s, ".") > 1 || strings.ContainsAny(s, "eE") {
		return decimal.Zero, fmt.Errorf("invalid amount format: %s", amountStr)
	}

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount: %s", amountStr)
	}
	return amount, nil
}

// FormatPlain renders amount with two decimals and no grouping, for logs and
// non-interactive output.
func FormatPlain(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
