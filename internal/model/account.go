package model

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Account is a customer ledger. Balance is never stored; it is derived from
// Movements by the ledger package.
type Account struct {
	Owner        string
	Username     string
	PIN          int
	Movements    []Movement
	InterestRate decimal.Decimal // percent, applied per deposit
	Currency     string          // ISO 4217
	Locale       string          // BCP 47
}

// FirstName returns the first space-delimited token of the owner's name.
func (a *Account) FirstName() string {
	first, _, _ := strings.Cut(strings.TrimSpace(a.Owner), " ")
	return first
}

// Clone returns a deep copy of the account.
func (a *Account) Clone() *Account {
	cp := *a
	cp.Movements = make([]Movement, len(a.Movements))
	copy(cp.Movements, a.Movements)
	return &cp
}

// DeriveUsername builds the lowercase initials of every word in owner,
// e.g. "Jonas Schmedtmann" -> "js".
func DeriveUsername(owner string) string {
	var b strings.Builder
	for _, word := range strings.Fields(strings.ToLower(owner)) {
		r, _ := utf8.DecodeRuneInString(word)
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
