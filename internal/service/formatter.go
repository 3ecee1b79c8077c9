package service

import (
	"fmt"
	"iter"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/bojanz/currency"
	"github.com/hance08/bankist/internal/constants"
	"github.com/hance08/bankist/internal/model"
	"github.com/shopspring/decimal"
)

// Clock supplies the current time.
type Clock func() time.Time

// MovementRow is one display row of an account's movement list.
type MovementRow struct {
	Index  int // 1-based position in the rendered (possibly sorted) list
	Type   string
	Date   string
	Amount string
	Value  decimal.Decimal
}

// FormatterService renders amounts and dates with each account's own locale
// and currency. The configured defaults are used only when the account's
// locale is malformed or its currency code is unknown.
type FormatterService struct {
	clock           Clock
	defaultLocale   string
	defaultCurrency string
}

func NewFormatterService(defaultLocale, defaultCurrency string, clock Clock) *FormatterService {
	if _, ok := parseLocale(defaultLocale); !ok {
		defaultLocale = constants.DefaultLocale
	}
	defaultCurrency = strings.ToUpper(strings.TrimSpace(defaultCurrency))
	if !currency.IsValid(defaultCurrency) {
		defaultCurrency = constants.DefaultCurrency
	}
	if clock == nil {
		clock = time.Now
	}
	return &FormatterService{clock: clock, defaultLocale: defaultLocale, defaultCurrency: defaultCurrency}
}

func (fs *FormatterService) resolveLocale(locale string) string {
	if tag, ok := parseLocale(locale); ok {
		return tag.String()
	}
	return fs.defaultLocale
}

func (fs *FormatterService) dateConvention(locale string) dateConvention {
	tag, _ := parseLocale(fs.resolveLocale(locale))
	return lookupDateConvention(tag)
}

// FormatCurrency renders amount as money in the given locale and ISO currency,
// rounded to the currency's minor units. Grouping, separators, symbol and
// sign placement follow CLDR for the locale.
func (fs *FormatterService) FormatCurrency(amount decimal.Decimal, locale, code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if !currency.IsValid(code) {
		code = fs.defaultCurrency
	}

	digits, _ := currency.GetDigits(code)
	fixed := amount.Round(int32(digits)).StringFixed(int32(digits))

	amt, err := currency.NewAmount(fixed, code)
	if err != nil {
		return fixed + " " + code
	}

	f := currency.NewFormatter(currency.NewLocale(fs.resolveLocale(locale)))
	f.MinDigits = digits
	f.MaxDigits = digits
	return f.Format(amt)
}

// FormatRelativeDate labels t relative to now: TODAY, YESTERDAY, "N DAY'S
// AGO" up to a week, and the locale's numeric date beyond that.
func (fs *FormatterService) FormatRelativeDate(t time.Time, locale string) string {
	now := fs.clock()
	days := int(math.Round(math.Abs(float64(now.Sub(t))) / float64(constants.Day)))

	switch {
	case days == 0:
		return constants.LabelToday
	case days == 1:
		return constants.LabelYesterday
	case days <= constants.RelativeDateMaxDays:
		return fmt.Sprintf(constants.LabelDaysAgo, days)
	}

	return fs.dateConvention(locale).formatDate(t.In(now.Location()))
}

// FormatDateTime renders the current date and time, used in the session
// header after login.
func (fs *FormatterService) FormatDateTime(locale string) string {
	now := fs.clock()
	conv := fs.dateConvention(locale)
	return conv.formatDate(now) + ", " + conv.formatTime(now)
}

// MovementRows pairs, optionally sorts and formats the account's movements.
// Rows come out most recent first; with sorted set, largest amount first, so
// the ascending amount order holds when rows are read by Index.
// The sequence is computed on each iteration and can be ranged repeatedly.
func (fs *FormatterService) MovementRows(acc *model.Account, sorted bool) iter.Seq[MovementRow] {
	return func(yield func(MovementRow) bool) {
		movs := slices.Clone(acc.Movements)
		if sorted {
			slices.SortStableFunc(movs, func(a, b model.Movement) int {
				return a.Amount.Cmp(b.Amount)
			})
		}

		// rows are prepended while walking the list, so the last walked
		// movement is shown first
		for i := len(movs) - 1; i >= 0; i-- {
			mv := movs[i]
			row := MovementRow{
				Index:  i + 1,
				Type:   movementType(mv),
				Date:   fs.FormatRelativeDate(mv.Date, acc.Locale),
				Amount: fs.FormatCurrency(mv.Amount, acc.Locale, acc.Currency),
				Value:  mv.Amount,
			}
			if !yield(row) {
				return
			}
		}
	}
}

func movementType(mv model.Movement) string {
	if mv.IsDeposit() {
		return constants.TypeDeposit
	}
	return constants.TypeWithdrawal
}
