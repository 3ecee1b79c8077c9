// Package ledger computes balances and summaries from an account's
// movements. Every value is recomputed from the movement history on each
// call; nothing is cached.
package ledger

import (
	"github.com/hance08/bankist/internal/constants"
	"github.com/hance08/bankist/internal/model"
	"github.com/shopspring/decimal"
)

// Summary is the income / expense / qualifying interest triple of an account.
// Expense is negative; presentation shows its absolute value.
type Summary struct {
	Income   decimal.Decimal
	Expense  decimal.Decimal
	Interest decimal.Decimal
}

// Balance is the sum of all movements.
func Balance(acc *model.Account) decimal.Decimal {
	total := decimal.Zero
	for _, mv := range acc.Movements {
		total = total.Add(mv.Amount)
	}
	return total
}

func Summarize(acc *model.Account) Summary {
	s := Summary{
		Income:   decimal.Zero,
		Expense:  decimal.Zero,
		Interest: decimal.Zero,
	}

	for _, mv := range acc.Movements {
		switch {
		case mv.Amount.IsPositive():
			s.Income = s.Income.Add(mv.Amount)
			if interest := InterestOn(mv.Amount, acc.InterestRate); Qualifies(interest) {
				s.Interest = s.Interest.Add(interest)
			}
		case mv.Amount.IsNegative():
			s.Expense = s.Expense.Add(mv.Amount)
		}
	}

	return s
}

// InterestOn returns deposit * rate / 100.
func InterestOn(deposit, rate decimal.Decimal) decimal.Decimal {
	return deposit.Mul(rate).Div(decimal.NewFromInt(100))
}

// Qualifies reports whether a single deposit's interest reaches the minimum
// that counts towards the summary.
func Qualifies(interest decimal.Decimal) bool {
	return interest.GreaterThanOrEqual(constants.MinQualifyingInterest)
}

// QualifiesForLoan reports whether any movement is at least a tenth of amount.
func QualifiesForLoan(acc *model.Account, amount decimal.Decimal) bool {
	threshold := amount.Mul(constants.LoanCollateralRatio)
	for _, mv := range acc.Movements {
		if mv.Amount.GreaterThanOrEqual(threshold) {
			return true
		}
	}
	return false
}
