package ledger_test

import (
	"testing"
	"time"

	"github.com/hance08/bankist/internal/logic/ledger"
	"github.com/hance08/bankist/internal/model"
	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func account(rate string, amounts ...string) *model.Account {
	acc := &model.Account{Owner: "Test User", Username: "tu", InterestRate: d(rate)}
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, a := range amounts {
		acc.Movements = append(acc.Movements, model.NewMovement(d(a), at.AddDate(0, 0, i)))
	}
	return acc
}

func TestBalance(t *testing.T) {
	tests := []struct {
		name    string
		amounts []string
		want    string
	}{
		{"empty", nil, "0"},
		{"mixed movements", []string{"200", "455.23", "-306.5"}, "348.73"},
		{"all withdrawals", []string{"-10", "-0.5"}, "-10.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ledger.Balance(account("1", tt.amounts...))
			if !got.Equal(d(tt.want)) {
				t.Errorf("Balance = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestSummarize_SeedAccount(t *testing.T) {
	acc, err := model.DefaultSeed()[0].Build()
	if err != nil {
		t.Fatal(err)
	}

	s := ledger.Summarize(acc)
	if !s.Income.Equal(d("27035.2")) {
		t.Errorf("Income = %s, want 27035.2", s.Income)
	}
	if !s.Expense.Equal(d("-1082.61")) {
		t.Errorf("Expense = %s, want -1082.61", s.Expense)
	}
	// 79.97 earns 0.95964 and is left out
	if !s.Interest.Equal(d("323.46276")) {
		t.Errorf("Interest = %s, want 323.46276", s.Interest)
	}
	if !ledger.Balance(acc).Equal(d("25952.59")) {
		t.Errorf("Balance = %s, want 25952.59", ledger.Balance(acc))
	}
}

func TestSummarize_InterestThresholdPerDeposit(t *testing.T) {
	tests := []struct {
		name    string
		amounts []string
		want    string
	}{
		{"80 at 1.2% earns 0.96", []string{"80"}, "0"},
		{"100 at 1.2% earns 1.2", []string{"100"}, "1.2"},
		{"small deposits never add up", []string{"80", "80", "80"}, "0"},
		{"mixed", []string{"80", "100", "-500"}, "1.2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ledger.Summarize(account("1.2", tt.amounts...)).Interest
			if !got.Equal(d(tt.want)) {
				t.Errorf("Interest = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestSummarize_ZeroMovementIgnored(t *testing.T) {
	s := ledger.Summarize(account("1", "0"))
	if !s.Income.IsZero() || !s.Expense.IsZero() || !s.Interest.IsZero() {
		t.Errorf("unexpected summary for a zero movement: %+v", s)
	}
}

func TestQualifiesForLoan(t *testing.T) {
	acc := account("1", "200", "-50")

	tests := []struct {
		amount string
		want   bool
	}{
		{"2000", true},
		{"2001", false},
		{"500", true},
	}

	for _, tt := range tests {
		if got := ledger.QualifiesForLoan(acc, d(tt.amount)); got != tt.want {
			t.Errorf("QualifiesForLoan(%s) = %v, want %v", tt.amount, got, tt.want)
		}
	}
}
