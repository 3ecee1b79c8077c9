package model_test

import (
	"testing"
	"time"

	"github.com/hance08/bankist/internal/model"
	"github.com/shopspring/decimal"
)

func TestDeriveUsername(t *testing.T) {
	tests := []struct {
		owner string
		want  string
	}{
		{"Jonas Schmedtmann", "js"},
		{"Jessica Davis", "jd"},
		{"Steven Thomas Williams", "stw"},
		{"Sarah  Smith", "ss"},
		{"Élodie Ürban", "éü"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := model.DeriveUsername(tt.owner); got != tt.want {
			t.Errorf("DeriveUsername(%q) = %q, want %q", tt.owner, got, tt.want)
		}
	}
}

func TestAccount_FirstName(t *testing.T) {
	acc := &model.Account{Owner: "Jonas Schmedtmann"}
	if got := acc.FirstName(); got != "Jonas" {
		t.Errorf("FirstName = %q, want Jonas", got)
	}

	single := &model.Account{Owner: "Cher"}
	if got := single.FirstName(); got != "Cher" {
		t.Errorf("FirstName = %q, want Cher", got)
	}
}

func TestAccount_CloneIsDeep(t *testing.T) {
	acc := &model.Account{
		Owner:     "Jonas Schmedtmann",
		Movements: []model.Movement{model.NewMovement(decimal.NewFromInt(200), time.Now())},
	}

	cp := acc.Clone()
	cp.Movements[0].Amount = decimal.NewFromInt(1)
	cp.Movements = append(cp.Movements, model.NewMovement(decimal.NewFromInt(5), time.Now()))

	if len(acc.Movements) != 1 || !acc.Movements[0].Amount.Equal(decimal.NewFromInt(200)) {
		t.Errorf("original changed through clone: %+v", acc.Movements)
	}
}

func TestDefaultSeed_Build(t *testing.T) {
	seeds := model.DefaultSeed()
	if len(seeds) != 2 {
		t.Fatalf("seed size = %d, want 2", len(seeds))
	}

	acc, err := seeds[0].Build()
	if err != nil {
		t.Fatal(err)
	}
	if acc.Username != "js" {
		t.Errorf("Username = %q, want js", acc.Username)
	}
	if len(acc.Movements) != 8 {
		t.Fatalf("movements = %d, want 8", len(acc.Movements))
	}
	for i := 1; i < len(acc.Movements); i++ {
		if acc.Movements[i].Date.Before(acc.Movements[i-1].Date) {
			t.Errorf("movement %d is older than movement %d", i, i-1)
		}
	}
	if !acc.Movements[0].IsDeposit() || acc.Movements[2].IsDeposit() {
		t.Error("deposit detection is wrong for seed movements")
	}
}

func TestSeedAccount_BuildRejectsBadData(t *testing.T) {
	bad := model.SeedAccount{Owner: "X Y", InterestRate: "abc"}
	if _, err := bad.Build(); err == nil {
		t.Error("expected error for invalid interest rate")
	}

	bad = model.SeedAccount{Owner: "X Y", InterestRate: "1", Movements: []model.SeedMovement{{"10", "yesterday"}}}
	if _, err := bad.Build(); err == nil {
		t.Error("expected error for invalid date")
	}
}
