package app

import (
	"errors"
	"os"
	"testing"

	"github.com/hance08/bankist/internal/config"
	"github.com/hance08/bankist/internal/model"
	"github.com/hance08/bankist/internal/store"
	"go.uber.org/zap"
)

func TestNewApp_Drivers(t *testing.T) {
	for _, driver := range []string{store.DriverMemory, store.DriverSQLite} {
		t.Run(driver, func(t *testing.T) {
			cfg := config.NewDefault()
			cfg.Store.Driver = driver

			a, cleanup, err := NewApp(cfg, os.DirFS("../.."), zap.NewNop())
			if err != nil {
				t.Fatal(err)
			}
			defer cleanup()

			n, err := a.Service.Account.CountAccounts()
			if err != nil {
				t.Fatal(err)
			}
			if n != 2 {
				t.Errorf("accounts = %d, want 2", n)
			}
		})
	}
}

func TestNewApp_SeedCollision(t *testing.T) {
	seeds := []model.SeedAccount{
		{Owner: "Jane Smith", PIN: 1, InterestRate: "1", Currency: "USD", Locale: "en-US"},
		{Owner: "John Stone", PIN: 2, InterestRate: "1", Currency: "USD", Locale: "en-US"},
	}

	_, _, err := newApp(config.NewDefault(), nil, nil, seeds)
	if !errors.Is(err, store.ErrAccountExists) {
		t.Fatalf("expected ErrAccountExists, got %v", err)
	}
}

func TestNewApp_UnknownDriver(t *testing.T) {
	cfg := config.NewDefault()
	cfg.Store.Driver = "postgres"

	if _, _, err := NewApp(cfg, nil, nil); err == nil {
		t.Fatal("expected error for unknown driver")
	}
}
