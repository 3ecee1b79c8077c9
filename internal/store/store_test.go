package store_test

import (
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/hance08/bankist/internal/model"
	"github.com/hance08/bankist/internal/store"
	"github.com/shopspring/decimal"
)

func openStores(t *testing.T) map[string]store.Repository {
	t.Helper()

	sqliteStore, err := store.Open(store.DriverSQLite, "", os.DirFS("../.."))
	if err != nil {
		t.Fatalf("open sqlite store: %v", err)
	}
	t.Cleanup(func() { sqliteStore.Close() })

	return map[string]store.Repository{
		store.DriverMemory: store.NewMemoryStore(),
		store.DriverSQLite: sqliteStore,
	}
}

func seed(t *testing.T, repo store.Repository) {
	t.Helper()
	for _, s := range model.DefaultSeed() {
		acc, err := s.Build()
		if err != nil {
			t.Fatalf("build seed: %v", err)
		}
		if err := repo.InsertAccount(acc); err != nil {
			t.Fatalf("insert %s: %v", acc.Username, err)
		}
	}
}

func TestRepository_LookupAndOrder(t *testing.T) {
	for name, repo := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			seed(t, repo)

			all, err := repo.GetAllAccounts()
			if err != nil {
				t.Fatal(err)
			}
			if len(all) != 2 || all[0].Username != "js" || all[1].Username != "jd" {
				t.Fatalf("unexpected accounts order: %+v", all)
			}

			acc, err := repo.GetAccountByUsername("js")
			if err != nil {
				t.Fatal(err)
			}
			if acc.Owner != "Jonas Schmedtmann" || acc.PIN != 1111 || acc.Currency != "EUR" || acc.Locale != "pt-PT" {
				t.Errorf("unexpected account: %+v", acc)
			}
			if !acc.InterestRate.Equal(decimal.RequireFromString("1.2")) {
				t.Errorf("interest rate = %s, want 1.2", acc.InterestRate)
			}
			if len(acc.Movements) != 8 {
				t.Fatalf("movements = %d, want 8", len(acc.Movements))
			}
			if !acc.Movements[1].Amount.Equal(decimal.RequireFromString("455.23")) {
				t.Errorf("movement[1] = %s, want 455.23", acc.Movements[1].Amount)
			}
			wantDate := time.Date(2019, 12, 23, 7, 42, 2, 383_000_000, time.UTC)
			if !acc.Movements[1].Date.Equal(wantDate) {
				t.Errorf("movement[1] date = %v, want %v", acc.Movements[1].Date, wantDate)
			}

			_, err = repo.GetAccountByUsername("zz")
			if !errors.Is(err, store.ErrRecordNotFound) {
				t.Errorf("expected ErrRecordNotFound, got %v", err)
			}
		})
	}
}

func TestRepository_DuplicateUsername(t *testing.T) {
	for name, repo := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			seed(t, repo)

			dup := &model.Account{Owner: "Jane Smith", Username: "js", Currency: "USD", Locale: "en-US"}
			if err := repo.InsertAccount(dup); !errors.Is(err, store.ErrAccountExists) {
				t.Fatalf("expected ErrAccountExists, got %v", err)
			}
			if n, _ := repo.CountAccounts(); n != 2 {
				t.Errorf("count = %d, want 2", n)
			}
		})
	}
}

func TestRepository_AppendAndDelete(t *testing.T) {
	for name, repo := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			seed(t, repo)

			mv := model.NewMovement(decimal.NewFromInt(-100), time.Now())
			if err := repo.AppendMovement("js", mv); err != nil {
				t.Fatal(err)
			}
			acc, _ := repo.GetAccountByUsername("js")
			last := acc.Movements[len(acc.Movements)-1]
			if last.ID != mv.ID || !last.Amount.Equal(mv.Amount) {
				t.Errorf("last movement = %+v, want %+v", last, mv)
			}

			if err := repo.AppendMovement("zz", mv); !errors.Is(err, store.ErrRecordNotFound) {
				t.Errorf("append to unknown account: expected ErrRecordNotFound, got %v", err)
			}

			if err := repo.DeleteAccount("js"); err != nil {
				t.Fatal(err)
			}
			if n, _ := repo.CountAccounts(); n != 1 {
				t.Errorf("count = %d, want 1", n)
			}
			if _, err := repo.GetAccountByUsername("js"); !errors.Is(err, store.ErrRecordNotFound) {
				t.Errorf("expected ErrRecordNotFound after delete, got %v", err)
			}
			if err := repo.DeleteAccount("js"); !errors.Is(err, store.ErrRecordNotFound) {
				t.Errorf("second delete: expected ErrRecordNotFound, got %v", err)
			}
		})
	}
}

func TestRepository_ReturnsCopies(t *testing.T) {
	for name, repo := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			seed(t, repo)

			acc, _ := repo.GetAccountByUsername("jd")
			acc.Movements = append(acc.Movements, model.NewMovement(decimal.NewFromInt(1), time.Now()))
			acc.Owner = "changed"

			again, _ := repo.GetAccountByUsername("jd")
			if len(again.Movements) != 8 || again.Owner != "Jessica Davis" {
				t.Errorf("stored account was mutated through a returned copy: %+v", again)
			}
		})
	}
}

func TestRepository_ExecTxRollback(t *testing.T) {
	for name, repo := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			seed(t, repo)

			boom := errors.New("boom")
			err := repo.ExecTx(func(tx store.Repository) error {
				if err := tx.AppendMovement("js", model.NewMovement(decimal.NewFromInt(-5), time.Now())); err != nil {
					return err
				}
				if err := tx.DeleteAccount("jd"); err != nil {
					return err
				}
				return boom
			})
			if !errors.Is(err, boom) {
				t.Fatalf("expected boom, got %v", err)
			}

			js, _ := repo.GetAccountByUsername("js")
			if len(js.Movements) != 8 {
				t.Errorf("movements = %d after rollback, want 8", len(js.Movements))
			}
			if n, _ := repo.CountAccounts(); n != 2 {
				t.Errorf("count = %d after rollback, want 2", n)
			}
		})
	}
}

func TestRepository_ExecTxCommitAndNesting(t *testing.T) {
	for name, repo := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			seed(t, repo)

			err := repo.ExecTx(func(tx store.Repository) error {
				if err := tx.ExecTx(func(store.Repository) error { return nil }); !errors.Is(err, store.ErrAlreadyInTx) {
					t.Errorf("nested ExecTx: expected ErrAlreadyInTx, got %v", err)
				}
				return tx.AppendMovement("jd", model.NewMovement(decimal.NewFromInt(42), time.Now()))
			})
			if err != nil {
				t.Fatal(err)
			}

			jd, _ := repo.GetAccountByUsername("jd")
			if len(jd.Movements) != 9 || !jd.Movements[8].Amount.Equal(decimal.NewFromInt(42)) {
				t.Errorf("committed movement missing: %+v", jd.Movements)
			}
		})
	}
}

func TestMemoryStore_ConcurrentExecTx(t *testing.T) {
	repo := store.NewMemoryStore()
	seed(t, repo)

	const n = 50
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_ = repo.ExecTx(func(tx store.Repository) error {
				return tx.AppendMovement("js", model.NewMovement(decimal.NewFromInt(1), time.Now()))
			})
		}()
	}
	wg.Wait()

	js, _ := repo.GetAccountByUsername("js")
	if len(js.Movements) != 8+n {
		t.Errorf("movements = %d, want %d", len(js.Movements), 8+n)
	}
}

func TestOpen_UnknownDriver(t *testing.T) {
	if _, err := store.Open("postgres", "", nil); err == nil {
		t.Fatal("expected error for unknown driver")
	}
}
