package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/hance08/bankist/internal/model"
	sqlite "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"
)

func (s *SQLiteStore) InsertAccount(acc *model.Account) error {
	var existing string
	err := s.db.QueryRow("SELECT owner FROM accounts WHERE username = ?", acc.Username).Scan(&existing)
	if err == nil {
		return fmt.Errorf("username '%s' (%s) is already taken by %s: %w",
			acc.Username, acc.Owner, existing, ErrAccountExists)
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("failed to check username '%s' : %w", acc.Username, err)
	}

	_, err = s.db.Exec(`
		INSERT INTO accounts (username, owner, pin, interest_rate, currency, locale)
		VALUES (?, ?, ?, ?, ?, ?);
	`, acc.Username, acc.Owner, acc.PIN, acc.InterestRate.String(), acc.Currency, acc.Locale)
	if err != nil {
		var sqliteErr sqlite.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite.ErrConstraint {
			return fmt.Errorf("account '%s': %w", acc.Username, ErrConstraintViolation)
		}
		return fmt.Errorf("failed to executing SQL insertion : %w", err)
	}

	for _, mv := range acc.Movements {
		if err := s.AppendMovement(acc.Username, mv); err != nil {
			return err
		}
	}

	return nil
}

func (s *SQLiteStore) GetAllAccounts() ([]*model.Account, error) {
	rows, err := s.db.Query(`
		SELECT username, owner, pin, interest_rate, currency, locale
		FROM accounts
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}

	var accounts []*model.Account
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		accounts = append(accounts, acc)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	// movements are loaded after the account cursor is released; the pool
	// has a single connection
	for _, acc := range accounts {
		if acc.Movements, err = s.getMovements(acc.Username); err != nil {
			return nil, err
		}
	}

	return accounts, nil
}

func (s *SQLiteStore) GetAccountByUsername(username string) (*model.Account, error) {
	row := s.db.QueryRow(`
		SELECT username, owner, pin, interest_rate, currency, locale
		FROM accounts
		WHERE username = ?
	`, username)

	acc, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("account '%s': %w", username, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to query account '%s' : %w", username, err)
	}

	if acc.Movements, err = s.getMovements(username); err != nil {
		return nil, err
	}

	return acc, nil
}

func (s *SQLiteStore) DeleteAccount(username string) error {
	if _, err := s.db.Exec("DELETE FROM movements WHERE username = ?", username); err != nil {
		return fmt.Errorf("failed to delete movements of '%s': %w", username, err)
	}

	result, err := s.db.Exec("DELETE FROM accounts WHERE username = ?", username)
	if err != nil {
		return fmt.Errorf("failed to delete account '%s': %w", username, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("account '%s': %w", username, ErrRecordNotFound)
	}

	return nil
}

func (s *SQLiteStore) CountAccounts() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM accounts").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count accounts: %w", err)
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (*model.Account, error) {
	acc := &model.Account{}
	var rate string

	if err := row.Scan(&acc.Username, &acc.Owner, &acc.PIN, &rate, &acc.Currency, &acc.Locale); err != nil {
		return nil, err
	}

	parsed, err := decimal.NewFromString(rate)
	if err != nil {
		return nil, fmt.Errorf("invalid interest rate %q for '%s': %w", rate, acc.Username, err)
	}
	acc.InterestRate = parsed

	return acc, nil
}
