package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hance08/bankist/internal/model"
	"github.com/shopspring/decimal"
)

// AppendMovement inserts one movement after the account's existing ones.
// It relies on the caller (Service layer) to wrap it in ExecTx for atomicity.
func (s *SQLiteStore) AppendMovement(username string, mv model.Movement) error {
	var exists int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM accounts WHERE username = ?", username).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check account '%s': %w", username, err)
	}
	if exists == 0 {
		return fmt.Errorf("account '%s': %w", username, ErrRecordNotFound)
	}

	_, err := s.db.Exec(`
		INSERT INTO movements (uid, username, amount, occurred_at)
		VALUES (?, ?, ?, ?);
	`, mv.ID.String(), username, mv.Amount.String(), mv.Date.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("failed to insert movement (account: %s): %w", username, err)
	}

	return nil
}

func (s *SQLiteStore) getMovements(username string) ([]model.Movement, error) {
	rows, err := s.db.Query(`
		SELECT uid, amount, occurred_at
		FROM movements
		WHERE username = ?
		ORDER BY id
	`, username)
	if err != nil {
		return nil, fmt.Errorf("failed to query movements: %w", err)
	}
	defer rows.Close()

	movements := []model.Movement{}
	for rows.Next() {
		var uid, amount, occurredAt string
		if err := rows.Scan(&uid, &amount, &occurredAt); err != nil {
			return nil, fmt.Errorf("failed to scan movement: %w", err)
		}

		var mv model.Movement
		if mv.ID, err = uuid.Parse(uid); err != nil {
			return nil, fmt.Errorf("invalid movement id %q: %w", uid, err)
		}
		if mv.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("invalid movement amount %q: %w", amount, err)
		}
		if mv.Date, err = time.Parse(time.RFC3339Nano, occurredAt); err != nil {
			return nil, fmt.Errorf("invalid movement date %q: %w", occurredAt, err)
		}

		movements = append(movements, mv)
	}

	return movements, rows.Err()
}
