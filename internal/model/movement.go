package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Movement is one signed cash entry. Positive amounts are deposits, negative
// amounts are withdrawals.
type Movement struct {
	ID     uuid.UUID
	Amount decimal.Decimal
	Date   time.Time
}

func NewMovement(amount decimal.Decimal, at time.Time) Movement {
	return Movement{
		ID:     uuid.New(),
		Amount: amount,
		Date:   at,
	}
}

func (m Movement) IsDeposit() bool {
	return m.Amount.IsPositive()
}
