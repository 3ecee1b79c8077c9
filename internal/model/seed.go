package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// SeedMovement is a movement in the fixed startup data set.
type SeedMovement struct {
	Amount string
	Date   string // RFC 3339
}

// SeedAccount describes an account loaded at startup. Usernames are derived
// from Owner when the seed is loaded.
type SeedAccount struct {
	Owner        string
	PIN          int
	InterestRate string
	Currency     string
	Locale       string
	Movements    []SeedMovement
}

// DefaultSeed is the account list every process starts with.
func DefaultSeed() []SeedAccount {
	return []SeedAccount{
		{
			Owner:        "Jonas Schmedtmann",
			PIN:          1111,
			InterestRate: "1.2",
			Currency:     "EUR",
			Locale:       "pt-PT",
			Movements: []SeedMovement{
				{"200", "2019-11-18T21:31:17.178Z"},
				{"455.23", "2019-12-23T07:42:02.383Z"},
				{"-306.5", "2020-01-28T09:15:04.904Z"},
				{"25000", "2020-04-01T10:17:24.185Z"},
				{"-642.21", "2020-05-08T14:11:59.604Z"},
				{"-133.9", "2020-05-27T17:01:17.194Z"},
				{"79.97", "2025-02-04T23:36:17.929Z"},
				{"1300", "2025-02-05T10:51:36.790Z"},
			},
		},
		{
			Owner:        "Jessica Davis",
			PIN:          2222,
			InterestRate: "1.5",
			Currency:     "USD",
			Locale:       "en-US",
			Movements: []SeedMovement{
				{"5000", "2019-11-01T13:15:33.035Z"},
				{"3400", "2019-11-30T09:48:16.867Z"},
				{"-150", "2019-12-25T06:04:23.907Z"},
				{"-790", "2020-01-25T14:18:46.235Z"},
				{"-3210", "2020-02-05T16:33:06.386Z"},
				{"-1000", "2020-04-10T14:43:26.374Z"},
				{"8500", "2020-06-25T18:49:59.371Z"},
				{"-30", "2025-02-06T12:01:20.894Z"},
			},
		},
	}
}

// Build converts the seed into an Account with a derived username.
func (s SeedAccount) Build() (*Account, error) {
	rate, err := decimal.NewFromString(s.InterestRate)
	if err != nil {
		return nil, err
	}

	acc := &Account{
		Owner:        s.Owner,
		Username:     DeriveUsername(s.Owner),
		PIN:          s.PIN,
		InterestRate: rate,
		Currency:     s.Currency,
		Locale:       s.Locale,
		Movements:    make([]Movement, 0, len(s.Movements)),
	}

	for _, sm := range s.Movements {
		amount, err := decimal.NewFromString(sm.Amount)
		if err != nil {
			return nil, err
		}
		at, err := time.Parse(time.RFC3339Nano, sm.Date)
		if err != nil {
			return nil, err
		}
		acc.Movements = append(acc.Movements, NewMovement(amount, at))
	}

	return acc, nil
}
