package constants

import "time"

const (
	// Movement Types
	TypeDeposit    = "deposit"
	TypeWithdrawal = "withdrawal"

	// Relative Date Labels
	LabelToday     = "TODAY"
	LabelYesterday = "YESTERDAY"
	LabelDaysAgo   = "%d DAY'S AGO"

	// RelativeDateMaxDays is the oldest movement still labelled relatively.
	RelativeDateMaxDays = 7

	Day = 24 * time.Hour
)

const (
	DefaultLocale   = "en-US"
	DefaultCurrency = "USD"
)
