package constants

import "github.com/shopspring/decimal"

var (
	// MinQualifyingInterest is the smallest per-deposit interest included in
	// an account summary.
	MinQualifyingInterest = decimal.NewFromInt(1)

	// LoanCollateralRatio is the fraction of a loan that at least one
	// existing movement must reach.
	LoanCollateralRatio = decimal.RequireFromString("0.1")
)
