package service

import (
	"errors"

	"github.com/hance08/bankist/internal/logic/ledger"
	"github.com/hance08/bankist/internal/model"
	"github.com/hance08/bankist/internal/store"
	"github.com/shopspring/decimal"
)

// validateTransfer applies the transfer rules in order: positive amount,
// known receiver, sufficient balance, distinct receiver.
func validateTransfer(repo store.Repository, from *model.Account, toUsername string, amount decimal.Decimal) (*model.Account, error) {
	const op = "transfer"

	if !amount.IsPositive() {
		return nil, reject(op, ErrValidationFailed, RuleNonPositiveAmount, "amount %s must be greater than zero", amount)
	}

	receiver, err := repo.GetAccountByUsername(toUsername)
	if errors.Is(err, store.ErrRecordNotFound) {
		return nil, reject(op, ErrNotFound, RuleUnknownReceiver, "no account '%s'", toUsername)
	}
	if err != nil {
		return nil, err
	}

	if balance := ledger.Balance(from); balance.LessThan(amount) {
		return nil, reject(op, ErrValidationFailed, RuleInsufficientFunds, "balance %s is below %s", balance, amount)
	}

	if receiver.Username == from.Username {
		return nil, reject(op, ErrValidationFailed, RuleSelfTransfer, "cannot transfer to own account")
	}

	return receiver, nil
}

// validateLoan checks a loan of an already floored amount.
func validateLoan(acc *model.Account, amount decimal.Decimal) error {
	const op = "loan"

	if !amount.IsPositive() {
		return reject(op, ErrValidationFailed, RuleNonPositiveAmount, "amount %s must be greater than zero", amount)
	}

	if !ledger.QualifiesForLoan(acc, amount) {
		return reject(op, ErrValidationFailed, RuleNoQualifyingDeposit, "no movement reaches 10%% of %s", amount)
	}

	return nil
}

func validateClosure(acc *model.Account, enteredUsername string, enteredPIN int) error {
	if enteredUsername != acc.Username || enteredPIN != acc.PIN {
		return reject("close", ErrInvalidCredentials, RuleCredentialsMismatch, "username or pin does not match")
	}
	return nil
}
