package prompts

import (
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/hance08/bankist/internal/ui"
	"github.com/hance08/bankist/internal/utils"
	"github.com/hance08/bankist/internal/validation"
	"github.com/shopspring/decimal"
)

// Session menu actions.
const (
	ActionTransfer = "Transfer money"
	ActionLoan     = "Request loan"
	ActionSort     = "Sort movements"
	ActionUnsort   = "Original order"
	ActionRefresh  = "Refresh"
	ActionClose    = "Close account"
	ActionLogout   = "Log out"
)

// Credentials is what a user types to identify themselves.
type Credentials struct {
	Username string
	PIN      int
}

// PromptCredentials asks for a username and PIN.
func PromptCredentials(title string) (Credentials, error) {
	username, err := PromptInput(title+" username:", "", validation.ValidateUsername)
	if err != nil {
		return Credentials{}, fmt.Errorf("input cancelled: %w", err)
	}

	pinStr, err := PromptSecret(title+" PIN:", validation.ValidatePIN)
	if err != nil {
		return Credentials{}, fmt.Errorf("input cancelled: %w", err)
	}

	pin, err := validation.ParsePIN(pinStr)
	if err != nil {
		return Credentials{}, err
	}

	return Credentials{Username: strings.TrimSpace(username), PIN: pin}, nil
}

// PromptAction shows the session menu. The sort entry flips label with the
// current ordering.
func PromptAction(sorted bool) (string, error) {
	sortAction := ActionSort
	if sorted {
		sortAction = ActionUnsort
	}

	options := []string{ActionTransfer, ActionLoan, sortAction, ActionRefresh, ActionClose, ActionLogout}
	return PromptSelect("What would you like to do?", options, ActionTransfer)
}

// PromptTransfer asks for the receiver and the amount to send.
func PromptTransfer() (string, decimal.Decimal, error) {
	to, err := PromptInput("Transfer to (username):", "", validation.ValidateUsername)
	if err != nil {
		return "", decimal.Zero, fmt.Errorf("input cancelled: %w", err)
	}

	amountStr, err := PromptAmount("Amount:", "Plain number, e.g. 150 or 150.50", validation.ValidateAmount)
	if err != nil {
		return "", decimal.Zero, fmt.Errorf("input cancelled: %w", err)
	}

	amount, err := utils.ParseAmount(amountStr)
	if err != nil {
		return "", decimal.Zero, err
	}

	return strings.TrimSpace(to), amount, nil
}

// PromptLoan asks for the loan amount. Fractions are dropped by the bank.
func PromptLoan() (decimal.Decimal, error) {
	amountStr, err := PromptAmount("Loan amount:", "Whole units only; fractions are dropped", validation.ValidateAmount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("input cancelled: %w", err)
	}
	return utils.ParseAmount(amountStr)
}

// PromptCloseConfirm is the last question before an account is deleted.
func PromptCloseConfirm(owner string) (bool, error) {
	confirm := false
	prompt := &survey.Confirm{
		Message: fmt.Sprintf("Permanently close the account of %s?", owner),
		Default: false,
	}

	if err := survey.AskOne(prompt, &confirm, ui.IconOption()); err != nil {
		return false, err
	}
	return confirm, nil
}
