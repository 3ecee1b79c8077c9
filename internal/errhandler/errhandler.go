package errhandler

import (
	"errors"
	"os"
	"strings"
	"unicode"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
	"github.com/hance08/bankist/internal/service"
	"github.com/pterm/pterm"
)

// IsCancelled reports whether err comes from the user aborting a prompt.
func IsCancelled(err error) bool {
	return errors.Is(err, terminal.InterruptErr) ||
		errors.Is(err, huh.ErrUserAborted) ||
		strings.Contains(err.Error(), "interrupt")
}

// Describe turns a refused operation into a one-line message for the user.
// Other errors are returned as they are.
func Describe(err error) string {
	var rej *service.RejectionError
	if !errors.As(err, &rej) {
		return err.Error()
	}

	switch rej.Rule {
	case service.RuleNonPositiveAmount:
		return "Amount must be greater than zero"
	case service.RuleUnknownReceiver:
		return "Receiver account does not exist"
	case service.RuleInsufficientFunds:
		return "Insufficient balance for this transfer"
	case service.RuleSelfTransfer:
		return "You cannot transfer to your own account"
	case service.RuleNoQualifyingDeposit:
		return "Loan denied: no deposit of at least 10% of the requested amount"
	case service.RuleCredentialsMismatch:
		return "Wrong username or PIN"
	case service.RuleUnknownAccount:
		return "Account not found"
	case service.RuleSessionEnded:
		return "You are logged out"
	}
	return rej.Error()
}

// HandleError reports err to the user. Cancelled prompts exit the process
// cleanly; refused operations are shown as warnings.
func HandleError(err error) {
	if IsCancelled(err) {
		pterm.Warning.Println("Operation Cancelled")
		os.Exit(0)
	}

	var rej *service.RejectionError
	if errors.As(err, &rej) {
		pterm.Warning.Println(Describe(err))
		return
	}

	pterm.Error.Println(capitalize(err.Error()))
}

func capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
