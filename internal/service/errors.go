package service

import (
	"errors"
	"fmt"
)

// Rejection kinds. Every refused operation unwraps to exactly one of these.
var (
	ErrNotFound           = errors.New("not found")
	ErrValidationFailed   = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Rule names the business rule that refused an operation.
type Rule string

const (
	RuleNonPositiveAmount   Rule = "non_positive_amount"
	RuleUnknownReceiver     Rule = "unknown_receiver"
	RuleInsufficientFunds   Rule = "insufficient_funds"
	RuleSelfTransfer        Rule = "self_transfer"
	RuleNoQualifyingDeposit Rule = "no_qualifying_deposit"
	RuleCredentialsMismatch Rule = "credentials_mismatch"
	RuleUnknownAccount      Rule = "unknown_account"
	RuleSessionEnded        Rule = "session_ended"
)

// RejectionError reports an operation that was refused without changing any
// state.
type RejectionError struct {
	Op     string
	Kind   error
	Rule   Rule
	Detail string
}

func (e *RejectionError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s rejected (%s): %s", e.Op, e.Rule, e.Detail)
	}
	return fmt.Sprintf("%s rejected (%s)", e.Op, e.Rule)
}

func (e *RejectionError) Unwrap() error {
	return e.Kind
}

func reject(op string, kind error, rule Rule, format string, args ...any) *RejectionError {
	return &RejectionError{
		Op:     op,
		Kind:   kind,
		Rule:   rule,
		Detail: fmt.Sprintf(format, args...),
	}
}

// RuleOf returns the rule behind err, or "" when err is not a rejection.
func RuleOf(err error) Rule {
	var rej *RejectionError
	if errors.As(err, &rej) {
		return rej.Rule
	}
	return ""
}
