package service

import (
	"errors"

	"github.com/hance08/bankist/internal/config"
	"github.com/hance08/bankist/internal/model"
	"github.com/hance08/bankist/internal/observability"
	"github.com/hance08/bankist/internal/store"
	"github.com/hance08/bankist/internal/utils"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// TransactionService performs the mutating ledger operations. Each one runs
// its checks and writes inside a single ExecTx, so a refused operation leaves
// the store untouched and concurrent callers cannot interleave.
type TransactionService struct {
	repo    store.Repository
	config  *config.Config
	logger  *zap.Logger
	metrics *observability.Metrics
	clock   Clock
}

func NewTransactionService(repo store.Repository, cfg *config.Config, logger *zap.Logger, metrics *observability.Metrics, clock Clock) *TransactionService {
	return &TransactionService{repo: repo, config: cfg, logger: logger, metrics: metrics, clock: clock}
}

// Transfer moves amount from the session's account to toUsername.
func (ts *TransactionService) Transfer(sess *Session, toUsername string, amount decimal.Decimal) error {
	const op = "transfer"

	err := ts.withSessionAccount(op, sess, func(repo store.Repository, from *model.Account) error {
		receiver, err := validateTransfer(repo, from, toUsername, amount)
		if err != nil {
			return err
		}

		now := ts.clock()
		if err := repo.AppendMovement(from.Username, model.NewMovement(amount.Neg(), now)); err != nil {
			return err
		}
		return repo.AppendMovement(receiver.Username, model.NewMovement(amount, now))
	})

	return ts.finish(op, sess, err, zap.String("to", toUsername), zap.String("amount", utils.FormatPlain(amount)))
}

// RequestLoan grants floor(requested) when the account history supports it
// and returns the granted amount.
func (ts *TransactionService) RequestLoan(sess *Session, requested decimal.Decimal) (decimal.Decimal, error) {
	const op = "loan"

	amount := requested.Floor()
	err := ts.withSessionAccount(op, sess, func(repo store.Repository, acc *model.Account) error {
		if err := validateLoan(acc, amount); err != nil {
			return err
		}
		return repo.AppendMovement(acc.Username, model.NewMovement(amount, ts.clock()))
	})

	if err := ts.finish(op, sess, err, zap.String("amount", utils.FormatPlain(amount))); err != nil {
		return decimal.Zero, err
	}
	return amount, nil
}

// CloseAccount deletes the session's account when the entered credentials
// match it, and ends the session.
func (ts *TransactionService) CloseAccount(sess *Session, enteredUsername string, enteredPIN int) error {
	const op = "close"

	err := ts.withSessionAccount(op, sess, func(repo store.Repository, acc *model.Account) error {
		if err := validateClosure(acc, enteredUsername, enteredPIN); err != nil {
			return err
		}
		return repo.DeleteAccount(acc.Username)
	})

	if err := ts.finish(op, sess, err); err != nil {
		return err
	}

	sess.End()
	return nil
}

// withSessionAccount loads the session's account inside a transaction and
// hands it to fn.
func (ts *TransactionService) withSessionAccount(op string, sess *Session, fn func(store.Repository, *model.Account) error) error {
	if !sess.Active() {
		return reject(op, ErrNotFound, RuleSessionEnded, "session is no longer active")
	}

	return ts.repo.ExecTx(func(repo store.Repository) error {
		acc, err := repo.GetAccountByUsername(sess.Username)
		if errors.Is(err, store.ErrRecordNotFound) {
			return reject(op, ErrNotFound, RuleUnknownAccount, "no account '%s'", sess.Username)
		}
		if err != nil {
			return err
		}
		return fn(repo, acc)
	})
}

func (ts *TransactionService) finish(op string, sess *Session, err error, fields ...zap.Field) error {
	username := ""
	if sess != nil {
		username = sess.Username
		if sess.Active() {
			sess.Touch(ts.clock())
		}
	}
	fields = append(fields, zap.String("op", op), zap.String("username", username))

	var rej *RejectionError
	switch {
	case err == nil:
		ts.metrics.RecordOperation(op, observability.OutcomeSuccess)
		ts.logger.Debug("operation applied", fields...)
	case errors.As(err, &rej):
		ts.metrics.RecordOperation(op, observability.OutcomeRejected)
		ts.logger.Info("operation rejected", append(fields, zap.String("rule", string(rej.Rule)))...)
	default:
		ts.metrics.RecordOperation(op, observability.OutcomeError)
		ts.logger.Error("operation failed", append(fields, zap.Error(err))...)
	}

	return err
}
