package service

import (
	"time"

	"github.com/hance08/bankist/internal/config"
	"github.com/hance08/bankist/internal/logic/ledger"
	"github.com/hance08/bankist/internal/observability"
	"github.com/hance08/bankist/internal/store"
	"go.uber.org/zap"
)

type Service struct {
	Account     *AccountService
	Transaction *TransactionService
	Formatter   *FormatterService
	Metrics     *observability.Metrics
}

func NewService(repo store.Repository, cfg *config.Config, logger *zap.Logger, metrics *observability.Metrics, clock Clock) *Service {
	if clock == nil {
		clock = time.Now
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		Account:     NewAccountService(repo, cfg, logger, metrics, clock),
		Transaction: NewTransactionService(repo, cfg, logger, metrics, clock),
		Formatter:   NewFormatterService(cfg.Defaults.Locale, cfg.Defaults.Currency, clock),
		Metrics:     metrics,
	}
}

// Overview is everything the logged-in screen shows, already formatted in
// the account's locale and currency.
type Overview struct {
	Welcome  string
	Now      string
	Balance  string
	Income   string
	Expense  string
	Interest string
	Sorted   bool
	Rows     []MovementRow
}

// Overview reads the session's account fresh from the store and renders it.
func (s *Service) Overview(sess *Session) (*Overview, error) {
	if !sess.Active() {
		return nil, reject("overview", ErrNotFound, RuleSessionEnded, "session is no longer active")
	}

	acc, err := s.Account.GetAccountByUsername(sess.Username)
	if err != nil {
		return nil, err
	}

	f := s.Formatter
	sum := ledger.Summarize(acc)
	ov := &Overview{
		Welcome:  sess.WelcomeName(),
		Now:      f.FormatDateTime(acc.Locale),
		Balance:  f.FormatCurrency(ledger.Balance(acc), acc.Locale, acc.Currency),
		Income:   f.FormatCurrency(sum.Income, acc.Locale, acc.Currency),
		Expense:  f.FormatCurrency(sum.Expense.Abs(), acc.Locale, acc.Currency),
		Interest: f.FormatCurrency(sum.Interest, acc.Locale, acc.Currency),
		Sorted:   sess.Sorted,
	}
	for row := range f.MovementRows(acc, sess.Sorted) {
		ov.Rows = append(ov.Rows, row)
	}

	return ov, nil
}
