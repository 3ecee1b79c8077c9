package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hance08/bankist/internal/config"
	"github.com/hance08/bankist/internal/model"
	"github.com/hance08/bankist/internal/observability"
	"github.com/hance08/bankist/internal/store"
	"go.uber.org/zap"
)

type AccountService struct {
	repo    store.Repository
	config  *config.Config
	logger  *zap.Logger
	metrics *observability.Metrics
	clock   Clock
}

func NewAccountService(repo store.Repository, cfg *config.Config, logger *zap.Logger, metrics *observability.Metrics, clock Clock) *AccountService {
	return &AccountService{repo: repo, config: cfg, logger: logger, metrics: metrics, clock: clock}
}

// Bootstrap loads the startup accounts, deriving each username from the
// owner's initials. Two owners with the same initials abort the load.
func (as *AccountService) Bootstrap(seeds []model.SeedAccount) error {
	return as.repo.ExecTx(func(repo store.Repository) error {
		for _, seed := range seeds {
			acc, err := seed.Build()
			if err != nil {
				return fmt.Errorf("invalid seed account '%s': %w", seed.Owner, err)
			}
			if acc.Username == "" {
				return fmt.Errorf("seed account owner %q yields an empty username", seed.Owner)
			}
			if err := repo.InsertAccount(acc); err != nil {
				return fmt.Errorf("failed to load seed account: %w", err)
			}
			as.logger.Debug("account loaded",
				zap.String("username", acc.Username),
				zap.Int("movements", len(acc.Movements)),
			)
		}
		return nil
	})
}

func (as *AccountService) GetAllAccounts() ([]*model.Account, error) {
	return as.repo.GetAllAccounts()
}

// GetAccountByUsername returns a rejection of kind ErrNotFound when no
// account has that username.
func (as *AccountService) GetAccountByUsername(username string) (*model.Account, error) {
	acc, err := as.repo.GetAccountByUsername(username)
	if errors.Is(err, store.ErrRecordNotFound) {
		return nil, reject("lookup", ErrNotFound, RuleUnknownAccount, "no account '%s'", username)
	}
	return acc, err
}

func (as *AccountService) CountAccounts() (int, error) {
	return as.repo.CountAccounts()
}

// Login opens a session for username when pin matches.
func (as *AccountService) Login(username string, pin int) (*Session, error) {
	const op = "login"

	acc, err := as.repo.GetAccountByUsername(username)
	if errors.Is(err, store.ErrRecordNotFound) {
		return nil, as.rejected(reject(op, ErrNotFound, RuleUnknownAccount, "no account '%s'", username))
	}
	if err != nil {
		as.metrics.RecordOperation(op, observability.OutcomeError)
		return nil, err
	}

	if acc.PIN != pin {
		return nil, as.rejected(reject(op, ErrInvalidCredentials, RuleCredentialsMismatch, "pin does not match '%s'", username))
	}

	now := as.clock()
	sess := &Session{
		ID:           uuid.New(),
		Username:     acc.Username,
		Owner:        acc.Owner,
		Locale:       acc.Locale,
		Currency:     acc.Currency,
		LoggedInAt:   now,
		LastActivity: now,
	}

	as.metrics.RecordOperation(op, observability.OutcomeSuccess)
	as.logger.Info("session opened", zap.String("username", acc.Username), zap.Stringer("session", sess.ID))
	return sess, nil
}

func (as *AccountService) rejected(rej *RejectionError) error {
	as.metrics.RecordOperation(rej.Op, observability.OutcomeRejected)
	as.logger.Info("operation rejected",
		zap.String("op", rej.Op),
		zap.String("rule", string(rej.Rule)),
		zap.String("detail", rej.Detail),
	)
	return rej
}
