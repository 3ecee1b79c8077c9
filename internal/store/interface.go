package store

import "github.com/hance08/bankist/internal/model"

// Repository is the account store. Implementations return copies; mutating a
// returned account never changes stored state.
type Repository interface {
	// Account Operations
	InsertAccount(acc *model.Account) error
	GetAllAccounts() ([]*model.Account, error)
	GetAccountByUsername(username string) (*model.Account, error)
	DeleteAccount(username string) error
	CountAccounts() (int, error)

	// Movement Operations
	AppendMovement(username string, mv model.Movement) error

	// ExecTx runs fn atomically. Every change made through the repository
	// passed to fn is kept when fn returns nil and discarded otherwise.
	ExecTx(fn func(Repository) error) error

	Close() error
}

const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
)
