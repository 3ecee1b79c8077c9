package store

import (
	"fmt"
	"sync"

	"github.com/hance08/bankist/internal/model"
)

// MemoryStore keeps accounts in an ordered slice for the lifetime of the
// process. All access is serialised by mu.
type MemoryStore struct {
	mu    sync.Mutex
	state *memState
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{state: &memState{}}
}

func (s *MemoryStore) InsertAccount(acc *model.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.InsertAccount(acc)
}

func (s *MemoryStore) GetAllAccounts() ([]*model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.GetAllAccounts()
}

func (s *MemoryStore) GetAccountByUsername(username string) (*model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.GetAccountByUsername(username)
}

func (s *MemoryStore) DeleteAccount(username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.DeleteAccount(username)
}

func (s *MemoryStore) CountAccounts() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.CountAccounts()
}

func (s *MemoryStore) AppendMovement(username string, mv model.Movement) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.AppendMovement(username, mv)
}

// ExecTx holds the lock for the whole of fn, which works on a private copy of
// the state. The copy replaces the live state only if fn succeeds.
func (s *MemoryStore) ExecTx(fn func(Repository) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft := s.state.clone()
	if err := fn(&memTx{state: draft}); err != nil {
		return err
	}

	s.state = draft
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}

// memTx is the repository handed to ExecTx callbacks. The enclosing
// MemoryStore already holds the lock.
type memTx struct {
	state *memState
}

func (t *memTx) InsertAccount(acc *model.Account) error { return t.state.InsertAccount(acc) }

func (t *memTx) GetAllAccounts() ([]*model.Account, error) { return t.state.GetAllAccounts() }

func (t *memTx) GetAccountByUsername(username string) (*model.Account, error) {
	return t.state.GetAccountByUsername(username)
}

func (t *memTx) DeleteAccount(username string) error { return t.state.DeleteAccount(username) }

func (t *memTx) CountAccounts() (int, error) { return t.state.CountAccounts() }

func (t *memTx) AppendMovement(username string, mv model.Movement) error {
	return t.state.AppendMovement(username, mv)
}

func (t *memTx) ExecTx(func(Repository) error) error { return ErrAlreadyInTx }

func (t *memTx) Close() error { return nil }

// memState holds no lock of its own.
type memState struct {
	accounts []*model.Account
}

func (st *memState) clone() *memState {
	cp := &memState{accounts: make([]*model.Account, len(st.accounts))}
	for i, acc := range st.accounts {
		cp.accounts[i] = acc.Clone()
	}
	return cp
}

func (st *memState) indexOf(username string) int {
	for i, acc := range st.accounts {
		if acc.Username == username {
			return i
		}
	}
	return -1
}

func (st *memState) InsertAccount(acc *model.Account) error {
	if i := st.indexOf(acc.Username); i >= 0 {
		return fmt.Errorf("username '%s' (%s) is already taken by %s: %w",
			acc.Username, acc.Owner, st.accounts[i].Owner, ErrAccountExists)
	}
	st.accounts = append(st.accounts, acc.Clone())
	return nil
}

func (st *memState) GetAllAccounts() ([]*model.Account, error) {
	out := make([]*model.Account, 0, len(st.accounts))
	for _, acc := range st.accounts {
		out = append(out, acc.Clone())
	}
	return out, nil
}

func (st *memState) GetAccountByUsername(username string) (*model.Account, error) {
	i := st.indexOf(username)
	if i < 0 {
		return nil, fmt.Errorf("account '%s': %w", username, ErrRecordNotFound)
	}
	return st.accounts[i].Clone(), nil
}

func (st *memState) DeleteAccount(username string) error {
	i := st.indexOf(username)
	if i < 0 {
		return fmt.Errorf("account '%s': %w", username, ErrRecordNotFound)
	}
	st.accounts = append(st.accounts[:i], st.accounts[i+1:]...)
	return nil
}

func (st *memState) CountAccounts() (int, error) {
	return len(st.accounts), nil
}

func (st *memState) AppendMovement(username string, mv model.Movement) error {
	i := st.indexOf(username)
	if i < 0 {
		return fmt.Errorf("account '%s': %w", username, ErrRecordNotFound)
	}
	st.accounts[i].Movements = append(st.accounts[i].Movements, mv)
	return nil
}
