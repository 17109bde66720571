// Package accounts registers and authenticates operator accounts,
// delegating all storage to the store.
package accounts

import (
	"context"

	"go.uber.org/zap"

	"github.com/dukaforge/rolodex/pkg/types"
)

// Manager handles account registration and login. It holds a non-owning
// reference to the store; the store's lifetime belongs to the caller.
type Manager struct {
	store  types.Store
	logger *zap.Logger
}

// NewManager returns a Manager bound to the given store.
func NewManager(store types.Store, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{store: store, logger: logger}
}

// Register creates a new account and returns its user ID. A taken
// username surfaces as ErrDuplicateUsername.
func (m *Manager) Register(ctx context.Context, username, password string) (int64, error) {
	id, err := m.store.AddUser(ctx, username, password)
	if err != nil {
		return 0, err
	}
	m.logger.Info("account registered", zap.Int64("user_id", id))
	return id, nil
}

// Login authenticates the credentials and returns the user ID and true
// on success. On failure it returns false with a nil error; only a
// generic invalid-credentials outcome is logged, with no hint of whether
// the username or the password was wrong.
func (m *Manager) Login(ctx context.Context, username, password string) (int64, bool, error) {
	id, ok, err := m.store.AuthenticateUser(ctx, username, password)
	if err != nil {
		return 0, false, err
	}
	if !ok {
		m.logger.Info("login failed: invalid credentials")
		return 0, false, nil
	}
	m.logger.Info("login succeeded", zap.Int64("user_id", id))
	return id, true, nil
}
