// Package contacts enforces the business rules layered above raw contact
// storage: cross-owner phone uniqueness on add, and per-owner access
// guards on edit, delete, and detail view.
package contacts

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/dukaforge/rolodex/pkg/types"
)

// Manager layers business rules over the store's raw contact operations.
// It holds a non-owning reference to the store.
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

// ForUser returns a Session scoped to the given user. Every operation on
// the Session acts on behalf of that user; operations that touch an
// existing contact verify ownership first.
func (m *Manager) ForUser(userID int64) *Session {
	return &Session{manager: m, userID: userID}
}

// Session is a capability-scoped handle: a contact manager bound to one
// authenticated user ID. The ownership check lives here, in one place,
// rather than scattered through the boundary layer.
type Session struct {
	manager *Manager
	userID  int64
}

// UserID returns the user this session acts for.
func (s *Session) UserID() int64 {
	return s.userID
}

// Add creates a contact after checking that no contact anywhere in the
// store already uses the phone number. Phone uniqueness is global across
// owners; a duplicate rejects the add with ErrDuplicatePhone before any
// insertion is attempted.
func (s *Session) Add(ctx context.Context, firstName, lastName, phone, email string) (int64, error) {
	m := s.manager

	taken, err := m.store.CheckDuplicatePhone(ctx, phone)
	if err != nil {
		return 0, err
	}
	if taken {
		return 0, fmt.Errorf("phone %q: %w", phone, types.ErrDuplicatePhone)
	}

	id, err := m.store.AddContact(ctx, s.userID, firstName, lastName, phone, email)
	if err != nil {
		return 0, err
	}
	m.logger.Info("contact created",
		zap.Int64("contact_id", id), zap.Int64("user_id", s.userID))
	return id, nil
}

// Edit updates the named contact. Empty fields keep their prior value.
// Returns ErrNotFound if the contact does not exist and ErrNotOwner if
// it belongs to another user.
func (s *Session) Edit(ctx context.Context, contactID int64, firstName, lastName, phone, email string) error {
	if err := s.guard(ctx, contactID); err != nil {
		return err
	}
	return s.manager.store.EditContact(ctx, contactID, firstName, lastName, phone, email)
}

// Delete removes the named contact. Deleting an ID that does not exist
// succeeds without error; deleting another user's contact returns
// ErrNotOwner.
func (s *Session) Delete(ctx context.Context, contactID int64) error {
	err := s.guard(ctx, contactID)
	if err != nil {
		if isNotFound(err) {
			// Idempotent delete: an absent contact is not an error.
			return nil
		}
		return err
	}
	return s.manager.store.DeleteContact(ctx, contactID)
}

// Details returns the named contact. Returns ErrNotFound if it does not
// exist and ErrNotOwner if it belongs to another user.
func (s *Session) Details(ctx context.Context, contactID int64) (*types.Contact, error) {
	contact, err := s.manager.store.GetContactDetails(ctx, contactID)
	if err != nil {
		return nil, err
	}
	if contact.UserID != s.userID {
		return nil, fmt.Errorf("contact %d: %w", contactID, types.ErrNotOwner)
	}
	return contact, nil
}

// Search returns the session user's contacts matching query as a
// case-sensitive substring of any text field.
func (s *Session) Search(ctx context.Context, query string) ([]types.Contact, error) {
	return s.manager.store.SearchContacts(ctx, s.userID, query)
}

// List returns all of the session user's contacts in insertion order.
func (s *Session) List(ctx context.Context) ([]types.Contact, error) {
	return s.manager.store.GetContacts(ctx, s.userID)
}

// isNotFound reports whether err wraps ErrNotFound.
func isNotFound(err error) bool {
	return errors.Is(err, types.ErrNotFound)
}

// guard verifies that the named contact exists and belongs to the
// session user.
func (s *Session) guard(ctx context.Context, contactID int64) error {
	contact, err := s.manager.store.GetContactDetails(ctx, contactID)
	if err != nil {
		return err
	}
	if contact.UserID != s.userID {
		return fmt.Errorf("contact %d: %w", contactID, types.ErrNotOwner)
	}
	return nil
}
