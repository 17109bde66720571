package types

import (
	"context"
	"errors"
)

// Store defines the interface for durable contact storage.
// Callers open the store with a Config, perform operations, and close it
// when done. All mutating operations commit before returning.
type Store interface {
	// Open connects the Store to the durable file described by config.
	// Creates the DataDir if it does not exist and applies the schema,
	// which is idempotent. Returns ErrAlreadyOpen if called while open.
	Open(config Config) error

	// Close releases the durable handle. Idempotent: multiple calls
	// succeed. After Close, operations return ErrStoreClosed.
	Close() error

	// AddUser hashes the password and inserts a new user row.
	// Returns ErrDuplicateUsername if the username is already present.
	AddUser(ctx context.Context, username, password string) (int64, error)

	// AuthenticateUser hashes the input password and looks up a row
	// matching both username and digest. Returns the user ID and true on
	// a match, and false otherwise. Unknown username and wrong password
	// are indistinguishable to the caller.
	AuthenticateUser(ctx context.Context, username, password string) (int64, bool, error)

	// CheckDuplicatePhone reports whether any contact row, regardless of
	// owner, has this exact phone string.
	CheckDuplicatePhone(ctx context.Context, phone string) (bool, error)

	// AddContact inserts a contact row owned by userID and returns the
	// assigned ID. Phone uniqueness is the business layer's job; the
	// store does not enforce it.
	AddContact(ctx context.Context, userID int64, firstName, lastName, phone, email string) (int64, error)

	// EditContact replaces each non-empty field on the stored contact.
	// Empty fields keep their prior value; a field cannot be cleared.
	// Returns ErrNotFound if the contact does not exist.
	EditContact(ctx context.Context, contactID int64, firstName, lastName, phone, email string) error

	// DeleteContact removes the contact row if present. Deleting an
	// absent ID succeeds without error.
	DeleteContact(ctx context.Context, contactID int64) error

	// SearchContacts returns contacts owned by userID where first name,
	// last name, phone, or email contains query as a case-sensitive
	// substring.
	SearchContacts(ctx context.Context, userID int64, query string) ([]Contact, error)

	// GetContactDetails returns the contact with the given ID, or
	// ErrNotFound.
	GetContactDetails(ctx context.Context, contactID int64) (*Contact, error)

	// GetContacts returns all contacts owned by userID in insertion order.
	GetContacts(ctx context.Context, userID int64) ([]Contact, error)

	// Clear wipes every row from the named table. Only the standard
	// table names are accepted; returns ErrTableUnknown otherwise.
	// Administrative entry point, not reachable from the normal flow.
	Clear(ctx context.Context, table string) error
}

// Store lifecycle errors.
var (
	ErrStoreClosed  = errors.New("store is closed")
	ErrAlreadyOpen  = errors.New("store is already open")
	ErrTableUnknown = errors.New("unknown table")
)

// Operation errors.
var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidID         = errors.New("invalid id")
	ErrDuplicateUsername = errors.New("username already exists")
	ErrDuplicatePhone    = errors.New("phone number already exists")
	ErrNotOwner          = errors.New("contact belongs to another user")
)

// Standard table names for Store.Clear.
const (
	UsersTable    = "users"
	ContactsTable = "contacts"
)

// StandardTableNames lists all standard table names for enumeration.
var StandardTableNames = []string{
	UsersTable,
	ContactsTable,
}
