// Package sqlite implements the SQLite storage backend for Rolodex.
// The store owns the schema and every SQL operation; business rules such
// as phone uniqueness live above it in the managers.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/dukaforge/rolodex/pkg/types"
)

// DBFileName is the database file created inside the data directory.
const DBFileName = "contacts.db"

// Compile-time interface check: Store must implement types.Store.
var _ types.Store = (*Store)(nil)

// Store implements the types.Store interface over a single SQLite file.
// The process owns the file exclusively for the store's lifetime; a
// second process opening the same file concurrently is undefined.
type Store struct {
	mu     sync.Mutex
	open   bool
	config types.Config
	db     *sql.DB
	logger *zap.Logger
}

// NewStore creates a new store instance. The store is not open; call
// Open with a Config to acquire the durable handle.
func NewStore(logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{logger: logger}
}

// Open initializes the store with the given configuration. Creates
// DataDir if it does not exist, opens the database file, and applies
// the idempotent schema. Returns ErrAlreadyOpen if already open.
func (s *Store) Open(config types.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.open {
		return types.ErrAlreadyOpen
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	dbPath := filepath.Join(dataDir, DBFileName)
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("opening %s: %w", dbPath, err)
	}

	// One in-process caller, one connection. Serializing here keeps the
	// driver from opening extra file handles that SQLite would lock.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		db.Close()
		return fmt.Errorf("enabling foreign keys: %w", err)
	}

	// LIKE folds ASCII case by default; search is contractually
	// case-sensitive.
	if _, err := db.Exec("PRAGMA case_sensitive_like = ON;"); err != nil {
		db.Close()
		return fmt.Errorf("configuring like: %w", err)
	}

	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("applying schema: %w", err)
		}
	}
	for _, ddl := range indexDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("applying indexes: %w", err)
		}
	}

	s.db = db
	s.config = config
	s.open = true

	s.logger.Debug("store opened", zap.String("path", dbPath))
	return nil
}

// Close releases the durable handle. Idempotent: closing a closed store
// succeeds. After Close, operations return ErrStoreClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return nil
	}

	if err := s.db.Close(); err != nil {
		return fmt.Errorf("closing database: %w", err)
	}
	s.db = nil
	s.open = false

	s.logger.Debug("store closed")
	return nil
}

// handle returns the live database handle, or ErrStoreClosed.
func (s *Store) handle() (*sql.DB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return nil, types.ErrStoreClosed
	}
	return s.db, nil
}
