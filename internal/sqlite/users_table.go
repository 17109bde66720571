// This file implements the users table accessor: registration and
// credential lookup.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/dukaforge/rolodex/internal/passhash"
	"github.com/dukaforge/rolodex/pkg/types"
)

// AddUser hashes the password and inserts a new user row, returning the
// assigned ID. Returns ErrDuplicateUsername if the username is taken;
// the existing row is left untouched.
func (s *Store) AddUser(ctx context.Context, username, password string) (int64, error) {
	db, err := s.handle()
	if err != nil {
		return 0, err
	}

	digest := passhash.Digest(password)

	res, err := db.ExecContext(ctx,
		"INSERT INTO users (username, password) VALUES (?, ?)",
		username, digest,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("user %q: %w", username, types.ErrDuplicateUsername)
		}
		return 0, fmt.Errorf("inserting user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting user id: %w", err)
	}

	s.logger.Debug("user added", zap.Int64("user_id", id))
	return id, nil
}

// AuthenticateUser hashes the input password and looks up a row matching
// both username and digest. Returns the user ID and true on a match, and
// false otherwise. A missing username and a wrong password produce the
// same result; the caller learns nothing about which failed.
func (s *Store) AuthenticateUser(ctx context.Context, username, password string) (int64, bool, error) {
	db, err := s.handle()
	if err != nil {
		return 0, false, err
	}

	digest := passhash.Digest(password)

	var id int64
	err = db.QueryRowContext(ctx,
		"SELECT id FROM users WHERE username = ? AND password = ?",
		username, digest,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("authenticating user: %w", err)
	}

	return id, true, nil
}

// isUniqueViolation reports whether err is a SQLite UNIQUE constraint
// failure. The modernc driver exposes constraint errors by message only.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
