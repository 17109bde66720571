// This file implements the contacts table accessor: raw contact CRUD and
// search. Phone uniqueness is deliberately not enforced here; it is a
// cross-owner business rule that belongs to the contacts manager.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/dukaforge/rolodex/pkg/types"
)

// contactColumns is the SELECT list shared by every contact query, in
// hydrateContact's scan order.
const contactColumns = "id, user_id, first_name, last_name, phone, email"

// CheckDuplicatePhone reports whether any contact row, regardless of
// owner, has this exact phone string.
func (s *Store) CheckDuplicatePhone(ctx context.Context, phone string) (bool, error) {
	db, err := s.handle()
	if err != nil {
		return false, err
	}

	var count int
	err = db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM contacts WHERE phone = ?", phone,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("checking duplicate phone: %w", err)
	}
	return count > 0, nil
}

// AddContact inserts a contact row owned by userID and returns the
// assigned ID. The caller is expected to have checked phone uniqueness.
func (s *Store) AddContact(ctx context.Context, userID int64, firstName, lastName, phone, email string) (int64, error) {
	db, err := s.handle()
	if err != nil {
		return 0, err
	}

	res, err := db.ExecContext(ctx,
		"INSERT INTO contacts (user_id, first_name, last_name, phone, email) VALUES (?, ?, ?, ?, ?)",
		userID, firstName, lastName, phone, email,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting contact: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting contact id: %w", err)
	}

	s.logger.Debug("contact added",
		zap.Int64("contact_id", id), zap.Int64("user_id", userID))
	return id, nil
}

// EditContact replaces each non-empty field on the stored contact. Empty
// fields keep their prior value, so a field cannot be cleared through
// this operation. Editing with every field empty confirms existence and
// changes nothing. Returns ErrNotFound if the contact does not exist.
func (s *Store) EditContact(ctx context.Context, contactID int64, firstName, lastName, phone, email string) error {
	db, err := s.handle()
	if err != nil {
		return err
	}

	var assignments []string
	var args []any
	if firstName != "" {
		assignments = append(assignments, "first_name = ?")
		args = append(args, firstName)
	}
	if lastName != "" {
		assignments = append(assignments, "last_name = ?")
		args = append(args, lastName)
	}
	if phone != "" {
		assignments = append(assignments, "phone = ?")
		args = append(args, phone)
	}
	if email != "" {
		assignments = append(assignments, "email = ?")
		args = append(args, email)
	}

	if len(assignments) == 0 {
		// Nothing to change; still report a missing contact.
		var exists int
		err := db.QueryRowContext(ctx,
			"SELECT 1 FROM contacts WHERE id = ?", contactID,
		).Scan(&exists)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("contact %d: %w", contactID, types.ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("checking contact existence: %w", err)
		}
		return nil
	}

	query := "UPDATE contacts SET " + strings.Join(assignments, ", ") + " WHERE id = ?"
	args = append(args, contactID)

	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating contact: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("contact %d: %w", contactID, types.ErrNotFound)
	}

	s.logger.Debug("contact edited", zap.Int64("contact_id", contactID))
	return nil
}

// DeleteContact removes the contact row if present. Deleting an absent
// ID succeeds without error and changes nothing.
func (s *Store) DeleteContact(ctx context.Context, contactID int64) error {
	db, err := s.handle()
	if err != nil {
		return err
	}

	if _, err := db.ExecContext(ctx,
		"DELETE FROM contacts WHERE id = ?", contactID,
	); err != nil {
		return fmt.Errorf("deleting contact: %w", err)
	}

	s.logger.Debug("contact deleted", zap.Int64("contact_id", contactID))
	return nil
}

// SearchContacts returns contacts owned by userID where first name, last
// name, phone, or email contains query as a case-sensitive substring.
// Case sensitivity matches the stored-text collation; broadening it would
// change which rows existing callers see.
func (s *Store) SearchContacts(ctx context.Context, userID int64, query string) ([]types.Contact, error) {
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	pattern := "%" + escapeLike(query) + "%"
	rows, err := db.QueryContext(ctx,
		"SELECT "+contactColumns+" FROM contacts WHERE user_id = ? AND ("+
			"first_name LIKE ? ESCAPE '\\' OR last_name LIKE ? ESCAPE '\\' OR "+
			"phone LIKE ? ESCAPE '\\' OR email LIKE ? ESCAPE '\\') ORDER BY id",
		userID, pattern, pattern, pattern, pattern,
	)
	if err != nil {
		return nil, fmt.Errorf("searching contacts: %w", err)
	}
	defer rows.Close()

	return collectContacts(rows)
}

// GetContactDetails returns the contact with the given ID, or ErrNotFound.
func (s *Store) GetContactDetails(ctx context.Context, contactID int64) (*types.Contact, error) {
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	row := db.QueryRowContext(ctx,
		"SELECT "+contactColumns+" FROM contacts WHERE id = ?", contactID,
	)
	c, err := hydrateContact(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("contact %d: %w", contactID, types.ErrNotFound)
		}
		return nil, fmt.Errorf("getting contact %d: %w", contactID, err)
	}
	return c, nil
}

// GetContacts returns all contacts owned by userID in insertion order.
func (s *Store) GetContacts(ctx context.Context, userID int64) ([]types.Contact, error) {
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx,
		"SELECT "+contactColumns+" FROM contacts WHERE user_id = ? ORDER BY id",
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing contacts: %w", err)
	}
	defer rows.Close()

	return collectContacts(rows)
}

// Clear wipes every row from the named table. Only the standard table
// names are accepted; anything else returns ErrTableUnknown. This is the
// administrative entry point and is not reachable from the normal flow.
func (s *Store) Clear(ctx context.Context, table string) error {
	db, err := s.handle()
	if err != nil {
		return err
	}

	switch table {
	case types.UsersTable, types.ContactsTable:
	default:
		return fmt.Errorf("table %q: %w", table, types.ErrTableUnknown)
	}

	if _, err := db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
		return fmt.Errorf("clearing %s: %w", table, err)
	}

	s.logger.Warn("table cleared", zap.String("table", table))
	return nil
}

// escapeLike escapes LIKE metacharacters so the query is treated as a
// literal substring.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}

// hydrateContact converts a single row into a *types.Contact.
func hydrateContact(row *sql.Row) (*types.Contact, error) {
	var c types.Contact
	if err := row.Scan(&c.ID, &c.UserID, &c.FirstName, &c.LastName, &c.Phone, &c.Email); err != nil {
		return nil, err
	}
	return &c, nil
}

// collectContacts drains rows into a slice, returning an empty slice
// rather than nil when nothing matched.
func collectContacts(rows *sql.Rows) ([]types.Contact, error) {
	results := []types.Contact{}
	for rows.Next() {
		var c types.Contact
		if err := rows.Scan(&c.ID, &c.UserID, &c.FirstName, &c.LastName, &c.Phone, &c.Email); err != nil {
			return nil, fmt.Errorf("scanning contact: %w", err)
		}
		results = append(results, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating contacts: %w", err)
	}
	return results, nil
}
