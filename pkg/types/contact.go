package types

import "strings"

// Contact represents one address-book entry. Every contact belongs to
// exactly one user for its whole lifetime.
type Contact struct {
	ID        int64  // Assigned by the store on creation.
	UserID    int64  // Owning user; set at creation, never changed.
	FirstName string
	LastName  string
	Phone     string
	Email     string
}

// FullName returns the display name, joining the non-empty name parts
// with a single space.
func (c Contact) FullName() string {
	parts := make([]string, 0, 2)
	if c.FirstName != "" {
		parts = append(parts, c.FirstName)
	}
	if c.LastName != "" {
		parts = append(parts, c.LastName)
	}
	return strings.Join(parts, " ")
}

// Matches reports whether query occurs as a case-sensitive substring in
// any of the contact's text fields. It mirrors the store's search rule
// for in-memory filtering.
func (c Contact) Matches(query string) bool {
	return strings.Contains(c.FirstName, query) ||
		strings.Contains(c.LastName, query) ||
		strings.Contains(c.Phone, query) ||
		strings.Contains(c.Email, query)
}
