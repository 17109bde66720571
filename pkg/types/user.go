package types

// User represents an operator account. Password holds the hex digest of
// the registration password, never the plaintext.
type User struct {
	ID       int64  // Assigned by the store on registration.
	Username string // Unique across all users.
	Password string // Lowercase hex digest, fixed length.
}
