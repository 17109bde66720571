// Package passhash turns passwords into the digest form stored by the
// users table. The transform is SHA-512 over the raw password bytes,
// rendered as lowercase hex, with no salt. Unsalted digests are a known
// weakness carried forward deliberately: changing the transform would
// invalidate every stored credential in existing data files.
package passhash

import (
	"crypto/sha512"
	"encoding/hex"
)

// DigestLength is the length in characters of every digest.
const DigestLength = sha512.Size * 2

// Digest returns the lowercase hex SHA-512 digest of password.
// Deterministic: the same input always yields the same output.
func Digest(password string) string {
	sum := sha512.Sum512([]byte(password))
	return hex.EncodeToString(sum[:])
}
