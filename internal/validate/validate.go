// Package validate provides format checks for contact fields. The checks
// are pure functions over the input string; callers loop on a false
// result and re-prompt before submitting to the managers.
package validate

import "regexp"

// Patterns are anchored with \A and \z so the entire input must match;
// a partial match is a rejection.
var (
	// emailRe accepts a local part of alphanumeric segments separated by
	// single '.', '-', or '_' characters, then '@', then one or more
	// domain labels of alphanumerics and hyphens, ending in a label of
	// at least two letters.
	emailRe = regexp.MustCompile(`\A([A-Za-z0-9]+[.\-_])*[A-Za-z0-9]+@[A-Za-z0-9-]+(\.[A-Za-z]{2,})+\z`)

	// phoneRe accepts an optional trunk marker ("8" or "+7", optionally
	// followed by a separator), an optional 3-4 digit area code
	// (optionally parenthesized, optionally followed by a separator),
	// then 5-10 characters of digits, hyphens, and spaces. Embedded
	// separators are accepted on purpose; the rule is not digits-only.
	phoneRe = regexp.MustCompile(`\A((8|\+7)[\- ]?)?(\(?\d{3,4}\)?[\- ]?)?[\d\- ]{5,10}\z`)
)

// IsValidEmail reports whether s is a well-formed email address.
func IsValidEmail(s string) bool {
	return emailRe.MatchString(s)
}

// IsValidPhone reports whether s is a well-formed phone number.
func IsValidPhone(s string) bool {
	return phoneRe.MatchString(s)
}
