// Package types defines the Store interface, entity types, and standard
// errors for the Rolodex contact system.
package types
