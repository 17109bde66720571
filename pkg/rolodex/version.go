// Package rolodex exposes build-level metadata shared by the CLI.
package rolodex

// Version is the semantic version of the rolodex binary.
const Version = "0.2.0"
