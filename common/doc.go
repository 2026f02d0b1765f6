// Package common holds the small primitives shared by the ledger and the
// command line tools: the field hashing used for block hashes and
// transaction identifiers, and a strict success/failure Result type.
package common
