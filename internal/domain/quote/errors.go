package quote

import "fmt"

// ValidationError reports a quote field that violates a business rule.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("quote: invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// EncodingError reports a ledger cell that cannot be decoded back to its
// typed form during a reprint.
type EncodingError struct {
	Field  string
	Value  string
	Reason string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("quote: cannot decode %s %q: %s", e.Field, e.Value, e.Reason)
}

// PersistenceError reports a failed read or append against the ledger.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("quote ledger: %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
