// Package trackererror defines the typed errors shared across the tracker
// core. Every error here is returned as a value and carries enough context
// for the caller to present a reason; none of them is fatal to the process.
package trackererror

import "fmt"

// ValidationError reports bad input to a ledger operation, rejected before
// any mutation takes place.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s '%s': %s", e.Field, e.Value, e.Reason)
}

// ReferenceError reports a transaction referencing an account or category
// that does not exist in the current data set.
type ReferenceError struct {
	Kind string // "account" or "category"
	ID   string
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("unknown %s '%s'", e.Kind, e.ID)
}

// ModeError reports an operation that is not permitted in the current
// session mode, rejected before any store mutation.
type ModeError struct {
	Operation string
	Mode      string
}

func (e *ModeError) Error() string {
	return fmt.Sprintf("%s not permitted in %s mode", e.Operation, e.Mode)
}

// AuthError reports an authentication or registration failure. It carries a
// human-readable reason for display; the session remains usable in demo mode.
type AuthError struct {
	Operation string
	Reason    string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("%s failed: %s", e.Operation, e.Reason)
}
