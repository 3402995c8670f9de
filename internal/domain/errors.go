package domain

// The error taxonomy mirrors how failures surface in the UI. Every
// error carries the user-facing message; nothing here is fatal.

// AuthError is a failed credential exchange, or missing login input
// caught before any network call.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string { return e.Message }

// ValidationError is a draft failing a validation rule. Always
// recoverable; blocks submission only.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// FetchError is a failed collection load. The client degrades to an
// empty list with a persistent banner until the next successful fetch.
type FetchError struct {
	Message string
}

func (e *FetchError) Error() string { return e.Message }

// MutationError is a failed create, update, or delete. The message is
// the server's response body when it sent one.
type MutationError struct {
	Message string
}

func (e *MutationError) Error() string { return e.Message }
