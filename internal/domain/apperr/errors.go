// Package apperr defines the error kinds the services report. Handlers map
// them to HTTP statuses with errors.Is; store-level failures are converted to
// one of these kinds at the repository boundary and never leak raw.
package apperr

import "errors"

var (
	// ErrNotFound means a referenced entity is absent.
	ErrNotFound = errors.New("not found")

	// ErrForbidden means an authorization rule rejected the requester.
	ErrForbidden = errors.New("forbidden")

	// ErrDuplicateEmail means the email is already registered.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidInput covers empty/missing required fields, malformed
	// identifiers and too-short search queries.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidCredentials is returned for unknown email or wrong password,
	// without distinguishing the two.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnavailable means a backing dependency the operation needs is not
	// configured or not reachable. The request may succeed once it is.
	ErrUnavailable = errors.New("service unavailable")
)

// Invalid wraps ErrInvalidInput with a human-readable reason.
func Invalid(reason string) error {
	return errors.Join(ErrInvalidInput, errors.New(reason))
}
