// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

var (
	// ErrDuplicateEmail indicates a registration attempt with an email
	// that already has a user record.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidCredentials indicates a failed login: unknown email or
	// wrong password, deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrReportNotFound indicates the requested report id does not exist.
	ErrReportNotFound = errors.New("report not found")

	// ErrUnauthorized indicates a failed admin portal authentication.
	ErrUnauthorized = errors.New("unauthorized")
)
