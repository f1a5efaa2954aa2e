package identity

import "errors"

var (
	// ErrDisabled is returned when no identity provider is configured.
	ErrDisabled = errors.New("identity provider not configured")

	// ErrUnavailable is returned when the provider cannot be reached.
	ErrUnavailable = errors.New("identity provider unavailable")

	// ErrInvalidCredentials is returned for a rejected email/password pair.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrNotSignedIn is returned when an operation requires a session
	// and no token is stored.
	ErrNotSignedIn = errors.New("not signed in")
)
