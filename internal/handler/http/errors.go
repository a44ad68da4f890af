package http

import "errors"

// Errors produced while extracting the bearer token from the
// "Authorization" header. The auth middleware surfaces them to clients
// verbatim, so keep the wording user-facing.
var (
	// ErrEmptyAuthorizationHeader: the request carried no Authorization
	// header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader: the header exists but is not of the
	// form "<scheme> <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken: the scheme prefix is there but the token itself is
	// an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)
