package adapter

import "errors"

// Transport-agnostic sentinel errors produced by mapHTTPError. Client
// services match against them with [errors.Is] to decide between retrying,
// re-authenticating, and surfacing the failure to the user.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrPayloadTooLarge     = errors.New("payload too large")
	ErrInternalServerError = errors.New("internal server error")
)
