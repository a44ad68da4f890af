// Package app holds the canonical user-facing message strings shared by the
// server handlers and the client error mapper. Keeping them in one place
// lets the client match server envelope messages without string drift.
package app

const (
	MsgInvalidDataProvided     = "invalid data provided"
	MsgInvalidCredentials      = "invalid email/password"
	MsgTokenIsExpired          = "token is expired"
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	MsgEmailAlreadyRegistered = "email already registered"
	MsgSlugAlreadyExists      = "public slug already exists"
	MsgCardNotFound           = "card not found"

	MsgNameRequired    = "card name is required"
	MsgFieldTooLong    = "field exceeds maximum length"
	MsgLinkURLRequired = "link URL is required"
	MsgPayloadTooLarge = "payload exceeds size limit"
)
