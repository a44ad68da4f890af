package service

import (
	"errors"

	"github.com/cardfolio/cardfolio/internal/app"
)

// Sentinel messages come from the shared app package so the client error
// mapper can match server envelope messages byte for byte.
var (
	ErrInvalidDataProvided = errors.New(app.MsgInvalidDataProvided)
	ErrInvalidCredentials  = errors.New(app.MsgInvalidCredentials)

	ErrTokenIsExpired          = errors.New(app.MsgTokenIsExpired)
	ErrTokenIsExpiredOrInvalid = errors.New(app.MsgTokenIsExpiredOrInvalid)
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrValidationNameRequired = errors.New(app.MsgNameRequired)
	ErrValidationFieldTooLong = errors.New(app.MsgFieldTooLong)
	ErrValidationBadLinkURL   = errors.New(app.MsgLinkURLRequired)

	ErrPayloadTooLarge = errors.New(app.MsgPayloadTooLarge)
)
