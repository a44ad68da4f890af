package service

import (
	"errors"
	"strings"

	"github.com/cardfolio/cardfolio/internal/adapter"
	"github.com/cardfolio/cardfolio/internal/app"
	"github.com/cardfolio/cardfolio/internal/store"
)

// mapAdapterError translates the adapter's transport error into the same
// business error the server-side service would have returned, so the rest of
// the client never cares which side of the wire a failure came from.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	// server messages may carry wrapped detail after the canonical text
	// ("field exceeds maximum length: name must be ..."), so match on the
	// canonical prefix rather than equality
	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch {
		case strings.HasPrefix(msg, app.MsgNameRequired):
			return ErrValidationNameRequired
		case strings.HasPrefix(msg, app.MsgFieldTooLong):
			return ErrValidationFieldTooLong
		case strings.HasPrefix(msg, app.MsgLinkURLRequired):
			return ErrValidationBadLinkURL
		}
		return ErrInvalidDataProvided

	case errors.Is(err, adapter.ErrUnauthorized):
		switch {
		case strings.HasPrefix(msg, app.MsgInvalidCredentials):
			return ErrInvalidCredentials
		case msg == app.MsgTokenIsExpired:
			return ErrTokenIsExpired
		}
		return ErrTokenIsExpiredOrInvalid

	case errors.Is(err, adapter.ErrNotFound):
		return store.ErrCardNotFound

	case errors.Is(err, adapter.ErrConflict):
		if strings.HasPrefix(msg, app.MsgSlugAlreadyExists) {
			return store.ErrDuplicateSlug
		}
		return store.ErrEmailAlreadyRegistered

	case errors.Is(err, adapter.ErrPayloadTooLarge):
		return ErrPayloadTooLarge
	}

	return err
}

// extractBody extracts the body from a message of the form "conflict: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
