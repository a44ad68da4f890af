package http

import (
	"errors"
	"net/http"

	"github.com/cardfolio/cardfolio/internal/service"
	"github.com/cardfolio/cardfolio/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:    http.StatusBadRequest,
	service.ErrValidationNameRequired: http.StatusBadRequest,
	service.ErrValidationFieldTooLong: http.StatusBadRequest,
	service.ErrValidationBadLinkURL:   http.StatusBadRequest,

	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpired:          http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	service.ErrPayloadTooLarge: http.StatusRequestEntityTooLarge,

	service.ErrTokenCreationFailed: http.StatusInternalServerError,

	store.ErrEmailAlreadyRegistered: http.StatusConflict,
	store.ErrDuplicateSlug:          http.StatusConflict,
	store.ErrNoUserWasFound:         http.StatusNotFound,
	store.ErrCardNotFound:           http.StatusNotFound,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
	store.ErrUnknownCounter:   http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
