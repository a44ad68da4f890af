package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/cardfolio/cardfolio/internal/logger"
	"github.com/cardfolio/cardfolio/internal/service"
	"github.com/cardfolio/cardfolio/internal/utils"
)

// decodeJSON decodes the request body into dst and, on failure, writes the
// appropriate error envelope: 413 when the body-limit middleware truncated
// the read, 400 for malformed JSON. It returns false when a response has
// already been written and the handler should stop.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		log := logger.FromRequest(r)

		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			log.Err(err).Int64("limit", maxBytesErr.Limit).Msg("request body too large")
			utils.WriteErrorEnvelope(w, http.StatusRequestEntityTooLarge, service.ErrPayloadTooLarge.Error(), nil)
			return false
		}

		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteErrorEnvelope(w, http.StatusBadRequest, "invalid JSON was passed", nil)
		return false
	}

	return true
}

// writeServiceError maps a service or store error to its HTTP status and
// writes a sanitized failure envelope.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	if status >= http.StatusInternalServerError {
		// unclassified errors can carry DSNs or tokens; scrub before logging
		log.Error().Str("error", utils.Sanitize(err.Error())).Msg(msg)
		utils.WriteErrorEnvelope(w, status, http.StatusText(status), nil)
		return
	}

	log.Warn().Err(err).Msg(msg)
	utils.WriteErrorEnvelope(w, status, err.Error(), nil)
}
