package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cardfolio/cardfolio/internal/utils"
)

func (h *Handler) viewCardByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	cardID := chi.URLParam(r, "cardID")

	card, err := h.services.PublicViewerService.ViewByID(ctx, cardID)
	if err != nil {
		writeServiceError(w, r, err, "public card view failed")
		return
	}

	utils.WriteEnvelope(w, http.StatusOK, "card retrieved", card)
}

func (h *Handler) viewCardBySlug(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	slug := chi.URLParam(r, "publicSlug")

	card, err := h.services.PublicViewerService.ViewBySlug(ctx, slug)
	if err != nil {
		writeServiceError(w, r, err, "public card view by slug failed")
		return
	}

	utils.WriteEnvelope(w, http.StatusOK, "card retrieved", card)
}

func (h *Handler) recordShare(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	cardID := chi.URLParam(r, "cardID")

	shares, err := h.services.PublicViewerService.RecordShare(ctx, cardID)
	if err != nil {
		writeServiceError(w, r, err, "recording share failed")
		return
	}

	utils.WriteEnvelope(w, http.StatusOK, "share recorded", map[string]int64{"shares": shares})
}
