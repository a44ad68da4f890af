package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cardfolio/cardfolio/internal/logger"
	"github.com/cardfolio/cardfolio/internal/utils"
	"github.com/cardfolio/cardfolio/models"
)

// userIDFromContext reads the authenticated user ID stored by the auth
// middleware. A missing value means the route was wired without the
// middleware, which is a server-side bug, so the request fails with 500.
func userIDFromContext(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Error().Msg("no user ID in request context on protected route")
		utils.WriteErrorEnvelope(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError), nil)
		return 0, false
	}
	return userID, true
}

func (h *Handler) createCard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := userIDFromContext(w, r)
	if !ok {
		return
	}

	var card models.Card
	if !decodeJSON(w, r, &card) {
		return
	}

	created, err := h.services.CardService.Create(ctx, userID, card)
	if err != nil {
		writeServiceError(w, r, err, "card creation failed")
		return
	}

	log.Debug().Str("card_id", created.CardID).Str("slug", created.PublicSlug).Msg("card created")

	utils.WriteEnvelope(w, http.StatusCreated, "card created", created)
}

func (h *Handler) listCards(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := userIDFromContext(w, r)
	if !ok {
		return
	}

	cards, err := h.services.CardService.List(ctx, userID)
	if err != nil {
		writeServiceError(w, r, err, "listing cards failed")
		return
	}

	utils.WriteEnvelope(w, http.StatusOK, "cards retrieved", cards)
}

func (h *Handler) getCard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := userIDFromContext(w, r)
	if !ok {
		return
	}

	cardID := chi.URLParam(r, "cardID")

	card, err := h.services.CardService.Get(ctx, userID, cardID)
	if err != nil {
		writeServiceError(w, r, err, "card retrieval failed")
		return
	}

	utils.WriteEnvelope(w, http.StatusOK, "card retrieved", card)
}

func (h *Handler) updateCard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := userIDFromContext(w, r)
	if !ok {
		return
	}

	cardID := chi.URLParam(r, "cardID")

	var update models.CardUpdate
	if !decodeJSON(w, r, &update) {
		return
	}

	updated, err := h.services.CardService.Update(ctx, userID, cardID, update)
	if err != nil {
		writeServiceError(w, r, err, "card update failed")
		return
	}

	log.Debug().Str("card_id", updated.CardID).Msg("card updated")

	utils.WriteEnvelope(w, http.StatusOK, "card updated", updated)
}

func (h *Handler) deleteCard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := userIDFromContext(w, r)
	if !ok {
		return
	}

	cardID := chi.URLParam(r, "cardID")

	if err := h.services.CardService.Delete(ctx, userID, cardID); err != nil {
		writeServiceError(w, r, err, "card deletion failed")
		return
	}

	log.Debug().Str("card_id", cardID).Msg("card deleted")

	utils.WriteEnvelope(w, http.StatusOK, "card deleted", nil)
}
