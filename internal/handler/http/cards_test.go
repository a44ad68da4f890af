package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/cardfolio/cardfolio/internal/service"
	"github.com/cardfolio/cardfolio/internal/store"
	"github.com/cardfolio/cardfolio/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cardServices wires a default auth mock (token parses to user 1) around
// the given card service so the protected routes are reachable.
func cardServices(cards service.CardService) *service.Services {
	return &service.Services{
		AuthService: &mockAuthService{},
		CardService: cards,
	}
}

// ─────────────────────────────────────────────
// POST /api/cards
// ─────────────────────────────────────────────

func TestCreateCard_Success(t *testing.T) {
	cards := &mockCardService{
		createFn: func(_ context.Context, userID int64, card models.Card) (models.Card, error) {
			assert.Equal(t, int64(1), userID, "owner must come from the parsed token")
			card.CardID = "card-1"
			card.PublicSlug = "slug-1"
			card.OwnerID = userID
			return card, nil
		},
	}
	router := newTestRouter(t, cardServices(cards))

	body := jsonBody(t, models.Card{Name: "Ann"})
	rec := doRequest(router, http.MethodPost, "/api/cards", body, bearerHeader("valid-token"))

	require.Equal(t, http.StatusCreated, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.Equal(t, "card created", env.Message)

	var created models.Card
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "card-1", created.CardID)
	assert.Equal(t, "slug-1", created.PublicSlug)
}

func TestCreateCard_ValidationError(t *testing.T) {
	cards := &mockCardService{
		createFn: func(_ context.Context, _ int64, _ models.Card) (models.Card, error) {
			return models.Card{}, service.ErrValidationNameRequired
		},
	}
	router := newTestRouter(t, cardServices(cards))

	rec := doRequest(router, http.MethodPost, "/api/cards", jsonBody(t, models.Card{}), bearerHeader("valid-token"))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Contains(t, env.Message, service.ErrValidationNameRequired.Error())
}

func TestCreateCard_NoToken(t *testing.T) {
	router := newTestRouter(t, cardServices(&mockCardService{}))

	rec := doRequest(router, http.MethodPost, "/api/cards", jsonBody(t, models.Card{Name: "Ann"}), nil)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

// ─────────────────────────────────────────────
// GET /api/cards and /api/cards/{cardID}
// ─────────────────────────────────────────────

func TestListCards_Success(t *testing.T) {
	cards := &mockCardService{
		listFn: func(_ context.Context, userID int64) ([]models.Card, error) {
			assert.Equal(t, int64(1), userID)
			return []models.Card{{CardID: "card-1"}, {CardID: "card-2"}}, nil
		},
	}
	router := newTestRouter(t, cardServices(cards))

	rec := doRequest(router, http.MethodGet, "/api/cards", "", bearerHeader("valid-token"))

	require.Equal(t, http.StatusOK, rec.Code)

	var listed []models.Card
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &listed))
	assert.Len(t, listed, 2)
}

func TestGetCard_Success(t *testing.T) {
	cards := &mockCardService{
		getFn: func(_ context.Context, userID int64, cardID string) (models.Card, error) {
			assert.Equal(t, "card-1", cardID)
			return models.Card{CardID: cardID, OwnerID: userID, Name: "Ann"}, nil
		},
	}
	router := newTestRouter(t, cardServices(cards))

	rec := doRequest(router, http.MethodGet, "/api/cards/card-1", "", bearerHeader("valid-token"))

	require.Equal(t, http.StatusOK, rec.Code)

	var card models.Card
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &card))
	assert.Equal(t, "Ann", card.Name)
}

func TestGetCard_NotFound(t *testing.T) {
	cards := &mockCardService{
		getFn: func(_ context.Context, _ int64, _ string) (models.Card, error) {
			return models.Card{}, store.ErrCardNotFound
		},
	}
	router := newTestRouter(t, cardServices(cards))

	rec := doRequest(router, http.MethodGet, "/api/cards/missing", "", bearerHeader("valid-token"))

	require.Equal(t, http.StatusNotFound, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
}

// ─────────────────────────────────────────────
// PUT /api/cards/{cardID}
// ─────────────────────────────────────────────

func TestUpdateCard_Success(t *testing.T) {
	newName := "Renamed"
	cards := &mockCardService{
		updateFn: func(_ context.Context, userID int64, cardID string, update models.CardUpdate) (models.Card, error) {
			assert.Equal(t, int64(1), userID)
			assert.Equal(t, "card-1", cardID)
			require.NotNil(t, update.Name)
			assert.Nil(t, update.Title, "absent fields must decode as nil pointers")
			return models.Card{CardID: cardID, Name: *update.Name}, nil
		},
	}
	router := newTestRouter(t, cardServices(cards))

	body := jsonBody(t, models.CardUpdate{Name: &newName})
	rec := doRequest(router, http.MethodPut, "/api/cards/card-1", body, bearerHeader("valid-token"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "card updated", decodeEnvelope(t, rec).Message)
}

func TestUpdateCard_FieldTooLong(t *testing.T) {
	cards := &mockCardService{
		updateFn: func(_ context.Context, _ int64, _ string, _ models.CardUpdate) (models.Card, error) {
			return models.Card{}, service.ErrValidationFieldTooLong
		},
	}
	router := newTestRouter(t, cardServices(cards))

	name := "x"
	body := jsonBody(t, models.CardUpdate{Name: &name})
	rec := doRequest(router, http.MethodPut, "/api/cards/card-1", body, bearerHeader("valid-token"))

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// DELETE /api/cards/{cardID}
// ─────────────────────────────────────────────

func TestDeleteCard_Success(t *testing.T) {
	var deleted string
	cards := &mockCardService{
		deleteFn: func(_ context.Context, userID int64, cardID string) error {
			assert.Equal(t, int64(1), userID)
			deleted = cardID
			return nil
		},
	}
	router := newTestRouter(t, cardServices(cards))

	rec := doRequest(router, http.MethodDelete, "/api/cards/card-1", "", bearerHeader("valid-token"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "card-1", deleted)
	assert.Equal(t, "card deleted", decodeEnvelope(t, rec).Message)
}

func TestDeleteCard_NotFound(t *testing.T) {
	cards := &mockCardService{
		deleteFn: func(_ context.Context, _ int64, _ string) error {
			return store.ErrCardNotFound
		},
	}
	router := newTestRouter(t, cardServices(cards))

	rec := doRequest(router, http.MethodDelete, "/api/cards/missing", "", bearerHeader("valid-token"))

	require.Equal(t, http.StatusNotFound, rec.Code)
}
