package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cardfolio/cardfolio/internal/config"
	"github.com/cardfolio/cardfolio/internal/logger"
	"github.com/cardfolio/cardfolio/internal/service"
	"github.com/cardfolio/cardfolio/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock service.AuthService
// ─────────────────────────────────────────────

type mockAuthService struct {
	registerUserFn func(ctx context.Context, user models.User) (models.User, error)
	loginFn        func(ctx context.Context, user models.User) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	return m.registerUserFn(ctx, user)
}

func (m *mockAuthService) Login(ctx context.Context, user models.User) (models.User, error) {
	return m.loginFn(ctx, user)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn != nil {
		return m.createTokenFn(ctx, user)
	}
	return models.Token{SignedString: "signed.jwt.token"}, nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, tokenString)
	}
	return models.Token{UserID: 1, Email: "ann@example.com"}, nil
}

// ─────────────────────────────────────────────
// Mock service.CardService
// ─────────────────────────────────────────────

type mockCardService struct {
	createFn func(ctx context.Context, userID int64, card models.Card) (models.Card, error)
	listFn   func(ctx context.Context, userID int64) ([]models.Card, error)
	getFn    func(ctx context.Context, userID int64, cardID string) (models.Card, error)
	updateFn func(ctx context.Context, userID int64, cardID string, update models.CardUpdate) (models.Card, error)
	deleteFn func(ctx context.Context, userID int64, cardID string) error
}

func (m *mockCardService) Create(ctx context.Context, userID int64, card models.Card) (models.Card, error) {
	return m.createFn(ctx, userID, card)
}

func (m *mockCardService) List(ctx context.Context, userID int64) ([]models.Card, error) {
	return m.listFn(ctx, userID)
}

func (m *mockCardService) Get(ctx context.Context, userID int64, cardID string) (models.Card, error) {
	return m.getFn(ctx, userID, cardID)
}

func (m *mockCardService) Update(ctx context.Context, userID int64, cardID string, update models.CardUpdate) (models.Card, error) {
	return m.updateFn(ctx, userID, cardID, update)
}

func (m *mockCardService) Delete(ctx context.Context, userID int64, cardID string) error {
	return m.deleteFn(ctx, userID, cardID)
}

// ─────────────────────────────────────────────
// Mock service.PublicViewerService
// ─────────────────────────────────────────────

type mockPublicViewerService struct {
	viewByIDFn    func(ctx context.Context, cardID string) (models.Card, error)
	viewBySlugFn  func(ctx context.Context, slug string) (models.Card, error)
	recordShareFn func(ctx context.Context, cardID string) (int64, error)
}

func (m *mockPublicViewerService) ViewByID(ctx context.Context, cardID string) (models.Card, error) {
	return m.viewByIDFn(ctx, cardID)
}

func (m *mockPublicViewerService) ViewBySlug(ctx context.Context, slug string) (models.Card, error) {
	return m.viewBySlugFn(ctx, slug)
}

func (m *mockPublicViewerService) RecordShare(ctx context.Context, cardID string) (int64, error) {
	return m.recordShareFn(ctx, cardID)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestRouter wires the handler with the given service mocks and returns
// the fully initialised router, middleware included.
func newTestRouter(t *testing.T, services *service.Services) http.Handler {
	t.Helper()
	h := NewHandler(services, config.App{Version: "test"}, config.Server{}, logger.Nop())
	return h.Init()
}

// doRequest executes req against the router and returns the recorded
// response.
func doRequest(router http.Handler, method, target, body string, header http.Header) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	for key, values := range header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// envelope is the decoded response wrapper with the payload kept raw so
// individual tests can unmarshal it into the type they expect.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  []string        `json:"errors"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func bearerHeader(token string) http.Header {
	return http.Header{"Authorization": []string{"Bearer " + token}}
}

func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}
