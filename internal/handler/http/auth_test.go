package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/cardfolio/cardfolio/internal/service"
	"github.com/cardfolio/cardfolio/internal/store"
	"github.com/cardfolio/cardfolio/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// POST /api/auth/register
// ─────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, user models.User) (models.User, error) {
			assert.Equal(t, "ann@example.com", user.Email)
			return models.User{UserID: 1, Name: user.Name, Email: user.Email}, nil
		},
		createTokenFn: func(_ context.Context, user models.User) (models.Token, error) {
			assert.Equal(t, int64(1), user.UserID)
			return models.Token{SignedString: "signed.jwt.token"}, nil
		},
	}
	router := newTestRouter(t, &service.Services{AuthService: auth})

	body := jsonBody(t, models.User{Name: "Ann", Email: "ann@example.com", Password: "secret123"})
	rec := doRequest(router, http.MethodPost, "/api/auth/register", body, nil)

	require.Equal(t, http.StatusCreated, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	assert.Equal(t, "user registered", env.Message)

	var login models.LoginResponse
	require.NoError(t, json.Unmarshal(env.Data, &login))
	assert.Equal(t, "signed.jwt.token", login.Token)
	assert.Equal(t, int64(1), login.User.UserID)
}

func TestRegister_InvalidJSON(t *testing.T) {
	router := newTestRouter(t, &service.Services{AuthService: &mockAuthService{}})

	rec := doRequest(router, http.MethodPost, "/api/auth/register", "{not json", nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, "invalid JSON was passed", env.Message)
}

func TestRegister_InvalidData(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, service.ErrInvalidDataProvided
		},
	}
	router := newTestRouter(t, &service.Services{AuthService: auth})

	rec := doRequest(router, http.MethodPost, "/api/auth/register", jsonBody(t, models.User{}), nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Contains(t, env.Message, service.ErrInvalidDataProvided.Error())
}

func TestRegister_EmailConflict(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, store.ErrEmailAlreadyRegistered
		},
	}
	router := newTestRouter(t, &service.Services{AuthService: auth})

	body := jsonBody(t, models.User{Name: "Ann", Email: "ann@example.com", Password: "secret123"})
	rec := doRequest(router, http.MethodPost, "/api/auth/register", body, nil)

	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestRegister_TokenCreationFailure(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, user models.User) (models.User, error) {
			return models.User{UserID: 1, Email: user.Email}, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return models.Token{}, service.ErrTokenCreationFailed
		},
	}
	router := newTestRouter(t, &service.Services{AuthService: auth})

	body := jsonBody(t, models.User{Name: "Ann", Email: "ann@example.com", Password: "secret123"})
	rec := doRequest(router, http.MethodPost, "/api/auth/register", body, nil)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), env.Message,
		"5xx responses must not leak internal error details")
}

// ─────────────────────────────────────────────
// POST /api/auth/login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, user models.User) (models.User, error) {
			return models.User{UserID: 7, Email: user.Email}, nil
		},
	}
	router := newTestRouter(t, &service.Services{AuthService: auth})

	body := jsonBody(t, models.User{Email: "ann@example.com", Password: "secret123"})
	rec := doRequest(router, http.MethodPost, "/api/auth/login", body, nil)

	require.Equal(t, http.StatusOK, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.Equal(t, "login successful", env.Message)

	var login models.LoginResponse
	require.NoError(t, json.Unmarshal(env.Data, &login))
	assert.NotEmpty(t, login.Token)
	assert.Equal(t, int64(7), login.User.UserID)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, service.ErrInvalidCredentials
		},
	}
	router := newTestRouter(t, &service.Services{AuthService: auth})

	body := jsonBody(t, models.User{Email: "ann@example.com", Password: "wrong"})
	rec := doRequest(router, http.MethodPost, "/api/auth/login", body, nil)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Contains(t, env.Message, service.ErrInvalidCredentials.Error())
}

func TestLogin_UnexpectedServiceError(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, errors.New("connection pool exhausted")
		},
	}
	router := newTestRouter(t, &service.Services{AuthService: auth})

	body := jsonBody(t, models.User{Email: "ann@example.com", Password: "secret123"})
	rec := doRequest(router, http.MethodPost, "/api/auth/login", body, nil)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.NotContains(t, env.Message, "connection pool", "internal details must stay out of responses")
}
