package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/cardfolio/cardfolio/internal/config"
	"github.com/cardfolio/cardfolio/internal/logger"
	"github.com/cardfolio/cardfolio/internal/utils"
	"github.com/cardfolio/cardfolio/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// clientCfg.ServerURL and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if clientCfg.ServerURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(clientCfg config.Client, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(clientCfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server url: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(clientCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.LoginResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/auth/register")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	var login models.LoginResponse
	if err = decodeEnvelopeData(resp, &login); err != nil {
		return models.LoginResponse{}, fmt.Errorf("decode register response: %w", err)
	}

	h.SetToken(login.Token)
	return login, nil
}

func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.LoginResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/auth/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	var login models.LoginResponse
	if err = decodeEnvelopeData(resp, &login); err != nil {
		return models.LoginResponse{}, fmt.Errorf("decode login response: %w", err)
	}

	h.SetToken(login.Token)
	return login, nil
}

func (h *httpServerAdapter) CreateCard(ctx context.Context, card models.Card) (models.Card, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(card).
		Post("/api/cards")
	if err != nil {
		return models.Card{}, fmt.Errorf("create card request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Card{}, err
	}

	var created models.Card
	if err = decodeEnvelopeData(resp, &created); err != nil {
		return models.Card{}, fmt.Errorf("decode create card response: %w", err)
	}

	return created, nil
}

func (h *httpServerAdapter) ListCards(ctx context.Context) ([]models.Card, error) {
	resp, err := h.authedRequest(ctx).Get("/api/cards")
	if err != nil {
		return nil, fmt.Errorf("list cards request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var cards []models.Card
	if err = decodeEnvelopeData(resp, &cards); err != nil {
		return nil, fmt.Errorf("decode list cards response: %w", err)
	}

	return cards, nil
}

func (h *httpServerAdapter) GetCard(ctx context.Context, cardID string) (models.Card, error) {
	resp, err := h.authedRequest(ctx).Get("/api/cards/" + url.PathEscape(cardID))
	if err != nil {
		return models.Card{}, fmt.Errorf("get card request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Card{}, err
	}

	var card models.Card
	if err = decodeEnvelopeData(resp, &card); err != nil {
		return models.Card{}, fmt.Errorf("decode get card response: %w", err)
	}

	return card, nil
}

func (h *httpServerAdapter) UpdateCard(ctx context.Context, cardID string, update models.CardUpdate) (models.Card, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(update).
		Put("/api/cards/" + url.PathEscape(cardID))
	if err != nil {
		return models.Card{}, fmt.Errorf("update card request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Card{}, err
	}

	var updated models.Card
	if err = decodeEnvelopeData(resp, &updated); err != nil {
		return models.Card{}, fmt.Errorf("decode update card response: %w", err)
	}

	return updated, nil
}

func (h *httpServerAdapter) DeleteCard(ctx context.Context, cardID string) error {
	resp, err := h.authedRequest(ctx).Delete("/api/cards/" + url.PathEscape(cardID))
	if err != nil {
		return fmt.Errorf("delete card request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) ViewPublicCard(ctx context.Context, publicSlug string) (models.Card, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/public/cards/url/" + url.PathEscape(publicSlug))
	if err != nil {
		return models.Card{}, fmt.Errorf("view public card request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Card{}, err
	}

	var card models.Card
	if err = decodeEnvelopeData(resp, &card); err != nil {
		return models.Card{}, fmt.Errorf("decode view public card response: %w", err)
	}

	return card, nil
}

func (h *httpServerAdapter) RecordShare(ctx context.Context, cardID string) (int64, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Post("/public/cards/" + url.PathEscape(cardID) + "/share")
	if err != nil {
		return 0, fmt.Errorf("record share request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	var counters struct {
		Shares int64 `json:"shares"`
	}
	if err = decodeEnvelopeData(resp, &counters); err != nil {
		return 0, fmt.Errorf("decode record share response: %w", err)
	}

	return counters.Shares, nil
}

func (h *httpServerAdapter) Health(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/health")
	if err != nil {
		return fmt.Errorf("health request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// decodeEnvelopeData unwraps the response envelope and unmarshals its Data
// field into dst. A successful response with no payload is an error here:
// every caller of this helper expects data back.
func decodeEnvelopeData(resp *resty.Response, dst any) error {
	var envelope struct {
		Success bool            `json:"success"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		return fmt.Errorf("unmarshal envelope: %w", err)
	}
	if len(envelope.Data) == 0 {
		return fmt.Errorf("envelope has no data: %s", envelope.Message)
	}

	return json.Unmarshal(envelope.Data, dst)
}
