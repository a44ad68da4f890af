// Package adapter provides transport-layer abstractions for communicating
// with the cardfolio server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// service layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/cardfolio/cardfolio/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the cardfolio
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It should be called immediately
	// after a successful Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or
	// an empty string if no token has been set yet.
	Token() string

	// Register creates an account from name, email, and password. On
	// success it stores the returned bearer token via SetToken.
	Register(ctx context.Context, user models.User) (models.LoginResponse, error)

	// Login authenticates with email and password. On success it stores
	// the returned bearer token via SetToken.
	Login(ctx context.Context, user models.User) (models.LoginResponse, error)

	// CreateCard saves a new card on the server and returns the stored
	// card including its server-assigned ID and public slug.
	CreateCard(ctx context.Context, card models.Card) (models.Card, error)

	// ListCards returns all active cards owned by the authenticated user.
	ListCards(ctx context.Context) ([]models.Card, error)

	// GetCard fetches one owned card by its ID.
	GetCard(ctx context.Context, cardID string) (models.Card, error)

	// UpdateCard applies a partial update to an owned card and returns the
	// updated card.
	UpdateCard(ctx context.Context, cardID string, update models.CardUpdate) (models.Card, error)

	// DeleteCard soft-deletes an owned card.
	DeleteCard(ctx context.Context, cardID string) error

	// ViewPublicCard fetches the public projection of a card by its public
	// slug, the same way an anonymous link recipient would.
	ViewPublicCard(ctx context.Context, publicSlug string) (models.Card, error)

	// RecordShare bumps the card's share counter on the server, returning
	// the new count. Called when the user shares the public link.
	RecordShare(ctx context.Context, cardID string) (int64, error)

	// Health reports whether the server is reachable and responding.
	Health(ctx context.Context) error
}
