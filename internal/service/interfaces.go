package service

import (
	"context"

	"github.com/cardfolio/cardfolio/models"
)

// AuthService verifies submitted credentials and manages bearer tokens.
type AuthService interface {
	// RegisterUser creates an account from name, email, and plaintext
	// password. The password is hashed before it reaches the store; the
	// returned projection never carries the hash.
	RegisterUser(ctx context.Context, user models.User) (models.User, error)

	// Login authenticates email+password. Unknown email and wrong
	// password are deliberately indistinguishable to the caller.
	Login(ctx context.Context, user models.User) (models.User, error)

	// CreateToken issues a signed, time-limited bearer token for the user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a raw token string and returns the decoded
	// identity. All failures normalise to ErrTokenIsExpiredOrInvalid.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// CardService exposes owner-scoped card CRUD to authenticated callers.
type CardService interface {
	Create(ctx context.Context, userID int64, card models.Card) (models.Card, error)
	List(ctx context.Context, userID int64) ([]models.Card, error)
	Get(ctx context.Context, userID int64, cardID string) (models.Card, error)
	Update(ctx context.Context, userID int64, cardID string, update models.CardUpdate) (models.Card, error)
	Delete(ctx context.Context, userID int64, cardID string) error
}

// PublicViewerService is the unauthenticated, read-mostly card access used
// by link recipients.
type PublicViewerService interface {
	// ViewByID returns the public projection of an active card and bumps
	// its view counter as a side effect of the read.
	ViewByID(ctx context.Context, cardID string) (models.Card, error)

	// ViewBySlug is ViewByID keyed by the public slug.
	ViewBySlug(ctx context.Context, slug string) (models.Card, error)

	// RecordShare bumps the share counter of an active card.
	RecordShare(ctx context.Context, cardID string) (int64, error)
}
