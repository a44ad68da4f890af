package store

import (
	"context"

	"github.com/cardfolio/cardfolio/models"
)

// UserRepository is the data-access contract for user accounts.
type UserRepository interface {
	// CreateUser persists a new user and returns the record with
	// server-assigned fields populated. A duplicate email yields
	// ErrEmailAlreadyRegistered.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks a user up by their lowercased email.
	// An empty result yields ErrNoUserWasFound.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// CardRepository is the data-access contract for cards.
//
// Every owner-scoped method treats "absent", "soft-deleted", and "owned by
// another user" identically (ErrCardNotFound).
type CardRepository interface {
	// CreateCard persists a new card and returns the record with
	// server-assigned fields (id, slug, counters, timestamps). A slug
	// collision yields ErrDuplicateSlug.
	CreateCard(ctx context.Context, card models.Card) (models.Card, error)

	// FindOwnedCard returns the card only if it is active and owned by
	// ownerID.
	FindOwnedCard(ctx context.Context, ownerID int64, cardID string) (models.Card, error)

	// ListOwnedCards returns all active cards owned by ownerID,
	// most-recently-created first.
	ListOwnedCards(ctx context.Context, ownerID int64) ([]models.Card, error)

	// FindPublicByID returns the card only if it is active, regardless of
	// owner.
	FindPublicByID(ctx context.Context, cardID string) (models.Card, error)

	// FindPublicBySlug is FindPublicByID keyed by the public slug.
	FindPublicBySlug(ctx context.Context, slug string) (models.Card, error)

	// UpdateCard overwrites only the fields set in update, bumps the
	// update timestamp, and returns the resulting record.
	UpdateCard(ctx context.Context, ownerID int64, cardID string, update models.CardUpdate) (models.Card, error)

	// SoftDeleteCard flips the active flag. Subsequent owner and public
	// lookups treat the record as absent; the row retains its data.
	SoftDeleteCard(ctx context.Context, ownerID int64, cardID string) error

	// IncrementCounter atomically increments the named counter
	// (models.CounterViews or models.CounterShares) of an active card and
	// returns the new value. The increment is a single SQL UPDATE; no
	// read-modify-write happens in application code.
	IncrementCounter(ctx context.Context, cardID string, counter string) (int64, error)
}
