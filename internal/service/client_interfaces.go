package service

import (
	"context"

	"github.com/cardfolio/cardfolio/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_services_mock.go -package=mock

// ClientAuthService manages the client's session with the server.
type ClientAuthService interface {
	// Register creates an account and establishes a session.
	Register(ctx context.Context, user models.User) (models.User, error)

	// Login authenticates and establishes a session.
	Login(ctx context.Context, user models.User) (models.User, error)

	// UserID returns the authenticated user's ID, or ErrNotLoggedIn.
	UserID() (int64, error)

	// LoggedIn reports whether a session is currently established.
	LoggedIn() bool
}

// DraftService owns the client's working draft: an observable in-memory
// value persisted to local storage on a debounce timer and pushed to the
// server only on an explicit Save.
type DraftService interface {
	// Current returns the working draft and whether one exists.
	Current() (models.CardDraft, bool)

	// Update replaces the working draft, notifies subscribers, and arms
	// the debounced local persist.
	Update(draft models.CardDraft)

	// Subscribe registers fn to be called with every draft change. The
	// returned function unsubscribes.
	Subscribe(fn func(models.CardDraft)) (unsubscribe func())

	// StartNew begins drafting a card that has never been saved.
	StartNew()

	// LoadForEdit loads a card into the draft for editing. The server copy
	// wins when reachable; otherwise a matching locally persisted draft is
	// restored so an interrupted session can resume offline.
	LoadForEdit(ctx context.Context, cardID string) (models.CardDraft, error)

	// Resume restores whatever editing session local storage describes:
	// a draft plus the marker saying which card it belongs to (or that it
	// is a brand-new one). Returns ErrNoDraft when there is nothing to
	// resume.
	Resume(ctx context.Context) (models.CardDraft, error)

	// Save pushes the draft to the server (create or update), refreshes
	// the draft's share URL from the response, and clears the editing
	// markers.
	Save(ctx context.Context) (models.Card, error)

	// Discard drops the working draft and its local persistence.
	Discard() error

	// Flush cancels any pending debounce and writes the draft to local
	// storage immediately. Called on shutdown; best effort.
	Flush() error
}

// ImageService prepares user-supplied images for inline storage in a card.
type ImageService interface {
	// Prepare decodes raw PNG/JPEG bytes, downscales and re-encodes them
	// until the result fits the inline byte ceiling, and returns a data
	// URI ready to embed in a draft.
	Prepare(raw []byte) (string, error)

	// ShrinkEmbedded re-encodes an already-embedded data-URI image whose
	// payload exceeds the byte ceiling. Images that fit come back
	// unchanged; images that cannot be made to fit return
	// ErrImageTooLarge.
	ShrinkEmbedded(dataURI string) (string, error)
}

// CollectionService is the client's view of the user's card collection,
// served from the local SQLite cache and refreshed from the server.
type CollectionService interface {
	// Refresh fetches the owner's cards from the server and reconciles
	// the local cache, pruning entries the server no longer returns.
	Refresh(ctx context.Context) ([]models.CardSummary, error)

	// List returns the cached collection, favorites first.
	List(ctx context.Context) ([]models.CardSummary, error)

	// SetFavorite flips the client-only favorite flag.
	SetFavorite(ctx context.Context, cardID string, favorite bool) error

	// Delete removes the card on the server and drops it from the cache.
	Delete(ctx context.Context, cardID string) error

	// RecordShare reports a share of the card's public link to the server
	// so the engagement counter reflects it.
	RecordShare(ctx context.Context, cardID string) error
}
