package store

import (
	"context"

	"github.com/cardfolio/cardfolio/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalStorage is the client's small keyed byte store, backed by a single
// JSON file with a byte quota. It holds the working draft and the editing
// markers that let an interrupted session resume.
type LocalStorage interface {
	// Get returns the value stored under key, or ErrLocalKeyNotFound.
	Get(key string) ([]byte, error)

	// Set stores value under key and persists the file. Returns
	// ErrLocalQuotaExceeded when the write would exceed the quota; the
	// store is left unchanged in that case.
	Set(key string, value []byte) error

	// Delete removes key and persists. Deleting an absent key is a no-op.
	Delete(key string) error

	// Size reports the serialized byte size of the current contents.
	Size() int64

	// ClearNonEssential drops every entry that is not required to resume
	// an editing session and persists. It returns the number of bytes
	// reclaimed.
	ClearNonEssential() (int64, error)

	// Flush forces the current in-memory state to disk. Used on shutdown;
	// best effort.
	Flush() error
}

// CollectionRepository is the SQLite-backed local index of the user's cards
// (the multi-card manager view). It is a cache over the server's list, plus
// client-only state such as favorites.
type CollectionRepository interface {
	UpsertSummaries(ctx context.Context, userID int64, summaries []models.CardSummary) error
	ListSummaries(ctx context.Context, userID int64) ([]models.CardSummary, error)
	SetFavorite(ctx context.Context, userID int64, cardID string, favorite bool) error
	DeleteSummary(ctx context.Context, userID int64, cardID string) error
}
