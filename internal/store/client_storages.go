package store

import (
	"context"
	"fmt"

	"github.com/cardfolio/cardfolio/internal/config"
	"github.com/cardfolio/cardfolio/internal/logger"
)

// ClientStorages groups the client-side storage backends into a single value
// that can be passed to the client service layer.
type ClientStorages struct {
	// Local is the quota-bounded keyed file store holding the working
	// draft and editing markers.
	Local LocalStorage

	// Collection is the SQLite-backed index of the user's cards.
	Collection CollectionRepository
}

// NewClientStorages initialises the client storage layer: it opens the local
// storage file and the SQLite collection cache, creating both on first run.
func NewClientStorages(cfg config.Client, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating client storages...")

	local, err := NewLocalStorage(cfg.LocalStoragePath, cfg.LocalStorageQuota)
	if err != nil {
		return nil, fmt.Errorf("local storage error: %w", err)
	}

	db, err := NewConnectSQLite(context.Background(), cfg.CollectionDSN, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	return &ClientStorages{
		Local:      local,
		Collection: NewCollectionRepository(db, logger),
	}, nil
}
