package store

import (
	"context"
	"fmt"

	"github.com/cardfolio/cardfolio/internal/config"
	"github.com/cardfolio/cardfolio/internal/logger"
	"github.com/cardfolio/cardfolio/migrations"
)

// Storages bundles the server-side repositories behind one constructor so
// that main wires a single dependency.
type Storages struct {
	UserRepository UserRepository
	CardRepository CardRepository
}

// NewStorages connects to PostgreSQL, applies pending schema migrations,
// and constructs all repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	if err = migrations.Migrate(db.DB); err != nil {
		return nil, fmt.Errorf("apply migrations: %w", err)
	}

	return &Storages{
		UserRepository: NewUserRepository(db, log),
		CardRepository: NewCardRepository(db, log),
	}, nil
}
