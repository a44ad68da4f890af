package service

import (
	"context"

	"github.com/cardfolio/cardfolio/internal/adapter"
	"github.com/cardfolio/cardfolio/internal/logger"
	"github.com/cardfolio/cardfolio/internal/store"
	"github.com/cardfolio/cardfolio/models"
)

type collectionService struct {
	collection store.CollectionRepository
	adapter    adapter.ServerAdapter
	auth       ClientAuthService

	logger *logger.Logger
}

// NewCollectionService builds the collection manager over the SQLite cache
// and the server adapter.
func NewCollectionService(collection store.CollectionRepository, serverAdapter adapter.ServerAdapter, auth ClientAuthService, logger *logger.Logger) CollectionService {
	return &collectionService{
		collection: collection,
		adapter:    serverAdapter,
		auth:       auth,
		logger:     logger,
	}
}

func (c *collectionService) Refresh(ctx context.Context) ([]models.CardSummary, error) {
	userID, err := c.auth.UserID()
	if err != nil {
		return nil, err
	}

	cards, err := c.adapter.ListCards(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}

	summaries := make([]models.CardSummary, 0, len(cards))
	serverIDs := make(map[string]struct{}, len(cards))
	for _, card := range cards {
		serverIDs[card.CardID] = struct{}{}
		summaries = append(summaries, models.CardSummary{
			CardID:    card.CardID,
			Name:      card.Name,
			Thumbnail: card.ProfileImage,
			IsActive:  card.IsActive,
			Views:     card.ViewCount,
			Shares:    card.ShareCount,
			UpdatedAt: card.UpdatedAt,
		})
	}

	if err = c.collection.UpsertSummaries(ctx, userID, summaries); err != nil {
		return nil, err
	}

	// Prune cache entries for cards the server no longer returns
	// (deleted elsewhere).
	cached, err := c.collection.ListSummaries(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, summary := range cached {
		if _, ok := serverIDs[summary.CardID]; !ok {
			if err = c.collection.DeleteSummary(ctx, userID, summary.CardID); err != nil {
				c.logger.Err(err).Str("card_id", summary.CardID).Msg("failed to prune stale summary")
			}
		}
	}

	return c.collection.ListSummaries(ctx, userID)
}

func (c *collectionService) List(ctx context.Context) ([]models.CardSummary, error) {
	userID, err := c.auth.UserID()
	if err != nil {
		return nil, err
	}

	return c.collection.ListSummaries(ctx, userID)
}

func (c *collectionService) SetFavorite(ctx context.Context, cardID string, favorite bool) error {
	userID, err := c.auth.UserID()
	if err != nil {
		return err
	}

	return c.collection.SetFavorite(ctx, userID, cardID, favorite)
}

func (c *collectionService) RecordShare(ctx context.Context, cardID string) error {
	shares, err := c.adapter.RecordShare(ctx, cardID)
	if err != nil {
		return mapAdapterError(err)
	}

	c.logger.Debug().Str("card_id", cardID).Int64("shares", shares).Msg("share recorded")
	return nil
}

func (c *collectionService) Delete(ctx context.Context, cardID string) error {
	userID, err := c.auth.UserID()
	if err != nil {
		return err
	}

	if err = c.adapter.DeleteCard(ctx, cardID); err != nil {
		return mapAdapterError(err)
	}

	if err = c.collection.DeleteSummary(ctx, userID, cardID); err != nil {
		c.logger.Err(err).Str("card_id", cardID).Msg("failed to drop deleted card from cache")
	}

	return nil
}
