package store

import (
	"context"
	"fmt"

	"github.com/cardfolio/cardfolio/internal/logger"
	"github.com/cardfolio/cardfolio/models"
)

type collectionRepository struct {
	*DB
	logger *logger.Logger
}

// NewCollectionRepository builds the SQLite-backed collection cache
// repository over an open client database handle.
func NewCollectionRepository(db *DB, logger *logger.Logger) CollectionRepository {
	return &collectionRepository{
		DB:     db,
		logger: logger,
	}
}

func (c *collectionRepository) UpsertSummaries(ctx context.Context, userID int64, summaries []models.CardSummary) error {
	log := logger.FromContext(ctx)

	for _, summary := range summaries {
		// favorite is inserted for new rows only; the ON CONFLICT clause
		// leaves it alone so the local flag survives refreshes.
		_, err := c.DB.ExecContext(ctx, upsertCardSummary,
			userID,
			summary.CardID,
			summary.Name,
			summary.Thumbnail,
			summary.Favorite,
			summary.IsActive,
			summary.Views,
			summary.Shares,
			summary.UpdatedAt,
		)
		if err != nil {
			log.Err(err).
				Str("func", "collectionRepository.UpsertSummaries").
				Int64("user_id", userID).
				Str("card_id", summary.CardID).
				Msg("failed to execute upsert for card summary")
			return fmt.Errorf("failed to save card summary (card_id=%s): %w", summary.CardID, err)
		}
	}

	return nil
}

func (c *collectionRepository) ListSummaries(ctx context.Context, userID int64) ([]models.CardSummary, error) {
	log := logger.FromContext(ctx)

	rows, err := c.DB.QueryContext(ctx, listCardSummaries, userID)
	if err != nil {
		log.Err(err).
			Str("func", "collectionRepository.ListSummaries").
			Int64("user_id", userID).
			Msg("failed to query card summaries")
		return nil, fmt.Errorf("failed to query card summaries: %w", err)
	}
	defer rows.Close()

	var summaries []models.CardSummary
	for rows.Next() {
		var summary models.CardSummary
		if err = rows.Scan(
			&summary.CardID,
			&summary.Name,
			&summary.Thumbnail,
			&summary.Favorite,
			&summary.IsActive,
			&summary.Views,
			&summary.Shares,
			&summary.UpdatedAt,
		); err != nil {
			log.Err(err).
				Str("func", "collectionRepository.ListSummaries").
				Int64("user_id", userID).
				Msg("failed to scan card summary row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		summaries = append(summaries, summary)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate card summaries: %w", err)
	}

	return summaries, nil
}

func (c *collectionRepository) SetFavorite(ctx context.Context, userID int64, cardID string, favorite bool) error {
	log := logger.FromContext(ctx)

	result, err := c.DB.ExecContext(ctx, setCardSummaryFavorite, favorite, userID, cardID)
	if err != nil {
		log.Err(err).
			Str("func", "collectionRepository.SetFavorite").
			Int64("user_id", userID).
			Str("card_id", cardID).
			Msg("failed to update favorite flag")
		return fmt.Errorf("failed to update favorite flag: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return ErrCardNotFound
	}

	return nil
}

func (c *collectionRepository) DeleteSummary(ctx context.Context, userID int64, cardID string) error {
	log := logger.FromContext(ctx)

	if _, err := c.DB.ExecContext(ctx, deleteCardSummary, userID, cardID); err != nil {
		log.Err(err).
			Str("func", "collectionRepository.DeleteSummary").
			Int64("user_id", userID).
			Str("card_id", cardID).
			Msg("failed to delete card summary")
		return fmt.Errorf("failed to delete card summary: %w", err)
	}

	return nil
}
