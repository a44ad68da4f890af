package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cardfolio/cardfolio/internal/logger"
	"github.com/cardfolio/cardfolio/internal/utils"
	"github.com/cardfolio/cardfolio/models"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
)

// cardRepository is the PostgreSQL-backed implementation of
// [CardRepository]. It executes all card CRUD operations directly against
// the "cards" table using the embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (owner_id, card_id, etc.).
type cardRepository struct {
	*DB
	logger *logger.Logger
}

// NewCardRepository constructs a [CardRepository] backed by the provided
// database connection and logger.
func NewCardRepository(db *DB, logger *logger.Logger) CardRepository {
	return &cardRepository{
		DB:     db,
		logger: logger,
	}
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanCard reads one row in [cardColumns] order. The embedded links and
// feature-section lists travel as JSONB and are decoded here.
func scanCard(row rowScanner) (models.Card, error) {
	var card models.Card
	var rawLinks, rawSections []byte

	err := row.Scan(
		&card.CardID,
		&card.OwnerID,
		&card.Name,
		&card.Title,
		&card.Description,
		&card.Email,
		&card.Phone,
		&card.ProfileImage,
		&card.AccentColor,
		&card.Gradient,
		&card.Theme,
		&rawLinks,
		&rawSections,
		&card.ViewCount,
		&card.ShareCount,
		&card.PublicSlug,
		&card.IsActive,
		&card.CreatedAt,
		&card.UpdatedAt,
	)
	if err != nil {
		return models.Card{}, err
	}

	if len(rawLinks) > 0 {
		if err = json.Unmarshal(rawLinks, &card.Links); err != nil {
			return models.Card{}, fmt.Errorf("decode links column: %w", err)
		}
	}
	if len(rawSections) > 0 {
		if err = json.Unmarshal(rawSections, &card.FeatureSections); err != nil {
			return models.Card{}, fmt.Errorf("decode feature_sections column: %w", err)
		}
	}

	return card, nil
}

// CreateCard persists a new card, assigning a fresh UUID and a public slug
// derived from the current time plus a short random token. Counters,
// flags, and timestamps come back from the RETURNING clause.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrDuplicateSlug]. The unique
//     index is authoritative; the caller decides whether to regenerate.
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *cardRepository) CreateCard(ctx context.Context, card models.Card) (models.Card, error) {
	log := logger.FromContext(ctx)

	if card.CardID == "" {
		card.CardID = uuid.NewString()
	}
	if card.PublicSlug == "" {
		card.PublicSlug = utils.NewPublicSlug()
	}

	rawLinks, err := json.Marshal(card.Links)
	if err != nil {
		return models.Card{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	rawSections, err := json.Marshal(card.FeatureSections)
	if err != nil {
		return models.Card{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.QueryRowContext(ctx, createCard,
		card.CardID,
		card.OwnerID,
		card.Name,
		card.Title,
		card.Description,
		card.Email,
		card.Phone,
		card.ProfileImage,
		card.AccentColor,
		card.Gradient,
		card.Theme,
		rawLinks,
		rawSections,
		card.PublicSlug,
	)

	saved, err := scanCard(row)
	if err != nil {
		log.Err(err).
			Str("func", "*cardRepository.CreateCard").
			Int64("owner_id", card.OwnerID).
			Msg("error saving card")

		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.Card{}, ErrDuplicateSlug
		}
		return models.Card{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return saved, nil
}

// FindOwnedCard retrieves an active card scoped to its owner. A card that
// is absent, soft-deleted, or owned by another user yields
// [ErrCardNotFound].
func (r *cardRepository) FindOwnedCard(ctx context.Context, ownerID int64, cardID string) (models.Card, error) {
	log := logger.FromContext(ctx)

	card, err := scanCard(r.QueryRowContext(ctx, findOwnedCard, cardID, ownerID))
	if err != nil {
		if isNoRows(err) {
			return models.Card{}, ErrCardNotFound
		}

		log.Err(err).
			Str("func", "*cardRepository.FindOwnedCard").
			Int64("owner_id", ownerID).
			Str("card_id", cardID).
			Msg("error finding owned card")
		return models.Card{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return card, nil
}

// ListOwnedCards returns all active cards of an owner ordered by creation
// time, newest first. Returns an empty slice when the owner has no cards.
func (r *cardRepository) ListOwnedCards(ctx context.Context, ownerID int64) ([]models.Card, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListOwnedCardsQuery(ownerID)
	if err != nil {
		log.Err(err).
			Str("func", "*cardRepository.ListOwnedCards").
			Int64("owner_id", ownerID).
			Msg("failed to create query")
		return nil, err
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*cardRepository.ListOwnedCards").
			Int64("owner_id", ownerID).
			Msg("failed to execute query for listing owned cards")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	cards := make([]models.Card, 0, 8)

	for rows.Next() {
		card, scanErr := scanCard(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*cardRepository.ListOwnedCards").
				Int64("owner_id", ownerID).
				Msg("failed to scan card row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		cards = append(cards, card)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*cardRepository.ListOwnedCards").
			Int64("owner_id", ownerID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return cards, nil
}

// FindPublicByID retrieves an active card by id for the unauthenticated
// path. Absent and soft-deleted cards are indistinguishable
// ([ErrCardNotFound]).
func (r *cardRepository) FindPublicByID(ctx context.Context, cardID string) (models.Card, error) {
	return r.findPublic(ctx, findPublicCardByID, cardID)
}

// FindPublicBySlug is [cardRepository.FindPublicByID] keyed by the public
// slug.
func (r *cardRepository) FindPublicBySlug(ctx context.Context, slug string) (models.Card, error) {
	return r.findPublic(ctx, findPublicCardBySlug, slug)
}

func (r *cardRepository) findPublic(ctx context.Context, query, key string) (models.Card, error) {
	log := logger.FromContext(ctx)

	card, err := scanCard(r.QueryRowContext(ctx, query, key))
	if err != nil {
		if isNoRows(err) {
			return models.Card{}, ErrCardNotFound
		}

		log.Err(err).
			Str("func", "*cardRepository.findPublic").
			Str("key", key).
			Msg("error finding public card")
		return models.Card{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return card, nil
}

// UpdateCard applies a partial, field-level overwrite via a dynamically
// built UPDATE: only set fields produce SET clauses, updated_at is always
// bumped, and the resulting row comes back via RETURNING. The statement is
// owner-scoped, so "not owned" and "not found" yield the same
// [ErrCardNotFound].
func (r *cardRepository) UpdateCard(ctx context.Context, ownerID int64, cardID string, update models.CardUpdate) (models.Card, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateCardQuery(ownerID, cardID, update)
	if err != nil {
		log.Err(err).
			Str("func", "*cardRepository.UpdateCard").
			Int64("owner_id", ownerID).
			Str("card_id", cardID).
			Msg("failed to create update query")
		return models.Card{}, err
	}

	card, err := scanCard(r.QueryRowContext(ctx, query, args...))
	if err != nil {
		if isNoRows(err) {
			return models.Card{}, ErrCardNotFound
		}

		log.Err(err).
			Str("func", "*cardRepository.UpdateCard").
			Int64("owner_id", ownerID).
			Str("card_id", cardID).
			Msg("error updating card")
		return models.Card{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return card, nil
}

// SoftDeleteCard flips the active flag of an owned, active card. A zero
// affected-row count means the card was absent, already deleted, or not
// owned — all reported as [ErrCardNotFound].
func (r *cardRepository) SoftDeleteCard(ctx context.Context, ownerID int64, cardID string) error {
	log := logger.FromContext(ctx)

	res, err := r.ExecContext(ctx, softDeleteCard, cardID, ownerID)
	if err != nil {
		log.Err(err).
			Str("func", "*cardRepository.SoftDeleteCard").
			Int64("owner_id", ownerID).
			Str("card_id", cardID).
			Msg("error soft deleting card")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrCardNotFound
	}

	return nil
}

// IncrementCounter atomically increments the named engagement counter of
// an active card and returns the new value. Concurrent increments against
// the same card never lose updates because the addition happens inside the
// UPDATE statement itself.
func (r *cardRepository) IncrementCounter(ctx context.Context, cardID string, counter string) (int64, error) {
	log := logger.FromContext(ctx)

	var query string
	switch counter {
	case models.CounterViews:
		query = incrementViewCount
	case models.CounterShares:
		query = incrementShareCount
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownCounter, counter)
	}

	var value int64
	if err := r.QueryRowContext(ctx, query, cardID).Scan(&value); err != nil {
		if isNoRows(err) {
			return 0, ErrCardNotFound
		}

		log.Err(err).
			Str("func", "*cardRepository.IncrementCounter").
			Str("card_id", cardID).
			Str("counter", counter).
			Msg("error incrementing counter")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}
