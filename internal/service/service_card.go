package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cardfolio/cardfolio/internal/config"
	"github.com/cardfolio/cardfolio/internal/logger"
	"github.com/cardfolio/cardfolio/internal/store"
	"github.com/cardfolio/cardfolio/internal/utils"
	"github.com/cardfolio/cardfolio/models"
)

// cardService is the concrete implementation of CardService. It enforces
// ownership by always going through owner-scoped repository lookups; a card
// owned by someone else is indistinguishable from a missing one.
type cardService struct {
	cardRepository store.CardRepository
	publicBaseURL  string
	logger         *logger.Logger
}

// NewCardService constructs a CardService backed by the given repository.
// cfg.PublicBaseURL, when set, is used to materialize absolute share links
// on every card returned to the owner.
func NewCardService(cardRepository store.CardRepository, cfg config.App, logger *logger.Logger) CardService {
	return &cardService{
		cardRepository: cardRepository,
		publicBaseURL:  strings.TrimRight(cfg.PublicBaseURL, "/"),
		logger:         logger,
	}
}

// withShareURL fills in the card's absolute public link. Without a
// configured public base URL the slug alone is returned and the client
// builds the link itself.
func (c *cardService) withShareURL(card models.Card) models.Card {
	if c.publicBaseURL != "" && card.PublicSlug != "" {
		card.ShareURL = c.publicBaseURL + "/public/cards/url/" + card.PublicSlug
	}
	return card
}

// Create validates the submitted fields and persists a new card owned by
// userID. The slug assigned by the store is best-effort unique; on the
// rare collision the create is retried once with a fresh slug before the
// conflict is surfaced.
func (c *cardService) Create(ctx context.Context, userID int64, card models.Card) (models.Card, error) {
	log := logger.FromContext(ctx)

	if err := validateCardFields(card); err != nil {
		log.Err(err).Int64("owner_id", userID).Msg("card validation failed")
		return models.Card{}, err
	}

	card.OwnerID = userID
	card.CardID = ""
	card.PublicSlug = ""

	created, err := c.cardRepository.CreateCard(ctx, card)
	if errors.Is(err, store.ErrDuplicateSlug) {
		log.Warn().Int64("owner_id", userID).Msg("public slug collision, retrying once")
		card.PublicSlug = utils.NewPublicSlug()
		created, err = c.cardRepository.CreateCard(ctx, card)
	}
	if err != nil {
		log.Err(err).Int64("owner_id", userID).Msg("card creation ended with error")
		return models.Card{}, fmt.Errorf("card creation ended with error: %w", err)
	}

	return c.withShareURL(created), nil
}

// List returns all active cards owned by userID, most-recently-created
// first.
func (c *cardService) List(ctx context.Context, userID int64) ([]models.Card, error) {
	cards, err := c.cardRepository.ListOwnedCards(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing owned cards failed: %w", err)
	}

	for i := range cards {
		cards[i] = c.withShareURL(cards[i])
	}
	return cards, nil
}

// Get returns an owned, active card or store.ErrCardNotFound.
func (c *cardService) Get(ctx context.Context, userID int64, cardID string) (models.Card, error) {
	card, err := c.cardRepository.FindOwnedCard(ctx, userID, cardID)
	if err != nil {
		return models.Card{}, fmt.Errorf("owned card lookup failed: %w", err)
	}

	return c.withShareURL(card), nil
}

// Update validates the partial overwrite and applies it through the
// owner-scoped dynamic UPDATE. Fields absent from the update keep their
// stored values.
func (c *cardService) Update(ctx context.Context, userID int64, cardID string, update models.CardUpdate) (models.Card, error) {
	log := logger.FromContext(ctx)

	if update.IsEmpty() {
		return models.Card{}, ErrInvalidDataProvided
	}
	if err := validateUpdateFields(update); err != nil {
		log.Err(err).Int64("owner_id", userID).Str("card_id", cardID).Msg("card update validation failed")
		return models.Card{}, err
	}

	updated, err := c.cardRepository.UpdateCard(ctx, userID, cardID, update)
	if err != nil {
		return models.Card{}, fmt.Errorf("card update failed: %w", err)
	}

	return c.withShareURL(updated), nil
}

// Delete soft-deletes an owned card: the active flag flips, the row stays.
func (c *cardService) Delete(ctx context.Context, userID int64, cardID string) error {
	if err := c.cardRepository.SoftDeleteCard(ctx, userID, cardID); err != nil {
		return fmt.Errorf("card soft delete failed: %w", err)
	}

	return nil
}
