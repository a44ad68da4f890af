package service

import (
	"context"
	"fmt"

	"github.com/cardfolio/cardfolio/internal/logger"
	"github.com/cardfolio/cardfolio/internal/store"
	"github.com/cardfolio/cardfolio/models"
)

// DefaultLinkColor is the final fallback in the per-link color resolution
// chain: link override → card accent → this value.
const DefaultLinkColor = "#6366f1"

// publicViewerService is the concrete implementation of
// PublicViewerService. Reads are not idempotent: every successful view
// bumps the view counter, including the owner's own preview fetches. The
// source product behaves this way and the analytics inflation is accepted
// until product says otherwise.
type publicViewerService struct {
	cardRepository store.CardRepository
	logger         *logger.Logger
}

// NewPublicViewerService constructs a PublicViewerService backed by the
// given repository.
func NewPublicViewerService(cardRepository store.CardRepository, logger *logger.Logger) PublicViewerService {
	return &publicViewerService{
		cardRepository: cardRepository,
		logger:         logger,
	}
}

// ViewByID returns the public projection of an active card looked up by
// id. The view counter is incremented atomically at the store before the
// card is read, so two concurrent views both count.
//
// Absent, soft-deleted, and never-existed cards produce the identical
// store.ErrCardNotFound — no existence information leaks.
func (p *publicViewerService) ViewByID(ctx context.Context, cardID string) (models.Card, error) {
	views, err := p.cardRepository.IncrementCounter(ctx, cardID, models.CounterViews)
	if err != nil {
		return models.Card{}, fmt.Errorf("recording view failed: %w", err)
	}

	card, err := p.cardRepository.FindPublicByID(ctx, cardID)
	if err != nil {
		return models.Card{}, fmt.Errorf("public card lookup failed: %w", err)
	}

	// The fetched row may predate a concurrent increment; report the
	// counter value the increment returned.
	if views > card.ViewCount {
		card.ViewCount = views
	}

	return card.PublicProjection(DefaultLinkColor), nil
}

// ViewBySlug is ViewByID keyed by the public slug.
func (p *publicViewerService) ViewBySlug(ctx context.Context, slug string) (models.Card, error) {
	card, err := p.cardRepository.FindPublicBySlug(ctx, slug)
	if err != nil {
		return models.Card{}, fmt.Errorf("public card lookup failed: %w", err)
	}

	views, err := p.cardRepository.IncrementCounter(ctx, card.CardID, models.CounterViews)
	if err != nil {
		return models.Card{}, fmt.Errorf("recording view failed: %w", err)
	}
	if views > card.ViewCount {
		card.ViewCount = views
	}

	return card.PublicProjection(DefaultLinkColor), nil
}

// RecordShare bumps the share counter of an active card and returns the
// new value.
func (p *publicViewerService) RecordShare(ctx context.Context, cardID string) (int64, error) {
	shares, err := p.cardRepository.IncrementCounter(ctx, cardID, models.CounterShares)
	if err != nil {
		return 0, fmt.Errorf("recording share failed: %w", err)
	}

	return shares, nil
}
