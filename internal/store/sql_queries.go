package store

import (
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/cardfolio/cardfolio/models"
)

const (
	createUser = `INSERT INTO users (name, email, password_hash)
    VALUES ($1, $2, $3)
    RETURNING user_id, name, email, password_hash, created_at;`

	findUserByEmail = `SELECT user_id, name, email, password_hash, created_at
    FROM users
    WHERE email = $1;`
)

// cardColumns is the canonical column order used by every card SELECT and
// every RETURNING clause. scanCard must stay in sync with it.
const cardColumns = `card_id, owner_id, name, title, description, email, phone,
		profile_image, accent_color, gradient, theme, links, feature_sections,
		view_count, share_count, public_slug, is_active, created_at, updated_at`

const (
	createCard = `INSERT INTO cards (
			card_id,
			owner_id,
			name,
			title,
			description,
			email,
			phone,
			profile_image,
			accent_color,
			gradient,
			theme,
			links,
			feature_sections,
			public_slug
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING ` + cardColumns + `;`

	findOwnedCard = `SELECT ` + cardColumns + `
		FROM cards
		WHERE card_id = $1 AND owner_id = $2 AND is_active = TRUE;`

	findPublicCardByID = `SELECT ` + cardColumns + `
		FROM cards
		WHERE card_id = $1 AND is_active = TRUE;`

	findPublicCardBySlug = `SELECT ` + cardColumns + `
		FROM cards
		WHERE public_slug = $1 AND is_active = TRUE;`

	softDeleteCard = `UPDATE cards
		SET is_active = FALSE, updated_at = NOW()
		WHERE card_id = $1 AND owner_id = $2 AND is_active = TRUE;`

	// Counter increments run as a single SET n = n + 1 so concurrent
	// requests never lose an update.
	incrementViewCount = `UPDATE cards
		SET view_count = view_count + 1
		WHERE card_id = $1 AND is_active = TRUE
		RETURNING view_count;`

	incrementShareCount = `UPDATE cards
		SET share_count = share_count + 1
		WHERE card_id = $1 AND is_active = TRUE
		RETURNING share_count;`
)

// psql is the shared squirrel statement builder configured for PostgreSQL
// ($N placeholders).
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildListOwnedCardsQuery builds the owner listing query: active cards of
// the given owner, most-recently-created first.
func buildListOwnedCardsQuery(ownerID int64) (string, []any, error) {
	query, args, err := psql.
		Select(cardColumns).
		From("cards").
		Where(sq.Eq{"owner_id": ownerID, "is_active": true}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpdateCardQuery builds a partial-overwrite UPDATE: only fields set
// in update produce SET clauses; updated_at is always bumped. The statement
// is scoped to the owning user and active cards only, and returns the
// resulting row.
//
// Returns ErrBuildingSQLQuery when the update carries no fields at all.
func buildUpdateCardQuery(ownerID int64, cardID string, update models.CardUpdate) (string, []any, error) {
	if update.IsEmpty() {
		return "", nil, fmt.Errorf("%w: empty card update", ErrBuildingSQLQuery)
	}

	b := psql.Update("cards").Set("updated_at", sq.Expr("NOW()"))

	if update.Name != nil {
		b = b.Set("name", *update.Name)
	}
	if update.Title != nil {
		b = b.Set("title", *update.Title)
	}
	if update.Description != nil {
		b = b.Set("description", *update.Description)
	}
	if update.Email != nil {
		b = b.Set("email", *update.Email)
	}
	if update.Phone != nil {
		b = b.Set("phone", *update.Phone)
	}
	if update.ProfileImage != nil {
		b = b.Set("profile_image", *update.ProfileImage)
	}
	if update.AccentColor != nil {
		b = b.Set("accent_color", *update.AccentColor)
	}
	if update.Gradient != nil {
		b = b.Set("gradient", *update.Gradient)
	}
	if update.Theme != nil {
		b = b.Set("theme", *update.Theme)
	}
	if update.Links != nil {
		raw, err := json.Marshal(*update.Links)
		if err != nil {
			return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		b = b.Set("links", raw)
	}
	if update.FeatureSections != nil {
		raw, err := json.Marshal(*update.FeatureSections)
		if err != nil {
			return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		b = b.Set("feature_sections", raw)
	}

	query, args, err := b.
		Where(sq.Eq{"card_id": cardID, "owner_id": ownerID, "is_active": true}).
		Suffix("RETURNING " + cardColumns).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
