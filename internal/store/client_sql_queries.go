package store

const (
	createCardSummariesTable = `
		CREATE TABLE IF NOT EXISTS card_summaries (
			user_id    INTEGER NOT NULL,
			card_id    TEXT    NOT NULL,
			name       TEXT    NOT NULL DEFAULT '',
			thumbnail  TEXT    NOT NULL DEFAULT '',
			favorite   INTEGER NOT NULL DEFAULT 0,
			is_active  INTEGER NOT NULL DEFAULT 1,
			view_count INTEGER NOT NULL DEFAULT 0,
			share_count INTEGER NOT NULL DEFAULT 0,
			updated_at TIMESTAMP NOT NULL,
			PRIMARY KEY (user_id, card_id)
		);`

	upsertCardSummary = `
		INSERT INTO card_summaries (
			user_id,
			card_id,
			name,
			thumbnail,
			favorite,
			is_active,
			view_count,
			share_count,
			updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (user_id, card_id) DO UPDATE SET
			name        = excluded.name,
			thumbnail   = excluded.thumbnail,
			is_active   = excluded.is_active,
			view_count  = excluded.view_count,
			share_count = excluded.share_count,
			updated_at  = excluded.updated_at;`

	listCardSummaries = `
		SELECT
			card_id,
			name,
			thumbnail,
			favorite,
			is_active,
			view_count,
			share_count,
			updated_at
		FROM card_summaries
		WHERE user_id = $1 AND is_active = 1
		ORDER BY favorite DESC, updated_at DESC;`

	setCardSummaryFavorite = `
		UPDATE card_summaries
		SET favorite = $1
		WHERE user_id = $2 AND card_id = $3;`

	deleteCardSummary = `
		DELETE FROM card_summaries
		WHERE user_id = $1 AND card_id = $2;`
)
