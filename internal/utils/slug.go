package utils

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewPublicSlug generates a public card slug from the current time and a
// short random token, e.g. "mf3k2h1x-a81f3c0d".
//
// The combination is a collision-resistance heuristic, not a guarantee:
// the unique index on cards.public_slug is authoritative, and the store
// surfaces a conflict error on the (negligibly rare) collision instead of
// silently overwriting.
func NewPublicSlug() string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 36)
	token := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return ts + "-" + token
}
