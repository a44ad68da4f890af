package models

import "time"

// LinkType is the closed set of link categories a card link may carry.
// Unrecognized values are coerced to LinkTypeCustom at validation time so
// that older clients sending new tags do not get rejected.
type LinkType string

const (
	LinkTypeWebsite   LinkType = "website"
	LinkTypeInstagram LinkType = "instagram"
	LinkTypeFacebook  LinkType = "facebook"
	LinkTypeTwitter   LinkType = "twitter"
	LinkTypeLinkedIn  LinkType = "linkedin"
	LinkTypeYouTube   LinkType = "youtube"
	LinkTypeWhatsApp  LinkType = "whatsapp"
	LinkTypeCustom    LinkType = "custom"
)

// Valid reports whether t is one of the known link types.
func (t LinkType) Valid() bool {
	switch t {
	case LinkTypeWebsite, LinkTypeInstagram, LinkTypeFacebook, LinkTypeTwitter,
		LinkTypeLinkedIn, LinkTypeYouTube, LinkTypeWhatsApp, LinkTypeCustom:
		return true
	}
	return false
}

// Link is a single outbound link embedded in a card. Links have no identity
// of their own; their position in Card.Links is their identity.
type Link struct {
	// Title is the display label of the link.
	Title string `json:"title"`

	// URL is the link target.
	URL string `json:"url"`

	// Type tags the link with one of the known categories.
	Type LinkType `json:"type"`

	// Color optionally overrides the card accent color for this link.
	// When empty the effective display color falls back to the card's
	// accent color, then to the service-wide default.
	Color string `json:"color,omitempty"`
}

// EffectiveColor resolves the display color of the link: its own override
// first, then the card accent, then fallback.
func (l Link) EffectiveColor(cardAccent, fallback string) string {
	if l.Color != "" {
		return l.Color
	}
	if cardAccent != "" {
		return cardAccent
	}
	return fallback
}

// FeatureSection is an ordered, fully optional content block embedded in a
// card (e.g. a service or product highlight with a call to action).
type FeatureSection struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`

	// Image is an opaque blob reference or inline encoded image data.
	Image string `json:"image,omitempty"`

	// CTALabel and CTAURL describe the optional call-to-action button.
	CTALabel string `json:"cta_label,omitempty"`
	CTAURL   string `json:"cta_url,omitempty"`
}

// Card is the digital business card.
//
// Invariants:
//   - PublicSlug is assigned once at creation, never reassigned, and is
//     globally unique (enforced by a unique index in the store).
//   - OwnerID is immutable after creation.
//   - ViewCount and ShareCount are monotonically non-decreasing; they are
//     incremented with a store-level atomic update, never read-modify-write.
//   - A soft-deleted card (IsActive=false) is absent from every owner
//     listing and every public lookup, but its row retains all data.
type Card struct {
	// CardID is the unique identifier of the card (UUID string).
	CardID string `json:"id"`

	// OwnerID references the owning user. Stripped from public
	// projections; see Card.PublicProjection.
	OwnerID int64 `json:"owner_id,omitempty"`

	// Name is the display name shown on the card. Required.
	Name string `json:"name"`

	// Title is the job title line.
	Title string `json:"title,omitempty"`

	// Description is a free-text blurb.
	Description string `json:"description,omitempty"`

	// Email and Phone are the contact fields shown on the card, not the
	// owner's login identity.
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`

	// ProfileImage is an opaque blob reference or inline encoded image.
	ProfileImage string `json:"profile_image,omitempty"`

	// AccentColor is the card accent, applied to links without an
	// override of their own.
	AccentColor string `json:"accent_color,omitempty"`

	// Gradient is an optional full custom CSS gradient string.
	Gradient string `json:"gradient,omitempty"`

	// Theme is a free-form, client-defined theme identifier.
	Theme string `json:"theme,omitempty"`

	// Links is the ordered list of outbound links.
	Links []Link `json:"links"`

	// FeatureSections is the ordered list of content blocks.
	FeatureSections []FeatureSection `json:"feature_sections"`

	// ViewCount and ShareCount are the engagement counters.
	ViewCount  int64 `json:"views"`
	ShareCount int64 `json:"shares"`

	// PublicSlug is the globally unique token under which the card is
	// reachable without authentication.
	PublicSlug string `json:"public_url"`

	// ShareURL is the absolute public link, materialized by the server
	// from its configured public base URL. Not stored.
	ShareURL string `json:"share_url,omitempty"`

	// IsActive is false once the owner soft-deletes the card.
	IsActive bool `json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PublicProjection returns the card as seen by an unauthenticated viewer:
// the owner reference is stripped and every link carries its resolved
// effective color.
func (c Card) PublicProjection(fallbackColor string) Card {
	c.OwnerID = 0

	links := make([]Link, len(c.Links))
	for i, l := range c.Links {
		l.Color = l.EffectiveColor(c.AccentColor, fallbackColor)
		links[i] = l
	}
	c.Links = links

	return c
}

// TableName returns the name of the database table
// associated with the Card model.
func (c Card) TableName() string {
	return "cards"
}

// CardUpdate describes a partial, field-level overwrite of a card. Nil
// pointers mean "leave the stored value untouched". OwnerID, PublicSlug,
// the counters, and the timestamps are deliberately not representable here.
type CardUpdate struct {
	Name            *string           `json:"name,omitempty"`
	Title           *string           `json:"title,omitempty"`
	Description     *string           `json:"description,omitempty"`
	Email           *string           `json:"email,omitempty"`
	Phone           *string           `json:"phone,omitempty"`
	ProfileImage    *string           `json:"profile_image,omitempty"`
	AccentColor     *string           `json:"accent_color,omitempty"`
	Gradient        *string           `json:"gradient,omitempty"`
	Theme           *string           `json:"theme,omitempty"`
	Links           *[]Link           `json:"links,omitempty"`
	FeatureSections *[]FeatureSection `json:"feature_sections,omitempty"`
}

// IsEmpty reports whether the update would change nothing.
func (u CardUpdate) IsEmpty() bool {
	return u.Name == nil && u.Title == nil && u.Description == nil &&
		u.Email == nil && u.Phone == nil && u.ProfileImage == nil &&
		u.AccentColor == nil && u.Gradient == nil && u.Theme == nil &&
		u.Links == nil && u.FeatureSections == nil
}

// Counter names accepted by the store-level atomic increment.
const (
	CounterViews  = "views"
	CounterShares = "shares"
)
