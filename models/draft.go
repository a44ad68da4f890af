package models

import "time"

// CardDraft is the ephemeral, client-local editable representation of a
// card. It mirrors the editable subset of [Card] plus client-only state and
// is persisted to local storage on a debounce timer; it reaches the server
// only on an explicit save.
type CardDraft struct {
	// CardID is empty while drafting a card that has never been saved.
	CardID string `json:"card_id,omitempty"`

	Name        string `json:"name"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`

	ProfileImage string `json:"profile_image,omitempty"`
	AccentColor  string `json:"accent_color,omitempty"`
	Gradient     string `json:"gradient,omitempty"`
	Theme        string `json:"theme,omitempty"`

	Links           []Link           `json:"links,omitempty"`
	FeatureSections []FeatureSection `json:"feature_sections,omitempty"`

	// ShowSaveContact toggles the save-to-contacts button on the
	// rendered card.
	ShowSaveContact bool `json:"show_save_contact"`

	// ShareURL is the materialized public URL of the card, present once
	// the card has been saved at least once.
	ShareURL string `json:"share_url,omitempty"`
}

// FromCard builds a draft from an authoritative server record.
func (d *CardDraft) FromCard(c Card, shareBaseURL string) {
	d.CardID = c.CardID
	d.Name = c.Name
	d.Title = c.Title
	d.Description = c.Description
	d.Email = c.Email
	d.Phone = c.Phone
	d.ProfileImage = c.ProfileImage
	d.AccentColor = c.AccentColor
	d.Gradient = c.Gradient
	d.Theme = c.Theme
	d.Links = c.Links
	d.FeatureSections = c.FeatureSections
	switch {
	case c.ShareURL != "":
		// the server materialized the link from its public base URL
		d.ShareURL = c.ShareURL
	case c.PublicSlug != "":
		d.ShareURL = shareBaseURL + "/public/cards/url/" + c.PublicSlug
	}
}

// ToCard converts a never-saved draft into the card payload expected by
// POST /api/cards.
func (d CardDraft) ToCard() Card {
	return Card{
		CardID:          d.CardID,
		Name:            d.Name,
		Title:           d.Title,
		Description:     d.Description,
		Email:           d.Email,
		Phone:           d.Phone,
		ProfileImage:    d.ProfileImage,
		AccentColor:     d.AccentColor,
		Gradient:        d.Gradient,
		Theme:           d.Theme,
		Links:           d.Links,
		FeatureSections: d.FeatureSections,
	}
}

// ToUpdate converts the draft into the partial-overwrite form expected by
// PUT /api/cards/{id}. Every editable field is sent; the server ignores
// what a draft cannot change (slug, counters, owner).
func (d CardDraft) ToUpdate() CardUpdate {
	links := d.Links
	sections := d.FeatureSections
	return CardUpdate{
		Name:            &d.Name,
		Title:           &d.Title,
		Description:     &d.Description,
		Email:           &d.Email,
		Phone:           &d.Phone,
		ProfileImage:    &d.ProfileImage,
		AccentColor:     &d.AccentColor,
		Gradient:        &d.Gradient,
		Theme:           &d.Theme,
		Links:           &links,
		FeatureSections: &sections,
	}
}

// StripImages returns a copy of the draft with every inline image field
// cleared. Used by the persistence bridge's quota-degradation ladder.
func (d CardDraft) StripImages() CardDraft {
	d.ProfileImage = ""
	sections := make([]FeatureSection, len(d.FeatureSections))
	for i, s := range d.FeatureSections {
		s.Image = ""
		sections[i] = s
	}
	d.FeatureSections = sections
	return d
}

// Minimal returns the last-resort subset persisted when even the
// image-stripped draft exceeds the local quota: personal info, design,
// links.
func (d CardDraft) Minimal() CardDraft {
	return CardDraft{
		CardID:      d.CardID,
		Name:        d.Name,
		Title:       d.Title,
		Description: d.Description,
		Email:       d.Email,
		Phone:       d.Phone,
		AccentColor: d.AccentColor,
		Gradient:    d.Gradient,
		Theme:       d.Theme,
		Links:       d.Links,
	}
}

// CardSummary is a lightweight card descriptor kept in the client-side
// collection cache (the multi-card manager view). It is a client index,
// not a source of truth; Favorite exists only locally.
type CardSummary struct {
	CardID    string `json:"card_id"`
	Name      string `json:"name"`
	Thumbnail string `json:"thumbnail,omitempty"`
	Favorite  bool   `json:"favorite"`
	IsActive  bool   `json:"is_active"`

	Views  int64 `json:"views"`
	Shares int64 `json:"shares"`

	UpdatedAt time.Time `json:"updated_at"`
}
