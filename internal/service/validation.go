package service

import (
	"fmt"

	"github.com/cardfolio/cardfolio/models"
)

// Field length bounds enforced on card writes. Inline images get a much
// larger budget than text fields but still stay well under the HTTP body
// cap.
const (
	maxNameLength        = 100
	maxTitleLength       = 100
	maxDescriptionLength = 500
	maxContactLength     = 254
	maxPhoneLength       = 50
	maxColorLength       = 64
	maxGradientLength    = 512
	maxThemeLength       = 64
	maxLinkTitleLength   = 100
	maxLinkURLLength     = 2048
	maxInlineImageBytes  = 256 << 10
)

func fieldTooLong(field string, max int) error {
	return fmt.Errorf("%w: %s must be at most %d characters", ErrValidationFieldTooLong, field, max)
}

// validateCardFields checks the full card against the field constraints.
// Used on create, where name is required.
func validateCardFields(card models.Card) error {
	if card.Name == "" {
		return ErrValidationNameRequired
	}

	update := models.CardUpdate{
		Name:            &card.Name,
		Title:           &card.Title,
		Description:     &card.Description,
		Email:           &card.Email,
		Phone:           &card.Phone,
		ProfileImage:    &card.ProfileImage,
		AccentColor:     &card.AccentColor,
		Gradient:        &card.Gradient,
		Theme:           &card.Theme,
		Links:           &card.Links,
		FeatureSections: &card.FeatureSections,
	}
	return validateUpdateFields(update)
}

// validateUpdateFields checks only the fields present in a partial update.
// A name, when provided, must stay non-empty: the required field cannot be
// erased by an overwrite.
func validateUpdateFields(update models.CardUpdate) error {
	if update.Name != nil {
		if *update.Name == "" {
			return ErrValidationNameRequired
		}
		if len(*update.Name) > maxNameLength {
			return fieldTooLong("name", maxNameLength)
		}
	}
	if update.Title != nil && len(*update.Title) > maxTitleLength {
		return fieldTooLong("title", maxTitleLength)
	}
	if update.Description != nil && len(*update.Description) > maxDescriptionLength {
		return fieldTooLong("description", maxDescriptionLength)
	}
	if update.Email != nil && len(*update.Email) > maxContactLength {
		return fieldTooLong("email", maxContactLength)
	}
	if update.Phone != nil && len(*update.Phone) > maxPhoneLength {
		return fieldTooLong("phone", maxPhoneLength)
	}
	if update.ProfileImage != nil && len(*update.ProfileImage) > maxInlineImageBytes {
		return fmt.Errorf("%w: profile image", ErrPayloadTooLarge)
	}
	if update.AccentColor != nil && len(*update.AccentColor) > maxColorLength {
		return fieldTooLong("accent_color", maxColorLength)
	}
	if update.Gradient != nil && len(*update.Gradient) > maxGradientLength {
		return fieldTooLong("gradient", maxGradientLength)
	}
	if update.Theme != nil && len(*update.Theme) > maxThemeLength {
		return fieldTooLong("theme", maxThemeLength)
	}

	if update.Links != nil {
		for i := range *update.Links {
			if err := validateLink(&(*update.Links)[i]); err != nil {
				return err
			}
		}
	}
	if update.FeatureSections != nil {
		for _, s := range *update.FeatureSections {
			if len(s.Image) > maxInlineImageBytes {
				return fmt.Errorf("%w: feature section image", ErrPayloadTooLarge)
			}
		}
	}

	return nil
}

// validateLink checks one link in place. An unrecognized type tag is
// coerced to custom rather than rejected, so clients sending tags this
// server version does not know keep working.
func validateLink(link *models.Link) error {
	if link.URL == "" {
		return ErrValidationBadLinkURL
	}
	if len(link.Title) > maxLinkTitleLength {
		return fieldTooLong("link title", maxLinkTitleLength)
	}
	if len(link.URL) > maxLinkURLLength {
		return fieldTooLong("link url", maxLinkURLLength)
	}

	if !link.Type.Valid() {
		link.Type = models.LinkTypeCustom
	}

	return nil
}
