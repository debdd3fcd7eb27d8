// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package onboarding implements artist self-registration.

A submitted [Form] is validated against the catalog, held for a short,
cancellable processing delay and then appended to the directory as a new,
unrated artist.
*/
package onboarding

import (
	"fmt"
	"slices"
	"strings"

	"github.com/taibuivan/artistly/internal/core/artist"
	"github.com/taibuivan/artistly/internal/core/catalog"
	"github.com/taibuivan/artistly/internal/platform/validate"
)

const (
	minNameLength = 2
	minBioLength  = 50
	maxNameLength = 200
)

// # Validation Field Names

const (
	FieldName       = "name"
	FieldBio        = "bio"
	FieldCategories = "categories"
	FieldLanguages  = "languages"
	FieldFeeRange   = "fee_range"
	FieldLocation   = "location"
	FieldEmail      = "email"
	FieldPhone      = "phone"
)

// Form is the onboarding submission.
type Form struct {
	Name       string   `json:"name"`
	Bio        string   `json:"bio"`
	Categories []string `json:"categories"`
	Languages  []string `json:"languages"`
	FeeRange   string   `json:"fee_range"`
	Location   string   `json:"location"`
	Email      string   `json:"email"`
	Phone      string   `json:"phone"`
}

// Validate checks every field and reports all failures at once.
func (f Form) Validate() error {
	validator := &validate.Validator{}

	validator.Required(FieldName, f.Name)
	if strings.TrimSpace(f.Name) != "" {
		validator.MinLen(FieldName, f.Name, minNameLength).MaxLen(FieldName, f.Name, maxNameLength)
	}

	validator.Required(FieldBio, f.Bio)
	if strings.TrimSpace(f.Bio) != "" {
		validator.MinLen(FieldBio, f.Bio, minBioLength)
	}

	validator.MinItems(FieldCategories, f.Categories, 1)
	checkTags(validator, FieldCategories, "category", f.Categories, catalog.CategoryNames(), catalog.SuggestCategory)

	validator.MinItems(FieldLanguages, f.Languages, 1)
	checkTags(validator, FieldLanguages, "language", f.Languages, catalog.Languages(), catalog.SuggestLanguage)

	validator.Required(FieldFeeRange, f.FeeRange)
	if strings.TrimSpace(f.FeeRange) != "" {
		validator.OneOf(FieldFeeRange, f.FeeRange, catalog.FeeRanges()...)
	}

	validator.Required(FieldLocation, f.Location)

	validator.Required(FieldEmail, f.Email)
	if strings.TrimSpace(f.Email) != "" {
		validator.Email(FieldEmail, f.Email)
	}

	validator.Required(FieldPhone, f.Phone)

	return validator.Err()
}

// checkTags rejects tags outside known, hinting at the closest known tag.
func checkTags(validator *validate.Validator, field, noun string, tags, known []string, suggest func(string) (string, bool)) {
	for _, tag := range tags {
		if slices.Contains(known, tag) {
			continue
		}

		message := fmt.Sprintf("Unknown %s %q", noun, tag)
		if hint, ok := suggest(tag); ok {
			message += fmt.Sprintf(", did you mean %q?", hint)
		}
		validator.Custom(field, true, message)
	}
}

// Artist converts a validated form into a new directory record. The id is
// left empty for the artist service to assign.
func (f Form) Artist() artist.Artist {
	return artist.Artist{
		Name:       f.Name,
		Bio:        f.Bio,
		Categories: slices.Clone(f.Categories),
		Languages:  slices.Clone(f.Languages),
		PriceRange: f.FeeRange,
		Location:   f.Location,
		Email:      f.Email,
		Phone:      f.Phone,
	}
}
