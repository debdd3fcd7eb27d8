// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package artist defines the directory's core: the artist record, the in-memory
[Registry] that owns every record for the lifetime of the process, and the
filter engine ([Apply]) that turns visitor criteria into an ordered result set.

Core Responsibility:

  - Registry: ordered collection with append, partial update, delete, enumerate.
  - Filtering: category, location, price band and free-text search, stable order.
  - Presentation: HTTP handlers for listing, featured artists and dashboard stats.
*/
package artist

import (
	"slices"
	"strings"
)

// # Core Entities

// Artist is a single performer profile in the directory.
type Artist struct {
	ID         string   `json:"id"          yaml:"id"`
	Name       string   `json:"name"        yaml:"name"`
	Bio        string   `json:"bio"         yaml:"bio"`
	Categories []string `json:"categories"  yaml:"categories"`
	Languages  []string `json:"languages"   yaml:"languages"`

	// PriceRange is the display fee band, e.g. "₹25,000-50,000".
	PriceRange string `json:"price_range" yaml:"price_range"`
	Location   string `json:"location"    yaml:"location"`
	Email      string `json:"email"       yaml:"email"`
	Phone      string `json:"phone"       yaml:"phone"`
	Image      string `json:"image"       yaml:"image"`

	// Rating of 0 means "unrated"; it is not a real score.
	Rating      float64 `json:"rating"       yaml:"rating"`
	ReviewCount int     `json:"review_count" yaml:"review_count"`
}

// Clone returns a deep copy that shares no slices with a.
func (a Artist) Clone() Artist {
	a.Categories = slices.Clone(a.Categories)
	a.Languages = slices.Clone(a.Languages)
	return a
}

// HasCategory reports whether the exact, case-sensitive tag is present.
func (a Artist) HasCategory(category string) bool {
	return slices.Contains(a.Categories, category)
}

func cloneAll(artists []Artist) []Artist {
	out := make([]Artist, len(artists))
	for i, a := range artists {
		out[i] = a.Clone()
	}
	return out
}

// # Partial Update

// Patch is a partial artist update. Nil fields are left unchanged; the ID is
// never patchable.
//
// For the slice fields nil means "unchanged" while an explicit empty list
// clears the set.
type Patch struct {
	Name        *string  `json:"name,omitempty"`
	Bio         *string  `json:"bio,omitempty"`
	Categories  []string `json:"categories,omitempty"`
	Languages   []string `json:"languages,omitempty"`
	PriceRange  *string  `json:"price_range,omitempty"`
	Location    *string  `json:"location,omitempty"`
	Email       *string  `json:"email,omitempty"`
	Phone       *string  `json:"phone,omitempty"`
	Image       *string  `json:"image,omitempty"`
	Rating      *float64 `json:"rating,omitempty"`
	ReviewCount *int     `json:"review_count,omitempty"`
}

// IsEmpty reports whether the patch would change nothing.
func (p Patch) IsEmpty() bool {
	return p.Name == nil && p.Bio == nil && p.Categories == nil && p.Languages == nil &&
		p.PriceRange == nil && p.Location == nil && p.Email == nil && p.Phone == nil &&
		p.Image == nil && p.Rating == nil && p.ReviewCount == nil
}

// # Filter Criteria

// Criteria describes the active filter dimensions. An empty field disables
// that dimension.
type Criteria struct {
	// Category must equal one of the artist's tags (case-sensitive).
	Category string `json:"category"`

	// Location is a case-insensitive substring of the artist's location.
	Location string `json:"location"`

	// PriceRange is "<min>-<max>" in plain integers; a max of 999999 is unbounded.
	PriceRange string `json:"price_range"`

	// Search is a case-insensitive substring of the name or the bio.
	Search string `json:"search"`
}

// IsEmpty reports whether no dimension is active.
func (c Criteria) IsEmpty() bool {
	return c.Category == "" && c.Location == "" && c.PriceRange == "" && c.Search == ""
}

// Key is a stable cache key for the criteria.
func (c Criteria) Key() string {
	return strings.Join([]string{c.Category, c.Location, c.PriceRange, c.Search}, "\x1f")
}

// # Validation Field Names

const (
	FieldID          = "id"
	FieldName        = "name"
	FieldEmail       = "email"
	FieldRating      = "rating"
	FieldReviewCount = "review_count"
)
