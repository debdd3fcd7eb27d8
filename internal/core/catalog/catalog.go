// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package catalog holds the fixed option lists of the directory: performer
categories, spoken languages, fee bands offered on the onboarding form and the
price bands offered by the listing filter bar.

The lists are static reference data. They are served read-only over HTTP and
used by onboarding to validate submitted tags.
*/
package catalog

import (
	"slices"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"

	"github.com/taibuivan/artistly/pkg/slug"
)

// suggestionThreshold is the minimum Jaro-Winkler similarity for a
// "did you mean" hint.
const suggestionThreshold = 0.8

// # Reference Types

// Category is a performer category tag. Name is the exact tag stored on
// artists and matched by the listing filter; Slug is its URL form.
type Category struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// PriceBand is a filter bar option. Value is passed verbatim as the listing
// "price" criterion.
type PriceBand struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// # Reference Data

var categoryNames = []string{
	"Singer", "Dancer", "DJ", "Speaker", "Musician", "Comedian", "Magician", "Actor",
}

var languages = []string{
	"Hindi", "English", "Tamil", "Marathi", "Gujarati",
	"Punjabi", "Bengali", "Telugu", "Kannada", "Malayalam",
}

var feeRanges = []string{
	"₹25,000-50,000",
	"₹50,000-1,00,000",
	"₹1,00,000-2,00,000",
	"₹2,00,000+",
}

var priceBands = []PriceBand{
	{Label: "₹25,000 - ₹50,000", Value: "25000-50000"},
	{Label: "₹50,000 - ₹1,00,000", Value: "50000-100000"},
	{Label: "₹1,00,000 - ₹2,00,000", Value: "100000-200000"},
	{Label: "₹2,00,000+", Value: "200000-999999"},
}

// Categories returns every category with its slug.
func Categories() []Category {
	out := make([]Category, len(categoryNames))
	for i, name := range categoryNames {
		out[i] = Category{Name: name, Slug: slug.From(name)}
	}
	return out
}

// CategoryNames returns the exact category tags.
func CategoryNames() []string { return slices.Clone(categoryNames) }

// Languages returns the supported performance languages.
func Languages() []string { return slices.Clone(languages) }

// FeeRanges returns the fee bands an artist may pick when onboarding.
func FeeRanges() []string { return slices.Clone(feeRanges) }

// PriceBands returns the listing filter options.
func PriceBands() []PriceBand { return slices.Clone(priceBands) }

// CategoryBySlug resolves a URL slug back to its category.
func CategoryBySlug(s string) (Category, bool) {
	for _, category := range Categories() {
		if category.Slug == s {
			return category, true
		}
	}
	return Category{}, false
}

// # Suggestions

// Suggest returns the option most similar to value, ignoring case, when it
// scores at least the suggestion threshold.
func Suggest(options []string, value string) (string, bool) {
	metric := metrics.NewJaroWinkler()
	metric.CaseSensitive = false

	needle := strings.TrimSpace(value)
	if needle == "" {
		return "", false
	}

	var (
		best      string
		bestScore float64
	)
	for _, option := range options {
		score := strutil.Similarity(needle, option, metric)
		if score > bestScore {
			best, bestScore = option, score
		}
	}

	if bestScore < suggestionThreshold {
		return "", false
	}
	return best, true
}

// SuggestCategory is [Suggest] over the category tags.
func SuggestCategory(value string) (string, bool) {
	return Suggest(categoryNames, value)
}

// SuggestLanguage is [Suggest] over the supported languages.
func SuggestLanguage(value string) (string, bool) {
	return Suggest(languages, value)
}
