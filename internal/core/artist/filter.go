// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package artist

import (
	"math"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/taibuivan/artistly/internal/platform/constants"
	"github.com/taibuivan/artistly/pkg/slice"
)

// currencyAmount captures the first amount written right after a currency
// symbol, e.g. "25,000" in "₹25,000-50,000".
var currencyAmount = regexp.MustCompile(`\p{Sc}([\d,]+)`)

// # Filter Engine

// Apply returns the artists matching every active dimension of criteria, in
// their original relative order.
//
// Apply never fails and never modifies records. Malformed price criteria do
// not disable the price dimension: their bounds become NaN and exclude every
// artist whose fee band has a parseable minimum.
func Apply(records []Artist, criteria Criteria) []Artist {
	m := newMatcher(criteria)
	return slice.Filter(records, m.match)
}

// Matches reports whether a single artist satisfies criteria.
func Matches(a Artist, criteria Criteria) bool {
	return newMatcher(criteria).match(a)
}

// MinimumFee extracts the lower bound of a display fee band such as
// "₹1,00,000-2,00,000". It reports false when the band carries no amount
// after a currency symbol.
func MinimumFee(priceRange string) (float64, bool) {
	match := currencyAmount.FindStringSubmatch(priceRange)
	if match == nil {
		return 0, false
	}
	return toNumber(strings.ReplaceAll(match[1], ",", "")), true
}

// ParsePriceBand splits filter criteria of the form "<min>-<max>". Missing or
// malformed bounds are NaN.
func ParsePriceBand(band string) (lower, upper float64) {
	parts := strings.Split(band, "-")

	lower = toNumber(parts[0])
	upper = math.NaN()
	if len(parts) > 1 {
		upper = toNumber(parts[1])
	}
	return lower, upper
}

// matcher holds criteria pre-processed once per Apply call.
type matcher struct {
	criteria Criteria
	lower    cases.Caser
	location string
	search   string
	priceMin float64
	priceMax float64
}

func newMatcher(criteria Criteria) *matcher {
	m := &matcher{
		criteria: criteria,
		lower:    cases.Lower(language.Und),
	}

	m.location = m.lower.String(criteria.Location)
	m.search = m.lower.String(criteria.Search)

	if criteria.PriceRange != "" {
		m.priceMin, m.priceMax = ParsePriceBand(criteria.PriceRange)
	}
	return m
}

// match evaluates the cheap exact checks before the lowercasing ones.
func (m *matcher) match(a Artist) bool {
	return m.matchCategory(a) && m.matchPrice(a) && m.matchLocation(a) && m.matchSearch(a)
}

func (m *matcher) matchCategory(a Artist) bool {
	return m.criteria.Category == "" || a.HasCategory(m.criteria.Category)
}

func (m *matcher) matchLocation(a Artist) bool {
	return m.criteria.Location == "" || strings.Contains(m.lower.String(a.Location), m.location)
}

func (m *matcher) matchSearch(a Artist) bool {
	if m.criteria.Search == "" {
		return true
	}
	return strings.Contains(m.lower.String(a.Name), m.search) ||
		strings.Contains(m.lower.String(a.Bio), m.search)
}

// matchPrice fails open when the artist's fee band has no parseable minimum.
func (m *matcher) matchPrice(a Artist) bool {
	if m.criteria.PriceRange == "" {
		return true
	}

	artistMin, ok := MinimumFee(a.PriceRange)
	if !ok {
		return true
	}

	return artistMin >= m.priceMin &&
		(m.priceMax == constants.UnboundedPriceMax || artistMin <= m.priceMax)
}
