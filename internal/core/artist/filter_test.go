// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package artist

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

var (
	singerA = Artist{ID: "A", Name: "Asha", Categories: []string{"Singer"}, Location: "Mumbai", PriceRange: "₹25,000-50,000"}
	dancerB = Artist{ID: "B", Name: "Bharat", Categories: []string{"Dancer"}, Location: "Delhi", PriceRange: "₹1,00,000-2,00,000"}
)

func ids(artists []Artist) []string {
	out := make([]string, len(artists))
	for i, a := range artists {
		out[i] = a.ID
	}
	return out
}

func ptr[T any](v T) *T { return &v }

/*
TestApply_Scenario verifies the reference two-artist directory.
*/
func TestApply_Scenario(t *testing.T) {
	records := []Artist{singerA, dancerB}

	tests := []struct {
		name     string
		criteria Criteria
		want     []string
	}{
		{"category", Criteria{Category: "Singer"}, []string{"A"}},
		{"location_case_insensitive", Criteria{Location: "delhi"}, []string{"B"}},
		{"price_band", Criteria{PriceRange: "0-60000"}, []string{"A"}},
		{"no_criteria", Criteria{}, []string{"A", "B"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ids(Apply(records, tc.criteria)))
		})
	}
}

/*
TestApply_TextMatching checks case rules for each text dimension.
*/
func TestApply_TextMatching(t *testing.T) {
	records := []Artist{
		{ID: "1", Name: "Priya Sharma", Bio: "Bollywood vocalist", Categories: []string{"Singer"}, Location: "Mumbai, Maharashtra"},
		{ID: "2", Name: "DJ Kavya", Bio: "House and techno", Categories: []string{"DJ", "Singer"}, Location: "Bengaluru"},
		{ID: "3", Name: "Rohan Das", Bio: "Clean comedy", Categories: []string{"Comedian"}, Location: "Kolkata"},
	}

	tests := []struct {
		name     string
		criteria Criteria
		want     []string
	}{
		{"category_exact", Criteria{Category: "Singer"}, []string{"1", "2"}},
		{"category_case_sensitive", Criteria{Category: "singer"}, []string{}},
		{"category_not_substring", Criteria{Category: "Sing"}, []string{}},
		{"location_substring", Criteria{Location: "MAHA"}, []string{"1"}},
		{"search_name", Criteria{Search: "kavya"}, []string{"2"}},
		{"search_bio", Criteria{Search: "BOLLY"}, []string{"1"}},
		{"search_misses_location", Criteria{Search: "kolkata"}, []string{}},
		{"combined", Criteria{Category: "Singer", Search: "techno"}, []string{"2"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ids(Apply(records, tc.criteria)))
		})
	}
}

/*
TestApply_Price covers bounds parsing, the unbounded sentinel and the
fail-open rule for unpriced artists.
*/
func TestApply_Price(t *testing.T) {
	records := []Artist{
		{ID: "25k", PriceRange: "₹25,000-50,000"},
		{ID: "50k", PriceRange: "₹50,000-1,00,000"},
		{ID: "100k", PriceRange: "₹1,00,000-2,00,000"},
		{ID: "200k", PriceRange: "₹2,00,000+"},
	}
	unpriced := Artist{ID: "none", PriceRange: "Price on request"}

	tests := []struct {
		name       string
		priceRange string
		want       []string
	}{
		{"inclusive_bounds", "50000-100000", []string{"50k", "100k"}},
		{"unbounded_sentinel", "200000-999999", []string{"200k"}},
		{"sentinel_ignores_upper", "25000-999999", []string{"25k", "50k", "100k", "200k"}},
		{"empty_min_is_zero", "-60000", []string{"25k", "50k"}},
		{"empty_max_is_zero", "0-", []string{}},
		{"missing_max_is_nan", "25000", []string{}},
		{"whitespace_trimmed", " 0 - 60000 ", []string{"25k", "50k"}},
		{"malformed", "abc-def", []string{}},
		{"malformed_max", "0-lots", []string{}},
		{"extra_parts_ignored", "0-60000-5", []string{"25k", "50k"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ids(Apply(records, Criteria{PriceRange: tc.priceRange})))
		})
	}

	t.Run("unpriced_fails_open", func(t *testing.T) {
		all := append(records, unpriced)
		assert.Equal(t, []string{"none"}, ids(Apply(all, Criteria{PriceRange: "abc-def"})))
		assert.Equal(t, []string{"200k", "none"}, ids(Apply(all, Criteria{PriceRange: "200000-999999"})))
	})
}

func TestApply_EmptyInput(t *testing.T) {
	got := Apply(nil, Criteria{Category: "Singer"})
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestMinimumFee(t *testing.T) {
	tests := []struct {
		band string
		want float64
		ok   bool
	}{
		{"₹25,000-50,000", 25000, true},
		{"₹1,00,000-2,00,000", 100000, true},
		{"₹2,00,000+", 200000, true},
		{"From $1,500", 1500, true},
		{"₹,", 0, true},
		{"Price on request", 0, false},
		{"25,000-50,000", 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.band, func(t *testing.T) {
			got, ok := MinimumFee(tc.band)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestToNumber(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"", 0},
		{"   ", 0},
		{"42", 42},
		{" 42\n", 42},
		{"-5", -5},
		{"+7", 7},
		{"5.", 5},
		{".5", 0.5},
		{"1e3", 1000},
		{"0x1F", 31},
		{"0o17", 15},
		{"0b101", 5},
		{"Infinity", math.Inf(1)},
		{"-Infinity", math.Inf(-1)},
		{"1e400", math.Inf(1)},
	}

	for _, tc := range tests {
		t.Run(strconv.Quote(tc.raw), func(t *testing.T) {
			assert.Equal(t, tc.want, toNumber(tc.raw))
		})
	}

	for _, raw := range []string{"abc", "12abc", "1_000", "0x", "0xG", "-0x10", "1,000", "infinity", "."} {
		t.Run("nan_"+strconv.Quote(raw), func(t *testing.T) {
			assert.True(t, math.IsNaN(toNumber(raw)))
		})
	}
}

// # Properties

func genArtists() *rapid.Generator[[]Artist] {
	return rapid.Custom(func(t *rapid.T) []Artist {
		n := rapid.IntRange(0, 12).Draw(t, "n")
		out := make([]Artist, n)
		for i := range out {
			out[i] = Artist{
				ID:         strconv.Itoa(i),
				Name:       rapid.SampledFrom([]string{"Asha", "Bharat", "DJ Kavya", "Meera"}).Draw(t, "name"),
				Bio:        rapid.SampledFrom([]string{"", "Folk singer", "Club DJ", "Stand-up"}).Draw(t, "bio"),
				Categories: rapid.SliceOfN(rapid.SampledFrom([]string{"Singer", "Dancer", "DJ"}), 0, 3).Draw(t, "categories"),
				Location:   rapid.SampledFrom([]string{"Mumbai", "Delhi", "Pune", ""}).Draw(t, "location"),
				PriceRange: rapid.SampledFrom([]string{"₹25,000-50,000", "₹1,00,000-2,00,000", "₹2,00,000+", "TBD", ""}).Draw(t, "price"),
			}
		}
		return out
	})
}

func genCriteria() *rapid.Generator[Criteria] {
	return rapid.Custom(func(t *rapid.T) Criteria {
		return Criteria{
			Category:   rapid.SampledFrom([]string{"", "Singer", "DJ", "singer"}).Draw(t, "category"),
			Location:   rapid.SampledFrom([]string{"", "mum", "DELHI", "x"}).Draw(t, "location"),
			PriceRange: rapid.SampledFrom([]string{"", "0-60000", "100000-999999", "abc-def", "-", "50000"}).Draw(t, "price"),
			Search:     rapid.SampledFrom([]string{"", "a", "dj", "folk"}).Draw(t, "search"),
		}
	})
}

func TestApply_Properties(t *testing.T) {
	t.Run("identity", func(t *testing.T) {
		rapid.Check(t, func(rt *rapid.T) {
			records := genArtists().Draw(rt, "records")
			assert.Equal(rt, ids(records), ids(Apply(records, Criteria{})))
		})
	})

	t.Run("stable_subsequence", func(t *testing.T) {
		rapid.Check(t, func(rt *rapid.T) {
			records := genArtists().Draw(rt, "records")
			criteria := genCriteria().Draw(rt, "criteria")

			last := -1
			for _, a := range Apply(records, criteria) {
				index, err := strconv.Atoi(a.ID)
				require.NoError(rt, err)
				if index <= last {
					rt.Fatalf("result out of order: %d after %d", index, last)
				}
				last = index
			}
		})
	})

	t.Run("idempotent", func(t *testing.T) {
		rapid.Check(t, func(rt *rapid.T) {
			records := genArtists().Draw(rt, "records")
			criteria := genCriteria().Draw(rt, "criteria")

			once := Apply(records, criteria)
			assert.Equal(rt, ids(once), ids(Apply(once, criteria)))
		})
	})

	t.Run("agrees_with_matches", func(t *testing.T) {
		rapid.Check(t, func(rt *rapid.T) {
			records := genArtists().Draw(rt, "records")
			criteria := genCriteria().Draw(rt, "criteria")

			var want []string
			for _, a := range records {
				if Matches(a, criteria) {
					want = append(want, a.ID)
				}
			}
			assert.ElementsMatch(rt, want, ids(Apply(records, criteria)))
		})
	})

	t.Run("input_untouched", func(t *testing.T) {
		rapid.Check(t, func(rt *rapid.T) {
			records := genArtists().Draw(rt, "records")
			before := cloneAll(records)

			Apply(records, genCriteria().Draw(rt, "criteria"))
			assert.Equal(rt, before, records)
		})
	})
}
