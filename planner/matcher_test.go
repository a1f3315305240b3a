package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelmate-app/travelmate-backend/types"
)

func TestMatch_ExactCaseInsensitive(t *testing.T) {
	catalog := testCatalog()

	t.Run("by city", func(t *testing.T) {
		matches := Match(catalog, "manila")
		require.Len(t, matches, 1)
		assert.Equal(t, "Intramuros", matches[0].Name)
	})

	t.Run("by region", func(t *testing.T) {
		matches := Match(catalog, "BOHOL")
		assert.Len(t, matches, 2)
	})

	t.Run("by name", func(t *testing.T) {
		matches := Match(catalog, "chocolate hills")
		require.Len(t, matches, 1)
		assert.Equal(t, "d1", matches[0].ID)
	})

	t.Run("no partial matches", func(t *testing.T) {
		assert.Empty(t, Match(catalog, "Choco"))
	})

	t.Run("empty query", func(t *testing.T) {
		assert.Empty(t, Match(catalog, ""))
	})
}

func TestMatchFallback_Substring(t *testing.T) {
	catalog := testCatalog()

	matches := MatchFallback(catalog, "beach")
	require.Len(t, matches, 1)
	assert.Equal(t, "Alona Beach", matches[0].Name)
}

func TestMatchWithFallback(t *testing.T) {
	catalog := testCatalog()

	t.Run("exact match wins", func(t *testing.T) {
		matches := MatchWithFallback(catalog, "Bohol")
		assert.Len(t, matches, 2)
	})

	t.Run("falls back to substring when exact set is empty", func(t *testing.T) {
		// "falls" matches nothing exactly but is contained in "Kawasan Falls"
		matches := MatchWithFallback(catalog, "falls")
		require.Len(t, matches, 1)
		assert.Equal(t, "Kawasan Falls", matches[0].Name)
	})
}

func TestFilterAffordable(t *testing.T) {
	catalog := testCatalog()

	t.Run("excludes places over budget", func(t *testing.T) {
		filtered := FilterAffordable(catalog, 3000)

		ids := make([]string, 0, len(filtered))
		for _, d := range filtered {
			ids = append(ids, d.ID)
		}
		// d2 costs 6000 (over), d4 is a festival; d5 has unknown cost and is kept
		assert.ElementsMatch(t, []string{"d1", "d3", "d5"}, ids)
	})

	t.Run("unknown cost is always kept", func(t *testing.T) {
		filtered := FilterAffordable(catalog, 1)
		require.Len(t, filtered, 1)
		assert.Equal(t, "d5", filtered[0].ID)
	})

	t.Run("festival excluded regardless of price", func(t *testing.T) {
		cheap := []types.Destination{
			{ID: "f1", Name: "Panagbenga FESTIVAL", Category: "Event", Budget: "100"},
			{ID: "f2", Name: "Street Party", Category: "festival", Budget: "100"},
		}
		assert.Empty(t, FilterAffordable(cheap, 100000))
	})
}

func TestParseNumericBudget(t *testing.T) {
	cases := []struct {
		name   string
		budget string
		want   float64
	}{
		{"currency range takes the lower bound", "₱8,000 - ₱15,000", 8000},
		{"plain number", "8000", 8000},
		{"with thousands separator", "₱10,000", 10000},
		{"prefixed text", "around 2,500 per head", 2500},
		{"empty string", "", 0},
		{"no digits", "varies", 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseNumericBudget(types.Destination{Budget: tc.budget})
			assert.Equal(t, tc.want, got)
		})
	}
}
