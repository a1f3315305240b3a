package planner

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"

	"github.com/travelmate-app/travelmate-backend/types"
)

// excludedKeyword marks catalog entries that are event listings rather than
// visitable places; they never appear in trip recommendations.
const excludedKeyword = "festival"

// Match returns catalog entries whose name, city, or region equals the
// query, case-insensitively.
func Match(catalog []types.Destination, query string) []types.Destination {
	q := strings.TrimSpace(query)
	if q == "" {
		return nil
	}

	var out []types.Destination
	for _, d := range catalog {
		if strings.EqualFold(d.Name, q) ||
			strings.EqualFold(d.City, q) ||
			strings.EqualFold(d.Region, q) {
			out = append(out, d)
		}
	}
	return out
}

// MatchFallback returns catalog entries whose name, city, or region contains
// the query as a substring, case-insensitively. Used only when Match comes
// back empty.
func MatchFallback(catalog []types.Destination, query string) []types.Destination {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var out []types.Destination
	for _, d := range catalog {
		if strings.Contains(strings.ToLower(d.Name), q) ||
			strings.Contains(strings.ToLower(d.City), q) ||
			strings.Contains(strings.ToLower(d.Region), q) {
			out = append(out, d)
		}
	}
	return out
}

// MatchWithFallback runs the exact match and falls back to the substring
// match when the exact set is empty.
func MatchWithFallback(catalog []types.Destination, query string) []types.Destination {
	if exact := Match(catalog, query); len(exact) > 0 {
		return exact
	}
	return MatchFallback(catalog, query)
}

// FilterAffordable keeps places a traveler can afford on the given per-pax
// budget. Entries with an unparseable or zero budget are kept, since unknown
// cost is not grounds for exclusion. Festival listings are dropped regardless
// of price.
//
// An empty result is not an error: the caller is expected to surface the
// suggestion's MinRequiredTotal as guidance instead.
func FilterAffordable(places []types.Destination, budgetPerPax float64) []types.Destination {
	var out []types.Destination
	for _, d := range places {
		if isExcluded(d) {
			continue
		}
		cost := ParseNumericBudget(d)
		if cost == 0 || cost <= budgetPerPax {
			out = append(out, d)
		}
	}
	return out
}

func isExcluded(d types.Destination) bool {
	return strings.Contains(strings.ToLower(d.Category), excludedKeyword) ||
		strings.Contains(strings.ToLower(d.Name), excludedKeyword)
}

// ParseNumericBudget extracts the numeric cost of a catalog entry. Budgets
// are curated free-text: a plain number, or a currency range like
// "₱10,000 - ₱20,000", in which case the first integer run wins (the lower
// bound of the range). Returns 0 when nothing parseable is present.
func ParseNumericBudget(d types.Destination) float64 {
	return parseBudgetString(d.Budget)
}

func parseBudgetString(s string) float64 {
	var run strings.Builder
	started := false

	for _, r := range s {
		switch {
		case unicode.IsDigit(r):
			run.WriteRune(r)
			started = true
		case r == ',' && started:
			// thousands separator inside a digit run
		case started:
			// first integer run complete
			goto done
		}
	}
done:
	if run.Len() == 0 {
		return 0
	}

	dec, err := decimal.NewFromString(run.String())
	if err != nil {
		return 0
	}
	return dec.InexactFloat64()
}
