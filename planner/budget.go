// Package planner implements the trip planning engine: budget normalization,
// destination matching, and itinerary synthesis. Every function here is a
// pure computation over in-memory data, with no I/O or clock access, and is
// total over its input domain: malformed numeric input is coerced to
// zero rather than rejected, because normalization runs on every keystroke
// while a traveler edits the planning form.
package planner

import (
	"math"
	"strings"

	"github.com/travelmate-app/travelmate-backend/types"
)

// BaselineDays normalizes a per-pax budget into a daily rate for
// duration-based suggestions. Product constant, not user-configurable.
const BaselineDays = 3

// Daypart cost multipliers applied when estimating whether the selected
// places fit the activities allocation. Values come from the product team
// and have no stated rationale; do not tune without confirmation.
const (
	eveningCostMultiplier   = 1.2
	afternoonCostMultiplier = 1.1
)

// RecomputeResult bundles everything a single normalization pass derives.
type RecomputeResult struct {
	Form            types.TripPlanForm    `json:"form"`
	Breakdown       types.BudgetBreakdown `json:"budgetBreakdown"`
	PerPaxBreakdown types.BudgetBreakdown `json:"perPaxBreakdown"`
	Suggestion      types.Suggestion      `json:"suggestion"`
}

// Recompute derives consistent per-pax/total budget figures, the category
// breakdown, and the advisory suggestion from the current form state.
//
// Exactly one of the two budget figures is authoritative, tagged by
// form.LastEdited: when the traveler last edited the per-pax figure the
// total is derived, and vice versa. Pax changes re-derive whichever figure
// is not authoritative. An unset tag defaults to the per-pax baseline.
//
// The suggestion never blocks anything; it is recomputed advice only.
func Recompute(form types.TripPlanForm, catalog []types.Destination) RecomputeResult {
	form.Pax = clampPax(form.Pax)
	form.Budget = sanitize(form.Budget)
	form.BudgetPerPax = sanitize(form.BudgetPerPax)

	pax := float64(form.Pax)

	switch form.LastEdited {
	case types.BudgetAuthorityTotal:
		form.BudgetPerPax = math.Round(form.Budget / pax)
	default:
		form.Budget = math.Round(form.BudgetPerPax * pax)
	}

	breakdown := types.BudgetBreakdown{
		Accommodation:  math.Round(form.Budget * form.Allocation.Accommodation / 100),
		Activities:     math.Round(form.Budget * form.Allocation.Activities / 100),
		Food:           math.Round(form.Budget * form.Allocation.Food / 100),
		Transportation: math.Round(form.Budget * form.Allocation.Transportation / 100),
	}
	perPax := types.BudgetBreakdown{
		Accommodation:  math.Round(breakdown.Accommodation / pax),
		Activities:     math.Round(breakdown.Activities / pax),
		Food:           math.Round(breakdown.Food / pax),
		Transportation: math.Round(breakdown.Transportation / pax),
	}

	return RecomputeResult{
		Form:            form,
		Breakdown:       breakdown,
		PerPaxBreakdown: perPax,
		Suggestion:      buildSuggestion(form, catalog),
	}
}

// buildSuggestion derives the duration-based expectation and the
// destination-based minimum, combining them into MinRequiredTotal.
func buildSuggestion(form types.TripPlanForm, catalog []types.Destination) types.Suggestion {
	days := float64(ComputeDays(form.StartDate, form.EndDate))
	pax := float64(clampPax(form.Pax))

	dailyPerPax := form.BudgetPerPax / BaselineDays
	expectedPerPax := math.Round(dailyPerPax * days)
	expectedTotal := math.Round(expectedPerPax * pax)

	suggestion := types.Suggestion{
		ExpectedBudgetPerPax: expectedPerPax,
		ExpectedTotalBudget:  expectedTotal,
		NeedsIncrease:        expectedTotal > form.Budget,
		MinRequiredTotal:     expectedTotal,
	}

	if avg := averageDestinationBudget(catalog, form.Destination); avg > 0 {
		destMin := math.Round(avg * pax * days / BaselineDays)
		suggestion.MinRequiredTotal = math.Max(destMin, expectedTotal)
	}

	return suggestion
}

// averageDestinationBudget averages the parsed budget of catalog entries
// whose name, city, or region exactly matches the query (case-insensitive).
// Returns 0 when nothing matches.
func averageDestinationBudget(catalog []types.Destination, query string) float64 {
	if strings.TrimSpace(query) == "" {
		return 0
	}

	var sum float64
	var count int
	for _, d := range Match(catalog, query) {
		sum += ParseNumericBudget(d)
		count++
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// ComputeSelectionWarning estimates the cost of the selected places against
// the activities allocation. The daypart multiplier inflates the estimate
// for afternoon and evening trips. Advisory only.
func ComputeSelectionWarning(selected []types.SelectedPlace, activitiesAllocated float64, preferred types.PreferredTime) types.SelectionWarning {
	var estimated float64
	for _, p := range selected {
		estimated += parseBudgetString(p.Budget)
	}

	switch preferred {
	case types.PreferredTimeEvening:
		estimated *= eveningCostMultiplier
	case types.PreferredTimeAfternoon:
		estimated *= afternoonCostMultiplier
	}
	estimated = math.Round(estimated)

	return types.SelectionWarning{
		Exceeded:            estimated > activitiesAllocated,
		EstimatedCost:       estimated,
		ActivitiesAllocated: activitiesAllocated,
	}
}

// clampPax guards budget math against division by zero; the host validates
// pax >= 1 at submission, but normalization runs on half-filled forms.
func clampPax(pax int) int {
	if pax < 1 {
		return 1
	}
	return pax
}

// sanitize coerces NaN and infinities to zero and floors negatives at zero.
func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
