package planner

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelmate-app/travelmate-backend/types"
)

func testCatalog() []types.Destination {
	return []types.Destination{
		{ID: "d1", Name: "Chocolate Hills", City: "Carmen", Region: "Bohol", Category: "Nature", Budget: "₱3,000"},
		{ID: "d2", Name: "Alona Beach", City: "Panglao", Region: "Bohol", Category: "Beach", Budget: "₱6,000"},
		{ID: "d3", Name: "Intramuros", City: "Manila", Region: "NCR", Category: "Heritage", Budget: "₱1,500"},
		{ID: "d4", Name: "Sinulog Festival", City: "Cebu City", Region: "Cebu", Category: "Festival", Budget: "₱500"},
		{ID: "d5", Name: "Kawasan Falls", City: "Badian", Region: "Cebu", Category: "Nature", Budget: ""},
	}
}

func TestRecompute_PerPaxAuthoritative(t *testing.T) {
	form := types.TripPlanForm{
		Pax:          2,
		BudgetPerPax: 5000,
		LastEdited:   types.BudgetAuthorityPerPax,
		Allocation:   types.DefaultBudgetAllocation(),
		StartDate:    "2024-06-01",
		EndDate:      "2024-06-03",
	}

	result := Recompute(form, nil)

	assert.Equal(t, float64(10000), result.Form.Budget)
	assert.Equal(t, float64(5000), result.Form.BudgetPerPax)
}

func TestRecompute_TotalAuthoritative(t *testing.T) {
	form := types.TripPlanForm{
		Pax:        2,
		Budget:     10000,
		LastEdited: types.BudgetAuthorityTotal,
		Allocation: types.DefaultBudgetAllocation(),
	}

	result := Recompute(form, nil)

	assert.Equal(t, float64(5000), result.Form.BudgetPerPax)
	assert.Equal(t, float64(10000), result.Form.Budget)
}

func TestRecompute_Breakdown(t *testing.T) {
	// pax=2, budget=10000 with the 40/30/20/10 default split
	form := types.TripPlanForm{
		Pax:        2,
		Budget:     10000,
		LastEdited: types.BudgetAuthorityTotal,
		Allocation: types.DefaultBudgetAllocation(),
	}

	result := Recompute(form, nil)

	assert.Equal(t, float64(4000), result.Breakdown.Accommodation)
	assert.Equal(t, float64(3000), result.Breakdown.Food)
	assert.Equal(t, float64(2000), result.Breakdown.Transportation)
	assert.Equal(t, float64(1000), result.Breakdown.Activities)

	assert.Equal(t, float64(2000), result.PerPaxBreakdown.Accommodation)
	assert.Equal(t, float64(500), result.PerPaxBreakdown.Activities)
}

func TestRecompute_BudgetConsistencyProperty(t *testing.T) {
	cases := []struct {
		name       string
		pax        int
		perPax     float64
		total      float64
		lastEdited types.BudgetAuthority
	}{
		{"per pax small group", 2, 5000, 0, types.BudgetAuthorityPerPax},
		{"per pax odd amount", 3, 3333, 0, types.BudgetAuthorityPerPax},
		{"total even split", 4, 0, 20000, types.BudgetAuthorityTotal},
		{"total odd split", 3, 0, 10000, types.BudgetAuthorityTotal},
		{"single traveler", 1, 750, 0, types.BudgetAuthorityPerPax},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			form := types.TripPlanForm{
				Pax:          tc.pax,
				BudgetPerPax: tc.perPax,
				Budget:       tc.total,
				LastEdited:   tc.lastEdited,
				Allocation:   types.DefaultBudgetAllocation(),
			}

			result := Recompute(form, nil)

			derived := math.Round(result.Form.BudgetPerPax * float64(tc.pax))
			assert.InDelta(t, result.Form.Budget, derived, 1.0+0.5*float64(tc.pax),
				"budget and budgetPerPax*pax must agree within rounding tolerance")
		})
	}
}

func TestRecompute_AllocationSumProperty(t *testing.T) {
	// any split summing to exactly 100 must decompose the full budget
	splits := []types.BudgetAllocation{
		{Accommodation: 40, Food: 30, Transportation: 20, Activities: 10},
		{Accommodation: 25, Food: 25, Transportation: 25, Activities: 25},
		{Accommodation: 70, Food: 10, Transportation: 10, Activities: 10},
	}

	for _, split := range splits {
		form := types.TripPlanForm{
			Pax:        2,
			Budget:     10000,
			LastEdited: types.BudgetAuthorityTotal,
			Allocation: split,
		}

		result := Recompute(form, nil)

		sum := result.Breakdown.Accommodation + result.Breakdown.Food +
			result.Breakdown.Transportation + result.Breakdown.Activities
		assert.InDelta(t, form.Budget, sum, 2, "breakdown must sum to the budget")
	}
}

func TestRecompute_ClampsPax(t *testing.T) {
	form := types.TripPlanForm{
		Pax:          0,
		BudgetPerPax: 4000,
		LastEdited:   types.BudgetAuthorityPerPax,
	}

	result := Recompute(form, nil)

	assert.Equal(t, 1, result.Form.Pax)
	assert.Equal(t, float64(4000), result.Form.Budget)
}

func TestRecompute_MalformedNumbersCoercedToZero(t *testing.T) {
	form := types.TripPlanForm{
		Pax:          2,
		BudgetPerPax: math.NaN(),
		Budget:       math.Inf(1),
		LastEdited:   types.BudgetAuthorityPerPax,
	}

	result := Recompute(form, nil)

	assert.Equal(t, float64(0), result.Form.Budget)
	assert.Equal(t, float64(0), result.Form.BudgetPerPax)
	assert.False(t, result.Suggestion.NeedsIncrease)
}

func TestRecompute_SuggestionLongTripNeedsIncrease(t *testing.T) {
	// 6 days at a budget sized for the 3-day baseline: expected total is
	// double the entered budget, so the advisory flips on.
	form := types.TripPlanForm{
		Pax:          2,
		BudgetPerPax: 3000,
		LastEdited:   types.BudgetAuthorityPerPax,
		StartDate:    "2024-06-01",
		EndDate:      "2024-06-06",
	}

	result := Recompute(form, nil)

	require.Equal(t, float64(6000), result.Form.Budget)
	assert.Equal(t, float64(6000), result.Suggestion.ExpectedBudgetPerPax)
	assert.Equal(t, float64(12000), result.Suggestion.ExpectedTotalBudget)
	assert.True(t, result.Suggestion.NeedsIncrease)
}

func TestRecompute_SuggestionBaselineTripNoIncrease(t *testing.T) {
	form := types.TripPlanForm{
		Pax:          2,
		BudgetPerPax: 3000,
		LastEdited:   types.BudgetAuthorityPerPax,
		StartDate:    "2024-06-01",
		EndDate:      "2024-06-03",
	}

	result := Recompute(form, nil)

	assert.Equal(t, float64(6000), result.Suggestion.ExpectedTotalBudget)
	assert.False(t, result.Suggestion.NeedsIncrease)
}

func TestRecompute_DestinationMinimum(t *testing.T) {
	// Bohol matches d1 (3000) and d2 (6000): average 4500 per pax for the
	// 3-day baseline. 2 pax over 3 days scales it to 9000, which beats the
	// duration expectation of 6000.
	form := types.TripPlanForm{
		Destination:  "Bohol",
		Pax:          2,
		BudgetPerPax: 3000,
		LastEdited:   types.BudgetAuthorityPerPax,
		StartDate:    "2024-06-01",
		EndDate:      "2024-06-03",
	}

	result := Recompute(form, testCatalog())

	assert.Equal(t, float64(9000), result.Suggestion.MinRequiredTotal)
}

func TestRecompute_NoDestinationMatchFallsBackToExpectedTotal(t *testing.T) {
	form := types.TripPlanForm{
		Destination:  "Atlantis",
		Pax:          2,
		BudgetPerPax: 3000,
		LastEdited:   types.BudgetAuthorityPerPax,
		StartDate:    "2024-06-01",
		EndDate:      "2024-06-03",
	}

	result := Recompute(form, testCatalog())

	assert.Equal(t, result.Suggestion.ExpectedTotalBudget, result.Suggestion.MinRequiredTotal)
}

func TestComputeSelectionWarning(t *testing.T) {
	selected := []types.SelectedPlace{
		{DestinationID: "d1", Name: "Chocolate Hills", Budget: "₱3,000"},
		{DestinationID: "d2", Name: "Alona Beach", Budget: "₱6,000"},
	}

	t.Run("within allocation", func(t *testing.T) {
		w := ComputeSelectionWarning(selected, 10000, types.PreferredTimeMorning)
		assert.False(t, w.Exceeded)
		assert.Equal(t, float64(9000), w.EstimatedCost)
	})

	t.Run("evening multiplier pushes over", func(t *testing.T) {
		w := ComputeSelectionWarning(selected, 10000, types.PreferredTimeEvening)
		assert.True(t, w.Exceeded)
		assert.Equal(t, float64(10800), w.EstimatedCost)
	})

	t.Run("afternoon multiplier", func(t *testing.T) {
		w := ComputeSelectionWarning(selected, 10000, types.PreferredTimeAfternoon)
		assert.Equal(t, float64(9900), w.EstimatedCost)
		assert.False(t, w.Exceeded)
	})
}
