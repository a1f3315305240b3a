package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelmate-app/travelmate-backend/types"
)

func TestComputeDays(t *testing.T) {
	cases := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{"three day trip", "2024-06-01", "2024-06-03", 3},
		{"same day", "2024-06-01", "2024-06-01", 1},
		{"inverted range floors at one", "2024-06-03", "2024-06-01", 1},
		{"missing start", "", "2024-06-03", 1},
		{"missing end", "2024-06-01", "", 1},
		{"garbage input", "next tuesday", "soon", 1},
		{"full week", "2024-06-01", "2024-06-07", 7},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ComputeDays(tc.start, tc.end))
		})
	}
}

func TestGenerateTimeSlots(t *testing.T) {
	t.Run("morning window", func(t *testing.T) {
		slots := GenerateTimeSlots(types.PreferredTimeMorning, 5)
		require.Len(t, slots, 5)
		assert.Equal(t, "6:00 AM", slots[0])
		assert.Equal(t, "7:12 AM", slots[1])
		assert.Equal(t, "10:48 AM", slots[4])
	})

	t.Run("evening window", func(t *testing.T) {
		slots := GenerateTimeSlots(types.PreferredTimeEvening, 5)
		require.Len(t, slots, 5)
		assert.Equal(t, "6:00 PM", slots[0])
		assert.Equal(t, "10:48 PM", slots[4])
	})

	t.Run("flexible spans the whole day", func(t *testing.T) {
		slots := GenerateTimeSlots(types.PreferredTimeFlexible, 5)
		require.Len(t, slots, 5)
		assert.Equal(t, "6:00 AM", slots[0])
		assert.Equal(t, "8:24 PM", slots[4])
	})

	t.Run("unknown daypart falls back to flexible", func(t *testing.T) {
		assert.Equal(t,
			GenerateTimeSlots(types.PreferredTimeFlexible, 5),
			GenerateTimeSlots(types.PreferredTime("brunch"), 5),
		)
	})
}

func twoPlacePlan() types.TripPlan {
	return types.TripPlan{
		ID:            "plan-1",
		StartDate:     "2024-06-01",
		EndDate:       "2024-06-02",
		PreferredTime: types.PreferredTimeMorning,
		SelectedPlaces: []types.SelectedPlace{
			{DestinationID: "a", Name: "A", City: "Carmen"},
			{DestinationID: "b", Name: "B", City: "Panglao"},
		},
	}
}

func TestBuildItinerary_MorningTwoPlacesTwoDays(t *testing.T) {
	itinerary := BuildItinerary(twoPlacePlan())

	require.Len(t, itinerary.Days, 2)

	day1 := itinerary.Days[0]
	assert.Equal(t, "Day 1", day1.Label)
	assert.Equal(t, "2024-06-01", day1.Date)
	require.Len(t, day1.Activities, 5)

	assert.Equal(t, "Visit A", day1.Activities[0].Description)
	assert.Equal(t, "6:00 AM", day1.Activities[0].TimeSlot)
	assert.Equal(t, "Explore B", day1.Activities[1].Description)
	assert.Equal(t, "Lunch", day1.Activities[2].Description)
	assert.Equal(t, "Return to Hotel / Rest", day1.Activities[4].Description)

	// second day wraps around the two-place list
	day2 := itinerary.Days[1]
	assert.Equal(t, "2024-06-02", day2.Date)
	assert.Equal(t, "Visit B", day2.Activities[0].Description)
	assert.Equal(t, "Explore A", day2.Activities[1].Description)
}

func TestBuildItinerary_EveningOffsetAndDinner(t *testing.T) {
	plan := twoPlacePlan()
	plan.PreferredTime = types.PreferredTimeEvening

	itinerary := BuildItinerary(plan)
	day1 := itinerary.Days[0]

	// evening shifts the primary activity to slot 2's window start; the
	// first place lands on the slot at the daypart offset
	assert.Equal(t, "Dinner", day1.Activities[2].Description)
	assert.Equal(t, "6:00 PM", day1.Activities[0].TimeSlot)
	assert.Equal(t, "Visit B", day1.Activities[0].Description)
	assert.Equal(t, "Explore A", day1.Activities[1].Description)
	assert.Equal(t, "Continue at B", day1.Activities[3].Description)
}

func TestBuildItinerary_Idempotent(t *testing.T) {
	plan := twoPlacePlan()

	first := BuildItinerary(plan)
	second := BuildItinerary(plan)

	require.Equal(t, first, second)
}

func TestBuildItinerary_EmptySelectionFallback(t *testing.T) {
	plan := types.TripPlan{
		ID:            "plan-2",
		StartDate:     "2024-06-01",
		EndDate:       "2024-06-02",
		PreferredTime: types.PreferredTimeMorning,
	}

	itinerary := BuildItinerary(plan)

	require.Len(t, itinerary.Days, 2)
	for _, day := range itinerary.Days {
		require.Len(t, day.Activities, 5)
		assert.Equal(t, "Breakfast / Travel", day.Activities[0].Description)
		assert.Equal(t, "Explore the area", day.Activities[1].Description)
		assert.Equal(t, "Lunch", day.Activities[2].Description)
		assert.Equal(t, "Free time", day.Activities[3].Description)
		assert.Equal(t, "Return to Hotel / Rest", day.Activities[4].Description)
	}
}

func TestBuildItinerary_MalformedDatesSingleDay(t *testing.T) {
	plan := twoPlacePlan()
	plan.StartDate = "not-a-date"
	plan.EndDate = ""

	itinerary := BuildItinerary(plan)

	require.Len(t, itinerary.Days, 1)
	assert.Empty(t, itinerary.Days[0].Date)
	assert.Equal(t, "Visit A", itinerary.Days[0].Activities[0].Description)
}
