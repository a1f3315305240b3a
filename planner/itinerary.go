package planner

import (
	"fmt"
	"math"
	"time"

	"github.com/travelmate-app/travelmate-backend/types"
)

// slotsPerDay is the fixed number of scheduled entries in a day plan.
const slotsPerDay = 5

// daypart clock windows, in hours.
var daypartWindows = map[types.PreferredTime][2]int{
	types.PreferredTimeMorning:   {6, 12},
	types.PreferredTimeAfternoon: {12, 18},
	types.PreferredTimeEvening:   {18, 24},
	types.PreferredTimeFlexible:  {6, 24},
}

// daypartOffsets shift the first place-carrying slot into the traveler's
// preferred window.
var daypartOffsets = map[types.PreferredTime]int{
	types.PreferredTimeMorning:   0,
	types.PreferredTimeAfternoon: 1,
	types.PreferredTimeEvening:   2,
	types.PreferredTimeFlexible:  0,
}

// ComputeDays returns the inclusive day count between two calendar dates.
// Malformed or missing dates and inverted ranges all collapse to 1; the
// function never fails.
func ComputeDays(startDate, endDate string) int {
	start, errStart := time.Parse(types.DateLayout, startDate)
	end, errEnd := time.Parse(types.DateLayout, endDate)
	if errStart != nil || errEnd != nil {
		return 1
	}

	days := int(end.Sub(start).Hours()/24) + 1
	if days < 1 {
		return 1
	}
	return days
}

// GenerateTimeSlots partitions the clock window of the given daypart into
// count equally spaced times, formatted 12-hour with AM/PM. An unknown
// daypart falls back to the flexible window.
func GenerateTimeSlots(preferred types.PreferredTime, count int) []string {
	window, ok := daypartWindows[preferred]
	if !ok {
		window = daypartWindows[types.PreferredTimeFlexible]
	}
	if count < 1 {
		return nil
	}

	startMin := window[0] * 60
	stepMin := (window[1] - window[0]) * 60 / count

	slots := make([]string, count)
	for i := 0; i < count; i++ {
		total := startMin + i*stepMin
		clock := time.Date(2000, 1, 1, total/60, total%60, 0, 0, time.UTC)
		slots[i] = clock.Format("3:04 PM")
	}
	return slots
}

// BuildItinerary deterministically expands a saved trip plan into a
// day-by-day schedule. Selected places are distributed across days with
// wraparound so that short place lists repeat rather than leaving days
// empty; within a day, places land on consecutive slots starting at the
// daypart offset. Calling it twice on an unchanged plan yields identical
// output.
func BuildItinerary(plan types.TripPlan) types.Itinerary {
	numberOfDays := ComputeDays(plan.StartDate, plan.EndDate)
	slots := GenerateTimeSlots(plan.PreferredTime, slotsPerDay)
	offset := daypartOffsets[plan.PreferredTime]

	places := plan.SelectedPlaces
	perDay := 0
	if len(places) > 0 {
		perDay = int(math.Ceil(float64(len(places)) / float64(numberOfDays)))
	}

	start, startErr := time.Parse(types.DateLayout, plan.StartDate)

	days := make([]types.DayPlan, 0, numberOfDays)
	for i := 0; i < numberOfDays; i++ {
		day := types.DayPlan{
			Label:      fmt.Sprintf("Day %d", i+1),
			Activities: make([]types.Activity, 0, slotsPerDay),
		}
		if startErr == nil {
			day.Date = start.AddDate(0, 0, i).Format(types.DateLayout)
		}

		for slot := 0; slot < slotsPerDay; slot++ {
			var place *types.SelectedPlace
			if len(places) > 0 {
				// position of this slot in the fill order that starts at
				// the daypart offset
				j := (slot - offset + slotsPerDay) % slotsPerDay
				p := places[(i*perDay+j)%len(places)]
				place = &p
			}
			day.Activities = append(day.Activities, buildActivity(slot, slots[slot], place, plan.PreferredTime))
		}

		days = append(days, day)
	}

	return types.Itinerary{PlanID: plan.ID, Days: days}
}

// buildActivity applies the fixed slot semantics: slots 0, 1, and 3 carry
// places, slot 2 is the day's meal, slot 4 always closes the day.
func buildActivity(slot int, timeSlot string, place *types.SelectedPlace, preferred types.PreferredTime) types.Activity {
	a := types.Activity{TimeSlot: timeSlot}

	switch slot {
	case 0:
		if place != nil {
			a.Description = "Visit " + place.Name
			a.Notes = place.City
			a.Image = place.Image
		} else {
			a.Description = "Breakfast / Travel"
		}
	case 1:
		if place != nil {
			a.Description = "Explore " + place.Name
			a.Notes = place.City
			a.Image = place.Image
		} else {
			a.Description = "Explore the area"
		}
	case 2:
		if preferred == types.PreferredTimeEvening {
			a.Description = "Dinner"
		} else {
			a.Description = "Lunch"
		}
	case 3:
		if place != nil {
			a.Description = "Continue at " + place.Name
			a.Notes = place.City
		} else {
			a.Description = "Free time"
		}
	case 4:
		a.Description = "Return to Hotel / Rest"
	}

	return a
}
