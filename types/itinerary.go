package types

// Itinerary is the derived day-by-day schedule rendered from a saved
// TripPlan. It is never persisted; regenerating from the same plan must
// produce identical output.
type Itinerary struct {
	PlanID string    `json:"planId"`
	Days   []DayPlan `json:"days"`
}

// DayPlan is one day's ordered schedule of time-slotted activities.
type DayPlan struct {
	Label      string     `json:"label"`
	Date       string     `json:"date"`
	Activities []Activity `json:"activities"`
}

// Activity is a single scheduled entry within a day.
type Activity struct {
	TimeSlot    string `json:"timeSlot"`
	Description string `json:"description"`
	Notes       string `json:"notes,omitempty"`
	Image       string `json:"image,omitempty"`
}
