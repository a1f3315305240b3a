package types

import "time"

// DateLayout is the calendar-date format used throughout trip planning.
// Dates are kept as plain strings so that half-filled forms and legacy
// records never fail to deserialize; the planner parses them permissively.
const DateLayout = "2006-01-02"

// PreferredTime is the daypart a traveler wants activities biased toward.
type PreferredTime string

const (
	PreferredTimeMorning   PreferredTime = "morning"
	PreferredTimeAfternoon PreferredTime = "afternoon"
	PreferredTimeEvening   PreferredTime = "evening"
	PreferredTimeFlexible  PreferredTime = "flexible"
)

// IsValid checks if the value is a known daypart.
func (p PreferredTime) IsValid() bool {
	switch p {
	case PreferredTimeMorning, PreferredTimeAfternoon, PreferredTimeEvening, PreferredTimeFlexible:
		return true
	default:
		return false
	}
}

func (p PreferredTime) String() string {
	return string(p)
}

// BudgetAuthority tags which of the two budget figures the user edited last
// and therefore which one is authoritative during normalization.
type BudgetAuthority string

const (
	BudgetAuthorityPerPax BudgetAuthority = "perPax"
	BudgetAuthorityTotal  BudgetAuthority = "total"
)

// IsValid checks if the value is a known authority tag.
func (a BudgetAuthority) IsValid() bool {
	return a == BudgetAuthorityPerPax || a == BudgetAuthorityTotal
}

// BudgetAllocation is a percentage split of the total budget across the four
// spending categories. Values are percentages in [0, 100].
type BudgetAllocation struct {
	Accommodation  float64 `json:"accommodation"`
	Activities     float64 `json:"activities"`
	Food           float64 `json:"food"`
	Transportation float64 `json:"transportation"`
}

// Sum returns the total of the four percentages.
func (a BudgetAllocation) Sum() float64 {
	return a.Accommodation + a.Activities + a.Food + a.Transportation
}

// DefaultBudgetAllocation is the split applied when the user has not
// customized percentages.
func DefaultBudgetAllocation() BudgetAllocation {
	return BudgetAllocation{
		Accommodation:  40,
		Food:           30,
		Transportation: 20,
		Activities:     10,
	}
}

// BudgetBreakdown is an absolute-currency view of a BudgetAllocation.
type BudgetBreakdown struct {
	Accommodation  float64 `json:"accommodation"`
	Activities     float64 `json:"activities"`
	Food           float64 `json:"food"`
	Transportation float64 `json:"transportation"`
}

// Suggestion is the advisory budget guidance recomputed on every relevant
// form change. It is displayed to the user and never blocks submission.
type Suggestion struct {
	NeedsIncrease        bool    `json:"needsIncrease"`
	ExpectedTotalBudget  float64 `json:"expectedTotalBudget"`
	ExpectedBudgetPerPax float64 `json:"expectedBudgetPerPax"`
	MinRequiredTotal     float64 `json:"minRequiredTotal"`
}

// SelectionWarning is an advisory raised when the estimated cost of the
// selected places exceeds the activities allocation. Like Suggestion, it is
// display-only.
type SelectionWarning struct {
	Exceeded            bool    `json:"exceeded"`
	EstimatedCost       float64 `json:"estimatedCost"`
	ActivitiesAllocated float64 `json:"activitiesAllocated"`
}

// TripPlanForm is the ephemeral planning form as edited in the client.
// Numeric fields tolerate zero values; dates are plain strings that may be
// empty mid-edit. Normalization never rejects a form, it only derives.
type TripPlanForm struct {
	Destination   string           `json:"destination"`
	Pax           int              `json:"pax"`
	BudgetPerPax  float64          `json:"budgetPerPax"`
	Budget        float64          `json:"budget"`
	LastEdited    BudgetAuthority  `json:"lastEdited"`
	Allocation    BudgetAllocation `json:"budgetAllocation"`
	StartDate     string           `json:"startDate"`
	EndDate       string           `json:"endDate"`
	PreferredTime PreferredTime    `json:"preferredTime"`
}

// SelectedPlace is a catalog destination snapshotted into a plan at selection
// time. Selection identity is the stable DestinationID, never the display
// name, so duplicate names across cities cannot collide.
type SelectedPlace struct {
	DestinationID string  `json:"destinationId"`
	Name          string  `json:"name"`
	City          string  `json:"city"`
	Category      string  `json:"category"`
	Budget        string  `json:"budget"`
	Rating        float64 `json:"rating"`
	Image         string  `json:"image,omitempty"`
}

// SelectedPlaceFromDestination snapshots a catalog entry for inclusion in a plan.
func SelectedPlaceFromDestination(d Destination) SelectedPlace {
	return SelectedPlace{
		DestinationID: d.ID,
		Name:          d.Name,
		City:          d.City,
		Category:      d.Category,
		Budget:        d.Budget,
		Rating:        d.Rating,
		Image:         d.PrimaryImage(),
	}
}

// TripPlan is the persisted unit of trip planning. It is saved whole on
// create, replaced whole on edit-and-resubmit, and deleted explicitly by its
// owner. There are no partial updates.
type TripPlan struct {
	ID               string            `json:"id"`
	UserID           string            `json:"userId"`
	Destination      string            `json:"destination"`
	Pax              int               `json:"pax"`
	Budget           float64           `json:"budget"`
	BudgetPerPax     float64           `json:"budgetPerPax"`
	Allocation       BudgetAllocation  `json:"budgetAllocation"`
	Breakdown        BudgetBreakdown   `json:"budgetBreakdown"`
	PerPaxBreakdown  BudgetBreakdown   `json:"perPaxBreakdown"`
	Suggestion       Suggestion        `json:"suggestion"`
	SelectionWarning *SelectionWarning `json:"selectionWarning,omitempty"`
	SelectedPlaces   []SelectedPlace   `json:"selectedPlaces"`
	StartDate        string            `json:"startDate"`
	EndDate          string            `json:"endDate"`
	NumberOfDays     int               `json:"numberOfDays"`
	PreferredTime    PreferredTime     `json:"preferredTime"`
	CreatedAt        time.Time         `json:"createdAt"`
	UpdatedAt        time.Time         `json:"updatedAt"`
	DeletedAt        *time.Time        `json:"-"`
}
