package types

import "time"

// UserRole distinguishes regular travelers from dashboard administrators.
type UserRole string

const (
	UserRoleTraveler UserRole = "TRAVELER"
	UserRoleAdmin    UserRole = "ADMIN"
)

// IsValid checks if the role is known.
func (r UserRole) IsValid() bool {
	return r == UserRoleTraveler || r == UserRoleAdmin
}

// UserProfile is the application-side record of an authenticated user.
// Authentication itself is delegated to Supabase; this row mirrors the
// auth subject and carries app-owned fields (role, preferences).
type UserProfile struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName"`
	Role        UserRole  `json:"role"`
	// Preferences are the category keys the user opted into; they drive
	// destination recommendations.
	Preferences []string  `json:"preferences"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// UserProfileUpdate carries the self-editable profile fields.
type UserProfileUpdate struct {
	DisplayName *string   `json:"displayName,omitempty"`
	Preferences *[]string `json:"preferences,omitempty"`
}

// PreferenceOption is an admin-curated preference category users can opt
// into (e.g. "beach", "heritage", "food").
type PreferenceOption struct {
	ID        string    `json:"id"`
	Key       string    `json:"key"`
	Label     string    `json:"label"`
	CreatedAt time.Time `json:"createdAt"`
}
