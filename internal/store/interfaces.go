// Package store defines the persistence interfaces the application is
// written against. Concrete implementations live in store/postgres.
package store

import (
	"context"

	"github.com/travelmate-app/travelmate-backend/types"
)

// DestinationStore manages the curated destination catalog.
type DestinationStore interface {
	Create(ctx context.Context, d types.Destination) (string, error)
	GetByID(ctx context.Context, id string) (*types.Destination, error)
	List(ctx context.Context, filter types.DestinationFilter) ([]types.Destination, error)
	Update(ctx context.Context, id string, update types.DestinationUpdate) (*types.Destination, error)
	Delete(ctx context.Context, id string) error
}

// TripPlanStore persists trip plans. Plans are written whole and replaced
// whole; there are no partial updates.
type TripPlanStore interface {
	Create(ctx context.Context, plan types.TripPlan) (string, error)
	GetByID(ctx context.Context, id string) (*types.TripPlan, error)
	ListByUser(ctx context.Context, userID string) ([]types.TripPlan, error)
	Replace(ctx context.Context, id string, plan types.TripPlan) (*types.TripPlan, error)
	SoftDelete(ctx context.Context, id string) error
}

// WishlistStore manages user destination bookmarks.
type WishlistStore interface {
	Add(ctx context.Context, userID, destinationID string) error
	Remove(ctx context.Context, userID, destinationID string) error
	ListByUser(ctx context.Context, userID string) ([]types.WishlistItem, error)
}

// UserStore persists application-side user profiles mirroring the auth
// provider's subjects.
type UserStore interface {
	Upsert(ctx context.Context, profile types.UserProfile) error
	GetByID(ctx context.Context, id string) (*types.UserProfile, error)
	List(ctx context.Context) ([]types.UserProfile, error)
	UpdateProfile(ctx context.Context, id string, update types.UserProfileUpdate) (*types.UserProfile, error)
	SetRole(ctx context.Context, id string, role types.UserRole) error
	Delete(ctx context.Context, id string) error
}

// PreferenceStore manages the admin-curated preference categories.
type PreferenceStore interface {
	List(ctx context.Context) ([]types.PreferenceOption, error)
	Create(ctx context.Context, option types.PreferenceOption) (string, error)
	Delete(ctx context.Context, id string) error
}
