package integration

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/travelmate-app/travelmate-backend/db"
	"github.com/travelmate-app/travelmate-backend/internal/store"
	"github.com/travelmate-app/travelmate-backend/internal/store/postgres"
	"github.com/travelmate-app/travelmate-backend/logger"
	"github.com/travelmate-app/travelmate-backend/types"
)

const testUserID = "a1b2c3d4-e5f6-7890-abcd-ef1234567890"

func init() {
	logger.IsTest = true
}

// setupTestDatabase starts a throwaway Postgres, runs the embedded migrations,
// and returns a connected pool.
func setupTestDatabase(t *testing.T) (*postgres.DestinationStore, *postgres.TripPlanStore, *postgres.WishlistStore, *postgres.UserStore) {
	if testing.Short() || os.Getenv("SKIP_INTEGRATION") != "" {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()

	container, err := pgcontainer.Run(ctx, "postgres:16-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("test"),
		pgcontainer.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	})

	connURL, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	require.NoError(t, db.RunMigrations(connURL))

	pool, err := db.Connect(ctx, connURL)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	// user_profiles row for FK-free ownership semantics
	users := postgres.NewUserStore(pool)
	require.NoError(t, users.Upsert(ctx, types.UserProfile{
		ID:    testUserID,
		Email: "traveler@example.com",
	}))

	return postgres.NewDestinationStore(pool), postgres.NewTripPlanStore(pool), postgres.NewWishlistStore(pool), users
}

func TestStores_Integration(t *testing.T) {
	destinations, plans, wishlist, users := setupTestDatabase(t)
	ctx := context.Background()

	var destinationID string

	t.Run("destination lifecycle", func(t *testing.T) {
		id, err := destinations.Create(ctx, types.Destination{
			Name:     "Chocolate Hills",
			City:     "Carmen",
			Region:   "Bohol",
			Category: "Nature",
			Budget:   "₱3,000",
			Rating:   4.8,
			Images:   []string{"https://cdn.example.com/hills.jpg"},
		})
		require.NoError(t, err)
		require.NotEmpty(t, id)
		destinationID = id

		fetched, err := destinations.GetByID(ctx, id)
		require.NoError(t, err)
		require.Equal(t, "Chocolate Hills", fetched.Name)
		require.Equal(t, "₱3,000", fetched.Budget)

		listed, err := destinations.List(ctx, types.DestinationFilter{Region: "bohol"})
		require.NoError(t, err)
		require.Len(t, listed, 1)

		newBudget := "₱3,500"
		updated, err := destinations.Update(ctx, id, types.DestinationUpdate{Budget: &newBudget})
		require.NoError(t, err)
		require.Equal(t, "₱3,500", updated.Budget)
		require.Equal(t, "Chocolate Hills", updated.Name)
	})

	t.Run("plan round trip", func(t *testing.T) {
		warning := types.SelectionWarning{Exceeded: true, EstimatedCost: 6000, ActivitiesAllocated: 1000}
		plan := types.TripPlan{
			UserID:       testUserID,
			Destination:  "Bohol",
			Pax:          2,
			Budget:       10000,
			BudgetPerPax: 5000,
			Allocation:   types.DefaultBudgetAllocation(),
			Breakdown:    types.BudgetBreakdown{Accommodation: 4000, Food: 3000, Transportation: 2000, Activities: 1000},
			PerPaxBreakdown: types.BudgetBreakdown{
				Accommodation: 2000, Food: 1500, Transportation: 1000, Activities: 500,
			},
			Suggestion:       types.Suggestion{ExpectedTotalBudget: 6000, ExpectedBudgetPerPax: 3000},
			SelectionWarning: &warning,
			SelectedPlaces: []types.SelectedPlace{
				{DestinationID: destinationID, Name: "Chocolate Hills", City: "Carmen", Budget: "₱3,500"},
			},
			StartDate:     "2024-06-01",
			EndDate:       "2024-06-03",
			NumberOfDays:  3,
			PreferredTime: types.PreferredTimeMorning,
		}

		id, err := plans.Create(ctx, plan)
		require.NoError(t, err)

		fetched, err := plans.GetByID(ctx, id)
		require.NoError(t, err)
		require.Equal(t, plan.Breakdown, fetched.Breakdown)
		require.NotNil(t, fetched.SelectionWarning)
		require.True(t, fetched.SelectionWarning.Exceeded)
		require.Len(t, fetched.SelectedPlaces, 1)

		// whole-document replace
		plan.Pax = 4
		plan.Budget = 12000
		plan.BudgetPerPax = 3000
		plan.SelectionWarning = nil
		replaced, err := plans.Replace(ctx, id, plan)
		require.NoError(t, err)
		require.Equal(t, 4, replaced.Pax)
		require.Nil(t, replaced.SelectionWarning)

		byUser, err := plans.ListByUser(ctx, testUserID)
		require.NoError(t, err)
		require.Len(t, byUser, 1)

		require.NoError(t, plans.SoftDelete(ctx, id))
		_, err = plans.GetByID(ctx, id)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("wishlist", func(t *testing.T) {
		require.NoError(t, wishlist.Add(ctx, testUserID, destinationID))
		// idempotent
		require.NoError(t, wishlist.Add(ctx, testUserID, destinationID))

		items, err := wishlist.ListByUser(ctx, testUserID)
		require.NoError(t, err)
		require.Len(t, items, 1)
		require.NotNil(t, items[0].Destination)
		require.Equal(t, "Chocolate Hills", items[0].Destination.Name)

		require.NoError(t, wishlist.Remove(ctx, testUserID, destinationID))
		require.ErrorIs(t, wishlist.Remove(ctx, testUserID, destinationID), store.ErrNotFound)
	})

	t.Run("soft deleted destinations drop out of listings", func(t *testing.T) {
		require.NoError(t, destinations.Delete(ctx, destinationID))

		_, err := destinations.GetByID(ctx, destinationID)
		require.ErrorIs(t, err, store.ErrNotFound)

		listed, err := destinations.List(ctx, types.DestinationFilter{})
		require.NoError(t, err)
		require.Empty(t, listed)
	})

	t.Run("role changes persist", func(t *testing.T) {
		require.NoError(t, users.SetRole(ctx, testUserID, types.UserRoleAdmin))
		profile, err := users.GetByID(ctx, testUserID)
		require.NoError(t, err)
		require.Equal(t, types.UserRoleAdmin, profile.Role)
	})
}
