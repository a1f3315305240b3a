package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/travelmate-app/travelmate-backend/internal/store"
	"github.com/travelmate-app/travelmate-backend/types"
)

const planColumns = `id, user_id, destination, pax, budget, budget_per_pax,
		allocation, breakdown, per_pax_breakdown, suggestion, selection_warning, selected_places,
		start_date, end_date, number_of_days, preferred_time, created_at, updated_at`

// TripPlanStore implements store.TripPlanStore on PostgreSQL. The derived
// planner outputs are stored as JSONB so the saved plan is self-contained
// and can be rendered without recomputation.
type TripPlanStore struct {
	pool Pool
}

func NewTripPlanStore(pool Pool) *TripPlanStore {
	return &TripPlanStore{pool: pool}
}

func (s *TripPlanStore) Create(ctx context.Context, plan types.TripPlan) (string, error) {
	docs, err := marshalPlanDocs(plan)
	if err != nil {
		return "", err
	}

	query := `
		INSERT INTO trip_plans (
			user_id, destination, pax, budget, budget_per_pax,
			allocation, breakdown, per_pax_breakdown, suggestion, selection_warning, selected_places,
			start_date, end_date, number_of_days, preferred_time
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id`

	var id string
	err = s.pool.QueryRow(ctx, query,
		plan.UserID,
		plan.Destination,
		plan.Pax,
		plan.Budget,
		plan.BudgetPerPax,
		docs.allocation,
		docs.breakdown,
		docs.perPaxBreakdown,
		docs.suggestion,
		docs.selectionWarning,
		docs.selectedPlaces,
		plan.StartDate,
		plan.EndDate,
		plan.NumberOfDays,
		plan.PreferredTime,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("creating trip plan: %w", err)
	}

	return id, nil
}

func (s *TripPlanStore) GetByID(ctx context.Context, id string) (*types.TripPlan, error) {
	query := `
		SELECT ` + planColumns + `
		FROM trip_plans
		WHERE id = $1 AND deleted_at IS NULL`

	plan, err := scanPlan(s.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("fetching trip plan %s: %w", id, err)
	}

	return plan, nil
}

func (s *TripPlanStore) ListByUser(ctx context.Context, userID string) ([]types.TripPlan, error) {
	query := `
		SELECT ` + planColumns + `
		FROM trip_plans
		WHERE user_id = $1 AND deleted_at IS NULL
		ORDER BY updated_at DESC`

	rows, err := s.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing trip plans for user %s: %w", userID, err)
	}
	defer rows.Close()

	var plans []types.TripPlan
	for rows.Next() {
		plan, err := scanPlan(rows)
		if err != nil {
			return nil, err
		}
		plans = append(plans, *plan)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return plans, nil
}

// Replace overwrites every mutable field of a plan. Edit-and-resubmit is a
// whole-document replacement, never a patch.
func (s *TripPlanStore) Replace(ctx context.Context, id string, plan types.TripPlan) (*types.TripPlan, error) {
	docs, err := marshalPlanDocs(plan)
	if err != nil {
		return nil, err
	}

	query := `
		UPDATE trip_plans
		SET destination = $1,
			pax = $2,
			budget = $3,
			budget_per_pax = $4,
			allocation = $5,
			breakdown = $6,
			per_pax_breakdown = $7,
			suggestion = $8,
			selection_warning = $9,
			selected_places = $10,
			start_date = $11,
			end_date = $12,
			number_of_days = $13,
			preferred_time = $14,
			updated_at = NOW()
		WHERE id = $15 AND deleted_at IS NULL
		RETURNING ` + planColumns

	updated, err := scanPlan(s.pool.QueryRow(ctx, query,
		plan.Destination,
		plan.Pax,
		plan.Budget,
		plan.BudgetPerPax,
		docs.allocation,
		docs.breakdown,
		docs.perPaxBreakdown,
		docs.suggestion,
		docs.selectionWarning,
		docs.selectedPlaces,
		plan.StartDate,
		plan.EndDate,
		plan.NumberOfDays,
		plan.PreferredTime,
		id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("replacing trip plan %s: %w", id, err)
	}

	return updated, nil
}

func (s *TripPlanStore) SoftDelete(ctx context.Context, id string) error {
	query := `
		UPDATE trip_plans
		SET deleted_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL`

	tag, err := s.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting trip plan %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}

	return nil
}

type planDocs struct {
	allocation       []byte
	breakdown        []byte
	perPaxBreakdown  []byte
	suggestion       []byte
	selectionWarning []byte
	selectedPlaces   []byte
}

func marshalPlanDocs(plan types.TripPlan) (planDocs, error) {
	var (
		docs planDocs
		err  error
	)

	if docs.allocation, err = json.Marshal(plan.Allocation); err != nil {
		return docs, fmt.Errorf("marshaling allocation: %w", err)
	}
	if docs.breakdown, err = json.Marshal(plan.Breakdown); err != nil {
		return docs, fmt.Errorf("marshaling breakdown: %w", err)
	}
	if docs.perPaxBreakdown, err = json.Marshal(plan.PerPaxBreakdown); err != nil {
		return docs, fmt.Errorf("marshaling per-pax breakdown: %w", err)
	}
	if docs.suggestion, err = json.Marshal(plan.Suggestion); err != nil {
		return docs, fmt.Errorf("marshaling suggestion: %w", err)
	}
	if plan.SelectionWarning != nil {
		if docs.selectionWarning, err = json.Marshal(plan.SelectionWarning); err != nil {
			return docs, fmt.Errorf("marshaling selection warning: %w", err)
		}
	}

	places := plan.SelectedPlaces
	if places == nil {
		places = []types.SelectedPlace{}
	}
	if docs.selectedPlaces, err = json.Marshal(places); err != nil {
		return docs, fmt.Errorf("marshaling selected places: %w", err)
	}

	return docs, nil
}

func scanPlan(row pgx.Row) (*types.TripPlan, error) {
	var (
		plan             types.TripPlan
		allocation       []byte
		breakdown        []byte
		perPaxBreakdown  []byte
		suggestion       []byte
		selectionWarning []byte
		selectedPlaces   []byte
	)

	err := row.Scan(
		&plan.ID,
		&plan.UserID,
		&plan.Destination,
		&plan.Pax,
		&plan.Budget,
		&plan.BudgetPerPax,
		&allocation,
		&breakdown,
		&perPaxBreakdown,
		&suggestion,
		&selectionWarning,
		&selectedPlaces,
		&plan.StartDate,
		&plan.EndDate,
		&plan.NumberOfDays,
		&plan.PreferredTime,
		&plan.CreatedAt,
		&plan.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(allocation, &plan.Allocation); err != nil {
		return nil, fmt.Errorf("decoding allocation: %w", err)
	}
	if err := json.Unmarshal(breakdown, &plan.Breakdown); err != nil {
		return nil, fmt.Errorf("decoding breakdown: %w", err)
	}
	if err := json.Unmarshal(perPaxBreakdown, &plan.PerPaxBreakdown); err != nil {
		return nil, fmt.Errorf("decoding per-pax breakdown: %w", err)
	}
	if err := json.Unmarshal(suggestion, &plan.Suggestion); err != nil {
		return nil, fmt.Errorf("decoding suggestion: %w", err)
	}
	if len(selectionWarning) > 0 {
		plan.SelectionWarning = &types.SelectionWarning{}
		if err := json.Unmarshal(selectionWarning, plan.SelectionWarning); err != nil {
			return nil, fmt.Errorf("decoding selection warning: %w", err)
		}
	}
	if err := json.Unmarshal(selectedPlaces, &plan.SelectedPlaces); err != nil {
		return nil, fmt.Errorf("decoding selected places: %w", err)
	}

	return &plan, nil
}
