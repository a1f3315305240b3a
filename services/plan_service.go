package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/travelmate-app/travelmate-backend/errors"
	"github.com/travelmate-app/travelmate-backend/internal/store"
	"github.com/travelmate-app/travelmate-backend/logger"
	"github.com/travelmate-app/travelmate-backend/planner"
	"github.com/travelmate-app/travelmate-backend/types"
)

// PlanService orchestrates trip planning: it runs the pure planner over the
// current catalog, persists the resulting plan whole, and enforces ownership
// on every mutation.
type PlanService struct {
	plans        store.TripPlanStore
	destinations store.DestinationStore
	emailSvc     *EmailService
	log          *zap.SugaredLogger
}

func NewPlanService(plans store.TripPlanStore, destinations store.DestinationStore, emailSvc *EmailService) *PlanService {
	return &PlanService{
		plans:        plans,
		destinations: destinations,
		emailSvc:     emailSvc,
		log:          logger.GetLogger(),
	}
}

// PlanPreview is the normalized form plus its advisories, computed without
// persisting anything. The client calls this on every relevant keystroke.
type PlanPreview struct {
	Form             types.TripPlanForm      `json:"form"`
	Breakdown        types.BudgetBreakdown   `json:"budgetBreakdown"`
	PerPaxBreakdown  types.BudgetBreakdown   `json:"perPaxBreakdown"`
	Suggestion       types.Suggestion        `json:"suggestion"`
	NumberOfDays     int                     `json:"numberOfDays"`
	Matches          []types.Destination     `json:"matches"`
	SelectionWarning *types.SelectionWarning `json:"selectionWarning,omitempty"`
}

// Preview normalizes the form and matches affordable destinations. It never
// fails on user input; only catalog access can error.
func (s *PlanService) Preview(ctx context.Context, form types.TripPlanForm, selected []types.SelectedPlace) (*PlanPreview, error) {
	catalog, err := s.matchCatalog(ctx, form.Destination)
	if err != nil {
		return nil, err
	}

	result := planner.Recompute(form, catalog)
	affordable := planner.FilterAffordable(catalog, result.Form.BudgetPerPax)

	preview := &PlanPreview{
		Form:            result.Form,
		Breakdown:       result.Breakdown,
		PerPaxBreakdown: result.PerPaxBreakdown,
		Suggestion:      result.Suggestion,
		NumberOfDays:    planner.ComputeDays(result.Form.StartDate, result.Form.EndDate),
		Matches:         affordable,
	}

	if len(selected) > 0 {
		warning := planner.ComputeSelectionWarning(selected, result.Breakdown.Activities, result.Form.PreferredTime)
		preview.SelectionWarning = &warning
	}

	return preview, nil
}

// Create normalizes the form one final time and saves the plan whole.
func (s *PlanService) Create(ctx context.Context, userID string, form types.TripPlanForm, selected []types.SelectedPlace) (*types.TripPlan, error) {
	plan, err := s.buildPlan(ctx, userID, form, selected)
	if err != nil {
		return nil, err
	}

	id, err := s.plans.Create(ctx, *plan)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}

	s.log.Infow("Trip plan created", "planID", id, "userID", userID, "destination", plan.Destination)
	return s.getOwned(ctx, id, userID)
}

// Get returns a plan after verifying the caller owns it.
func (s *PlanService) Get(ctx context.Context, planID, userID string) (*types.TripPlan, error) {
	return s.getOwned(ctx, planID, userID)
}

// ListForUser returns the caller's plans, most recently updated first.
func (s *PlanService) ListForUser(ctx context.Context, userID string) ([]types.TripPlan, error) {
	plans, err := s.plans.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return plans, nil
}

// Replace re-runs normalization over the edited form and overwrites the plan.
func (s *PlanService) Replace(ctx context.Context, planID, userID string, form types.TripPlanForm, selected []types.SelectedPlace) (*types.TripPlan, error) {
	if _, err := s.getOwned(ctx, planID, userID); err != nil {
		return nil, err
	}

	plan, err := s.buildPlan(ctx, userID, form, selected)
	if err != nil {
		return nil, err
	}

	updated, err := s.plans.Replace(ctx, planID, *plan)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.PlanNotFound(planID)
		}
		return nil, apperrors.NewDatabaseError(err)
	}

	return updated, nil
}

// Delete soft-deletes a plan the caller owns.
func (s *PlanService) Delete(ctx context.Context, planID, userID string) error {
	if _, err := s.getOwned(ctx, planID, userID); err != nil {
		return err
	}

	if err := s.plans.SoftDelete(ctx, planID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperrors.PlanNotFound(planID)
		}
		return apperrors.NewDatabaseError(err)
	}

	s.log.Infow("Trip plan deleted", "planID", planID, "userID", userID)
	return nil
}

// Itinerary derives the day-by-day schedule from a saved plan. The result is
// deterministic, so repeated calls for an unchanged plan are identical.
func (s *PlanService) Itinerary(ctx context.Context, planID, userID string) (*types.Itinerary, error) {
	plan, err := s.getOwned(ctx, planID, userID)
	if err != nil {
		return nil, err
	}

	itinerary := planner.BuildItinerary(*plan)
	return &itinerary, nil
}

// SharedItinerary resolves an itinerary through a validated share link. The
// link token already authorizes access, so no ownership check applies.
func (s *PlanService) SharedItinerary(ctx context.Context, planID string) (*types.Itinerary, error) {
	plan, err := s.plans.GetByID(ctx, planID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.PlanNotFound(planID)
		}
		return nil, apperrors.NewDatabaseError(err)
	}

	itinerary := planner.BuildItinerary(*plan)
	return &itinerary, nil
}

// Share renders the itinerary and emails it to the recipient.
func (s *PlanService) Share(ctx context.Context, planID, userID, recipient, senderName string) error {
	plan, err := s.getOwned(ctx, planID, userID)
	if err != nil {
		return err
	}

	itinerary := planner.BuildItinerary(*plan)

	data := types.EmailData{
		To:      recipient,
		Subject: fmt.Sprintf("Trip itinerary: %s", plan.Destination),
		TemplateData: map[string]interface{}{
			"SenderName":  senderName,
			"Destination": plan.Destination,
			"Days":        itinerary.Days,
		},
	}

	if err := s.emailSvc.SendItineraryShareEmail(ctx, data); err != nil {
		return apperrors.ExternalService("email", err)
	}

	return nil
}

// validateSubmission enforces the hard preconditions for saving a plan.
// Preview stays permissive so that normalization can run on half-filled
// forms; only create and replace pass through this gate.
func validateSubmission(form types.TripPlanForm, selected []types.SelectedPlace) error {
	if form.Pax < 1 {
		return apperrors.ValidationFailed("Invalid pax", "pax must be at least 1")
	}
	if form.Budget <= 0 && form.BudgetPerPax <= 0 {
		return apperrors.ValidationFailed("Invalid budget", "a positive total or per-pax budget is required")
	}
	if form.LastEdited != "" && !form.LastEdited.IsValid() {
		return apperrors.ValidationFailed("Invalid budget authority",
			fmt.Sprintf("unknown lastEdited value %q", form.LastEdited))
	}
	if !form.PreferredTime.IsValid() {
		return apperrors.ValidationFailed("Invalid preferred time",
			fmt.Sprintf("unknown preferredTime value %q", form.PreferredTime))
	}
	if sum := form.Allocation.Sum(); sum > 100 {
		return apperrors.ValidationFailed("Invalid budget allocation",
			fmt.Sprintf("allocation percentages sum to %.0f, maximum is 100", sum))
	}

	start, err := time.Parse(types.DateLayout, form.StartDate)
	if err != nil {
		return apperrors.ValidationFailed("Invalid start date", "startDate must be a YYYY-MM-DD date")
	}
	end, err := time.Parse(types.DateLayout, form.EndDate)
	if err != nil {
		return apperrors.ValidationFailed("Invalid end date", "endDate must be a YYYY-MM-DD date")
	}
	if end.Before(start) {
		return apperrors.ValidationFailed("Invalid travel dates", "endDate must not be before startDate")
	}

	if len(selected) == 0 {
		return apperrors.ValidationFailed("No places selected", "select at least one place before saving")
	}

	return nil
}

// buildPlan runs the full planner pipeline over a submitted form.
func (s *PlanService) buildPlan(ctx context.Context, userID string, form types.TripPlanForm, selected []types.SelectedPlace) (*types.TripPlan, error) {
	if err := validateSubmission(form, selected); err != nil {
		return nil, err
	}

	catalog, err := s.matchCatalog(ctx, form.Destination)
	if err != nil {
		return nil, err
	}

	result := planner.Recompute(form, catalog)

	plan := &types.TripPlan{
		UserID:          userID,
		Destination:     result.Form.Destination,
		Pax:             result.Form.Pax,
		Budget:          result.Form.Budget,
		BudgetPerPax:    result.Form.BudgetPerPax,
		Allocation:      result.Form.Allocation,
		Breakdown:       result.Breakdown,
		PerPaxBreakdown: result.PerPaxBreakdown,
		Suggestion:      result.Suggestion,
		SelectedPlaces:  selected,
		StartDate:       result.Form.StartDate,
		EndDate:         result.Form.EndDate,
		NumberOfDays:    planner.ComputeDays(result.Form.StartDate, result.Form.EndDate),
		PreferredTime:   result.Form.PreferredTime,
	}

	if len(selected) > 0 {
		warning := planner.ComputeSelectionWarning(selected, result.Breakdown.Activities, result.Form.PreferredTime)
		plan.SelectionWarning = &warning
	}

	return plan, nil
}

// matchCatalog loads catalog entries relevant to the typed destination.
func (s *PlanService) matchCatalog(ctx context.Context, destination string) ([]types.Destination, error) {
	catalog, err := s.destinations.List(ctx, types.DestinationFilter{})
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return planner.MatchWithFallback(catalog, destination), nil
}

func (s *PlanService) getOwned(ctx context.Context, planID, userID string) (*types.TripPlan, error) {
	plan, err := s.plans.GetByID(ctx, planID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.PlanNotFound(planID)
		}
		return nil, apperrors.NewDatabaseError(err)
	}
	if plan.UserID != userID {
		return nil, apperrors.PlanAccessDenied(userID, planID)
	}
	return plan, nil
}
