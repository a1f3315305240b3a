package services

import (
	"context"
	"errors"
	"sort"
	"strings"

	"go.uber.org/zap"

	apperrors "github.com/travelmate-app/travelmate-backend/errors"
	"github.com/travelmate-app/travelmate-backend/internal/store"
	"github.com/travelmate-app/travelmate-backend/logger"
	"github.com/travelmate-app/travelmate-backend/planner"
	"github.com/travelmate-app/travelmate-backend/types"
)

// RecommendationService suggests destinations from the catalog based on the
// user's opted-in preference categories and an optional budget ceiling.
type RecommendationService struct {
	users        store.UserStore
	destinations store.DestinationStore
	log          *zap.SugaredLogger
}

func NewRecommendationService(users store.UserStore, destinations store.DestinationStore) *RecommendationService {
	return &RecommendationService{
		users:        users,
		destinations: destinations,
		log:          logger.GetLogger(),
	}
}

// ForUser returns catalog entries whose category matches one of the user's
// preferences, highest rated first. A positive budgetPerPax drops entries the
// user cannot afford; zero means no ceiling.
func (s *RecommendationService) ForUser(ctx context.Context, userID string, budgetPerPax float64) ([]types.Destination, error) {
	profile, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.NotFound("User", userID)
		}
		return nil, apperrors.NewDatabaseError(err)
	}

	catalog, err := s.destinations.List(ctx, types.DestinationFilter{})
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}

	matched := filterByPreferences(catalog, profile.Preferences)
	if budgetPerPax > 0 {
		matched = planner.FilterAffordable(matched, budgetPerPax)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Rating > matched[j].Rating
	})

	s.log.Debugw("Recommendations computed",
		"userID", userID,
		"preferences", profile.Preferences,
		"results", len(matched))

	return matched, nil
}

// filterByPreferences keeps entries whose category matches any preference
// key. With no preferences set, the whole catalog qualifies.
func filterByPreferences(catalog []types.Destination, preferences []string) []types.Destination {
	if len(preferences) == 0 {
		return catalog
	}

	wanted := make(map[string]struct{}, len(preferences))
	for _, p := range preferences {
		wanted[strings.ToLower(strings.TrimSpace(p))] = struct{}{}
	}

	var matched []types.Destination
	for _, d := range catalog {
		if _, ok := wanted[strings.ToLower(d.Category)]; ok {
			matched = append(matched, d)
		}
	}
	return matched
}
