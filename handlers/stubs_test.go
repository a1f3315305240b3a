package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/travelmate-app/travelmate-backend/internal/store"
	"github.com/travelmate-app/travelmate-backend/logger"
	"github.com/travelmate-app/travelmate-backend/middleware"
	"github.com/travelmate-app/travelmate-backend/types"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.IsTest = true
}

// testRouter installs the error handler and pins the authenticated user, the
// way the real middleware chain would.
func testRouter(userID string) *gin.Engine {
	router := gin.New()
	router.Use(middleware.ErrorHandler())
	router.Use(func(c *gin.Context) {
		if userID != "" {
			c.Set(middleware.ContextKeyUserID, userID)
			c.Set(middleware.ContextKeyUserEmail, userID+"@example.com")
		}
	})
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// memPlanStore is an in-memory TripPlanStore.
type memPlanStore struct {
	plans  map[string]types.TripPlan
	nextID int
}

func newMemPlanStore() *memPlanStore {
	return &memPlanStore{plans: map[string]types.TripPlan{}}
}

func (f *memPlanStore) Create(_ context.Context, plan types.TripPlan) (string, error) {
	f.nextID++
	plan.ID = fmt.Sprintf("plan-%d", f.nextID)
	f.plans[plan.ID] = plan
	return plan.ID, nil
}

func (f *memPlanStore) GetByID(_ context.Context, id string) (*types.TripPlan, error) {
	plan, ok := f.plans[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &plan, nil
}

func (f *memPlanStore) ListByUser(_ context.Context, userID string) ([]types.TripPlan, error) {
	var out []types.TripPlan
	for _, p := range f.plans {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *memPlanStore) Replace(_ context.Context, id string, plan types.TripPlan) (*types.TripPlan, error) {
	existing, ok := f.plans[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	plan.ID = id
	plan.UserID = existing.UserID
	f.plans[id] = plan
	return &plan, nil
}

func (f *memPlanStore) SoftDelete(_ context.Context, id string) error {
	if _, ok := f.plans[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.plans, id)
	return nil
}

// memDestinationStore is an in-memory DestinationStore.
type memDestinationStore struct {
	catalog map[string]types.Destination
	nextID  int
}

func newMemDestinationStore(seed ...types.Destination) *memDestinationStore {
	s := &memDestinationStore{catalog: map[string]types.Destination{}}
	for _, d := range seed {
		s.catalog[d.ID] = d
	}
	return s
}

func (f *memDestinationStore) Create(_ context.Context, d types.Destination) (string, error) {
	f.nextID++
	d.ID = fmt.Sprintf("dest-%d", f.nextID)
	f.catalog[d.ID] = d
	return d.ID, nil
}

func (f *memDestinationStore) GetByID(_ context.Context, id string) (*types.Destination, error) {
	d, ok := f.catalog[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &d, nil
}

func (f *memDestinationStore) List(_ context.Context, filter types.DestinationFilter) ([]types.Destination, error) {
	var out []types.Destination
	for _, d := range f.catalog {
		if filter.Region != "" && d.Region != filter.Region {
			continue
		}
		if filter.Category != "" && d.Category != filter.Category {
			continue
		}
		out = append(out, d)
	}
	return out, nil
}

func (f *memDestinationStore) Update(_ context.Context, id string, update types.DestinationUpdate) (*types.Destination, error) {
	d, ok := f.catalog[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	if update.Name != nil {
		d.Name = *update.Name
	}
	if update.Budget != nil {
		d.Budget = *update.Budget
	}
	if update.Images != nil {
		d.Images = *update.Images
	}
	f.catalog[id] = d
	return &d, nil
}

func (f *memDestinationStore) Delete(_ context.Context, id string) error {
	if _, ok := f.catalog[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.catalog, id)
	return nil
}

// memUserStore is an in-memory UserStore.
type memUserStore struct {
	profiles map[string]types.UserProfile
}

func newMemUserStore(seed ...types.UserProfile) *memUserStore {
	s := &memUserStore{profiles: map[string]types.UserProfile{}}
	for _, p := range seed {
		s.profiles[p.ID] = p
	}
	return s
}

func (f *memUserStore) Upsert(_ context.Context, profile types.UserProfile) error {
	existing, ok := f.profiles[profile.ID]
	if ok {
		existing.Email = profile.Email
		f.profiles[profile.ID] = existing
		return nil
	}
	if !profile.Role.IsValid() {
		profile.Role = types.UserRoleTraveler
	}
	if profile.Preferences == nil {
		profile.Preferences = []string{}
	}
	f.profiles[profile.ID] = profile
	return nil
}

func (f *memUserStore) GetByID(_ context.Context, id string) (*types.UserProfile, error) {
	p, ok := f.profiles[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &p, nil
}

func (f *memUserStore) List(_ context.Context) ([]types.UserProfile, error) {
	var out []types.UserProfile
	for _, p := range f.profiles {
		out = append(out, p)
	}
	return out, nil
}

func (f *memUserStore) UpdateProfile(_ context.Context, id string, update types.UserProfileUpdate) (*types.UserProfile, error) {
	p, ok := f.profiles[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	if update.DisplayName != nil {
		p.DisplayName = *update.DisplayName
	}
	if update.Preferences != nil {
		p.Preferences = *update.Preferences
	}
	f.profiles[id] = p
	return &p, nil
}

func (f *memUserStore) SetRole(_ context.Context, id string, role types.UserRole) error {
	p, ok := f.profiles[id]
	if !ok {
		return store.ErrNotFound
	}
	p.Role = role
	f.profiles[id] = p
	return nil
}

func (f *memUserStore) Delete(_ context.Context, id string) error {
	if _, ok := f.profiles[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.profiles, id)
	return nil
}

// memWishlistStore is an in-memory WishlistStore.
type memWishlistStore struct {
	items map[string]map[string]bool
}

func newMemWishlistStore() *memWishlistStore {
	return &memWishlistStore{items: map[string]map[string]bool{}}
}

func (f *memWishlistStore) Add(_ context.Context, userID, destinationID string) error {
	if f.items[userID] == nil {
		f.items[userID] = map[string]bool{}
	}
	f.items[userID][destinationID] = true
	return nil
}

func (f *memWishlistStore) Remove(_ context.Context, userID, destinationID string) error {
	if !f.items[userID][destinationID] {
		return store.ErrNotFound
	}
	delete(f.items[userID], destinationID)
	return nil
}

func (f *memWishlistStore) ListByUser(_ context.Context, userID string) ([]types.WishlistItem, error) {
	var out []types.WishlistItem
	for destinationID := range f.items[userID] {
		out = append(out, types.WishlistItem{UserID: userID, DestinationID: destinationID})
	}
	return out, nil
}

// memPreferenceStore is an in-memory PreferenceStore.
type memPreferenceStore struct {
	options map[string]types.PreferenceOption
	nextID  int
}

func newMemPreferenceStore() *memPreferenceStore {
	return &memPreferenceStore{options: map[string]types.PreferenceOption{}}
}

func (f *memPreferenceStore) List(_ context.Context) ([]types.PreferenceOption, error) {
	var out []types.PreferenceOption
	for _, o := range f.options {
		out = append(out, o)
	}
	return out, nil
}

func (f *memPreferenceStore) Create(_ context.Context, option types.PreferenceOption) (string, error) {
	for _, o := range f.options {
		if o.Key == option.Key {
			return "", store.ErrDuplicate
		}
	}
	f.nextID++
	option.ID = fmt.Sprintf("pref-%d", f.nextID)
	f.options[option.ID] = option
	return option.ID, nil
}

func (f *memPreferenceStore) Delete(_ context.Context, id string) error {
	if _, ok := f.options[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.options, id)
	return nil
}
