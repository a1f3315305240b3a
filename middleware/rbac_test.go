package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/travelmate-app/travelmate-backend/internal/store"
	"github.com/travelmate-app/travelmate-backend/types"
)

type stubUserStore struct {
	profiles map[string]types.UserProfile
}

func (s *stubUserStore) Upsert(context.Context, types.UserProfile) error { return nil }

func (s *stubUserStore) GetByID(_ context.Context, id string) (*types.UserProfile, error) {
	p, ok := s.profiles[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &p, nil
}

func (s *stubUserStore) List(context.Context) ([]types.UserProfile, error) { return nil, nil }

func (s *stubUserStore) UpdateProfile(context.Context, string, types.UserProfileUpdate) (*types.UserProfile, error) {
	return nil, store.ErrNotFound
}

func (s *stubUserStore) SetRole(context.Context, string, types.UserRole) error { return nil }
func (s *stubUserStore) Delete(context.Context, string) error                  { return nil }

func rbacTestRouter(users store.UserStore, userID string) *gin.Engine {
	router := gin.New()
	router.Use(func(c *gin.Context) {
		if userID != "" {
			c.Set(ContextKeyUserID, userID)
		}
	})
	router.Use(AdminRequired(users))
	router.GET("/admin", func(c *gin.Context) {
		role, _ := GetUserRole(c)
		c.JSON(http.StatusOK, gin.H{"role": role})
	})
	return router
}

func TestAdminRequired(t *testing.T) {
	users := &stubUserStore{profiles: map[string]types.UserProfile{
		"admin-1":    {ID: "admin-1", Role: types.UserRoleAdmin},
		"traveler-1": {ID: "traveler-1", Role: types.UserRoleTraveler},
	}}

	t.Run("admin passes", func(t *testing.T) {
		w := httptest.NewRecorder()
		rbacTestRouter(users, "admin-1").ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), string(types.UserRoleAdmin))
	})

	t.Run("traveler rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		rbacTestRouter(users, "traveler-1").ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("unknown profile rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		rbacTestRouter(users, "ghost").ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("unauthenticated rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		rbacTestRouter(users, "").ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
