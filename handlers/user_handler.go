package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/travelmate-app/travelmate-backend/errors"
	"github.com/travelmate-app/travelmate-backend/internal/store"
	"github.com/travelmate-app/travelmate-backend/logger"
	"github.com/travelmate-app/travelmate-backend/middleware"
	"github.com/travelmate-app/travelmate-backend/types"
)

type UserHandler struct {
	users       store.UserStore
	preferences store.PreferenceStore
}

func NewUserHandler(users store.UserStore, preferences store.PreferenceStore) *UserHandler {
	return &UserHandler{
		users:       users,
		preferences: preferences,
	}
}

// GetMeHandler godoc
// @Summary Get the caller's profile
// @Description Returns the application profile for the authenticated user, creating it on first contact from the token claims.
// @Tags users
// @Produce json
// @Success 200 {object} types.UserProfile "Profile"
// @Failure 401 {object} docs.ErrorResponse "Unauthorized - User not logged in"
// @Router /users/me [get]
// @Security BearerAuth
func (h *UserHandler) GetMeHandler(c *gin.Context) {
	log := logger.GetLogger()
	userID := c.GetString(middleware.ContextKeyUserID)

	profile, err := h.users.GetByID(c.Request.Context(), userID)
	if err == nil {
		c.JSON(http.StatusOK, profile)
		return
	}
	if !errors.Is(err, store.ErrNotFound) {
		_ = c.Error(apperrors.NewDatabaseError(err))
		return
	}

	// First contact: mirror the auth subject into an app profile.
	seed := types.UserProfile{
		ID:    userID,
		Email: c.GetString(middleware.ContextKeyUserEmail),
		Role:  types.UserRoleTraveler,
	}
	if err := h.users.Upsert(c.Request.Context(), seed); err != nil {
		_ = c.Error(apperrors.NewDatabaseError(err))
		return
	}

	profile, err = h.users.GetByID(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(apperrors.NewDatabaseError(err))
		return
	}

	log.Infow("User profile created", "userID", userID)
	c.JSON(http.StatusOK, profile)
}

// UpdateMeHandler godoc
// @Summary Update the caller's profile
// @Description Updates the self-editable fields: display name and preference categories.
// @Tags users
// @Accept json
// @Produce json
// @Param request body types.UserProfileUpdate true "Fields to update"
// @Success 200 {object} types.UserProfile "Updated profile"
// @Failure 400 {object} docs.ErrorResponse "Bad request - Invalid payload"
// @Failure 401 {object} docs.ErrorResponse "Unauthorized - User not logged in"
// @Router /users/me [put]
// @Security BearerAuth
func (h *UserHandler) UpdateMeHandler(c *gin.Context) {
	log := logger.GetLogger()
	userID := c.GetString(middleware.ContextKeyUserID)

	var update types.UserProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		log.Errorw("Invalid profile update payload", "error", err)
		_ = c.Error(apperrors.ValidationFailed("Invalid request body", err.Error()))
		return
	}

	profile, err := h.users.UpdateProfile(c.Request.Context(), userID, update)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			_ = c.Error(apperrors.NotFound("User", userID))
			return
		}
		_ = c.Error(apperrors.NewDatabaseError(err))
		return
	}

	c.JSON(http.StatusOK, profile)
}

// ListPreferenceOptionsHandler godoc
// @Summary List the preference categories users can opt into
// @Tags preferences
// @Produce json
// @Success 200 {array} types.PreferenceOption "Available preference categories"
// @Router /preferences [get]
// @Security BearerAuth
func (h *UserHandler) ListPreferenceOptionsHandler(c *gin.Context) {
	options, err := h.preferences.List(c.Request.Context())
	if err != nil {
		_ = c.Error(apperrors.NewDatabaseError(err))
		return
	}
	if options == nil {
		options = []types.PreferenceOption{}
	}

	c.JSON(http.StatusOK, options)
}
