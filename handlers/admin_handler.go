package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/travelmate-app/travelmate-backend/errors"
	"github.com/travelmate-app/travelmate-backend/internal/store"
	"github.com/travelmate-app/travelmate-backend/logger"
	"github.com/travelmate-app/travelmate-backend/middleware"
	"github.com/travelmate-app/travelmate-backend/services"
	"github.com/travelmate-app/travelmate-backend/types"
)

// SetRoleRequest is the admin payload for changing a user's role.
type SetRoleRequest struct {
	Role types.UserRole `json:"role" binding:"required"`
}

// PreferenceCreateRequest is the admin payload for adding a preference category.
type PreferenceCreateRequest struct {
	Key   string `json:"key" binding:"required"`
	Label string `json:"label" binding:"required"`
}

// AdminHandler exposes the dashboard-only management endpoints.
type AdminHandler struct {
	users       store.UserStore
	preferences store.PreferenceStore
	supabase    *services.SupabaseService
}

func NewAdminHandler(users store.UserStore, preferences store.PreferenceStore, supabase *services.SupabaseService) *AdminHandler {
	return &AdminHandler{
		users:       users,
		preferences: preferences,
		supabase:    supabase,
	}
}

// ListUsersHandler godoc
// @Summary List all user profiles
// @Tags admin
// @Produce json
// @Success 200 {array} types.UserProfile "All profiles"
// @Failure 403 {object} docs.ErrorResponse "Forbidden - Admin role required"
// @Router /admin/users [get]
// @Security BearerAuth
func (h *AdminHandler) ListUsersHandler(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		_ = c.Error(apperrors.NewDatabaseError(err))
		return
	}
	if users == nil {
		users = []types.UserProfile{}
	}

	c.JSON(http.StatusOK, users)
}

// SetUserRoleHandler godoc
// @Summary Change a user's role
// @Description Promotes or demotes a user between TRAVELER and ADMIN. Admins cannot change their own role.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body SetRoleRequest true "New role"
// @Success 200 {object} docs.StatusResponse "Role updated"
// @Failure 400 {object} docs.ErrorResponse "Bad request - Unknown role or self-demotion"
// @Failure 403 {object} docs.ErrorResponse "Forbidden - Admin role required"
// @Failure 404 {object} docs.ErrorResponse "Not found - User does not exist"
// @Router /admin/users/{id}/role [put]
// @Security BearerAuth
func (h *AdminHandler) SetUserRoleHandler(c *gin.Context) {
	log := logger.GetLogger()
	targetID := c.Param("id")
	callerID := c.GetString(middleware.ContextKeyUserID)

	var req SetRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.ValidationFailed("Invalid request body", err.Error()))
		return
	}
	if !req.Role.IsValid() {
		_ = c.Error(apperrors.ValidationFailed("Unknown role", string(req.Role)))
		return
	}
	if targetID == callerID {
		_ = c.Error(apperrors.ValidationFailed("Cannot change own role", "ask another admin to change your role"))
		return
	}

	if err := h.users.SetRole(c.Request.Context(), targetID, req.Role); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			_ = c.Error(apperrors.NotFound("User", targetID))
			return
		}
		_ = c.Error(apperrors.NewDatabaseError(err))
		return
	}

	log.Infow("User role changed", "targetID", targetID, "role", req.Role, "changedBy", callerID)
	c.JSON(http.StatusOK, gin.H{"message": "Role updated"})
}

// DeleteUserHandler godoc
// @Summary Delete a user account
// @Description Removes the auth-provider record first so the subject cannot log back in, then deletes the app profile.
// @Tags admin
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} docs.StatusResponse "User deleted"
// @Failure 400 {object} docs.ErrorResponse "Bad request - Self-deletion"
// @Failure 403 {object} docs.ErrorResponse "Forbidden - Admin role required"
// @Failure 404 {object} docs.ErrorResponse "Not found - User does not exist"
// @Router /admin/users/{id} [delete]
// @Security BearerAuth
func (h *AdminHandler) DeleteUserHandler(c *gin.Context) {
	log := logger.GetLogger()
	targetID := c.Param("id")
	callerID := c.GetString(middleware.ContextKeyUserID)

	if targetID == callerID {
		_ = c.Error(apperrors.ValidationFailed("Cannot delete own account", "ask another admin to remove your account"))
		return
	}

	if _, err := h.users.GetByID(c.Request.Context(), targetID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			_ = c.Error(apperrors.NotFound("User", targetID))
			return
		}
		_ = c.Error(apperrors.NewDatabaseError(err))
		return
	}

	// Auth provider first; a failure here leaves the local profile intact so
	// the operation can be retried.
	if err := h.supabase.DeleteAuthUser(c.Request.Context(), targetID); err != nil {
		log.Errorw("Failed to delete auth user", "targetID", targetID, "error", err)
		_ = c.Error(apperrors.ExternalService("supabase", err))
		return
	}

	if err := h.users.Delete(c.Request.Context(), targetID); err != nil {
		_ = c.Error(apperrors.NewDatabaseError(err))
		return
	}

	log.Infow("User deleted", "targetID", targetID, "deletedBy", callerID)
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

// CreatePreferenceOptionHandler godoc
// @Summary Add a preference category
// @Tags admin
// @Accept json
// @Produce json
// @Param request body PreferenceCreateRequest true "Category key and label"
// @Success 201 {object} types.PreferenceOption "Created category"
// @Failure 400 {object} docs.ErrorResponse "Bad request - Invalid payload"
// @Failure 403 {object} docs.ErrorResponse "Forbidden - Admin role required"
// @Failure 409 {object} docs.ErrorResponse "Conflict - Category key already exists"
// @Router /admin/preferences [post]
// @Security BearerAuth
func (h *AdminHandler) CreatePreferenceOptionHandler(c *gin.Context) {
	var req PreferenceCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.ValidationFailed("Invalid request body", err.Error()))
		return
	}

	option := types.PreferenceOption{
		Key:   req.Key,
		Label: req.Label,
	}

	id, err := h.preferences.Create(c.Request.Context(), option)
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			_ = c.Error(apperrors.NewConflictError("Preference key already exists", req.Key))
			return
		}
		_ = c.Error(apperrors.NewDatabaseError(err))
		return
	}
	option.ID = id

	c.JSON(http.StatusCreated, option)
}

// DeletePreferenceOptionHandler godoc
// @Summary Remove a preference category
// @Description Users who opted into the removed category keep the key in their profile; it simply stops matching anything.
// @Tags admin
// @Produce json
// @Param id path string true "Preference option ID"
// @Success 200 {object} docs.StatusResponse "Category removed"
// @Failure 403 {object} docs.ErrorResponse "Forbidden - Admin role required"
// @Failure 404 {object} docs.ErrorResponse "Not found - Category does not exist"
// @Router /admin/preferences/{id} [delete]
// @Security BearerAuth
func (h *AdminHandler) DeletePreferenceOptionHandler(c *gin.Context) {
	id := c.Param("id")

	if err := h.preferences.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			_ = c.Error(apperrors.NotFound("Preference option", id))
			return
		}
		_ = c.Error(apperrors.NewDatabaseError(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Preference option deleted"})
}
