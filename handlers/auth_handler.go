package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/supabase-community/supabase-go"

	"github.com/travelmate-app/travelmate-backend/config"
	"github.com/travelmate-app/travelmate-backend/errors"
	"github.com/travelmate-app/travelmate-backend/logger"
)

// AuthHandler handles authentication-related endpoints. Sign-up and sign-in
// happen directly against Supabase from the client; the backend only refreshes
// sessions on the client's behalf.
type AuthHandler struct {
	supabase *supabase.Client
	config   *config.Config
}

func NewAuthHandler(supabaseClient *supabase.Client, config *config.Config) *AuthHandler {
	return &AuthHandler{
		supabase: supabaseClient,
		config:   config,
	}
}

// RefreshTokenHandler godoc
// @Summary Refresh an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body object{refresh_token=string} true "Refresh token"
// @Success 200 {object} map[string]interface{} "New session tokens"
// @Failure 400 {object} docs.ErrorResponse "Bad request - Missing refresh token"
// @Failure 401 {object} docs.ErrorResponse "Unauthorized - Refresh failed"
// @Router /auth/refresh [post]
func (h *AuthHandler) RefreshTokenHandler(c *gin.Context) {
	log := logger.GetLogger()

	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(errors.ValidationFailed("invalid_request", "Invalid request format"))
		return
	}

	log.Debugw("Attempting to refresh token")

	session, err := h.supabase.Auth.RefreshToken(req.RefreshToken)
	if err != nil {
		log.Warnw("Failed to refresh token", "error", err)
		_ = c.Error(errors.Unauthorized("refresh_failed", "Failed to refresh token"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token":  session.AccessToken,
		"refresh_token": session.RefreshToken,
		"expires_in":    session.ExpiresIn,
		"token_type":    "bearer",
	})
}
