package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/travelmate-app/travelmate-backend/errors"
	"github.com/travelmate-app/travelmate-backend/internal/auth"
	"github.com/travelmate-app/travelmate-backend/logger"
	"github.com/travelmate-app/travelmate-backend/middleware"
	"github.com/travelmate-app/travelmate-backend/services"
	"github.com/travelmate-app/travelmate-backend/types"
)

// shareLinkTTL bounds how long a generated itinerary share link stays valid.
const shareLinkTTL = 7 * 24 * time.Hour

// PlanRequest is the payload for plan preview, create, and update. The form
// is normalized server-side; clients may submit half-filled values.
type PlanRequest struct {
	Form           types.TripPlanForm    `json:"form"`
	SelectedPlaces []types.SelectedPlace `json:"selectedPlaces"`
}

// SharePlanRequest is the payload for emailing an itinerary.
type SharePlanRequest struct {
	Email      string `json:"email" binding:"required,email"`
	SenderName string `json:"senderName"`
}

type PlanHandler struct {
	planService *services.PlanService
	jwtSecret   string
}

func NewPlanHandler(planService *services.PlanService, jwtSecret string) *PlanHandler {
	return &PlanHandler{
		planService: planService,
		jwtSecret:   jwtSecret,
	}
}

// PreviewPlanHandler godoc
// @Summary Preview a trip plan
// @Description Normalizes the submitted form and returns derived budgets, suggestions, and matching destinations without saving anything.
// @Tags plans
// @Accept json
// @Produce json
// @Param request body PlanRequest true "Plan form"
// @Success 200 {object} services.PlanPreview "Normalized preview"
// @Failure 400 {object} docs.ErrorResponse "Bad request - Invalid payload"
// @Failure 401 {object} docs.ErrorResponse "Unauthorized - User not logged in"
// @Router /plans/preview [post]
// @Security BearerAuth
func (h *PlanHandler) PreviewPlanHandler(c *gin.Context) {
	log := logger.GetLogger()

	var req PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Errorw("Invalid preview request body", "error", err)
		_ = c.Error(errors.ValidationFailed("Invalid request body", err.Error()))
		return
	}

	preview, err := h.planService.Preview(c.Request.Context(), req.Form, req.SelectedPlaces)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, preview)
}

// CreatePlanHandler godoc
// @Summary Save a trip plan
// @Description Normalizes the form one final time and persists the plan whole.
// @Tags plans
// @Accept json
// @Produce json
// @Param request body PlanRequest true "Plan form"
// @Success 201 {object} types.TripPlan "Saved plan"
// @Failure 400 {object} docs.ErrorResponse "Bad request - Invalid payload"
// @Failure 401 {object} docs.ErrorResponse "Unauthorized - User not logged in"
// @Router /plans [post]
// @Security BearerAuth
func (h *PlanHandler) CreatePlanHandler(c *gin.Context) {
	log := logger.GetLogger()
	userID := c.GetString(middleware.ContextKeyUserID)

	var req PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Errorw("Invalid create plan request body", "error", err)
		_ = c.Error(errors.ValidationFailed("Invalid request body", err.Error()))
		return
	}

	plan, err := h.planService.Create(c.Request.Context(), userID, req.Form, req.SelectedPlaces)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, plan)
}

// ListPlansHandler godoc
// @Summary List the caller's trip plans
// @Tags plans
// @Produce json
// @Success 200 {array} types.TripPlan "Plans, most recently updated first"
// @Failure 401 {object} docs.ErrorResponse "Unauthorized - User not logged in"
// @Router /plans [get]
// @Security BearerAuth
func (h *PlanHandler) ListPlansHandler(c *gin.Context) {
	userID := c.GetString(middleware.ContextKeyUserID)

	plans, err := h.planService.ListForUser(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if plans == nil {
		plans = []types.TripPlan{}
	}

	c.JSON(http.StatusOK, plans)
}

// GetPlanHandler godoc
// @Summary Get a trip plan
// @Tags plans
// @Produce json
// @Param id path string true "Plan ID"
// @Success 200 {object} types.TripPlan "Plan"
// @Failure 403 {object} docs.ErrorResponse "Forbidden - Plan belongs to another user"
// @Failure 404 {object} docs.ErrorResponse "Not found - Plan does not exist"
// @Router /plans/{id} [get]
// @Security BearerAuth
func (h *PlanHandler) GetPlanHandler(c *gin.Context) {
	userID := c.GetString(middleware.ContextKeyUserID)

	plan, err := h.planService.Get(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, plan)
}

// UpdatePlanHandler godoc
// @Summary Replace a trip plan
// @Description Re-runs normalization over the edited form and overwrites the plan whole. There are no partial updates.
// @Tags plans
// @Accept json
// @Produce json
// @Param id path string true "Plan ID"
// @Param request body PlanRequest true "Edited plan form"
// @Success 200 {object} types.TripPlan "Updated plan"
// @Failure 400 {object} docs.ErrorResponse "Bad request - Invalid payload"
// @Failure 403 {object} docs.ErrorResponse "Forbidden - Plan belongs to another user"
// @Failure 404 {object} docs.ErrorResponse "Not found - Plan does not exist"
// @Router /plans/{id} [put]
// @Security BearerAuth
func (h *PlanHandler) UpdatePlanHandler(c *gin.Context) {
	log := logger.GetLogger()
	userID := c.GetString(middleware.ContextKeyUserID)

	var req PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Errorw("Invalid update plan request body", "error", err)
		_ = c.Error(errors.ValidationFailed("Invalid request body", err.Error()))
		return
	}

	plan, err := h.planService.Replace(c.Request.Context(), c.Param("id"), userID, req.Form, req.SelectedPlaces)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, plan)
}

// DeletePlanHandler godoc
// @Summary Delete a trip plan
// @Tags plans
// @Produce json
// @Param id path string true "Plan ID"
// @Success 200 {object} docs.StatusResponse "Plan deleted"
// @Failure 403 {object} docs.ErrorResponse "Forbidden - Plan belongs to another user"
// @Failure 404 {object} docs.ErrorResponse "Not found - Plan does not exist"
// @Router /plans/{id} [delete]
// @Security BearerAuth
func (h *PlanHandler) DeletePlanHandler(c *gin.Context) {
	userID := c.GetString(middleware.ContextKeyUserID)

	if err := h.planService.Delete(c.Request.Context(), c.Param("id"), userID); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Plan deleted successfully"})
}

// GetItineraryHandler godoc
// @Summary Get the day-by-day itinerary for a plan
// @Description Derives the schedule deterministically from the saved plan; repeated calls for an unchanged plan return identical output.
// @Tags plans
// @Produce json
// @Param id path string true "Plan ID"
// @Success 200 {object} types.Itinerary "Itinerary"
// @Failure 403 {object} docs.ErrorResponse "Forbidden - Plan belongs to another user"
// @Failure 404 {object} docs.ErrorResponse "Not found - Plan does not exist"
// @Router /plans/{id}/itinerary [get]
// @Security BearerAuth
func (h *PlanHandler) GetItineraryHandler(c *gin.Context) {
	userID := c.GetString(middleware.ContextKeyUserID)

	itinerary, err := h.planService.Itinerary(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, itinerary)
}

// SharePlanHandler godoc
// @Summary Email an itinerary to someone
// @Tags plans
// @Accept json
// @Produce json
// @Param id path string true "Plan ID"
// @Param request body SharePlanRequest true "Recipient"
// @Success 200 {object} docs.StatusResponse "Itinerary sent"
// @Failure 400 {object} docs.ErrorResponse "Bad request - Invalid recipient"
// @Failure 403 {object} docs.ErrorResponse "Forbidden - Plan belongs to another user"
// @Failure 404 {object} docs.ErrorResponse "Not found - Plan does not exist"
// @Router /plans/{id}/share [post]
// @Security BearerAuth
func (h *PlanHandler) SharePlanHandler(c *gin.Context) {
	log := logger.GetLogger()
	userID := c.GetString(middleware.ContextKeyUserID)

	var req SharePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Errorw("Invalid share request body", "error", err)
		_ = c.Error(errors.ValidationFailed("Invalid request body", err.Error()))
		return
	}

	senderName := req.SenderName
	if senderName == "" {
		senderName = "A TravelMate user"
	}

	if err := h.planService.Share(c.Request.Context(), c.Param("id"), userID, req.Email, senderName); err != nil {
		_ = c.Error(err)
		return
	}

	log.Infow("Itinerary shared", "planID", c.Param("id"), "recipient", logger.MaskEmail(req.Email))
	c.JSON(http.StatusOK, gin.H{"message": "Itinerary sent"})
}

// CreateShareLinkHandler godoc
// @Summary Generate a read-only share link for a plan's itinerary
// @Tags plans
// @Produce json
// @Param id path string true "Plan ID"
// @Success 200 {object} map[string]string "Signed share token"
// @Failure 403 {object} docs.ErrorResponse "Forbidden - Plan belongs to another user"
// @Failure 404 {object} docs.ErrorResponse "Not found - Plan does not exist"
// @Router /plans/{id}/share-link [post]
// @Security BearerAuth
func (h *PlanHandler) CreateShareLinkHandler(c *gin.Context) {
	userID := c.GetString(middleware.ContextKeyUserID)
	planID := c.Param("id")

	// Ownership check; the token itself carries no user identity.
	if _, err := h.planService.Get(c.Request.Context(), planID, userID); err != nil {
		_ = c.Error(err)
		return
	}

	token, err := auth.GenerateShareToken(planID, h.jwtSecret, shareLinkTTL)
	if err != nil {
		_ = c.Error(errors.InternalServerError("Failed to generate share link"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":     token,
		"expiresIn": int(shareLinkTTL.Seconds()),
	})
}

// SharedItineraryHandler godoc
// @Summary View an itinerary through a share link
// @Description Public endpoint; access is authorized by the signed token alone.
// @Tags plans
// @Produce json
// @Param token query string true "Share token"
// @Success 200 {object} types.Itinerary "Itinerary"
// @Failure 401 {object} docs.ErrorResponse "Unauthorized - Invalid or expired link"
// @Failure 404 {object} docs.ErrorResponse "Not found - Plan no longer exists"
// @Router /shared/itinerary [get]
func (h *PlanHandler) SharedItineraryHandler(c *gin.Context) {
	claims, err := auth.ValidateShareToken(c.Query("token"), h.jwtSecret)
	if err != nil {
		_ = c.Error(err)
		return
	}

	itinerary, err := h.planService.SharedItinerary(c.Request.Context(), claims.PlanID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, itinerary)
}
