package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/travelmate-app/travelmate-backend/errors"
	"github.com/travelmate-app/travelmate-backend/middleware"
	"github.com/travelmate-app/travelmate-backend/services"
)

type RecommendationHandler struct {
	recommendations *services.RecommendationService
}

func NewRecommendationHandler(recommendations *services.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{recommendations: recommendations}
}

// GetRecommendationsHandler godoc
// @Summary Recommend destinations for the caller
// @Description Matches catalog entries against the caller's preference categories, highest rated first. An optional budgetPerPax drops entries the caller cannot afford.
// @Tags recommendations
// @Produce json
// @Param budgetPerPax query number false "Per-person budget ceiling; 0 or absent means no ceiling"
// @Success 200 {array} types.Destination "Recommended destinations"
// @Failure 400 {object} docs.ErrorResponse "Bad request - budgetPerPax is not numeric"
// @Failure 401 {object} docs.ErrorResponse "Unauthorized - User not logged in"
// @Router /recommendations [get]
// @Security BearerAuth
func (h *RecommendationHandler) GetRecommendationsHandler(c *gin.Context) {
	userID := c.GetString(middleware.ContextKeyUserID)

	var budgetPerPax float64
	if raw := c.Query("budgetPerPax"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed < 0 {
			_ = c.Error(apperrors.ValidationFailed("Invalid budget", "budgetPerPax must be a non-negative number"))
			return
		}
		budgetPerPax = parsed
	}

	recommendations, err := h.recommendations.ForUser(c.Request.Context(), userID, budgetPerPax)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, recommendations)
}
