package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/travelmate-app/travelmate-backend/errors"
	"github.com/travelmate-app/travelmate-backend/internal/store"
	"github.com/travelmate-app/travelmate-backend/middleware"
	"github.com/travelmate-app/travelmate-backend/types"
)

type WishlistHandler struct {
	wishlist     store.WishlistStore
	destinations store.DestinationStore
}

func NewWishlistHandler(wishlist store.WishlistStore, destinations store.DestinationStore) *WishlistHandler {
	return &WishlistHandler{
		wishlist:     wishlist,
		destinations: destinations,
	}
}

// ListWishlistHandler godoc
// @Summary List the caller's wishlisted destinations
// @Tags wishlist
// @Produce json
// @Success 200 {array} types.WishlistItem "Wishlist entries with joined destinations"
// @Failure 401 {object} docs.ErrorResponse "Unauthorized - User not logged in"
// @Router /wishlist [get]
// @Security BearerAuth
func (h *WishlistHandler) ListWishlistHandler(c *gin.Context) {
	userID := c.GetString(middleware.ContextKeyUserID)

	items, err := h.wishlist.ListByUser(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(apperrors.NewDatabaseError(err))
		return
	}
	if items == nil {
		items = []types.WishlistItem{}
	}

	c.JSON(http.StatusOK, items)
}

// AddWishlistHandler godoc
// @Summary Bookmark a destination
// @Description Idempotent; bookmarking an already-wishlisted destination is a no-op.
// @Tags wishlist
// @Produce json
// @Param destinationID path string true "Destination ID"
// @Success 201 {object} docs.StatusResponse "Destination bookmarked"
// @Failure 404 {object} docs.ErrorResponse "Not found - Destination does not exist"
// @Router /wishlist/{destinationID} [post]
// @Security BearerAuth
func (h *WishlistHandler) AddWishlistHandler(c *gin.Context) {
	userID := c.GetString(middleware.ContextKeyUserID)
	destinationID := c.Param("destinationID")

	if _, err := h.destinations.GetByID(c.Request.Context(), destinationID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			_ = c.Error(apperrors.DestinationNotFound(destinationID))
			return
		}
		_ = c.Error(apperrors.NewDatabaseError(err))
		return
	}

	if err := h.wishlist.Add(c.Request.Context(), userID, destinationID); err != nil {
		_ = c.Error(apperrors.NewDatabaseError(err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Destination added to wishlist"})
}

// RemoveWishlistHandler godoc
// @Summary Remove a bookmark
// @Tags wishlist
// @Produce json
// @Param destinationID path string true "Destination ID"
// @Success 200 {object} docs.StatusResponse "Bookmark removed"
// @Failure 404 {object} docs.ErrorResponse "Not found - Destination is not wishlisted"
// @Router /wishlist/{destinationID} [delete]
// @Security BearerAuth
func (h *WishlistHandler) RemoveWishlistHandler(c *gin.Context) {
	userID := c.GetString(middleware.ContextKeyUserID)
	destinationID := c.Param("destinationID")

	if err := h.wishlist.Remove(c.Request.Context(), userID, destinationID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			_ = c.Error(apperrors.NotFound("Wishlist item", destinationID))
			return
		}
		_ = c.Error(apperrors.NewDatabaseError(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Destination removed from wishlist"})
}
