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

// DestinationCreateRequest is the admin payload for adding a catalog entry.
type DestinationCreateRequest struct {
	Name        string   `json:"name" binding:"required"`
	City        string   `json:"city" binding:"required"`
	Region      string   `json:"region"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Budget      string   `json:"budget"`
	Rating      float64  `json:"rating"`
	Images      []string `json:"images"`
}

// DestinationImportResult summarizes a bulk import.
type DestinationImportResult struct {
	Imported     int                 `json:"imported"`
	Skipped      int                 `json:"skipped"`
	Destinations []types.Destination `json:"destinations"`
}

type DestinationHandler struct {
	destinations store.DestinationStore
	imageService *services.ImageService
}

func NewDestinationHandler(destinations store.DestinationStore, imageService *services.ImageService) *DestinationHandler {
	return &DestinationHandler{
		destinations: destinations,
		imageService: imageService,
	}
}

// ListDestinationsHandler godoc
// @Summary List catalog destinations
// @Description Lists curated destinations, optionally filtered by region, category, or a free-text query.
// @Tags destinations
// @Produce json
// @Param region query string false "Region filter"
// @Param category query string false "Category filter"
// @Param q query string false "Free-text search over name, city, and region"
// @Success 200 {array} types.Destination "Matching destinations"
// @Router /destinations [get]
// @Security BearerAuth
func (h *DestinationHandler) ListDestinationsHandler(c *gin.Context) {
	var filter types.DestinationFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		_ = c.Error(apperrors.ValidationFailed("Invalid query parameters", err.Error()))
		return
	}

	destinations, err := h.destinations.List(c.Request.Context(), filter)
	if err != nil {
		_ = c.Error(apperrors.NewDatabaseError(err))
		return
	}
	if destinations == nil {
		destinations = []types.Destination{}
	}

	c.JSON(http.StatusOK, destinations)
}

// GetDestinationHandler godoc
// @Summary Get a catalog destination
// @Tags destinations
// @Produce json
// @Param id path string true "Destination ID"
// @Success 200 {object} types.Destination "Destination"
// @Failure 404 {object} docs.ErrorResponse "Not found - Destination does not exist"
// @Router /destinations/{id} [get]
// @Security BearerAuth
func (h *DestinationHandler) GetDestinationHandler(c *gin.Context) {
	id := c.Param("id")

	destination, err := h.destinations.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			_ = c.Error(apperrors.DestinationNotFound(id))
			return
		}
		_ = c.Error(apperrors.NewDatabaseError(err))
		return
	}

	c.JSON(http.StatusOK, destination)
}

// CreateDestinationHandler godoc
// @Summary Add a catalog destination
// @Description Admin-only. Budget is stored verbatim; it may be a plain number or a currency range.
// @Tags destinations
// @Accept json
// @Produce json
// @Param request body DestinationCreateRequest true "Destination details"
// @Success 201 {object} types.Destination "Created destination"
// @Failure 400 {object} docs.ErrorResponse "Bad request - Invalid payload"
// @Failure 403 {object} docs.ErrorResponse "Forbidden - Admin role required"
// @Router /admin/destinations [post]
// @Security BearerAuth
func (h *DestinationHandler) CreateDestinationHandler(c *gin.Context) {
	log := logger.GetLogger()

	var req DestinationCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Errorw("Invalid destination payload", "error", err)
		_ = c.Error(apperrors.ValidationFailed("Invalid request body", err.Error()))
		return
	}

	destination := types.Destination{
		Name:        req.Name,
		City:        req.City,
		Region:      req.Region,
		Category:    req.Category,
		Description: req.Description,
		Budget:      req.Budget,
		Rating:      req.Rating,
		Images:      req.Images,
		CreatedBy:   c.GetString(middleware.ContextKeyUserID),
	}

	id, err := h.destinations.Create(c.Request.Context(), destination)
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			_ = c.Error(apperrors.NewConflictError("Destination already exists", req.Name))
			return
		}
		_ = c.Error(apperrors.NewDatabaseError(err))
		return
	}

	created, err := h.destinations.GetByID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(apperrors.NewDatabaseError(err))
		return
	}

	log.Infow("Destination created", "destinationID", id, "name", req.Name)
	c.JSON(http.StatusCreated, created)
}

// ImportDestinationsHandler godoc
// @Summary Bulk-import catalog destinations
// @Description Admin-only. Accepts loosely shaped legacy records (aliased field names, numeric or formatted budgets) and normalizes each into a canonical destination. Records missing a name or city are skipped, as are duplicates.
// @Tags destinations
// @Accept json
// @Produce json
// @Param request body []types.RawDestination true "Raw catalog records"
// @Success 201 {object} DestinationImportResult "Import summary"
// @Failure 400 {object} docs.ErrorResponse "Bad request - Invalid payload"
// @Failure 403 {object} docs.ErrorResponse "Forbidden - Admin role required"
// @Router /admin/destinations/import [post]
// @Security BearerAuth
func (h *DestinationHandler) ImportDestinationsHandler(c *gin.Context) {
	log := logger.GetLogger()

	var raws []types.RawDestination
	if err := c.ShouldBindJSON(&raws); err != nil {
		_ = c.Error(apperrors.ValidationFailed("Invalid request body", err.Error()))
		return
	}
	if len(raws) == 0 {
		_ = c.Error(apperrors.ValidationFailed("Empty import", "at least one record is required"))
		return
	}

	createdBy := c.GetString(middleware.ContextKeyUserID)
	result := DestinationImportResult{Destinations: []types.Destination{}}

	for _, raw := range raws {
		destination := types.NormalizeDestination(raw)
		if destination.Name == "" || destination.City == "" {
			result.Skipped++
			continue
		}
		destination.CreatedBy = createdBy

		id, err := h.destinations.Create(c.Request.Context(), destination)
		if err != nil {
			if errors.Is(err, store.ErrDuplicate) {
				result.Skipped++
				continue
			}
			_ = c.Error(apperrors.NewDatabaseError(err))
			return
		}

		destination.ID = id
		result.Imported++
		result.Destinations = append(result.Destinations, destination)
	}

	log.Infow("Destinations imported", "imported", result.Imported, "skipped", result.Skipped)
	c.JSON(http.StatusCreated, result)
}

// UpdateDestinationHandler godoc
// @Summary Update a catalog destination
// @Description Admin-only partial update; omitted fields are left unchanged.
// @Tags destinations
// @Accept json
// @Produce json
// @Param id path string true "Destination ID"
// @Param request body types.DestinationUpdate true "Fields to update"
// @Success 200 {object} types.Destination "Updated destination"
// @Failure 400 {object} docs.ErrorResponse "Bad request - Invalid payload"
// @Failure 403 {object} docs.ErrorResponse "Forbidden - Admin role required"
// @Failure 404 {object} docs.ErrorResponse "Not found - Destination does not exist"
// @Router /admin/destinations/{id} [put]
// @Security BearerAuth
func (h *DestinationHandler) UpdateDestinationHandler(c *gin.Context) {
	log := logger.GetLogger()
	id := c.Param("id")

	var update types.DestinationUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		log.Errorw("Invalid destination update payload", "error", err)
		_ = c.Error(apperrors.ValidationFailed("Invalid request body", err.Error()))
		return
	}

	destination, err := h.destinations.Update(c.Request.Context(), id, update)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			_ = c.Error(apperrors.DestinationNotFound(id))
			return
		}
		_ = c.Error(apperrors.NewDatabaseError(err))
		return
	}

	c.JSON(http.StatusOK, destination)
}

// DeleteDestinationHandler godoc
// @Summary Remove a catalog destination
// @Description Admin-only soft delete. Saved plans keep their snapshotted copy of the destination.
// @Tags destinations
// @Produce json
// @Param id path string true "Destination ID"
// @Success 200 {object} docs.StatusResponse "Destination removed"
// @Failure 403 {object} docs.ErrorResponse "Forbidden - Admin role required"
// @Failure 404 {object} docs.ErrorResponse "Not found - Destination does not exist"
// @Router /admin/destinations/{id} [delete]
// @Security BearerAuth
func (h *DestinationHandler) DeleteDestinationHandler(c *gin.Context) {
	id := c.Param("id")

	if err := h.destinations.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			_ = c.Error(apperrors.DestinationNotFound(id))
			return
		}
		_ = c.Error(apperrors.NewDatabaseError(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Destination deleted successfully"})
}

// UploadDestinationImageHandler godoc
// @Summary Upload a destination photo
// @Description Admin-only. The image is stored in object storage and its public URL is appended to the destination's image list.
// @Tags destinations
// @Accept mpfd
// @Produce json
// @Param id path string true "Destination ID"
// @Param image formData file true "Image file (JPEG, PNG, or WebP)"
// @Success 200 {object} types.Destination "Destination with the new image"
// @Failure 400 {object} docs.ErrorResponse "Bad request - Missing or unsupported image"
// @Failure 403 {object} docs.ErrorResponse "Forbidden - Admin role required"
// @Failure 404 {object} docs.ErrorResponse "Not found - Destination does not exist"
// @Router /admin/destinations/{id}/images [post]
// @Security BearerAuth
func (h *DestinationHandler) UploadDestinationImageHandler(c *gin.Context) {
	log := logger.GetLogger()
	id := c.Param("id")

	if h.imageService == nil {
		_ = c.Error(apperrors.InternalServerError("Image uploads are not configured"))
		return
	}

	destination, err := h.destinations.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			_ = c.Error(apperrors.DestinationNotFound(id))
			return
		}
		_ = c.Error(apperrors.NewDatabaseError(err))
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		_ = c.Error(apperrors.ValidationFailed("Missing image", "multipart field 'image' is required"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		_ = c.Error(apperrors.ValidationFailed("Unreadable image", err.Error()))
		return
	}
	defer file.Close()

	imageURL, err := h.imageService.UploadDestinationImage(c.Request.Context(), id, file)
	if err != nil {
		_ = c.Error(err)
		return
	}

	images := append(destination.Images, imageURL)
	updated, err := h.destinations.Update(c.Request.Context(), id, types.DestinationUpdate{Images: &images})
	if err != nil {
		_ = c.Error(apperrors.NewDatabaseError(err))
		return
	}

	log.Infow("Destination image attached", "destinationID", id, "url", imageURL)
	c.JSON(http.StatusOK, updated)
}
