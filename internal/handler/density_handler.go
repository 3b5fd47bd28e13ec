package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/placeintel-backend-go/internal/models"
	"github.com/jengzang/placeintel-backend-go/internal/repository"
	"github.com/jengzang/placeintel-backend-go/internal/service"
	"github.com/jengzang/placeintel-backend-go/internal/spatial"
	"github.com/jengzang/placeintel-backend-go/pkg/response"
)

// DensityHandler handles HTTP requests for density analysis
type DensityHandler struct {
	service *service.DensityService
}

// NewDensityHandler creates a new density handler
func NewDensityHandler(service *service.DensityService) *DensityHandler {
	return &DensityHandler{service: service}
}

// Analyze handles GET /api/v1/analysis/density
func (h *DensityHandler) Analyze(c *gin.Context) {
	var q models.DensityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "search_id is required")
		return
	}

	report, err := h.service.Analyze(c.Request.Context(), q)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrSearchNotFound):
			response.NotFound(c, "Search not found")
		case errors.Is(err, spatial.ErrNoPlaces):
			response.BadRequest(c, "Search has no places to analyze")
		case errors.Is(err, spatial.ErrInvalidGridSize):
			response.BadRequest(c, "grid_size and top must be positive")
		default:
			response.InternalError(c, "Density analysis failed")
		}
		return
	}

	response.Success(c, report)
}
