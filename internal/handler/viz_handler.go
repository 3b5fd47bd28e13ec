package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/placeintel-backend-go/internal/models"
	"github.com/jengzang/placeintel-backend-go/internal/render"
	"github.com/jengzang/placeintel-backend-go/internal/repository"
	"github.com/jengzang/placeintel-backend-go/internal/service"
	"github.com/jengzang/placeintel-backend-go/internal/spatial"
	"github.com/jengzang/placeintel-backend-go/pkg/response"
)

// VizHandler handles HTTP requests for visualization data
type VizHandler struct {
	viz  *service.VizService
	repo *repository.PlaceRepository
}

// NewVizHandler creates a new visualization handler
func NewVizHandler(viz *service.VizService, repo *repository.PlaceRepository) *VizHandler {
	return &VizHandler{viz: viz, repo: repo}
}

// Heatmap handles GET /api/v1/viz/heatmap
func (h *VizHandler) Heatmap(c *gin.Context) {
	var q models.HeatmapQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "search_id is required")
		return
	}

	heatmap, err := h.viz.Heatmap(q)
	if err != nil {
		h.vizError(c, err)
		return
	}

	response.Success(c, heatmap)
}

// HeatmapHTML handles GET /api/v1/viz/heatmap.html
func (h *VizHandler) HeatmapHTML(c *gin.Context) {
	var q models.HeatmapQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "search_id is required")
		return
	}

	search, err := h.repo.GetSearch(q.SearchID)
	if err != nil {
		h.vizError(c, err)
		return
	}

	heatmap, err := h.viz.Heatmap(q)
	if err != nil {
		h.vizError(c, err)
		return
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := render.HeatmapHTML(c.Writer, search, heatmap); err != nil {
		// Headers are already written; log path is the middleware's
		_ = c.Error(err)
	}
}

func (h *VizHandler) vizError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrSearchNotFound):
		response.NotFound(c, "Search not found")
	case errors.Is(err, spatial.ErrNoPlaces):
		response.BadRequest(c, "Search has no places to visualize")
	default:
		response.InternalError(c, "Failed to build heatmap")
	}
}
