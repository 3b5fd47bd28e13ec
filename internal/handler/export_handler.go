package handler

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/placeintel-backend-go/internal/models"
	"github.com/jengzang/placeintel-backend-go/internal/repository"
	"github.com/jengzang/placeintel-backend-go/internal/service"
	"github.com/jengzang/placeintel-backend-go/pkg/response"
)

// ExportHandler handles HTTP requests for data export
type ExportHandler struct {
	service *service.ExportService
}

// NewExportHandler creates a new export handler
func NewExportHandler(service *service.ExportService) *ExportHandler {
	return &ExportHandler{service: service}
}

// CSV handles GET /api/v1/export/csv
func (h *ExportHandler) CSV(c *gin.Context) {
	var q models.ExportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "search_id is required")
		return
	}

	// Buffer first so a repository error still yields a clean JSON response
	var buf bytes.Buffer
	if err := h.service.WriteCSV(q.SearchID, &buf); err != nil {
		h.exportError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=places_%s.csv", q.SearchID))
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}

// GeoJSON handles GET /api/v1/export/geojson
func (h *ExportHandler) GeoJSON(c *gin.Context) {
	var q models.ExportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "search_id is required")
		return
	}

	data, err := h.service.GeoJSON(q.SearchID)
	if err != nil {
		h.exportError(c, err)
		return
	}

	c.Data(http.StatusOK, "application/geo+json", data)
}

func (h *ExportHandler) exportError(c *gin.Context, err error) {
	if errors.Is(err, repository.ErrSearchNotFound) {
		response.NotFound(c, "Search not found")
		return
	}
	response.InternalError(c, "Export failed")
}
