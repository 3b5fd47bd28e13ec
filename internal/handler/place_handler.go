package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/placeintel-backend-go/internal/models"
	"github.com/jengzang/placeintel-backend-go/internal/repository"
	"github.com/jengzang/placeintel-backend-go/internal/service"
	"github.com/jengzang/placeintel-backend-go/pkg/response"
)

// PlaceHandler handles HTTP requests for place searches
type PlaceHandler struct {
	service *service.PlaceService
}

// NewPlaceHandler creates a new place handler
func NewPlaceHandler(service *service.PlaceService) *PlaceHandler {
	return &PlaceHandler{service: service}
}

// Search handles POST /api/v1/places/search
func (h *PlaceHandler) Search(c *gin.Context) {
	var req models.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "location is required")
		return
	}

	result, err := h.service.Search(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, http.StatusBadGateway, "Search failed: "+err.Error())
		return
	}

	response.Success(c, result)
}

// ListSearches handles GET /api/v1/places/searches
func (h *PlaceHandler) ListSearches(c *gin.Context) {
	var q models.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	searches, err := h.service.ListSearches(q.Limit, q.Offset)
	if err != nil {
		response.InternalError(c, "Failed to list searches")
		return
	}

	response.Success(c, gin.H{
		"data":  searches,
		"count": len(searches),
	})
}

// GetSearch handles GET /api/v1/places/searches/:id
func (h *PlaceHandler) GetSearch(c *gin.Context) {
	result, err := h.service.GetSearch(c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrSearchNotFound) {
			response.NotFound(c, "Search not found")
			return
		}
		response.InternalError(c, "Failed to get search")
		return
	}

	response.Success(c, result)
}
