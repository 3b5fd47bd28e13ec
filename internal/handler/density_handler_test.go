package handler

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/jengzang/placeintel-backend-go/internal/database"
	"github.com/jengzang/placeintel-backend-go/internal/models"
	"github.com/jengzang/placeintel-backend-go/internal/repository"
	"github.com/jengzang/placeintel-backend-go/internal/service"
)

const testSearchID = "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"

func newDensityTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.Migrate(db))

	repo := repository.NewPlaceRepository(db)
	require.NoError(t, repo.CreateSearch(&models.SearchRecord{
		ID:        testSearchID,
		Query:     "San Francisco, CA",
		CenterLat: 37.0, CenterLng: -122.0,
		RadiusMeters: 1000,
		PlaceType:    "restaurant",
	}, []models.Place{
		{Name: "A", Lat: 37.0, Lng: -122.0},
		{Name: "B", Lat: 37.0, Lng: -122.0},
		{Name: "C", Lat: 37.1, Lng: -122.1},
	}))

	h := NewDensityHandler(service.NewDensityService(repo, nil))

	r := gin.New()
	r.GET("/api/v1/analysis/density", h.Analyze)
	return r
}

func TestDensityEndpoint(t *testing.T) {
	r := newDensityTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analysis/density?search_id="+testSearchID, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Code int `json:"code"`
		Data struct {
			TotalPlaces int `json:"total_places"`
			GridSize    int `json:"grid_size"`
			Hotspots    []struct {
				Count int `json:"count"`
			} `json:"hotspots"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, 0, resp.Code)
	assert.Equal(t, 3, resp.Data.TotalPlaces)
	assert.Equal(t, 5, resp.Data.GridSize)
	require.NotEmpty(t, resp.Data.Hotspots)
	assert.Equal(t, 2, resp.Data.Hotspots[0].Count)
}

func TestDensityEndpointMissingSearchID(t *testing.T) {
	r := newDensityTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analysis/density", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDensityEndpointUnknownSearch(t *testing.T) {
	r := newDensityTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analysis/density?search_id=missing", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDensityEndpointInvalidGrid(t *testing.T) {
	r := newDensityTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analysis/density?search_id="+testSearchID+"&grid_size=-2", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
