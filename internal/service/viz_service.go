package service

import (
	"github.com/jengzang/placeintel-backend-go/internal/models"
	"github.com/jengzang/placeintel-backend-go/internal/repository"
	"github.com/jengzang/placeintel-backend-go/internal/spatial"
	"github.com/jengzang/placeintel-backend-go/internal/stats"
)

// defaultHeatmapGrid is finer than the hotspot grid so the heatmap
// resolves structure inside the top cells
const defaultHeatmapGrid = 10

// VizService builds visualization data from stored searches
type VizService struct {
	repo *repository.PlaceRepository
}

// NewVizService creates a new visualization service
func NewVizService(repo *repository.PlaceRepository) *VizService {
	return &VizService{repo: repo}
}

// Heatmap bins a search's places into a grid and returns one weighted point
// per occupied cell, with intensity normalized over the occupied range
func (s *VizService) Heatmap(q models.HeatmapQuery) (*models.HeatmapResponse, error) {
	places, err := s.repo.GetPlaces(q.SearchID)
	if err != nil {
		return nil, err
	}

	gridSize := q.GridSize
	if gridSize <= 0 {
		gridSize = defaultHeatmapGrid
	}

	pts := toPoints(places)
	center := spatial.Centroid(pts)

	// Asking for every cell turns the hotspot ranking into a full occupancy map
	report, err := spatial.AnalyzeDensity(pts, spatial.Options{
		GridSize: gridSize,
		TopCells: gridSize * gridSize,
	})
	if err != nil {
		return nil, err
	}

	counts := make([]float64, len(report.Hotspots))
	for i, h := range report.Hotspots {
		counts[i] = float64(h.Count)
	}
	min, max := stats.Min(counts), stats.Max(counts)

	points := make([]models.HeatmapPoint, len(report.Hotspots))
	for i, h := range report.Hotspots {
		points[i] = models.HeatmapPoint{
			Lat:       h.CenterLat,
			Lng:       h.CenterLng,
			Intensity: stats.Normalize(float64(h.Count), min, max),
			Value:     h.Count,
		}
	}

	return &models.HeatmapResponse{
		Points:    points,
		CenterLat: center.Lat,
		CenterLng: center.Lon,
		Count:     len(points),
		MaxValue:  int(max),
		MinValue:  int(min),
		Metric:    "place_count",
		GridSize:  gridSize,
	}, nil
}
