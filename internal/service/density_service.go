package service

import (
	"context"

	"github.com/jengzang/placeintel-backend-go/internal/models"
	"github.com/jengzang/placeintel-backend-go/internal/repository"
	"github.com/jengzang/placeintel-backend-go/internal/spatial"
)

// LabelFunc resolves a coordinate to a location description. Cancellation
// belongs to the lookup, not to the grid computation, so the context stops
// here and never enters the analyzer.
type LabelFunc func(ctx context.Context, lat, lng float64) (string, error)

// DensityService runs grid density analysis over a stored search's places.
// The labeler is injected so the analysis itself stays independent of any
// geocoding backend.
type DensityService struct {
	repo    *repository.PlaceRepository
	labeler LabelFunc // optional
}

// NewDensityService creates a new density service
func NewDensityService(repo *repository.PlaceRepository, labeler LabelFunc) *DensityService {
	return &DensityService{repo: repo, labeler: labeler}
}

// Analyze loads the search's places and computes the hotspot report
func (s *DensityService) Analyze(ctx context.Context, q models.DensityQuery) (*spatial.DensityReport, error) {
	places, err := s.repo.GetPlaces(q.SearchID)
	if err != nil {
		return nil, err
	}

	opts := spatial.Options{
		GridSize: q.GridSize,
		TopCells: q.Top,
	}
	if q.Label && s.labeler != nil {
		opts.Labeler = func(lat, lng float64) (string, error) {
			return s.labeler(ctx, lat, lng)
		}
	}

	return spatial.AnalyzeDensity(toPoints(places), opts)
}

// toPoints projects places onto the coordinates the analyzer consumes
func toPoints(places []models.Place) []spatial.Point {
	points := make([]spatial.Point, len(places))
	for i, p := range places {
		points[i] = spatial.Point{Lat: p.Lat, Lon: p.Lng}
	}
	return points
}
