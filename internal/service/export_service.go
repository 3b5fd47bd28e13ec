package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/jengzang/placeintel-backend-go/internal/repository"
	"github.com/jengzang/placeintel-backend-go/internal/spatial"
)

// ExportService exports a search's places as CSV or GeoJSON
type ExportService struct {
	repo *repository.PlaceRepository
}

// NewExportService creates a new export service
func NewExportService(repo *repository.PlaceRepository) *ExportService {
	return &ExportService{repo: repo}
}

// WriteCSV streams the search's places as CSV
func (s *ExportService) WriteCSV(searchID string, w io.Writer) error {
	places, err := s.repo.GetPlaces(searchID)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"name", "lat", "lng", "rating", "address", "distance_m"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, p := range places {
		rating := ""
		if p.Rating != nil {
			rating = strconv.FormatFloat(*p.Rating, 'f', 1, 64)
		}

		record := []string{
			p.Name,
			strconv.FormatFloat(p.Lat, 'f', 6, 64),
			strconv.FormatFloat(p.Lng, 'f', 6, 64),
			rating,
			p.GetAddress(),
			strconv.FormatFloat(p.DistanceMeters, 'f', 1, 64),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// GeoJSON returns the search's places and hotspot centroids as a
// FeatureCollection
func (s *ExportService) GeoJSON(searchID string) ([]byte, error) {
	places, err := s.repo.GetPlaces(searchID)
	if err != nil {
		return nil, err
	}

	fc := geojson.NewFeatureCollection()

	for _, p := range places {
		f := geojson.NewFeature(orb.Point{p.Lng, p.Lat})
		f.Properties["kind"] = "place"
		f.Properties["name"] = p.Name
		if p.Rating != nil {
			f.Properties["rating"] = *p.Rating
		}
		if p.Address != nil {
			f.Properties["address"] = *p.Address
		}
		f.Properties["distance_m"] = p.DistanceMeters
		fc.Append(f)
	}

	// Hotspots are exported unlabeled; export stays offline
	if len(places) > 0 {
		report, err := spatial.AnalyzeDensity(toPoints(places), spatial.Options{})
		if err != nil {
			return nil, err
		}
		for _, h := range report.Hotspots {
			f := geojson.NewFeature(orb.Point{h.CenterLng, h.CenterLat})
			f.Properties["kind"] = "hotspot"
			f.Properties["count"] = h.Count
			f.Properties["row"] = h.Cell.Row
			f.Properties["col"] = h.Cell.Col
			fc.Append(f)
		}
	}

	data, err := fc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to marshal GeoJSON: %w", err)
	}

	return data, nil
}
