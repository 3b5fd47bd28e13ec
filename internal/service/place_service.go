package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/jengzang/placeintel-backend-go/internal/maps"
	"github.com/jengzang/placeintel-backend-go/internal/models"
	"github.com/jengzang/placeintel-backend-go/internal/repository"
	"github.com/jengzang/placeintel-backend-go/internal/spatial"
)

const (
	defaultRadiusMeters = 1000
	maxRadiusMeters     = 50000
	defaultPlaceType    = "restaurant"
)

// PlaceService orchestrates place searches: geocode the query, find nearby
// places and persist the result set
type PlaceService struct {
	maps *maps.Client
	repo *repository.PlaceRepository
}

// NewPlaceService creates a new place service
func NewPlaceService(mapsClient *maps.Client, repo *repository.PlaceRepository) *PlaceService {
	return &PlaceService{maps: mapsClient, repo: repo}
}

// Search geocodes the requested location, runs a nearby search around it and
// stores the outcome under a fresh search id
func (s *PlaceService) Search(ctx context.Context, req *models.SearchRequest) (*models.SearchResult, error) {
	radius := req.RadiusMeters
	if radius <= 0 {
		radius = defaultRadiusMeters
	}
	if radius > maxRadiusMeters {
		radius = maxRadiusMeters
	}

	placeType := req.PlaceType
	if placeType == "" {
		placeType = defaultPlaceType
	}

	lat, lng, formatted, err := s.maps.Geocode(ctx, req.Location)
	if err != nil {
		return nil, fmt.Errorf("failed to geocode %q: %w", req.Location, err)
	}
	log.Printf("[PlaceService] Geocoded %q to %f,%f (%s)", req.Location, lat, lng, formatted)

	places, err := s.maps.NearbySearch(ctx, lat, lng, radius, placeType)
	if err != nil {
		return nil, fmt.Errorf("failed to search places near %q: %w", req.Location, err)
	}

	search := &models.SearchRecord{
		ID:           uuid.NewString(),
		Query:        req.Location,
		CenterLat:    lat,
		CenterLng:    lng,
		RadiusMeters: radius,
		PlaceType:    placeType,
	}

	for i := range places {
		places[i].SearchID = search.ID
		places[i].DistanceMeters = spatial.HaversineDistance(lat, lng, places[i].Lat, places[i].Lng)
	}

	if err := s.repo.CreateSearch(search, places); err != nil {
		return nil, fmt.Errorf("failed to store search: %w", err)
	}

	log.Printf("[PlaceService] Stored search %s: %d %s places within %dm",
		search.ID, len(places), placeType, radius)

	return &models.SearchResult{Search: search, Places: places}, nil
}

// GetSearch returns a stored search with its places
func (s *PlaceService) GetSearch(id string) (*models.SearchResult, error) {
	search, err := s.repo.GetSearch(id)
	if err != nil {
		return nil, err
	}

	places, err := s.repo.GetPlaces(id)
	if err != nil {
		return nil, err
	}

	return &models.SearchResult{Search: search, Places: places}, nil
}

// ListSearches returns stored searches, newest first
func (s *PlaceService) ListSearches(limit, offset int) ([]*models.SearchRecord, error) {
	return s.repo.ListSearches(limit, offset)
}
