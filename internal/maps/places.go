package maps

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/jengzang/placeintel-backend-go/internal/models"
)

// placesResponse mirrors the Places Nearby Search payload
type placesResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Results      []struct {
		Name     string `json:"name"`
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
		Rating   *float64 `json:"rating"`
		Vicinity string   `json:"vicinity"`
	} `json:"results"`
}

// NearbySearch finds places of the given type within radiusMeters of a coordinate
func (c *Client) NearbySearch(ctx context.Context, lat, lng float64, radiusMeters int, placeType string) ([]models.Place, error) {
	params := url.Values{}
	params.Set("location", fmt.Sprintf("%f,%f", lat, lng))
	params.Set("radius", strconv.Itoa(radiusMeters))
	params.Set("type", placeType)
	params.Set("key", c.apiKey)

	var data placesResponse
	if err := c.get(ctx, "/place/nearbysearch/json", params, &data); err != nil {
		return nil, err
	}

	// ZERO_RESULTS is a valid empty answer, not an error
	if data.Status == "ZERO_RESULTS" {
		return []models.Place{}, nil
	}
	if data.Status != "OK" {
		return nil, fmt.Errorf("places search failed: %s", statusDetail(data.Status, data.ErrorMessage))
	}

	places := make([]models.Place, 0, len(data.Results))
	for _, r := range data.Results {
		p := models.Place{
			Name:   r.Name,
			Lat:    r.Geometry.Location.Lat,
			Lng:    r.Geometry.Location.Lng,
			Rating: r.Rating,
		}
		if r.Vicinity != "" {
			vicinity := r.Vicinity
			p.Address = &vicinity
		}
		places = append(places, p)
	}

	return places, nil
}
