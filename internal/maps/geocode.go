package maps

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// geocodeResponse mirrors the Geocoding API payload (shared by forward and
// reverse lookups)
type geocodeResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Results      []struct {
		FormattedAddress string `json:"formatted_address"`
		Geometry         struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// Geocode resolves a free-form location to coordinates and a formatted address
func (c *Client) Geocode(ctx context.Context, address string) (lat, lng float64, formatted string, err error) {
	params := url.Values{}
	params.Set("address", address)
	params.Set("key", c.apiKey)

	var data geocodeResponse
	if err := c.get(ctx, "/geocode/json", params, &data); err != nil {
		return 0, 0, "", err
	}

	if data.Status != "OK" || len(data.Results) == 0 {
		return 0, 0, "", fmt.Errorf("geocoding failed for %q: %s", address, statusDetail(data.Status, data.ErrorMessage))
	}

	first := data.Results[0]
	return first.Geometry.Location.Lat, first.Geometry.Location.Lng, first.FormattedAddress, nil
}

// ReverseGeocode resolves a coordinate to a formatted address. A lookup that
// succeeds at the HTTP level but finds nothing returns "Unknown location"
// without an error, matching what callers display.
func (c *Client) ReverseGeocode(ctx context.Context, lat, lng float64) (string, error) {
	params := url.Values{}
	params.Set("latlng", fmt.Sprintf("%f,%f", lat, lng))
	params.Set("key", c.apiKey)

	var data geocodeResponse
	if err := c.get(ctx, "/geocode/json", params, &data); err != nil {
		return "", err
	}

	if data.Status != "OK" || len(data.Results) == 0 {
		return "Unknown location", nil
	}

	return data.Results[0].FormattedAddress, nil
}

// get performs a GET request against the given API path and decodes the JSON body
func (c *Client) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	reqURL := c.BaseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call maps API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("maps API returned status %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode maps API response: %w", err)
	}

	return nil
}

// statusDetail joins the API status with its optional error message
func statusDetail(status, message string) string {
	if message == "" {
		return status
	}
	return status + ": " + message
}
