// Package maps wraps the Google Maps web service endpoints this backend
// depends on: Geocoding, Reverse Geocoding and Places Nearby Search.
package maps

import (
	"net/http"
	"time"
)

const defaultBaseURL = "https://maps.googleapis.com/maps/api"

// Client is a thin HTTP client for the Google Maps web services
type Client struct {
	apiKey     string
	httpClient *http.Client

	// BaseURL can be overridden in tests
	BaseURL string
}

// NewClient creates a new Google Maps API client
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		BaseURL:    defaultBaseURL,
	}
}
