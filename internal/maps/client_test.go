package maps

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c := NewClient("test-key")
	c.BaseURL = server.URL
	return c
}

func TestGeocode(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/geocode/json", r.URL.Path)
		assert.Equal(t, "San Francisco, CA", r.URL.Query().Get("address"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		w.Write([]byte(`{
			"status": "OK",
			"results": [{
				"formatted_address": "San Francisco, CA, USA",
				"geometry": {"location": {"lat": 37.7749, "lng": -122.4194}}
			}]
		}`))
	}))

	lat, lng, formatted, err := c.Geocode(context.Background(), "San Francisco, CA")
	require.NoError(t, err)
	assert.InDelta(t, 37.7749, lat, 1e-9)
	assert.InDelta(t, -122.4194, lng, 1e-9)
	assert.Equal(t, "San Francisco, CA, USA", formatted)
}

func TestGeocodeNotFound(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
	}))

	_, _, _, err := c.Geocode(context.Background(), "nowhere at all")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ZERO_RESULTS")
}

func TestReverseGeocode(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.URL.Query().Get("latlng"))
		w.Write([]byte(`{
			"status": "OK",
			"results": [{"formatted_address": "1 Market St, San Francisco, CA"}]
		}`))
	}))

	name, err := c.ReverseGeocode(context.Background(), 37.79, -122.39)
	require.NoError(t, err)
	assert.Equal(t, "1 Market St, San Francisco, CA", name)
}

func TestReverseGeocodeFallsBackToUnknown(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
	}))

	name, err := c.ReverseGeocode(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Equal(t, "Unknown location", name)
}

func TestReverseGeocodeTransportError(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := c.ReverseGeocode(context.Background(), 0, 0)
	assert.Error(t, err)
}

func TestNearbySearch(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/place/nearbysearch/json", r.URL.Path)
		assert.Equal(t, "1000", r.URL.Query().Get("radius"))
		assert.Equal(t, "restaurant", r.URL.Query().Get("type"))

		w.Write([]byte(`{
			"status": "OK",
			"results": [
				{
					"name": "Taqueria La Cumbre",
					"geometry": {"location": {"lat": 37.765, "lng": -122.42}},
					"rating": 4.4,
					"vicinity": "515 Valencia St"
				},
				{
					"name": "Unrated Diner",
					"geometry": {"location": {"lat": 37.77, "lng": -122.41}}
				}
			]
		}`))
	}))

	places, err := c.NearbySearch(context.Background(), 37.77, -122.42, 1000, "restaurant")
	require.NoError(t, err)
	require.Len(t, places, 2)

	assert.Equal(t, "Taqueria La Cumbre", places[0].Name)
	require.NotNil(t, places[0].Rating)
	assert.InDelta(t, 4.4, *places[0].Rating, 1e-9)
	require.NotNil(t, places[0].Address)
	assert.Equal(t, "515 Valencia St", *places[0].Address)

	assert.Nil(t, places[1].Rating)
	assert.Nil(t, places[1].Address)
}

func TestNearbySearchZeroResults(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
	}))

	places, err := c.NearbySearch(context.Background(), 0, 0, 500, "restaurant")
	require.NoError(t, err)
	assert.Empty(t, places)
}

func TestNearbySearchAPIError(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "REQUEST_DENIED", "error_message": "The provided API key is invalid."}`))
	}))

	_, err := c.NearbySearch(context.Background(), 0, 0, 500, "restaurant")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "REQUEST_DENIED")
}
