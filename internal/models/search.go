package models

import "time"

// SearchRecord represents one stored place search and its parameters
type SearchRecord struct {
	ID           string    `json:"id" db:"id"` // UUID
	Query        string    `json:"query" db:"query"`
	CenterLat    float64   `json:"center_lat" db:"center_lat"`
	CenterLng    float64   `json:"center_lng" db:"center_lng"`
	RadiusMeters int       `json:"radius_m" db:"radius_m"`
	PlaceType    string    `json:"place_type" db:"place_type"`
	PlaceCount   int       `json:"place_count" db:"place_count"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// SearchRequest is the payload for POST /places/search
type SearchRequest struct {
	Location     string `json:"location" binding:"required"` // free-form, e.g. "San Francisco, CA"
	RadiusMeters int    `json:"radius_m"`                    // defaults to 1000, max 50000
	PlaceType    string `json:"place_type"`                  // defaults to "restaurant"
}

// SearchResult bundles a stored search with its places
type SearchResult struct {
	Search *SearchRecord `json:"search"`
	Places []Place       `json:"places"`
}
