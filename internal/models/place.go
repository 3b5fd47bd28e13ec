package models

import "time"

// Place represents a geo-located place returned by a nearby search
type Place struct {
	ID       int64  `json:"id" db:"id"`
	SearchID string `json:"search_id" db:"search_id"`
	Name     string `json:"name" db:"name"`

	// Latitude in [-90, 90], longitude in [-180, 180]
	Lat float64 `json:"lat" db:"lat"`
	Lng float64 `json:"lng" db:"lng"`

	Rating  *float64 `json:"rating,omitempty" db:"rating"`   // NULLABLE, not every place is rated
	Address *string  `json:"address,omitempty" db:"address"` // NULLABLE

	// Distance from the search center in meters
	DistanceMeters float64 `json:"distance_m" db:"distance_m"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// GetAddress returns the address or an empty string
func (p *Place) GetAddress() string {
	if p.Address != nil {
		return *p.Address
	}
	return ""
}
