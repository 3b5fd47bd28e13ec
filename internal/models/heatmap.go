package models

// HeatmapPoint represents a single point in the heatmap
type HeatmapPoint struct {
	Lat       float64 `json:"lat"`       // Latitude of the cell center
	Lng       float64 `json:"lng"`       // Longitude of the cell center
	Intensity float64 `json:"intensity"` // Normalized 0-1
	Value     int     `json:"value"`     // Raw place count
}

// HeatmapResponse represents the heatmap API response
type HeatmapResponse struct {
	Points []HeatmapPoint `json:"points"`

	// Geographic centroid of the underlying places
	CenterLat float64 `json:"center_lat"`
	CenterLng float64 `json:"center_lng"`

	Count    int            `json:"count"`
	MaxValue int            `json:"max_value"`
	MinValue int            `json:"min_value"`
	Metric   string         `json:"metric"` // always "place_count"
	GridSize int            `json:"grid_size"`
}
