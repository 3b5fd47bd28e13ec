package models

// DensityQuery represents query parameters for the density analysis endpoint
type DensityQuery struct {
	SearchID string `form:"search_id" binding:"required"`
	GridSize int    `form:"grid_size"` // defaults to 5
	Top      int    `form:"top"`       // defaults to 3
	Label    bool   `form:"label"`     // resolve hotspot centroids to place names
}

// HeatmapQuery represents query parameters for the heatmap endpoints
type HeatmapQuery struct {
	SearchID string `form:"search_id" binding:"required"`
	GridSize int    `form:"grid_size"` // defaults to 10
}

// ExportQuery represents query parameters for the export endpoints
type ExportQuery struct {
	SearchID string `form:"search_id" binding:"required"`
}

// ListQuery represents pagination parameters
type ListQuery struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}
