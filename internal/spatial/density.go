package spatial

import (
	"errors"
	"sort"
)

const (
	// DefaultGridSize is the grid resolution used when Options.GridSize is zero
	DefaultGridSize = 5

	// DefaultTopCells is the number of hotspots reported when Options.TopCells is zero
	DefaultTopCells = 3

	// fallbackStepDegrees is the cell size used when all points share a
	// latitude or longitude and the bounding box has no extent on that axis.
	// Roughly 1.1 km at the equator.
	fallbackStepDegrees = 0.01

	// UnknownLocation is the hotspot label when the labeler fails
	UnknownLocation = "Unknown location"
)

var (
	// ErrNoPlaces is returned when the input point set is empty
	ErrNoPlaces = errors.New("no places to analyze")

	// ErrInvalidGridSize is returned when the grid resolution or hotspot
	// count is not a positive integer
	ErrInvalidGridSize = errors.New("grid size must be a positive integer")
)

// Labeler resolves a coordinate to a human-readable location description.
// It is the only side-effecting collaborator of the density analysis.
type Labeler func(lat, lng float64) (string, error)

// Options configures a density analysis. Zero values select the defaults.
type Options struct {
	GridSize int
	TopCells int
	Labeler  Labeler // optional
}

// Cell identifies one grid cell by row (latitude) and column (longitude)
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Hotspot is a high-occupancy grid cell with its centroid coordinate
type Hotspot struct {
	Cell                Cell    `json:"grid_cell"`
	Count               int     `json:"count"`
	CenterLat           float64 `json:"center_lat"`
	CenterLng           float64 `json:"center_lng"`
	ApproximateLocation string  `json:"approximate_location,omitempty"`
}

// DensityReport is the result of a grid density analysis
type DensityReport struct {
	TotalPlaces int       `json:"total_places"`
	GridSize    int       `json:"grid_size"`
	Hotspots    []Hotspot `json:"hotspots"`
}

// AnalyzeDensity partitions the points' bounding box into a GridSize×GridSize
// grid, counts points per cell and reports the TopCells highest-occupancy
// cells with their centroids. The input is never mutated and every point maps
// to exactly one cell; ties rank in first-encountered order, so the same
// input order always produces the same report.
func AnalyzeDensity(points []Point, opts Options) (*DensityReport, error) {
	gridSize := opts.GridSize
	if gridSize == 0 {
		gridSize = DefaultGridSize
	}
	topCells := opts.TopCells
	if topCells == 0 {
		topCells = DefaultTopCells
	}
	if gridSize < 1 || topCells < 1 {
		return nil, ErrInvalidGridSize
	}
	if len(points) == 0 {
		return nil, ErrNoPlaces
	}

	minLat, minLng, maxLat, maxLng := BoundingBox(points)

	latStep := (maxLat - minLat) / float64(gridSize)
	if maxLat == minLat {
		latStep = fallbackStepDegrees
	}
	lngStep := (maxLng - minLng) / float64(gridSize)
	if maxLng == minLng {
		lngStep = fallbackStepDegrees
	}

	counts := make(map[Cell]int)
	var order []Cell // first-encounter order, decides ties

	for _, p := range points {
		var row, col int
		if latStep != 0 {
			row = int((p.Lat - minLat) / latStep)
		}
		if lngStep != 0 {
			col = int((p.Lon - minLng) / lngStep)
		}
		// A point exactly on the max edge bins one past the last cell
		if row >= gridSize {
			row = gridSize - 1
		}
		if col >= gridSize {
			col = gridSize - 1
		}

		cell := Cell{Row: row, Col: col}
		if _, seen := counts[cell]; !seen {
			order = append(order, cell)
		}
		counts[cell]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if topCells > len(order) {
		topCells = len(order)
	}

	hotspots := make([]Hotspot, 0, topCells)
	for _, cell := range order[:topCells] {
		h := Hotspot{
			Cell:      cell,
			Count:     counts[cell],
			CenterLat: minLat + (float64(cell.Row)+0.5)*latStep,
			CenterLng: minLng + (float64(cell.Col)+0.5)*lngStep,
		}
		if opts.Labeler != nil {
			name, err := opts.Labeler(h.CenterLat, h.CenterLng)
			if err != nil || name == "" {
				name = UnknownLocation
			}
			h.ApproximateLocation = name
		}
		hotspots = append(hotspots, h)
	}

	return &DensityReport{
		TotalPlaces: len(points),
		GridSize:    gridSize,
		Hotspots:    hotspots,
	}, nil
}
