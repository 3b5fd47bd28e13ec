// Package render produces standalone HTML visualizations of search results.
package render

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/jengzang/placeintel-backend-go/internal/models"
)

// HeatmapHTML renders the binned heatmap as a scatter chart with a visual
// map over the occupancy counts and writes the chart page to w
func HeatmapHTML(w io.Writer, search *models.SearchRecord, heatmap *models.HeatmapResponse) error {
	if len(heatmap.Points) == 0 {
		return fmt.Errorf("no heatmap points to render")
	}

	minLat, maxLat := heatmap.Points[0].Lat, heatmap.Points[0].Lat
	minLng, maxLng := heatmap.Points[0].Lng, heatmap.Points[0].Lng

	data := make([]opts.ScatterData, 0, len(heatmap.Points))
	for _, p := range heatmap.Points {
		if p.Lat < minLat {
			minLat = p.Lat
		}
		if p.Lat > maxLat {
			maxLat = p.Lat
		}
		if p.Lng < minLng {
			minLng = p.Lng
		}
		if p.Lng > maxLng {
			maxLng = p.Lng
		}
		data = append(data, opts.ScatterData{Value: []interface{}{p.Lng, p.Lat, p.Value}})
	}

	// Pad the axes so edge cells stay visible
	latPad := (maxLat - minLat) * 0.05
	lngPad := (maxLng - minLng) * 0.05
	if latPad == 0 {
		latPad = 0.005
	}
	if lngPad == 0 {
		lngPad = 0.005
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Place Density Heatmap", Width: "900px", Height: "700px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("%s density", search.PlaceType),
			Subtitle: fmt.Sprintf("query=%s center=(%.4f, %.4f) cells=%d grid=%d", search.Query, heatmap.CenterLat, heatmap.CenterLng, heatmap.Count, heatmap.GridSize),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Min: minLng - lngPad, Max: maxLng + lngPad, Name: "Longitude", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Min: minLat - latPad, Max: maxLat + latPad, Name: "Latitude", NameLocation: "middle", NameGap: 30}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        float32(heatmap.MinValue),
			Max:        float32(heatmap.MaxValue),
			Dimension:  "2",
			InRange:    &opts.VisualMapInRange{Color: []string{"#313695", "#4575b4", "#74add1", "#abd9e9", "#fee090", "#fdae61", "#f46d43", "#d73027", "#a50026"}},
		}),
	)

	scatter.AddSeries("cells", data, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 18}))

	if err := scatter.Render(w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}

	return nil
}
