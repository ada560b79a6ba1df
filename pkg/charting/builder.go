package charting

import (
	"strconv"

	"github.com/admpub/log"
)

// ChartRequest describes two independently indexed series shown against a
// shared x axis with one y axis each.
type ChartRequest struct {
	Title              string    `json:"title"`
	FirstSeriesName    string    `json:"firstSeriesName"`
	SecondSeriesName   string    `json:"secondSeriesName"`
	FirstSeriesValues  []float64 `json:"firstSeriesValues"`
	SecondSeriesValues []float64 `json:"secondSeriesValues"`
}

// ClusterRequest bundles the arguments of BuildClusterScatter for callers
// that receive them as a single document.
type ClusterRequest struct {
	Clusters [][]int     `json:"clusters"`
	Centers  [][]float64 `json:"centers"`
	Points   [][]float64 `json:"points"`
}

func (r ClusterRequest) Build(options ...ScatterOption) (*Chart, error) {
	return BuildClusterScatter(r.Clusters, r.Centers, r.Points, options...)
}

var centerMarker = Marker{Color: `black`, Size: 10, Symbol: `cross`}

// BuildDualSeries plots the first series on the primary axis and the second
// one on a right-hand axis overlaying the same plot area. The chart title is
// left blank and req.Title goes to the layout.
func BuildDualSeries(req ChartRequest) *Chart {
	first := Trace{
		Name: req.FirstSeriesName,
		Mode: ModeLinesMarkers,
		X:    indexAxis(len(req.FirstSeriesValues)),
		Y:    copyValues(req.FirstSeriesValues),
	}
	second := Trace{
		Name:  req.SecondSeriesName,
		Mode:  ModeLinesMarkers,
		X:     indexAxis(len(req.SecondSeriesValues)),
		Y:     copyValues(req.SecondSeriesValues),
		YAxis: AxisSecondary,
	}
	layout := &Layout{
		Title: req.Title,
		YAxis: &Axis{
			Title: req.FirstSeriesName,
		},
		YAxis2: &Axis{
			Side:       SideRight,
			Overlaying: AxisPrimary,
			Title:      req.SecondSeriesName,
		},
	}
	return Plot(first, second).WithTitle(``).WithLayout(layout)
}

type scatterOptions struct {
	palette Palette
}

type ScatterOption func(*scatterOptions)

func WithPalette(palette Palette) ScatterOption {
	return func(o *scatterOptions) {
		if palette != nil {
			o.palette = palette
		}
	}
}

// BuildClusterScatter draws one marker trace per cluster, colored by position,
// followed by a single trace for the centers. Points are projected onto their
// first and last components. Any unresolved index or missing color fails the
// whole chart.
func BuildClusterScatter(clusters [][]int, centers [][]float64, points [][]float64, options ...ScatterOption) (*Chart, error) {
	o := scatterOptions{palette: DefaultPalette()}
	for _, fn := range options {
		fn(&o)
	}
	traces := make([]Trace, 0, len(clusters)+1)
	for position, members := range clusters {
		color, err := o.palette.Color(position)
		if err != nil {
			return nil, err
		}
		trace := Trace{
			Name:   `cluster ` + strconv.Itoa(position+1),
			Mode:   ModeMarkers,
			X:      make([]float64, 0, len(members)),
			Y:      make([]float64, 0, len(members)),
			Marker: &Marker{Color: color},
		}
		for _, index := range members {
			if index < 0 || index >= len(points) {
				return nil, &PointIndexError{Cluster: position, Index: index, Len: len(points), Err: ErrPointOutOfRange}
			}
			x, y, ok := project(points[index])
			if !ok {
				return nil, &PointIndexError{Cluster: position, Index: index, Len: len(points), Err: ErrEmptyPoint}
			}
			trace.X = append(trace.X, x)
			trace.Y = append(trace.Y, y)
		}
		traces = append(traces, trace)
	}

	marker := centerMarker
	centerTrace := Trace{
		Name:   `centers`,
		Mode:   ModeMarkers,
		X:      make([]float64, 0, len(centers)),
		Y:      make([]float64, 0, len(centers)),
		Marker: &marker,
	}
	for index, center := range centers {
		x, y, ok := project(center)
		if !ok {
			return nil, &PointIndexError{Cluster: -1, Index: index, Len: len(centers), Err: ErrEmptyPoint}
		}
		centerTrace.X = append(centerTrace.X, x)
		centerTrace.Y = append(centerTrace.Y, y)
	}
	traces = append(traces, centerTrace)
	log.Debugf(`cluster scatter: %d clusters, %d centers, %d points`, len(clusters), len(centers), len(points))
	return Plot(traces...).WithTitle(``), nil
}

// project keeps the first and last components of a tuple.
func project(point []float64) (x float64, y float64, ok bool) {
	if len(point) == 0 {
		return 0, 0, false
	}
	return point[0], point[len(point)-1], true
}

func indexAxis(n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i)
	}
	return xs
}

func copyValues(values []float64) []float64 {
	return append(make([]float64, 0, len(values)), values...)
}
