package render

import (
	"go.opencensus.io/stats"
	"go.opencensus.io/stats/view"
)

var (
	raysCast     = stats.Int64("depthtrace/rays_cast", "Primary rays cast", stats.UnitDimensionless)
	rowsRendered = stats.Int64("depthtrace/rows_rendered", "Image rows completed", stats.UnitDimensionless)

	RaysCastView = &view.View{
		Name:        "depthtrace/rays_cast",
		Description: "Counter of primary rays that have been cast",
		Measure:     raysCast,
		Aggregation: view.Sum(),
	}

	RowsRenderedView = &view.View{
		Name:        "depthtrace/rows_rendered",
		Description: "Counter of image rows that have been rendered",
		Measure:     rowsRendered,
		Aggregation: view.Count(),
	}
)

// RegisterMetrics registers the render views with the opencensus view
// machinery.
func RegisterMetrics() error {
	return view.Register(RaysCastView, RowsRenderedView)
}

func UnregisterMetrics() {
	view.Unregister(RaysCastView, RowsRenderedView)
}
