package parser

import (
	"math"
	"runtime"
)

// RasterizeOptions controls the rasterizer, following the teacher's
// struct-options convention (compare IngestOptions in ingest.go).
type RasterizeOptions struct {
	// Resolution is the pixel size in world units. Must be > 0.
	Resolution float64

	// Bounds, if non-nil, overrides the tight XY bounds computed from the
	// TIN's points (spec section 4.5).
	Bounds *GridBounds

	// Parallel enables the row fork-join worker pool. Default true.
	Parallel bool

	// Workers caps the number of row workers. 0 means runtime.NumCPU().
	Workers int

	// Cancel, if non-nil, is checked between rows; rasterization stops
	// early (returning what has been computed so far is not attempted --
	// the caller instead gets a partial-cancellation error) once it is
	// closed. Spec section 5: "Long-running rasterization SHOULD check a
	// caller-provided cancellation flag between rows if provided."
	Cancel <-chan struct{}
}

// DefaultRasterizeOptions returns RasterizeOptions with a given resolution
// and default parallel behavior.
func DefaultRasterizeOptions(resolution float64) RasterizeOptions {
	return RasterizeOptions{
		Resolution: resolution,
		Parallel:   true,
	}
}

// ErrCanceled is returned when RasterizeOptions.Cancel fires mid-run.
type ErrCanceled struct{}

func (ErrCanceled) Error() string { return "rasterization canceled" }

// Rasterize computes a DemGrid from a TriangulationSource, per the grid
// geometry and interpolation contract of spec section 4.5. differTP is
// added to every finite interpolated z last (spec section 4.5: "Apply
// vertical-datum correction last"); pass 0 when the coordinate system
// carries no differTP offset.
func Rasterize(ts *TriangulationSource, opts RasterizeOptions, differTP float64) (*DemGrid, error) {
	if err := ValidateResolution(opts.Resolution); err != nil {
		return nil, err
	}
	bounds := ts.Bounds()
	if opts.Bounds != nil {
		bounds = *opts.Bounds
	}
	if err := ValidateGridBounds(bounds); err != nil {
		return nil, err
	}

	r := opts.Resolution
	cols := int(math.Ceil((bounds.MaxX - bounds.MinX) / r))
	rows := int(math.Ceil((bounds.MaxY - bounds.MinY) / r))
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	grid := &DemGrid{
		Rows:    rows,
		Cols:    cols,
		CellX:   r,
		CellY:   r,
		OriginX: bounds.MinX + 0.5*r,
		OriginY: bounds.MaxY - 0.5*r,
		Values:  make([]float32, rows*cols),
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	if opts.Parallel && rows > 1 {
		if err := rasterizeParallel(ts, grid, differTP, workers, opts.Cancel); err != nil {
			return nil, err
		}
	} else {
		for row := 0; row < rows; row++ {
			if canceled(opts.Cancel) {
				return nil, ErrCanceled{}
			}
			rasterizeRow(ts, grid, row, differTP)
		}
	}
	return grid, nil
}

// rasterizeRow fills one output row. Each row owns a disjoint slice of
// Values, so no locking is needed even when called concurrently from
// distinct goroutines (spec section 5).
func rasterizeRow(ts *TriangulationSource, grid *DemGrid, row int, differTP float64) {
	base := row * grid.Cols
	_, y := grid.WorldToPixelCenter(row, 0)
	for col := 0; col < grid.Cols; col++ {
		x, _ := grid.WorldToPixelCenter(row, col)
		face, ok := ts.FindFace(x, y)
		if !ok {
			grid.Values[base+col] = Nodata
			continue
		}
		z := ts.InterpolateZ(face, x, y) + differTP
		grid.Values[base+col] = float32(z)
	}
}

func canceled(c <-chan struct{}) bool {
	if c == nil {
		return false
	}
	select {
	case <-c:
		return true
	default:
		return false
	}
}
