package jlandxml

import (
	"github.com/beetlebugorg/jlandxml/internal/parser"
)

// RasterizeOptions controls DEM rasterization.
type RasterizeOptions struct {
	// Resolution is the output pixel size in the surface's plane-rectangular
	// units (usually meters). Must be > 0.
	Resolution float64

	// Bounds, if non-nil, overrides the tight XY bounds computed from the
	// surface's points.
	Bounds *Bounds

	// Parallel enables the row fork-join worker pool. Default true.
	Parallel bool

	// Workers caps the number of row workers. 0 means runtime.NumCPU().
	Workers int

	// Cancel, if non-nil, is checked between rows; Rasterize returns
	// ErrCanceled once it is closed.
	Cancel <-chan struct{}
}

// DefaultRasterizeOptions returns RasterizeOptions with the given
// resolution and parallel rasterization enabled.
func DefaultRasterizeOptions(resolution float64) RasterizeOptions {
	o := parser.DefaultRasterizeOptions(resolution)
	return RasterizeOptions{Resolution: o.Resolution, Parallel: o.Parallel}
}

// ErrCanceled is returned when RasterizeOptions.Cancel fires mid-run.
type ErrCanceled = parser.ErrCanceled

// DemGrid is a regular raster of elevation samples.
type DemGrid struct {
	internal *parser.DemGrid
}

// Rows and Cols report the grid dimensions.
func (g *DemGrid) Rows() int { return g.internal.Rows }
func (g *DemGrid) Cols() int { return g.internal.Cols }

// At returns the value at (row, col), which may be the Nodata sentinel.
func (g *DemGrid) At(row, col int) float32 { return g.internal.At(row, col) }

// GeoTransform returns the six-element affine GDAL/GeoTIFF geotransform.
func (g *DemGrid) GeoTransform() [6]float64 { return g.internal.GeoTransform() }

// Nodata is the fixed sentinel value for cells with no containing triangle.
const Nodata = parser.Nodata

// Rasterize computes a DemGrid from a spatial index, applying cs's vertical
// offset (if cs is non-nil) to every finite sample (spec section 4.5).
func Rasterize(idx *Index, opts RasterizeOptions, cs *CoordinateSystem) (*DemGrid, error) {
	internalOpts := parser.RasterizeOptions{
		Resolution: opts.Resolution,
		Parallel:   opts.Parallel,
		Workers:    opts.Workers,
		Cancel:     opts.Cancel,
	}
	if opts.Bounds != nil {
		b := parser.GridBounds(*opts.Bounds)
		internalOpts.Bounds = &b
	}

	var differTP float64
	if cs != nil {
		differTP = cs.VerticalOffset()
	}

	grid, err := parser.Rasterize(idx.internal, internalOpts, differTP)
	if err != nil {
		return nil, err
	}
	if cs != nil {
		grid.EPSGCode = cs.EPSGCode
	}
	return &DemGrid{internal: grid}, nil
}

// WriteOptions controls GeoTIFF output.
type WriteOptions struct {
	Compress string
	Tiled    bool
}

// DefaultWriteOptions returns WriteOptions with LZW compression and 256x256
// tiling, matching spec section 4.6's defaults.
func DefaultWriteOptions() WriteOptions {
	o := parser.DefaultWriteOptions()
	return WriteOptions{Compress: o.Compress, Tiled: o.Tiled}
}

// WriteGeoTIFF writes grid to path as a single-band Float32 GeoTIFF.
func WriteGeoTIFF(path string, grid *DemGrid, opts WriteOptions) error {
	return parser.WriteGeoTIFF(path, grid.internal, parser.WriteOptions{
		Compress: opts.Compress,
		Tiled:    opts.Tiled,
	})
}
