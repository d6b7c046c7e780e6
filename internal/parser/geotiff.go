package parser

import (
	"fmt"
	"os"

	"github.com/airbusgeo/godal"
)

// WriteOptions controls GeoTIFF output, following the teacher's
// struct-options convention (compare IngestOptions, RasterizeOptions).
type WriteOptions struct {
	// Compress selects the GDAL COMPRESS creation option. Empty means LZW.
	Compress string

	// Tiled enables BLOCKXSIZE/BLOCKYSIZE=256 tiling instead of strips.
	// Default true.
	Tiled bool
}

// DefaultWriteOptions returns WriteOptions matching spec section 4.6's
// default creation options (LZW, tiled, 256x256 blocks).
func DefaultWriteOptions() WriteOptions {
	return WriteOptions{
		Compress: "LZW",
		Tiled:    true,
	}
}

// WriteGeoTIFF writes grid to path as a single-band Float32 GeoTIFF, using
// godal's cgo GDAL bindings (spec section 4.6, section 7). The geotransform
// and nodata value come directly from grid; the spatial reference is set
// from grid.EPSGCode when present, and left unset (untagged) otherwise.
//
// On any failure after dataset creation, the partially written file is
// unlinked before returning, per spec section 7's "never leave a partial
// GeoTIFF on disk".
func WriteGeoTIFF(path string, grid *DemGrid, opts WriteOptions) (err error) {
	if opts.Compress == "" {
		opts.Compress = "LZW"
	}

	creationOpts := []string{"COMPRESS=" + opts.Compress}
	if opts.Tiled {
		creationOpts = append(creationOpts, "TILED=YES", "BLOCKXSIZE=256", "BLOCKYSIZE=256")
	}

	ds, err := godal.Create(godal.GTiff, path, 1, godal.Float32, grid.Cols, grid.Rows,
		godal.CreationOption(creationOpts...))
	if err != nil {
		return &RasterIoError{Path: path, Err: fmt.Errorf("create dataset: %w", err)}
	}

	defer func() {
		ds.Close()
		if err != nil {
			os.Remove(path)
		}
	}()

	if err = ds.SetGeoTransform(grid.GeoTransform()); err != nil {
		return &RasterIoError{Path: path, Err: fmt.Errorf("set geotransform: %w", err)}
	}

	if grid.EPSGCode != nil {
		sr, srErr := godal.NewSpatialRefFromEPSG(*grid.EPSGCode)
		if srErr != nil {
			return &RasterIoError{Path: path, Err: fmt.Errorf("resolve EPSG:%d: %w", *grid.EPSGCode, srErr)}
		}
		defer sr.Close()
		if err = ds.SetSpatialRef(sr); err != nil {
			return &RasterIoError{Path: path, Err: fmt.Errorf("set spatial reference: %w", err)}
		}
	}

	bands := ds.Bands()
	if len(bands) != 1 {
		err = &RasterIoError{Path: path, Err: fmt.Errorf("expected 1 band, dataset has %d", len(bands))}
		return err
	}
	band := bands[0]

	if err = band.SetNoData(float64(Nodata)); err != nil {
		return &RasterIoError{Path: path, Err: fmt.Errorf("set nodata: %w", err)}
	}

	if err = band.Write(0, 0, grid.Values, grid.Cols, grid.Rows); err != nil {
		return &RasterIoError{Path: path, Err: fmt.Errorf("write band: %w", err)}
	}

	return nil
}
