package parser

import "fmt"

// XmlError indicates malformed markup encountered while walking the document.
// Fatal for the whole ingestion; carries the byte offset of the failing token.
type XmlError struct {
	Kind       string
	ByteOffset int64
	Err        error
}

func (e *XmlError) Error() string {
	return fmt.Sprintf("malformed xml (%s) at byte %d: %v", e.Kind, e.ByteOffset, e.Err)
}

func (e *XmlError) Unwrap() error { return e.Err }

// SemanticError indicates a well-formed element with a missing or malformed
// required attribute or body.
type SemanticError struct {
	Path   string
	Reason string
}

func (e *SemanticError) Error() string {
	return fmt.Sprintf("semantic error at %s: %s", e.Path, e.Reason)
}

// MissingPointReferenceError indicates a Face referencing a point id that was
// never declared in the surface's Pnts table. The containing surface is
// dropped; other surfaces in the same document still parse.
type MissingPointReferenceError struct {
	Surface   string
	FaceIndex int
	PointID   int
}

func (e *MissingPointReferenceError) Error() string {
	return fmt.Sprintf("surface %q: face %d references missing point id %d",
		e.Surface, e.FaceIndex, e.PointID)
}

// InvalidZoneNameError indicates a horizontalCoordinateSystemName value that
// does not match the "n(X,Y)" grammar or whose zone is out of [1,19].
type InvalidZoneNameError struct {
	Input string
}

func (e *InvalidZoneNameError) Error() string {
	return fmt.Sprintf("invalid plane-rectangular zone name: %q", e.Input)
}

// UnsupportedResolutionError indicates a non-positive rasterization resolution.
type UnsupportedResolutionError struct {
	Resolution float64
}

func (e *UnsupportedResolutionError) Error() string {
	return fmt.Sprintf("unsupported resolution: %g (must be > 0)", e.Resolution)
}

// EmptySurfaceError indicates a surface with no triangulated faces was rasterized.
type EmptySurfaceError struct {
	Surface string
}

func (e *EmptySurfaceError) Error() string {
	return fmt.Sprintf("surface %q has no triangulated faces", e.Surface)
}

// CrsUnresolvedError indicates the coordinate system could not be resolved
// by parsing nor by centroid autodetection. ResolveCRS returns it; a grid
// rasterized without a coordinate system is written as an untagged GeoTIFF.
type CrsUnresolvedError struct {
	Reason string
}

func (e *CrsUnresolvedError) Error() string {
	return fmt.Sprintf("coordinate system unresolved: %s", e.Reason)
}

// RasterIoError wraps an I/O failure while writing a GeoTIFF, with the
// target path attached per spec section 7.
type RasterIoError struct {
	Path string
	Err  error
}

func (e *RasterIoError) Error() string {
	return fmt.Sprintf("raster io error writing %s: %v", e.Path, e.Err)
}

func (e *RasterIoError) Unwrap() error { return e.Err }
