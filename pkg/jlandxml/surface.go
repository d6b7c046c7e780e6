package jlandxml

import (
	"github.com/beetlebugorg/jlandxml/internal/parser"
)

// SurfaceType classifies a LandXML Surface.
type SurfaceType int

const (
	SurfaceExistingGround SurfaceType = SurfaceType(parser.SurfaceExistingGround)
	SurfaceDesignGround   SurfaceType = SurfaceType(parser.SurfaceDesignGround)
	SurfaceOther          SurfaceType = SurfaceType(parser.SurfaceOther)
)

func (t SurfaceType) String() string { return parser.SurfaceType(t).String() }

// Point3D is a single TIN vertex.
type Point3D struct {
	ID      int
	X, Y, Z float64
}

// Bounds is an axis-aligned XYZ bounding box.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
	MinZ, MaxZ float64
}

// Surface is a parsed TIN surface.
type Surface struct {
	internal *parser.Surface
}

// Name returns the surface's LandXML name attribute.
func (s *Surface) Name() string { return s.internal.Name }

// Desc returns the surface's LandXML desc attribute.
func (s *Surface) Desc() string { return s.internal.Desc }

// Type returns the surface's classification.
func (s *Surface) Type() SurfaceType { return SurfaceType(s.internal.SurfaceType) }

// PointCount returns the number of triangulation vertices.
func (s *Surface) PointCount() int { return len(s.internal.Points) }

// FaceCount returns the number of triangles.
func (s *Surface) FaceCount() int { return len(s.internal.Faces) }

// Bounds returns the surface's tight XYZ bounding box.
func (s *Surface) Bounds() (Bounds, bool) {
	b, ok := s.internal.Bounds()
	if !ok {
		return Bounds{}, false
	}
	return Bounds(b), true
}

// Centroid returns the mean of all point XY coordinates.
func (s *Surface) Centroid() (x, y float64, ok bool) { return s.internal.Centroid() }

// NewIndex builds a spatial index over the surface's triangles, required
// before calling Rasterize.
func (s *Surface) NewIndex() (*Index, error) {
	ts, err := parser.NewTriangulationSource(s.internal)
	if err != nil {
		return nil, err
	}
	return &Index{internal: ts}, nil
}

// Index is a spatial index over one surface's triangulation, supporting
// point-in-triangle queries and elevation interpolation.
type Index struct {
	internal *parser.TriangulationSource
}

// FindFace returns the index of the triangle containing (x, y), if any.
func (idx *Index) FindFace(x, y float64) (int, bool) { return idx.internal.FindFace(x, y) }

// InterpolateZ returns the barycentrically interpolated elevation at
// (x, y) within triangle face.
func (idx *Index) InterpolateZ(face int, x, y float64) float64 {
	return idx.internal.InterpolateZ(face, x, y)
}

// Bounds returns the indexed surface's XY/Z bounding box.
func (idx *Index) Bounds() Bounds { return Bounds(idx.internal.Bounds()) }
