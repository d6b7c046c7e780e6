package parser

import "math"

// SurfaceType classifies a LandXML Surface per its role in the exchange.
type SurfaceType int

const (
	// SurfaceExistingGround is the as-surveyed ground surface.
	SurfaceExistingGround SurfaceType = iota
	// SurfaceDesignGround is a design/proposed ground surface.
	SurfaceDesignGround
	// SurfaceOther covers surface types the core does not otherwise classify.
	SurfaceOther
)

func (t SurfaceType) String() string {
	switch t {
	case SurfaceExistingGround:
		return "ExistingGround"
	case SurfaceDesignGround:
		return "DesignGround"
	default:
		return "Other"
	}
}

// surfaceTypeFromString matches the LandXML Surface/@surfType values used
// for classification. Anything not recognized maps to SurfaceOther.
func surfaceTypeFromString(s string) SurfaceType {
	switch s {
	case "EG", "existing", "ExistingGround":
		return SurfaceExistingGround
	case "DG", "design", "DesignGround":
		return SurfaceDesignGround
	default:
		return SurfaceOther
	}
}

// Point3D is a single TIN vertex. Id is the LandXML point id; points without
// an explicit id are still ordered by arrival and addressable by index.
type Point3D struct {
	ID   int
	X, Y, Z float64
}

// Face is a triangle referencing three point indices (not LandXML ids) into
// the owning Surface's Points slice. Resolution from id to index happens
// once, during ingestion, so the face/point relationship here is a flat
// array lookup rather than a pointer graph.
type Face struct {
	P1, P2, P3 int
}

// Surface is a parsed TIN: a name, a classification, and its point/face
// tables. Face references are guaranteed to resolve by the time a Surface
// is handed to a caller; a face with an unresolved id causes the whole
// surface to be dropped during ingestion (see ingest.go).
type Surface struct {
	Name        string
	Desc        string
	SurfaceType SurfaceType
	Points      []Point3D
	Faces       []Face
}

// Bounds computes the tight XY/Z bounding box of the surface's points.
// Returns ok=false for an empty surface.
func (s *Surface) Bounds() (b GridBounds, ok bool) {
	if len(s.Points) == 0 {
		return GridBounds{}, false
	}
	b.MinX, b.MaxX = math.Inf(1), math.Inf(-1)
	b.MinY, b.MaxY = math.Inf(1), math.Inf(-1)
	b.MinZ, b.MaxZ = math.Inf(1), math.Inf(-1)
	for _, p := range s.Points {
		b.MinX = math.Min(b.MinX, p.X)
		b.MaxX = math.Max(b.MaxX, p.X)
		b.MinY = math.Min(b.MinY, p.Y)
		b.MaxY = math.Max(b.MaxY, p.Y)
		b.MinZ = math.Min(b.MinZ, p.Z)
		b.MaxZ = math.Max(b.MaxZ, p.Z)
	}
	return b, true
}

// Centroid returns the mean of all point XY coordinates, used by CRS
// autodetection when the document carries no explicit zone.
func (s *Surface) Centroid() (x, y float64, ok bool) {
	if len(s.Points) == 0 {
		return 0, 0, false
	}
	for _, p := range s.Points {
		x += p.X
		y += p.Y
	}
	n := float64(len(s.Points))
	return x / n, y / n, true
}

// GridBounds is an axis-aligned XYZ bounding box.
type GridBounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
	MinZ, MaxZ float64
}

// HorizontalDatum enumerates the horizontal geodetic datums recognized in a
// CoordinateSystem element.
type HorizontalDatum int

const (
	DatumUnspecified HorizontalDatum = iota
	DatumJGD2000
	DatumJGD2011
	DatumTD
)

func (d HorizontalDatum) String() string {
	switch d {
	case DatumJGD2000:
		return "JGD2000"
	case DatumJGD2011:
		return "JGD2011"
	case DatumTD:
		return "TD"
	default:
		return "unspecified"
	}
}

// VerticalDatum enumerates the Japanese local vertical datums (peils) this
// core understands, per spec section 6's offset table.
type VerticalDatum int

const (
	PeilUnspecified VerticalDatum = iota
	PeilTP
	PeilKP
	PeilSP
	PeilYP
	PeilAP
	PeilOP
	PeilTPW
	PeilBSL
)

func (v VerticalDatum) String() string {
	switch v {
	case PeilTP:
		return "TP"
	case PeilKP:
		return "KP"
	case PeilSP:
		return "SP"
	case PeilYP:
		return "YP"
	case PeilAP:
		return "AP"
	case PeilOP:
		return "OP"
	case PeilTPW:
		return "TPW"
	case PeilBSL:
		return "BSL"
	default:
		return "unspecified"
	}
}

// PlaneZone is one of Japan's 19 plane-rectangular coordinate system zones.
// ZoneNone means no zone was resolved.
type PlaneZone int

const ZoneNone PlaneZone = 0

// CoordinateSystem carries the parsed LandXML/J-LandXML coordinate-system
// metadata. Pointer fields are nil when the attribute was absent; DifferTP
// is nil unless a Feature/Property[@label=differTP] child was present.
type CoordinateSystem struct {
	Name             string
	Desc             string
	EPSGCode         *int
	Proj4String      string
	HorizontalDatum  HorizontalDatum
	VerticalDatum    VerticalDatum
	PlaneZone        PlaneZone
	DifferTP         *float64

	// Metadata carries unrecognized Feature/Property labels verbatim; only
	// "differTP" promotes to a typed field above.
	Metadata map[string]string

	// Warnings accumulates non-fatal parse issues (e.g. a zone conflict
	// between epsgCode and horizontalCoordinateSystemName).
	Warnings []string
}

// DemGrid is a regular raster of elevation samples. Pixel (row=0, col=0) is
// the top-left (highest-Y, lowest-X) cell; origin_x/origin_y are the world
// coordinates of that cell's center (spec section 3/section 6 contract).
type DemGrid struct {
	Rows, Cols       int
	OriginX, OriginY float64
	CellX, CellY     float64
	Values           []float32
	EPSGCode         *int
}

// Nodata is the fixed sentinel value for cells with no containing triangle.
const Nodata float32 = -9999.0

// At returns the value at (row, col), which may be the Nodata sentinel.
func (g *DemGrid) At(row, col int) float32 {
	return g.Values[row*g.Cols+col]
}

// Set stores the value at (row, col).
func (g *DemGrid) Set(row, col int, v float32) {
	g.Values[row*g.Cols+col] = v
}

// WorldToPixelCenter returns the world-space coordinate of the center of
// pixel (row, col), per the geometry contract in spec section 4.5.
func (g *DemGrid) WorldToPixelCenter(row, col int) (x, y float64) {
	x = g.OriginX + float64(col)*g.CellX
	y = g.OriginY - float64(row)*g.CellY
	return
}

// GeoTransform returns the six-element affine GDAL/GeoTIFF geotransform
// derived from the grid's pixel-center contract, per spec section 4.6.
func (g *DemGrid) GeoTransform() [6]float64 {
	return [6]float64{
		g.OriginX - 0.5*g.CellX,
		g.CellX,
		0,
		g.OriginY + 0.5*g.CellY,
		0,
		-g.CellY,
	}
}
