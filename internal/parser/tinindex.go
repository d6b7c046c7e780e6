package parser

import "math"

// TriangulationSource is an immutable, indexed view over a Surface's
// triangle mesh. It precomputes each face's 2D bounding box and buckets
// face indices into a uniform grid (spec section 3, section 4.4) whose
// cell count is approximately sqrt(triangle count) per axis, so a
// point-in-triangle query only has to scan the handful of faces
// registered in the query point's own bucket.
type TriangulationSource struct {
	surface *Surface
	bounds  GridBounds

	cols, rows     int
	cellW, cellH   float64
	buckets        [][]int32 // bucket index -> face indices
	faceBBoxes     []bbox2D
	skippedDegens  int
}

type bbox2D struct {
	minX, maxX, minY, maxY float64
}

// NewTriangulationSource builds a spatial index over surface. Returns
// EmptySurfaceError if the surface has no faces.
func NewTriangulationSource(surface *Surface) (*TriangulationSource, error) {
	if len(surface.Faces) == 0 {
		return nil, &EmptySurfaceError{Surface: surface.Name}
	}
	bounds, ok := surface.Bounds()
	if !ok {
		return nil, &EmptySurfaceError{Surface: surface.Name}
	}

	n := len(surface.Faces)
	width := bounds.MaxX - bounds.MinX
	height := bounds.MaxY - bounds.MinY
	area := width * height
	cellSize := math.Sqrt(area / float64(n))
	if cellSize <= 0 || math.IsNaN(cellSize) || math.IsInf(cellSize, 0) {
		cellSize = math.Max(width, height)
		if cellSize <= 0 {
			cellSize = 1
		}
	}

	cols := clampBucketDim(int(math.Ceil(width / cellSize)))
	rows := clampBucketDim(int(math.Ceil(height / cellSize)))

	ts := &TriangulationSource{
		surface: surface,
		bounds:  bounds,
		cols:    cols,
		rows:    rows,
		cellW:   width / float64(cols),
		cellH:   height / float64(rows),
		buckets: make([][]int32, cols*rows),
	}

	ts.faceBBoxes = make([]bbox2D, n)
	for i, f := range surface.Faces {
		a, b, c := surface.Points[f.P1], surface.Points[f.P2], surface.Points[f.P3]
		if isDegenerate(a, b, c) {
			ts.skippedDegens++
			ts.faceBBoxes[i] = bbox2D{}
			continue
		}
		bb := bbox2D{
			minX: minOf3(a.X, b.X, c.X), maxX: maxOf3(a.X, b.X, c.X),
			minY: minOf3(a.Y, b.Y, c.Y), maxY: maxOf3(a.Y, b.Y, c.Y),
		}
		ts.faceBBoxes[i] = bb
		ts.registerFace(int32(i), bb)
	}

	return ts, nil
}

func clampBucketDim(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

func isDegenerate(a, b, c Point3D) bool {
	area2 := (b.X-a.X)*(c.Y-a.Y) - (c.X-a.X)*(b.Y-a.Y)
	return math.Abs(area2) < 1e-9
}

func minOf3(a, b, c float64) float64 { return math.Min(a, math.Min(b, c)) }
func maxOf3(a, b, c float64) float64 { return math.Max(a, math.Max(b, c)) }

// registerFace adds face index i to every bucket its bounding box overlaps.
func (ts *TriangulationSource) registerFace(i int32, bb bbox2D) {
	c0, c1 := ts.bucketCol(bb.minX), ts.bucketCol(bb.maxX)
	r0, r1 := ts.bucketRow(bb.minY), ts.bucketRow(bb.maxY)
	for r := r0; r <= r1; r++ {
		for c := c0; c <= c1; c++ {
			idx := r*ts.cols + c
			ts.buckets[idx] = append(ts.buckets[idx], i)
		}
	}
}

func (ts *TriangulationSource) bucketCol(x float64) int {
	if ts.cellW == 0 {
		return 0
	}
	c := int((x - ts.bounds.MinX) / ts.cellW)
	if c < 0 {
		c = 0
	}
	if c >= ts.cols {
		c = ts.cols - 1
	}
	return c
}

func (ts *TriangulationSource) bucketRow(y float64) int {
	if ts.cellH == 0 {
		return 0
	}
	r := int((y - ts.bounds.MinY) / ts.cellH)
	if r < 0 {
		r = 0
	}
	if r >= ts.rows {
		r = ts.rows - 1
	}
	return r
}

// Bounds returns the surface's tight XY/Z bounding box.
func (ts *TriangulationSource) Bounds() GridBounds { return ts.bounds }

// Surface returns the indexed surface.
func (ts *TriangulationSource) Surface() *Surface { return ts.surface }

// FindFace returns the index of the first face containing (x, y) by an
// absolute-tolerance barycentric test (spec section 4.4: tolerance 1e-9 on
// signed areas, inclusive on edges). Face orientation is not imposed: a
// point is inside when the three signed areas do not mix signs, so CW and
// CCW triangles are accepted identically (spec section 9, open question (c)).
func (ts *TriangulationSource) FindFace(x, y float64) (int, bool) {
	if x < ts.bounds.MinX || x > ts.bounds.MaxX || y < ts.bounds.MinY || y > ts.bounds.MaxY {
		return -1, false
	}
	col, row := ts.bucketCol(x), ts.bucketRow(y)
	for _, i := range ts.buckets[row*ts.cols+col] {
		if ts.containsPoint(int(i), x, y) {
			return int(i), true
		}
	}
	return -1, false
}

// containsPoint runs the barycentric containment test for face i.
func (ts *TriangulationSource) containsPoint(i int, x, y float64) bool {
	f := ts.surface.Faces[i]
	a, b, c := ts.surface.Points[f.P1], ts.surface.Points[f.P2], ts.surface.Points[f.P3]
	const tol = 1e-9

	d1 := signedArea2(x, y, a.X, a.Y, b.X, b.Y)
	d2 := signedArea2(x, y, b.X, b.Y, c.X, c.Y)
	d3 := signedArea2(x, y, c.X, c.Y, a.X, a.Y)

	hasNeg := d1 < -tol || d2 < -tol || d3 < -tol
	hasPos := d1 > tol || d2 > tol || d3 > tol
	return !(hasNeg && hasPos)
}

func signedArea2(px, py, ax, ay, bx, by float64) float64 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

// Barycentric computes the barycentric weights (u, v, w) of (x, y) with
// respect to face i, in the fixed vertex order (A, B, C) the determinism
// contract (spec section 4.5) requires.
func (ts *TriangulationSource) Barycentric(i int, x, y float64) (u, v, w float64) {
	f := ts.surface.Faces[i]
	a, b, c := ts.surface.Points[f.P1], ts.surface.Points[f.P2], ts.surface.Points[f.P3]

	denom := (b.Y-c.Y)*(a.X-c.X) + (c.X-b.X)*(a.Y-c.Y)
	if denom == 0 {
		return 1, 0, 0
	}
	u = ((b.Y-c.Y)*(x-c.X) + (c.X-b.X)*(y-c.Y)) / denom
	v = ((c.Y-a.Y)*(x-c.X) + (a.X-c.X)*(y-c.Y)) / denom
	w = 1 - u - v
	return
}

// InterpolateZ returns the z value at (x, y) within face i, computed by
// barycentric interpolation of the three vertex z's in the fixed order
// A, B, C (spec section 4.5 determinism contract).
func (ts *TriangulationSource) InterpolateZ(i int, x, y float64) float64 {
	f := ts.surface.Faces[i]
	a, b, c := ts.surface.Points[f.P1], ts.surface.Points[f.P2], ts.surface.Points[f.P3]
	u, v, w := ts.Barycentric(i, x, y)
	return u*a.Z + v*b.Z + w*c.Z
}
