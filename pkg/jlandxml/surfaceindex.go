package jlandxml

import (
	"fmt"
	"sort"

	"github.com/dhconnelly/rtreego"
)

// SurfaceIndex provides fast spatial queries over a collection of ingested
// surfaces, adapted from the teacher's chart index: an R-tree over each
// surface's tight XY bounding box, so a caller with a region of interest
// can find candidate surfaces in O(log N) instead of scanning every
// surface in a document set.
type SurfaceIndex struct {
	entries []SurfaceEntry
	rtree   *rtreego.Rtree
}

// SurfaceEntry is indexed metadata for one surface.
type SurfaceEntry struct {
	DocumentPath string
	Name         string
	Type         SurfaceType
	Bounds       Bounds
	PointCount   int
	FaceCount    int
}

// surfaceSpatial adapts SurfaceEntry to rtreego.Spatial.
type surfaceSpatial struct{ entry SurfaceEntry }

func (s surfaceSpatial) Bounds() rtreego.Rect {
	b := s.entry.Bounds
	point := rtreego.Point{b.MinX, b.MinY}
	lengths := []float64{
		maxf(b.MaxX-b.MinX, 1e-9),
		maxf(b.MaxY-b.MinY, 1e-9),
	}
	rect, _ := rtreego.NewRect(point, lengths)
	return rect
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// BuildSurfaceIndex indexes the surfaces of one or more already-ingested
// documents. docPaths and docs must be the same length; docPaths is carried
// through to SurfaceEntry.DocumentPath for later re-loading.
func BuildSurfaceIndex(docPaths []string, docs []*Document) (*SurfaceIndex, error) {
	if len(docPaths) != len(docs) {
		return nil, fmt.Errorf("jlandxml: docPaths and docs length mismatch (%d != %d)", len(docPaths), len(docs))
	}

	var entries []SurfaceEntry
	for i, doc := range docs {
		for _, s := range doc.Surfaces() {
			b, ok := s.Bounds()
			if !ok {
				continue
			}
			entries = append(entries, SurfaceEntry{
				DocumentPath: docPaths[i],
				Name:         s.Name(),
				Type:         s.Type(),
				Bounds:       b,
				PointCount:   s.PointCount(),
				FaceCount:    s.FaceCount(),
			})
		}
	}

	rtree := rtreego.NewTree(2, 25, 50)
	for _, e := range entries {
		rtree.Insert(surfaceSpatial{entry: e})
	}

	return &SurfaceIndex{entries: entries, rtree: rtree}, nil
}

// Query returns every indexed surface whose bounds intersect region,
// sorted by descending face count (largest surfaces first).
func (idx *SurfaceIndex) Query(region Bounds) []SurfaceEntry {
	point := rtreego.Point{region.MinX, region.MinY}
	lengths := []float64{
		maxf(region.MaxX-region.MinX, 1e-9),
		maxf(region.MaxY-region.MinY, 1e-9),
	}
	rect, _ := rtreego.NewRect(point, lengths)

	hits := idx.rtree.SearchIntersect(rect)
	result := make([]SurfaceEntry, 0, len(hits))
	for _, h := range hits {
		result = append(result, h.(surfaceSpatial).entry)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].FaceCount > result[j].FaceCount
	})
	return result
}

// Count returns the total number of indexed surfaces.
func (idx *SurfaceIndex) Count() int { return len(idx.entries) }

// All returns every indexed surface entry.
func (idx *SurfaceIndex) All() []SurfaceEntry { return idx.entries }
