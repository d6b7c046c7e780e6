package parser

import "testing"

func TestDefaultWriteOptions(t *testing.T) {
	opts := DefaultWriteOptions()
	if opts.Compress != "LZW" {
		t.Errorf("Compress = %q, want LZW", opts.Compress)
	}
	if !opts.Tiled {
		t.Error("expected Tiled=true by default")
	}
}

// TestGeoTransformInverseMapsOriginToPixelCenter verifies property 2: the
// inverse of the declared geotransform maps (origin_x, origin_y) back to
// fractional pixel (0.5, 0.5), and the four corner pixel centers match
// WorldToPixelCenter exactly.
func TestGeoTransformInverseMapsOriginToPixelCenter(t *testing.T) {
	g := &DemGrid{
		Rows: 4, Cols: 5,
		OriginX: 1000, OriginY: 2000,
		CellX: 2.5, CellY: 2.5,
	}
	gt := g.GeoTransform()

	// Inverse of a north-up, non-rotated geotransform:
	//   col = (x - gt[0]) / gt[1]
	//   row = (y - gt[3]) / gt[5]
	col := (g.OriginX - gt[0]) / gt[1]
	row := (g.OriginY - gt[3]) / gt[5]
	if col != 0.5 {
		t.Errorf("inverse col = %v, want 0.5", col)
	}
	if row != 0.5 {
		t.Errorf("inverse row = %v, want 0.5", row)
	}

	corners := [][2]int{{0, 0}, {0, g.Cols - 1}, {g.Rows - 1, 0}, {g.Rows - 1, g.Cols - 1}}
	for _, c := range corners {
		wantX, wantY := g.WorldToPixelCenter(c[0], c[1])
		gotX := gt[0] + (float64(c[1])+0.5)*gt[1]
		gotY := gt[3] + (float64(c[0])+0.5)*gt[5]
		if gotX != wantX || gotY != wantY {
			t.Errorf("corner %v: geotransform gives (%v,%v), WorldToPixelCenter gives (%v,%v)",
				c, gotX, gotY, wantX, wantY)
		}
	}
}
