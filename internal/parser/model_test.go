package parser

import "testing"

func TestSurfaceBounds(t *testing.T) {
	s := &Surface{
		Points: []Point3D{
			{ID: 1, X: 0, Y: 0, Z: 10},
			{ID: 2, X: 100, Y: 0, Z: 12},
			{ID: 3, X: 50, Y: 100, Z: 15},
		},
	}

	b, ok := s.Bounds()
	if !ok {
		t.Fatal("expected ok=true for non-empty surface")
	}
	if b.MinX != 0 || b.MaxX != 100 || b.MinY != 0 || b.MaxY != 100 || b.MinZ != 10 || b.MaxZ != 15 {
		t.Errorf("unexpected bounds: %+v", b)
	}
}

func TestSurfaceBoundsEmpty(t *testing.T) {
	s := &Surface{}
	if _, ok := s.Bounds(); ok {
		t.Error("expected ok=false for empty surface")
	}
}

func TestSurfaceCentroid(t *testing.T) {
	s := &Surface{
		Points: []Point3D{
			{X: 0, Y: 0},
			{X: 10, Y: 0},
			{X: 5, Y: 10},
		},
	}
	x, y, ok := s.Centroid()
	if !ok {
		t.Fatal("expected ok=true")
	}
	if x != 5 || y != (10.0/3.0) {
		t.Errorf("centroid = (%v, %v)", x, y)
	}
}

func TestDemGridWorldToPixelCenter(t *testing.T) {
	g := &DemGrid{
		Rows: 3, Cols: 3,
		OriginX: 100, OriginY: 200,
		CellX: 1, CellY: 1,
	}

	x, y := g.WorldToPixelCenter(0, 0)
	if x != 100 || y != 200 {
		t.Errorf("pixel (0,0) = (%v, %v), want (100, 200)", x, y)
	}

	x, y = g.WorldToPixelCenter(1, 1)
	if x != 101 || y != 199 {
		t.Errorf("pixel (1,1) = (%v, %v), want (101, 199)", x, y)
	}
}

func TestDemGridGeoTransform(t *testing.T) {
	g := &DemGrid{
		OriginX: 100, OriginY: 200,
		CellX: 2, CellY: 2,
	}

	gt := g.GeoTransform()
	want := [6]float64{99, 2, 0, 201, 0, -2}
	if gt != want {
		t.Errorf("GeoTransform() = %v, want %v", gt, want)
	}
}

func TestDemGridAtSet(t *testing.T) {
	g := &DemGrid{Rows: 2, Cols: 2, Values: make([]float32, 4)}
	g.Set(1, 1, 42.5)
	if v := g.At(1, 1); v != 42.5 {
		t.Errorf("At(1,1) = %v, want 42.5", v)
	}
	if v := g.At(0, 0); v != 0 {
		t.Errorf("At(0,0) = %v, want 0", v)
	}
}

func TestVerticalDatumString(t *testing.T) {
	tests := []struct {
		v    VerticalDatum
		want string
	}{
		{PeilTP, "TP"},
		{PeilOP, "OP"},
		{PeilBSL, "BSL"},
		{PeilUnspecified, "unspecified"},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("%v.String() = %q, want %q", int(tt.v), got, tt.want)
		}
	}
}

func TestSurfaceTypeFromString(t *testing.T) {
	tests := []struct {
		in   string
		want SurfaceType
	}{
		{"EG", SurfaceExistingGround},
		{"existing", SurfaceExistingGround},
		{"DG", SurfaceDesignGround},
		{"design", SurfaceDesignGround},
		{"", SurfaceOther},
		{"something-else", SurfaceOther},
	}
	for _, tt := range tests {
		if got := surfaceTypeFromString(tt.in); got != tt.want {
			t.Errorf("surfaceTypeFromString(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
