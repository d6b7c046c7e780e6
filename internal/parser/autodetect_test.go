package parser

import "testing"

// TestAutodetectZoneS3 reproduces the autodetect scenario: a surface whose
// points cluster around (-17000, -8000), inside zone 9's registered
// coverage, resolves to Zone9 / EPSG 6677.
func TestAutodetectZoneS3(t *testing.T) {
	s := &Surface{
		Name: "autodetect",
		Points: []Point3D{
			{X: -17010, Y: -8005, Z: 1},
			{X: -16990, Y: -7995, Z: 2},
			{X: -17000, Y: -8010, Z: 3},
		},
	}

	res, err := AutodetectZone(s)
	if err != nil {
		t.Fatalf("AutodetectZone: %v", err)
	}
	if res.Zone != PlaneZone(9) {
		t.Errorf("Zone = %v, want 9", res.Zone)
	}
	if res.EPSGCode == nil || *res.EPSGCode != 6677 {
		t.Errorf("EPSGCode = %v, want 6677", res.EPSGCode)
	}
}

func TestAutodetectZoneNoCandidate(t *testing.T) {
	s := &Surface{
		Name: "far-away",
		Points: []Point3D{
			{X: 1e9, Y: 1e9, Z: 0},
		},
	}
	res, err := AutodetectZone(s)
	if err != nil {
		t.Fatalf("AutodetectZone: %v", err)
	}
	if res.Zone != ZoneNone {
		t.Errorf("Zone = %v, want ZoneNone", res.Zone)
	}
}

func TestAutodetectZoneEmptySurface(t *testing.T) {
	_, err := AutodetectZone(&Surface{Name: "empty"})
	if _, ok := err.(*EmptySurfaceError); !ok {
		t.Fatalf("expected *EmptySurfaceError, got %v", err)
	}
}

func TestResolveCRSPrefersExistingZone(t *testing.T) {
	cs := &CoordinateSystem{PlaneZone: PlaneZone(3)}
	s := &Surface{Points: []Point3D{{X: -17000, Y: -8000}}}

	out, err := ResolveCRS(cs, s)
	if err != nil {
		t.Fatalf("ResolveCRS: %v", err)
	}
	if out.PlaneZone != PlaneZone(3) {
		t.Errorf("expected given zone 3 to be preserved, got %v", out.PlaneZone)
	}
}

func TestResolveCRSFallsBackToAutodetect(t *testing.T) {
	s := &Surface{Points: []Point3D{{X: -17000, Y: -8000}}}

	out, err := ResolveCRS(nil, s)
	if err != nil {
		t.Fatalf("ResolveCRS: %v", err)
	}
	if out.PlaneZone != PlaneZone(9) {
		t.Errorf("PlaneZone = %v, want 9", out.PlaneZone)
	}
	if len(out.Warnings) == 0 {
		t.Error("expected an autodetection warning")
	}
}

func TestResolveCRSUnresolvable(t *testing.T) {
	s := &Surface{Points: []Point3D{{X: 1e9, Y: 1e9}}}
	_, err := ResolveCRS(nil, s)
	if _, ok := err.(*CrsUnresolvedError); !ok {
		t.Fatalf("expected *CrsUnresolvedError, got %v", err)
	}
}
