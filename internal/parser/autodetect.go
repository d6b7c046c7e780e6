package parser

// AutodetectResult reports the outcome of a CRS autodetection pass over a
// surface with no resolved coordinate system (spec section 4.3).
type AutodetectResult struct {
	// Zone is the detected plane-rectangular zone, or ZoneNone if the
	// surface's centroid fell outside every registered zone's coverage.
	Zone PlaneZone

	// EPSGCode mirrors Zone through the fixed zone -> EPSG mapping
	// (EPSG 6668 + zone), nil when Zone is ZoneNone.
	EPSGCode *int

	// CentroidX, CentroidY are the surface centroid used for the scan.
	CentroidX, CentroidY float64

	// Candidates lists every zone whose coverage rectangle contained the
	// centroid, in ascending zone-number order; len > 1 means the zones'
	// approximate coverage rectangles overlapped at this point, and Zone
	// was resolved by the lowest-zone-number tie-break (spec section 4.3).
	Candidates []int
}

// AutodetectZone infers a surface's plane-rectangular zone from its point
// centroid when the document carried no usable CoordinateSystem (spec
// section 4.3). It never consults the surface's points beyond their
// centroid, and never mutates the surface.
func AutodetectZone(s *Surface) (AutodetectResult, error) {
	cx, cy, ok := s.Centroid()
	if !ok {
		return AutodetectResult{}, &EmptySurfaceError{Surface: s.Name}
	}

	res := AutodetectResult{CentroidX: cx, CentroidY: cy}
	for _, n := range zoneNumbersAscending() {
		if zoneContains(n, cx, cy) {
			res.Candidates = append(res.Candidates, n)
		}
	}

	if len(res.Candidates) == 0 {
		res.Zone = ZoneNone
		return res, nil
	}

	chosen := res.Candidates[0]
	res.Zone = PlaneZone(chosen)
	if epsg, ok := ZoneEPSG(chosen); ok {
		res.EPSGCode = &epsg
	}
	return res, nil
}

// ResolveCRS returns cs unchanged if it already carries an EPSG code or a
// resolved zone, otherwise attempts autodetection from the surface centroid
// and returns a new CoordinateSystem reflecting the detected zone. Callers
// that need to distinguish "detected" from "given" should inspect the
// returned AutodetectResult's Candidates field directly via AutodetectZone.
func ResolveCRS(cs *CoordinateSystem, s *Surface) (*CoordinateSystem, error) {
	if cs != nil && (cs.EPSGCode != nil || cs.PlaneZone != ZoneNone) {
		return cs, nil
	}

	res, err := AutodetectZone(s)
	if err != nil {
		return nil, err
	}
	if res.Zone == ZoneNone {
		return nil, &CrsUnresolvedError{Reason: "no registered zone covers the surface centroid"}
	}

	out := &CoordinateSystem{}
	if cs != nil {
		*out = *cs
	}
	out.PlaneZone = res.Zone
	out.EPSGCode = res.EPSGCode
	out.Warnings = append(out.Warnings, "coordinate system autodetected from surface centroid")
	return out, nil
}
