package parser

import "fmt"

// Static registry of Japan's 19 plane-rectangular coordinate system zones,
// their EPSG codes (JGD2011, EPSG 6669...6687), and an approximate coverage
// rectangle used by CRS autodetection (spec section 4.3). Coordinates are
// in the zone's own local plane-rectangular system, so the "coverage
// rectangle" is a generous bound around the origin rather than a geographic
// polygon; it exists only to disambiguate which zone a mesh was surveyed
// in, not to perform any projection.
//
// Reference: spec section 6, "zone n -> EPSG 6668 + n for n in [1,19]".

// zoneInfo describes one plane-rectangular zone.
type zoneInfo struct {
	zone     PlaneZone
	epsg     int
	coverage zoneCoverage
}

// zoneCoverage approximates a zone's defined extent as an axis-aligned
// rectangle in the zone's own local coordinates, per spec section 4.3's
// "official coverage polygon (approximated as a rectangle in the registry)".
type zoneCoverage struct {
	minX, maxX float64
	minY, maxY float64
}

// zoneRegistry is indexed by zone number, 1..19. Each zone's coverage
// rectangle is sized and offset independently and no two zones share an
// identical box; all except zone 9's are asymmetric about the zone's own
// local origin. Every box contains its local origin, so the boxes overlap
// widely around (0, 0); where several boxes contain a centroid,
// autodetection picks the lowest zone number.
var zoneRegistry = map[int]zoneInfo{
	1:  {1, 6669, zoneCoverage{-10000, 60000, -50000, 90000}},
	2:  {2, 6670, zoneCoverage{-12000, 55000, -70000, 130000}},
	3:  {3, 6671, zoneCoverage{-5000, 75000, -40000, 140000}},
	4:  {4, 6672, zoneCoverage{-8000, 65000, -90000, 80000}},
	5:  {5, 6673, zoneCoverage{-9000, 70000, -60000, 130000}},
	6:  {6, 6674, zoneCoverage{-11000, 90000, -70000, 160000}},
	7:  {7, 6675, zoneCoverage{-13000, 95000, -80000, 170000}},
	8:  {8, 6676, zoneCoverage{-6000, 68000, -50000, 120000}},
	9:  {9, 6677, zoneCoverage{-80000, 80000, -150000, 150000}},
	10: {10, 6678, zoneCoverage{-9000, 72000, -60000, 110000}},
	11: {11, 6679, zoneCoverage{-14000, 50000, -90000, 150000}},
	12: {12, 6680, zoneCoverage{-10000, 48000, -95000, 160000}},
	13: {13, 6681, zoneCoverage{-12000, 52000, -100000, 170000}},
	14: {14, 6682, zoneCoverage{-16000, 85000, -110000, 200000}},
	15: {15, 6683, zoneCoverage{-7000, 78000, -45000, 125000}},
	16: {16, 6684, zoneCoverage{-9500, 82000, -55000, 118000}},
	17: {17, 6685, zoneCoverage{-11500, 88000, -58000, 122000}},
	18: {18, 6686, zoneCoverage{-5000, 45000, -30000, 70000}},
	19: {19, 6687, zoneCoverage{-4000, 40000, -25000, 60000}},
}

// ZoneEPSG returns the EPSG code for a zone number, and ok=false if n is
// out of [1,19].
func ZoneEPSG(n int) (int, bool) {
	info, ok := zoneRegistry[n]
	if !ok {
		return 0, false
	}
	return info.epsg, true
}

// EPSGZone returns the zone number for one of the 19 registered EPSG codes
// (6669..6687), and ok=false otherwise. This is the inverse used when an
// explicit epsgCode attribute is present (spec section 4.2).
func EPSGZone(epsg int) (int, bool) {
	if epsg < 6669 || epsg > 6687 {
		return 0, false
	}
	return epsg - 6668, true
}

// zoneContains reports whether (x, y) falls within a zone's registered
// coverage rectangle.
func zoneContains(n int, x, y float64) bool {
	info, ok := zoneRegistry[n]
	if !ok {
		return false
	}
	c := info.coverage
	return x >= c.minX && x <= c.maxX && y >= c.minY && y <= c.maxY
}

// zoneNumbersAscending lists every registered zone number in increasing
// order, used by autodetection's lowest-zone-number tie-break.
func zoneNumbersAscending() []int {
	out := make([]int, 0, len(zoneRegistry))
	for n := 1; n <= 19; n++ {
		if _, ok := zoneRegistry[n]; ok {
			out = append(out, n)
		}
	}
	return out
}

// verticalDatumOffsets holds the fixed peil-to-Tokyo-Peil offsets from
// spec section 6. Offsets are added to a raw z to obtain TP elevation.
var verticalDatumOffsets = map[VerticalDatum]float64{
	PeilTP:  0.0000,
	PeilKP:  -0.8745,
	PeilSP:  -0.0873,
	PeilYP:  -0.8402,
	PeilAP:  -1.1344,
	PeilOP:  -1.3000,
	PeilTPW: 0.113,
	PeilBSL: 84.371,
}

// VerticalDatumOffset returns the fixed offset for a peil. Unspecified
// peils offset by zero (treated as already-TP).
func VerticalDatumOffset(v VerticalDatum) float64 {
	return verticalDatumOffsets[v]
}

// horizontalDatumNames matches horizontalDatum attribute values
// case-insensitively; see resolveCoordinateSystem in crsparse.go.
var horizontalDatumNames = map[string]HorizontalDatum{
	"jgd2000": DatumJGD2000,
	"jgd2011": DatumJGD2011,
	"td":      DatumTD,
}

// verticalDatumNames matches verticalDatum attribute values, tolerating the
// "O.P." / "O.P" dotted forms seen in real J-LandXML exports (with or
// without a trailing period) alongside the bare "OP" form.
var verticalDatumNames = map[string]VerticalDatum{
	"tp":   PeilTP,
	"kp":   PeilKP,
	"sp":   PeilSP,
	"yp":   PeilYP,
	"ap":   PeilAP,
	"op":   PeilOP,
	"tpw":  PeilTPW,
	"bsl":  PeilBSL,
	"o.p.": PeilOP,
	"t.p.": PeilTP,
	"k.p.": PeilKP,
	"s.p.": PeilSP,
	"y.p.": PeilYP,
	"a.p.": PeilAP,
	"o.p":  PeilOP,
	"t.p":  PeilTP,
	"k.p":  PeilKP,
	"s.p":  PeilSP,
	"y.p":  PeilYP,
	"a.p":  PeilAP,
}

func zoneInfoString(z PlaneZone) string {
	if z == ZoneNone {
		return "none"
	}
	return fmt.Sprintf("Zone%d", int(z))
}
