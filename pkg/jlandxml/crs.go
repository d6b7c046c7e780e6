package jlandxml

import (
	"github.com/beetlebugorg/jlandxml/internal/parser"
)

// HorizontalDatum enumerates the horizontal geodetic datums recognized in
// a CoordinateSystem element.
type HorizontalDatum int

const (
	DatumUnspecified HorizontalDatum = HorizontalDatum(parser.DatumUnspecified)
	DatumJGD2000     HorizontalDatum = HorizontalDatum(parser.DatumJGD2000)
	DatumJGD2011     HorizontalDatum = HorizontalDatum(parser.DatumJGD2011)
	DatumTD          HorizontalDatum = HorizontalDatum(parser.DatumTD)
)

func (d HorizontalDatum) String() string { return parser.HorizontalDatum(d).String() }

// VerticalDatum enumerates the Japanese local vertical datums (peils).
type VerticalDatum int

const (
	PeilUnspecified VerticalDatum = VerticalDatum(parser.PeilUnspecified)
	PeilTP          VerticalDatum = VerticalDatum(parser.PeilTP)
	PeilKP          VerticalDatum = VerticalDatum(parser.PeilKP)
	PeilSP          VerticalDatum = VerticalDatum(parser.PeilSP)
	PeilYP          VerticalDatum = VerticalDatum(parser.PeilYP)
	PeilAP          VerticalDatum = VerticalDatum(parser.PeilAP)
	PeilOP          VerticalDatum = VerticalDatum(parser.PeilOP)
	PeilTPW         VerticalDatum = VerticalDatum(parser.PeilTPW)
	PeilBSL         VerticalDatum = VerticalDatum(parser.PeilBSL)
)

func (v VerticalDatum) String() string { return parser.VerticalDatum(v).String() }

// Offset returns the fixed peil-to-Tokyo-Peil offset for this datum.
func (v VerticalDatum) Offset() float64 { return parser.VerticalDatumOffset(parser.VerticalDatum(v)) }

// PlaneZone is one of Japan's 19 plane-rectangular coordinate system zones.
type PlaneZone int

const ZoneNone PlaneZone = PlaneZone(parser.ZoneNone)

// EPSG returns the EPSG code registered for zone z.
func (z PlaneZone) EPSG() (int, bool) { return parser.ZoneEPSG(int(z)) }

// CoordinateSystem carries parsed or autodetected coordinate-system
// metadata for a LandXML document.
type CoordinateSystem struct {
	Name            string
	Desc            string
	EPSGCode        *int
	Proj4String     string
	HorizontalDatum HorizontalDatum
	VerticalDatum   VerticalDatum
	PlaneZone       PlaneZone

	// DifferTP is the additive vertical-datum correction parsed from the
	// document's differTP property, nil if absent (spec section 6).
	DifferTP *float64

	Metadata map[string]string
	Warnings []string
}

// VerticalOffset returns the effective additive elevation correction: the
// document's explicit DifferTP, or zero if it is absent. A VerticalDatum
// given without a differTP is tolerated (spec section 3) but applies no
// correction on its own; the rasterizer's correction step is defined only
// "when a differ_tp is present" (spec section 4.5).
func (cs *CoordinateSystem) VerticalOffset() float64 {
	if cs.DifferTP != nil {
		return *cs.DifferTP
	}
	return 0
}

func convertCoordinateSystem(cs *parser.CoordinateSystem) *CoordinateSystem {
	if cs == nil {
		return nil
	}
	return &CoordinateSystem{
		Name:            cs.Name,
		Desc:            cs.Desc,
		EPSGCode:        cs.EPSGCode,
		Proj4String:     cs.Proj4String,
		HorizontalDatum: HorizontalDatum(cs.HorizontalDatum),
		VerticalDatum:   VerticalDatum(cs.VerticalDatum),
		PlaneZone:       PlaneZone(cs.PlaneZone),
		DifferTP:        cs.DifferTP,
		Metadata:        cs.Metadata,
		Warnings:        cs.Warnings,
	}
}
