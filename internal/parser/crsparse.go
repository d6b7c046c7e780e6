package parser

import (
	"regexp"
	"strconv"
	"strings"
)

// zoneNamePattern matches the J-LandXML horizontalCoordinateSystemName
// grammar: a zone number 1..19 followed by the literal "(X,Y)" with
// arbitrary interior whitespace, e.g. "9(X,Y)" or " 9 ( X , Y ) ".
var zoneNamePattern = regexp.MustCompile(`^\s*(\d{1,2})\s*\(\s*X\s*,\s*Y\s*\)\s*$`)

// parseZoneName parses a horizontalCoordinateSystemName value, returning
// the zone number or InvalidZoneNameError if it does not match the grammar
// or falls outside [1,19]. Spec section 8 property 3.
func parseZoneName(s string) (int, error) {
	m := zoneNamePattern.FindStringSubmatch(s)
	if m == nil {
		return 0, &InvalidZoneNameError{Input: s}
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < 1 || n > 19 {
		return 0, &InvalidZoneNameError{Input: s}
	}
	return n, nil
}

// rawCoordinateSystem is the attribute bag collected while walking the
// CoordinateSystem element, before resolution against the registry.
type rawCoordinateSystem struct {
	name                           string
	desc                           string
	epsgCode                       string
	proj4String                    string
	horizontalDatum                string
	verticalDatum                  string
	horizontalCoordinateSystemName string
	properties                     map[string]string
}

// resolveCoordinateSystem converts a rawCoordinateSystem into a typed
// CoordinateSystem, applying the precedence and tie-break rules of spec
// section 4.2. Attribute parse failures never fail the whole ingestion:
// on error the affected field is simply left unresolved (spec section 4.1,
// "Coordinate-system attribute parse failures degrade to 'unspecified
// CRS'").
func resolveCoordinateSystem(raw rawCoordinateSystem) *CoordinateSystem {
	cs := &CoordinateSystem{
		Name:        raw.name,
		Desc:        raw.desc,
		Proj4String: raw.proj4String,
		Metadata:    map[string]string{},
	}

	if raw.horizontalDatum != "" {
		if d, ok := horizontalDatumNames[strings.ToLower(raw.horizontalDatum)]; ok {
			cs.HorizontalDatum = d
		}
	}
	if raw.verticalDatum != "" {
		key := strings.ToLower(strings.TrimSpace(raw.verticalDatum))
		if v, ok := verticalDatumNames[key]; ok {
			cs.VerticalDatum = v
		}
	}

	var epsgZone int
	var epsgResolved bool
	if raw.epsgCode != "" {
		if code, err := strconv.Atoi(strings.TrimSpace(raw.epsgCode)); err == nil {
			v := code
			cs.EPSGCode = &v
			if zone, ok := EPSGZone(code); ok {
				epsgZone = zone
				epsgResolved = true
				cs.PlaneZone = PlaneZone(zone)
			}
		}
	}

	if raw.horizontalCoordinateSystemName != "" {
		if zone, err := parseZoneName(raw.horizontalCoordinateSystemName); err == nil {
			if epsgResolved {
				if zone != epsgZone {
					cs.Warnings = append(cs.Warnings, warnZoneConflict(epsgZone, zone))
				}
				// explicit epsgCode wins; horizontalCoordinateSystemName is
				// only advisory once epsgCode has resolved a zone.
			} else {
				cs.PlaneZone = PlaneZone(zone)
				if epsg, ok := ZoneEPSG(zone); ok {
					v := epsg
					cs.EPSGCode = &v
				}
			}
		}
	}

	for label, value := range raw.properties {
		if label == "differTP" {
			if f, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err == nil {
				v := f
				cs.DifferTP = &v
				continue
			}
		}
		cs.Metadata[label] = value
	}

	if cs.VerticalDatum != PeilTP && cs.VerticalDatum != PeilUnspecified && cs.DifferTP == nil {
		cs.Warnings = append(cs.Warnings, "vertical datum "+cs.VerticalDatum.String()+" set without a differTP offset")
	}

	return cs
}

func warnZoneConflict(epsgZone, nameZone int) string {
	return "epsgCode zone " + strconv.Itoa(epsgZone) + " conflicts with horizontalCoordinateSystemName zone " +
		strconv.Itoa(nameZone) + "; epsgCode wins"
}
