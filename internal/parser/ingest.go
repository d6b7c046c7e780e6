package parser

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

// IngestOptions configures the streaming ingester.
type IngestOptions struct {
	// SurfaceNameFilter, if non-empty, restricts ingestion to surfaces
	// whose name appears in the set; all other surfaces are skipped
	// without materializing their point/face tables.
	SurfaceNameFilter []string
}

// DefaultIngestOptions returns an IngestOptions with no filtering.
func DefaultIngestOptions() IngestOptions {
	return IngestOptions{}
}

// Ingester walks a LandXML byte stream and extracts the entities the
// raster core needs, without holding the whole document in memory.
type Ingester interface {
	Ingest(r io.Reader) (*Document, error)
	IngestWithOptions(r io.Reader, opts IngestOptions) (*Document, error)
}

type defaultIngester struct{}

// NewIngester returns an Ingester with default behavior.
func NewIngester() Ingester {
	return &defaultIngester{}
}

func (p *defaultIngester) Ingest(r io.Reader) (*Document, error) {
	return p.IngestWithOptions(r, DefaultIngestOptions())
}

// IngestWithOptions runs the event-driven walk described in spec
// section 4.1: a path-stack dispatch over StartElement/CharData/EndElement
// that materializes only CoordinateSystem, Surface/Definition/Pnts/P and
// .../Faces/F, and the top-level Feature element (recognized, ignored).
func (p *defaultIngester) IngestWithOptions(r io.Reader, opts IngestOptions) (*Document, error) {
	dec := xml.NewDecoder(stripBOM(r))
	dec.CharsetReader = japaneseCharsetReader

	doc := &Document{}
	var filter map[string]bool
	if len(opts.SurfaceNameFilter) > 0 {
		filter = make(map[string]bool, len(opts.SurfaceNameFilter))
		for _, n := range opts.SurfaceNameFilter {
			filter[n] = true
		}
	}

	var stack []string
	var curSurface *Surface
	var surfaceOK bool
	var pointIndex map[int]int
	var curPointID int
	var curRawCS *rawCoordinateSystem
	var text strings.Builder

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &XmlError{Kind: "token", ByteOffset: dec.InputOffset(), Err: err}
		}

		switch t := tok.(type) {
		case xml.StartElement:
			stack = append(stack, t.Name.Local)
			path := strings.Join(stack, "/")

			switch path {
			case "LandXML":
				doc.Version = attrOf(t, "version")

			case "LandXML/CoordinateSystem":
				raw := &rawCoordinateSystem{properties: map[string]string{}}
				raw.name = attrOf(t, "name")
				raw.desc = attrOf(t, "desc")
				raw.epsgCode = attrOf(t, "epsgCode")
				raw.proj4String = attrOf(t, "proj4String")
				raw.horizontalDatum = attrOf(t, "horizontalDatum")
				raw.verticalDatum = attrOf(t, "verticalDatum")
				raw.horizontalCoordinateSystemName = attrOf(t, "horizontalCoordinateSystemName")
				curRawCS = raw

			case "LandXML/CoordinateSystem/Feature/Property":
				if curRawCS != nil {
					if label := attrOf(t, "label"); label != "" {
						curRawCS.properties[label] = attrOf(t, "value")
					}
				}

			case "LandXML/Surface":
				name := attrOf(t, "name")
				if filter != nil && !filter[name] {
					if err := dec.Skip(); err != nil {
						return nil, &XmlError{Kind: "skip", ByteOffset: dec.InputOffset(), Err: err}
					}
					stack = stack[:len(stack)-1]
					continue
				}
				curSurface = &Surface{
					Name:        name,
					Desc:        attrOf(t, "desc"),
					SurfaceType: surfaceTypeFromString(attrOf(t, "surfType")),
				}
				surfaceOK = true
				pointIndex = make(map[int]int)

			case "LandXML/Surface/Definition":
				if curSurface == nil {
					continue
				}
				surfType := attrOf(t, "surfType")
				if surfType != "" && surfType != "TIN" {
					doc.Warnings = append(doc.Warnings,
						fmt.Sprintf("surface %q: skipping non-TIN definition (surfType=%s)", curSurface.Name, surfType))
					if err := dec.Skip(); err != nil {
						return nil, &XmlError{Kind: "skip", ByteOffset: dec.InputOffset(), Err: err}
					}
					// A surface whose definition is not a TIN is not emitted.
					curSurface = nil
					stack = stack[:len(stack)-1]
					continue
				}

			case "LandXML/Surface/Definition/Pnts/P":
				text.Reset()
				id, err := strconv.Atoi(attrOf(t, "id"))
				if err != nil {
					id = len(pointIndex) + 1
				}
				curPointID = id

			case "LandXML/Surface/Definition/Faces/F":
				text.Reset()
			}

		case xml.CharData:
			switch strings.Join(stack, "/") {
			case "LandXML/Surface/Definition/Pnts/P", "LandXML/Surface/Definition/Faces/F":
				text.Write(t)
			}

		case xml.EndElement:
			path := strings.Join(stack, "/")

			switch path {
			case "LandXML/CoordinateSystem":
				if curRawCS != nil {
					doc.CoordinateSystem = resolveCoordinateSystem(*curRawCS)
					doc.Warnings = append(doc.Warnings, doc.CoordinateSystem.Warnings...)
					curRawCS = nil
				}

			case "LandXML/Surface/Definition/Pnts/P":
				fields := strings.Fields(text.String())
				if len(fields) != 3 {
					return nil, &SemanticError{
						Path:   path,
						Reason: fmt.Sprintf("point %d: expected \"x y z\", got %q", curPointID, text.String()),
					}
				}
				x, errX := strconv.ParseFloat(fields[0], 64)
				y, errY := strconv.ParseFloat(fields[1], 64)
				z, errZ := strconv.ParseFloat(fields[2], 64)
				if errX != nil || errY != nil || errZ != nil {
					return nil, &SemanticError{Path: path, Reason: fmt.Sprintf("point %d: non-numeric coordinate %q", curPointID, text.String())}
				}
				if curSurface != nil {
					pointIndex[curPointID] = len(curSurface.Points)
					curSurface.Points = append(curSurface.Points, Point3D{ID: curPointID, X: x, Y: y, Z: z})
				}

			case "LandXML/Surface/Definition/Faces/F":
				fields := strings.Fields(text.String())
				if len(fields) != 3 {
					return nil, &SemanticError{
						Path:   path,
						Reason: fmt.Sprintf("face: expected three point ids, got %q", text.String()),
					}
				}
				if curSurface != nil {
					ids := make([]int, 3)
					bad := -1
					for i, f := range fields {
						id, err := strconv.Atoi(f)
						if err != nil {
							return nil, &SemanticError{Path: path, Reason: fmt.Sprintf("face: non-integer point id %q", f)}
						}
						ids[i] = id
						if _, ok := pointIndex[id]; !ok {
							bad = id
						}
					}
					if bad != -1 {
						doc.Warnings = append(doc.Warnings,
							(&MissingPointReferenceError{Surface: curSurface.Name, FaceIndex: len(curSurface.Faces), PointID: bad}).Error())
						surfaceOK = false
					} else {
						curSurface.Faces = append(curSurface.Faces, Face{
							P1: pointIndex[ids[0]],
							P2: pointIndex[ids[1]],
							P3: pointIndex[ids[2]],
						})
					}
				}

			case "LandXML/Surface":
				if curSurface != nil {
					if surfaceOK {
						doc.Surfaces = append(doc.Surfaces, *curSurface)
					} else {
						doc.Warnings = append(doc.Warnings, fmt.Sprintf("surface %q dropped: unresolved point reference", curSurface.Name))
					}
				}
				curSurface = nil
				pointIndex = nil
			}

			stack = stack[:len(stack)-1]
		}
	}

	return doc, nil
}

// attrOf returns the value of the named attribute on a start element, or
// "" if absent. Unknown attributes are simply never looked up, which is
// how spec section 4.1's "unknown attributes are silently ignored" falls
// out of this design.
func attrOf(t xml.StartElement, name string) string {
	for _, a := range t.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

// stripBOM removes a leading UTF-8 byte-order-mark, if present, before
// handing the stream to the XML decoder.
func stripBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	bom, err := br.Peek(3)
	if err == nil && bom[0] == 0xEF && bom[1] == 0xBB && bom[2] == 0xBF {
		br.Discard(3)
	}
	return br
}

// japaneseCharsetReader honors the encoding declared in a LandXML
// document's XML header (spec section 4.1). J-LandXML exports frequently
// declare Shift_JIS or EUC-JP; UTF-8 and US-ASCII pass straight through
// since encoding/xml already understands them.
func japaneseCharsetReader(charset string, input io.Reader) (io.Reader, error) {
	switch strings.ToLower(charset) {
	case "utf-8", "us-ascii", "ascii", "":
		return input, nil
	case "shift_jis", "shift-jis", "sjis":
		return transform.NewReader(input, japanese.ShiftJIS.NewDecoder()), nil
	case "euc-jp", "eucjp":
		return transform.NewReader(input, japanese.EUCJP.NewDecoder()), nil
	case "iso-2022-jp":
		return transform.NewReader(input, japanese.ISO2022JP.NewDecoder()), nil
	default:
		return nil, fmt.Errorf("unsupported document charset %q", charset)
	}
}
