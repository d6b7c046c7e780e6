// Package jlandxml provides a clean public API for converting Japanese
// LandXML 1.2 / J-LandXML 1.6 terrain surfaces into georeferenced raster
// DEMs.
package jlandxml

import (
	"io"

	"github.com/beetlebugorg/jlandxml/internal/parser"
)

// Converter ingests LandXML documents and rasterizes their surfaces.
//
// Create a Converter with NewConverter and use Ingest or IngestWithOptions
// to read documents, then Rasterize a surface and WriteGeoTIFF the result.
type Converter interface {
	// Ingest reads a LandXML/J-LandXML document and returns its parsed
	// coordinate system and surfaces.
	Ingest(r io.Reader) (*Document, error)

	// IngestWithOptions ingests with custom options (e.g. a surface-name
	// filter to skip surfaces the caller does not need).
	IngestWithOptions(r io.Reader, opts IngestOptions) (*Document, error)
}

// NewConverter creates a Converter with default settings.
//
// Example:
//
//	conv := jlandxml.NewConverter()
//	doc, err := conv.Ingest(f)
func NewConverter() Converter {
	return &converterWrapper{internal: parser.NewIngester()}
}

type converterWrapper struct {
	internal parser.Ingester
}

func (c *converterWrapper) Ingest(r io.Reader) (*Document, error) {
	return c.IngestWithOptions(r, DefaultIngestOptions())
}

func (c *converterWrapper) IngestWithOptions(r io.Reader, opts IngestOptions) (*Document, error) {
	doc, err := c.internal.IngestWithOptions(r, parser.IngestOptions{SurfaceNameFilter: opts.SurfaceNameFilter})
	if err != nil {
		return nil, err
	}
	return convertDocument(doc), nil
}

// IngestOptions configures ingestion.
type IngestOptions struct {
	// SurfaceNameFilter, if non-empty, restricts ingestion to the named
	// surfaces; others are skipped without materializing their point/face
	// tables.
	SurfaceNameFilter []string
}

// DefaultIngestOptions returns an IngestOptions with no filtering.
func DefaultIngestOptions() IngestOptions {
	return IngestOptions{}
}

// Document is a parsed LandXML document: its coordinate system (if any
// resolved) and the surfaces that survived ingestion.
type Document struct {
	version          string
	coordinateSystem *CoordinateSystem
	surfaces         []*Surface
	warnings         []string

	internal *parser.Document
}

// Version returns the LandXML document's declared version string.
func (d *Document) Version() string { return d.version }

// CoordinateSystem returns the parsed coordinate system, or nil if the
// document carried none. ResolveCRS does not set it.
func (d *Document) CoordinateSystem() *CoordinateSystem { return d.coordinateSystem }

// Surfaces returns every surface that survived ingestion.
func (d *Document) Surfaces() []*Surface { return d.surfaces }

// SurfaceByName returns the first surface with the given name, or nil.
func (d *Document) SurfaceByName(name string) *Surface {
	for _, s := range d.surfaces {
		if s.Name() == name {
			return s
		}
	}
	return nil
}

// Warnings lists non-fatal issues accumulated during ingestion.
func (d *Document) Warnings() []string { return d.warnings }

// ResolveCRS returns the document's coordinate system if one was parsed,
// otherwise attempts CRS autodetection against surface s's centroid (spec
// section 4.3) and returns the detected result. It does not mutate d.
func (d *Document) ResolveCRS(s *Surface) (*CoordinateSystem, error) {
	if d.coordinateSystem != nil {
		return d.coordinateSystem, nil
	}
	cs, err := parser.ResolveCRS(nil, s.internal)
	if err != nil {
		return nil, err
	}
	return convertCoordinateSystem(cs), nil
}

func convertDocument(doc *parser.Document) *Document {
	out := &Document{
		version:  doc.Version,
		warnings: doc.Warnings,
		internal: doc,
	}
	if doc.CoordinateSystem != nil {
		out.coordinateSystem = convertCoordinateSystem(doc.CoordinateSystem)
	}
	out.surfaces = make([]*Surface, len(doc.Surfaces))
	for i := range doc.Surfaces {
		out.surfaces[i] = &Surface{internal: &doc.Surfaces[i]}
	}
	return out
}
