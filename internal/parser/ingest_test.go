package parser

import (
	"strings"
	"testing"
)

const minimalLandXML = `<?xml version="1.0" encoding="UTF-8"?>
<LandXML version="1.2">
  <CoordinateSystem name="Tokyo" horizontalCoordinateSystemName="9(X,Y)" verticalDatum="O.P." epsgCode="6677">
    <Feature>
      <Property label="differTP" value="-1.3000"/>
    </Feature>
  </CoordinateSystem>
  <Surface name="ExistingGround" desc="ground" surfType="EG">
    <Definition surfType="TIN">
      <Pnts>
        <P id="1">0 0 100</P>
        <P id="2">100 0 101</P>
        <P id="3">0 100 102</P>
        <P id="4">100 100 103</P>
      </Pnts>
      <Faces>
        <F>1 2 3</F>
        <F>2 4 3</F>
      </Faces>
    </Definition>
  </Surface>
</LandXML>`

func TestIngestMinimal(t *testing.T) {
	doc, err := NewIngester().Ingest(strings.NewReader(minimalLandXML))
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	if doc.Version != "1.2" {
		t.Errorf("Version = %q, want 1.2", doc.Version)
	}
	if len(doc.Surfaces) != 1 {
		t.Fatalf("len(Surfaces) = %d, want 1", len(doc.Surfaces))
	}

	s := &doc.Surfaces[0]
	if s.Name != "ExistingGround" {
		t.Errorf("Name = %q", s.Name)
	}
	if s.SurfaceType != SurfaceExistingGround {
		t.Errorf("SurfaceType = %v, want SurfaceExistingGround", s.SurfaceType)
	}
	if len(s.Points) != 4 || len(s.Faces) != 2 {
		t.Fatalf("got %d points, %d faces", len(s.Points), len(s.Faces))
	}

	if doc.CoordinateSystem == nil {
		t.Fatal("expected a resolved CoordinateSystem")
	}
	cs := doc.CoordinateSystem
	if cs.PlaneZone != PlaneZone(9) {
		t.Errorf("PlaneZone = %v, want 9", cs.PlaneZone)
	}
	if cs.EPSGCode == nil || *cs.EPSGCode != 6677 {
		t.Errorf("EPSGCode = %v, want 6677", cs.EPSGCode)
	}
	if cs.DifferTP == nil || *cs.DifferTP != -1.3 {
		t.Errorf("DifferTP = %v, want -1.3", cs.DifferTP)
	}
	if cs.VerticalDatum != PeilOP {
		t.Errorf("VerticalDatum = %v, want PeilOP", cs.VerticalDatum)
	}
}

func TestIngestSurfaceNameFilter(t *testing.T) {
	const doc = `<LandXML version="1.2">
  <Surface name="Keep"><Definition surfType="TIN">
    <Pnts><P id="1">0 0 0</P><P id="2">1 0 0</P><P id="3">0 1 0</P></Pnts>
    <Faces><F>1 2 3</F></Faces>
  </Definition></Surface>
  <Surface name="Drop"><Definition surfType="TIN">
    <Pnts><P id="1">0 0 0</P><P id="2">1 0 0</P><P id="3">0 1 0</P></Pnts>
    <Faces><F>1 2 3</F></Faces>
  </Definition></Surface>
</LandXML>`

	ing := NewIngester()
	out, err := ing.IngestWithOptions(strings.NewReader(doc), IngestOptions{SurfaceNameFilter: []string{"Keep"}})
	if err != nil {
		t.Fatalf("IngestWithOptions: %v", err)
	}
	if len(out.Surfaces) != 1 || out.Surfaces[0].Name != "Keep" {
		t.Fatalf("expected only surface Keep, got %+v", out.Surfaces)
	}
}

func TestIngestMissingPointReferenceDropsSurface(t *testing.T) {
	// "bad" references point id 99, which was never declared; "good" is a
	// separate, valid surface that must still parse (spec section 8, S5).
	const doc = `<LandXML version="1.2">
  <Surface name="bad"><Definition surfType="TIN">
    <Pnts><P id="1">0 0 0</P><P id="2">1 0 0</P><P id="3">0 1 0</P></Pnts>
    <Faces><F>1 2 99</F></Faces>
  </Definition></Surface>
  <Surface name="good"><Definition surfType="TIN">
    <Pnts><P id="1">0 0 0</P><P id="2">1 0 0</P><P id="3">0 1 0</P></Pnts>
    <Faces><F>1 2 3</F></Faces>
  </Definition></Surface>
</LandXML>`

	out, err := NewIngester().Ingest(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	if len(out.Surfaces) != 1 || out.Surfaces[0].Name != "good" {
		t.Fatalf("expected only surface 'good' to survive, got %+v", out.Surfaces)
	}
	found := false
	for _, w := range out.Warnings {
		if strings.Contains(w, "missing point id 99") || strings.Contains(w, "dropped") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a warning about the dropped surface, got %v", out.Warnings)
	}
}

func TestIngestNonTINDefinitionSkipped(t *testing.T) {
	const doc = `<LandXML version="1.2">
  <Surface name="grid"><Definition surfType="GRID">
    <Pnts><P id="1">0 0 0</P></Pnts>
  </Definition></Surface>
</LandXML>`

	out, err := NewIngester().Ingest(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	if len(out.Surfaces) != 0 {
		t.Errorf("expected no surfaces for a non-TIN definition, got %d", len(out.Surfaces))
	}
}

func TestIngestMalformedPointBody(t *testing.T) {
	const doc = `<LandXML version="1.2">
  <Surface name="bad"><Definition surfType="TIN">
    <Pnts><P id="1">0 0</P></Pnts>
    <Faces><F>1 1 1</F></Faces>
  </Definition></Surface>
</LandXML>`

	_, err := NewIngester().Ingest(strings.NewReader(doc))
	if _, ok := err.(*SemanticError); !ok {
		t.Fatalf("expected *SemanticError, got %v", err)
	}
}

func TestIngestStripsBOM(t *testing.T) {
	withBOM := "\xEF\xBB\xBF" + minimalLandXML
	doc, err := NewIngester().Ingest(strings.NewReader(withBOM))
	if err != nil {
		t.Fatalf("Ingest with BOM: %v", err)
	}
	if len(doc.Surfaces) != 1 {
		t.Errorf("expected 1 surface after stripping BOM, got %d", len(doc.Surfaces))
	}
}

func TestJapaneseCharsetReaderPassthrough(t *testing.T) {
	for _, cs := range []string{"utf-8", "UTF-8", "us-ascii", ""} {
		r, err := japaneseCharsetReader(cs, strings.NewReader("x"))
		if err != nil {
			t.Errorf("charset %q: unexpected error %v", cs, err)
		}
		if r == nil {
			t.Errorf("charset %q: nil reader", cs)
		}
	}
}

func TestJapaneseCharsetReaderUnsupported(t *testing.T) {
	if _, err := japaneseCharsetReader("koi8-r", strings.NewReader("x")); err == nil {
		t.Error("expected an error for an unsupported charset")
	}
}

func TestJapaneseCharsetReaderShiftJIS(t *testing.T) {
	r, err := japaneseCharsetReader("Shift_JIS", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r == nil {
		t.Fatal("expected a non-nil transform reader")
	}
}
