package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/draftkit/draftkit"
	"github.com/draftkit/draftkit/geometry"
	"github.com/draftkit/draftkit/model"
)

func testSession(t *testing.T) *draftkit.Session {
	t.Helper()
	session, err := draftkit.FromDrawing(model.Drawing{
		Layers: []model.LayerDef{
			{Name: "WALLS", Color: model.ColorWhite},
			{Name: "ANNOT", Color: model.ColorGreen},
		},
		Entities: []model.Record{
			{Handle: "1", Kind: model.KindLine, Layer: "WALLS", Geometry: geometry.Segment{
				Start: geometry.Point{X: 0, Y: 0}, End: geometry.Point{X: 30, Y: 0},
			}},
			{Handle: "2", Kind: model.KindText, Layer: "ANNOT", Geometry: geometry.TextAnchor{
				Position: geometry.Point{X: 5, Y: 5}, Content: "Kitchen",
			}},
		},
	})
	if err != nil {
		t.Fatalf("load drawing: %v", err)
	}
	return session
}

func TestPrintSummary(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	if err := printSummary(&buf, testSession(t).Summary()); err != nil {
		t.Fatalf("print summary: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Layers: 2", "Entities: 2", "WALLS", "LINE", "Extents:"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintLayers(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	if err := printLayers(&buf, testSession(t).Store().Layers()); err != nil {
		t.Fatalf("print layers: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "WALLS") || !strings.Contains(out, "white") {
		t.Errorf("unexpected layer listing:\n%s", out)
	}
}

func TestPrintTexts(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	if err := printTexts(&buf, testSession(t).Summary()); err != nil {
		t.Fatalf("print texts: %v", err)
	}
	if !strings.Contains(buf.String(), `"Kitchen"`) {
		t.Errorf("text listing missing label:\n%s", buf.String())
	}
}

func TestCallTool(t *testing.T) {
	var buf bytes.Buffer
	if err := callTool(&buf, testSession(t), "get_entity_center", `{"id":"2"}`); err != nil {
		t.Fatalf("call tool: %v", err)
	}
	if !strings.Contains(buf.String(), `"id": "2"`) {
		t.Errorf("unexpected tool output:\n%s", buf.String())
	}
}
