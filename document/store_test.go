package document

import (
	"errors"
	"testing"

	"github.com/draftkit/draftkit/geometry"
	"github.com/draftkit/draftkit/model"
)

// testDrawing builds the fixture used across the store tests: two layers,
// a wall outline, a door circle and two labels.
func testDrawing() model.Drawing {
	return model.Drawing{
		Layers: []model.LayerDef{
			{Name: "WALLS", Color: model.ColorWhite},
			{Name: "DOORS", Color: model.ColorRed},
		},
		Entities: []model.Record{
			{Handle: "10", Kind: model.KindLine, Layer: "WALLS",
				Geometry: geometry.Segment{Start: geometry.Point{X: 0, Y: 0}, End: geometry.Point{X: 100, Y: 0}}},
			{Handle: "11", Kind: model.KindPolyline, Layer: "WALLS",
				Geometry: geometry.Polyline{Points: []geometry.Point{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 50}, {X: 0, Y: 50}}, Closed: true}},
			{Handle: "20", Kind: model.KindCircle, Layer: "DOORS",
				Geometry: geometry.Circle{Center: geometry.Point{X: 50, Y: 0}, Radius: 5}},
			{Handle: "21", Kind: model.KindText, Layer: "DOORS",
				Geometry: geometry.TextAnchor{Position: geometry.Point{X: 50, Y: 25}, Content: "Room  101"}},
			{Kind: model.KindMText, Layer: "WALLS",
				Geometry: geometry.TextAnchor{Position: geometry.Point{X: 10, Y: 10}, Content: "North wing"}},
		},
	}
}

func mustLoad(t *testing.T, d model.Drawing) *Store {
	t.Helper()
	s, err := Load(d)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return s
}

func TestLoadAssignsHandles(t *testing.T) {
	s := mustLoad(t, testDrawing())

	if got := s.EntityCount(); got != 5 {
		t.Fatalf("EntityCount() = %d, want 5", got)
	}

	// The record without a handle gets the first free one.
	e, err := s.Entity("1")
	if err != nil {
		t.Fatalf("Entity(1) error = %v", err)
	}
	if e.Kind != model.KindMText {
		t.Errorf("Entity(1).Kind = %v, want MTEXT", e.Kind)
	}
}

func TestLoadNormalizesText(t *testing.T) {
	s := mustLoad(t, testDrawing())

	e, err := s.Entity("21")
	if err != nil {
		t.Fatalf("Entity(21) error = %v", err)
	}
	if got := e.Text(); got != "Room 101" {
		t.Errorf("Text() = %q, want %q", got, "Room 101")
	}
}

func TestLoadCreatesMissingLayer(t *testing.T) {
	d := model.Drawing{
		Entities: []model.Record{
			{Handle: "A", Kind: model.KindLine, Layer: "STAIRS",
				Geometry: geometry.Segment{Start: geometry.Point{X: 0, Y: 0}, End: geometry.Point{X: 1, Y: 1}}},
		},
	}
	s := mustLoad(t, d)

	layers := s.Layers()
	if len(layers) != 1 || layers[0].Name != "STAIRS" {
		t.Fatalf("Layers() = %+v, want one STAIRS layer", layers)
	}
	if layers[0].Color != model.ColorWhite {
		t.Errorf("auto-created layer color = %d, want %d", layers[0].Color, model.ColorWhite)
	}
}

func TestLoadRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		d    model.Drawing
	}{
		{
			"duplicate layer",
			model.Drawing{Layers: []model.LayerDef{{Name: "A"}, {Name: "A"}}},
		},
		{
			"duplicate handle",
			model.Drawing{Entities: []model.Record{
				{Handle: "X", Kind: model.KindLine, Layer: "A", Geometry: geometry.Segment{}},
				{Handle: "X", Kind: model.KindLine, Layer: "A", Geometry: geometry.Segment{}},
			}},
		},
		{
			"missing geometry",
			model.Drawing{Entities: []model.Record{{Handle: "X", Kind: model.KindLine, Layer: "A"}}},
		},
		{
			"kind geometry mismatch",
			model.Drawing{Entities: []model.Record{
				{Handle: "X", Kind: model.KindCircle, Layer: "A", Geometry: geometry.Segment{}},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(tt.d); err == nil {
				t.Error("Load() error = nil, want error")
			}
		})
	}
}

func TestEntityNotFound(t *testing.T) {
	s := mustLoad(t, testDrawing())

	_, err := s.Entity("FFFF")
	var notFound *EntityNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("Entity() error = %v, want EntityNotFoundError", err)
	}
	if notFound.ID != "FFFF" {
		t.Errorf("error ID = %q, want FFFF", notFound.ID)
	}
}

func TestEntitiesOnLayer(t *testing.T) {
	s := mustLoad(t, testDrawing())

	walls, err := s.EntitiesOnLayer("WALLS")
	if err != nil {
		t.Fatalf("EntitiesOnLayer() error = %v", err)
	}
	if len(walls) != 3 {
		t.Fatalf("got %d wall entities, want 3", len(walls))
	}
	// Insertion order from the decode is preserved.
	if walls[0].ID != "10" || walls[1].ID != "11" || walls[2].ID != "1" {
		t.Errorf("order = %s, %s, %s", walls[0].ID, walls[1].ID, walls[2].ID)
	}

	_, err = s.EntitiesOnLayer("FURNITURE")
	var notFound *LayerNotFoundError
	if !errors.As(err, &notFound) {
		t.Errorf("EntitiesOnLayer() error = %v, want LayerNotFoundError", err)
	}
}

func TestLayersSorted(t *testing.T) {
	s := mustLoad(t, testDrawing())

	layers := s.Layers()
	if len(layers) != 2 {
		t.Fatalf("got %d layers, want 2", len(layers))
	}
	if layers[0].Name != "DOORS" || layers[1].Name != "WALLS" {
		t.Errorf("layer order = %s, %s", layers[0].Name, layers[1].Name)
	}
	if layers[0].EntityCount != 2 || layers[1].EntityCount != 3 {
		t.Errorf("counts = %d, %d, want 2, 3", layers[0].EntityCount, layers[1].EntityCount)
	}
}

func TestSetLayerColor(t *testing.T) {
	s := mustLoad(t, testDrawing())

	if err := s.SetLayerColor("DOORS", model.ColorBlue); err != nil {
		t.Fatalf("SetLayerColor() error = %v", err)
	}

	layers := s.Layers()
	if layers[0].Color != model.ColorBlue {
		t.Errorf("DOORS color = %d, want %d", layers[0].Color, model.ColorBlue)
	}
	if layers[0].EntityCount != 2 {
		t.Errorf("DOORS count changed to %d", layers[0].EntityCount)
	}

	// Same color again is a no-op, not an error.
	if err := s.SetLayerColor("DOORS", model.ColorBlue); err != nil {
		t.Errorf("idempotent SetLayerColor() error = %v", err)
	}

	var notFound *LayerNotFoundError
	if err := s.SetLayerColor("FURNITURE", 1); !errors.As(err, &notFound) {
		t.Errorf("SetLayerColor() error = %v, want LayerNotFoundError", err)
	}
}

// Recoloring DOORS (red, 2 entities) next to WALLS (white, 3 entities) must
// change only the one color and no counts.
func TestRecolorScenario(t *testing.T) {
	s := mustLoad(t, testDrawing())

	code, ok := model.ParseColor("blue")
	if !ok {
		t.Fatal("ParseColor(blue) failed")
	}
	if err := s.SetLayerColor("DOORS", code); err != nil {
		t.Fatalf("SetLayerColor() error = %v", err)
	}

	layers := s.Layers()
	if layers[0].Name != "DOORS" || layers[0].Color != model.ColorBlue || layers[0].EntityCount != 2 {
		t.Errorf("DOORS = %+v, want blue with 2 entities", layers[0])
	}
	if layers[1].Name != "WALLS" || layers[1].Color != model.ColorWhite || layers[1].EntityCount != 3 {
		t.Errorf("WALLS = %+v, want white with 3 entities", layers[1])
	}
}

func TestDeleteEntity(t *testing.T) {
	s := mustLoad(t, testDrawing())

	if err := s.DeleteEntity("20"); err != nil {
		t.Fatalf("DeleteEntity() error = %v", err)
	}

	var notFound *EntityNotFoundError
	if _, err := s.Entity("20"); !errors.As(err, &notFound) {
		t.Errorf("Entity() after delete error = %v, want EntityNotFoundError", err)
	}

	// Deleting twice is an error, not a silent no-op.
	if err := s.DeleteEntity("20"); !errors.As(err, &notFound) {
		t.Errorf("second DeleteEntity() error = %v, want EntityNotFoundError", err)
	}

	doors, err := s.EntitiesOnLayer("DOORS")
	if err != nil {
		t.Fatalf("EntitiesOnLayer() error = %v", err)
	}
	if len(doors) != 1 {
		t.Errorf("DOORS has %d entities after delete, want 1", len(doors))
	}
	if s.EntityCount() != 4 {
		t.Errorf("EntityCount() = %d, want 4", s.EntityCount())
	}
}

func TestDeletedHandleNeverReused(t *testing.T) {
	d := model.Drawing{
		Entities: []model.Record{
			{Kind: model.KindLine, Layer: "A",
				Geometry: geometry.Segment{Start: geometry.Point{X: 0, Y: 0}, End: geometry.Point{X: 1, Y: 0}}},
		},
	}
	s := mustLoad(t, d)

	if err := s.DeleteEntity("1"); err != nil {
		t.Fatalf("DeleteEntity() error = %v", err)
	}

	// A fresh load starting from the same sequence would hand out "1"
	// again; within this store the tombstone blocks it.
	if got := s.nextHandle(); got == "1" {
		t.Error("nextHandle() reissued a tombstoned handle")
	}
}

func TestEditText(t *testing.T) {
	s := mustLoad(t, testDrawing())

	old, err := s.EditText("21", "Conference\t Room")
	if err != nil {
		t.Fatalf("EditText() error = %v", err)
	}
	if old != "Room 101" {
		t.Errorf("old content = %q, want %q", old, "Room 101")
	}

	e, _ := s.Entity("21")
	if got := e.Text(); got != "Conference Room" {
		t.Errorf("new content = %q, want %q", got, "Conference Room")
	}
}

func TestEditTextWrongKind(t *testing.T) {
	s := mustLoad(t, testDrawing())

	_, err := s.EditText("10", "nope")
	var wrongKind *WrongEntityKindError
	if !errors.As(err, &wrongKind) {
		t.Fatalf("EditText() error = %v, want WrongEntityKindError", err)
	}
	if wrongKind.Kind != model.KindLine {
		t.Errorf("error kind = %v, want LINE", wrongKind.Kind)
	}

	// The failed edit must not have touched anything.
	e, err := s.Entity("10")
	if err != nil {
		t.Fatalf("Entity() error = %v", err)
	}
	if e.Kind != model.KindLine {
		t.Errorf("entity mutated by failed edit: %+v", e)
	}
}

func TestBounds(t *testing.T) {
	s := mustLoad(t, testDrawing())

	bounds, ok := s.Bounds()
	if !ok {
		t.Fatal("Bounds() ok = false")
	}
	want := geometry.BBox{Min: geometry.Point{X: 0, Y: -5}, Max: geometry.Point{X: 100, Y: 50}}
	if bounds != want {
		t.Errorf("Bounds() = %+v, want %+v", bounds, want)
	}

	empty := mustLoad(t, model.Drawing{})
	if _, ok := empty.Bounds(); ok {
		t.Error("empty store Bounds() ok = true")
	}
}

func TestExportReflectsMutations(t *testing.T) {
	s := mustLoad(t, testDrawing())

	if err := s.SetLayerColor("WALLS", model.ColorGreen); err != nil {
		t.Fatal(err)
	}
	if err := s.DeleteEntity("10"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.EditText("21", "Lobby"); err != nil {
		t.Fatal(err)
	}

	out := s.Export()
	if len(out.Layers) != 2 || len(out.Entities) != 4 {
		t.Fatalf("export has %d layers, %d entities", len(out.Layers), len(out.Entities))
	}
	if out.Layers[1].Name != "WALLS" || out.Layers[1].Color != model.ColorGreen {
		t.Errorf("exported WALLS = %+v", out.Layers[1])
	}
	for _, rec := range out.Entities {
		if rec.Handle == "10" {
			t.Error("deleted entity present in export")
		}
		if rec.Handle == "21" {
			if anchor := rec.Geometry.(geometry.TextAnchor); anchor.Content != "Lobby" {
				t.Errorf("exported text = %q, want Lobby", anchor.Content)
			}
		}
	}
}

func TestSummarize(t *testing.T) {
	s := mustLoad(t, testDrawing())

	sum := s.Summarize()
	if sum.LayerCount != 2 || sum.EntityCount != 5 {
		t.Fatalf("summary = %d layers, %d entities", sum.LayerCount, sum.EntityCount)
	}
	if sum.Extents == nil {
		t.Fatal("summary extents missing")
	}
	if len(sum.Texts) != 2 {
		t.Fatalf("summary has %d texts, want 2", len(sum.Texts))
	}

	var walls LayerSummary
	for _, ls := range sum.Layers {
		if ls.Name == "WALLS" {
			walls = ls
		}
	}
	if walls.Counts["LINE"] != 1 || walls.Counts["POLYLINE"] != 1 || walls.Counts["MTEXT"] != 1 {
		t.Errorf("WALLS counts = %v", walls.Counts)
	}
}
