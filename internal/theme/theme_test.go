package theme

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/mazewalk/internal/maze"
)

func TestLoadBuiltin(t *testing.T) {
	defs, err := LoadBuiltin()
	if err != nil {
		t.Fatalf("Failed to load themes: %v", err)
	}

	if len(defs) != 3 {
		t.Errorf("Expected 3 themes, got %d", len(defs))
	}

	for _, d := range defs {
		if err := d.Validate(); err != nil {
			t.Errorf("Theme %s is invalid: %v", d.ID, err)
		}
	}
}

func TestRegistry(t *testing.T) {
	registry, err := LoadRegistry()
	if err != nil {
		t.Fatalf("Failed to load registry: %v", err)
	}

	if registry.Count() != 3 {
		t.Errorf("Expected 3 themes, got %d", registry.Count())
	}

	ids := registry.IDs()
	expectedIDs := []string{"classic", "mono", "ocean"}
	if len(ids) != len(expectedIDs) {
		t.Fatalf("IDs() = %v, want %v", ids, expectedIDs)
	}
	for i, id := range expectedIDs {
		if ids[i] != id {
			t.Errorf("IDs()[%d] = %q, want %q", i, ids[i], id)
		}
	}

	classic := registry.GetByID(DefaultID)
	if classic == nil {
		t.Fatal("Default theme not found")
	}
	if classic.Name != "Classic" {
		t.Errorf("Expected name 'Classic', got %q", classic.Name)
	}

	if registry.GetByID("missing") != nil {
		t.Error("Expected nil for unknown theme")
	}
	if _, err := registry.Palette("missing"); !errors.Is(err, ErrUnknownTheme) {
		t.Errorf("Expected ErrUnknownTheme, got %v", err)
	}
}

func TestRegistryAddReplaces(t *testing.T) {
	registry := MustLoadRegistry()
	registry.Add(Def{ID: "classic", Name: "Custom", Wall: "#000000"})

	if registry.Count() != 3 {
		t.Errorf("Expected 3 themes after replacing one, got %d", registry.Count())
	}
	if name := registry.GetByID("classic").Name; name != "Custom" {
		t.Errorf("Expected replaced name 'Custom', got %q", name)
	}
}

func TestPaletteStyles(t *testing.T) {
	def := Def{
		ID:    "test",
		Wall:  "#010203",
		Path:  "#FF0000",
		Tried: "#00FF00",
		Empty: "#0000FF",
		Start: "#FFFFFF",
		Exit:  "not a color",
	}
	p := def.Palette()

	fg, _, attrs := p.Style(maze.Path).Decompose()
	if fg != tcell.NewRGBColor(0xFF, 0, 0) {
		t.Errorf("Path foreground = %v, want red", fg)
	}
	if attrs&tcell.AttrBold == 0 {
		t.Error("Path style should be bold")
	}

	fg, bg, _ := p.Style(maze.Wall).Decompose()
	if fg != tcell.NewRGBColor(1, 2, 3) || bg != tcell.NewRGBColor(1, 2, 3) {
		t.Errorf("Wall colours = %v/%v, want #010203 on both", fg, bg)
	}

	// Invalid colours fall back to white
	fg, _, _ = p.ExitStyle().Decompose()
	if fg != tcell.ColorWhite {
		t.Errorf("Exit foreground = %v, want white", fg)
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#00ff00", true},
		{"#FFFFFF", true},
		{"#000000", true},
		{"invalid", false},
		{"#FFF", false},
		{"#GG0000", false},
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) returned error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should have returned error", tt.input)
		}
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.json")
	content := `{"themes":[{"id":"neon","name":"Neon",
		"wall":"#111111","path":"#FF00FF","tried":"#00FFFF","empty":"#000000",
		"start":"#FFFF00","exit":"#FF0000"}]}`
	if err := os.WriteFile(good, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	defs, err := LoadFile(good)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if len(defs) != 1 || defs[0].ID != "neon" {
		t.Errorf("Expected one theme 'neon', got %+v", defs)
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"themes":[{"id":"x","wall":"red"}]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(bad); err == nil {
		t.Error("Expected error for invalid colours")
	}

	if _, err := LoadFile(filepath.Join(dir, "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected not-exist error, got %v", err)
	}
}
