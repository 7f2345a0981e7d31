package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/milk9111/wheelchair/input"
)

func TestLoadDefaults(t *testing.T) {
	s, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.Window.Width != 1280 || s.Window.Height != 720 || s.Window.Title != "wheelchair" {
		t.Fatalf("unexpected window %+v", s.Window)
	}
	if s.TPS != 60 || s.Log.Level != "info" || s.Arena != "arena.yaml" {
		t.Fatalf("unexpected defaults %+v", s)
	}
	if len(s.Bindings.LeftWheel) != 3 || s.Bindings.ScrollScale != 1 {
		t.Fatalf("unexpected bindings %+v", s.Bindings)
	}

	b, err := s.InputBindings()
	if err != nil {
		t.Fatalf("default bindings should parse: %v", err)
	}
	if _, ok := b.Buttons[input.ActionRightWheel]; !ok {
		t.Fatal("right wheel should be bound by default")
	}
	if !b.Axes[input.ActionScroll].Wheel {
		t.Fatal("scroll should read the mouse wheel by default")
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wheelchair.yaml")
	data := []byte(`
tps: 120
debug: true
log:
  level: debug
bindings:
  left_wheel: ["key:Q"]
  right_wheel: []
  scroll_scale: 0.5
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("WHEELCHAIR_WINDOW_TITLE", "from-env")

	s, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.TPS != 120 || !s.Debug || s.Log.Level != "debug" {
		t.Fatalf("file values not applied: %+v", s)
	}
	if s.Window.Title != "from-env" {
		t.Fatalf("env override not applied, got %q", s.Window.Title)
	}

	b, err := s.InputBindings()
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := b.Buttons[input.ActionRightWheel]; ok {
		t.Fatal("empty binding list should leave the right wheel unbound")
	}
	if b.Axes[input.ActionScroll].Scale != 0.5 {
		t.Fatalf("expected scroll scale 0.5, got %v", b.Axes[input.ActionScroll].Scale)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("tps: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected validation to reject tps 0")
	}
}
