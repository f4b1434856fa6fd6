package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dangdiep/shinyWidgets/pkg/render"
)

const sampleManifest = `
title: Test gallery
widgets:
  - id: q
    type: text
    label: Query
    icon: fa-search
    size: sm
  - id: price
    type: numeric
    label: Price
    number: 9.5
    min: 0
    max: 100
    right: EUR
`

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gallery.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadGallery(t *testing.T) {
	g, err := LoadGallery(writeManifest(t, sampleManifest))
	if err != nil {
		t.Fatalf("LoadGallery: %v", err)
	}
	if g.Title != "Test gallery" {
		t.Errorf("title = %q, want %q", g.Title, "Test gallery")
	}
	if len(g.Widgets) != 2 {
		t.Fatalf("widgets = %d, want 2", len(g.Widgets))
	}
	if g.Widgets[1].Min == nil || *g.Widgets[1].Min != 0 {
		t.Errorf("min not parsed: %v", g.Widgets[1].Min)
	}
	if g.Widgets[1].Step != nil {
		t.Errorf("step should be absent, got %v", *g.Widgets[1].Step)
	}
}

func TestLoadGalleryErrors(t *testing.T) {
	tests := []struct {
		name     string
		manifest string
	}{
		{"missing id", "widgets:\n  - type: text\n"},
		{"duplicate id", "widgets:\n  - {id: a, type: text}\n  - {id: a, type: numeric}\n"},
		{"unknown type", "widgets:\n  - {id: a, type: slider}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadGallery(writeManifest(t, tt.manifest)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestWidgetNode(t *testing.T) {
	g, err := LoadGallery(writeManifest(t, sampleManifest))
	if err != nil {
		t.Fatal(err)
	}

	for _, w := range g.Widgets {
		node, err := w.Node(nil)
		if err != nil {
			t.Fatalf("Node(%s): %v", w.ID, err)
		}
		html, err := render.ToString(node)
		if err != nil {
			t.Fatalf("render %s: %v", w.ID, err)
		}
		if !strings.Contains(html, `id="`+w.ID+`"`) {
			t.Errorf("%s: rendered HTML missing input id: %s", w.ID, html)
		}
	}
}

func TestIconNode(t *testing.T) {
	if got := iconNode(""); got != nil {
		t.Errorf("empty spec should yield nil, got %v", got)
	}

	glyph, err := render.ToString(iconNode("fa-search"))
	if err != nil {
		t.Fatal(err)
	}
	if glyph != `<i class="fa fa-search"></i>` {
		t.Errorf("glyph = %s", glyph)
	}

	text, err := render.ToString(iconNode(".com"))
	if err != nil {
		t.Fatal(err)
	}
	if text != ".com" {
		t.Errorf("text = %s", text)
	}
}

func TestDefaultGallery(t *testing.T) {
	g := defaultGallery()
	if err := g.Validate(); err != nil {
		t.Fatalf("default gallery invalid: %v", err)
	}
	for _, w := range g.Widgets {
		if _, err := w.Node(nil); err != nil {
			t.Errorf("Node(%s): %v", w.ID, err)
		}
	}
}
