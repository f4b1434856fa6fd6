package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dangdiep/shinyWidgets/pkg/vdom"
	"github.com/dangdiep/shinyWidgets/pkg/widgets"
)

// Gallery is the YAML manifest describing the demo page's widgets.
type Gallery struct {
	Title   string   `yaml:"title"`
	Widgets []Widget `yaml:"widgets"`
}

// Widget declares one input widget in the manifest.
type Widget struct {
	ID    string `yaml:"id"`
	Type  string `yaml:"type"` // "text" or "numeric"
	Label string `yaml:"label"`

	// Text fields.
	Value       string `yaml:"value"`
	Placeholder string `yaml:"placeholder"`

	// Numeric fields.
	Number float64  `yaml:"number"`
	Min    *float64 `yaml:"min"`
	Max    *float64 `yaml:"max"`
	Step   *float64 `yaml:"step"`

	// Decorations. An icon starting with "fa-" renders as a Font Awesome
	// glyph, anything else as literal text.
	Icon  string `yaml:"icon"`
	Right string `yaml:"right"`

	Size  string `yaml:"size"`
	Width string `yaml:"width"`
}

// LoadGallery parses a gallery manifest file.
func LoadGallery(path string) (*Gallery, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("gallery: read %s: %w", path, err)
	}
	var g Gallery
	if err := yaml.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("gallery: parse %s: %w", path, err)
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return &g, nil
}

// Validate checks manifest invariants: ids present and unique, types known.
func (g *Gallery) Validate() error {
	seen := make(map[string]bool, len(g.Widgets))
	for i, w := range g.Widgets {
		if w.ID == "" {
			return fmt.Errorf("gallery: widget %d has no id", i)
		}
		if seen[w.ID] {
			return fmt.Errorf("gallery: duplicate widget id %q", w.ID)
		}
		seen[w.ID] = true
		switch w.Type {
		case "text", "numeric":
		default:
			return fmt.Errorf("gallery: widget %q has unknown type %q", w.ID, w.Type)
		}
	}
	return nil
}

// addon builds the widget's decoration from the manifest fields.
func (w Widget) addon() widgets.Addon {
	left := iconNode(w.Icon)
	right := iconNode(w.Right)
	switch {
	case left != nil && right != nil:
		return widgets.IconPair(left, right)
	case right != nil:
		return widgets.IconPair(nil, right)
	case left != nil:
		return widgets.Icon(left)
	default:
		return widgets.NoAddon()
	}
}

// iconNode renders a decoration spec: "fa-*" as a glyph, otherwise text.
func iconNode(spec string) *vdom.VNode {
	if spec == "" {
		return nil
	}
	if strings.HasPrefix(spec, "fa-") {
		return vdom.I(vdom.Class("fa", spec))
	}
	return vdom.Text(spec)
}

// Node builds the widget's markup, resolving values through the restorer.
func (w Widget) Node(r widgets.Restorer) (*vdom.VNode, error) {
	switch w.Type {
	case "text":
		return widgets.TextInputIcon(w.ID,
			widgets.TextLabel(w.Label),
			widgets.TextValue(w.Value),
			widgets.TextPlaceholder(w.Placeholder),
			widgets.TextSize(w.Size),
			widgets.TextWidth(widthHint(w.Width)),
			widgets.TextAddon(w.addon()),
			widgets.TextRestore(r),
		)
	case "numeric":
		opts := []widgets.NumericOption{
			widgets.NumericLabel(w.Label),
			widgets.NumericSize(w.Size),
			widgets.NumericWidth(widthHint(w.Width)),
			widgets.NumericAddon(w.addon()),
			widgets.NumericRestore(r),
		}
		if w.Min != nil {
			opts = append(opts, widgets.NumericMin(*w.Min))
		}
		if w.Max != nil {
			opts = append(opts, widgets.NumericMax(*w.Max))
		}
		if w.Step != nil {
			opts = append(opts, widgets.NumericStep(*w.Step))
		}
		return widgets.NumericInputIcon(w.ID, w.Number, opts...)
	default:
		return nil, fmt.Errorf("gallery: widget %q has unknown type %q", w.ID, w.Type)
	}
}

// widthHint maps the manifest's string width to the builder's width hint,
// where absence is expressed as nil.
func widthHint(width string) any {
	if width == "" {
		return nil
	}
	return width
}

// defaultGallery is used when no manifest is configured.
func defaultGallery() *Gallery {
	min, max, step := 0.0, 100.0, 5.0
	return &Gallery{
		Title: "shinyWidgets gallery",
		Widgets: []Widget{
			{
				ID: "search", Type: "text", Label: "Search",
				Placeholder: "keywords", Icon: "fa-search", Size: "sm",
				Width: "320px",
			},
			{
				ID: "domain", Type: "text", Label: "Domain",
				Value: "example", Icon: "https://", Right: ".com",
			},
			{
				ID: "amount", Type: "numeric", Label: "Amount",
				Number: 25, Min: &min, Max: &max, Step: &step,
				Icon: "fa-euro-sign", Size: "lg", Width: "240px",
			},
		},
	}
}
