package widgets

import (
	"github.com/dangdiep/shinyWidgets/pkg/vdom"
)

// TextOption configures a TextInputIcon widget.
type TextOption func(*textConfig)

type textConfig struct {
	label       string
	value       string
	placeholder string
	size        string
	width       any
	addon       Addon
	restorer    Restorer
}

// TextLabel sets the display label, associated with the field via "for".
func TextLabel(label string) TextOption {
	return func(c *textConfig) {
		c.label = label
	}
}

// TextValue sets the initial value. Defaults to the empty string.
func TextValue(value string) TextOption {
	return func(c *textConfig) {
		c.value = value
	}
}

// TextPlaceholder sets the placeholder text.
func TextPlaceholder(text string) TextOption {
	return func(c *textConfig) {
		c.placeholder = text
	}
}

// TextSize sets the input-group size token ("sm" or "lg").
func TextSize(size string) TextOption {
	return func(c *textConfig) {
		c.size = size
	}
}

// TextWidth sets the container width. Accepts a CSS length string or a
// numeric pixel value (see NormalizeCSSLength).
func TextWidth(width any) TextOption {
	return func(c *textConfig) {
		c.width = width
	}
}

// TextAddon sets the icon decoration.
func TextAddon(addon Addon) TextOption {
	return func(c *textConfig) {
		c.addon = addon
	}
}

// TextRestore attaches the session-resume collaborator. When set, a value
// restored for this id overrides the configured default.
func TextRestore(r Restorer) TextOption {
	return func(c *textConfig) {
		c.restorer = r
	}
}

// TextInputIcon builds a text input decorated with icon addons.
// The id must be unique within the page.
func TextInputIcon(id string, opts ...TextOption) (*vdom.VNode, error) {
	cfg := textConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	value := restoreString(cfg.restorer, id, cfg.value)

	sizeClass, err := GroupSizeClass(cfg.size)
	if err != nil {
		return nil, err
	}

	var style vdom.Attr
	if cfg.width != nil {
		w, err := NormalizeCSSLength(cfg.width)
		if err != nil {
			return nil, err
		}
		if w != "" {
			style = vdom.StyleAttr("width: " + w + ";")
		}
	}

	left, right := cfg.addon.normalize()

	field := vdom.Input(
		vdom.ID(id),
		vdom.Type("text"),
		vdom.Class("form-control"),
		attrIf(value != "", vdom.Value(value)),
		attrIf(cfg.placeholder != "", vdom.Placeholder(cfg.placeholder)),
	)

	return vdom.Div(
		vdom.Class("form-group", "shiny-input-container"),
		style,
		vdom.If(cfg.label != "", vdom.Label(vdom.For(id), cfg.label)),
		inputGroup(sizeClass, left, field, right),
	), nil
}

// inputGroup assembles the sized group around the field: left addon,
// field, right addon, in that fixed order.
func inputGroup(sizeClass string, left, field, right *vdom.VNode) *vdom.VNode {
	classes := []string{"input-group"}
	if sizeClass != "" {
		classes = append(classes, sizeClass)
	}
	return vdom.Div(
		vdom.Class(classes...),
		left,
		field,
		right,
	)
}

// attrIf returns the attribute when the condition holds; the zero Attr is
// ignored by the element constructors.
func attrIf(condition bool, a vdom.Attr) vdom.Attr {
	if condition {
		return a
	}
	return vdom.Attr{}
}
