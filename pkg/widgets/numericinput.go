package widgets

import (
	"github.com/dangdiep/shinyWidgets/pkg/vdom"
)

// NumericOption configures a NumericInputIcon widget.
type NumericOption func(*numericConfig)

type numericConfig struct {
	label    string
	size     string
	width    any
	addon    Addon
	restorer Restorer

	min, max, step          float64
	hasMin, hasMax, hasStep bool
}

// NumericLabel sets the display label, associated with the field via "for".
func NumericLabel(label string) NumericOption {
	return func(c *numericConfig) {
		c.label = label
	}
}

// NumericMin sets the lower bound attribute.
func NumericMin(min float64) NumericOption {
	return func(c *numericConfig) {
		c.min = min
		c.hasMin = true
	}
}

// NumericMax sets the upper bound attribute.
func NumericMax(max float64) NumericOption {
	return func(c *numericConfig) {
		c.max = max
		c.hasMax = true
	}
}

// NumericStep sets the step attribute.
func NumericStep(step float64) NumericOption {
	return func(c *numericConfig) {
		c.step = step
		c.hasStep = true
	}
}

// NumericSize sets the input-group size token ("sm" or "lg").
func NumericSize(size string) NumericOption {
	return func(c *numericConfig) {
		c.size = size
	}
}

// NumericWidth sets the container width. Accepts a CSS length string or a
// numeric pixel value (see NormalizeCSSLength).
func NumericWidth(width any) NumericOption {
	return func(c *numericConfig) {
		c.width = width
	}
}

// NumericAddon sets the icon decoration.
func NumericAddon(addon Addon) NumericOption {
	return func(c *numericConfig) {
		c.addon = addon
	}
}

// NumericRestore attaches the session-resume collaborator. When set, a
// value restored for this id overrides the supplied value.
func NumericRestore(r Restorer) NumericOption {
	return func(c *numericConfig) {
		c.restorer = r
	}
}

// NumericInputIcon builds a numeric input decorated with icon addons.
// Unlike the text variant the value is required, and the field carries
// min/max/step bounds instead of a placeholder.
func NumericInputIcon(id string, value float64, opts ...NumericOption) (*vdom.VNode, error) {
	cfg := numericConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	value = restoreNumber(cfg.restorer, id, value)

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
		vdom.Type("number"),
		vdom.Class("form-control"),
		vdom.Value(formatNumber(value)),
		attrIf(cfg.hasMin, vdom.Min(formatNumber(cfg.min))),
		attrIf(cfg.hasMax, vdom.Max(formatNumber(cfg.max))),
		attrIf(cfg.hasStep, vdom.Step(formatNumber(cfg.step))),
	)

	return vdom.Div(
		vdom.Class("form-group", "shiny-input-container"),
		style,
		vdom.If(cfg.label != "", vdom.Label(vdom.For(id), cfg.label)),
		inputGroup(sizeClass, left, field, right),
	), nil
}
