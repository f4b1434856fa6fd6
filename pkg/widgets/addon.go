package widgets

import (
	"fmt"

	"github.com/dangdiep/shinyWidgets/pkg/vdom"
)

// addonKind discriminates the Addon variants.
type addonKind uint8

const (
	addonNone addonKind = iota
	addonSingle
	addonPair
)

// Addon is a tagged variant describing the icon decorations of an input
// group: no decoration, a single left decoration, or a left/right pair.
type Addon struct {
	kind  addonKind
	left  *vdom.VNode
	right *vdom.VNode
}

// NoAddon returns the empty decoration. It is the zero value of Addon.
func NoAddon() Addon {
	return Addon{}
}

// Icon places a single decoration on the left of the field. A nil node is
// equivalent to NoAddon.
func Icon(node *vdom.VNode) Addon {
	return Addon{kind: addonSingle, left: node}
}

// IconPair places decorations on both sides of the field. A nil left
// leaves the left side bare; the right container is emitted even when
// right is nil, preserving the group's trailing-addon layout.
func IconPair(left, right *vdom.VNode) Addon {
	return Addon{kind: addonPair, left: left, right: right}
}

// Icons builds an Addon from a list of decorations: none, a single left
// decoration, or a left/right pair. More than two elements fail with
// ErrInvalidArgument rather than being silently truncated.
func Icons(nodes ...*vdom.VNode) (Addon, error) {
	switch len(nodes) {
	case 0:
		return NoAddon(), nil
	case 1:
		return Icon(nodes[0]), nil
	case 2:
		return IconPair(nodes[0], nodes[1]), nil
	default:
		return Addon{}, fmt.Errorf("%w: icon must be a single icon or a list of at most two, got %d elements", ErrInvalidArgument, len(nodes))
	}
}

// normalize resolves the variant into the left and right addon containers.
// Absent sides are nil.
func (a Addon) normalize() (left, right *vdom.VNode) {
	switch a.kind {
	case addonSingle:
		if a.left != nil {
			left = wrapAddon(a.left)
		}
	case addonPair:
		if a.left != nil {
			left = wrapAddon(a.left)
		}
		// The right container is present even when its content is absent.
		right = wrapAddon(a.right)
	}
	return left, right
}

// wrapAddon wraps a decoration in the addon container. The class name is
// part of the markup contract.
func wrapAddon(content *vdom.VNode) *vdom.VNode {
	return vdom.Span(vdom.Class("input-group-addon"), content)
}
