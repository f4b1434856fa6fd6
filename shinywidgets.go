// Package shinywidgets provides the public API for the shinyWidgets
// toolkit: server-rendered input widgets with icon decorations, live
// update messages, and SweetAlert2 pop-up dialogs driven over a
// websocket session.
//
// This is the recommended import for most applications:
//
//	import "github.com/dangdiep/shinyWidgets"
//
// Usage:
//
//	node, err := shinywidgets.TextInputIcon("search",
//	    shinywidgets.TextLabel("Search"),
//	    shinywidgets.TextAddon(shinywidgets.Icon(vdom.I(vdom.Class("fa", "fa-search")))),
//	)
//
// Subpackages hold the full surface: pkg/widgets for builders, pkg/server
// for the session runtime, pkg/sweetalert for dialogs, pkg/vdom and
// pkg/render for markup.
package shinywidgets

import (
	"github.com/dangdiep/shinyWidgets/pkg/server"
	"github.com/dangdiep/shinyWidgets/pkg/sweetalert"
	"github.com/dangdiep/shinyWidgets/pkg/vdom"
	"github.com/dangdiep/shinyWidgets/pkg/widgets"
)

// =============================================================================
// Widget builders (pkg/widgets)
// =============================================================================

// Addon describes the icon decorations of an input group.
type Addon = widgets.Addon

// Restorer resolves previously submitted values during session resume.
type Restorer = widgets.Restorer

// TextOption configures TextInputIcon.
type TextOption = widgets.TextOption

// NumericOption configures NumericInputIcon.
type NumericOption = widgets.NumericOption

// ErrInvalidArgument reports a rejected builder argument.
var ErrInvalidArgument = widgets.ErrInvalidArgument

// TextInputIcon builds a text input decorated with icon addons.
func TextInputIcon(id string, opts ...TextOption) (*vdom.VNode, error) {
	return widgets.TextInputIcon(id, opts...)
}

// NumericInputIcon builds a numeric input decorated with icon addons.
func NumericInputIcon(id string, value float64, opts ...NumericOption) (*vdom.VNode, error) {
	return widgets.NumericInputIcon(id, value, opts...)
}

// Decoration constructors.
var (
	NoAddon  = widgets.NoAddon
	Icon     = widgets.Icon
	IconPair = widgets.IconPair
	Icons    = widgets.Icons
)

// Text widget options.
var (
	TextLabel       = widgets.TextLabel
	TextValue       = widgets.TextValue
	TextPlaceholder = widgets.TextPlaceholder
	TextSize        = widgets.TextSize
	TextWidth       = widgets.TextWidth
	TextAddon       = widgets.TextAddon
	TextRestore     = widgets.TextRestore
)

// Numeric widget options.
var (
	NumericLabel   = widgets.NumericLabel
	NumericMin     = widgets.NumericMin
	NumericMax     = widgets.NumericMax
	NumericStep    = widgets.NumericStep
	NumericSize    = widgets.NumericSize
	NumericWidth   = widgets.NumericWidth
	NumericAddon   = widgets.NumericAddon
	NumericRestore = widgets.NumericRestore
)

// =============================================================================
// Session runtime (pkg/server)
// =============================================================================

// Session is one connected browser session.
type Session = server.Session

// Server owns the websocket endpoint and session manager.
type Server = server.Server

// Config configures the server.
type Config = server.Config

// TextUpdate is a partial update of a rendered text input.
type TextUpdate = server.TextUpdate

// NumericUpdate is a partial update of a rendered numeric input.
type NumericUpdate = server.NumericUpdate

// NewServer creates a server. A nil config uses defaults.
func NewServer(config *Config) (*Server, error) {
	return server.New(config)
}

// UpdateTextInputIcon changes a rendered text input from the server.
var UpdateTextInputIcon = widgets.UpdateTextInputIcon

// UpdateNumericInputIcon changes a rendered numeric input from the server.
var UpdateNumericInputIcon = widgets.UpdateNumericInputIcon

// =============================================================================
// Dialogs (pkg/sweetalert)
// =============================================================================

// SweetAlertOptions configures a pop-up dialog.
type SweetAlertOptions = sweetalert.Options

// Dialog entry points. Each pushes one custom message to the session.
var (
	Show       = sweetalert.Show
	Confirm    = sweetalert.Confirm
	Input      = sweetalert.Input
	Progress   = sweetalert.Progress
	Toast      = sweetalert.Toast
	CloseAlert = sweetalert.Close
)
