package widgets

import (
	"github.com/dangdiep/shinyWidgets/pkg/server"
)

// UpdateTextInputIcon forwards to the session's primitive text-input
// update. The icon variant has no update behaviour of its own; the addon
// decorations are static markup.
func UpdateTextInputIcon(s *server.Session, id string, upd server.TextUpdate) error {
	return s.UpdateTextInput(id, upd)
}

// UpdateNumericInputIcon forwards to the session's primitive numeric-input
// update.
func UpdateNumericInputIcon(s *server.Session, id string, upd server.NumericUpdate) error {
	return s.UpdateNumericInput(id, upd)
}
