package server

// Update message channels consumed by the embedded client.
const (
	MsgUpdateText    = "shinywidgets:update-text"
	MsgUpdateNumeric = "shinywidgets:update-numeric"
)

// TextUpdate describes a partial update of a text input. Nil fields are
// left untouched on the client.
type TextUpdate struct {
	Value       *string `json:"value,omitempty"`
	Label       *string `json:"label,omitempty"`
	Placeholder *string `json:"placeholder,omitempty"`
}

// NumericUpdate describes a partial update of a numeric input. Nil fields
// are left untouched on the client.
type NumericUpdate struct {
	Value *float64 `json:"value,omitempty"`
	Label *string  `json:"label,omitempty"`
	Min   *float64 `json:"min,omitempty"`
	Max   *float64 `json:"max,omitempty"`
	Step  *float64 `json:"step,omitempty"`
}

// The envelopes key an update by its input id on the wire.
type textUpdateEnvelope struct {
	ID string `json:"id"`
	TextUpdate
}

type numericUpdateEnvelope struct {
	ID string `json:"id"`
	NumericUpdate
}

// UpdateTextInput changes a rendered text input's displayed value, label,
// or placeholder by sending a client message keyed by id.
func (s *Session) UpdateTextInput(id string, upd TextUpdate) error {
	return s.SendCustomMessage(MsgUpdateText, textUpdateEnvelope{ID: id, TextUpdate: upd})
}

// UpdateNumericInput changes a rendered numeric input's displayed value,
// label, or bounds by sending a client message keyed by id.
func (s *Session) UpdateNumericInput(id string, upd NumericUpdate) error {
	return s.SendCustomMessage(MsgUpdateNumeric, numericUpdateEnvelope{ID: id, NumericUpdate: upd})
}
