package sweetalert

import (
	"crypto/rand"
	"encoding/hex"
)

// Message channels consumed by the embedded client runtime. The names and
// payload field names are part of the client contract.
const (
	MsgShow     = "sweetalert-sw"
	MsgConfirm  = "sweetalert-sw-confirm"
	MsgInput    = "sweetalert-sw-input"
	MsgProgress = "sweetalert-sw-progress"
	MsgToast    = "sweetalert-toast"
	MsgClose    = "sweetalert-sw-close"
)

// Sender pushes a named custom message to one client. *server.Session
// implements Sender.
type Sender interface {
	SendCustomMessage(name string, payload any) error
}

// Icon is the dialog icon type.
type Icon string

const (
	IconSuccess  Icon = "success"
	IconError    Icon = "error"
	IconWarning  Icon = "warning"
	IconInfo     Icon = "info"
	IconQuestion Icon = "question"
)

// Options configures a dialog. The zero value shows a bare dialog with an
// OK button. Fields map onto the dialog library's configuration; unset
// fields are omitted from the payload so the library applies its own
// defaults.
type Options struct {
	Title string
	Text  string

	// HTML is raw markup used as the dialog body instead of Text. It is
	// sanitized before leaving the server, and the client injects it into
	// a detached element passed to the dialog (the as_html path).
	HTML string

	Icon Icon

	ShowCancelButton  bool
	ConfirmButtonText string
	CancelButtonText  string

	// TimerMillis auto-closes the dialog after the given delay.
	TimerMillis int

	// Position places the dialog ("center", "top-end", ...).
	Position string

	// InputType requests an input field inside the dialog ("text",
	// "number", "password", "select", ...). Used with Input.
	InputType        string
	InputValue       string
	InputPlaceholder string

	// ResetInput clears the bound input before the dialog opens, so a
	// repeated prompt can deliver the same answer again. Used with Input;
	// not part of the dialog configuration itself.
	ResetInput bool
}

// config renders the options as the dialog library's configuration map.
func (o Options) config() map[string]any {
	cfg := make(map[string]any)
	if o.Title != "" {
		cfg["title"] = o.Title
	}
	if o.HTML != "" {
		cfg["html"] = sanitizeHTML(o.HTML)
	} else if o.Text != "" {
		cfg["text"] = o.Text
	}
	if o.Icon != "" {
		cfg["icon"] = string(o.Icon)
	}
	if o.ShowCancelButton {
		cfg["showCancelButton"] = true
	}
	if o.ConfirmButtonText != "" {
		cfg["confirmButtonText"] = o.ConfirmButtonText
	}
	if o.CancelButtonText != "" {
		cfg["cancelButtonText"] = o.CancelButtonText
	}
	if o.TimerMillis > 0 {
		cfg["timer"] = o.TimerMillis
	}
	if o.Position != "" {
		cfg["position"] = o.Position
	}
	if o.InputType != "" {
		cfg["input"] = o.InputType
	}
	if o.InputValue != "" {
		cfg["inputValue"] = o.InputValue
	}
	if o.InputPlaceholder != "" {
		cfg["inputPlaceholder"] = o.InputPlaceholder
	}
	return cfg
}

// newSwID mints the id of the detached element carrying an HTML body, so
// the client can unbind and remove it after dismissal.
func newSwID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		panic("sweetalert: id generation: " + err.Error())
	}
	return "sw-" + hex.EncodeToString(b)
}

// Show displays a dialog with no response relay.
func Show(s Sender, opts Options) error {
	payload := map[string]any{
		"config":  opts.config(),
		"as_html": opts.HTML != "",
	}
	if opts.HTML != "" {
		payload["sw_id"] = newSwID()
	}
	return s.SendCustomMessage(MsgShow, payload)
}

// Confirm shows a confirmation dialog. The client clears the bound input
// first, then sets it to true when the user confirms or false when the
// user cancels or dismisses.
func Confirm(s Sender, inputID string, opts Options) error {
	payload := map[string]any{
		"id":      inputID,
		"swal":    opts.config(),
		"as_html": opts.HTML != "",
	}
	if opts.HTML != "" {
		payload["sw_id"] = newSwID()
	}
	return s.SendCustomMessage(MsgConfirm, payload)
}

// Input shows a dialog with an input field. The client relays the raw
// resolution value (null when dismissed) to the bound input with event
// priority, so listeners fire even when the answer repeats.
func Input(s Sender, inputID string, opts Options) error {
	payload := map[string]any{
		"id":          inputID,
		"swal":        opts.config(),
		"reset_input": opts.ResetInput,
	}
	return s.SendCustomMessage(MsgInput, payload)
}

// Progress shows a dialog whose body is a pre-existing page element,
// identified by elementID. The client makes the element visible and hands
// it to the dialog, so live progress indicators keep updating inside the
// pop-up.
func Progress(s Sender, elementID string, opts Options) error {
	payload := opts.config()
	payload["idel"] = elementID
	return s.SendCustomMessage(MsgProgress, payload)
}

// Toast shows a transient toast notification. No response is relayed.
func Toast(s Sender, opts Options) error {
	payload := opts.config()
	payload["toast"] = true
	if opts.Position == "" {
		payload["position"] = "top-end"
	}
	payload["showConfirmButton"] = false
	return s.SendCustomMessage(MsgToast, payload)
}

// Close dismisses any currently open dialog, unconditionally.
func Close(s Sender) error {
	return s.SendCustomMessage(MsgClose, map[string]any{})
}
