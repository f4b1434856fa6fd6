package server

import (
	"encoding/json"
	"fmt"
)

// Frame types on the wire.
const (
	// Client to server.
	FrameInput   = "input"
	FrameRestore = "restore"
	FramePing    = "ping"

	// Server to client.
	FrameMessage = "message"
	FramePong    = "pong"
)

// Frame is the JSON envelope for every websocket message.
type Frame struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// InputFrame reports a client-side input value change.
// Priority "event" forces listener dispatch even when the value is
// unchanged; any other priority dispatches only on change.
type InputFrame struct {
	ID       string `json:"id"`
	Value    any    `json:"value"`
	Priority string `json:"priority,omitempty"`
}

// PriorityEvent is the priority token for always-dispatched input updates.
const PriorityEvent = "event"

// RestoreFrame carries the input values of a previous session, sent by the
// client once after connecting.
type RestoreFrame struct {
	Values map[string]any `json:"values"`
}

// MessageFrame is a named server-to-client custom message. The client
// dispatches it to the handler registered under Handler.
type MessageFrame struct {
	Handler string `json:"handler"`
	Data    any    `json:"data"`
}

// DecodeFrame parses a raw websocket message into a Frame.
func DecodeFrame(data []byte) (*Frame, error) {
	var f Frame
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("server: decode frame: %w", err)
	}
	if f.Type == "" {
		return nil, fmt.Errorf("server: decode frame: missing type")
	}
	return &f, nil
}

// EncodeMessage encodes a custom message as an outbound frame.
func EncodeMessage(handler string, data any) ([]byte, error) {
	payload, err := json.Marshal(MessageFrame{Handler: handler, Data: data})
	if err != nil {
		return nil, fmt.Errorf("server: encode message %q: %w", handler, err)
	}
	return json.Marshal(Frame{Type: FrameMessage, Payload: payload})
}

// encodePong encodes the reply to a client ping.
func encodePong() []byte {
	b, _ := json.Marshal(Frame{Type: FramePong})
	return b
}
