package server

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"reflect"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// InputListener observes value changes for one input id.
type InputListener func(value any)

// Session is one connected browser session: its reactive input map, the
// values restored from a previous session, and the websocket connection
// for pushing custom messages.
type Session struct {
	id     string
	conn   *websocket.Conn
	config *Config
	logger *slog.Logger

	mu        sync.RWMutex
	inputs    map[string]any
	restored  map[string]any
	listeners map[string][]InputListener

	send       chan []byte
	outbox     [][]byte // detached sessions collect frames here
	done       chan struct{}
	closeOnce  sync.Once
	onClose    func(*Session)
	lastActive time.Time
}

// generateSessionID returns a random 16-byte hex id.
func generateSessionID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand failure is unrecoverable for id generation
		panic("server: session id generation: " + err.Error())
	}
	return hex.EncodeToString(b)
}

// newSession creates a connected session. The caller starts the loops.
func newSession(conn *websocket.Conn, config *Config, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Session{
		id:         generateSessionID(),
		conn:       conn,
		config:     config,
		logger:     logger.With("session", ""),
		inputs:     make(map[string]any),
		restored:   make(map[string]any),
		listeners:  make(map[string][]InputListener),
		send:       make(chan []byte, config.SendQueueSize),
		done:       make(chan struct{}),
		lastActive: time.Now(),
	}
	s.logger = logger.With("session", s.id[:8])
	return s
}

// NewDetachedSession creates a session without a connection. Outbound
// frames accumulate in an outbox instead of being written to a socket.
// Intended for tests and offline rendering.
func NewDetachedSession() *Session {
	config := DefaultConfig()
	_ = config.Validate()
	return &Session{
		id:        generateSessionID(),
		config:    config,
		logger:    config.Logger,
		inputs:    make(map[string]any),
		restored:  make(map[string]any),
		listeners: make(map[string][]InputListener),
		done:      make(chan struct{}),
	}
}

// ID returns the session id.
func (s *Session) ID() string {
	return s.id
}

// Logger returns the session logger.
func (s *Session) Logger() *slog.Logger {
	return s.logger
}

// InputValue returns the current value of an input, if set.
func (s *Session) InputValue(id string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.inputs[id]
	return v, ok
}

// SetInput records an input value and notifies listeners. With
// PriorityEvent the listeners fire even when the value is unchanged;
// otherwise an unchanged value is a no-op.
func (s *Session) SetInput(id string, value any, priority string) {
	s.mu.Lock()
	prev, existed := s.inputs[id]
	s.inputs[id] = value
	fns := append([]InputListener(nil), s.listeners[id]...)
	s.mu.Unlock()

	if priority != PriorityEvent && existed && reflect.DeepEqual(prev, value) {
		return
	}
	for _, fn := range fns {
		fn(value)
	}
}

// OnInput registers a listener for an input id. Listeners run on the
// session's read loop.
func (s *Session) OnInput(id string, fn InputListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[id] = append(s.listeners[id], fn)
}

// restore merges previous-session values into the restoration map.
// Values already submitted in this session are not overridden.
func (s *Session) restore(values map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, v := range values {
		s.restored[id] = v
	}
}

// RestoreValue returns the value restored for an input id, or def when
// nothing was restored. It implements widgets.Restorer.
func (s *Session) RestoreValue(id string, def any) any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if v, ok := s.restored[id]; ok {
		return v
	}
	return def
}

// SendCustomMessage pushes a named message to the client. The client
// dispatches it to the handler registered under name.
func (s *Session) SendCustomMessage(name string, payload any) error {
	frame, err := EncodeMessage(name, payload)
	if err != nil {
		return err
	}
	return s.enqueue(frame, name)
}

// enqueue places a frame on the outbound queue, or the outbox for
// detached sessions.
func (s *Session) enqueue(frame []byte, name string) error {
	if s.IsClosed() {
		return ErrSessionClosed
	}
	if s.conn == nil {
		s.mu.Lock()
		s.outbox = append(s.outbox, frame)
		s.mu.Unlock()
		metrics().messagesSent.WithLabelValues(name).Inc()
		return nil
	}
	select {
	case s.send <- frame:
		metrics().messagesSent.WithLabelValues(name).Inc()
		return nil
	default:
		metrics().wsErrors.WithLabelValues("queue_full").Inc()
		return &SessionError{SessionID: s.id, Op: "send " + name, Err: ErrSendQueueFull}
	}
}

// DrainOutbox returns and clears the frames a detached session would have
// sent. Frames are decoded envelopes; decode errors are impossible for
// frames produced by EncodeMessage.
func (s *Session) DrainOutbox() []MessageFrame {
	s.mu.Lock()
	raw := s.outbox
	s.outbox = nil
	s.mu.Unlock()

	out := make([]MessageFrame, 0, len(raw))
	for _, b := range raw {
		f, err := DecodeFrame(b)
		if err != nil || f.Type != FrameMessage {
			continue
		}
		var m MessageFrame
		if err := json.Unmarshal(f.Payload, &m); err == nil {
			out = append(out, m)
		}
	}
	return out
}

// writeLoop drains the send queue onto the websocket connection.
func (s *Session) writeLoop() {
	for {
		select {
		case frame := <-s.send:
			s.conn.SetWriteDeadline(time.Now().Add(s.config.WriteTimeout))
			if err := s.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				s.logger.Error("write error", "error", err)
				metrics().wsErrors.WithLabelValues("write").Inc()
				s.Close()
				return
			}
		case <-s.done:
			return
		}
	}
}

// ReadLoop reads frames from the connection until it closes, feeding the
// input map and the restoration map. It blocks; run it on its own
// goroutine (HandleWebSocket does).
func (s *Session) ReadLoop() {
	defer s.Close()

	s.conn.SetReadLimit(s.config.MaxMessageSize)

	for {
		s.conn.SetReadDeadline(time.Now().Add(s.config.ReadTimeout))

		_, msg, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				s.logger.Error("read error", "error", err)
				metrics().wsErrors.WithLabelValues("read").Inc()
			}
			return
		}

		s.mu.Lock()
		s.lastActive = time.Now()
		s.mu.Unlock()

		frame, err := DecodeFrame(msg)
		if err != nil {
			s.logger.Error("frame decode error", "error", err)
			metrics().wsErrors.WithLabelValues("decode").Inc()
			continue
		}

		switch frame.Type {
		case FrameInput:
			var in InputFrame
			if err := json.Unmarshal(frame.Payload, &in); err != nil || in.ID == "" {
				s.logger.Error("input frame decode error", "error", err)
				continue
			}
			metrics().inputsReceived.Inc()
			s.SetInput(in.ID, in.Value, in.Priority)

		case FrameRestore:
			var rf RestoreFrame
			if err := json.Unmarshal(frame.Payload, &rf); err != nil {
				s.logger.Error("restore frame decode error", "error", err)
				continue
			}
			s.restore(rf.Values)
			s.logger.Debug("restored values", "count", len(rf.Values))

		case FramePing:
			if s.conn != nil {
				select {
				case s.send <- encodePong():
				default:
				}
			}

		default:
			s.logger.Warn("unknown frame type", "type", frame.Type)
		}
	}
}

// Close tears the session down. Safe to call multiple times.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
		if s.conn != nil {
			s.conn.Close()
		}
		if s.onClose != nil {
			s.onClose(s)
		}
		s.logger.Debug("session closed")
	})
}

// IsClosed reports whether the session has been closed.
func (s *Session) IsClosed() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

// Done returns a channel closed when the session closes.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// LastActive returns the time of the last inbound frame.
func (s *Session) LastActive() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastActive
}
