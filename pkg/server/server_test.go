package server

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func newTestServer(t *testing.T, config *Config) (*Server, *httptest.Server) {
	t.Helper()
	if config == nil {
		config = DefaultConfig()
	}
	config.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

	srv, err := New(config)
	if err != nil {
		t.Fatal(err)
	}
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return srv, ts
}

func dialWS(t *testing.T, ts *httptest.Server, basePath string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + basePath + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial %s: %v", url, err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) *Frame {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	f, err := DecodeFrame(msg)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	return f
}

func TestWebSocketInputDispatch(t *testing.T) {
	srv, ts := newTestServer(t, nil)

	values := make(chan any, 1)
	srv.OnSessionStart = func(sess *Session) {
		sess.OnInput("q", func(v any) { values <- v })
	}

	conn := dialWS(t, ts, "/shinywidgets")
	err := conn.WriteJSON(Frame{Type: FrameInput, Payload: []byte(`{"id":"q","value":"golang"}`)})
	if err != nil {
		t.Fatal(err)
	}

	select {
	case v := <-values:
		if v != "golang" {
			t.Errorf("value = %v, want golang", v)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("input never dispatched")
	}
}

func TestWebSocketRestore(t *testing.T) {
	srv, ts := newTestServer(t, nil)

	started := make(chan *Session, 1)
	srv.OnSessionStart = func(sess *Session) { started <- sess }

	conn := dialWS(t, ts, "/shinywidgets")
	sess := <-started

	err := conn.WriteJSON(Frame{Type: FrameRestore, Payload: []byte(`{"values":{"q":"stored"}}`)})
	if err != nil {
		t.Fatal(err)
	}
	// The ping round-trip orders us after the restore frame, which the
	// same read loop processes first.
	if err := conn.WriteJSON(Frame{Type: FramePing}); err != nil {
		t.Fatal(err)
	}
	if f := readFrame(t, conn); f.Type != FramePong {
		t.Fatalf("frame type = %q, want pong", f.Type)
	}

	if v := sess.RestoreValue("q", "def"); v != "stored" {
		t.Errorf("RestoreValue = %v, want stored", v)
	}
}

func TestWebSocketCustomMessage(t *testing.T) {
	srv, ts := newTestServer(t, nil)

	started := make(chan *Session, 1)
	srv.OnSessionStart = func(sess *Session) { started <- sess }

	conn := dialWS(t, ts, "/shinywidgets")
	sess := <-started

	if err := sess.SendCustomMessage("sweetalert-toast", map[string]any{"title": "hi"}); err != nil {
		t.Fatal(err)
	}

	f := readFrame(t, conn)
	if f.Type != FrameMessage {
		t.Fatalf("frame type = %q, want message", f.Type)
	}
	if !strings.Contains(string(f.Payload), `"sweetalert-toast"`) {
		t.Errorf("payload = %s", f.Payload)
	}
}

func TestWebSocketSessionLifecycle(t *testing.T) {
	srv, ts := newTestServer(t, nil)

	started := make(chan *Session, 1)
	srv.OnSessionStart = func(sess *Session) { started <- sess }

	conn := dialWS(t, ts, "/shinywidgets")
	sess := <-started

	if srv.Sessions().Len() != 1 {
		t.Errorf("sessions = %d, want 1", srv.Sessions().Len())
	}

	conn.Close()

	select {
	case <-sess.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("session never closed after disconnect")
	}

	deadline := time.Now().Add(5 * time.Second)
	for srv.Sessions().Len() != 0 {
		if time.Now().After(deadline) {
			t.Fatal("session never unregistered")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestWebSocketMaxSessions(t *testing.T) {
	_, ts := newTestServer(t, &Config{MaxSessions: 1})

	dialWS(t, ts, "/shinywidgets")

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/shinywidgets/ws"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err != websocket.ErrBadHandshake {
		t.Fatalf("err = %v, want ErrBadHandshake", err)
	}
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", resp.StatusCode)
	}
}

func TestClientScriptRoute(t *testing.T) {
	_, ts := newTestServer(t, nil)

	resp, err := http.Get(ts.URL + "/shinywidgets/client.js")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.Contains(ct, "javascript") {
		t.Errorf("content type = %q", ct)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(body), "addMessageHandler") {
		t.Error("client script missing runtime entry points")
	}
}

func TestMetricsRoute(t *testing.T) {
	_, ts := newTestServer(t, nil)

	resp, err := http.Get(ts.URL + "/metrics")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}
}

func TestCustomBasePath(t *testing.T) {
	_, ts := newTestServer(t, &Config{BasePath: "/app"})

	conn := dialWS(t, ts, "/app")
	if err := conn.WriteJSON(Frame{Type: FramePing}); err != nil {
		t.Fatal(err)
	}
	if f := readFrame(t, conn); f.Type != FramePong {
		t.Errorf("frame type = %q, want pong", f.Type)
	}
}
