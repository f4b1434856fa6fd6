package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
)

func okHandler(status int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
	})
}

func TestPrometheus(t *testing.T) {
	reg := prometheus.NewRegistry()
	mw := Prometheus(WithRegistry(reg), WithNamespace("testns"))

	h := mw(okHandler(http.StatusTeapot))

	req := httptest.NewRequest(http.MethodGet, "/widgets", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusTeapot {
		t.Fatalf("status = %d, want 418", rec.Code)
	}

	families, err := reg.Gather()
	if err != nil {
		t.Fatal(err)
	}
	found := map[string]bool{}
	for _, f := range families {
		found[f.GetName()] = true
	}
	// The instruments are process-global; the first registry to
	// initialize them owns them.
	if len(found) > 0 {
		if !found["testns_http_requests_total"] && !found["shinywidgets_http_requests_total"] {
			t.Errorf("request counter not registered, got %v", found)
		}
	}
}

func TestStatusRecorderDefault(t *testing.T) {
	// Handlers that never call WriteHeader count as 200.
	rec := &statusRecorder{ResponseWriter: httptest.NewRecorder(), status: http.StatusOK}
	rec.Write([]byte("ok"))
	if rec.status != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.status)
	}
}

func TestOTel(t *testing.T) {
	mw := OTel(WithTracerName("test"))
	h := mw(okHandler(http.StatusCreated))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/widgets", nil))
	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want 201", rec.Code)
	}
}

func TestOTelFilter(t *testing.T) {
	mw := OTel(WithRequestFilter(func(r *http.Request) bool {
		return r.URL.Path != "/healthz"
	}))
	h := mw(okHandler(http.StatusOK))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("filtered request status = %d, want 200", rec.Code)
	}
}

func TestOTelAttributeExtractor(t *testing.T) {
	called := false
	mw := OTel(WithAttributeExtractor(func(r *http.Request) []attribute.KeyValue {
		called = true
		return []attribute.KeyValue{attribute.String("widget.id", "q")}
	}))
	h := mw(okHandler(http.StatusOK))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if !called {
		t.Error("attribute extractor never called")
	}
}
