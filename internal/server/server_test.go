package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/calheat/calheat/pkg/pipeline"
	"github.com/calheat/calheat/pkg/series"
	"github.com/calheat/calheat/pkg/theme"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	s, err := series.ReadCSV(strings.NewReader(
		"date,value,label\n2016-01-01,1,first\n2016-06-15,5,midyear\n"), series.Columns{})
	if err != nil {
		t.Fatal(err)
	}

	return New(Config{
		Addr:        "127.0.0.1:0",
		Runner:      pipeline.NewRunner(nil, nil),
		Series:      s,
		DatasetHash: "test",
		Options:     pipeline.Options{Theme: theme.Default()},
		Logger:      log.New(io.Discard),
		Metrics:     NewMetricsForTesting(),
	})
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHealthz(t *testing.T) {
	rec := get(t, newTestServer(t), "/healthz")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestYearsListing(t *testing.T) {
	rec := get(t, newTestServer(t), "/years")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "2016") || !strings.Contains(body, `"rows":2`) {
		t.Errorf("body = %q", body)
	}
}

func TestRenderSVG(t *testing.T) {
	rec := get(t, newTestServer(t), "/years/2016.svg")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %q", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("content type = %q", ct)
	}
	if !strings.Contains(rec.Body.String(), "<svg") {
		t.Error("body is not SVG")
	}
}

func TestRenderJSON(t *testing.T) {
	rec := get(t, newTestServer(t), "/years/2016.json")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type = %q", ct)
	}
}

func TestRenderUnknownYear(t *testing.T) {
	rec := get(t, newTestServer(t), "/years/1999.svg")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestRenderBadRequests(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"non-numeric year", "/years/banana.svg"},
		{"unsupported format", "/years/2016.gif"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, newTestServer(t), tt.path)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	rec := get(t, newTestServer(t), "/metrics")
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
}
