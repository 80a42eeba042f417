package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/castcolor/pkg/cache"
	"github.com/matzehuels/castcolor/pkg/demo"
	"github.com/matzehuels/castcolor/pkg/pipeline"
)

func newTestServer(t *testing.T, opts Options) *httptest.Server {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{})
	runner := pipeline.NewRunner(cache.NewMemoryCache(), cache.NewScopedKeyer(nil, "server:"), logger)
	ts := httptest.NewServer(New(runner, logger, opts).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func post(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "text/plain", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func get(t *testing.T, url string) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return v
}

func demoText(t *testing.T, name string) string {
	t.Helper()
	text, err := demo.Text(name)
	if err != nil {
		t.Fatal(err)
	}
	return text
}

func TestHealthEndpoint(t *testing.T) {
	ts := newTestServer(t, Options{})
	resp := get(t, ts.URL+"/healthz")

	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected status 200, got %d", resp.StatusCode)
	}
	if h := decode[HealthResponse](t, resp); h.Status != "ok" {
		t.Errorf("expected status 'ok', got '%s'", h.Status)
	}
}

func TestRequestID(t *testing.T) {
	ts := newTestServer(t, Options{})

	resp := get(t, ts.URL+"/healthz")
	id := resp.Header.Get(RequestIDHeader)
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("generated request id %q is not a uuid", id)
	}

	want := uuid.NewString()
	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/healthz", nil)
	req.Header.Set(RequestIDHeader, want)
	resp2, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp2.Body.Close()
	if got := resp2.Header.Get(RequestIDHeader); got != want {
		t.Errorf("request id = %q, want echoed %q", got, want)
	}
}

func TestSolveEndpoint(t *testing.T) {
	ts := newTestServer(t, Options{LeadsApart: true})

	tests := []struct {
		query string
		total int
		found int
	}{
		{"", 2, 1},
		{"?leads_apart=true", 2, 1},
		{"?leads_apart=false", 2, 2},
	}
	for _, tt := range tests {
		resp := post(t, ts.URL+"/v1/solve"+tt.query, demoText(t, demo.Yes))
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("solve%s: status %d", tt.query, resp.StatusCode)
		}
		body := decode[SolveResponse](t, resp)
		if body.Total != tt.total || body.Found != tt.found {
			t.Errorf("solve%s: total/found = %d/%d, want %d/%d", tt.query, body.Total, body.Found, tt.total, tt.found)
		}
		if body.RequestID != resp.Header.Get(RequestIDHeader) {
			t.Errorf("body request id %q differs from header", body.RequestID)
		}
	}
}

func TestSolveFilteredSolution(t *testing.T) {
	ts := newTestServer(t, Options{LeadsApart: true})
	body := decode[SolveResponse](t, post(t, ts.URL+"/v1/solve", demoText(t, demo.Yes)))

	want := []int{1, 3, 1, 2, 4, 4}
	if len(body.Solutions) != 1 {
		t.Fatalf("solutions = %v", body.Solutions)
	}
	for i, a := range want {
		if body.Solutions[0][i] != a {
			t.Errorf("role %d: actor %d, want %d", i+1, body.Solutions[0][i], a)
		}
	}
}

func TestSolveErrors(t *testing.T) {
	ts := newTestServer(t, Options{MaxNodes: 3})

	tests := []struct {
		name   string
		path   string
		body   string
		status int
		code   string
	}{
		{"malformed", "/v1/solve", "2 1", http.StatusBadRequest, "INVALID_INPUT"},
		{"bad flag", "/v1/solve?leads_apart=maybe", "", http.StatusBadRequest, "INVALID_INPUT"},
		{"limit", "/v1/solve", demoText(t, demo.Yes), http.StatusUnprocessableEntity, "SEARCH_LIMIT"},
		{"bad direction", "/v1/reduce/sideways", "", http.StatusNotFound, "INVALID_DIRECTION"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := post(t, ts.URL+tt.path, tt.body)
			if resp.StatusCode != tt.status {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.status)
			}
			e := decode[ErrorResponse](t, resp)
			if e.Code != tt.code {
				t.Errorf("code = %q, want %q", e.Code, tt.code)
			}
			if e.RequestID == "" {
				t.Error("error should carry the request id")
			}
		})
	}
}

func TestReduceEndpoint(t *testing.T) {
	ts := newTestServer(t, Options{})

	resp := post(t, ts.URL+"/v1/reduce/to-coloring", demoText(t, demo.Smallest))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}
	out, _ := io.ReadAll(resp.Body)
	if string(out) != "2\n1\n2\n1 2\n" {
		t.Errorf("to-coloring = %q", out)
	}

	resp = post(t, ts.URL+"/v1/reduce/to-casting", "2 1 1 1 2")
	out, _ = io.ReadAll(resp.Body)
	if !strings.HasPrefix(string(out), "5\n3\n4\n") {
		t.Errorf("to-casting = %q", out)
	}
}

func TestDemoEndpoints(t *testing.T) {
	ts := newTestServer(t, Options{})

	list := decode[[]DemoInfo](t, get(t, ts.URL+"/v1/demos"))
	if len(list) != 3 || list[0].Name != demo.No {
		t.Errorf("demos = %+v", list)
	}

	resp := get(t, ts.URL+"/v1/demos/smallest")
	out, _ := io.ReadAll(resp.Body)
	if string(out) != demoText(t, demo.Smallest) {
		t.Errorf("demo text = %q", out)
	}

	resp = get(t, ts.URL+"/v1/demos/huge")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("unknown demo status = %d, want 404", resp.StatusCode)
	}
	if e := decode[ErrorResponse](t, resp); e.Code != "NOT_FOUND" {
		t.Errorf("unknown demo code = %q", e.Code)
	}
}

func TestUnknownRoute(t *testing.T) {
	ts := newTestServer(t, Options{})
	resp := get(t, ts.URL+"/v2/whatever")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}
