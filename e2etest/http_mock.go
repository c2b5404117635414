package e2etest

import (
	"net/http"
	"net/http/httptest"
	"sync"
)

// RecordedRequest captures what the proxy sent upstream
type RecordedRequest struct {
	Method        string
	Path          string
	RawQuery      string
	Authorization string
}

// MockUpstream is a fake aggregator API. Routes are registered per path
// and every received request is recorded for assertions.
type MockUpstream struct {
	mu       sync.Mutex
	server   *httptest.Server
	mux      *http.ServeMux
	requests []RecordedRequest
}

func NewMockUpstream() *MockUpstream {
	m := &MockUpstream{
		mux: http.NewServeMux(),
	}

	m.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.mu.Lock()
		m.requests = append(m.requests, RecordedRequest{
			Method:        r.Method,
			Path:          r.URL.Path,
			RawQuery:      r.URL.RawQuery,
			Authorization: r.Header.Get("Authorization"),
		})
		m.mu.Unlock()

		m.mux.ServeHTTP(w, r)
	}))

	return m
}

// URL returns the base URL of the mock upstream
func (m *MockUpstream) URL() string {
	return m.server.URL
}

// Close shuts the mock upstream down
func (m *MockUpstream) Close() {
	m.server.Close()
}

// HandleJSON registers a fixed JSON response for a path
func (m *MockUpstream) HandleJSON(path string, status int, body string) {
	m.mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	})
}

// HandleFunc registers a custom handler for a path
func (m *MockUpstream) HandleFunc(path string, handler http.HandlerFunc) {
	m.mux.HandleFunc(path, handler)
}

// Requests returns a snapshot of all recorded requests
func (m *MockUpstream) Requests() []RecordedRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]RecordedRequest, len(m.requests))
	copy(out, m.requests)
	return out
}

// RequestsFor returns the recorded requests matching a path
func (m *MockUpstream) RequestsFor(path string) []RecordedRequest {
	var out []RecordedRequest
	for _, req := range m.Requests() {
		if req.Path == path {
			out = append(out, req)
		}
	}
	return out
}
