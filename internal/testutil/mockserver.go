package testutil

import (
	"net/http"
	"net/http/httptest"
	"sync"
)

// MockServer wraps httptest.Server and records the requests it receives
type MockServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []*http.Request
}

// NewMockServer creates a new mock HTTP server
func NewMockServer(handler http.HandlerFunc) *MockServer {
	ms := &MockServer{}

	ms.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ms.mu.Lock()
		ms.requests = append(ms.requests, r)
		ms.mu.Unlock()
		handler(w, r)
	}))

	return ms
}

// NewJSONServer serves body with the given status code on every path
func NewJSONServer(status int, body string) *MockServer {
	return NewMockServer(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	})
}

// LastRequest returns the most recent request
func (ms *MockServer) LastRequest() *http.Request {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	if len(ms.requests) == 0 {
		return nil
	}
	return ms.requests[len(ms.requests)-1]
}

// LastPath returns the escaped path of the most recent request, or "" if none
func (ms *MockServer) LastPath() string {
	r := ms.LastRequest()
	if r == nil {
		return ""
	}
	return r.URL.EscapedPath()
}

// RequestCount returns the number of requests received
func (ms *MockServer) RequestCount() int {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return len(ms.requests)
}

// Reset clears the request history
func (ms *MockServer) Reset() {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.requests = nil
}
