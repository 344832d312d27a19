package fouryousee

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

const testToken = "test-token"

// recorded is one request seen by the fake API
type recorded struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
}

type apiRecorder struct {
	mu       sync.Mutex
	requests []recorded
}

func (a *apiRecorder) add(r recorded) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.requests = append(a.requests, r)
}

func (a *apiRecorder) all() []recorded {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]recorded(nil), a.requests...)
}

func (a *apiRecorder) count() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.requests)
}

func (a *apiRecorder) last() recorded {
	a.mu.Lock()
	defer a.mu.Unlock()
	if len(a.requests) == 0 {
		return recorded{}
	}
	return a.requests[len(a.requests)-1]
}

// newTestClient starts a fake API served by handler and returns a client
// pointed at it with no request delay
func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *apiRecorder) {
	t.Helper()

	rec := &apiRecorder{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		r.Body = io.NopCloser(bytes.NewReader(body))
		rec.add(recorded{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.Query(),
			Header: r.Header.Clone(),
			Body:   body,
		})
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	client, err := NewClient(testToken, zerolog.Nop(), WithBaseURL(server.URL), WithRequestDelay(0))
	require.NoError(t, err)
	return client, rec
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func decodeBody(t *testing.T, body []byte) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(body, &m))
	return m
}

// writeFile creates a fixture file under dir
func writeFile(t *testing.T, dir, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

var (
	pngContent  = append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 32)...)
	zipContent  = append([]byte("PK\x03\x04"), make([]byte, 32)...)
	htmlContent = []byte("<!DOCTYPE html><html><body><p>not a media</p></body></html>")
)
