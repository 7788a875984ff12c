package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/jiraclone/jiraclient/internal/client/session"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	Method string
	URI    string
	Header http.Header
	Body   string
}

// fakeBackend serves every request with the configured status and body and
// records what it received, stripped of the "/api" prefix.
type fakeBackend struct {
	mu       sync.Mutex
	requests []recordedRequest

	status int
	body   string
}

func (f *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b, _ := io.ReadAll(r.Body)
	f.mu.Lock()
	f.requests = append(f.requests, recordedRequest{
		Method: r.Method,
		URI:    strings.TrimPrefix(r.URL.RequestURI(), "/api"),
		Header: r.Header.Clone(),
		Body:   string(b),
	})
	status, body := f.status, f.body
	f.mu.Unlock()

	if status == 0 {
		status = http.StatusOK
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func (f *fakeBackend) last(t *testing.T) recordedRequest {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.requests, "backend received no request")
	return f.requests[len(f.requests)-1]
}

func (f *fakeBackend) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

type fakeNotifier struct {
	mu       sync.Mutex
	messages []string
}

func (n *fakeNotifier) Error(_ context.Context, msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, msg)
}

func (n *fakeNotifier) all() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.messages...)
}

type fakeNavigator struct {
	mu     sync.Mutex
	routes []string
}

func (n *fakeNavigator) Navigate(_ context.Context, route string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.routes = append(n.routes, route)
}

func (n *fakeNavigator) all() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.routes...)
}

type testEnv struct {
	backend   *fakeBackend
	server    *httptest.Server
	session   *session.StoreManager
	notifier  *fakeNotifier
	navigator *fakeNavigator
	client    *Client
	api       *API
}

func newTestEnv(t *testing.T, opts ...Option) *testEnv {
	t.Helper()
	env := &testEnv{
		backend:   &fakeBackend{},
		session:   session.NewManager(session.NewMemoryStore()),
		notifier:  &fakeNotifier{},
		navigator: &fakeNavigator{},
	}
	env.server = httptest.NewServer(env.backend)
	t.Cleanup(env.server.Close)

	opts = append([]Option{WithNotifier(env.notifier), WithNavigator(env.navigator)}, opts...)
	c, err := NewClient(env.server.URL+"/api", env.session, opts...)
	require.NoError(t, err)
	env.client = c
	env.api = New(c)
	return env
}

func (e *testEnv) respond(status int, body string) {
	e.backend.mu.Lock()
	defer e.backend.mu.Unlock()
	e.backend.status = status
	e.backend.body = body
}
