package server

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobmcallan/stb/internal/app"
	"github.com/bobmcallan/stb/internal/common"
	"github.com/bobmcallan/stb/internal/models"
)

// stubCashClient returns canned statements per account number.
type stubCashClient struct {
	mu       sync.Mutex
	requests []models.StatementRequest
	byAcct   map[string][]models.CashStatement
	err      error
}

func (c *stubCashClient) FetchStatements(ctx context.Context, req models.StatementRequest) ([]models.CashStatement, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.requests = append(c.requests, req)
	if c.err != nil {
		return nil, c.err
	}
	return c.byAcct[req.AccountNumber], nil
}

func (c *stubCashClient) calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.requests)
}

// newTestServer creates a server backed by file storage in a temp dir and a
// stub cash client. The statement range is pinned to 2024-03-15.
func newTestServer(t *testing.T, client *stubCashClient) *Server {
	t.Helper()
	if client == nil {
		client = &stubCashClient{}
	}
	cfg := common.NewDefaultConfig()
	cfg.Storage.Path = t.TempDir()
	cfg.Storage.Versions = 0
	logger := common.NewSilentLogger()

	a, err := app.New(cfg, logger, client)
	if err != nil {
		t.Fatalf("app.New failed: %v", err)
	}
	t.Cleanup(a.Close)
	a.Dates.Now = func() time.Time { return time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC) }
	return NewServer(a)
}

func jsonBody(t *testing.T, v interface{}) *bytes.Buffer {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("failed to marshal JSON: %v", err)
	}
	return bytes.NewBuffer(data)
}

// do sends a request through the full middleware stack.
func do(t *testing.T, srv *Server, method, path string, body *bytes.Buffer) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == nil {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, body)
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("failed to decode response %q: %v", rec.Body.String(), err)
	}
}

func newRequest(method, path string) *http.Request {
	return httptest.NewRequest(method, path, nil)
}

func serve(srv *Server, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestNewServer_ListenerSettings(t *testing.T) {
	srv := newTestServer(t, nil)
	assert.Equal(t, "0.0.0.0:8090", srv.Addr())
	assert.Equal(t, writeTimeout, srv.server.WriteTimeout)
	assert.Equal(t, readHeaderTimeout, srv.server.ReadHeaderTimeout)
}

func TestServer_StartReturnsNilAfterShutdown(t *testing.T) {
	srv := newTestServer(t, nil)
	srv.server.Addr = "127.0.0.1:0"

	done := make(chan error, 1)
	go func() { done <- srv.Start() }()

	require.NoError(t, srv.Shutdown(context.Background()))
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Start did not return after Shutdown")
	}
}
