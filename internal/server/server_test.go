package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shayan-0/chat-Agent/internal/config"
)

func TestNewServerKeepsRunningWithoutAPIKey(t *testing.T) {
	srv, err := NewServer(context.Background(), config.Config{Model: "gemini-2.0-flash-exp", Port: 8000})
	require.NoError(t, err)
	require.NotNil(t, srv)
	assert.Nil(t, srv.Agent)
}

func TestSetupRouterRegistersRoutes(t *testing.T) {
	srv := &Server{Config: config.Config{LogLevel: "WARNING"}}
	hit := func(name string) func(http.ResponseWriter, *http.Request) {
		return func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Route", name)
		}
	}
	srv.SetupRouter(hit("root"), hit("health"), hit("chat"))

	cases := []struct {
		method, path, route string
	}{
		{http.MethodGet, "/", "root"},
		{http.MethodGet, "/health", "health"},
		{http.MethodPost, "/chat", "chat"},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		srv.Router.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))
		assert.Equal(t, tc.route, rec.Header().Get("X-Route"), tc.path)
	}

	rec := httptest.NewRecorder()
	srv.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStartStopsWhenContextIsCancelled(t *testing.T) {
	srv := &Server{Config: config.Config{Host: "127.0.0.1", Port: 0, LogLevel: "ERROR"}}
	srv.SetupRouter(http.NotFound, http.NotFound, http.NotFound)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		srv.Start(ctx)
		close(done)
	}()
	cancel()
	<-done
}
