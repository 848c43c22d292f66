package service

import (
	"log/slog"
	"net/http"
	"time"
)

// DebugTransport registra em nível debug as requisições HTTP feitas à API do Gemini.
// Só o path é registrado, nunca a query ou os headers.
type DebugTransport struct {
	Base http.RoundTripper
}

func (t *DebugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}

	start := time.Now()
	resp, err := base.RoundTrip(req)
	if err != nil {
		slog.Debug("model request failed",
			"method", req.Method,
			"path", req.URL.Path,
			"elapsed", time.Since(start),
			"error", err)
		return nil, err
	}

	slog.Debug("model request",
		"method", req.Method,
		"path", req.URL.Path,
		"status", resp.StatusCode,
		"elapsed", time.Since(start))
	return resp, nil
}
