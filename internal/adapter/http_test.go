// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-token-client/internal/config"
	"github.com/MKhiriev/go-token-client/internal/logger"
	"github.com/MKhiriev/go-token-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{
		HTTPAddress:    serverURL,
		RequestTimeout: 2 * time.Second,
		TokenPath:      "/token",
	}

	a, err := NewHTTPServerAdapter(adapterCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

// ── constructor ─────────────────────────────────────────────────────────────

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: "  "}, logger.Nop())
	require.Error(t, err)
}

func TestNewHTTPServerAdapter_TokenPathNormalised(t *testing.T) {
	a, err := NewHTTPServerAdapter(config.ClientAdapter{
		HTTPAddress: "localhost:8100",
		TokenPath:   "auth/token",
	}, logger.Nop())
	require.NoError(t, err)

	h := a.(*httpServerAdapter)
	assert.Equal(t, "/auth/token", h.tokenPath)
	assert.Equal(t, "http://localhost:8100", h.client.BaseURL)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "http://localhost:8100", want: "http://localhost:8100"},
		{in: "http://localhost:8100/", want: "http://localhost:8100"},
		{in: "localhost:8100", want: "http://localhost:8100"},
		{in: " https://api.example.com ", want: "https://api.example.com"},
		{in: "", wantErr: true},
		{in: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── FetchToken ──────────────────────────────────────────────────────────────

func TestFetchToken_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/token", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte("abc123\n"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	token, err := a.FetchToken(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "abc123", token)
}

func TestFetchToken_Non2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.FetchToken(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTokenFetch)
	assert.NotErrorIs(t, err, ErrTransientServer)

	var reqErr *RequestError
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, http.StatusServiceUnavailable, reqErr.StatusCode)
}

func TestFetchToken_EmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("  \n"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.FetchToken(context.Background())

	assert.ErrorIs(t, err, ErrTokenFetch)
}

func TestFetchToken_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	a := newTestAdapter(t, url)
	_, err := a.FetchToken(context.Background())

	assert.ErrorIs(t, err, ErrTokenFetch)
}

// ── Execute ─────────────────────────────────────────────────────────────────

func TestExecute_SendsBearerAndJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/authenticated", r.URL.Path)
		assert.Equal(t, "Bearer abc123", r.Header.Get("Authorization"))
		assert.Contains(t, r.Header.Get("Content-Type"), "application/json")

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Lab900", body["company"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	desc := models.NewRequestDescriptor("post", "/authenticated", map[string]any{"company": "Lab900", "age": 30})
	out := a.Execute(context.Background(), desc, "abc123")

	require.True(t, out.Succeeded(), "unexpected failure: %v", out.Err())
	assert.NoError(t, out.Err())
	assert.Equal(t, http.StatusOK, out.StatusCode)
	assert.JSONEq(t, `{"ok":true}`, string(out.Body))
}

func TestExecute_NoTokenNoBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		assert.Empty(t, r.Header.Get("Content-Type"))
		b, _ := io.ReadAll(r.Body)
		assert.Empty(t, b)
		_, _ = w.Write([]byte("hello"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	out := a.Execute(context.Background(), models.NewRequestDescriptor(http.MethodGet, "/hello", nil), "")

	require.True(t, out.Succeeded())
	assert.Equal(t, "hello", string(out.Body))
}

func TestExecute_Classification(t *testing.T) {
	tests := []struct {
		status   int
		wantKind ErrorKind
		sentinel error
	}{
		{status: http.StatusUnauthorized, wantKind: KindAuth, sentinel: ErrAuth},
		{status: http.StatusForbidden, wantKind: KindAuth, sentinel: ErrAuth},
		{status: http.StatusBadGateway, wantKind: KindTransientServer, sentinel: ErrTransientServer},
		{status: http.StatusServiceUnavailable, wantKind: KindTransientServer, sentinel: ErrTransientServer},
		{status: http.StatusGatewayTimeout, wantKind: KindTransientServer, sentinel: ErrTransientServer},
		{status: http.StatusNotFound, wantKind: KindFatalHTTP, sentinel: ErrFatalHTTP},
		{status: http.StatusInternalServerError, wantKind: KindFatalHTTP, sentinel: ErrFatalHTTP},
		{status: http.StatusBadRequest, wantKind: KindFatalHTTP, sentinel: ErrFatalHTTP},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("Not Authorized!"))
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL)
			out := a.Execute(context.Background(), models.NewRequestDescriptor(http.MethodPost, "/x", nil), "t")

			require.False(t, out.Succeeded())
			assert.Equal(t, tt.wantKind, out.Failure.Kind)
			assert.Equal(t, tt.status, out.Failure.StatusCode)
			assert.Equal(t, "Not Authorized!", out.Failure.Body)
			assert.ErrorIs(t, out.Err(), tt.sentinel)
		})
	}
}

func TestExecute_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	a := newTestAdapter(t, url)
	out := a.Execute(context.Background(), models.NewRequestDescriptor(http.MethodGet, "/", nil), "t")

	require.False(t, out.Succeeded())
	assert.Equal(t, KindTransport, out.Failure.Kind)
	assert.Zero(t, out.Failure.StatusCode)
	assert.ErrorIs(t, out.Err(), ErrTransport)
}

func TestExecute_ContextCancelled(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	a := newTestAdapter(t, srv.URL)
	out := a.Execute(ctx, models.NewRequestDescriptor(http.MethodGet, "/slow", nil), "t")

	require.False(t, out.Succeeded())
	assert.ErrorIs(t, out.Err(), ErrTransport)
	assert.ErrorIs(t, out.Err(), context.DeadlineExceeded)
}

// TestExecute_SingleRequest verifies that the adapter never retries on its own.
func TestExecute_SingleRequest(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	out := a.Execute(context.Background(), models.NewRequestDescriptor(http.MethodGet, "/", nil), "t")

	assert.False(t, out.Succeeded())
	assert.Equal(t, int32(1), hits.Load())
}
