package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/storecraft/storefront/internal/adapters/inbound/http/middleware"
	"github.com/stretchr/testify/require"
)

func TestRequestID_GeneratesWhenMissing(t *testing.T) {
	t.Parallel()

	var captured string
	handler := middleware.RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = middleware.GetRequestID(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/products", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	require.NotEmpty(t, captured)
	require.Equal(t, captured, rec.Header().Get(middleware.RequestIDHeader))
	_, err := uuid.Parse(captured)
	require.NoError(t, err)
}

func TestRequestID_PropagatesIncomingHeader(t *testing.T) {
	t.Parallel()

	var captured string
	handler := middleware.RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = middleware.GetRequestID(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/products", nil)
	req.Header.Set(middleware.RequestIDHeader, "client-supplied-id")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	require.Equal(t, "client-supplied-id", captured)
	require.Equal(t, "client-supplied-id", rec.Header().Get(middleware.RequestIDHeader))
}

func TestHealthCheckFilter_MarksHealthEndpoints(t *testing.T) {
	t.Parallel()

	filter := middleware.NewHealthCheckFilter(false)

	cases := []struct {
		path string
		skip bool
	}{
		{path: "/v1/health", skip: true},
		{path: "/v1/liveness", skip: true},
		{path: "/v1/readiness", skip: true},
		{path: "/v1/products", skip: false},
		{path: "/v1/journal", skip: false},
	}

	for _, tc := range cases {
		var skipped bool
		handler := filter.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			skipped = middleware.ShouldSkipAccessLog(r.Context())
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest(http.MethodGet, tc.path, nil)
		handler.ServeHTTP(httptest.NewRecorder(), req)

		require.Equal(t, tc.skip, skipped, "path %s", tc.path)
	}
}

func TestHealthCheckFilter_LogsWhenConfigured(t *testing.T) {
	t.Parallel()

	filter := middleware.NewHealthCheckFilter(true)

	var skipped bool
	handler := filter.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		skipped = middleware.ShouldSkipAccessLog(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/health", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	require.False(t, skipped)
}
