package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akhmadiev/storefront/internal/logger"
)

func executeWithTraceID(t *testing.T, requestTraceID string) *httptest.ResponseRecorder {
	t.Helper()

	h := newTestHandler(t, nil, nil)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	middleware := h.withTraceID(next)
	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	if requestTraceID != "" {
		req.Header.Set(traceIDHeader, requestTraceID)
	}

	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)
	return rr
}

func TestWithTraceID_ReusesIncomingHeader(t *testing.T) {
	tests := []struct {
		name           string
		requestTraceID string
	}{
		{"custom trace ID", "my-custom-trace-id"},
		{"UUID trace ID", "550e8400-e29b-41d4-a716-446655440000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := executeWithTraceID(t, tt.requestTraceID)

			assert.Equal(t, tt.requestTraceID, rr.Header().Get(traceIDHeader))
			assert.Equal(t, http.StatusOK, rr.Code)
		})
	}
}

func TestWithTraceID_GeneratesUUIDWhenMissing(t *testing.T) {
	rr := executeWithTraceID(t, "")

	id := rr.Header().Get(traceIDHeader)
	require.NotEmpty(t, id)

	_, err := uuid.Parse(id)
	assert.NoError(t, err, "generated trace ID should be a valid UUID, got: %s", id)
}

func TestWithTraceID_GeneratesUniqueIDs(t *testing.T) {
	seen := make(map[string]struct{})

	for i := 0; i < 20; i++ {
		rr := executeWithTraceID(t, "")
		id := rr.Header().Get(traceIDHeader)
		require.NotEmpty(t, id)

		_, duplicate := seen[id]
		assert.False(t, duplicate, "duplicate trace ID generated: %s", id)
		seen[id] = struct{}{}
	}
}

func TestWithTraceID_LoggerInContext(t *testing.T) {
	h := newTestHandler(t, nil, nil)
	var ctxLogger *logger.Logger

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxLogger = logger.FromRequest(r)
		w.WriteHeader(http.StatusOK)
	})

	middleware := h.withTraceID(next)
	req := httptest.NewRequest(http.MethodGet, "/products", nil)

	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)

	require.NotNil(t, ctxLogger)
}

func TestWithTraceID_AlwaysCallsNext(t *testing.T) {
	h := newTestHandler(t, nil, nil)
	nextCalled := false

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		w.WriteHeader(http.StatusTeapot)
	})

	middleware := h.withTraceID(next)
	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)

	assert.True(t, nextCalled)
	assert.Equal(t, http.StatusTeapot, rr.Code)
}
