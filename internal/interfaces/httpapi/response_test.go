package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/flashgoal/external/sportmonks"
	"github.com/riskibarqy/flashgoal/internal/usecase"
)

func TestWriteSuccess_GoogleEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeSuccess(context.Background(), rec, http.StatusOK, map[string]string{"status": "ok"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}

	if got, _ := body["apiVersion"].(string); got != "2.0" {
		t.Fatalf("expected apiVersion=2.0, got %v", body["apiVersion"])
	}
	if _, ok := body["data"]; !ok {
		t.Fatalf("expected data key in success response")
	}
	if _, ok := body["error"]; ok {
		t.Fatalf("did not expect error key in success response")
	}
}

func TestWriteError_GoogleEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, fmt.Errorf("%w: bad date", usecase.ErrInvalidInput))

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]any
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2.0", body["apiVersion"])
	errorObj, ok := body["error"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "INVALID_ARGUMENT", errorObj["status"])
}

func TestWriteError_HidesInternalMessages(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, errors.New("pq: password authentication failed"))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestWriteError_HidesUpstreamDetail(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		secret string
	}{
		{
			name:   "http error body",
			err:    &sportmonks.HTTPError{StatusCode: http.StatusInternalServerError, Body: []byte(`{"message":"upstream stack trace"}`)},
			secret: "stack trace",
		},
		{
			name:   "decoder text",
			err:    &sportmonks.DecodeError{Endpoint: "fixtures/date/2025-03-01", Cause: errors.New("Syntax error at index 6291456")},
			secret: "Syntax error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeError(context.Background(), rec, tt.err)

			require.Equal(t, http.StatusBadGateway, rec.Code)
			assert.NotContains(t, rec.Body.String(), tt.secret)
			assert.Contains(t, rec.Body.String(), "upstream unavailable")
		})
	}
}

func TestMapError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		reason string
	}{
		{name: "invalid input", err: fmt.Errorf("%w: x", usecase.ErrInvalidInput), status: http.StatusBadRequest, reason: "invalidInput"},
		{name: "invalid upstream request", err: sportmonks.ErrInvalidRequest, status: http.StatusBadRequest, reason: "invalidInput"},
		{name: "no active season", err: fmt.Errorf("wrap: %w", usecase.ErrNoActiveSeason), status: http.StatusNotFound, reason: "noActiveSeason"},
		{name: "not found", err: usecase.ErrNotFound, status: http.StatusNotFound, reason: "notFound"},
		{name: "upstream 404", err: &sportmonks.HTTPError{StatusCode: http.StatusNotFound}, status: http.StatusNotFound, reason: "notFound"},
		{name: "superseded", err: usecase.ErrSearchSuperseded, status: http.StatusConflict, reason: "searchSuperseded"},
		{name: "upstream 500", err: fmt.Errorf("fetch: %w", &sportmonks.HTTPError{StatusCode: 500}), status: http.StatusBadGateway, reason: "upstreamUnavailable"},
		{name: "decode", err: &sportmonks.DecodeError{Endpoint: "leagues/1", Cause: errors.New("bad")}, status: http.StatusBadGateway, reason: "upstreamUnavailable"},
		{name: "unknown", err: sportmonks.ErrUnknown, status: http.StatusBadGateway, reason: "upstreamUnavailable"},
		{name: "other", err: errors.New("boom"), status: http.StatusInternalServerError, reason: "internalError"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapError(tt.err)
			assert.Equal(t, tt.status, got.HTTPStatus)
			assert.Equal(t, tt.reason, got.Reason)
		})
	}
}
