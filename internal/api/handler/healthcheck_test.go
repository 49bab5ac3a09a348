package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kenazlabs/kenaz-analytics-api/internal/config"
)

func TestHealthcheckHandler(t *testing.T) {
	cfg := &config.Config{App: config.App{Version: "3.0"}}

	req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
	rec := httptest.NewRecorder()

	HealthcheckHandler(cfg).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp HealthcheckResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, serviceName, resp.Service)
	assert.Equal(t, "3.0", resp.Version)

	parsed, err := time.Parse("2006-01-02T15:04:05.000Z", resp.Timestamp)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), parsed, time.Minute)
}

func TestRootHandler(t *testing.T) {
	cfg := &config.Config{App: config.App{Version: "3.0"}}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	RootHandler(cfg).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "Kenaz Complete Analytics API", resp["service"])
	assert.Contains(t, resp, "endpoints")
}
