package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pharmacy-locator/internal/config"
	delivery "github.com/pharmacy-locator/internal/delivery/http"
	"github.com/pharmacy-locator/internal/delivery/http/handler"
	"github.com/pharmacy-locator/internal/usecase/dto"
)

type stubLocator struct {
	calls []string
}

func (s *stubLocator) Locate(_ context.Context, _, location string, _, _ int) *dto.LocatorResponse {
	s.calls = append(s.calls, location)
	return &dto.LocatorResponse{
		Status:        dto.StatusOK,
		Provider:      "overpass",
		QueryLocation: &dto.QueryLocation{Input: location, Lat: 1, Lon: 1},
		Results:       []dto.PharmacyResult{},
	}
}

func newServer(t *testing.T) (*delivery.Server, *stubLocator) {
	t.Helper()
	t.Chdir(t.TempDir())
	cfg, err := config.Load()
	require.NoError(t, err)

	uc := &stubLocator{}
	logger := zap.NewNop()
	return delivery.NewServer(cfg, logger,
		handler.NewLocatorHandler(uc, logger),
		handler.NewHealthHandler(nil, logger),
	), uc
}

func TestServer_Routes(t *testing.T) {
	srv, uc := newServer(t)

	for _, path := range []string{"/locator", "/api/v1/locator"} {
		req := httptest.NewRequest("POST", path, strings.NewReader(`{"location":"Paris"}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := srv.App().Test(req)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, 200, resp.StatusCode, path)
	}
	assert.Equal(t, []string{"Paris", "Paris"}, uc.calls)

	resp, err := srv.App().Test(httptest.NewRequest("GET", "/api/v1/health", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, 200, resp.StatusCode)

	var health map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	assert.Equal(t, "healthy", health["status"])
}

func TestServer_UnknownRoute(t *testing.T) {
	srv, _ := newServer(t)

	resp, err := srv.App().Test(httptest.NewRequest("GET", "/nope", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 404, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `"status":"error"`)
}
