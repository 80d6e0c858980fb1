package photon

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pharmacy-locator/internal/config"
	"github.com/pharmacy-locator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestClient_Geocode(t *testing.T) {
	identity := config.ClientConfig{UserAgent: "TestLocator/1.0", ContactEmail: "test@example.com"}

	newClient := func(url string) *client {
		return NewPhotonClient(&config.PhotonConfig{BaseURL: url, RequestTimeout: 5 * time.Second}, identity, zap.NewNop()).(*client)
	}

	t.Run("successful request", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Barcelona", r.URL.Query().Get("q"))
			assert.Equal(t, "1", r.URL.Query().Get("limit"))
			assert.Equal(t, "TestLocator/1.0", r.Header.Get("User-Agent"))
			assert.Equal(t, "test@example.com", r.Header.Get("From"))

			w.Write([]byte(`{"type":"FeatureCollection","features":[{"type":"Feature","geometry":{"type":"Point","coordinates":[2.1734,41.3851]},"properties":{"name":"Barcelona","country":"Spain","osm_key":"place"}}]}`))
		}))
		defer server.Close()

		result, err := newClient(server.URL).Geocode(context.Background(), "Barcelona")
		require.NoError(t, err)
		assert.Equal(t, domain.Coordinate{Lat: 41.3851, Lon: 2.1734}, result.Coordinate)
		assert.Equal(t, "Barcelona", result.Meta["name"])
		assert.Equal(t, ProviderName, result.Provider)
	})

	t.Run("no features", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"type":"FeatureCollection","features":[]}`))
		}))
		defer server.Close()

		_, err := newClient(server.URL).Geocode(context.Background(), "zzz")
		assert.ErrorIs(t, err, domain.ErrNoMatch)
	})

	t.Run("geometry without coordinates", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"features":[{"geometry":{"coordinates":[2.17]},"properties":{}}]}`))
		}))
		defer server.Close()

		_, err := newClient(server.URL).Geocode(context.Background(), "x")
		assert.ErrorIs(t, err, domain.ErrNoMatch)
	})

	t.Run("server error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		_, err := newClient(server.URL).Geocode(context.Background(), "x")
		assert.ErrorIs(t, err, domain.ErrProviderUnavailable)
	})
}
