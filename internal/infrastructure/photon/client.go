package photon

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/pharmacy-locator/internal/config"
	"github.com/pharmacy-locator/internal/domain"
	"github.com/pharmacy-locator/internal/domain/repository"
	"github.com/pharmacy-locator/internal/infrastructure/httpclient"
	"go.uber.org/zap"
)

const ProviderName = "photon"

type client struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

// NewPhotonClient создает резервный провайдер геокодирования (Photon, GeoJSON ответ)
func NewPhotonClient(cfg *config.PhotonConfig, identity config.ClientConfig, logger *zap.Logger) repository.GeocodeProvider {
	return &client{
		httpClient: httpclient.New(cfg.RequestTimeout, identity.Headers()),
		baseURL:    cfg.BaseURL,
		logger:     logger,
	}
}

func (c *client) Name() string {
	return ProviderName
}

type featureCollection struct {
	Features []feature `json:"features"`
}

type feature struct {
	Geometry struct {
		Type        string    `json:"type"`
		Coordinates []float64 `json:"coordinates"`
	} `json:"geometry"`
	Properties map[string]interface{} `json:"properties"`
}

func (c *client) Geocode(ctx context.Context, query string) (*domain.GeocodeResult, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("limit", "1")
	reqURL := c.baseURL + "?" + params.Encode()

	c.logger.Debug("Calling Photon API", zap.String("query", query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: photon request: %v", domain.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("%w: photon status %d, body: %s", domain.ErrProviderUnavailable, resp.StatusCode, string(body))
	}

	var fc featureCollection
	if err := json.NewDecoder(resp.Body).Decode(&fc); err != nil {
		return nil, fmt.Errorf("%w: decode photon response: %v", domain.ErrProviderUnavailable, err)
	}

	if len(fc.Features) == 0 {
		return nil, domain.ErrNoMatch
	}

	// GeoJSON: [lon, lat]
	hit := fc.Features[0]
	if len(hit.Geometry.Coordinates) < 2 {
		return nil, domain.ErrNoMatch
	}

	props := hit.Properties
	if props == nil {
		props = map[string]interface{}{}
	}

	return &domain.GeocodeResult{
		Coordinate: domain.Coordinate{
			Lat: hit.Geometry.Coordinates[1],
			Lon: hit.Geometry.Coordinates[0],
		},
		Meta:     props,
		Provider: ProviderName,
	}, nil
}
