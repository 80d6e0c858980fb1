package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/pharmacy-locator/internal/config"
	"github.com/pharmacy-locator/internal/domain"
	"github.com/pharmacy-locator/internal/domain/repository"
	"github.com/pharmacy-locator/internal/infrastructure/httpclient"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const ProviderName = "nominatim"

type client struct {
	httpClient *http.Client
	baseURL    string
	timeout    time.Duration
	limiter    *rate.Limiter
	logger     *zap.Logger
}

// NewNominatimClient создает основной провайдер геокодирования (Nominatim search API)
func NewNominatimClient(cfg *config.NominatimConfig, identity config.ClientConfig, logger *zap.Logger) repository.GeocodeProvider {
	var limiter *rate.Limiter
	if cfg.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1)
	}

	return &client{
		httpClient: httpclient.New(cfg.RequestTimeout, identity.Headers()),
		baseURL:    cfg.BaseURL,
		timeout:    cfg.RequestTimeout,
		limiter:    limiter,
		logger:     logger,
	}
}

func (c *client) Name() string {
	return ProviderName
}

// Geocode запрашивает один лучший результат с деталями адреса и extratags
func (c *client) Geocode(ctx context.Context, query string) (*domain.GeocodeResult, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	// usage policy: не чаще 1 запроса в секунду
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%w: nominatim rate limit wait: %v", domain.ErrProviderUnavailable, err)
		}
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "jsonv2")
	params.Set("limit", "1")
	params.Set("addressdetails", "1")
	params.Set("extratags", "1")
	reqURL := c.baseURL + "?" + params.Encode()

	c.logger.Debug("Calling Nominatim search API", zap.String("query", query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: nominatim request: %v", domain.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("%w: nominatim status %d, body: %s", domain.ErrProviderUnavailable, resp.StatusCode, string(body))
	}

	var items []map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("%w: decode nominatim response: %v", domain.ErrProviderUnavailable, err)
	}

	if len(items) == 0 {
		return nil, domain.ErrNoMatch
	}

	item := items[0]
	lat, err := parseCoordinate(item["lat"])
	if err != nil {
		return nil, fmt.Errorf("%w: nominatim lat: %v", domain.ErrProviderUnavailable, err)
	}
	lon, err := parseCoordinate(item["lon"])
	if err != nil {
		return nil, fmt.Errorf("%w: nominatim lon: %v", domain.ErrProviderUnavailable, err)
	}

	return &domain.GeocodeResult{
		Coordinate: domain.Coordinate{Lat: lat, Lon: lon},
		Meta:       item,
		Provider:   ProviderName,
	}, nil
}

// Nominatim отдаёт координаты строками ("48.8534951")
func parseCoordinate(v interface{}) (float64, error) {
	switch val := v.(type) {
	case string:
		return strconv.ParseFloat(val, 64)
	case float64:
		return val, nil
	case nil:
		return 0, fmt.Errorf("missing value")
	default:
		return 0, fmt.Errorf("unexpected type %T", v)
	}
}
