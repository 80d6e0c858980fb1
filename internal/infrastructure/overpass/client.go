package overpass

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/paulmach/osm"
	"github.com/pharmacy-locator/internal/config"
	"github.com/pharmacy-locator/internal/domain"
	"github.com/pharmacy-locator/internal/domain/repository"
	"github.com/pharmacy-locator/internal/infrastructure/httpclient"
	"go.uber.org/zap"
)

type client struct {
	httpClient   *http.Client
	baseURL      string
	queryTimeout time.Duration
	logger       *zap.Logger
}

// NewOverpassClient создает клиент для Overpass API
func NewOverpassClient(cfg *config.OverpassConfig, identity config.ClientConfig, logger *zap.Logger) repository.OverpassRepository {
	return &client{
		httpClient:   httpclient.New(cfg.RequestTimeout, identity.Headers()),
		baseURL:      cfg.BaseURL,
		queryTimeout: cfg.QueryTimeout,
		logger:       logger,
	}
}

type response struct {
	Elements []element `json:"elements"`
	Remark   string    `json:"remark,omitempty"`
}

type element struct {
	Type   string   `json:"type"`
	ID     int64    `json:"id"`
	Lat    *float64 `json:"lat,omitempty"`
	Lon    *float64 `json:"lon,omitempty"`
	Center *struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"center,omitempty"`
	Tags map[string]string `json:"tags,omitempty"`
}

// FindAmenities выполняет запрос "out center tags" и возвращает элементы как есть
func (c *client) FindAmenities(ctx context.Context, q domain.AmenityQuery) ([]domain.OverpassElement, error) {
	query := BuildAroundQuery(q, c.queryTimeout)

	c.logger.Debug("Calling Overpass API",
		zap.String("amenity", q.Amenity),
		zap.Int("radius_m", q.RadiusM),
		zap.Int("tag_filters", len(q.AnyOfTags)))

	form := url.Values{}
	form.Set("data", query)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: overpass request: %v", domain.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("%w: overpass status %d, body: %s", domain.ErrProviderUnavailable, resp.StatusCode, string(body))
	}

	var r response
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return nil, fmt.Errorf("%w: decode overpass response: %v", domain.ErrProviderUnavailable, err)
	}

	if r.Remark != "" {
		// runtime error/timeout на стороне Overpass: ответ может быть неполным
		c.logger.Warn("Overpass returned remark", zap.String("remark", r.Remark))
	}

	elements := make([]domain.OverpassElement, 0, len(r.Elements))
	for _, e := range r.Elements {
		elements = append(elements, e.toDomain())
	}

	c.logger.Debug("Overpass API call successful", zap.Int("elements", len(elements)))

	return elements, nil
}

func (e element) toDomain() domain.OverpassElement {
	out := domain.OverpassElement{
		Type: osm.Type(e.Type),
		ID:   e.ID,
		Tags: toTags(e.Tags),
	}
	if e.Lat != nil && e.Lon != nil {
		out.Lat, out.Lon = *e.Lat, *e.Lon
	}
	if e.Center != nil {
		out.Center = &domain.Coordinate{Lat: e.Center.Lat, Lon: e.Center.Lon}
	}
	return out
}

// toTags - стабильный порядок по ключу, json map его не сохраняет
func toTags(m map[string]string) osm.Tags {
	if len(m) == 0 {
		return nil
	}
	tags := make(osm.Tags, 0, len(m))
	for k, v := range m {
		tags = append(tags, osm.Tag{Key: k, Value: v})
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i].Key < tags[j].Key })
	return tags
}
