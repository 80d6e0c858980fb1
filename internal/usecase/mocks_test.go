package usecase_test

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/paulmach/osm"
	"github.com/stretchr/testify/mock"

	"github.com/pharmacy-locator/internal/domain"
)

// MockGeocodeProvider is a mock of repository.GeocodeProvider
type MockGeocodeProvider struct {
	mock.Mock
	name string
}

func NewMockGeocodeProvider(name string) *MockGeocodeProvider {
	return &MockGeocodeProvider{name: name}
}

func (m *MockGeocodeProvider) Name() string {
	return m.name
}

func (m *MockGeocodeProvider) Geocode(ctx context.Context, query string) (*domain.GeocodeResult, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GeocodeResult), args.Error(1)
}

// MockOverpassRepository is a mock of repository.OverpassRepository
type MockOverpassRepository struct {
	mock.Mock
}

func (m *MockOverpassRepository) FindAmenities(ctx context.Context, q domain.AmenityQuery) ([]domain.OverpassElement, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OverpassElement), args.Error(1)
}

// countingProvider is a hand-written stub for concurrency tests
type countingProvider struct {
	calls  atomic.Int32
	delay  time.Duration
	result *domain.GeocodeResult
}

func (p *countingProvider) Name() string { return "counting" }

func (p *countingProvider) Geocode(ctx context.Context, query string) (*domain.GeocodeResult, error) {
	p.calls.Add(1)
	time.Sleep(p.delay)
	return p.result, nil
}

// blockingProvider ждёт release или отмены ctx
type blockingProvider struct {
	calls   atomic.Int32
	started chan struct{}
	release chan struct{}
	result  *domain.GeocodeResult
}

func (p *blockingProvider) Name() string { return "blocking" }

func (p *blockingProvider) Geocode(ctx context.Context, query string) (*domain.GeocodeResult, error) {
	if p.calls.Add(1) == 1 {
		close(p.started)
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-p.release:
		return p.result, nil
	}
}

func contactTier() interface{} {
	return mock.MatchedBy(func(q domain.AmenityQuery) bool { return len(q.AnyOfTags) > 0 })
}

func plainTier() interface{} {
	return mock.MatchedBy(func(q domain.AmenityQuery) bool { return len(q.AnyOfTags) == 0 })
}

var paris = domain.Coordinate{Lat: 48.8566, Lon: 2.3522}

// node places an element roughly northM meters north of paris
func node(id int64, northM float64, tags ...string) domain.OverpassElement {
	return domain.OverpassElement{
		Type: osm.TypeNode,
		ID:   id,
		Lat:  paris.Lat + northM/111195.0,
		Lon:  paris.Lon,
		Tags: tagList(tags...),
	}
}

func way(id int64, northM float64, tags ...string) domain.OverpassElement {
	return domain.OverpassElement{
		Type:   osm.TypeWay,
		ID:     id,
		Center: &domain.Coordinate{Lat: paris.Lat + northM/111195.0, Lon: paris.Lon},
		Tags:   tagList(tags...),
	}
}

func tagList(kv ...string) osm.Tags {
	var tags osm.Tags
	for i := 0; i+1 < len(kv); i += 2 {
		tags = append(tags, osm.Tag{Key: kv[i], Value: kv[i+1]})
	}
	return tags
}

func ids(items []domain.Pharmacy) []string {
	out := make([]string, 0, len(items))
	for _, p := range items {
		out = append(out, p.IdentityKey())
	}
	return out
}

