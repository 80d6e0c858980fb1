package cache

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/pharmacy-locator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBoltStorage(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cache.db")

	s, err := NewBoltStorage(path, zap.NewNop())
	require.NoError(t, err)
	defer s.Close()

	entries, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)

	require.NoError(t, s.Save(ctx, map[string]domain.GeocodeCacheEntry{
		"rome":  {Lat: 41.9028, Lon: 12.4964, Provider: "photon", Meta: map[string]interface{}{"name": "Roma"}},
		"milan": {Lat: 45.4642, Lon: 9.19},
	}))

	// save replaces the whole map
	require.NoError(t, s.Save(ctx, map[string]domain.GeocodeCacheEntry{
		"rome": {Lat: 41.9028, Lon: 12.4964, Provider: "photon", Meta: map[string]interface{}{"name": "Roma"}},
	}))

	entries, err = s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 12.4964, entries["rome"].Lon)
	assert.Equal(t, "photon", entries["rome"].Provider)
	assert.Equal(t, "Roma", entries["rome"].Meta["name"])
}
