package nutrition

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hammamikhairi/calcprods/internal/domain"
	"github.com/hammamikhairi/calcprods/internal/logger"
)

var basil = domain.Macros{Name: "basil", CaloriesKcal: 24.4, CarbsG: 2, ProteinG: 4, Macros: "33/67/0"}

func TestCacheMemoryOnly(t *testing.T) {
	ctx := context.Background()
	c, err := NewCache("", logger.New(logger.LevelOff, nil))
	require.NoError(t, err)
	defer c.Close()

	_, ok := c.Get(ctx, "basil leaves")
	assert.False(t, ok)

	c.Put(ctx, "basil leaves", basil)
	m, ok := c.Get(ctx, "basil leaves")
	require.True(t, ok)
	assert.Equal(t, basil, *m)
	assert.Equal(t, 1, c.Len())

	hits, misses := c.Stats()
	assert.Equal(t, int64(1), hits)
	assert.Equal(t, int64(1), misses)
}

func TestCachePersistsToDisk(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cache", "nutrition.db")
	log := logger.New(logger.LevelOff, nil)

	c, err := NewCache(path, log)
	require.NoError(t, err)
	c.Put(ctx, "basil leaves", basil)
	require.NoError(t, c.Close())

	fresh, err := NewCache(path, log)
	require.NoError(t, err)
	defer fresh.Close()

	assert.Equal(t, 0, fresh.Len())
	m, ok := fresh.Get(ctx, "basil leaves")
	require.True(t, ok)
	assert.Equal(t, basil, *m)
	assert.Equal(t, 1, fresh.Len(), "disk hit is promoted to memory")

	_, ok = fresh.Get(ctx, "oregano")
	assert.False(t, ok)
}

func TestCachedLookup(t *testing.T) {
	ctx := context.Background()
	calls := map[string]int{}
	next := domain.LookupFunc(func(_ context.Context, name string) (*domain.Macros, error) {
		calls[name]++
		switch name {
		case "basil leaves":
			m := basil
			return &m, nil
		case "broken":
			return nil, errors.New("boom")
		}
		return nil, nil
	})

	c, err := NewCache("", logger.New(logger.LevelOff, nil))
	require.NoError(t, err)
	l := NewCachedLookup(next, c)

	for range 3 {
		m, err := l.Lookup(ctx, "basil leaves")
		require.NoError(t, err)
		assert.Equal(t, "basil", m.Name)
	}
	assert.Equal(t, 1, calls["basil leaves"])

	// Unknown names and failures are not cached.
	for range 2 {
		m, err := l.Lookup(ctx, "unobtainium")
		require.NoError(t, err)
		assert.Nil(t, m)
		_, err = l.Lookup(ctx, "broken")
		assert.Error(t, err)
	}
	assert.Equal(t, 2, calls["unobtainium"])
	assert.Equal(t, 2, calls["broken"])
}
