package nutrition

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/hammamikhairi/calcprods/internal/domain"
	"github.com/hammamikhairi/calcprods/internal/logger"
)

// Cache is a two-tier cache (in-memory + SQLite file) of nutrition facts
// keyed by ingredient name. Only found items are cached; a name the API
// does not know is asked again on the next run.
//
// With an empty path the disk tier is disabled and the cache lives only
// for the current run.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]domain.Macros
	db      *sql.DB
	log     *logger.Logger
	hits    int64
	misses  int64
}

// NewCache opens (or creates) the cache database at path.
func NewCache(path string, log *logger.Logger) (*Cache, error) {
	c := &Cache{
		entries: make(map[string]domain.Macros),
		log:     log,
	}
	if path == "" {
		return c, nil
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create cache dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)")
	if err != nil {
		return nil, fmt.Errorf("open cache: %w", err)
	}
	if _, err := db.Exec(`
	CREATE TABLE IF NOT EXISTS nutrition (
		name        TEXT PRIMARY KEY,
		item_name   TEXT NOT NULL,
		calories    REAL NOT NULL,
		carbs_g     REAL NOT NULL,
		protein_g   REAL NOT NULL,
		fat_g       REAL NOT NULL,
		macros      TEXT NOT NULL,
		fetched_at  TEXT NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate cache: %w", err)
	}

	c.db = db
	return c, nil
}

// Get returns cached facts for name. It checks memory first, then disk.
func (c *Cache) Get(ctx context.Context, name string) (*domain.Macros, bool) {
	c.mu.RLock()
	m, ok := c.entries[name]
	c.mu.RUnlock()

	if ok {
		c.mu.Lock()
		c.hits++
		c.mu.Unlock()
		c.log.Debug("cache hit (mem): %s", name)
		return &m, true
	}

	if c.db != nil {
		if dm, err := c.readDisk(ctx, name); err == nil {
			// Promote to memory for later hits.
			c.mu.Lock()
			c.entries[name] = dm
			c.hits++
			c.mu.Unlock()
			c.log.Debug("cache hit (disk): %s", name)
			return &dm, true
		} else if !errors.Is(err, sql.ErrNoRows) {
			c.log.Warn("cache: read %s: %v", name, err)
		}
	}

	c.mu.Lock()
	c.misses++
	c.mu.Unlock()
	return nil, false
}

// Put stores facts for name in memory and, when enabled, on disk.
func (c *Cache) Put(ctx context.Context, name string, m domain.Macros) {
	c.mu.Lock()
	c.entries[name] = m
	c.mu.Unlock()

	if c.db == nil {
		return
	}
	_, err := c.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO nutrition (name, item_name, calories, carbs_g, protein_g, fat_g, macros, fetched_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		name, m.Name, m.CaloriesKcal, m.CarbsG, m.ProteinG, m.FatG, m.Macros, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		c.log.Error("cache: disk write failed for %s: %v", name, err)
		return
	}
	c.log.Debug("cache store (disk): %s", name)
}

// Len returns the number of in-memory entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Stats returns hit and miss counts.
func (c *Cache) Stats() (hits, misses int64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}

// Close closes the disk tier, if any.
func (c *Cache) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}

func (c *Cache) readDisk(ctx context.Context, name string) (domain.Macros, error) {
	var m domain.Macros
	err := c.db.QueryRowContext(ctx,
		`SELECT item_name, calories, carbs_g, protein_g, fat_g, macros FROM nutrition WHERE name = ?`, name).
		Scan(&m.Name, &m.CaloriesKcal, &m.CarbsG, &m.ProteinG, &m.FatG, &m.Macros)
	return m, err
}

// ── CachedLookup ─────────────────────────────────────────────────

// Compile-time interface check.
var _ domain.NutritionLookup = (*CachedLookup)(nil)

// CachedLookup serves lookups from a Cache and falls through to next.
type CachedLookup struct {
	next  domain.NutritionLookup
	cache *Cache
}

// NewCachedLookup wraps next with cache.
func NewCachedLookup(next domain.NutritionLookup, cache *Cache) *CachedLookup {
	return &CachedLookup{next: next, cache: cache}
}

// Lookup implements domain.NutritionLookup.
func (l *CachedLookup) Lookup(ctx context.Context, name string) (*domain.Macros, error) {
	if m, ok := l.cache.Get(ctx, name); ok {
		return m, nil
	}
	m, err := l.next.Lookup(ctx, name)
	if err != nil || m == nil {
		return m, err
	}
	l.cache.Put(ctx, name, *m)
	return m, nil
}
