package storage

import (
	"context"
	"sync"

	"github.com/hammamikhairi/calcprods/internal/domain"
	"github.com/hammamikhairi/calcprods/internal/logger"
)

// Compile-time interface check.
var _ domain.Store = (*MemoryStore)(nil)

// MemoryStore keeps day records and written lists in memory, keyed by
// path. Safe for concurrent access.
type MemoryStore struct {
	mu      sync.RWMutex
	records []domain.DayRecord
	files   map[string][]domain.Ingredient
	macros  map[string][]domain.Macros
	log     *logger.Logger
}

// NewMemoryStore creates a store serving the given day records.
func NewMemoryStore(records []domain.DayRecord, log *logger.Logger) *MemoryStore {
	return &MemoryStore{
		records: records,
		files:   make(map[string][]domain.Ingredient),
		macros:  make(map[string][]domain.Macros),
		log:     log,
	}
}

// LoadDayRecords returns the records given to NewMemoryStore.
func (s *MemoryStore) LoadDayRecords(ctx context.Context) ([]domain.DayRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.records) == 0 {
		return nil, &domain.EmptyDataError{Dir: "memory", Reason: "no ingredients were found"}
	}
	out := make([]domain.DayRecord, len(s.records))
	copy(out, s.records)
	s.log.Debug("memory: listing day records, count=%d", len(out))
	return out, nil
}

// ReadIngredients returns a list previously stored under path.
func (s *MemoryStore) ReadIngredients(ctx context.Context, path string) ([]domain.Ingredient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list, ok := s.files[path]
	if !ok {
		s.log.Debug("memory: file not found: %s", path)
		return nil, &domain.NotFoundError{Path: path, DataDir: "memory"}
	}
	return cloneIngredients(list), nil
}

// WriteIngredients stores a list under path. Overwrites if it already exists.
func (s *MemoryStore) WriteIngredients(ctx context.Context, path string, list []domain.Ingredient) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.files[path] = cloneIngredients(list)
	s.log.Debug("memory: saved %d ingredients to %s", len(list), path)
	return nil
}

// WriteMacros stores a nutrition list under path.
func (s *MemoryStore) WriteMacros(ctx context.Context, path string, list []domain.Macros) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Macros, len(list))
	copy(out, list)
	s.macros[path] = out
	s.log.Debug("memory: saved %d nutrition rows to %s", len(list), path)
	return nil
}

// Macros returns the nutrition list written to path.
func (s *MemoryStore) Macros(path string) ([]domain.Macros, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list, ok := s.macros[path]
	return list, ok
}

func cloneIngredients(list []domain.Ingredient) []domain.Ingredient {
	out := make([]domain.Ingredient, len(list))
	copy(out, list)
	return out
}
