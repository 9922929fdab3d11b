// Package storage provides day record and ingredient list persistence.
package storage

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/hammamikhairi/calcprods/internal/domain"
	"github.com/hammamikhairi/calcprods/internal/logger"
)

// Compile-time interface check.
var _ domain.Store = (*CSVStore)(nil)

// Column headers of the CSV files.
var (
	IngredientHeader = []string{"name", "quantity", "unit"}
	MacrosHeader     = []string{"name", "calories_kcal", "carbs_g", "protein_g", "fat_g", "macros"}
)

// CSVStore reads day records from day*.csv files in a data directory and
// reads/writes ingredient lists as CSV.
type CSVStore struct {
	dataDir string
	log     *logger.Logger
}

// NewCSVStore creates a store rooted at dataDir.
func NewCSVStore(dataDir string, log *logger.Logger) *CSVStore {
	return &CSVStore{dataDir: dataDir, log: log}
}

// DataDir returns the directory day files are read from.
func (s *CSVStore) DataDir() string { return s.dataDir }

// LoadDayRecords reads every day<N>[.<slot>].csv file in the data directory,
// in file name order. Files without rows are skipped.
func (s *CSVStore) LoadDayRecords(ctx context.Context) ([]domain.DayRecord, error) {
	entries, err := os.ReadDir(s.dataDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &domain.EmptyDataError{Dir: s.dataDir, Reason: "expected directory doesn't exist"}
		}
		return nil, fmt.Errorf("read data dir: %w", err)
	}
	if len(entries) == 0 {
		return nil, &domain.EmptyDataError{Dir: s.dataDir, Reason: "there are no files to process"}
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".csv") {
			continue
		}
		if !strings.HasPrefix(strings.ToLower(e.Name()), "day") {
			continue
		}
		names = append(names, e.Name())
	}
	if len(names) == 0 {
		return nil, &domain.EmptyDataError{Dir: s.dataDir, Reason: "there are no matching day files to process"}
	}
	sort.Strings(names)

	var records []domain.DayRecord
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		id := strings.TrimSuffix(name, filepath.Ext(name))
		day, slot, ok := domain.ParseDayID(id)
		if !ok {
			s.log.Debug("storage: skipping %s, not a day file", name)
			continue
		}

		ingredients, err := s.ReadIngredients(ctx, filepath.Join(s.dataDir, name))
		if err != nil {
			return nil, err
		}
		if len(ingredients) == 0 {
			s.log.Debug("storage: skipping empty %s", name)
			continue
		}

		records = append(records, domain.DayRecord{
			ID:          id,
			Day:         day,
			Slot:        slot,
			Ingredients: ingredients,
		})
	}

	if len(records) == 0 {
		return nil, &domain.EmptyDataError{Dir: s.dataDir, Reason: "no ingredients were found in files"}
	}

	s.log.Debug("storage: loaded %d day records from %s", len(records), s.dataDir)
	return records, nil
}

// ReadIngredients reads an ingredient list. Columns are located by header
// name; a blank quantity reads as zero.
func (s *CSVStore) ReadIngredients(ctx context.Context, path string) ([]domain.Ingredient, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &domain.NotFoundError{Path: path, DataDir: s.dataDir}
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	list, err := decodeIngredients(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return list, nil
}

// WriteIngredients writes an ingredient list with a header row, creating
// parent directories as needed.
func (s *CSVStore) WriteIngredients(ctx context.Context, path string, list []domain.Ingredient) error {
	rows := make([][]string, 0, len(list))
	for _, ing := range list {
		rows = append(rows, []string{ing.Name, ing.QuantityString(), ing.Unit.String()})
	}
	if err := writeCSV(path, IngredientHeader, rows); err != nil {
		return err
	}
	s.log.Debug("storage: wrote %d ingredients to %s", len(list), path)
	return nil
}

// WriteMacros writes a nutrition list with a header row.
func (s *CSVStore) WriteMacros(ctx context.Context, path string, list []domain.Macros) error {
	rows := make([][]string, 0, len(list))
	for _, m := range list {
		rows = append(rows, MacrosRow(m))
	}
	if err := writeCSV(path, MacrosHeader, rows); err != nil {
		return err
	}
	s.log.Debug("storage: wrote %d nutrition rows to %s", len(list), path)
	return nil
}

// MacrosRow formats a Macros value in MacrosHeader column order.
func MacrosRow(m domain.Macros) []string {
	return []string{
		m.Name,
		formatFloat(m.CaloriesKcal),
		formatFloat(m.CarbsG),
		formatFloat(m.ProteinG),
		formatFloat(m.FatG),
		m.Macros,
	}
}

func decodeIngredients(r io.Reader) ([]domain.Ingredient, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	col := make(map[string]int, len(header))
	for i, h := range header {
		col[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}
	for _, want := range IngredientHeader {
		if _, ok := col[want]; !ok {
			return nil, fmt.Errorf("missing %q column", want)
		}
	}

	var list []domain.Ingredient
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := cr.FieldPos(0)

		unit, err := domain.ParseUnit(strings.TrimSpace(rec[col["unit"]]))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		quantity := decimal.Zero
		if q := strings.TrimSpace(rec[col["quantity"]]); q != "" {
			quantity, err = decimal.NewFromString(q)
			if err != nil {
				return nil, fmt.Errorf("line %d: bad quantity %q: %w", line, q, err)
			}
		}

		list = append(list, domain.NewIngredient(rec[col["name"]], quantity, unit))
	}
	return list, nil
}

func writeCSV(path string, header []string, rows [][]string) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create dir for %s: %w", path, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := w.WriteAll(rows); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
