package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hammamikhairi/calcprods/internal/domain"
	"github.com/hammamikhairi/calcprods/internal/logger"
)

const ioData = "testdata/io_data"

func newTestStore(t *testing.T, dir string) *CSVStore {
	t.Helper()
	return NewCSVStore(dir, logger.New(logger.LevelOff, nil))
}

func render(list []domain.Ingredient) []string {
	out := make([]string, len(list))
	for i, x := range list {
		out[i] = x.String()
	}
	return out
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadDayRecords(t *testing.T) {
	records, err := newTestStore(t, ioData).LoadDayRecords(context.Background())
	require.NoError(t, err)

	// day2.csv has no rows and is skipped; instock.csv is not a day file.
	require.Len(t, records, 4)

	got := map[string][]string{}
	for _, r := range records {
		got[r.ID] = render(r.Ingredients)
	}
	assert.Equal(t, map[string][]string{
		"day0":      {"carrots 0.07 kg", "sunflower oil 0 ml"},
		"day1.1":    {"water 250 ml", "macaroni 0.07 kg"},
		"day1.2":    {"soy sauce 0.02 cup", "water 35 ml"},
		"day1.main": {"water 35 ml"},
	}, got)

	assert.Equal(t, "day0", records[0].ID)
	assert.Equal(t, 0, records[0].Day)
	assert.Equal(t, 1, records[3].Day)
	assert.Equal(t, "main", records[3].Slot)
}

func TestLoadDayRecordsEmptyData(t *testing.T) {
	ctx := context.Background()

	t.Run("missing dir", func(t *testing.T) {
		_, err := newTestStore(t, filepath.Join(t.TempDir(), "nope")).LoadDayRecords(ctx)
		assert.ErrorIs(t, err, domain.ErrEmptyData)
		assert.Contains(t, err.Error(), "doesn't exist")
	})

	t.Run("empty dir", func(t *testing.T) {
		_, err := newTestStore(t, t.TempDir()).LoadDayRecords(ctx)
		assert.ErrorIs(t, err, domain.ErrEmptyData)
	})

	t.Run("no day files", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "instock.csv"), "name,quantity,unit\n")
		_, err := newTestStore(t, dir).LoadDayRecords(ctx)
		assert.ErrorIs(t, err, domain.ErrEmptyData)
	})

	t.Run("only empty day files", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "day0.csv"), "name,quantity,unit\n")
		_, err := newTestStore(t, dir).LoadDayRecords(ctx)
		var ede *domain.EmptyDataError
		require.ErrorAs(t, err, &ede)
		assert.Equal(t, dir, ede.Dir)
	})
}

func TestLoadDayRecordsUnknownUnit(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "day0.csv"), "name,quantity,unit\ncarrots,1,kg\nbeans,2,bushel\n")

	_, err := newTestStore(t, dir).LoadDayRecords(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownUnit)
	assert.Contains(t, err.Error(), "day0.csv")
	assert.Contains(t, err.Error(), "line 3")
}

func TestReadIngredients(t *testing.T) {
	got, err := newTestStore(t, ioData).ReadIngredients(context.Background(), filepath.Join(ioData, "day1.main.csv"))
	require.NoError(t, err)
	assert.Equal(t, []string{"water 35 ml"}, render(got))
}

func TestReadIngredientsColumnOrder(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "list.csv")
	writeFile(t, path, "unit,name,quantity\nkg,rice,1.5\n")

	got, err := newTestStore(t, dir).ReadIngredients(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, []string{"rice 1.5 kg"}, render(got))

	writeFile(t, path, "name,unit\nrice,kg\n")
	_, err = newTestStore(t, dir).ReadIngredients(context.Background(), path)
	assert.ErrorContains(t, err, `missing "quantity" column`)
}

func TestReadIngredientsNotFound(t *testing.T) {
	path := "tests/nonexist/day1.main.csv"
	_, err := NewCSVStore("data", logger.New(logger.LevelOff, nil)).ReadIngredients(context.Background(), path)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t,
		"tests/nonexist/day1.main.csv doesn't exist. Create new empty tests/nonexist/day1.main.csv, fill it out and add it to data/.",
		err.Error())
}

func TestWriteIngredientsRoundTrip(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store := newTestStore(t, dir)
	path := filepath.Join(dir, "out", "instock.csv")

	list := []domain.Ingredient{
		domain.NewIngredientFloat("carrots", 0.07, domain.UnitKilogram).Blanked(),
		domain.NewIngredientFloat("water", 18880, domain.UnitMilliliter),
	}
	require.NoError(t, store.WriteIngredients(ctx, path, list))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "name,quantity,unit\ncarrots,,kg\nwater,18880,ml\n", string(raw))

	// A blank quantity reads back as zero.
	got, err := store.ReadIngredients(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, []string{"carrots 0 kg", "water 18880 ml"}, render(got))
}

func TestWriteEmptyListKeepsHeader(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "order.csv")
	require.NoError(t, newTestStore(t, dir).WriteIngredients(context.Background(), path, nil))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "name,quantity,unit\n", string(raw))
}

func TestWriteMacros(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nutrition.csv")
	err := newTestStore(t, dir).WriteMacros(context.Background(), path, []domain.Macros{
		{Name: "carrots", CaloriesKcal: 35, CarbsG: 8, ProteinG: 1, FatG: 2, Macros: "87/9/5"},
		{Name: "water"},
	})
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"name,calories_kcal,carbs_g,protein_g,fat_g,macros\ncarrots,35,8,1,2,87/9/5\nwater,0,0,0,0,\n",
		string(raw))
}
