package nutrition

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hammamikhairi/calcprods/internal/logger"
)

const basilResponse = `{"items":[{"name":"basil","calories":24.4,"serving_size_g":100,` +
	`"fat_total_g":0,"protein_g":4,"carbohydrates_total_g":2,"fiber_g":1.6,"sugar_g":0.3}]}`

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient("secret", logger.New(logger.LevelOff, nil), WithEndpoint(srv.URL+"/v1/nutrition"))
}

func TestClientLookup(t *testing.T) {
	var gotKey, gotQuery, gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-Api-Key")
		gotQuery = r.URL.Query().Get("query")
		gotPath = r.URL.Path
		w.Write([]byte(basilResponse))
	})

	m, err := c.Lookup(context.Background(), "basil leaves")
	require.NoError(t, err)
	require.NotNil(t, m)

	assert.Equal(t, "secret", gotKey)
	assert.Equal(t, "basil leaves", gotQuery)
	assert.Equal(t, "/v1/nutrition", gotPath)

	assert.Equal(t, "basil", m.Name)
	assert.Equal(t, 24.4, m.CaloriesKcal)
	assert.Equal(t, 2.0, m.CarbsG)
	assert.Equal(t, 4.0, m.ProteinG)
	assert.Equal(t, 0.0, m.FatG)
	assert.Equal(t, "33/67/0", m.Macros)
}

func TestClientLookupNoItems(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items":[]}`))
	})

	m, err := c.Lookup(context.Background(), "unobtainium")
	require.NoError(t, err)
	assert.Nil(t, m)
}

func TestClientLookupHTTPError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid api key", http.StatusUnauthorized)
	})

	_, err := c.Lookup(context.Background(), "basil")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
	assert.Contains(t, err.Error(), "invalid api key")
}

func TestClientLookupBadJSON(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	})

	_, err := c.Lookup(context.Background(), "basil")
	assert.ErrorContains(t, err, "unmarshal")
}

func TestClientTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	t.Cleanup(srv.Close)

	c := NewClient("k", logger.New(logger.LevelOff, nil),
		WithEndpoint(srv.URL), WithHTTPTimeout(20*time.Millisecond))
	_, err := c.Lookup(context.Background(), "basil")
	assert.ErrorContains(t, err, "request failed")
}
