// Package nutrition looks up nutrition facts for ingredients on the
// calorieninjas.com API and derives their macro split.
package nutrition

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/hammamikhairi/calcprods/internal/domain"
	"github.com/hammamikhairi/calcprods/internal/logger"
)

// DefaultEndpoint is the calorieninjas nutrition resource.
const DefaultEndpoint = "https://api.calorieninjas.com/v1/nutrition"

// EnvAPIKey is the env var holding the calorieninjas API key.
const EnvAPIKey = "FOOD_API_KEY"

// Compile-time interface check.
var _ domain.NutritionLookup = (*Client)(nil)

// ── Wire types ───────────────────────────────────────────────────

// Item is one food item of an API response.
type Item struct {
	Name        string  `json:"name"`
	Calories    float64 `json:"calories"`
	CarbsTotalG float64 `json:"carbohydrates_total_g"`
	ProteinG    float64 `json:"protein_g"`
	FatTotalG   float64 `json:"fat_total_g"`
}

type apiResponse struct {
	Items []Item `json:"items"`
}

// ── Client ───────────────────────────────────────────────────────

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithEndpoint overrides the API endpoint (tests, proxies).
func WithEndpoint(endpoint string) ClientOption {
	return func(c *Client) { c.endpoint = endpoint }
}

// WithHTTPTimeout sets the HTTP client timeout.
func WithHTTPTimeout(d time.Duration) ClientOption {
	return func(c *Client) { c.http.Timeout = d }
}

// WithHTTPClient replaces the HTTP client entirely.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.http = hc }
}

// Client talks to the calorieninjas nutrition endpoint.
type Client struct {
	endpoint string
	apiKey   string
	http     *http.Client
	log      *logger.Logger
}

// NewClient creates a nutrition client authenticated with apiKey.
func NewClient(apiKey string, log *logger.Logger, opts ...ClientOption) *Client {
	c := &Client{
		endpoint: DefaultEndpoint,
		apiKey:   apiKey,
		http:     &http.Client{Timeout: 30 * time.Second},
		log:      log,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Query returns every item the API recognises in query.
func (c *Client) Query(ctx context.Context, query string) ([]Item, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("nutrition: bad endpoint: %w", err)
	}
	q := u.Query()
	q.Set("query", query)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("nutrition: create request: %w", err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)

	c.log.Debug("nutrition: GET %s", u.String())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("nutrition: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("nutrition: read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("nutrition: API %s: %s", resp.Status, truncate(string(body), 200))
	}

	var result apiResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("nutrition: unmarshal response: %w", err)
	}
	return result.Items, nil
}

// Lookup returns the macros of the first item recognised for name, or nil
// when the API knows nothing about it.
func (c *Client) Lookup(ctx context.Context, name string) (*domain.Macros, error) {
	items, err := c.Query(ctx, name)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		c.log.Debug("nutrition: no items for %q", name)
		return nil, nil
	}
	m := ToMacros(items[0])
	if m.Name == "" {
		m.Name = name
	}
	return &m, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
