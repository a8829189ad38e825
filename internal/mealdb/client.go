package mealdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const (
	// DefaultBaseURL is the public TheMealDB v1 API root.
	DefaultBaseURL = "https://www.themealdb.com/api/json/v1/1"

	// DefaultTimeout bounds every outbound call.
	DefaultTimeout = 10 * time.Second
)

// Client talks to TheMealDB. It does pure request/response translation;
// callers decide how to treat failures.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client against the given API root. Empty baseURL
// and zero timeout fall back to the defaults.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// envelope is the common {"meals": [...]} wrapper. A null meals field
// means no results.
type envelope struct {
	Meals []json.RawMessage `json:"meals"`
}

func (c *Client) get(ctx context.Context, path string, query url.Values) (*envelope, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("mealdb request failed with status %d", resp.StatusCode)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &env, nil
}

func (c *Client) one(ctx context.Context, path string, query url.Values) (*Meal, error) {
	env, err := c.get(ctx, path, query)
	if err != nil {
		return nil, err
	}
	if len(env.Meals) == 0 {
		return nil, nil
	}
	var meal Meal
	if err := json.Unmarshal(env.Meals[0], &meal); err != nil {
		return nil, fmt.Errorf("failed to decode meal: %w", err)
	}
	return &meal, nil
}

// Random fetches a single random meal. A nil meal without error means
// the API had nothing to offer.
func (c *Client) Random(ctx context.Context) (*Meal, error) {
	return c.one(ctx, "/random.php", nil)
}

// Lookup fetches the full meal for an id, or nil if the id is unknown.
func (c *Client) Lookup(ctx context.Context, id string) (*Meal, error) {
	return c.one(ctx, "/lookup.php", url.Values{"i": {id}})
}

// FilterByCategory lists meal summaries in a category.
func (c *Client) FilterByCategory(ctx context.Context, category string) ([]Summary, error) {
	return c.summaries(ctx, "/filter.php", url.Values{"c": {category}})
}

// FilterByArea lists meal summaries from a region.
func (c *Client) FilterByArea(ctx context.Context, area string) ([]Summary, error) {
	return c.summaries(ctx, "/filter.php", url.Values{"a": {area}})
}

func (c *Client) summaries(ctx context.Context, path string, query url.Values) ([]Summary, error) {
	env, err := c.get(ctx, path, query)
	if err != nil {
		return nil, err
	}
	results := make([]Summary, 0, len(env.Meals))
	for _, raw := range env.Meals {
		var s Summary
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, fmt.Errorf("failed to decode meal summary: %w", err)
		}
		results = append(results, s)
	}
	return results, nil
}

// SearchByName does a free-text name search. The endpoint returns full
// meals; they are reduced to summaries for listing.
func (c *Client) SearchByName(ctx context.Context, name string) ([]Summary, error) {
	env, err := c.get(ctx, "/search.php", url.Values{"s": {name}})
	if err != nil {
		return nil, err
	}
	results := make([]Summary, 0, len(env.Meals))
	for _, raw := range env.Meals {
		var meal Meal
		if err := json.Unmarshal(raw, &meal); err != nil {
			return nil, fmt.Errorf("failed to decode meal: %w", err)
		}
		results = append(results, meal.Summary())
	}
	return results, nil
}
