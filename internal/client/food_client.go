// Package client consumes the food catalogue API from the UI side.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"fitbuddy/internal/model"

	"github.com/rs/zerolog"
)

const defaultBaseURL = "http://localhost:8080"

// ErrFetchFailed is the only error Query reports. Transport failures, non-2xx
// statuses and malformed bodies all collapse to it; the cause is logged.
var ErrFetchFailed = errors.New("failed to load foods")

// FoodClient queries GET /api/foods. A single request is made per call with no
// retry; cancellation and deadlines come from the caller's context.
type FoodClient struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     zerolog.Logger
}

// Query fetches the foods matching q. Empty query fields are not sent.
func (c *FoodClient) Query(ctx context.Context, q model.FoodQuery) (*model.FoodListResponse, error) {
	resp, err := c.query(ctx, q)
	if err != nil {
		c.Logger.Debug().
			Err(err).
			Str("category", q.Category).
			Str("search", q.Search).
			Msg("food query failed")
		return nil, ErrFetchFailed
	}
	return resp, nil
}

func (c *FoodClient) query(ctx context.Context, q model.FoodQuery) (*model.FoodListResponse, error) {
	base := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if base == "" {
		base = defaultBaseURL
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	params := url.Values{}
	if q.Category != "" {
		params.Set("category", q.Category)
	}
	if q.Search != "" {
		params.Set("search", q.Search)
	}

	endpoint := base + "/api/foods"
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create foods request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute foods request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("foods request failed with status %d", resp.StatusCode)
	}

	var parsed model.FoodListResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode foods response: %w", err)
	}
	if parsed.Foods == nil {
		return nil, fmt.Errorf("foods response has no foods array")
	}

	return &parsed, nil
}
