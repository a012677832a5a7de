package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"fitbuddy/internal/model"
)

const (
	defaultBaseURL   = "https://nominatim.openstreetmap.org"
	defaultUserAgent = "fitbuddy/1.0"
)

// NominatimClient resolves addresses with the OpenStreetMap Nominatim
// /reverse endpoint. Results are requested in English.
type NominatimClient struct {
	BaseURL    string
	UserAgent  string
	HTTPClient *http.Client
}

type nominatimResponse struct {
	DisplayName string `json:"display_name"`
	Address     *struct {
		City    string `json:"city"`
		Town    string `json:"town"`
		Village string `json:"village"`
		Hamlet  string `json:"hamlet"`
		Suburb  string `json:"suburb"`
		State   string `json:"state"`
		Region  string `json:"region"`
		Country string `json:"country"`
	} `json:"address"`
}

// ResolveAddress implements Resolver.
func (c *NominatimClient) ResolveAddress(ctx context.Context, lat, lon float64) (model.PartialAddress, error) {
	base := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if base == "" {
		base = defaultBaseURL
	}
	userAgent := c.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}

	params := url.Values{}
	params.Set("format", "json")
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("accept-language", "en")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"/reverse?"+params.Encode(), nil)
	if err != nil {
		return model.PartialAddress{}, fmt.Errorf("create nominatim request: %w", err)
	}
	// Nominatim's usage policy requires an identifying User-Agent.
	req.Header.Set("User-Agent", userAgent)

	resp, err := httpClient.Do(req)
	if err != nil {
		return model.PartialAddress{}, fmt.Errorf("execute nominatim request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return model.PartialAddress{}, fmt.Errorf("nominatim request failed with status %d", resp.StatusCode)
	}

	var parsed nominatimResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return model.PartialAddress{}, fmt.Errorf("decode nominatim response: %w", err)
	}
	if parsed.Address == nil {
		return model.PartialAddress{}, fmt.Errorf("nominatim response has no address")
	}

	a := parsed.Address
	return model.PartialAddress{
		City:        a.City,
		Town:        a.Town,
		Village:     a.Village,
		Hamlet:      a.Hamlet,
		Suburb:      a.Suburb,
		State:       a.State,
		Region:      a.Region,
		Country:     a.Country,
		DisplayName: parsed.DisplayName,
	}, nil
}
