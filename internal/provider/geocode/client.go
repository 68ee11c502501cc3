// Package geocode queries the Nominatim search endpoint.
package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrNotFound covers transport errors, non-2xx statuses, malformed bodies
// and empty candidate lists alike.
var ErrNotFound = errors.New("geocode: place not found")

const (
	defaultBaseURL = "https://nominatim.openstreetmap.org"

	// Nominatim's usage policy requires an identifying User-Agent.
	defaultUserAgent = "EduBot"
)

// Place is one geocoding candidate.
type Place struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

// Client resolves free-text place queries against Nominatim.
type Client struct {
	http      *http.Client
	baseURL   string
	userAgent string
}

// NewClient wraps httpClient for the search endpoint. Pass a nil client to
// get one with an 8 second timeout.
func NewClient(httpClient *http.Client, baseURL, userAgent string) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 8 * time.Second}
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	return &Client{
		http:      httpClient,
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
	}
}

// Search returns candidates for the query, best match first. The bot only
// ever asks for a single candidate.
func (c *Client) Search(ctx context.Context, query string) ([]Place, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", "1")
	endpoint := c.baseURL + "/search?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, ErrNotFound
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, ErrNotFound
	}
	raw, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, ErrNotFound
	}

	var places []Place
	if err := json.Unmarshal(raw, &places); err != nil {
		return nil, ErrNotFound
	}
	if len(places) == 0 {
		return nil, ErrNotFound
	}
	return places, nil
}
