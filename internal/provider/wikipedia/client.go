// Package wikipedia queries the Wikipedia REST summary endpoint.
package wikipedia

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrNotFound covers every failure mode of the provider: transport errors,
// timeouts, non-2xx statuses and malformed bodies all collapse into it.
// Callers cannot tell a missing page from an unreachable provider.
var ErrNotFound = errors.New("wikipedia: summary not found")

// DefaultBaseURL is the per-language edition host; %s is the language code.
const DefaultBaseURL = "https://%s.wikipedia.org"

// Summary is the slice of the REST summary payload the bot uses.
type Summary struct {
	Title   string `json:"title"`
	Extract string `json:"extract"`
}

// Client fetches page summaries per language edition.
type Client struct {
	http    *http.Client
	baseURL string
}

// NewClient wraps httpClient for the summary endpoint. baseURL must carry a
// %s placeholder for the language code. Pass a nil client to get one with
// an 8 second timeout.
func NewClient(httpClient *http.Client, baseURL string) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 8 * time.Second}
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{http: httpClient, baseURL: strings.TrimRight(baseURL, "/")}
}

// Summary requests the page summary for topic in the given language
// edition. topic is expected to be pre-normalized (spaces replaced by
// underscores).
func (c *Client) Summary(ctx context.Context, lang, topic string) (Summary, error) {
	endpoint := fmt.Sprintf(c.baseURL, lang) + "/api/rest_v1/page/summary/" + url.PathEscape(topic)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Summary{}, ErrNotFound
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Summary{}, ErrNotFound
	}
	raw, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Summary{}, ErrNotFound
	}

	var out Summary
	if err := json.Unmarshal(raw, &out); err != nil {
		return Summary{}, ErrNotFound
	}
	if out.Title == "" {
		return Summary{}, ErrNotFound
	}
	return out, nil
}
