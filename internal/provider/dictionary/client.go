// Package dictionary queries the free Dictionary API for English entries.
package dictionary

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
// and empty entry lists alike.
var ErrNotFound = errors.New("dictionary: entry not found")

const defaultBaseURL = "https://api.dictionaryapi.dev"

// Definition is a single sense of a meaning.
type Definition struct {
	Definition string `json:"definition"`
	Example    string `json:"example,omitempty"`
}

// Meaning groups definitions under a part of speech.
type Meaning struct {
	PartOfSpeech string       `json:"partOfSpeech"`
	Definitions  []Definition `json:"definitions"`
}

// Entry is one matched dictionary entry.
type Entry struct {
	Word     string    `json:"word"`
	Meanings []Meaning `json:"meanings"`
}

// Client looks up English dictionary entries.
type Client struct {
	http    *http.Client
	baseURL string
}

// NewClient wraps httpClient for the entries endpoint. Pass a nil client to
// get one with an 8 second timeout.
func NewClient(httpClient *http.Client, baseURL string) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 8 * time.Second}
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{http: httpClient, baseURL: strings.TrimRight(baseURL, "/")}
}

// Entries fetches the matched entries for word. The provider is
// English-only; there is no language fallback.
func (c *Client) Entries(ctx context.Context, word string) ([]Entry, error) {
	endpoint := c.baseURL + "/api/v2/entries/en/" + url.PathEscape(word)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, ErrNotFound
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, ErrNotFound
	}
	raw, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, ErrNotFound
	}

	var entries []Entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, ErrNotFound
	}
	if len(entries) == 0 {
		return nil, ErrNotFound
	}
	return entries, nil
}
