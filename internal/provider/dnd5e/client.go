// Package dnd5e queries the D&D 5e API for spells and monsters.
package dnd5e

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
// and nameless payloads alike.
var ErrNotFound = errors.New("dnd5e: entry not found")

const defaultBaseURL = "https://www.dnd5eapi.co"

// Spell is one spell record.
type Spell struct {
	Name string   `json:"name"`
	Desc []string `json:"desc"`
}

// ArmorClass is one armor class entry of a monster.
type ArmorClass struct {
	Value int `json:"value"`
}

// Monster is one monster record.
type Monster struct {
	Name       string       `json:"name"`
	HitPoints  int          `json:"hit_points"`
	ArmorClass []ArmorClass `json:"armor_class"`
}

// Client looks up spells and monsters by their API index.
type Client struct {
	http    *http.Client
	baseURL string
}

// NewClient wraps httpClient for the spell and monster endpoints. Pass a
// nil client to get one with an 8 second timeout.
func NewClient(httpClient *http.Client, baseURL string) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 8 * time.Second}
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{http: httpClient, baseURL: strings.TrimRight(baseURL, "/")}
}

// Spell fetches the spell with the given index, such as "magic-missile".
func (c *Client) Spell(ctx context.Context, index string) (Spell, error) {
	var spell Spell
	if err := c.fetch(ctx, "/api/spells/"+url.PathEscape(index), &spell); err != nil {
		return Spell{}, err
	}
	if spell.Name == "" {
		return Spell{}, ErrNotFound
	}
	return spell, nil
}

// Monster fetches the monster with the given index, such as "adult-red-dragon".
func (c *Client) Monster(ctx context.Context, index string) (Monster, error) {
	var monster Monster
	if err := c.fetch(ctx, "/api/monsters/"+url.PathEscape(index), &monster); err != nil {
		return Monster{}, err
	}
	if monster.Name == "" {
		return Monster{}, ErrNotFound
	}
	return monster, nil
}

func (c *Client) fetch(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return ErrNotFound
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return ErrNotFound
	}
	raw, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return ErrNotFound
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return ErrNotFound
	}
	return nil
}
