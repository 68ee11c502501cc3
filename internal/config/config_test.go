package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "BOT_TOKEN", "PROVIDER_TIMEOUT", "SESSION_TTL", "DEFAULT_LANGUAGE", "MESSAGE_LIMIT", "WIKIPEDIA_BASE_URL", "DND5E_BASE_URL"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}

	if cfg.Server.Addr != ":8080" {
		t.Fatalf("unexpected addr: %q", cfg.Server.Addr)
	}
	if cfg.Telegram.Enabled() {
		t.Fatal("telegram should be disabled without BOT_TOKEN")
	}
	if cfg.Provider.Timeout != 8*time.Second {
		t.Fatalf("unexpected provider timeout: %v", cfg.Provider.Timeout)
	}
	if cfg.Chat.SessionTTL != 300*time.Second {
		t.Fatalf("unexpected session TTL: %v", cfg.Chat.SessionTTL)
	}
	if cfg.Chat.DefaultLanguage != "pt" {
		t.Fatalf("unexpected default language: %q", cfg.Chat.DefaultLanguage)
	}
	if cfg.Chat.MessageLimit != 3800 {
		t.Fatalf("unexpected message limit: %d", cfg.Chat.MessageLimit)
	}
	if cfg.Provider.WikipediaBaseURL != "https://%s.wikipedia.org" {
		t.Fatalf("unexpected wiki base URL: %q", cfg.Provider.WikipediaBaseURL)
	}
	if cfg.Provider.DnD5eBaseURL != "https://www.dnd5eapi.co" {
		t.Fatalf("unexpected dnd5e base URL: %q", cfg.Provider.DnD5eBaseURL)
	}
}

func TestLoadRejectsWikiURLWithoutPlaceholder(t *testing.T) {
	t.Setenv("WIKIPEDIA_BASE_URL", "https://pt.wikipedia.org")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for WIKIPEDIA_BASE_URL without %%s placeholder")
	}

	t.Setenv("WIKIPEDIA_BASE_URL", "https://%s.wikipedia.example")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if cfg.Provider.WikipediaBaseURL != "https://%s.wikipedia.example" {
		t.Fatalf("unexpected wiki base URL: %q", cfg.Provider.WikipediaBaseURL)
	}
}

func TestLoadPortVariants(t *testing.T) {
	cases := []struct {
		value string
		addr  string
		ok    bool
	}{
		{"9000", ":9000", true},
		{":9000", ":9000", true},
		{"127.0.0.1:9000", "127.0.0.1:9000", true},
		{"bad port", "", false},
	}

	for _, tc := range cases {
		t.Setenv("PORT", tc.value)
		cfg, err := Load()
		if tc.ok {
			if err != nil {
				t.Fatalf("PORT=%q: unexpected error: %v", tc.value, err)
			}
			if cfg.Server.Addr != tc.addr {
				t.Fatalf("PORT=%q: got addr %q want %q", tc.value, cfg.Server.Addr, tc.addr)
			}
		} else if err == nil {
			t.Fatalf("PORT=%q: expected error", tc.value)
		}
	}
}

func TestLoadTelegramEnabled(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("TELEGRAM_POLL_TIMEOUT", "10")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if !cfg.Telegram.Enabled() {
		t.Fatal("telegram should be enabled with a token")
	}
	if cfg.Telegram.PollTimeout != 10*time.Second {
		t.Fatalf("unexpected poll timeout: %v", cfg.Telegram.PollTimeout)
	}
}

func TestLoadRejectsMalformedNumbers(t *testing.T) {
	t.Setenv("SESSION_TTL", "five minutes")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for malformed SESSION_TTL")
	}
}

func TestLoadRejectsNonPositiveLimit(t *testing.T) {
	t.Setenv("MESSAGE_LIMIT", "0")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for MESSAGE_LIMIT=0")
	}
}
