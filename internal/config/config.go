// Package config loads service configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config aggregates every configurable knob of the service.
type Config struct {
	Server   ServerConfig
	Telegram TelegramConfig
	Provider ProviderConfig
	Chat     ChatConfig
}

// Load reads all configuration from the environment.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	telegram, err := loadTelegramConfig()
	if err != nil {
		return nil, err
	}

	provider, err := loadProviderConfig()
	if err != nil {
		return nil, err
	}

	chat, err := loadChatConfig()
	if err != nil {
		return nil, err
	}

	return &Config{Server: server, Telegram: telegram, Provider: provider, Chat: chat}, nil
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr string
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, ":") {
		// Allow passing ":8080" or "127.0.0.1:8080" directly.
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

// TelegramConfig describes the Bot API transport.
type TelegramConfig struct {
	Token       string
	BaseURL     string
	PollTimeout time.Duration
}

// Enabled reports whether a bot token was provided. Without one the process
// serves only the HTTP surface.
func (c TelegramConfig) Enabled() bool {
	return c.Token != ""
}

func loadTelegramConfig() (TelegramConfig, error) {
	pollTimeout, err := parseSecondsEnv("TELEGRAM_POLL_TIMEOUT", 30*time.Second)
	if err != nil {
		return TelegramConfig{}, err
	}

	return TelegramConfig{
		Token:       strings.TrimSpace(os.Getenv("BOT_TOKEN")),
		BaseURL:     getEnvOrDefault("TELEGRAM_BASE_URL", "https://api.telegram.org"),
		PollTimeout: pollTimeout,
	}, nil
}

// ProviderConfig describes the knowledge provider endpoints. Every
// outbound call shares one timeout.
type ProviderConfig struct {
	WikipediaBaseURL  string
	DictionaryBaseURL string
	NominatimBaseURL  string
	DnD5eBaseURL      string
	UserAgent         string
	Timeout           time.Duration
}

func loadProviderConfig() (ProviderConfig, error) {
	timeout, err := parseSecondsEnv("PROVIDER_TIMEOUT", 8*time.Second)
	if err != nil {
		return ProviderConfig{}, err
	}

	// The wiki URL is a template: %s is replaced by the language code.
	wikipediaBaseURL := getEnvOrDefault("WIKIPEDIA_BASE_URL", "https://%s.wikipedia.org")
	if !strings.Contains(wikipediaBaseURL, "%s") {
		return ProviderConfig{}, fmt.Errorf("WIKIPEDIA_BASE_URL must contain a %%s language placeholder, got %q", wikipediaBaseURL)
	}

	return ProviderConfig{
		WikipediaBaseURL:  wikipediaBaseURL,
		DictionaryBaseURL: getEnvOrDefault("DICTIONARY_BASE_URL", "https://api.dictionaryapi.dev"),
		NominatimBaseURL:  getEnvOrDefault("NOMINATIM_BASE_URL", "https://nominatim.openstreetmap.org"),
		DnD5eBaseURL:      getEnvOrDefault("DND5E_BASE_URL", "https://www.dnd5eapi.co"),
		UserAgent:         getEnvOrDefault("PROVIDER_USER_AGENT", "EduBot"),
		Timeout:           timeout,
	}, nil
}

// ChatConfig describes the pipeline's own behavior.
type ChatConfig struct {
	SessionTTL      time.Duration
	DefaultLanguage string
	MessageLimit    int
}

func loadChatConfig() (ChatConfig, error) {
	ttl, err := parseSecondsEnv("SESSION_TTL", 300*time.Second)
	if err != nil {
		return ChatConfig{}, err
	}

	limit := 3800
	if override, err := parseOptionalIntEnv("MESSAGE_LIMIT"); err != nil {
		return ChatConfig{}, err
	} else if override != nil {
		if *override < 1 {
			return ChatConfig{}, fmt.Errorf("MESSAGE_LIMIT must be positive, got %d", *override)
		}
		limit = *override
	}

	return ChatConfig{
		SessionTTL:      ttl,
		DefaultLanguage: getEnvOrDefault("DEFAULT_LANGUAGE", "pt"),
		MessageLimit:    limit,
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseOptionalIntEnv(key string) (*int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}

// parseSecondsEnv reads an integer number of seconds with a default.
func parseSecondsEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	override, err := parseOptionalIntEnv(key)
	if err != nil {
		return 0, err
	}
	if override == nil {
		return defaultValue, nil
	}
	if *override < 1 {
		return 0, fmt.Errorf("%s must be positive, got %d", key, *override)
	}
	return time.Duration(*override) * time.Second, nil
}
