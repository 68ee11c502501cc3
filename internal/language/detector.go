// Package language wraps best-effort language detection for inbound messages.
package language

import (
	"strings"

	"github.com/pemistahl/lingua-go"
)

// DefaultCode is returned whenever detection cannot produce an answer.
const DefaultCode = "pt"

// Detector maps free text to a lowercase ISO 639-1 code. Detection never
// fails observably: any undetectable input yields the fallback code, so the
// pipeline is never blocked on it.
type Detector struct {
	fallback string
	detector lingua.LanguageDetector
}

// NewDetector builds a detector restricted to the languages the bot's
// trigger table and knowledge providers cover. An empty fallback defaults
// to DefaultCode.
func NewDetector(fallback string) *Detector {
	if fallback == "" {
		fallback = DefaultCode
	}

	languages := []lingua.Language{
		lingua.Portuguese,
		lingua.English,
		lingua.Spanish,
		lingua.French,
		lingua.German,
		lingua.Italian,
	}

	return &Detector{
		fallback: fallback,
		detector: lingua.NewLanguageDetectorBuilder().
			FromLanguages(languages...).
			Build(),
	}
}

// Detect returns the best-guess language code for text. Short inputs are
// statistically unreliable; the result is a hint, not a guarantee.
func (d *Detector) Detect(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return d.fallback
	}

	detected, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return d.fallback
	}
	return strings.ToLower(detected.IsoCode639_1().String())
}
