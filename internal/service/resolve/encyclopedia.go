package resolve

import (
	"context"
	"strings"

	"github.com/dmoura/edubot/internal/provider/wikipedia"
)

// SummaryProvider is the contract the encyclopedia resolver expects from
// its knowledge provider.
type SummaryProvider interface {
	Summary(ctx context.Context, lang, topic string) (wikipedia.Summary, error)
}

// advancedVocabulary marks topics taught at upper school levels. Matching
// is a plain substring check against the lowercased title.
var advancedVocabulary = []string{
	"derivada", "integral", "mitose",
	"democracia", "gravidade", "teorema",
	"algoritmo", "constituição",
}

const (
	labelAdvanced = "📘 Nível: Ensino Médio / Superior\n\n"
	labelBasic    = "📗 Nível: Ensino Fundamental / Médio\n\n"
)

// Encyclopedia resolves topics against a summary provider with a bounded
// language fallback.
type Encyclopedia struct {
	provider SummaryProvider
}

// NewEncyclopedia wires the resolver to its provider.
func NewEncyclopedia(provider SummaryProvider) *Encyclopedia {
	return &Encyclopedia{provider: provider}
}

// Resolve queries the provider for topic, trying each candidate language in
// order and committing to the first success. Spaces in the topic are
// normalized to the provider's underscore separator.
func (e *Encyclopedia) Resolve(ctx context.Context, topic, lang string) (string, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(topic), " ", "_")

	for _, candidate := range candidateLanguages(lang) {
		summary, err := e.provider.Summary(ctx, candidate, normalized)
		if err != nil {
			continue
		}
		return levelLabel(summary.Title) + "📘 *" + summary.Title + "*\n\n" + summary.Extract, nil
	}
	return "", ErrNotFound
}

// candidateLanguages is the explicit fallback chain [lang, "en"] with
// duplicates removed, so a failed English attempt is never repeated.
func candidateLanguages(lang string) []string {
	if lang == "" || lang == "en" {
		return []string{"en"}
	}
	return []string{lang, "en"}
}

func levelLabel(title string) string {
	lowered := strings.ToLower(title)
	for _, word := range advancedVocabulary {
		if strings.Contains(lowered, word) {
			return labelAdvanced
		}
	}
	return labelBasic
}
