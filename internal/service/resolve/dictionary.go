package resolve

import (
	"context"
	"strings"
	"unicode"

	"github.com/dmoura/edubot/internal/provider/dictionary"
)

// EntryProvider is the contract the dictionary resolver expects from its
// knowledge provider.
type EntryProvider interface {
	Entries(ctx context.Context, word string) ([]dictionary.Entry, error)
}

// Dictionary resolves English words to their first definition. There is no
// language fallback: one attempt, first entry, first meaning, first
// definition.
type Dictionary struct {
	provider EntryProvider
}

// NewDictionary wires the resolver to its provider.
func NewDictionary(provider EntryProvider) *Dictionary {
	return &Dictionary{provider: provider}
}

// Resolve looks up word and formats its first definition.
func (d *Dictionary) Resolve(ctx context.Context, word string) (string, error) {
	entries, err := d.provider.Entries(ctx, word)
	if err != nil {
		return "", ErrNotFound
	}
	if len(entries) == 0 || len(entries[0].Meanings) == 0 || len(entries[0].Meanings[0].Definitions) == 0 {
		return "", ErrNotFound
	}

	definition := entries[0].Meanings[0].Definitions[0].Definition
	if definition == "" {
		return "", ErrNotFound
	}
	return "📗 *" + capitalize(word) + "*\n\n" + definition, nil
}

func capitalize(word string) string {
	if word == "" {
		return word
	}
	runes := []rune(strings.ToLower(word))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
