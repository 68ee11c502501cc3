package resolve

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmoura/edubot/internal/provider/dnd5e"
)

// SpellProvider is the contract the spell resolver expects from its
// knowledge provider.
type SpellProvider interface {
	Spell(ctx context.Context, index string) (dnd5e.Spell, error)
}

// MonsterProvider is the contract the monster resolver expects from its
// knowledge provider.
type MonsterProvider interface {
	Monster(ctx context.Context, index string) (dnd5e.Monster, error)
}

// SpellBook resolves spell names to formatted descriptions.
type SpellBook struct {
	provider SpellProvider
}

// NewSpellBook wires the resolver to its provider.
func NewSpellBook(provider SpellProvider) *SpellBook {
	return &SpellBook{provider: provider}
}

// Resolve looks up the named spell and joins its description lines.
func (s *SpellBook) Resolve(ctx context.Context, name string) (string, error) {
	spell, err := s.provider.Spell(ctx, slugify(name))
	if err != nil {
		return "", ErrNotFound
	}
	return "✨ *" + spell.Name + "*\n\n" + strings.Join(spell.Desc, "\n"), nil
}

// Bestiary resolves monster names to a short stat line.
type Bestiary struct {
	provider MonsterProvider
}

// NewBestiary wires the resolver to its provider.
func NewBestiary(provider MonsterProvider) *Bestiary {
	return &Bestiary{provider: provider}
}

// Resolve looks up the named monster. A record without an armor class
// entry counts as not found.
func (b *Bestiary) Resolve(ctx context.Context, name string) (string, error) {
	monster, err := b.provider.Monster(ctx, slugify(name))
	if err != nil || len(monster.ArmorClass) == 0 {
		return "", ErrNotFound
	}
	return fmt.Sprintf("👹 *%s*\n\nHP: %d\nAC: %d",
		monster.Name, monster.HitPoints, monster.ArmorClass[0].Value), nil
}

// slugify maps a display name to the API index form, so "Magic Missile"
// becomes "magic-missile".
func slugify(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}
