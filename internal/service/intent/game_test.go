package intent_test

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/dmoura/edubot/internal/service/resolve"
)

func TestHandleCommandSpell(t *testing.T) {
	f := newFixture()

	replies := f.router.HandleCommand(context.Background(), 20, "magia", "Magic Missile")
	if len(replies) != 1 || replies[0] != "spell reply" {
		t.Fatalf("unexpected replies: %#v", replies)
	}
	if len(f.spells.calls) != 1 || f.spells.calls[0] != "Magic Missile" {
		t.Fatalf("unexpected spell calls: %v", f.spells.calls)
	}
}

func TestHandleCommandSpellNotFound(t *testing.T) {
	f := newFixture()
	f.spells.err = resolve.ErrNotFound

	replies := f.router.HandleCommand(context.Background(), 20, "magia", "nonsense")
	if len(replies) != 1 || replies[0] != "❌ Magia não encontrada." {
		t.Fatalf("unexpected replies: %#v", replies)
	}
}

func TestHandleCommandSpellMissingArgument(t *testing.T) {
	f := newFixture()

	replies := f.router.HandleCommand(context.Background(), 20, "magia", "")
	if len(replies) != 1 || replies[0] != "❌ Use: /magia <nome da magia>" {
		t.Fatalf("unexpected replies: %#v", replies)
	}
	if len(f.spells.calls) != 0 {
		t.Fatal("resolver must not be called without an argument")
	}
}

func TestHandleCommandMonster(t *testing.T) {
	f := newFixture()

	replies := f.router.HandleCommand(context.Background(), 21, "monstro", "goblin")
	if len(replies) != 1 || replies[0] != "monster reply" {
		t.Fatalf("unexpected replies: %#v", replies)
	}

	f.monsters.err = resolve.ErrNotFound
	replies = f.router.HandleCommand(context.Background(), 21, "monstro", "nonsense")
	if len(replies) != 1 || replies[0] != "❌ Monstro não encontrado." {
		t.Fatalf("unexpected replies: %#v", replies)
	}
}

var rollReply = regexp.MustCompile(`^🎲 Rolagem: 2d6\+3\n👉 \[(\d+), (\d+)\] \+3\n✨ Total = \*(\d+)\*$`)

func TestHandleCommandRoll(t *testing.T) {
	f := newFixture()

	replies := f.router.HandleCommand(context.Background(), 22, "rolar", "2d6+3")
	if len(replies) != 1 {
		t.Fatalf("unexpected replies: %#v", replies)
	}
	m := rollReply.FindStringSubmatch(replies[0])
	if m == nil {
		t.Fatalf("reply does not match the roll format: %q", replies[0])
	}

	first, _ := strconv.Atoi(m[1])
	second, _ := strconv.Atoi(m[2])
	total, _ := strconv.Atoi(m[3])
	for _, v := range []int{first, second} {
		if v < 1 || v > 6 {
			t.Fatalf("die value out of range: %d", v)
		}
	}
	if total != first+second+3 {
		t.Fatalf("total %d does not match rolls %d and %d plus modifier", total, first, second)
	}
}

func TestHandleCommandRollInvalidNotation(t *testing.T) {
	f := newFixture()

	replies := f.router.HandleCommand(context.Background(), 22, "rolar", "banana")
	if len(replies) != 1 || replies[0] != "❌ Notação inválida. Ex: 2d6+3" {
		t.Fatalf("unexpected replies: %#v", replies)
	}

	replies = f.router.HandleCommand(context.Background(), 22, "rolar", "")
	if len(replies) != 1 || !strings.HasPrefix(replies[0], "❌ Use: /rolar") {
		t.Fatalf("unexpected replies: %#v", replies)
	}
}

func TestHandleCommandSheetLifecycle(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	replies := f.router.HandleCommand(ctx, 23, "ficha", "")
	if len(replies) != 1 || replies[0] != "❌ Você não tem uma ficha. Use /criarficha <nome>." {
		t.Fatalf("unexpected replies: %#v", replies)
	}

	replies = f.router.HandleCommand(ctx, 23, "criarficha", "Aria")
	if len(replies) != 1 || replies[0] != "✅ Ficha criada para *Aria* com 100 PV." {
		t.Fatalf("unexpected replies: %#v", replies)
	}

	f.router.HandleCommand(ctx, 23, "additem", "espada longa")

	replies = f.router.HandleCommand(ctx, 23, "ficha", "")
	want := "📜 *Ficha de Aria*\n❤️ PV: 100\n🎒 Inventário: espada longa"
	if len(replies) != 1 || replies[0] != want {
		t.Fatalf("unexpected replies: %#v", replies)
	}
}

func TestHandleCommandAddItemRequiresSheetFirst(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	// Even a bare /additem reports the missing sheet, not the missing item.
	replies := f.router.HandleCommand(ctx, 24, "additem", "")
	if len(replies) != 1 || replies[0] != "❌ Crie uma ficha primeiro com /criarficha <nome>." {
		t.Fatalf("unexpected replies: %#v", replies)
	}

	f.router.HandleCommand(ctx, 24, "criarficha", "Borin")
	replies = f.router.HandleCommand(ctx, 24, "additem", "")
	if len(replies) != 1 || replies[0] != "❌ Use: /additem <item>" {
		t.Fatalf("unexpected replies: %#v", replies)
	}
}

func TestHandleCommandDamageAndHeal(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.router.HandleCommand(ctx, 25, "criarficha", "Aria")

	replies := f.router.HandleCommand(ctx, 25, "dano", "30")
	if len(replies) != 1 || replies[0] != "💔 Aria recebeu 30 de dano. PV atual: 70" {
		t.Fatalf("unexpected replies: %#v", replies)
	}

	replies = f.router.HandleCommand(ctx, 25, "cura", "15")
	if len(replies) != 1 || replies[0] != "💚 Aria recuperou 15 PV. PV atual: 85" {
		t.Fatalf("unexpected replies: %#v", replies)
	}

	replies = f.router.HandleCommand(ctx, 25, "dano", "abc")
	if len(replies) != 1 || replies[0] != "❌ Use: /dano <valor>" {
		t.Fatalf("unexpected replies: %#v", replies)
	}

	replies = f.router.HandleCommand(ctx, 26, "dano", "10")
	if len(replies) != 1 || replies[0] != "❌ Você não tem uma ficha. Use /criarficha <nome>." {
		t.Fatalf("unexpected replies: %#v", replies)
	}
}

func TestHandleCommandNarrate(t *testing.T) {
	f := newFixture()

	replies := f.router.HandleCommand(context.Background(), 27, "narrar", "A porta range ao abrir.")
	if len(replies) != 1 || replies[0] != "🎭 *NARRAÇÃO*\nA porta range ao abrir." {
		t.Fatalf("unexpected replies: %#v", replies)
	}
}

func TestHandleCommandGameHelp(t *testing.T) {
	f := newFixture()

	replies := f.router.HandleCommand(context.Background(), 28, "ajuda", "")
	if len(replies) != 1 || !strings.Contains(replies[0], "/criarficha") || !strings.Contains(replies[0], "/rolar") {
		t.Fatalf("unexpected replies: %#v", replies)
	}
}
