package intent

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/dmoura/edubot/pkg/dice"
	"github.com/dmoura/edubot/pkg/textsplit"
)

// Fixed replies of the game commands. Unlike the lookup commands these
// answer usage hints on missing arguments, so a player always gets feedback.
const (
	msgSpellNotFound   = "❌ Magia não encontrada."
	msgMonsterNotFound = "❌ Monstro não encontrado."
	msgBadNotation     = "❌ Notação inválida. Ex: 2d6+3"
	msgNoSheet         = "❌ Você não tem uma ficha. Use /criarficha <nome>."
)

const gameHelpText = "📖 *RPG – Ajuda*\n\n" +
	"📜 Ficha:\n" +
	"/criarficha <nome> → Cria sua ficha\n" +
	"/ficha → Mostra sua ficha atual\n" +
	"/additem <item> → Adiciona item ao inventário\n\n" +
	"🎲 Rolagens:\n" +
	"/rolar <notação> → Rola dados (ex: 1d20+5)\n\n" +
	"✨ Magias e Monstros:\n" +
	"/magia <nome> → Consulta magia\n" +
	"/monstro <nome> → Consulta monstro\n\n" +
	"❤️ PV:\n" +
	"/dano <valor> → Aplica dano\n" +
	"/cura <valor> → Recupera PV\n\n" +
	"🎭 Narração:\n" +
	"/narrar <texto> → Narra eventos"

// handleGameCommand covers the tabletop side of the bot: character sheets,
// dice rolls, spell and monster lookups, and narration.
func (r *Router) handleGameCommand(ctx context.Context, userID int64, name, args string) []string {
	switch name {
	case "ajuda":
		return textsplit.Split(gameHelpText, r.limit)
	case "rolar":
		return r.rollDice(args)
	case "magia":
		if args == "" {
			return r.reply("❌ Use: /magia <nome da magia>")
		}
		reply, err := r.resolvers.Spells.Resolve(ctx, args)
		return r.fragments(reply, err, msgSpellNotFound)
	case "monstro":
		if args == "" {
			return r.reply("❌ Use: /monstro <nome do monstro>")
		}
		reply, err := r.resolvers.Monsters.Resolve(ctx, args)
		return r.fragments(reply, err, msgMonsterNotFound)
	case "criarficha":
		if args == "" {
			return r.reply("❌ Use: /criarficha <nome>")
		}
		created := r.sheets.Create(userID, args)
		return r.reply(fmt.Sprintf("✅ Ficha criada para *%s* com %d PV.", created.Name, created.HP))
	case "ficha":
		current, ok := r.sheets.Get(userID)
		if !ok {
			return r.reply(msgNoSheet)
		}
		inventory := "vazio"
		if len(current.Inventory) > 0 {
			inventory = strings.Join(current.Inventory, ", ")
		}
		return r.reply(fmt.Sprintf("📜 *Ficha de %s*\n❤️ PV: %d\n🎒 Inventário: %s",
			current.Name, current.HP, inventory))
	case "additem":
		// The sheet check comes first: without one, even a bare /additem
		// points the player at /criarficha.
		if _, ok := r.sheets.Get(userID); !ok {
			return r.reply("❌ Crie uma ficha primeiro com /criarficha <nome>.")
		}
		if args == "" {
			return r.reply("❌ Use: /additem <item>")
		}
		r.sheets.AddItem(userID, args)
		return r.reply(fmt.Sprintf("🎒 Item *%s* adicionado ao inventário.", args))
	case "dano":
		if _, ok := r.sheets.Get(userID); !ok {
			return r.reply(msgNoSheet)
		}
		amount := parseAmount(args)
		if amount == 0 {
			return r.reply("❌ Use: /dano <valor>")
		}
		updated, _ := r.sheets.Damage(userID, amount)
		return r.reply(fmt.Sprintf("💔 %s recebeu %d de dano. PV atual: %d", updated.Name, amount, updated.HP))
	case "cura":
		if _, ok := r.sheets.Get(userID); !ok {
			return r.reply(msgNoSheet)
		}
		amount := parseAmount(args)
		if amount == 0 {
			return r.reply("❌ Use: /cura <valor>")
		}
		updated, _ := r.sheets.Heal(userID, amount)
		return r.reply(fmt.Sprintf("💚 %s recuperou %d PV. PV atual: %d", updated.Name, amount, updated.HP))
	case "narrar":
		if args == "" {
			return r.reply("❌ Use: /narrar <texto>")
		}
		return r.reply("🎭 *NARRAÇÃO*\n" + args)
	}
	return nil
}

// rollDice parses the first token of args as NdM+K notation and rolls it.
func (r *Router) rollDice(args string) []string {
	fields := strings.Fields(args)
	if len(fields) == 0 {
		return r.reply("❌ Use: /rolar <notação>, ex: /rolar 1d20+5")
	}

	roll, err := dice.Parse(fields[0])
	if err != nil {
		return r.reply(msgBadNotation)
	}

	rolls, total := roll.Throw(rand.IntN)
	parts := make([]string, len(rolls))
	for i, v := range rolls {
		parts[i] = strconv.Itoa(v)
	}
	modifier := ""
	if roll.Modifier > 0 {
		modifier = fmt.Sprintf(" +%d", roll.Modifier)
	} else if roll.Modifier < 0 {
		modifier = fmt.Sprintf(" %d", roll.Modifier)
	}
	return r.reply(fmt.Sprintf("🎲 Rolagem: %s\n👉 [%s]%s\n✨ Total = *%d*",
		fields[0], strings.Join(parts, ", "), modifier, total))
}

func (r *Router) reply(text string) []string {
	return textsplit.Split(text, r.limit)
}

// parseAmount reads the first token of args as an integer. Anything
// unparseable counts as zero, which the callers treat as a usage error.
func parseAmount(args string) int {
	fields := strings.Fields(args)
	if len(fields) == 0 {
		return 0
	}
	amount, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0
	}
	return amount
}
