// Package intent classifies inbound chat messages, keeps the per-user topic
// session fresh, and dispatches to the content resolvers.
package intent

import (
	"context"
	"strings"

	"github.com/dmoura/edubot/internal/service/session"
	"github.com/dmoura/edubot/internal/service/sheet"
	"github.com/dmoura/edubot/pkg/textsplit"
)

// Action is what a matched message asks the bot to do.
type Action int

const (
	ActionNone Action = iota
	ActionExplain
	ActionLocate
)

// TriggerRule binds a fixed prefix phrase to an action. The table below is
// static configuration, not user data.
type TriggerRule struct {
	Phrase string
	Action Action
}

// triggers is ordered: the first phrase a message starts with wins, so
// table order is a meaningful tie-break.
var triggers = []TriggerRule{
	{"o que é", ActionExplain},
	{"explique", ActionExplain},
	{"defina", ActionExplain},
	{"what is", ActionExplain},
	{"explain", ActionExplain},
	{"qué es", ActionExplain},
	{"concept of", ActionExplain},
	{"onde fica", ActionLocate},
	{"where is", ActionLocate},
}

// Fixed user-facing outcomes. The resolvers never surface transport detail,
// so one message per resolver is all there is.
const (
	msgContentNotFound    = "❌ Conteúdo não encontrado."
	msgDefinitionNotFound = "❌ Definição não encontrada."
	msgPlaceNotFound      = "❌ Local não encontrado."
)

const helpText = "🎓 *EduBot Universal*\n\n" +
	"Pergunte naturalmente em qualquer idioma:\n" +
	"• o que é fotossíntese\n" +
	"• explain gravity\n" +
	"• ¿qué es la célula?\n" +
	"• onde fica japão\n\n" +
	"Comandos opcionais:\n" +
	"/explain tema\n" +
	"/def palavra\n" +
	"/geo lugar\n\n" +
	"Comandos de RPG: /ajuda"

// Detector yields a language hint for a message. It must not fail.
type Detector interface {
	Detect(text string) string
}

// TopicResolver resolves a topic with a language hint (encyclopedia).
type TopicResolver interface {
	Resolve(ctx context.Context, topic, lang string) (string, error)
}

// TermResolver resolves a single term (dictionary word, place query, spell
// or monster name).
type TermResolver interface {
	Resolve(ctx context.Context, term string) (string, error)
}

// Resolvers groups the content resolvers the router dispatches to.
type Resolvers struct {
	Encyclopedia TopicResolver
	Dictionary   TermResolver
	Geocoder     TermResolver
	Spells       TermResolver
	Monsters     TermResolver
}

// Router is the intent-routing front of the pipeline. Each inbound message
// is an independent unit of work; the session and sheet stores are the only
// shared state the router touches.
type Router struct {
	sessions  *session.Store
	sheets    *sheet.Store
	detector  Detector
	resolvers Resolvers
	limit     int
}

// NewRouter wires the router to its collaborators. limit bounds outbound
// fragment size; non-positive values fall back to textsplit.DefaultLimit.
func NewRouter(sessions *session.Store, sheets *sheet.Store, detector Detector, resolvers Resolvers, limit int) *Router {
	if limit <= 0 {
		limit = textsplit.DefaultLimit
	}
	return &Router{
		sessions:  sessions,
		sheets:    sheets,
		detector:  detector,
		resolvers: resolvers,
		limit:     limit,
	}
}

// Classify matches text against the trigger table and extracts the topic.
// The message is split into at most 3 whitespace tokens and the topic is
// everything after the first two; shorter messages yield the remainder
// after the trigger phrase, which may be empty. The 3-token split truncates
// long trigger phrases inconsistently: a two-word trigger leaves its last
// word glued to the topic. Known quirk, kept as observed behavior.
func Classify(text string) (Action, string) {
	lowered := strings.ToLower(strings.TrimSpace(text))
	for _, rule := range triggers {
		if !strings.HasPrefix(lowered, rule.Phrase) {
			continue
		}
		parts := strings.SplitN(lowered, " ", 3)
		if len(parts) == 3 {
			return rule.Action, parts[2]
		}
		return rule.Action, strings.TrimSpace(strings.TrimPrefix(lowered, rule.Phrase))
	}
	return ActionNone, ""
}

// HandleMessage processes one free-text message from a user and returns the
// ordered reply fragments. A nil return means no reply: unmatched text and
// empty topics are silent no-ops.
func (r *Router) HandleMessage(ctx context.Context, userID int64, text string) []string {
	r.sessions.EvictIfStale(userID)

	action, topic := Classify(text)
	if action == ActionNone || topic == "" {
		return nil
	}

	// Any qualifying message refreshes the session, stale or not.
	r.sessions.Update(userID, topic)

	switch action {
	case ActionExplain:
		lang := r.detector.Detect(strings.ToLower(strings.TrimSpace(text)))
		reply, err := r.resolvers.Encyclopedia.Resolve(ctx, topic, lang)
		return r.fragments(reply, err, msgContentNotFound)
	case ActionLocate:
		reply, err := r.resolvers.Geocoder.Resolve(ctx, topic)
		return r.fragments(reply, err, msgPlaceNotFound)
	}
	return nil
}

// HandleCommand processes an explicit slash command, bypassing trigger
// matching. The lookup commands treat missing arguments as silent no-ops;
// the game commands answer with usage hints instead. Unknown commands
// return nil.
func (r *Router) HandleCommand(ctx context.Context, userID int64, name, args string) []string {
	args = strings.TrimSpace(args)

	switch name {
	case "start", "help":
		return textsplit.Split(helpText, r.limit)
	case "explain":
		if args == "" {
			return nil
		}
		// The argument keeps its casing; some encyclopedia titles are
		// case-sensitive.
		lang := r.detector.Detect(args)
		reply, err := r.resolvers.Encyclopedia.Resolve(ctx, args, lang)
		return r.fragments(reply, err, msgContentNotFound)
	case "def":
		fields := strings.Fields(args)
		if len(fields) == 0 {
			return nil
		}
		reply, err := r.resolvers.Dictionary.Resolve(ctx, fields[0])
		return r.fragments(reply, err, msgDefinitionNotFound)
	case "geo":
		if args == "" {
			return nil
		}
		reply, err := r.resolvers.Geocoder.Resolve(ctx, args)
		return r.fragments(reply, err, msgPlaceNotFound)
	}
	return r.handleGameCommand(ctx, userID, name, args)
}

func (r *Router) fragments(reply string, err error, notFound string) []string {
	if err != nil {
		reply = notFound
	}
	return textsplit.Split(reply, r.limit)
}
