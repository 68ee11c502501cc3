package telegram

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/dmoura/edubot/internal/service/intent"
)

// Bot is the intent-routing pipeline the poller feeds.
type Bot interface {
	HandleMessage(ctx context.Context, userID int64, text string) []string
	HandleCommand(ctx context.Context, userID int64, name, args string) []string
}

// Poller runs the getUpdates loop and dispatches each update on its own
// goroutine, so a slow provider call for one user never delays another
// user's messages.
type Poller struct {
	api         *Client
	bot         Bot
	pollTimeout time.Duration
}

// NewPoller wires the poller to the API client and the pipeline.
func NewPoller(api *Client, bot Bot, pollTimeout time.Duration) *Poller {
	if pollTimeout <= 0 {
		pollTimeout = 30 * time.Second
	}
	return &Poller{api: api, bot: bot, pollTimeout: pollTimeout}
}

// Run blocks until ctx is canceled. Poll failures are logged and retried
// after a short pause; they never stop the loop.
func (p *Poller) Run(ctx context.Context) {
	log.Printf("[telegram] long-poll loop started")
	var offset int64

	for {
		updates, next, err := p.api.GetUpdates(ctx, offset, p.pollTimeout)
		if err != nil {
			if ctx.Err() != nil {
				log.Printf("[telegram] long-poll loop stopped")
				return
			}
			log.Printf("[telegram] getUpdates failed: %v", err)
			select {
			case <-ctx.Done():
				return
			case <-time.After(3 * time.Second):
			}
			continue
		}
		offset = next

		for _, update := range updates {
			go p.handleUpdate(ctx, update)
		}
	}
}

// handleUpdate processes one update to completion: classify, resolve, send
// every fragment in order. Failures affect only this update.
func (p *Poller) handleUpdate(ctx context.Context, update Update) {
	msg := update.Message
	if msg == nil || msg.Chat == nil || msg.From == nil || msg.From.IsBot {
		return
	}
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return
	}

	var replies []string
	if name, args, ok := intent.ParseCommand(text); ok {
		replies = p.bot.HandleCommand(ctx, msg.From.ID, name, args)
	} else {
		replies = p.bot.HandleMessage(ctx, msg.From.ID, text)
	}

	for _, fragment := range replies {
		if err := p.api.SendMessage(ctx, msg.Chat.ID, fragment); err != nil {
			log.Printf("[telegram] send to chat %d failed: %v", msg.Chat.ID, err)
			return
		}
	}
}
