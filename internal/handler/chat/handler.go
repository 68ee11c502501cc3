package chat

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/dmoura/edubot/internal/service/intent"
	"github.com/dmoura/edubot/pkg/utils"
)

// Bot is the intent-routing pipeline behind the chat transports.
type Bot interface {
	HandleMessage(ctx context.Context, userID int64, text string) []string
	HandleCommand(ctx context.Context, userID int64, name, args string) []string
}

// Handler exposes the chat pipeline over HTTP: a synchronous REST endpoint
// and a WebSocket transport.
type Handler struct {
	bot      Bot
	upgrader websocket.Upgrader
}

// New creates the chat handler.
func New(bot Bot) *Handler {
	return &Handler{
		bot: bot,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// RegisterRoutes mounts the chat endpoints.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/messages", h.handleMessage)
	r.Get("/ws", h.handleWebSocket)
}

type messageRequest struct {
	UserID int64  `json:"userId"`
	Text   string `json:"text"`
}

type messageResponse struct {
	Replies []string `json:"replies"`
}

// handleMessage runs one message through the pipeline and returns all reply
// fragments at once. An empty replies list is a valid outcome: unmatched
// text is a silent no-op.
func (h *Handler) handleMessage(w http.ResponseWriter, r *http.Request) {
	var payload messageRequest

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if payload.UserID == 0 {
		utils.RespondError(w, http.StatusBadRequest, "userId is required")
		return
	}
	if strings.TrimSpace(payload.Text) == "" {
		utils.RespondError(w, http.StatusBadRequest, "text is required")
		return
	}

	replies := h.dispatch(r.Context(), payload.UserID, payload.Text)
	if replies == nil {
		replies = []string{}
	}
	utils.RespondJSON(w, http.StatusOK, messageResponse{Replies: replies})
}

// handleWebSocket upgrades the connection and treats every inbound frame as
// an independent unit of work, so one slow provider call never stalls the
// read loop. Reply fragments for a message are written back in order.
func (h *Handler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[ws] upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	connID := uuid.NewString()
	log.Printf("[ws] connection %s opened", connID)

	var writeMu sync.Mutex
	for {
		var msg messageRequest
		if err := conn.ReadJSON(&msg); err != nil {
			log.Printf("[ws] connection %s closed: %v", connID, err)
			return
		}
		if msg.UserID == 0 || strings.TrimSpace(msg.Text) == "" {
			continue
		}

		go func(msg messageRequest) {
			replies := h.dispatch(r.Context(), msg.UserID, msg.Text)

			writeMu.Lock()
			defer writeMu.Unlock()
			for _, fragment := range replies {
				reply := messageRequest{UserID: msg.UserID, Text: fragment}
				if err := conn.WriteJSON(reply); err != nil {
					log.Printf("[ws] connection %s write failed: %v", connID, err)
					return
				}
			}
		}(msg)
	}
}

// dispatch routes slash commands to the command path and everything else
// through trigger matching.
func (h *Handler) dispatch(ctx context.Context, userID int64, text string) []string {
	if name, args, ok := intent.ParseCommand(text); ok {
		return h.bot.HandleCommand(ctx, userID, name, args)
	}
	return h.bot.HandleMessage(ctx, userID, text)
}
