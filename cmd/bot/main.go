package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/dmoura/edubot/internal/config"
	"github.com/dmoura/edubot/internal/handler"
	"github.com/dmoura/edubot/internal/language"
	"github.com/dmoura/edubot/internal/provider/dictionary"
	"github.com/dmoura/edubot/internal/provider/dnd5e"
	"github.com/dmoura/edubot/internal/provider/geocode"
	"github.com/dmoura/edubot/internal/provider/wikipedia"
	"github.com/dmoura/edubot/internal/service/intent"
	"github.com/dmoura/edubot/internal/service/resolve"
	"github.com/dmoura/edubot/internal/service/session"
	"github.com/dmoura/edubot/internal/service/sheet"
	"github.com/dmoura/edubot/internal/transport/telegram"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// One client per provider, all bounded by the same timeout.
	providerHTTP := &http.Client{Timeout: cfg.Provider.Timeout}

	gameAPI := dnd5e.NewClient(providerHTTP, cfg.Provider.DnD5eBaseURL)

	resolvers := intent.Resolvers{
		Encyclopedia: resolve.NewEncyclopedia(
			wikipedia.NewClient(providerHTTP, cfg.Provider.WikipediaBaseURL)),
		Dictionary: resolve.NewDictionary(
			dictionary.NewClient(providerHTTP, cfg.Provider.DictionaryBaseURL)),
		Geocoder: resolve.NewGeocoder(
			geocode.NewClient(providerHTTP, cfg.Provider.NominatimBaseURL, cfg.Provider.UserAgent)),
		Spells:   resolve.NewSpellBook(gameAPI),
		Monsters: resolve.NewBestiary(gameAPI),
	}

	sessions := session.NewStore(cfg.Chat.SessionTTL)
	sheets := sheet.NewStore()
	detector := language.NewDetector(cfg.Chat.DefaultLanguage)

	bot := intent.NewRouter(sessions, sheets, detector, resolvers, cfg.Chat.MessageLimit)

	if cfg.Telegram.Enabled() {
		api := telegram.NewClient(nil, cfg.Telegram.BaseURL, cfg.Telegram.Token)
		poller := telegram.NewPoller(api, bot, cfg.Telegram.PollTimeout)
		go poller.Run(ctx)
		log.Println("Telegram transport initialized successfully")
	} else {
		log.Println("BOT_TOKEN not configured, serving HTTP transport only")
	}

	router := handler.NewRouter(bot)
	startServer(ctx, cfg.Server, router)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("EduBot listening on %s", addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
