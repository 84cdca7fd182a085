package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mindhaven/backend/internal/bus"
	"github.com/mindhaven/backend/internal/config"
	"github.com/mindhaven/backend/internal/dialogue"
	"github.com/mindhaven/backend/internal/handler"
	contentModel "github.com/mindhaven/backend/internal/model/content"
	"github.com/mindhaven/backend/internal/model/motion"
	"github.com/mindhaven/backend/internal/model/script"
	"github.com/mindhaven/backend/internal/model/theme"
	"github.com/mindhaven/backend/internal/service/conversation"
	"github.com/mindhaven/backend/internal/service/experiment"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("no .env file loaded, continuing with system environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	setupLogging(cfg)

	convSvc := conversation.NewService(script.Seed(), conversation.Config{
		Engine: dialogue.Options{
			ResponseDelay: cfg.ResponseDelay,
			OpeningDelay:  cfg.OpeningDelay,
		},
		IdleTTL: cfg.SessionTTL,
	})

	janitor, err := conversation.NewJanitor(convSvc, cfg.JanitorSchedule)
	if err != nil {
		log.Fatal().Err(err).Str("schedule", cfg.JanitorSchedule).Msg("invalid janitor schedule")
	}
	janitor.Start()
	defer janitor.Stop()

	router := handler.NewRouter(handler.Deps{
		Conversations:  convSvc,
		Pages:          contentModel.NewMemoryStore(contentModel.Seed()),
		Themes:         theme.NewMemoryStore(theme.Seed()),
		Motions:        motion.NewCatalog(motion.Seed()),
		Experiments:    experiment.NewService(experiment.Seed()),
		Bus:            bus.New(),
		AllowedOrigins: cfg.AllowedOrigins,
	})

	startServer(ctx, cfg.Addr(), router)
}

func setupLogging(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

func startServer(ctx context.Context, addr string, router http.Handler) {
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Info().Str("addr", addr).Msg("MindHaven backend listening")
	if err := runServer(ctx, srv); err != nil {
		log.Fatal().Err(err).Msg("server error")
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
