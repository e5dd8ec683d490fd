package cli

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"slideshowfx-live/internal/app"
	"slideshowfx-live/internal/config"
	"slideshowfx-live/internal/domain"
	"slideshowfx-live/internal/infra/memory"
	pgloader "slideshowfx-live/internal/infra/postgres"
	redisinfra "slideshowfx-live/internal/infra/redis"
	transport "slideshowfx-live/internal/transport/http"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

// NewStartCmd builds the CLI subcommand to start the live-session server.
func NewStartCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the live-session server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if cfg.Postgres.URL != "" {
		if err := runMigrationsWithConfig(ctx, cfg); err != nil {
			return err
		}
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}

	var pool *pgxpool.Pool
	if cfg.Postgres.URL != "" {
		pool, err = pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return err
		}
		defer pool.Close()
	}

	var loader memory.QuizLoader = memory.NewStaticQuizLoader(sampleQuizzes())
	if pool != nil {
		loader = pgloader.NewQuizLoader(pool)
	}
	libraryTTL := config.TTLDuration(cfg.Quiz.LibraryTTL, 10*time.Minute)
	library := memory.NewQuizLibrary(loader, libraryTTL)

	var submissions app.SubmissionStore = memory.NewSubmissionStore()
	if redisClient != nil {
		redisTTL := config.TTLDuration(cfg.Redis.TTL, 2*time.Hour)
		submissions = redisinfra.NewSubmissionStore(redisClient, redisTTL)
	}

	registry := transport.NewRegistry()
	dispatcher := app.NewDispatcher(registry)
	defer dispatcher.Close()

	chat := app.NewChatChannel(dispatcher)
	engine := app.NewQuizEngine(dispatcher, submissions)
	engine.SetResultListener(func(result domain.QuizResult) {
		log.Printf("quiz %d tally: %d correct / %d wrong", result.QuizID, result.Correct, result.Wrong)
	})
	gateway := app.NewGateway(chat, engine, library)
	_ = gateway // driven by the presenter UI when embedded in the desktop app

	wsHandler := transport.NewWSHandler(registry, chat, engine)
	answerHandler := transport.NewAnswerHandler(engine)

	server := &http.Server{
		Addr:         cfg.Server.Host + ":" + finalPort,
		Handler:      transport.NewRouter(wsHandler, answerHandler),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Printf("starting live-session server on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("failed to start server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Println("shutting down server...")
	case <-ctx.Done():
		log.Println("context canceled, shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// sampleQuizzes seeds the static library for standalone runs; the desktop
// app replaces this with quizzes parsed from the presentation.
func sampleQuizzes() map[int64]domain.Quiz {
	return map[int64]domain.Quiz{
		1: {
			ID:       1,
			Question: domain.Question{ID: 1, Text: "Which protocol carries the attendee chat?"},
			Answers: []domain.Answer{
				{ID: 1, Text: "WebSocket", Correct: true},
				{ID: 2, Text: "SMTP", Correct: false},
				{ID: 3, Text: "FTP", Correct: false},
			},
		},
	}
}
