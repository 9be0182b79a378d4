package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"golang.org/x/sync/errgroup"

	"shorts_feed/internal/auth"
	"shorts_feed/internal/config"
	"shorts_feed/internal/engagement"
	"shorts_feed/internal/feed"
	"shorts_feed/internal/handlers"
	"shorts_feed/internal/media"
	"shorts_feed/internal/publisher"
	"shorts_feed/internal/scheduler"
	"shorts_feed/internal/service"
	"shorts_feed/internal/source/market"
	"shorts_feed/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger = setupLogger(cfg.LogLevel)

	if err := run(cfg, logger); err != nil {
		logger.Error("shortsd stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := market.New(market.Config{
		BaseURL:        cfg.API.BaseURL,
		Timeout:        cfg.API.Timeout,
		MaxAttempts:    cfg.API.Retry.MaxAttempts,
		InitialBackoff: cfg.API.Retry.InitialBackoff,
		MaxBackoff:     cfg.API.Retry.MaxBackoff,
	}, nil, logger)

	session := auth.NewSession(client, logger)
	client.SetTokenSource(session)
	if cfg.Auth.Token != "" {
		if err := session.Login(ctx, cfg.Auth.Token); err != nil {
			logger.Warn("startup login failed, continuing anonymously", "error", err)
		}
	}

	likes := engagement.NewLikes(client, session, logger)
	players := media.NewLogPlayerFactory(logger)

	deps := feed.Deps{
		Pages:    client,
		Music:    client,
		Comments: client,
		Likes:    likes,
		Identity: session,
		Players:  players,
		Notifier: logNotifier{logger: logger},
	}

	var summaries *service.ImpressionService
	if cfg.Recorder.Enabled {
		db, err := sqlx.Connect("postgres", cfg.Database.DSN())
		if err != nil {
			return err
		}
		defer db.Close()
		logger.Info("connected to database")

		var pub service.Publisher
		if cfg.RabbitMQ.URL != "" {
			rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
				URL:        cfg.RabbitMQ.URL,
				Exchange:   cfg.RabbitMQ.Exchange,
				RoutingKey: cfg.RabbitMQ.RoutingKey,
				QueueName:  cfg.RabbitMQ.QueueName,
			}, logger)
			if err != nil {
				return err
			}
			defer rabbitMQ.Close()
			pub = rabbitMQ
		}

		summaries = service.NewImpressionService(
			postgres.NewImpressionStore(db),
			postgres.NewViewStateStore(db),
			postgres.NewTransactionManager(db),
			pub,
			logger,
		)
		deps.Sink = summaries
	}

	feedCfg := feed.DefaultConfig()
	feedCfg.PageSize = cfg.API.PageSize
	feedCfg.PrefetchThreshold = cfg.Feed.PrefetchThreshold
	feedCfg.MountRadius = *cfg.Feed.MountRadius
	feedCfg.AutoplayInterval = cfg.Feed.AutoplayInterval
	feedCfg.InitialItemID = cfg.Feed.InitialItemID
	feedCfg.ViewerID = cfg.Recorder.ViewerID

	container := feed.NewContainer(feedCfg, deps, logger)
	defer container.Close()
	container.Start(ctx)

	h := handlers.NewHandler(container, likes, session, logger).WithGestures(players)
	if summaries != nil {
		h = h.WithSummaries(summaries)
	}
	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           h.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	sched := scheduler.NewScheduler(container, cfg.Feed.TickInterval, logger)

	logger.Info("starting shorts feed",
		"addr", cfg.Server.Addr,
		"api", cfg.API.BaseURL,
		"recorder", cfg.Recorder.Enabled,
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := sched.Start(gctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// logNotifier surfaces user-facing notices in the service log.
type logNotifier struct {
	logger *slog.Logger
}

func (n logNotifier) Notify(message string) {
	n.logger.Warn("notice", "message", message)
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
