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

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"dotcomponents/internal/api"
	"dotcomponents/internal/config"
	"dotcomponents/internal/dotcomponents"
	"dotcomponents/internal/navigation"
	"dotcomponents/internal/service"
	"dotcomponents/internal/storage/postgres"
	"dotcomponents/internal/support"
	"dotcomponents/internal/switches"
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

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	snapshot, err := switches.Load(cfg.Switches.Path)
	if err != nil {
		logger.Error("failed to load switches", "error", err)
		os.Exit(1)
	}

	// Reject switch-name collisions at startup instead of on the first
	// request that hits them.
	if _, err := dotcomponents.NormalizeSwitches(snapshot); err != nil {
		logger.Error("defective switch registry", "error", err)
		os.Exit(1)
	}

	nav, err := navigation.Load(cfg.Navigation.Path, cfg.Site.SiteURL)
	if err != nil {
		logger.Error("failed to load navigation", "error", err)
		os.Exit(1)
	}

	assembler := dotcomponents.NewAssembler(
		nav,
		support.NewBuilder(cfg.Site.SupportURL),
		snapshot,
		dotcomponents.Settings{
			AjaxURL:    cfg.Site.AjaxURL,
			SiteURL:    cfg.Site.SiteURL,
			BeaconURL:  cfg.Site.BeaconURL,
			Properties: cfg.Properties,
		},
		nil,
	)

	pages := service.NewPageService(postgres.NewArticleStore(db), assembler, logger)
	handlers := api.NewHandlers(pages, logger)

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      api.Router(handlers),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("shutdown error", "error", err)
		}
	}()

	logger.Info("starting render-data server", "addr", cfg.Server.Addr)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
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
