package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"slices"
	"strconv"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"tmj-platform/internal/assessment"
	"tmj-platform/internal/audience"
	"tmj-platform/internal/browse"
	"tmj-platform/internal/config"
	"tmj-platform/internal/contact"
	"tmj-platform/internal/content"
	"tmj-platform/internal/platform/kvstore"
	"tmj-platform/internal/platform/logging"
	"tmj-platform/internal/platform/postgres"
	"tmj-platform/internal/platform/respond"
	"tmj-platform/internal/platform/telegram"
	"tmj-platform/internal/report"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API (default)",
	RunE:  runServe,
}

type storage struct {
	prefs    kvstore.Store
	contacts contact.Repository
	db       *sql.DB
}

func (s *storage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func openStorage(ctx context.Context, cfg config.DatabaseConfig, logger *zap.Logger) (*storage, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		db, err := postgres.Open(ctx, cfg.URL, cfg.ConnectAttempts, cfg.ConnectDelay, logger)
		if err != nil {
			return nil, err
		}
		if err := postgres.Migrate(cfg.URL, cfg.MigrationsPath); err != nil {
			_ = db.Close()
			return nil, err
		}
		logger.Info("connected to postgres")
		return &storage{prefs: kvstore.NewPostgres(db), contacts: contact.NewRepository(db), db: db}, nil

	case config.DriverSQLite:
		db, err := sql.Open("sqlite", cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite: %w", err)
		}
		prefs, err := kvstore.NewSQLite(ctx, db)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		logger.Info("using sqlite preference store", zap.String("path", cfg.SQLitePath))
		return &storage{prefs: prefs, contacts: contact.NewMemoryRepository(), db: db}, nil

	default:
		logger.Warn("no database configured, state is kept in memory")
		return &storage{prefs: kvstore.NewMemory(), contacts: contact.NewMemoryRepository()}, nil
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := openStorage(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	var notifier contact.Notifier
	tg := telegram.NewClient(cfg.Telegram.Token, cfg.Telegram.BaseURL)
	if tg.Configured() && cfg.Telegram.ChatID != 0 {
		notifier = tg
	} else {
		logger.Warn("telegram is not configured, contact requests will not be forwarded")
	}

	browseMetrics := browse.NewMetrics()
	audienceChanges := audience.ChangesCounter()
	submissions := contact.SubmissionsCounter()
	maxBody := cfg.Server.MaxBodyBytes

	browseHandler := browse.NewHandler(
		browse.NewService(logger, browseMetrics),
		report.NewService(cfg.Report.FontPaths, logger),
		browseMetrics, logger, maxBody,
	)
	audienceHandler := audience.NewHandler(
		audience.NewService(store.prefs, logger, func(m audience.Mode) {
			audienceChanges.WithLabelValues(string(m)).Inc()
		}),
		logger, maxBody,
	)
	contactHandler := contact.NewHandler(
		contact.NewService(store.contacts, notifier, cfg.Telegram.ChatID, logger, func(a contact.Audience) {
			submissions.WithLabelValues(string(a)).Inc()
		}),
		logger, maxBody,
	)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logging.Middleware(logger))
	r.Use(middleware.Recoverer)
	r.Use(cors(cfg.Server.CORSOrigins))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respond.JSON(w, http.StatusOK, map[string]string{"status": "ok", "version": version})
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		browse.RegisterRoutes(r, browseHandler)
		assessment.RegisterRoutes(r, assessment.NewHandler(logger, maxBody))
		audience.RegisterRoutes(r, audienceHandler)
		contact.RegisterRoutes(r, contactHandler)
		content.RegisterRoutes(r, content.NewHandler())
	})

	srv := &http.Server{
		Addr:         ":" + strconv.Itoa(cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", zap.Int("port", cfg.Server.Port), zap.String("version", version))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

// cors allows the listed origins; "*" allows any.
func cors(origins []string) func(http.Handler) http.Handler {
	allowAll := slices.Contains(origins, "*")
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			switch {
			case allowAll:
				w.Header().Set("Access-Control-Allow-Origin", "*")
			case origin != "" && slices.Contains(origins, origin):
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Add("Vary", "Origin")
			}
			w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT")
			w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding, X-Request-Id")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
