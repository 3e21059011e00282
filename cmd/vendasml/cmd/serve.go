package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/setebit/vendasml/internal/api/handlers"
	"github.com/setebit/vendasml/internal/api/middleware"
	"github.com/setebit/vendasml/internal/config"
	"github.com/setebit/vendasml/internal/mercadolivre"
	"github.com/setebit/vendasml/internal/service"
	"github.com/setebit/vendasml/internal/store"
	"github.com/setebit/vendasml/internal/token"
	"github.com/setebit/vendasml/pkg/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server and token refresher",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	startupLog := log.NewWithOptions(os.Stderr, log.Options{
		Level: parseLogLevel(cfg.Logging.Level),
	})
	slogger := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	st, err := store.NewPostgresStore(ctx, cfg.Database.DSN(),
		store.WithPoolSize(cfg.Database.PoolSize))
	cancel()
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer st.Close()

	migrateCtx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	err = st.Migrate(migrateCtx)
	cancel()
	if err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	ml := cfg.MercadoLivre
	limiter := mercadolivre.NewRateLimiter(
		ml.RateLimit.PerSecond,
		ml.RateLimit.Burst,
		ml.RateLimit.DailyLimit,
	)
	oauth := mercadolivre.NewOAuthClient(ml.BaseURL, ml.ClientID, ml.ClientSecret, ml.RedirectURI)
	items := mercadolivre.NewItemsClient(ml.BaseURL, mercadolivre.WithItemsRateLimiter(limiter))
	categories := mercadolivre.NewCategoriesClient(
		ml.BaseURL,
		mercadolivre.WithCategoriesRateLimiter(limiter),
	)

	manager := token.NewManager(st, oauth, slogger,
		token.WithRefreshThreshold(ml.RefreshThreshold))

	var refresher *token.Refresher
	if cfg.Refresher.Enabled {
		refresher, err = token.NewRefresher(
			manager, st, cfg.Refresher.Interval, ml.RefreshThreshold, slogger,
		)
		if err != nil {
			return fmt.Errorf("creating token refresher: %w", err)
		}
		refresher.Start()
	}

	svc := service.New(
		manager, items, categories,
		ml.AuthURL, ml.ClientID, ml.RedirectURI,
		slogger,
	)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(middleware.Recovery(slogger))
	e.Use(middleware.RequestLog(slogger))
	e.Use(middleware.Metrics())

	health := handlers.NewHealthHandler(st)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)

	// Prometheus metrics.
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := humaecho.New(e, huma.DefaultConfig("vendasml API", Version))
	handlers.RegisterAuthRoutes(api, handlers.NewAuthHandler(svc))
	handlers.RegisterProductRoutes(api, handlers.NewProductsHandler(svc))
	handlers.RegisterCategoryRoutes(api, handlers.NewCategoriesHandler(svc))

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	startupLog.Info("starting server", "addr", addr)

	// Start server in a goroutine.
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			startupLog.Error("server error", "err", err)
		}
	}()

	// Wait for interrupt signal.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	startupLog.Info("shutting down server")

	if refresher != nil {
		// Wait for any in-flight refresh sweep to finish.
		<-refresher.Stop().Done()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	startupLog.Info("server stopped")
	return nil
}

func parseLogLevel(level string) log.Level {
	switch level {
	case "debug":
		return log.DebugLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}
