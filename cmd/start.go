package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"figma-asset-downloader/core/config"
	"figma-asset-downloader/core/database"
	"figma-asset-downloader/core/loader"
	"figma-asset-downloader/core/logger"
	"figma-asset-downloader/core/middleware/auth"
	"figma-asset-downloader/core/middleware/rayid"
	"figma-asset-downloader/core/reconcile"
	"figma-asset-downloader/feature/history"
	"figma-asset-downloader/feature/manifest"
	"figma-asset-downloader/feature/optimize"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "figma-asset-downloader/docs/swagger"
)

// @title Figma Asset Downloader API
// @version 1.0
// @description API for validating exported Figma assets against manifests.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the HTTP server",
	Long:  `Starts the HTTP server exposing manifest checks and the download history.`,
	RunE:  runStart,
}

func init() {
	startCmd.Flags().String("port", "8080", "Port to listen on")
	RootCmd.AddCommand(startCmd)
}

func runStart(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd, map[string]string{"port": "server.port"})
	if err != nil {
		return err
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logg.Sync()
	zap.ReplaceGlobals(logg)

	app, err := newServer(cfg, openHistory(cmd.Context(), cfg.Database, logg), logg)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		logg.Info("Starting server", zap.String("addr", cfg.Server.Addr()))
		errCh <- app.Listen(cfg.Server.Addr())
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)

	select {
	case err := <-errCh:
		return fmt.Errorf("server stopped: %w", err)
	case <-sig:
		logg.Info("Shutting down server")
		return app.Shutdown()
	}
}

// openHistory connects the history database, or returns nil so the server
// runs without the history routes.
func openHistory(ctx context.Context, cfg database.Config, logg *zap.Logger) *gorm.DB {
	if !cfg.Enabled {
		return nil
	}
	db, err := database.Connect(cfg)
	if err != nil {
		logg.Warn("Optional database connection failed", zap.Error(err))
		return nil
	}
	if err := history.NewRepository(db).Migrate(ctx); err != nil {
		logg.Warn("Download history disabled", zap.Error(err))
		return nil
	}
	logg.Info("Connected to history database", zap.String("driver", cfg.Driver))
	return db
}

// newServer builds the Fiber app with middleware and every enabled feature.
func newServer(cfg *config.Config, db *gorm.DB, logg *zap.Logger) (*fiber.App, error) {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})

	app.Use(rayid.New())
	app.Use(requestLogger(logg))
	app.Get("/swagger/*", swagger.HandlerDefault)

	if cfg.Server.HasAuth() {
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))
	} else {
		logg.Warn("No API key configured, the API is unprotected")
	}

	cache := reconcile.NewListingCache(cfg.Server.CacheTTL())
	svc := manifest.NewService(logg, cache, optimize.New(cfg.Optimize, logg))

	mgr := loader.NewManager()
	mgr.Register(manifest.NewFeature(svc, cfg.Server.ManifestPath))
	mgr.Register(history.NewFeature(db, logg))
	if err := mgr.LoadAll(app); err != nil {
		return nil, err
	}
	return app, nil
}

func requestLogger(logg *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		l := logger.WithRayID(logg, c)
		l.Debug("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		)
		if err := c.Next(); err != nil {
			l.Error("Request error", zap.Error(err))
			return err
		}
		return nil
	}
}
