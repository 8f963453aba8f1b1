package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tcg-catalog/core/config"
	"tcg-catalog/core/database"
	"tcg-catalog/core/loader"
	"tcg-catalog/core/logger"
	"tcg-catalog/core/middleware/auth"
	"tcg-catalog/core/middleware/rayid"
	"tcg-catalog/core/storage"

	"tcg-catalog/feature/catalog"
	"tcg-catalog/feature/tcgdex"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "tcg-catalog/docs/swagger"
)

// @title TCG Catalog API
// @version 1.0
// @description API for synchronizing a trading card catalog with the TCGdex reference.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the catalog server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to Database
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Failed to connect to database", zap.Error(err))
		}
		if err := catalog.Migrate(db); err != nil {
			logg.Fatal("Failed to migrate catalog schema", zap.Error(err))
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := catalog.EnsureChannel(ctx, db, cfg.Catalog.DefaultChannel, cfg.Catalog.DefaultChannelName); err != nil {
			cancel()
			logg.Fatal("Failed to ensure default channel", zap.Error(err))
		}
		cancel()

		// 4. Initialize Storage (only when image mirroring is on)
		var images *catalog.ImageMirror
		if cfg.Catalog.MirrorImages {
			store, err := storage.NewClient(cfg.Storage)
			if err != nil {
				logg.Fatal("Failed to create storage client", zap.Error(err))
			}
			bctx, bcancel := context.WithTimeout(context.Background(), 30*time.Second)
			if err := storage.EnsureBucket(bctx, store, cfg.Storage); err != nil {
				bcancel()
				logg.Fatal("Failed to ensure media bucket", zap.Error(err))
			}
			bcancel()
			images = catalog.NewImageMirror(store, cfg.Storage.Bucket, logg)
		}

		// 5. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 6. Build the synchronization service
		source := tcgdex.NewClient(cfg.TCGdex, logg)
		service := catalog.NewService(source, catalog.NewStore(db), images, logg, cfg.Catalog)

		// 7. Initialize Feature Loader
		mgr := loader.NewManager(logg)

		// Register Features
		mgr.Register(catalog.NewFeature(service))
		mgr.Register(tcgdex.NewFeature(source, logg))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Custom to use Zap + RayID)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 2.5 Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 3. Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 8. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 9. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 10. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
