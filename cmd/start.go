package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"collection-tracker/core/config"
	"collection-tracker/core/database"
	"collection-tracker/core/loader"
	"collection-tracker/core/logger"
	"collection-tracker/core/middleware/auth"
	"collection-tracker/core/middleware/rayid"
	"collection-tracker/core/storage"

	"collection-tracker/feature/account"
	"collection-tracker/feature/collection"
	"collection-tracker/feature/exchange"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "collection-tracker/docs/swagger"
)

// @title Collection Tracker API
// @version 1.0
// @description API for per-set item collections and exchange matching.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the collection tracker server",
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

		// 4. Initialize Storage (avatars)
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}

		// 5. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We log our own startup message
			BodyLimit:             cfg.Server.BodyLimitBytes(),
		})

		// 6. Feature Registration
		mgr := loader.NewManager()
		mgr.Register(account.NewFeature(db, store, cfg.Storage.Bucket, cfg.Auth, logg))
		mgr.Register(collection.NewFeature(db, logg))
		mgr.Register(exchange.NewFeature(db, logg))

		// Middleware Registration
		// RayID must be first to trace everything
		app.Use(rayid.New())

		// Request logging with Zap + RayID
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

		// Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// Auth protects everything except sign-in and docs
		app.Use(auth.New(cfg.Auth, "/auth", "/swagger"))

		// 7. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 8. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 9. Graceful Shutdown
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
