package cmd

import (
	"context"
	"log"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"customer-service/core/loader"
	"customer-service/core/logger"
	"customer-service/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "customer-service/docs/swagger"
)

// @title Customer Service API
// @version 1.0
// @description CRUD API for customers with partial updates.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the customer server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		d, err := bootstrap(true)
		if err != nil {
			log.Fatalf("Failed to start: %v", err)
		}
		logg := d.logger
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		mgr := loader.NewManager()
		mgr.Register(d.customers)

		exports, err := d.exportFeature()
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}
		mgr.Register(exports)

		// RayID must come first so every later log line carries it.
		app.Use(rayid.New())
		app.Use(recover.New())

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

		app.Get("/swagger/*", swagger.HandlerDefault)

		loaded, err := mgr.LoadAll(app)
		if err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}
		logg.Info("Features loaded", zap.Strings("features", loaded))

		if d.cfg.Server.SeedOnStart {
			r := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
			if _, err := d.customers.Service().Seed(context.Background(), 1, r); err != nil {
				logg.Warn("Startup seed failed", zap.Error(err))
			}
		}

		go func() {
			logg.Info("Starting server", zap.String("port", d.cfg.Server.Port))
			if err := app.Listen(d.cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		if err := app.ShutdownWithTimeout(d.cfg.Server.ShutdownTimeout()); err != nil {
			logg.Error("Graceful shutdown failed", zap.Error(err))
		}
		if sqlDB, err := d.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
