package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "video-clipper/docs"

	"video-clipper/internal/delivery/http/routers"
	"video-clipper/internal/infrastructure/media"
	"video-clipper/pkg/config"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/joho/godotenv"
)

// @title        Video to Audio Converter API
// @version      1.0.0
// @description  Converts uploaded videos to MP3 or cuts them into clips bundled as ZIP.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}
	cfg := config.LoadConfig()

	log.Println("Starting Video to Audio Converter API...")
	if err := cfg.EnsureScratchDir(); err != nil {
		log.Fatalf("Could not create scratch dir %s: %v", cfg.Scratch.Dir, err)
	}
	log.Printf("Scratch dir: %s", cfg.Scratch.Dir)

	engine := media.NewFFmpegEngine(cfg.Engine)

	// Processing fails without ffmpeg on PATH; say so loudly at startup.
	checkCtx, cancelCheck := context.WithTimeout(context.Background(), 5*time.Second)
	if version, err := engine.Version(checkCtx); err != nil {
		log.Printf("FFmpeg check failed - video processing will fail: %v", err)
	} else {
		log.Printf("FFmpeg is installed: %s", version)
	}
	cancelCheck()

	app := fiber.New(fiber.Config{
		BodyLimit: int(cfg.Scratch.MaxSize),
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	routers.SetupMediaRoutes(app, cfg, engine)

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Server starting on %s", addr)

	// Graceful shutdown
	go func() {
		if err := app.Listen(addr); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Print("Shutdown signal received, stopping server...")

	ctxShut, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctxShut); err != nil {
		log.Fatalf("Server did not shut down cleanly: %v", err)
	}
	log.Println("Server stopped")
}
