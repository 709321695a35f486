package routers

import (
	"log"

	"video-clipper/internal/delivery/http/handlers"
	"video-clipper/internal/domain/repositories"
	"video-clipper/internal/infrastructure/workspace"
	"video-clipper/internal/usecases"
	"video-clipper/pkg/config"

	"github.com/gofiber/fiber/v2"
	"github.com/robfig/cron/v3"
)

// SetupMediaRoutes wires the processing services and registers the API
// routes. The media engine is injected so tests can run against a fake.
func SetupMediaRoutes(app *fiber.App, cfg *config.Config, engine repositories.MediaEngine) {
	ws := workspace.NewManager(cfg.Scratch.Dir)

	convertService := usecases.NewConvertService(ws, engine)
	clipService := usecases.NewClipService(ws, engine)

	convertHandler := handlers.NewConvertHandler(convertService)
	clipHandler := handlers.NewClipHandler(clipService)
	systemHandler := handlers.NewSystemHandler()

	app.Post("/convert", convertHandler.Convert)
	app.Post("/clip", clipHandler.Clip)
	app.Get("/health", systemHandler.Health)
	app.Get("/", systemHandler.Root)

	// Orphan sweep every 10 minutes; requests clean up after themselves, this
	// only catches leftovers from crashes.
	cleanupUC := usecases.NewCleanupService(ws)
	c := cron.New(cron.WithSeconds())
	c.AddFunc("0 */10 * * * *", func() {
		if err := cleanupUC.SweepAged(cfg.Scratch.MaxAge); err != nil {
			log.Printf("Error sweeping aged scratch entries: %v", err)
		}
	})
	c.Start()
}
