package api

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"cpusched/config"
)

func NewApp(cfg *config.SchedulerConfig, logger *slog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	var handler SchedulerHandler = NewSchedulerHandlerImpl(cfg, logger)

	api := app.Group("/api")
	v1 := api.Group("/v1")
	{
		v1.Get("/health", handler.Health)
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/all", handler.AllAlgorithms)
	}

	return app
}
