package api

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"cpusched/config"
	"cpusched/internal/requests"
	"cpusched/internal/schedulers"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
	logger *slog.Logger
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig, logger *slog.Logger) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config, logger: logger}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	request, err := s.parseRequest(ctx)
	if err != nil {
		return badRequest(ctx, "invalid request format")
	}
	runId := uuid.NewString()
	response, err := schedulers.ScheduleFirstComeFirstServe(s.logger.With("run_id", runId), request)
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	response.RunId = runId
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	request, err := s.parseRequest(ctx)
	if err != nil {
		return badRequest(ctx, "invalid request format")
	}
	runId := uuid.NewString()
	response, err := schedulers.ScheduleRoundRobin(s.logger.With("run_id", runId), request)
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	response.RunId = runId
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, err := s.parseRequest(ctx)
	if err != nil {
		return badRequest(ctx, "invalid request format")
	}
	runId := uuid.NewString()
	results, err := schedulers.ScheduleAll(s.logger.With("run_id", runId), request)
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	for i := range results {
		results[i].RunId = runId
	}
	return ctx.JSON(results)
}

func (s *SchedulerHandlerImpl) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"status": "ok"})
}

// parseRequest decodes the body and fills in the configured time quantum when
// the client leaves it out.
func (s *SchedulerHandlerImpl) parseRequest(ctx *fiber.Ctx) (*requests.ScheduleRequests, error) {
	request := new(requests.ScheduleRequests)
	if err := ctx.BodyParser(request); err != nil {
		s.logger.Debug("invalid request body", "error", err)
		return nil, err
	}
	if request.TimeQuantum == 0 {
		request.TimeQuantum = s.config.RoundRobinTimeQuantum
	}
	return request, nil
}

func badRequest(ctx *fiber.Ctx, message string) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
}
