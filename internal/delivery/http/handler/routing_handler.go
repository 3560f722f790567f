package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/mobike/routing-api/internal/pkg/errors"
	"github.com/mobike/routing-api/internal/pkg/utils"
	"github.com/mobike/routing-api/internal/pkg/validator"
	"github.com/mobike/routing-api/internal/usecase"
	"github.com/mobike/routing-api/internal/usecase/dto"
	"go.uber.org/zap"
)

// RoutingHandler - обработчик запросов на построение маршрутов
type RoutingHandler struct {
	plannerUC usecase.RouteSelector
	logger    *zap.Logger
}

// NewRoutingHandler - создание нового RoutingHandler
func NewRoutingHandler(plannerUC usecase.RouteSelector, logger *zap.Logger) *RoutingHandler {
	return &RoutingHandler{
		plannerUC: plannerUC,
		logger:    logger,
	}
}

// PlanRoute - построение мультимодального маршрута
// @Summary Построить маршрут
// @Description Строит комбинированный маршрут велосипед-транзит-велосипед и сравнивает его с чисто велосипедным; возвращает более быстрый. 418 означает, что ни одна стратегия не дала маршрута.
// @Tags routing
// @Accept json
// @Produce json
// @Param request body dto.RoutingRequest true "Origin, destination and optional RFC3339 departure time"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 418 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /routing [post]
func (h *RoutingHandler) PlanRoute(c *fiber.Ctx) error {
	var req dto.RoutingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	started := time.Now()
	result, err := h.plannerUC.SelectBestRoute(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Strategy: string(result.Strategy),
		TimeMSec: float64(time.Since(started).Microseconds()) / 1000.0,
	})
}
