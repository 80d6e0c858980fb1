package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/pharmacy-locator/internal/pkg/errors"
	"github.com/pharmacy-locator/internal/pkg/utils"
	"github.com/pharmacy-locator/internal/pkg/validator"
	"github.com/pharmacy-locator/internal/usecase/dto"
)

// Locator - сценарий "локация -> ближайшие аптеки"
type Locator interface {
	Locate(ctx context.Context, situation, location string, radiusM, limit int) *dto.LocatorResponse
}

// LocatorHandler - обработчик запросов поиска ближайших аптек
type LocatorHandler struct {
	locatorUC Locator
	logger    *zap.Logger
}

// NewLocatorHandler - создание нового LocatorHandler
func NewLocatorHandler(locatorUC Locator, logger *zap.Logger) *LocatorHandler {
	return &LocatorHandler{
		locatorUC: locatorUC,
		logger:    logger,
	}
}

// Locate godoc
// @Summary Поиск ближайших аптек
// @Description Геокодирует текст локации (location, затем city, затем query) и возвращает ближайшие аптеки: сначала с контактами, затем остальные. Если локацию не удалось геокодировать, возвращается envelope со status=error и HTTP 200.
// @Tags Locator
// @Accept json
// @Produce json
// @Produce plain
// @Param request body dto.LocatorRequest true "Локация и параметры поиска"
// @Success 200 {object} dto.LocatorResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/locator [post]
func (h *LocatorHandler) Locate(c *fiber.Ctx) error {
	var req dto.LocatorRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"body": "invalid JSON body",
		}))
	}

	location := req.LocationText()
	if location == "" {
		return utils.SendError(c, errors.ErrLocationRequired)
	}

	req.Normalize()
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	resp := h.locatorUC.Locate(c.Context(), req.Situation, location, req.RadiusM, req.Limit)
	if resp.Status != dto.StatusOK {
		h.logger.Info("Location not geocoded", zap.String("location", location))
		return utils.SendSuccess(c, resp)
	}

	if req.Format == dto.FormatPretty {
		return utils.SendText(c, dto.RenderPretty(resp))
	}

	return utils.SendSuccess(c, resp)
}
