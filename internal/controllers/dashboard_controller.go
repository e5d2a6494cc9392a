package controllers

import (
	"net/http"

	"equipment-tracker/internal/services"
	apperrors "equipment-tracker/pkg/errors"
	"equipment-tracker/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type DashboardController struct {
	dashboardService services.DashboardServiceInterface
	logger           *zap.Logger
}

func NewDashboardController(dashboardService services.DashboardServiceInterface, logger *zap.Logger) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

func (c *DashboardController) GetServiceOverview(ctx echo.Context) error {
	overview, err := c.dashboardService.GetServiceOverview(ctx.Request().Context())
	if err != nil {
		c.logger.Error("GetServiceOverview: ошибка при построении сводки", zap.Error(err))
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusInternalServerError, "Не удалось построить сводку обслуживания", err, nil),
			c.logger)
	}

	return utils.SuccessResponse(ctx, overview, "Сводка обслуживания получена", http.StatusOK)
}
