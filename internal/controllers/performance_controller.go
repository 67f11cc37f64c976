package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"fibertrack/internal/dto"
	"fibertrack/internal/services"
	apperrors "fibertrack/pkg/errors"
	"fibertrack/pkg/utils"
)

type PerformanceController struct {
	service services.PerformanceServiceInterface
	logger  *zap.Logger
}

func NewPerformanceController(service services.PerformanceServiceInterface, logger *zap.Logger) *PerformanceController {
	return &PerformanceController{service: service, logger: logger}
}

func (ctrl *PerformanceController) GetMetric(c echo.Context) error {
	memberID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	metric, err := ctrl.service.GetMetric(c.Request().Context(), memberID)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, metric, "Performance metric retrieved successfully", http.StatusOK)
}

func (ctrl *PerformanceController) UpsertMetric(c echo.Context) error {
	memberID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	var input dto.UpsertPerformanceMetricDTO
	if err := c.Bind(&input); err != nil {
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("invalid request body"), ctrl.logger)
	}
	if err := c.Validate(&input); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	metric, err := ctrl.service.UpsertMetric(c.Request().Context(), memberID, input)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, metric, "Performance metric saved successfully", http.StatusOK)
}

func (ctrl *PerformanceController) monthYearParams(c echo.Context) (month, year int, err error) {
	year, err = strconv.Atoi(c.Param("year"))
	if err != nil {
		return 0, 0, apperrors.NewBadRequestError("invalid year parameter")
	}
	month, err = strconv.Atoi(c.Param("month"))
	if err != nil {
		return 0, 0, apperrors.NewBadRequestError("invalid month parameter")
	}
	return month, year, nil
}

func (ctrl *PerformanceController) GetMonthly(c echo.Context) error {
	month, year, err := ctrl.monthYearParams(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	monthly, err := ctrl.service.GetMonthly(c.Request().Context(), month, year)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, monthly, "Monthly performance retrieved successfully", http.StatusOK)
}

func (ctrl *PerformanceController) UpsertMonthly(c echo.Context) error {
	month, year, err := ctrl.monthYearParams(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	var input dto.UpsertMonthlyPerformanceDTO
	if err := c.Bind(&input); err != nil {
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("invalid request body"), ctrl.logger)
	}
	if err := c.Validate(&input); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	monthly, err := ctrl.service.UpsertMonthly(c.Request().Context(), month, year, input)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, monthly, "Monthly performance saved successfully", http.StatusOK)
}

func (ctrl *PerformanceController) GetYearlyOverview(c echo.Context) error {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("invalid year parameter"), ctrl.logger)
	}

	months, err := ctrl.service.GetYearlyOverview(c.Request().Context(), year)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, months, "Yearly performance retrieved successfully", http.StatusOK)
}
