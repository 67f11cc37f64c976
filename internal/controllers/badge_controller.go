package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"fibertrack/internal/dto"
	"fibertrack/internal/entities"
	"fibertrack/internal/services"
	apperrors "fibertrack/pkg/errors"
	"fibertrack/pkg/utils"
)

type BadgeController struct {
	service services.BadgeServiceInterface
	logger  *zap.Logger
}

func NewBadgeController(service services.BadgeServiceInterface, logger *zap.Logger) *BadgeController {
	return &BadgeController{service: service, logger: logger}
}

func (ctrl *BadgeController) GetTeamMemberBadges(c echo.Context) error {
	memberID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	badges, err := ctrl.service.GetTeamMemberBadges(c.Request().Context(), memberID)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, badges, "Badges retrieved successfully", http.StatusOK)
}

func (ctrl *BadgeController) AwardBadge(c echo.Context) error {
	memberID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	var input dto.AwardBadgeDTO
	if err := c.Bind(&input); err != nil {
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("invalid request body"), ctrl.logger)
	}
	if err := c.Validate(&input); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	badge, err := ctrl.service.AwardBadge(c.Request().Context(), memberID, input)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, badge, "Badge awarded successfully", http.StatusCreated)
}

// GetBadgeCatalog lists every badge type with its display metadata.
func (ctrl *BadgeController) GetBadgeCatalog(c echo.Context) error {
	type catalogEntry struct {
		Type        entities.BadgeType `json:"type"`
		Label       string             `json:"label"`
		Description string             `json:"description"`
	}

	catalog := make([]catalogEntry, 0, len(entities.BadgeTypes()))
	for _, t := range entities.BadgeTypes() {
		info := t.Info()
		catalog = append(catalog, catalogEntry{Type: t, Label: info.Label, Description: info.Description})
	}
	return utils.SuccessResponse(c, catalog, "Badge catalog retrieved successfully", http.StatusOK)
}
