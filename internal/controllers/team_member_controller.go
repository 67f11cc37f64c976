package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"fibertrack/internal/dto"
	"fibertrack/internal/services"
	apperrors "fibertrack/pkg/errors"
	"fibertrack/pkg/utils"
)

type TeamMemberController struct {
	service services.TeamMemberServiceInterface
	logger  *zap.Logger
}

func NewTeamMemberController(service services.TeamMemberServiceInterface, logger *zap.Logger) *TeamMemberController {
	return &TeamMemberController{service: service, logger: logger}
}

func (ctrl *TeamMemberController) GetTeamMembers(c echo.Context) error {
	members, err := ctrl.service.GetTeamMembers(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, members, "Team members retrieved successfully", http.StatusOK)
}

func (ctrl *TeamMemberController) GetTeamMember(c echo.Context) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	member, err := ctrl.service.GetTeamMemberByID(c.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, member, "Team member retrieved successfully", http.StatusOK)
}

func (ctrl *TeamMemberController) CreateTeamMember(c echo.Context) error {
	var input dto.CreateTeamMemberDTO
	if err := c.Bind(&input); err != nil {
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("invalid request body"), ctrl.logger)
	}
	if err := c.Validate(&input); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	member, err := ctrl.service.CreateTeamMember(c.Request().Context(), input)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, member, "Team member created successfully", http.StatusCreated)
}
