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

type ProjectController struct {
	service services.ProjectServiceInterface
	logger  *zap.Logger
}

func NewProjectController(service services.ProjectServiceInterface, logger *zap.Logger) *ProjectController {
	return &ProjectController{service: service, logger: logger}
}

func (ctrl *ProjectController) GetProjects(c echo.Context) error {
	projects, err := ctrl.service.GetProjects(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, projects, "Projects retrieved successfully", http.StatusOK)
}

func (ctrl *ProjectController) GetProject(c echo.Context) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	project, err := ctrl.service.GetProjectByID(c.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, project, "Project retrieved successfully", http.StatusOK)
}

func (ctrl *ProjectController) CreateProject(c echo.Context) error {
	var input dto.CreateProjectDTO
	if err := c.Bind(&input); err != nil {
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("invalid request body"), ctrl.logger)
	}
	if err := c.Validate(&input); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	project, err := ctrl.service.CreateProject(c.Request().Context(), input)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, project, "Project created successfully", http.StatusCreated)
}

func (ctrl *ProjectController) UpdateProject(c echo.Context) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	var input dto.UpdateProjectDTO
	if err := c.Bind(&input); err != nil {
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("invalid request body"), ctrl.logger)
	}
	if err := c.Validate(&input); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	project, err := ctrl.service.UpdateProject(c.Request().Context(), id, input)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, project, "Project updated successfully", http.StatusOK)
}

func (ctrl *ProjectController) ChangeStage(c echo.Context) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	var input dto.ChangeStageDTO
	if err := c.Bind(&input); err != nil {
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("invalid request body"), ctrl.logger)
	}
	if err := c.Validate(&input); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	project, err := ctrl.service.ChangeStage(c.Request().Context(), id, input)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, project, "Project stage updated successfully", http.StatusOK)
}

func (ctrl *ProjectController) GetStageHistory(c echo.Context) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	history, err := ctrl.service.GetStageHistory(c.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, history, "Stage history retrieved successfully", http.StatusOK)
}

func (ctrl *ProjectController) GetProjectsByStage(c echo.Context) error {
	stage, err := strconv.Atoi(c.Param("stage"))
	if err != nil {
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("invalid stage parameter"), ctrl.logger)
	}

	projects, err := ctrl.service.GetProjectsByStage(c.Request().Context(), stage)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, projects, "Projects retrieved successfully", http.StatusOK)
}

func (ctrl *ProjectController) GetProjectsByServiceType(c echo.Context) error {
	projects, err := ctrl.service.GetProjectsByServiceType(c.Request().Context(), c.Param("type"))
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, projects, "Projects retrieved successfully", http.StatusOK)
}

func (ctrl *ProjectController) GetProjectsByStatus(c echo.Context) error {
	// Anything other than "completed" selects active projects.
	projects, err := ctrl.service.GetProjectsByStatus(c.Request().Context(), c.Param("status") == "completed")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, projects, "Projects retrieved successfully", http.StatusOK)
}

func (ctrl *ProjectController) SearchProjects(c echo.Context) error {
	projects, err := ctrl.service.SearchProjects(c.Request().Context(), c.Param("query"))
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, projects, "Projects retrieved successfully", http.StatusOK)
}
