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

type TaskController struct {
	service services.TaskServiceInterface
	logger  *zap.Logger
}

func NewTaskController(service services.TaskServiceInterface, logger *zap.Logger) *TaskController {
	return &TaskController{service: service, logger: logger}
}

func (ctrl *TaskController) GetProjectTasks(c echo.Context) error {
	projectID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	tasks, err := ctrl.service.GetProjectTasks(c.Request().Context(), projectID)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, tasks, "Tasks retrieved successfully", http.StatusOK)
}

func (ctrl *TaskController) CreateTask(c echo.Context) error {
	projectID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	var input dto.CreateTaskDTO
	if err := c.Bind(&input); err != nil {
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("invalid request body"), ctrl.logger)
	}
	if err := c.Validate(&input); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	task, err := ctrl.service.CreateTask(c.Request().Context(), projectID, input)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, task, "Task created successfully", http.StatusCreated)
}

func (ctrl *TaskController) UpdateTask(c echo.Context) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	var input dto.UpdateTaskDTO
	if err := c.Bind(&input); err != nil {
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("invalid request body"), ctrl.logger)
	}
	if err := c.Validate(&input); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	task, err := ctrl.service.UpdateTask(c.Request().Context(), id, input)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, task, "Task updated successfully", http.StatusOK)
}
