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

type AuthController struct {
	service services.AuthServiceInterface
	logger  *zap.Logger
}

func NewAuthController(service services.AuthServiceInterface, logger *zap.Logger) *AuthController {
	return &AuthController{service: service, logger: logger}
}

func (ctrl *AuthController) Register(c echo.Context) error {
	var input dto.RegisterDTO
	if err := c.Bind(&input); err != nil {
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("invalid request body"), ctrl.logger)
	}
	if err := c.Validate(&input); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	user, err := ctrl.service.Register(c.Request().Context(), input)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, user, "User registered successfully", http.StatusCreated)
}

func (ctrl *AuthController) Login(c echo.Context) error {
	var input dto.LoginDTO
	if err := c.Bind(&input); err != nil {
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("invalid request body"), ctrl.logger)
	}
	if err := c.Validate(&input); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	tokens, err := ctrl.service.Login(c.Request().Context(), input)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, tokens, "Logged in successfully", http.StatusOK)
}

func (ctrl *AuthController) Logout(c echo.Context) error {
	token, err := utils.BearerToken(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	if err := ctrl.service.Logout(c.Request().Context(), token); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, nil, "Logged out successfully", http.StatusOK)
}

func (ctrl *AuthController) Refresh(c echo.Context) error {
	var input struct {
		RefreshToken string `json:"refreshToken" validate:"required"`
	}
	if err := c.Bind(&input); err != nil {
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("invalid request body"), ctrl.logger)
	}
	if err := c.Validate(&input); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	tokens, err := ctrl.service.Refresh(c.Request().Context(), input.RefreshToken)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, tokens, "Token refreshed successfully", http.StatusOK)
}

func (ctrl *AuthController) Me(c echo.Context) error {
	userID, err := utils.GetUserIDFromCtx(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	user, err := ctrl.service.Me(c.Request().Context(), userID)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, user, "User retrieved successfully", http.StatusOK)
}
