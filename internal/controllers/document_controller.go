package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"fibertrack/internal/services"
	apperrors "fibertrack/pkg/errors"
	"fibertrack/pkg/utils"
)

type DocumentController struct {
	service services.DocumentServiceInterface
	logger  *zap.Logger
}

func NewDocumentController(service services.DocumentServiceInterface, logger *zap.Logger) *DocumentController {
	return &DocumentController{service: service, logger: logger}
}

func (ctrl *DocumentController) GetProjectDocuments(c echo.Context) error {
	projectID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	docs, err := ctrl.service.GetProjectDocuments(c.Request().Context(), projectID)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, docs, "Documents retrieved successfully", http.StatusOK)
}

func (ctrl *DocumentController) UploadDocument(c echo.Context) error {
	projectID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("file is required"), ctrl.logger)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("cannot read uploaded file"), ctrl.logger)
	}
	defer src.Close()

	docType := c.FormValue("type")
	if docType == "" {
		docType = fileHeader.Header.Get("Content-Type")
	}

	doc, err := ctrl.service.UploadDocument(c.Request().Context(), projectID, src, fileHeader.Filename, docType)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, doc, "Document uploaded successfully", http.StatusCreated)
}
