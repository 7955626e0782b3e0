package handlers

import (
	"errors"
	"fmt"
	"net/http"

	request "github.com/matteusmoreno/generate-pdf-moto-manager-service/internal/adapter/http/dto/request"
	response "github.com/matteusmoreno/generate-pdf-moto-manager-service/internal/adapter/http/dto/response"
	"github.com/matteusmoreno/generate-pdf-moto-manager-service/internal/infrastructure/logger"
	"github.com/matteusmoreno/generate-pdf-moto-manager-service/internal/usecase"
	"github.com/matteusmoreno/generate-pdf-moto-manager-service/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errServiceOrderNotFound = pkg.NewDomainErrorSimple("SERVICE_ORDER_NOT_FOUND", "Ordem de serviço não encontrada", http.StatusNotFound)
	errInvalidGenerationID  = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

// ServiceOrderReportHandler serves service order PDFs and their generation history.
type ServiceOrderReportHandler struct {
	usecase usecase.IServiceOrderReportUseCase
}

func NewServiceOrderReportHandler(uc usecase.IServiceOrderReportUseCase) *ServiceOrderReportHandler {
	return &ServiceOrderReportHandler{usecase: uc}
}

// GeneratePDF godoc
// @Summary      Download a service order PDF
// @Tags         reports
// @Produce      application/pdf
// @Param        order_id  path  int  true  "Service order id"
// @Success      200  {file}    file
// @Failure      404  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /generate-pdf/service-order/{order_id} [get]
func (h *ServiceOrderReportHandler) GeneratePDF(c *gin.Context) {
	var path request.ServiceOrderPathRequest
	_ = c.ShouldBindUri(&path)

	orderID, ok := path.ResolveOrderID()
	if !ok {
		c.JSON(errServiceOrderNotFound.HTTPStatus, errServiceOrderNotFound.ToHTTPError())
		return
	}

	out, err := h.usecase.GenerateServiceOrderReport(c.Request.Context(), orderID)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", out.FileName))
	c.Data(http.StatusOK, out.ContentType, out.Content)
}

// ListGenerations godoc
// @Summary      List PDF generations of a service order
// @Tags         reports
// @Produce      json
// @Param        order_id  path  int  true  "Service order id"
// @Success      200  {object}  response.ReportGenerationListResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      503  {object}  pkg.HTTPError
// @Router       /v1/reports/service-orders/{order_id}/generations [get]
func (h *ServiceOrderReportHandler) ListGenerations(c *gin.Context) {
	var path request.ServiceOrderPathRequest
	_ = c.ShouldBindUri(&path)

	orderID, ok := path.ResolveOrderID()
	if !ok {
		c.JSON(errServiceOrderNotFound.HTTPStatus, errServiceOrderNotFound.ToHTTPError())
		return
	}

	items, err := h.usecase.ListGenerations(c.Request.Context(), orderID)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromReportGenerations(orderID, items))
}

// GetGeneration godoc
// @Summary      Get a PDF generation, with a temporary download link when archived
// @Tags         reports
// @Produce      json
// @Param        generation_id  path  string  true  "Generation id"
// @Success      200  {object}  response.ReportGenerationResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      503  {object}  pkg.HTTPError
// @Router       /v1/reports/generations/{generation_id} [get]
func (h *ServiceOrderReportHandler) GetGeneration(c *gin.Context) {
	var path request.ReportGenerationPathRequest
	_ = c.ShouldBindUri(&path)

	id := path.ResolveGenerationID()
	if id == "" {
		c.JSON(errInvalidGenerationID.HTTPStatus, errInvalidGenerationID.ToHTTPError())
		return
	}

	detail, err := h.usecase.GetGeneration(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromReportGenerationDetail(detail))
}

func (h *ServiceOrderReportHandler) fail(c *gin.Context, err error) {
	appErr := mapServiceOrderReportError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		logger.FromGin(c).Error("report request failed", zap.String("code", appErr.Code), zap.Error(err))
	}
	_ = c.Error(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapServiceOrderReportError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidServiceOrderID), errors.Is(err, usecase.ErrServiceOrderNotFound):
		return errServiceOrderNotFound
	case errors.Is(err, usecase.ErrInvalidReportGenerationID):
		return errInvalidGenerationID
	case errors.Is(err, usecase.ErrReportGenerationNotFound):
		return pkg.NewDomainErrorSimple("REPORT_GENERATION_NOT_FOUND", "Report generation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrHistoryNotConfigured):
		return pkg.NewDomainErrorSimple("REPORT_HISTORY_DISABLED", "Report history is not enabled", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrReportRenderFailed):
		return pkg.NewDomainError("REPORT_RENDER_FAILED", "Could not generate the service order PDF", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
