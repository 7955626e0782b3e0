package routes

import (
	"github.com/matteusmoreno/generate-pdf-moto-manager-service/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathGeneratePDF = "/generate-pdf"
	PathReports     = "/reports"
)

// addPDFRoutes mounts the download endpoint at the root, where Moto Manager clients
// already call it.
func addPDFRoutes(router *gin.Engine, h *handlers.ServiceOrderReportHandler) {
	pdfs := router.Group(PathGeneratePDF)
	{
		pdfs.GET("/service-order/:order_id", h.GeneratePDF)
	}
}

func addReportRoutes(rg *gin.RouterGroup, h *handlers.ServiceOrderReportHandler) {
	reports := rg.Group(PathReports)
	{
		reports.GET("/service-orders/:order_id/generations", h.ListGenerations)
		reports.GET("/generations/:generation_id", h.GetGeneration)
	}
}
