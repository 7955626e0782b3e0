package routes

import (
	"context"
	"fmt"
	"os"

	_ "github.com/matteusmoreno/generate-pdf-moto-manager-service/docs"
	"github.com/matteusmoreno/generate-pdf-moto-manager-service/internal/adapter/http/handlers"
	"github.com/matteusmoreno/generate-pdf-moto-manager-service/internal/adapter/persistence/repository"
	"github.com/matteusmoreno/generate-pdf-moto-manager-service/internal/domain/report"
	"github.com/matteusmoreno/generate-pdf-moto-manager-service/internal/infrastructure/config"
	"github.com/matteusmoreno/generate-pdf-moto-manager-service/internal/infrastructure/database"
	"github.com/matteusmoreno/generate-pdf-moto-manager-service/internal/infrastructure/logger"
	"github.com/matteusmoreno/generate-pdf-moto-manager-service/internal/infrastructure/pdf"
	"github.com/matteusmoreno/generate-pdf-moto-manager-service/internal/infrastructure/storage"
	"github.com/matteusmoreno/generate-pdf-moto-manager-service/internal/infrastructure/upstream"
	"github.com/matteusmoreno/generate-pdf-moto-manager-service/internal/usecase"
	"github.com/matteusmoreno/generate-pdf-moto-manager-service/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Run wires the application and serves HTTP until the listener fails.
func Run(cfg *config.Config, log *zap.Logger) error {
	gin.SetMode(cfg.Server.GinMode)

	reportHandler, err := buildReportHandler(context.Background(), cfg, log)
	if err != nil {
		return err
	}

	router := newRouter(log, reportHandler)

	log.Info("http server starting", zap.String("port", cfg.Server.Port))
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to startup the application: %w", err)
	}
	return nil
}

func newRouter(log *zap.Logger, reportHandler *handlers.ServiceOrderReportHandler) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, log)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	addPDFRoutes(router, reportHandler)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addReportRoutes(v1, reportHandler)
	return router
}

func setMiddlewares(router *gin.Engine, log *zap.Logger) {
	router.Use(logger.GinMiddleware(log.Named("http")))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error("recovered from panic", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(500)
	}))
}

func buildReportHandler(ctx context.Context, cfg *config.Config, log *zap.Logger) (*handlers.ServiceOrderReportHandler, error) {
	fetcher := upstream.NewClient(
		upstream.Config{BaseURL: cfg.MotoManager.BaseURL, Timeout: cfg.MotoManager.Timeout},
		upstream.StaticCredentials{Username: cfg.MotoManager.Username, Password: cfg.MotoManager.Password},
		log,
	)
	renderer := pdf.NewRenderer(log)

	var (
		history interfaces.IReportGenerationRepository
		archive interfaces.IReportArchive
	)
	if cfg.History.Enabled || cfg.Archive.Enabled() {
		awsCfg, err := database.NewAWSConfig(ctx, cfg.AWS)
		if err != nil {
			return nil, fmt.Errorf("failed to create aws config: %w", err)
		}

		if cfg.History.Enabled {
			ddb := database.NewDynamoDBClient(awsCfg, cfg.History.DynamoDBEndpoint)
			history = repository.NewReportGenerationDynamoRepository(ddb, cfg.History.Table)
			log.Info("report history enabled", zap.String("table", cfg.History.Table))
		}

		if cfg.Archive.Enabled() {
			s3Archive, err := storage.NewS3ReportArchive(awsCfg, cfg.Archive, log)
			if err != nil {
				return nil, fmt.Errorf("failed to create report archive: %w", err)
			}
			archive = s3Archive
			log.Info("report archive enabled", zap.String("bucket", cfg.Archive.Bucket))
		}
	}

	uc := usecase.NewServiceOrderReportUseCase(fetcher, renderer, history, archive, reportSettings(cfg.Report, log), log)
	return handlers.NewServiceOrderReportHandler(uc), nil
}

// reportSettings drops a configured logo that does not exist so reports render without it.
func reportSettings(cfg config.ReportConfig, log *zap.Logger) usecase.ReportSettings {
	logo := cfg.LogoPath
	if logo != "" {
		if _, err := os.Stat(logo); err != nil {
			log.Warn("report logo not found, rendering without it", zap.String("path", logo), zap.Error(err))
			logo = ""
		}
	}

	return usecase.ReportSettings{
		Options: report.Options{
			LogoPath:        logo,
			IncludeTimeline: cfg.IncludeTimeline,
		},
		Layout:      report.DefaultLayout(),
		FooterBrand: cfg.FooterBrand,
	}
}
