package main

import (
	"log"

	_ "github.com/matteusmoreno/generate-pdf-moto-manager-service/docs"
	"github.com/matteusmoreno/generate-pdf-moto-manager-service/internal/adapter/http/routes"
	"github.com/matteusmoreno/generate-pdf-moto-manager-service/internal/infrastructure/config"
	"github.com/matteusmoreno/generate-pdf-moto-manager-service/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Moto Manager PDF Service API
// @version         1.0
// @description     Generates service order PDFs from the Moto Manager API.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:5000

// @BasePath  /

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()

	if err := routes.Run(cfg, zapLogger); err != nil {
		zapLogger.Fatal("server stopped", zap.Error(err))
	}
}
