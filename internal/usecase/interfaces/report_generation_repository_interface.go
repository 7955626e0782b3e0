package interfaces

import (
	"context"

	"github.com/matteusmoreno/generate-pdf-moto-manager-service/internal/domain/entities"
)

//go:generate mockgen -source=report_generation_repository_interface.go -destination=mocks/report_generation_repository_interface_mock.go -package=mocks

// IReportGenerationRepository abstracts DynamoDB persistence for ReportGeneration.
//
// GetByID returns a zero-value entity (empty ID) when nothing is stored under id.
type IReportGenerationRepository interface {
	Create(ctx context.Context, g entities.ReportGeneration) (entities.ReportGeneration, error)
	GetByID(ctx context.Context, id string) (entities.ReportGeneration, error)
	ListByOrderID(ctx context.Context, orderID int64) ([]entities.ReportGeneration, error)
}
