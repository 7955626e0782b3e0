package interfaces

import (
	"context"

	"github.com/matteusmoreno/generate-pdf-moto-manager-service/internal/domain/report"
)

//go:generate mockgen -source=document_renderer_interface.go -destination=mocks/document_renderer_interface_mock.go -package=mocks

// IDocumentRenderer turns an ordered block list into document bytes.
type IDocumentRenderer interface {
	Render(ctx context.Context, blocks []report.Block, layout report.Layout) ([]byte, error)
}
