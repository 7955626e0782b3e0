package interfaces

import (
	"context"
	"time"
)

//go:generate mockgen -source=report_archive_interface.go -destination=mocks/report_archive_interface_mock.go -package=mocks

// IReportArchive abstracts object storage (S3) for generated PDFs.
type IReportArchive interface {
	Put(ctx context.Context, key string, content []byte) error
	PresignGet(ctx context.Context, key string) (url string, expiresAt time.Time, err error)
}
