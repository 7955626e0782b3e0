// Package storage keeps generated PDFs in S3-compatible object storage.
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/matteusmoreno/generate-pdf-moto-manager-service/internal/infrastructure/config"
	"github.com/matteusmoreno/generate-pdf-moto-manager-service/internal/usecase/interfaces"
	"go.uber.org/zap"
)

const (
	pdfContentType        = "application/pdf"
	defaultPresignExpires = 15 * time.Minute
)

// S3ReportArchive implements interfaces.IReportArchive. It works with AWS S3 and with
// S3-compatible servers (MinIO, LocalStack) when an endpoint is configured.
type S3ReportArchive struct {
	client            *s3.Client
	presignClient     *s3.PresignClient
	bucket            string
	presignExpiration time.Duration
	logger            *zap.Logger
	now               func() time.Time
}

var _ interfaces.IReportArchive = (*S3ReportArchive)(nil)

func NewS3ReportArchive(awsCfg aws.Config, cfg config.ArchiveConfig, logger *zap.Logger) (*S3ReportArchive, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("report archive bucket is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	ttl := cfg.PresignTTL
	if ttl <= 0 {
		ttl = defaultPresignExpires
	}

	return &S3ReportArchive{
		client:            client,
		presignClient:     s3.NewPresignClient(client),
		bucket:            cfg.Bucket,
		presignExpiration: ttl,
		logger:            logger.Named("report.archive"),
		now:               time.Now,
	}, nil
}

// Put uploads a PDF under key.
func (s *S3ReportArchive) Put(ctx context.Context, key string, content []byte) error {
	if key == "" {
		return errors.New("storage key is required")
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(content),
		ContentType:   aws.String(pdfContentType),
		ContentLength: aws.Int64(int64(len(content))),
	})
	if err != nil {
		return fmt.Errorf("put object %s: %w", key, err)
	}

	s.logger.Debug("object stored", zap.String("bucket", s.bucket), zap.String("key", key), zap.Int("size_bytes", len(content)))
	return nil
}

// PresignGet returns a temporary download URL for key.
func (s *S3ReportArchive) PresignGet(ctx context.Context, key string) (string, time.Time, error) {
	if key == "" {
		return "", time.Time{}, errors.New("storage key is required")
	}

	req, err := s.presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket:                     aws.String(s.bucket),
		Key:                        aws.String(key),
		ResponseContentType:        aws.String(pdfContentType),
		ResponseContentDisposition: aws.String("attachment"),
	}, s3.WithPresignExpires(s.presignExpiration))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("presign get %s: %w", key, err)
	}
	return req.URL, s.now().Add(s.presignExpiration), nil
}
