package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/matteusmoreno/generate-pdf-moto-manager-service/internal/domain/entities"
	"github.com/matteusmoreno/generate-pdf-moto-manager-service/internal/domain/report"
	"github.com/matteusmoreno/generate-pdf-moto-manager-service/internal/usecase/interfaces"
	"go.uber.org/zap"
)

var (
	ErrInvalidServiceOrderID     = errors.New("invalid service order id")
	ErrServiceOrderNotFound      = errors.New("service order not found")
	ErrReportRenderFailed        = errors.New("service order report render failed")
	ErrHistoryNotConfigured      = errors.New("report history not configured")
	ErrInvalidReportGenerationID = errors.New("invalid report generation id")
	ErrReportGenerationNotFound  = errors.New("report generation not found")
)

const (
	pdfContentType     = "application/pdf"
	defaultFooterBrand = "MotoManager"
)

//go:generate mockgen -source=service_order_report_usecase.go -destination=../adapter/http/handlers/mocks/service_order_report_usecase_mock.go -package=mocks

// IServiceOrderReportUseCase exposes the service order PDF operations.
//
//   - GET /generate-pdf/service-order/{id} => GenerateServiceOrderReport()
//   - GET /v1/reports/service-orders/{id}/generations => ListGenerations()
//   - GET /v1/reports/generations/{id} => GetGeneration()
type IServiceOrderReportUseCase interface {
	GenerateServiceOrderReport(ctx context.Context, orderID int64) (entities.ServiceOrderReport, error)
	ListGenerations(ctx context.Context, orderID int64) ([]entities.ReportGeneration, error)
	GetGeneration(ctx context.Context, id string) (ReportGenerationDetail, error)
}

// ReportSettings are the report options fixed at startup.
type ReportSettings struct {
	Options     report.Options
	Layout      report.Layout
	FooterBrand string
}

// ReportGenerationDetail is a history entry plus a temporary download link when the PDF
// was archived.
type ReportGenerationDetail struct {
	Generation           entities.ReportGeneration
	DownloadURL          string
	DownloadURLExpiresAt time.Time
}

type ServiceOrderReportUseCase struct {
	fetcher  interfaces.IServiceOrderFetcher
	renderer interfaces.IDocumentRenderer
	history  interfaces.IReportGenerationRepository
	archive  interfaces.IReportArchive
	settings ReportSettings
	logger   *zap.Logger
	now      func() time.Time
}

var _ IServiceOrderReportUseCase = (*ServiceOrderReportUseCase)(nil)

// NewServiceOrderReportUseCase wires the report pipeline. history and archive may be
// nil, which disables generation history and the PDF archive respectively.
func NewServiceOrderReportUseCase(
	fetcher interfaces.IServiceOrderFetcher,
	renderer interfaces.IDocumentRenderer,
	history interfaces.IReportGenerationRepository,
	archive interfaces.IReportArchive,
	settings ReportSettings,
	logger *zap.Logger,
) *ServiceOrderReportUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	if settings.Layout.PageSize == "" {
		settings.Layout = report.DefaultLayout()
	}
	if settings.FooterBrand == "" {
		settings.FooterBrand = defaultFooterBrand
	}
	return &ServiceOrderReportUseCase{
		fetcher:  fetcher,
		renderer: renderer,
		history:  history,
		archive:  archive,
		settings: settings,
		logger:   logger.Named("report.usecase"),
		now:      time.Now,
	}
}

func (u *ServiceOrderReportUseCase) GenerateServiceOrderReport(ctx context.Context, orderID int64) (entities.ServiceOrderReport, error) {
	log := u.logger.With(zap.Int64("order_id", orderID))
	log.Info("generate start")

	if orderID <= 0 {
		return entities.ServiceOrderReport{}, ErrInvalidServiceOrderID
	}

	record, err := u.loadRecord(ctx, orderID)
	if err != nil {
		log.Warn("service order unavailable", zap.Error(err))
		return entities.ServiceOrderReport{}, fmt.Errorf("%w: %w", ErrServiceOrderNotFound, err)
	}

	generatedAt := u.now()
	layout := u.settings.Layout
	layout.Title = fmt.Sprintf("%s #%d", report.Title, orderID)
	layout.FooterText = fmt.Sprintf("Relatório gerado em %s | %s", generatedAt.Format("02/01/2006 15:04"), u.settings.FooterBrand)

	blocks := report.BuildReport(record, u.settings.Options)
	content, err := u.renderer.Render(ctx, blocks, layout)
	if err != nil {
		log.Error("render failed", zap.Int("blocks", len(blocks)), zap.Error(err))
		return entities.ServiceOrderReport{}, fmt.Errorf("%w: %w", ErrReportRenderFailed, err)
	}

	out := entities.ServiceOrderReport{
		OrderID:     orderID,
		FileName:    ReportFileName(orderID),
		ContentType: pdfContentType,
		Content:     content,
		GeneratedAt: generatedAt,
		Order:       entities.NewServiceOrder(record),
	}
	log.Info("generate success", zap.Int("size_bytes", len(content)), zap.Int("products", len(out.Order.Products)))

	u.recordGeneration(ctx, out)
	return out, nil
}

// loadRecord logs in and fetches the order. Both failures are reported to the caller
// the same way.
func (u *ServiceOrderReportUseCase) loadRecord(ctx context.Context, orderID int64) (entities.Record, error) {
	if u.fetcher == nil {
		return nil, errors.New("service order fetcher not configured")
	}

	token, err := u.fetcher.Authenticate(ctx)
	if err != nil {
		return nil, err
	}

	record, err := u.fetcher.FetchOrder(ctx, token, orderID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, errors.New("empty service order payload")
	}
	return record, nil
}

// recordGeneration archives the PDF and stores a history entry. Failures are logged;
// the caller already has a complete PDF.
func (u *ServiceOrderReportUseCase) recordGeneration(ctx context.Context, r entities.ServiceOrderReport) {
	if u.history == nil && u.archive == nil {
		return
	}

	gen := entities.ReportGeneration{
		ID:           uuid.NewString(),
		OrderID:      r.OrderID,
		FileName:     r.FileName,
		SizeBytes:    int64(len(r.Content)),
		CustomerName: r.Order.CustomerName,
		Status:       r.Order.Status,
		TotalCost:    r.Order.TotalCost.Decimal,
		GeneratedAt:  r.GeneratedAt.UTC(),
	}
	log := u.logger.With(zap.Int64("order_id", r.OrderID), zap.String("generation_id", gen.ID))

	if u.archive != nil {
		key := ArchiveKey(r.OrderID, gen.ID)
		if err := u.archive.Put(ctx, key, r.Content); err != nil {
			log.Warn("archive failed", zap.String("key", key), zap.Error(err))
		} else {
			gen.StorageKey = key
			log.Info("archived", zap.String("key", key))
		}
	}

	if u.history != nil {
		if _, err := u.history.Create(ctx, gen); err != nil {
			log.Warn("history create failed", zap.Error(err))
		}
	}
}

func (u *ServiceOrderReportUseCase) ListGenerations(ctx context.Context, orderID int64) ([]entities.ReportGeneration, error) {
	if orderID <= 0 {
		return nil, ErrInvalidServiceOrderID
	}
	if u.history == nil {
		return nil, ErrHistoryNotConfigured
	}

	items, err := u.history.ListByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].GeneratedAt.After(items[j].GeneratedAt)
	})
	return items, nil
}

func (u *ServiceOrderReportUseCase) GetGeneration(ctx context.Context, id string) (ReportGenerationDetail, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return ReportGenerationDetail{}, ErrInvalidReportGenerationID
	}
	if u.history == nil {
		return ReportGenerationDetail{}, ErrHistoryNotConfigured
	}

	gen, err := u.history.GetByID(ctx, id)
	if err != nil {
		return ReportGenerationDetail{}, err
	}
	if gen.ID == "" {
		return ReportGenerationDetail{}, ErrReportGenerationNotFound
	}

	detail := ReportGenerationDetail{Generation: gen}
	if gen.Archived() && u.archive != nil {
		url, expiresAt, err := u.archive.PresignGet(ctx, gen.StorageKey)
		if err != nil {
			u.logger.Warn("presign failed", zap.String("generation_id", gen.ID), zap.Error(err))
		} else {
			detail.DownloadURL = url
			detail.DownloadURLExpiresAt = expiresAt
		}
	}
	return detail, nil
}

// ReportFileName is the attachment name of a service order PDF.
func ReportFileName(orderID int64) string {
	return fmt.Sprintf("service_order_%d.pdf", orderID)
}

// ArchiveKey is the object key of an archived PDF.
func ArchiveKey(orderID int64, generationID string) string {
	return fmt.Sprintf("service-orders/%d/%s.pdf", orderID, generationID)
}
