package response

import (
	"time"

	"github.com/matteusmoreno/generate-pdf-moto-manager-service/internal/domain/entities"
	"github.com/matteusmoreno/generate-pdf-moto-manager-service/internal/usecase"
)

type ReportGenerationResponse struct {
	ID           string     `json:"id"`
	OrderID      int64      `json:"order_id"`
	FileName     string     `json:"file_name"`
	SizeBytes    int64      `json:"size_bytes"`
	CustomerName string     `json:"customer_name"`
	Status       string     `json:"status"`
	TotalCost    string     `json:"total_cost"`
	Archived     bool       `json:"archived"`
	GeneratedAt  time.Time  `json:"generated_at"`
	DownloadURL  string     `json:"download_url,omitempty"`
	ExpiresAt    *time.Time `json:"download_url_expires_at,omitempty"`
}

type ReportGenerationListResponse struct {
	OrderID     int64                      `json:"order_id"`
	Generations []ReportGenerationResponse `json:"generations"`
}

func FromReportGeneration(g entities.ReportGeneration) ReportGenerationResponse {
	return ReportGenerationResponse{
		ID:           g.ID,
		OrderID:      g.OrderID,
		FileName:     g.FileName,
		SizeBytes:    g.SizeBytes,
		CustomerName: g.CustomerName,
		Status:       g.Status,
		TotalCost:    g.TotalCost.StringFixed(2),
		Archived:     g.Archived(),
		GeneratedAt:  g.GeneratedAt,
	}
}

func FromReportGenerationDetail(d usecase.ReportGenerationDetail) ReportGenerationResponse {
	res := FromReportGeneration(d.Generation)
	if d.DownloadURL != "" {
		res.DownloadURL = d.DownloadURL
		expiresAt := d.DownloadURLExpiresAt
		res.ExpiresAt = &expiresAt
	}
	return res
}

func FromReportGenerations(orderID int64, items []entities.ReportGeneration) ReportGenerationListResponse {
	out := ReportGenerationListResponse{
		OrderID:     orderID,
		Generations: make([]ReportGenerationResponse, 0, len(items)),
	}
	for _, g := range items {
		out.Generations = append(out.Generations, FromReportGeneration(g))
	}
	return out
}
