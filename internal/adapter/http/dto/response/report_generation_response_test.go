package response

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/matteusmoreno/generate-pdf-moto-manager-service/internal/domain/entities"
	"github.com/matteusmoreno/generate-pdf-moto-manager-service/internal/usecase"
	"github.com/shopspring/decimal"
)

func TestFromReportGeneration(t *testing.T) {
	now := time.Now().UTC()
	g := entities.ReportGeneration{
		ID:           "gen-1",
		OrderID:      7,
		FileName:     "service_order_7.pdf",
		SizeBytes:    1024,
		CustomerName: "Maria",
		Status:       "Completed",
		TotalCost:    decimal.NewFromInt(1802),
		StorageKey:   "service-orders/7/gen-1.pdf",
		GeneratedAt:  now,
	}

	res := FromReportGeneration(g)
	if res.ID != "gen-1" || res.OrderID != 7 || res.FileName != "service_order_7.pdf" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.TotalCost != "1802.00" || !res.Archived {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if !res.GeneratedAt.Equal(now) || res.DownloadURL != "" || res.ExpiresAt != nil {
		t.Fatalf("unexpected dates: %+v", res)
	}
}

func TestFromReportGenerationDetail(t *testing.T) {
	expires := time.Date(2025, 4, 5, 9, 45, 0, 0, time.UTC)
	res := FromReportGenerationDetail(usecase.ReportGenerationDetail{
		Generation:           entities.ReportGeneration{ID: "gen-1", StorageKey: "k"},
		DownloadURL:          "https://s3/presigned",
		DownloadURLExpiresAt: expires,
	})
	if res.DownloadURL != "https://s3/presigned" || res.ExpiresAt == nil || !res.ExpiresAt.Equal(expires) {
		t.Fatalf("unexpected download fields: %+v", res)
	}

	plain := FromReportGenerationDetail(usecase.ReportGenerationDetail{Generation: entities.ReportGeneration{ID: "gen-2"}})
	body, err := json.Marshal(plain)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(string(body), "download_url") {
		t.Fatalf("download fields should be omitted: %s", body)
	}
}

func TestFromReportGenerations(t *testing.T) {
	res := FromReportGenerations(3, nil)
	if res.OrderID != 3 || res.Generations == nil || len(res.Generations) != 0 {
		t.Fatalf("unexpected empty list: %+v", res)
	}

	res = FromReportGenerations(3, []entities.ReportGeneration{{ID: "a"}, {ID: "b"}})
	if len(res.Generations) != 2 || res.Generations[1].ID != "b" {
		t.Fatalf("unexpected list: %+v", res)
	}
}
