package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportGeneration records one successful PDF generation.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (order_id-index): order_id
//
// StorageKey is empty when the PDF archive is disabled; the PDF itself is then only
// available from the response that produced it.
type ReportGeneration struct {
	ID           string          `json:"id"`
	OrderID      int64           `json:"order_id"`
	FileName     string          `json:"file_name"`
	SizeBytes    int64           `json:"size_bytes"`
	CustomerName string          `json:"customer_name"`
	Status       string          `json:"status"`
	TotalCost    decimal.Decimal `json:"total_cost"`
	StorageKey   string          `json:"storage_key,omitempty"`
	GeneratedAt  time.Time       `json:"generated_at"`
}

func (g ReportGeneration) Archived() bool {
	return g.StorageKey != ""
}
