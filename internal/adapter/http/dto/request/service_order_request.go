package request

import (
	"strconv"
	"strings"
)

// ServiceOrderPathRequest binds the :order_id path parameter.
type ServiceOrderPathRequest struct {
	OrderID string `uri:"order_id"`
}

// ResolveOrderID returns the order id when it is a positive integer.
func (r ServiceOrderPathRequest) ResolveOrderID() (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(r.OrderID), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// ReportGenerationPathRequest binds the :generation_id path parameter.
type ReportGenerationPathRequest struct {
	GenerationID string `uri:"generation_id"`
}

func (r ReportGenerationPathRequest) ResolveGenerationID() string {
	return strings.TrimSpace(r.GenerationID)
}
