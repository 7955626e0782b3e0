package interfaces

import (
	"context"

	"github.com/matteusmoreno/generate-pdf-moto-manager-service/internal/domain/entities"
)

//go:generate mockgen -source=service_order_fetcher_interface.go -destination=mocks/service_order_fetcher_interface_mock.go -package=mocks

// IServiceOrderFetcher abstracts the Moto Manager API (os-service-api).
//
// Authenticate logs in with the configured credentials and returns a bearer token;
// FetchOrder loads the raw service order record with that token.
type IServiceOrderFetcher interface {
	Authenticate(ctx context.Context) (string, error)
	FetchOrder(ctx context.Context, token string, orderID int64) (entities.Record, error)
}
