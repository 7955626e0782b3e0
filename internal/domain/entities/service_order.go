package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Field names of the service order payload served by the Moto Manager API.
const (
	FieldID                 = "id"
	FieldCustomerName       = "customerName"
	FieldMotorcycleBrand    = "motorcycleBrand"
	FieldMotorcycleModel    = "motorcycleModel"
	FieldMotorcycleYear     = "motorcycleYear"
	FieldMotorcycleColor    = "motorcycleColor"
	FieldSellerName         = "sellerName"
	FieldMechanicName       = "mechanicName"
	FieldDescription        = "description"
	FieldServiceOrderStatus = "serviceOrderStatus"
	FieldLaborPrice         = "laborPrice"
	FieldTotalCost          = "totalCost"
	FieldProducts           = "products"
	FieldCreatedAt          = "createdAt"
	FieldStartedAt          = "startedAt"
	FieldUpdatedAt          = "updatedAt"
	FieldFinishedAt         = "finishedAt"
	FieldCanceledAt         = "canceledAt"

	FieldProductName  = "productName"
	FieldProductBrand = "productBrand"
	FieldQuantity     = "quantity"
	FieldUnitaryPrice = "unitaryPrice"
	FieldFinalPrice   = "finalPrice"
)

// ServiceOrder is the typed view of a service order (ordem de serviço) record.
//
// Text fields are "" when absent upstream, numeric fields are NullDecimal and timestamps
// keep their raw ISO-8601 form. FinalPrice is never recomputed from quantity and unit
// price: whatever the API sends is what the report shows.
type ServiceOrder struct {
	ID              string
	CustomerName    string
	MotorcycleBrand string
	MotorcycleModel string
	MotorcycleYear  string
	MotorcycleColor string
	SellerName      string
	MechanicName    string
	Description     string
	Status          string
	LaborPrice      decimal.NullDecimal
	TotalCost       decimal.NullDecimal
	Products        []ProductLine

	CreatedAt  string
	StartedAt  string
	UpdatedAt  string
	FinishedAt string
	CanceledAt string
}

type ProductLine struct {
	ProductName  string
	ProductBrand string
	Quantity     decimal.NullDecimal
	UnitaryPrice decimal.NullDecimal
	FinalPrice   decimal.NullDecimal
}

func NewServiceOrder(r Record) ServiceOrder {
	products := r.Records(FieldProducts)
	lines := make([]ProductLine, 0, len(products))
	for _, p := range products {
		lines = append(lines, NewProductLine(p))
	}

	return ServiceOrder{
		ID:              r.Text(FieldID),
		CustomerName:    r.Text(FieldCustomerName),
		MotorcycleBrand: r.Text(FieldMotorcycleBrand),
		MotorcycleModel: r.Text(FieldMotorcycleModel),
		MotorcycleYear:  r.Text(FieldMotorcycleYear),
		MotorcycleColor: r.Text(FieldMotorcycleColor),
		SellerName:      r.Text(FieldSellerName),
		MechanicName:    r.Text(FieldMechanicName),
		Description:     r.Text(FieldDescription),
		Status:          r.Text(FieldServiceOrderStatus),
		LaborPrice:      r.Decimal(FieldLaborPrice),
		TotalCost:       r.Decimal(FieldTotalCost),
		Products:        lines,
		CreatedAt:       r.Text(FieldCreatedAt),
		StartedAt:       r.Text(FieldStartedAt),
		UpdatedAt:       r.Text(FieldUpdatedAt),
		FinishedAt:      r.Text(FieldFinishedAt),
		CanceledAt:      r.Text(FieldCanceledAt),
	}
}

func NewProductLine(r Record) ProductLine {
	return ProductLine{
		ProductName:  r.Text(FieldProductName),
		ProductBrand: r.Text(FieldProductBrand),
		Quantity:     r.Decimal(FieldQuantity),
		UnitaryPrice: r.Decimal(FieldUnitaryPrice),
		FinalPrice:   r.Decimal(FieldFinalPrice),
	}
}

// ServiceOrderReport is a rendered PDF ready to be streamed back to the caller.
type ServiceOrderReport struct {
	OrderID     int64
	FileName    string
	ContentType string
	Content     []byte
	GeneratedAt time.Time
	Order       ServiceOrder
}
