package report

import (
	"testing"

	"github.com/matteusmoreno/generate-pdf-moto-manager-service/internal/domain/entities"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "0.00", FormatCurrency(decimal.NullDecimal{}))
	assert.Equal(t, "896.00", FormatCurrency(decimal.NewNullDecimal(decimal.NewFromInt(896))))
	assert.Equal(t, "10.50", FormatCurrency(decimal.NewNullDecimal(decimal.RequireFromString("10.5"))))
	assert.Equal(t, "0.13", FormatCurrency(decimal.NewNullDecimal(decimal.RequireFromString("0.125"))))
}

func TestFormatQuantity(t *testing.T) {
	assert.Equal(t, "0", FormatQuantity(decimal.NullDecimal{}))
	assert.Equal(t, "2", FormatQuantity(decimal.NewNullDecimal(decimal.NewFromInt(2))))
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		date string
		dt   string
	}{
		{name: "fractional seconds", in: "2025-04-03T12:13:42.518959", date: "03/04/2025", dt: "03/04/2025 12:13"},
		{name: "no fraction", in: "2025-04-04T11:09:25", date: "04/04/2025", dt: "04/04/2025 11:09"},
		{name: "with zone", in: "2025-04-04T11:09:25.5-03:00", date: "04/04/2025", dt: "04/04/2025 11:09"},
		{name: "date only", in: "2025-05-05", date: "05/05/2025", dt: "05/05/2025 00:00"},
		{name: "empty", in: "", date: DatePlaceholder, dt: DatePlaceholder},
		{name: "blank", in: "   ", date: DatePlaceholder, dt: DatePlaceholder},
		{name: "garbage", in: "not-a-date", date: DatePlaceholder, dt: DatePlaceholder},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.date, FormatDate(tt.in))
			assert.Equal(t, tt.dt, FormatDateTime(tt.in))
		})
	}
}

func TestSafeGet(t *testing.T) {
	assert.Equal(t, Placeholder, SafeGet(entities.Record{}, "customerName", Placeholder))
	assert.Equal(t, Placeholder, SafeGet(entities.Record{"x": ""}, "x", Placeholder))
	assert.Equal(t, Placeholder, SafeGet(entities.Record{"x": nil}, "x", Placeholder))
	assert.Equal(t, "Maria", SafeGet(entities.Record{"x": "Maria"}, "x", Placeholder))
	assert.Equal(t, "-", SafeGet(entities.Record{}, "x", "-"))
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Honda", Capitalize("HONDA"))
	assert.Equal(t, "Vermelho", Capitalize("vermelho"))
	assert.Equal(t, "Azul claro", Capitalize("AZUL CLARO"))
	assert.Equal(t, "Ébano", Capitalize("ÉBANO"))
	assert.Equal(t, "", Capitalize(""))
	assert.Equal(t, Placeholder, capitalizeValue(Placeholder))
}
