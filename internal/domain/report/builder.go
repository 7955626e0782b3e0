package report

import (
	"strings"

	"github.com/matteusmoreno/generate-pdf-moto-manager-service/internal/domain/entities"
)

const (
	Title       = "Ordem de Serviço"
	LaborLabel  = "Mão de Obra"
	TotalLabel  = "TOTAL"
	blankCell   = " "
	spacerAfter = 20.0
)

// ProductTableHeader is the header row of the product table.
var ProductTableHeader = []string{"Descrição", "Marca", "Qtd", "V. Unitário (R$)", "V. Final (R$)"}

// Options tune the optional parts of the report.
type Options struct {
	// LogoPath is drawn at the top when set. Callers clear it when the file is missing.
	LogoPath   string
	LogoWidth  float64
	LogoHeight float64
	// IncludeTimeline adds the status and lifecycle timestamps after the description.
	IncludeTimeline bool
}

// BuildReport maps a service order record to the ordered blocks of the PDF:
// logo, title, info grid, product table, description, optional timeline and signature.
//
// It never fails: missing text becomes Placeholder, missing numbers become zero and
// missing or malformed dates become DatePlaceholder.
func BuildReport(record entities.Record, opts Options) []Block {
	blocks := make([]Block, 0, 8)

	if opts.LogoPath != "" {
		blocks = append(blocks, Image{
			Path:   opts.LogoPath,
			Width:  orDefaultSize(opts.LogoWidth, 60),
			Height: orDefaultSize(opts.LogoHeight, 40),
		})
	}

	blocks = append(blocks,
		buildHeading(record),
		buildInfoGrid(record),
		buildProductTable(record),
		buildDescription(record),
	)

	if opts.IncludeTimeline {
		blocks = append(blocks, buildTimeline(record))
	}

	blocks = append(blocks,
		Spacer{Height: spacerAfter},
		SignatureLine{Label: SafeGet(record, entities.FieldCustomerName, Placeholder), Width: 80},
	)
	return blocks
}

func buildHeading(record entities.Record) Heading {
	text := Title
	if id := SafeGet(record, entities.FieldID, ""); id != "" {
		text += " #" + id
	}
	return Heading{Text: text, Align: AlignCenter, FontSize: 18}
}

func buildInfoGrid(record entities.Record) KeyValueGrid {
	moto := strings.Join([]string{
		capitalizeValue(SafeGet(record, entities.FieldMotorcycleBrand, Placeholder)),
		SafeGet(record, entities.FieldMotorcycleModel, Placeholder),
		SafeGet(record, entities.FieldMotorcycleYear, Placeholder),
	}, " ")

	return KeyValueGrid{
		Rows: [][]KeyValue{
			{
				{Label: "Cliente", Value: SafeGet(record, entities.FieldCustomerName, Placeholder)},
				{Label: "Data", Value: FormatDate(record.Text(entities.FieldCreatedAt))},
			},
			{
				{Label: "Moto", Value: moto},
				{Label: "Cor", Value: capitalizeValue(SafeGet(record, entities.FieldMotorcycleColor, Placeholder))},
			},
			{
				{Label: "Vendedor", Value: SafeGet(record, entities.FieldSellerName, Placeholder)},
				{Label: "Mecânico", Value: SafeGet(record, entities.FieldMechanicName, Placeholder)},
			},
		},
		ColumnWidths: []float64{90, 60},
		FontSize:     10,
	}
}

func buildProductTable(record entities.Record) Table {
	products := record.Records(entities.FieldProducts)

	rows := make([][]string, 0, len(products)+3)
	rows = append(rows, append([]string(nil), ProductTableHeader...))

	for _, p := range products {
		rows = append(rows, []string{
			SafeGet(p, entities.FieldProductName, Placeholder),
			SafeGet(p, entities.FieldProductBrand, Placeholder),
			FormatQuantity(p.Decimal(entities.FieldQuantity)),
			FormatCurrency(p.Decimal(entities.FieldUnitaryPrice)),
			FormatCurrency(p.Decimal(entities.FieldFinalPrice)),
		})
	}

	rows = append(rows,
		[]string{LaborLabel, blankCell, blankCell, blankCell, FormatCurrency(record.Decimal(entities.FieldLaborPrice))},
		[]string{TotalLabel, blankCell, blankCell, blankCell, FormatCurrency(record.Decimal(entities.FieldTotalCost))},
	)

	return Table{
		Rows:         rows,
		HeaderRows:   1,
		ColumnWidths: []float64{60, 30, 15, 30, 30},
		Style: TableStyle{
			HeaderFill: ColorLightGrey,
			GridColor:  ColorGrey,
			GridWidth:  0.2,
			Align:      AlignCenter,
			FontSize:   9,
			RowHeight:  7,
			BoldRows:   []int{len(rows) - 1},
		},
	}
}

func buildDescription(record entities.Record) Paragraph {
	description := strings.TrimSpace(record.Text(entities.FieldDescription))
	if description != "" {
		description = " " + description
	}
	return Paragraph{
		Runs: []TextRun{
			{Text: "Descrição:", Bold: true},
			{Text: description},
		},
		FontSize: 10,
	}
}

func buildTimeline(record entities.Record) KeyValueGrid {
	at := func(key string) string {
		return FormatDateTime(record.Text(key))
	}
	return KeyValueGrid{
		Rows: [][]KeyValue{
			{
				{Label: "Status", Value: SafeGet(record, entities.FieldServiceOrderStatus, Placeholder)},
				{Label: "Criada em", Value: at(entities.FieldCreatedAt)},
			},
			{
				{Label: "Iniciada em", Value: at(entities.FieldStartedAt)},
				{Label: "Atualizada em", Value: at(entities.FieldUpdatedAt)},
			},
			{
				{Label: "Finalizada em", Value: at(entities.FieldFinishedAt)},
				{Label: "Cancelada em", Value: at(entities.FieldCanceledAt)},
			},
		},
		ColumnWidths: []float64{90, 60},
		FontSize:     9,
	}
}

func orDefaultSize(v, def float64) float64 {
	if v <= 0 {
		return def
	}
	return v
}
