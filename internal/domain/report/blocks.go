// Package report turns a service order record into the ordered list of content blocks
// that make up the PDF, independently of the library that draws them.
package report

// Block is one renderable unit of the report. The set of block types is closed; the
// renderer switches over them.
type Block interface {
	block()
}

type Align string

const (
	AlignLeft   Align = "L"
	AlignCenter Align = "C"
	AlignRight  Align = "R"
)

// Color is an RGB triple.
type Color struct {
	R, G, B int
}

var (
	ColorLightGrey = Color{R: 211, G: 211, B: 211}
	ColorGrey      = Color{R: 128, G: 128, B: 128}
	ColorBlack     = Color{}
)

// Image is the optional logo. Width and Height are in millimetres.
type Image struct {
	Path   string
	Width  float64
	Height float64
}

type Heading struct {
	Text     string
	Align    Align
	FontSize float64
}

// KeyValue is a single "Label: value" cell.
type KeyValue struct {
	Label string
	Value string
}

// KeyValueGrid lays out label/value cells in rows; every row has len(ColumnWidths) cells.
type KeyValueGrid struct {
	Rows         [][]KeyValue
	ColumnWidths []float64
	FontSize     float64
}

// TableStyle holds the drawing hints of a Table. Each Table owns its style value.
type TableStyle struct {
	HeaderFill Color
	GridColor  Color
	GridWidth  float64
	Align      Align
	FontSize   float64
	RowHeight  float64
	// BoldRows lists row indexes (into Table.Rows) drawn in bold besides the header.
	BoldRows []int
}

// Table rows include the header: Rows[:HeaderRows] are header rows.
type Table struct {
	Rows         [][]string
	HeaderRows   int
	ColumnWidths []float64
	Style        TableStyle
}

// DataRows returns the rows after the header.
func (t Table) DataRows() [][]string {
	if t.HeaderRows >= len(t.Rows) {
		return nil
	}
	return t.Rows[t.HeaderRows:]
}

type TextRun struct {
	Text string
	Bold bool
}

// Paragraph is inline rich text; runs are written one after the other and wrap at the
// right margin. Newlines inside a run start a new line.
type Paragraph struct {
	Runs     []TextRun
	FontSize float64
}

type Spacer struct {
	Height float64
}

// SignatureLine draws a horizontal rule with Label centered beneath it.
type SignatureLine struct {
	Label string
	Width float64
}

func (Image) block()         {}
func (Heading) block()       {}
func (KeyValueGrid) block()  {}
func (Table) block()         {}
func (Paragraph) block()     {}
func (Spacer) block()        {}
func (SignatureLine) block() {}
