// Package pdf draws report blocks with gofpdf.
package pdf

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/jung-kurt/gofpdf"
	"github.com/matteusmoreno/generate-pdf-moto-manager-service/internal/domain/report"
	"github.com/matteusmoreno/generate-pdf-moto-manager-service/internal/usecase/interfaces"
	"go.uber.org/zap"
)

var errUnsupportedBlock = errors.New("unsupported block")

const (
	fontFamily     = "Helvetica"
	defaultFont    = 10.0
	footerFontSize = 8.0
	lineHeight     = 6.0
)

// Renderer implements interfaces.IDocumentRenderer on top of gofpdf core fonts.
// A Renderer holds no per-document state and is safe for concurrent use.
type Renderer struct {
	logger *zap.Logger
}

var _ interfaces.IDocumentRenderer = (*Renderer)(nil)

func NewRenderer(logger *zap.Logger) *Renderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Renderer{logger: logger.Named("report.renderer")}
}

// Render lays out blocks top to bottom on as many pages as needed and returns the
// finished document.
func (r *Renderer) Render(ctx context.Context, blocks []report.Block, layout report.Layout) ([]byte, error) {
	if layout.PageSize == "" {
		layout = mergeLayout(report.DefaultLayout(), layout)
	}

	doc := newDocument(layout, r.logger)
	doc.pdf.AddPage()

	for i, b := range blocks {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: %w", report.ErrRender, err)
		}
		if err := doc.draw(b); err != nil {
			return nil, fmt.Errorf("%w: block %d: %w", report.ErrRender, i, err)
		}
	}

	var buf bytes.Buffer
	if err := doc.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %w", report.ErrRender, err)
	}
	return buf.Bytes(), nil
}

func mergeLayout(base, l report.Layout) report.Layout {
	base.Title = l.Title
	base.FooterText = l.FooterText
	if l.Author != "" {
		base.Author = l.Author
	}
	return base
}

// document is the state of one Render call.
type document struct {
	pdf    *gofpdf.Fpdf
	tr     func(string) string
	layout report.Layout
	logger *zap.Logger
}

func newDocument(layout report.Layout, logger *zap.Logger) *document {
	pdf := gofpdf.New("P", "mm", layout.PageSize, "")
	pdf.SetMargins(layout.Margins.Left, layout.Margins.Top, layout.Margins.Right)
	pdf.SetAutoPageBreak(true, layout.Margins.Bottom)
	if layout.Title != "" {
		pdf.SetTitle(layout.Title, true)
	}
	if layout.Author != "" {
		pdf.SetAuthor(layout.Author, true)
	}

	d := &document{
		pdf:    pdf,
		tr:     pdf.UnicodeTranslatorFromDescriptor(""),
		layout: layout,
		logger: logger,
	}

	if layout.FooterText != "" {
		pdf.SetFooterFunc(func() {
			pdf.SetY(-(layout.Margins.Bottom / 2) - lineHeight/2)
			pdf.SetFont(fontFamily, "I", footerFontSize)
			pdf.SetTextColor(report.ColorGrey.R, report.ColorGrey.G, report.ColorGrey.B)
			pdf.CellFormat(0, lineHeight, d.tr(layout.FooterText), "", 0, "C", false, 0, "")
			pdf.SetTextColor(0, 0, 0)
		})
	}
	return d
}

func (d *document) draw(b report.Block) error {
	switch v := b.(type) {
	case report.Image:
		d.drawImage(v)
	case report.Heading:
		d.drawHeading(v)
	case report.KeyValueGrid:
		d.drawGrid(v)
	case report.Table:
		d.drawTable(v)
	case report.Paragraph:
		d.drawParagraph(v)
	case report.Spacer:
		d.pdf.Ln(v.Height)
	case report.SignatureLine:
		d.drawSignature(v)
	default:
		return fmt.Errorf("%w: %T", errUnsupportedBlock, b)
	}
	return d.pdf.Error()
}

func (d *document) contentWidth() float64 {
	w, _ := d.pdf.GetPageSize()
	return w - d.layout.Margins.Left - d.layout.Margins.Right
}

// ensureSpace starts a new page when h millimetres do not fit above the bottom margin.
func (d *document) ensureSpace(h float64) bool {
	_, pageH := d.pdf.GetPageSize()
	if d.pdf.GetY()+h > pageH-d.layout.Margins.Bottom {
		d.pdf.AddPage()
		return true
	}
	return false
}

func (d *document) drawImage(img report.Image) {
	if _, err := os.Stat(img.Path); err != nil {
		d.logger.Warn("logo skipped", zap.String("path", img.Path), zap.Error(err))
		return
	}

	x := d.layout.Margins.Left + (d.contentWidth()-img.Width)/2
	d.pdf.ImageOptions(img.Path, x, d.pdf.GetY(), img.Width, img.Height, true, gofpdf.ImageOptions{ReadDpi: true}, 0, "")
	if err := d.pdf.Error(); err != nil {
		// unreadable logos are skipped like missing ones
		d.logger.Warn("logo skipped", zap.String("path", img.Path), zap.Error(err))
		d.pdf.ClearError()
		return
	}
	d.pdf.Ln(4)
}

func (d *document) drawHeading(h report.Heading) {
	size := fontSize(h.FontSize, 18)
	d.pdf.SetFont(fontFamily, "B", size)
	d.pdf.CellFormat(0, size*0.5, d.tr(h.Text), "", 1, alignOf(h.Align, report.AlignCenter), false, 0, "")
	d.pdf.Ln(6)
}

func (d *document) drawGrid(g report.KeyValueGrid) {
	size := fontSize(g.FontSize, defaultFont)
	for _, row := range g.Rows {
		d.ensureSpace(lineHeight)
		d.pdf.SetX(d.layout.Margins.Left)
		for i, cell := range row {
			width := columnWidth(g.ColumnWidths, i, d.contentWidth()/float64(len(row)))

			label := d.tr(cell.Label + ":")
			d.pdf.SetFont(fontFamily, "B", size)
			labelWidth := d.pdf.GetStringWidth(label) + 1
			if labelWidth > width {
				labelWidth = width
			}
			d.pdf.CellFormat(labelWidth, lineHeight, label, "", 0, "L", false, 0, "")

			d.pdf.SetFont(fontFamily, "", size)
			d.pdf.CellFormat(width-labelWidth, lineHeight, d.tr(cell.Value), "", 0, "L", false, 0, "")
		}
		d.pdf.Ln(lineHeight)
	}
	d.pdf.Ln(4)
}

func (d *document) drawTable(t report.Table) {
	style := t.Style
	size := fontSize(style.FontSize, 9)
	rowHeight := style.RowHeight
	if rowHeight <= 0 {
		rowHeight = 7
	}
	align := alignOf(style.Align, report.AlignCenter)

	total := 0.0
	for i := range columnsOf(t) {
		total += columnWidth(t.ColumnWidths, i, 0)
	}
	left := d.layout.Margins.Left
	if total > 0 && total < d.contentWidth() {
		left += (d.contentWidth() - total) / 2
	}

	bold := make(map[int]bool, len(style.BoldRows))
	for _, i := range style.BoldRows {
		bold[i] = true
	}

	d.pdf.SetDrawColor(style.GridColor.R, style.GridColor.G, style.GridColor.B)
	if style.GridWidth > 0 {
		d.pdf.SetLineWidth(style.GridWidth)
	}
	d.pdf.SetFillColor(style.HeaderFill.R, style.HeaderFill.G, style.HeaderFill.B)

	drawRow := func(row []string, header, strong bool) {
		d.pdf.SetX(left)
		if header || strong {
			d.pdf.SetFont(fontFamily, "B", size)
		} else {
			d.pdf.SetFont(fontFamily, "", size)
		}
		for i, cell := range row {
			width := columnWidth(t.ColumnWidths, i, d.contentWidth()/float64(len(row)))
			d.pdf.CellFormat(width, rowHeight, d.tr(cell), "1", 0, align, header, 0, "")
		}
		d.pdf.Ln(rowHeight)
	}

	header := t.Rows[:max(0, min(t.HeaderRows, len(t.Rows)))]
	for i, row := range t.Rows {
		isHeader := i < t.HeaderRows
		if !isHeader && d.ensureSpace(rowHeight) {
			// repeat the header on continuation pages
			for _, h := range header {
				drawRow(h, true, false)
			}
		}
		drawRow(row, isHeader, bold[i])
	}

	d.pdf.SetDrawColor(0, 0, 0)
	d.pdf.SetLineWidth(0.2)
	d.pdf.Ln(6)
}

func (d *document) drawParagraph(p report.Paragraph) {
	size := fontSize(p.FontSize, defaultFont)
	d.pdf.SetX(d.layout.Margins.Left)
	for _, run := range p.Runs {
		if run.Text == "" {
			continue
		}
		style := ""
		if run.Bold {
			style = "B"
		}
		d.pdf.SetFont(fontFamily, style, size)
		d.pdf.Write(lineHeight, d.tr(run.Text))
	}
	d.pdf.Ln(lineHeight)
}

func (d *document) drawSignature(s report.SignatureLine) {
	width := s.Width
	if width <= 0 || width > d.contentWidth() {
		width = d.contentWidth() / 2
	}
	d.ensureSpace(2 * lineHeight)

	x := d.layout.Margins.Left + (d.contentWidth()-width)/2
	y := d.pdf.GetY()
	d.pdf.SetDrawColor(0, 0, 0)
	d.pdf.SetLineWidth(0.3)
	d.pdf.Line(x, y, x+width, y)
	d.pdf.Ln(1)

	d.pdf.SetFont(fontFamily, "", defaultFont)
	d.pdf.CellFormat(0, lineHeight, d.tr(s.Label), "", 1, "C", false, 0, "")
}

func columnsOf(t report.Table) []string {
	if len(t.ColumnWidths) > 0 || len(t.Rows) == 0 {
		return make([]string, len(t.ColumnWidths))
	}
	return t.Rows[0]
}

func columnWidth(widths []float64, i int, fallback float64) float64 {
	if i < len(widths) && widths[i] > 0 {
		return widths[i]
	}
	return fallback
}

func fontSize(v, def float64) float64 {
	if v <= 0 {
		return def
	}
	return v
}

func alignOf(a, def report.Align) string {
	if a == "" {
		a = def
	}
	return string(a)
}
