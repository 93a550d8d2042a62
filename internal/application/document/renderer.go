package document

import (
	"bytes"
	"math"
	"strconv"

	"github.com/cotizador/backend/internal/domain/quotation"
	"github.com/cotizador/backend/internal/domain/shared"
	"github.com/jung-kurt/gofpdf"
)

// Layout constants, in points on a Letter page (612x792).
const (
	pageMargin  = 50.0
	contentW    = 512.0 // page width minus both margins
	bottomGuard = 100.0 // start a new page when a row would cross this
	minRowH     = 25.0
	lineH       = 14.0

	colDescX  = 50.0
	colPriceX = 300.0
	colQtyX   = 400.0
	colTotalX = 480.0

	wDesc  = 250.0
	wPrice = 100.0
	wQty   = 80.0
	wTotal = 82.0 // ends flush with the right margin
)

// Config holds document rendering settings
type Config struct {
	Locale       string
	CurrencyCode string
}

// Renderer produces the PDF document for a quotation with a fixed table
// layout: description, unit price, quantity and line total columns.
type Renderer struct {
	currency *CurrencyFormatter
}

// NewRenderer creates a Renderer. Empty config fields default to es-MX / MXN.
func NewRenderer(cfg Config) (*Renderer, error) {
	if cfg.Locale == "" {
		cfg.Locale = "es-MX"
	}
	if cfg.CurrencyCode == "" {
		cfg.CurrencyCode = "MXN"
	}

	formatter, err := NewCurrencyFormatter(cfg.Locale, cfg.CurrencyCode)
	if err != nil {
		return nil, err
	}
	return &Renderer{currency: formatter}, nil
}

// Filename returns the download filename for a quotation document
func Filename(id string) string {
	return "cotizacion_" + id + ".pdf"
}

// Render produces the PDF bytes for a fully resolved quotation
func (r *Renderer) Render(q *quotation.Quotation) ([]byte, error) {
	if err := validate(q); err != nil {
		return nil, err
	}

	pdf := r.build(q)
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// validate rejects documents that would render nonsensical amounts
func validate(q *quotation.Quotation) error {
	if q.Total.IsNegative() {
		return shared.NewDomainError("VALIDATION", "Quotation total cannot be negative")
	}
	for _, l := range q.Lines {
		if l.UnitPrice.IsNegative() {
			return shared.NewDomainError("VALIDATION", "Line price cannot be negative")
		}
	}
	return nil
}

// build lays the document out with a manual cursor so rows never straddle
// the bottom guard band. Separated from Render so tests can inspect the
// resulting document.
func (r *Renderer) build(q *quotation.Quotation) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "pt", "Letter", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	_, pageH := pdf.GetPageSize()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetXY(pageMargin, pageMargin)
	pdf.CellFormat(contentW, 24, tr("COTIZACIÓN"), "", 0, "C", false, 0, "")

	y := pageMargin + 44
	pdf.SetFont("Helvetica", "", 11)
	for _, meta := range []string{
		"Folio: " + q.ID,
		"Cliente: " + q.ClientName,
		"Fecha: " + q.Date.Format("02/01/2006"),
	} {
		pdf.SetXY(pageMargin, y)
		pdf.CellFormat(contentW, lineH, tr(meta), "", 0, "L", false, 0, "")
		y += 16
	}
	y += 14

	y = tableHeader(pdf, tr, y)
	pdf.SetFont("Helvetica", "", 10)

	for _, line := range q.Lines {
		desc := lineDescription(line)
		wrapped := pdf.SplitText(tr(desc), wDesc-10)
		descH := float64(len(wrapped)) * lineH
		rowH := math.Max(minRowH, descH+10)

		if y+rowH > pageH-bottomGuard {
			pdf.AddPage()
			y = tableHeader(pdf, tr, pageMargin)
			pdf.SetFont("Helvetica", "", 10)
		}

		pdf.SetXY(colDescX, y+5)
		pdf.MultiCell(wDesc-10, lineH, tr(desc), "", "L", false)
		pdf.SetXY(colPriceX, y+5)
		pdf.CellFormat(wPrice, lineH, r.currency.Format(line.UnitPrice), "", 0, "R", false, 0, "")
		pdf.SetXY(colQtyX, y+5)
		pdf.CellFormat(wQty, lineH, strconv.Itoa(line.Quantity), "", 0, "C", false, 0, "")
		pdf.SetXY(colTotalX, y+5)
		pdf.CellFormat(wTotal, lineH, r.currency.Format(line.Total()), "", 0, "R", false, 0, "")

		y += rowH
	}

	if y+44 > pageH-bottomGuard {
		pdf.AddPage()
		y = pageMargin
	}
	pdf.SetDrawColor(0, 0, 0)
	pdf.Line(pageMargin, y+8, pageMargin+contentW, y+8)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(colPriceX, y+20)
	pdf.CellFormat(pageMargin+contentW-colPriceX, 18, "Total: "+r.currency.Format(q.Total), "", 0, "R", false, 0, "")

	return pdf
}

// tableHeader draws the column headings and returns the cursor below them
func tableHeader(pdf *gofpdf.Fpdf, tr func(string) string, y float64) float64 {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetXY(colDescX, y)
	pdf.CellFormat(wDesc, lineH, tr("Descripción"), "", 0, "L", false, 0, "")
	pdf.SetXY(colPriceX, y)
	pdf.CellFormat(wPrice, lineH, "Precio", "", 0, "R", false, 0, "")
	pdf.SetXY(colQtyX, y)
	pdf.CellFormat(wQty, lineH, "Cantidad", "", 0, "C", false, 0, "")
	pdf.SetXY(colTotalX, y)
	pdf.CellFormat(wTotal, lineH, "Total", "", 0, "R", false, 0, "")
	pdf.Line(colDescX, y+lineH+4, pageMargin+contentW, y+lineH+4)
	return y + lineH + 12
}

// lineDescription renders the item name with its category when resolved
func lineDescription(l quotation.Line) string {
	if l.TypeName != "" {
		return l.ItemName + " (" + l.TypeName + ")"
	}
	return l.ItemName
}
