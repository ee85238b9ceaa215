package infra

// report_pdf.go — Sales report rendering with go-pdf/fpdf.
// Generates an A4 landscape table of the period report:
//   - Title with the requested period
//   - One row per sale line (code, product, unit price charged, qty, instant)
//   - Row count and grand total footer
//
// The output file is saved to storagePath/sales_report_{start}_{end}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"apitf/internal/dto"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

// GenerateSalesReportPDF renders the report rows as a PDF table and returns
// the absolute path to the generated file.
func GenerateSalesReportPDF(items []dto.SalesReportItem, start, end time.Time, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("sales_report_%s_%s.pdf", start.Format("20060102"), end.Format("20060102"))
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 20

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(contentW, 8, "Relatório de Vendas", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	period := fmt.Sprintf("%s — %s", start.Format("02/01/2006"), end.Format("02/01/2006"))
	pdf.CellFormat(contentW, 6, period, "", 1, "C", false, 0, "")
	pdf.Ln(3)

	// ── Column layout ─────────────────────────────────────────────────────────
	col1 := contentW * 0.30 // sale code
	col2 := contentW * 0.30 // product
	col3 := contentW * 0.14 // unit price charged
	col4 := contentW * 0.08 // qty
	col5 := contentW * 0.18 // instant

	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(col1, 6, "Código", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 6, "Produto", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 6, "Preço unit.", "B", 0, "R", false, 0, "")
	pdf.CellFormat(col4, 6, "Qtd", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col5, 6, "Data", "B", 1, "L", false, 0, "")

	// ── Rows ──────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 8)
	total := decimal.Zero
	for _, item := range items {
		description := item.ProductDescription
		if len(description) > 40 {
			description = description[:39] + "…"
		}
		pdf.CellFormat(col1, 5, item.SaleCode, "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 5, description, "", 0, "L", false, 0, "")
		pdf.CellFormat(col3, 5, "$"+item.Price.StringFixed(2), "", 0, "R", false, 0, "")
		pdf.CellFormat(col4, 5, fmt.Sprintf("%d", item.Quantity), "", 0, "C", false, 0, "")
		pdf.CellFormat(col5, 5, item.SaleDate, "", 1, "L", false, 0, "")

		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	pdf.Ln(2)
	pdf.Line(10, pdf.GetY(), pageW-10, pdf.GetY())
	pdf.Ln(2)

	// ── Footer ────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1+col2, 6, fmt.Sprintf("%d linha(s)", len(items)), "", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 6, "$"+total.StringFixed(2), "", 0, "R", false, 0, "")
	pdf.CellFormat(col4+col5, 6, "", "", 1, "L", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}

	return filePath, nil
}
