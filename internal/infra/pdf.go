package infra

// pdf.go — order receipt generation using go-pdf/fpdf. Produces an A7-size
// thermal-receipt-style document with the profile name header, order number
// and date, the item table (product, kg, line total), the delivery fee line
// when charged, and a bold grand total.

import (
	"bytes"
	"fmt"

	"lavkapos/internal/model"

	"github.com/go-pdf/fpdf"
)

// GenerateOrderReceipt renders a PDF receipt for a saved order and returns
// the raw document bytes for streaming to the client.
func GenerateOrderReceipt(profileName string, order *model.Order) ([]byte, error) {
	// A7 ≈ 74mm × 105mm — close to thermal receipt paper (custom size, "A7" is not in fpdf's named list)
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: 74, Ht: 105},
	})
	pdf.SetMargins(4, 4, 4)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 8 // total margins = 8mm

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(contentW, 7, profileName, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentW, 5, "Order receipt", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	// ── Order info ────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(contentW, 5, fmt.Sprintf("Order No. %d", order.Number), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(contentW, 4, order.Date, "", 1, "L", false, 0, "")
	pdf.Ln(2)

	// ── Separator ────────────────────────────────────────────────────────────
	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	// ── Items header ──────────────────────────────────────────────────────────
	col1 := contentW * 0.52 // product name
	col2 := contentW * 0.16 // weight
	col3 := contentW * 0.32 // line total

	pdf.SetFont("Helvetica", "B", 7)
	pdf.CellFormat(col1, 5, "Product", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 5, "Kg", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col3, 5, "Total", "B", 1, "R", false, 0, "")

	// ── Item rows ─────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 7)
	for _, item := range order.Items {
		pdf.CellFormat(col1, 4, item.Product, "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 4, fmt.Sprintf("%.2f", item.Quantity), "", 0, "C", false, 0, "")
		pdf.CellFormat(col3, 4, fmt.Sprintf("%.2f", item.Total), "", 1, "R", false, 0, "")
	}
	pdf.Ln(1)

	// ── Totals ────────────────────────────────────────────────────────────────
	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(1)

	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(contentW*0.6, 4, "Subtotal", "", 0, "L", false, 0, "")
	pdf.CellFormat(contentW*0.4, 4, fmt.Sprintf("%.2f", order.Subtotal), "", 1, "R", false, 0, "")
	if order.DeliveryCost > 0 {
		pdf.CellFormat(contentW*0.6, 4, "Delivery", "", 0, "L", false, 0, "")
		pdf.CellFormat(contentW*0.4, 4, fmt.Sprintf("%.2f", order.DeliveryCost), "", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(contentW*0.6, 6, "TOTAL", "", 0, "L", false, 0, "")
	pdf.CellFormat(contentW*0.4, 6, fmt.Sprintf("%.2f", order.Total), "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: render receipt: %w", err)
	}
	return buf.Bytes(), nil
}
