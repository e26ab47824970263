package utils

import (
	"ClinicDesk/models"
	"bytes"
	"fmt"
	"strconv"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

// CurrencyPrefix is printed in front of every amount. The core PDF fonts have no rupee glyph.
const CurrencyPrefix = "Rs. "

// FormatAmount renders an amount with two decimals, e.g. "Rs. 770.00".
func FormatAmount(d decimal.Decimal) string {
	return CurrencyPrefix + d.StringFixed(2)
}

// RenderInvoicePDF returns the print-formatted invoice as a PDF document.
func RenderInvoicePDF(clinicName string, inv *models.Invoice) ([]byte, error) {
	if inv == nil {
		return nil, NewValidationError("invoice is required")
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetTitle("Invoice "+inv.InvoiceNo, false)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	// Header
	pdf.SetFont("Arial", "B", 18)
	pdf.SetTextColor(31, 78, 121)
	pdf.CellFormat(0, 10, tr(clinicName), "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, "INVOICE", "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(120, 6, tr("Bill To: "+inv.PatientName), "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr("Invoice No: "+inv.InvoiceNo), "", 1, "R", false, 0, "")
	pdf.CellFormat(120, 6, tr(inv.Address), "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr("Date: "+inv.Date), "", 1, "R", false, 0, "")
	pdf.CellFormat(120, 6, tr(inv.Phone), "", 1, "L", false, 0, "")
	pdf.CellFormat(120, 6, tr(inv.Email), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// Line items
	widths := []float64{90, 20, 35, 35}
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(230, 236, 242)
	for i, header := range []string{"Description", "Qty", "Unit Price", "Total"} {
		align := "R"
		if i == 0 {
			align = "L"
		}
		pdf.CellFormat(widths[i], 8, header, "1", 0, align, true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, item := range inv.LineItems {
		pdf.CellFormat(widths[0], 7, tr(item.Description), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 7, strconv.Itoa(item.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[2], 7, FormatAmount(item.UnitPrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 7, FormatAmount(item.LineTotal), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	// Totals
	totals := []struct {
		label  string
		amount decimal.Decimal
	}{
		{"Subtotal", inv.Subtotal},
		{"Discount", inv.Discount},
		{"Total Tax", inv.Tax},
		{"Shipping/Handling", inv.Shipping},
	}
	for _, t := range totals {
		pdf.CellFormat(145, 6, t.label+":", "", 0, "R", false, 0, "")
		pdf.CellFormat(35, 6, FormatAmount(t.amount), "", 1, "R", false, 0, "")
	}
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(145, 8, "Balance Due:", "T", 0, "R", false, 0, "")
	pdf.CellFormat(35, 8, FormatAmount(inv.BalanceDue), "T", 1, "R", false, 0, "")

	if inv.Remarks != "" {
		pdf.Ln(6)
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(0, 6, "Remarks / Payment Instructions", "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.MultiCell(0, 5, tr(inv.Remarks), "", "L", false)
	}

	pdf.Ln(8)
	pdf.SetFont("Arial", "I", 8)
	pdf.CellFormat(0, 6, "This is a computer generated invoice", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render invoice %s: %w", inv.InvoiceNo, err)
	}
	return buf.Bytes(), nil
}
