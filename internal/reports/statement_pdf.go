package reports

import (
	"bytes"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/phpdave11/gofpdf"
	"github.com/shopspring/decimal"

	"github.com/aelwazan-Hawx/Clarity/internal/auth"
	"github.com/aelwazan-Hawx/Clarity/internal/ledger"
)

const maxStatementRows = 200

// StatementPDF renders the period's transactions as a downloadable
// A4 statement with period totals up top.
func (h *Handler) StatementPDF(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}
	p, err := parsePeriod(c)
	if err != nil {
		return err
	}

	txns, excluded, err := h.load(userContext(c), userID, p)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to build statement")
	}
	totals := ledger.ComputeTotals(txns, p.Currency, excluded)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(14, 14, 14)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 48)
	pdf.SetTextColor(235, 235, 235)
	pdf.Text(25, 140, "CLARITY")

	pdf.SetTextColor(20, 20, 20)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "Clarity Statement")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(80, 80, 80)
	pdf.Cell(0, 6, "Period: "+p.From+" to "+p.To)
	pdf.Ln(5)
	pdf.Cell(0, 6, "Account: "+maskID(userID))
	pdf.Ln(10)

	pdf.SetDrawColor(200, 200, 200)
	pdf.SetFillColor(248, 248, 248)
	pdf.SetTextColor(20, 20, 20)
	pdf.SetFont("Helvetica", "B", 11)

	sumW := []float64{62, 62, 62}
	pdf.CellFormat(sumW[0], 10, "Income ("+p.Currency+")", "1", 0, "C", true, 0, "")
	pdf.CellFormat(sumW[1], 10, "Expense ("+p.Currency+")", "1", 0, "C", true, 0, "")
	pdf.CellFormat(sumW[2], 10, "Balance ("+p.Currency+")", "1", 1, "C", true, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(sumW[0], 10, formatMoney(totals.Income), "1", 0, "C", false, 0, "")
	pdf.CellFormat(sumW[1], 10, formatMoney(totals.Expense), "1", 0, "C", false, 0, "")
	pdf.CellFormat(sumW[2], 10, formatMoney(totals.Balance), "1", 1, "C", false, 0, "")
	pdf.Ln(6)

	colW := []float64{22, 26, 70, 34, 30, 20}
	writeTableHeader(pdf, colW)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(30, 30, 30)

	for i, t := range txns {
		if i >= maxStatementRows {
			pdf.SetFont("Helvetica", "I", 9)
			pdf.CellFormat(0, 8, "...truncated (too many rows)", "1", 1, "C", false, 0, "")
			break
		}

		if pdf.GetY() > 270 {
			pdf.AddPage()
			writeTableHeader(pdf, colW)
			pdf.SetFont("Helvetica", "", 9)
			pdf.SetTextColor(30, 30, 30)
		}

		pdf.CellFormat(colW[0], 8, strings.ToUpper(string(t.Kind)), "1", 0, "C", false, 0, "")
		pdf.CellFormat(colW[1], 8, t.Date, "1", 0, "C", false, 0, "")

		x := pdf.GetX()
		y := pdf.GetY()
		pdf.MultiCell(colW[2], 8, trimTo(t.Category, 60), "1", "L", false)
		usedH := pdf.GetY() - y
		pdf.SetXY(x+colW[2], y)

		pdf.CellFormat(colW[3], usedH, formatMoneySigned(t.Amount, t.Kind), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colW[4], usedH, trimTo(t.PaymentMethod, 18), "1", 0, "C", false, 0, "")
		pdf.CellFormat(colW[5], usedH, shortID(t.ID), "1", 1, "C", false, 0, "")
	}

	pdf.SetY(-18)
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(120, 120, 120)
	pdf.CellFormat(0, 10, "Generated by Clarity - "+time.Now().Format(time.RFC3339), "", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "pdf build failed")
	}

	filename := "clarity-statement-" + p.From + "-to-" + p.To + ".pdf"
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}

func writeTableHeader(pdf *gofpdf.Fpdf, colW []float64) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(245, 245, 245)
	pdf.SetTextColor(20, 20, 20)
	pdf.CellFormat(colW[0], 8, "TYPE", "1", 0, "C", true, 0, "")
	pdf.CellFormat(colW[1], 8, "DATE", "1", 0, "C", true, 0, "")
	pdf.CellFormat(colW[2], 8, "CATEGORY", "1", 0, "L", true, 0, "")
	pdf.CellFormat(colW[3], 8, "AMOUNT", "1", 0, "R", true, 0, "")
	pdf.CellFormat(colW[4], 8, "METHOD", "1", 0, "C", true, 0, "")
	pdf.CellFormat(colW[5], 8, "ID", "1", 1, "C", true, 0, "")
}

func shortID(id string) string {
	id = strings.TrimSpace(id)
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

func maskID(id string) string {
	id = strings.TrimSpace(id)
	if len(id) <= 8 {
		return id
	}
	return id[:4] + "..." + id[len(id)-4:]
}

func trimTo(s string, max int) string {
	s = strings.TrimSpace(s)
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "~"
}

func formatMoney(d decimal.Decimal) string {
	neg := d.IsNegative()
	s := withCommas(d.Abs().StringFixed(2))
	if neg {
		return "-" + s
	}
	return s
}

func formatMoneySigned(d decimal.Decimal, kind ledger.Kind) string {
	if kind == ledger.KindExpense && d.IsPositive() {
		return "-" + withCommas(d.StringFixed(2))
	}
	return formatMoney(d)
}

// withCommas groups the integer part of a fixed-point string.
func withCommas(s string) string {
	intPart, frac, _ := strings.Cut(s, ".")
	var b strings.Builder
	l := len(intPart)
	for i := 0; i < l; i++ {
		b.WriteByte(intPart[i])
		rem := l - i - 1
		if rem > 0 && rem%3 == 0 {
			b.WriteByte(',')
		}
	}
	if frac != "" {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}
