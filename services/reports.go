package services

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/pkg/errors"
	"github.com/tealeg/xlsx"

	"github.com/Govind-619/OrderLadder/models"
)

// ErrInvalidPeriod is returned for an unknown report period.
var ErrInvalidPeriod = errors.New("period must be day, week, month or all")

// ReportPeriod resolves day, week, month or all into an inclusive time range.
func ReportPeriod(period string, now time.Time) (time.Time, time.Time, error) {
	endOfDay := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 999999999, now.Location())
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch period {
	case "day":
		return startOfDay, endOfDay, nil
	case "week":
		return startOfDay.AddDate(0, 0, -6), endOfDay, nil
	case "month":
		return startOfDay.AddDate(0, 0, -29), endOfDay, nil
	case "all":
		return time.Time{}, endOfDay, nil
	}
	return time.Time{}, time.Time{}, ErrInvalidPeriod
}

// ReportSummary aggregates a list of payments.
type ReportSummary struct {
	Payments    int   `json:"payments"`
	TotalAmount int64 `json:"total_amount"`
	FirstOrder  int64 `json:"first_order"`
	LastOrder   int64 `json:"last_order"`
}

func Summarize(payments []models.Payment) ReportSummary {
	var s ReportSummary
	for _, p := range payments {
		s.Payments++
		s.TotalAmount += p.Amount
		if s.FirstOrder == 0 || p.OrderNumber < s.FirstOrder {
			s.FirstOrder = p.OrderNumber
		}
		if p.OrderNumber > s.LastOrder {
			s.LastOrder = p.OrderNumber
		}
	}
	return s
}

var reportHeaders = []string{"Order #", "Date", "Name", "Mobile", "Amount", "Razorpay Order", "Razorpay Payment"}

// WritePaymentsXLSX writes the payments and a summary as an Excel workbook.
func WritePaymentsXLSX(w io.Writer, title string, payments []models.Payment) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Payments")
	if err != nil {
		return errors.Wrap(err, "add sheet")
	}

	bold := xlsx.NewStyle()
	font := xlsx.DefaultFont()
	font.Bold = true
	bold.Font = *font

	titleCell := sheet.AddRow().AddCell()
	titleCell.SetString(title)
	titleCell.SetStyle(bold)
	sheet.AddRow()

	headerRow := sheet.AddRow()
	for _, h := range reportHeaders {
		cell := headerRow.AddCell()
		cell.SetString(h)
		cell.SetStyle(bold)
	}

	for _, p := range payments {
		row := sheet.AddRow()
		row.AddCell().SetInt(int(p.OrderNumber))
		row.AddCell().SetString(p.CreatedAt.Format("2006-01-02 15:04"))
		row.AddCell().SetString(p.Name)
		row.AddCell().SetString(p.Mobile)
		row.AddCell().SetInt(int(p.Amount))
		row.AddCell().SetString(p.RazorpayOrderID)
		row.AddCell().SetString(p.RazorpayPaymentID)
	}

	sheet.AddRow()
	summary := Summarize(payments)
	summaryCell := sheet.AddRow().AddCell()
	summaryCell.SetString("Summary")
	summaryCell.SetStyle(bold)
	for _, kv := range [][2]string{
		{"Payments", fmt.Sprintf("%d", summary.Payments)},
		{"Total Amount", fmt.Sprintf("%d", summary.TotalAmount)},
		{"Order Range", fmt.Sprintf("%d - %d", summary.FirstOrder, summary.LastOrder)},
	} {
		row := sheet.AddRow()
		row.AddCell().SetString(kv[0])
		row.AddCell().SetString(kv[1])
	}

	return errors.Wrap(file.Write(w), "write workbook")
}

// WritePaymentsPDF writes the payments and a summary as a landscape PDF table.
func WritePaymentsPDF(w io.Writer, title string, payments []models.Payment) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 12, title)
	pdf.Ln(14)

	colWidths := []float64{20, 35, 50, 30, 25, 55, 55}
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(200, 200, 200)
	for i, h := range reportHeaders {
		pdf.CellFormat(colWidths[i], 8, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	fill := false
	for _, p := range payments {
		pdf.SetFillColor(230, 240, 255)
		pdf.CellFormat(colWidths[0], 7, fmt.Sprintf("%d", p.OrderNumber), "1", 0, "C", fill, 0, "")
		pdf.CellFormat(colWidths[1], 7, p.CreatedAt.Format("2006-01-02 15:04"), "1", 0, "C", fill, 0, "")
		pdf.CellFormat(colWidths[2], 7, truncate(p.Name, 30), "1", 0, "L", fill, 0, "")
		pdf.CellFormat(colWidths[3], 7, p.Mobile, "1", 0, "C", fill, 0, "")
		pdf.CellFormat(colWidths[4], 7, fmt.Sprintf("%d", p.Amount), "1", 0, "R", fill, 0, "")
		pdf.CellFormat(colWidths[5], 7, p.RazorpayOrderID, "1", 0, "L", fill, 0, "")
		pdf.CellFormat(colWidths[6], 7, p.RazorpayPaymentID, "1", 0, "L", fill, 0, "")
		pdf.Ln(-1)
		fill = !fill
	}

	summary := Summarize(payments)
	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(90, 8, "Summary", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)
	for _, kv := range [][2]string{
		{"Payments", fmt.Sprintf("%d", summary.Payments)},
		{"Total Amount", fmt.Sprintf("%d", summary.TotalAmount)},
		{"Order Range", fmt.Sprintf("%d - %d", summary.FirstOrder, summary.LastOrder)},
	} {
		pdf.CellFormat(50, 7, kv[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 7, kv[1], "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	return errors.Wrap(pdf.Output(w), "write pdf")
}

// WriteReceiptPDF renders a single payment receipt.
func WriteReceiptPDF(w io.Writer, p models.Payment, currency string) error {
	pdf := gofpdf.New("P", "mm", "A5", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 12, fmt.Sprintf("Receipt - Order #%d", p.OrderNumber))
	pdf.Ln(16)

	pdf.SetFont("Arial", "", 11)
	for _, kv := range [][2]string{
		{"Date", p.CreatedAt.Format("2006-01-02 15:04:05")},
		{"Name", p.Name},
		{"Mobile", p.Mobile},
		{"Address", p.Address},
		{"Amount", fmt.Sprintf("%s %d", currency, p.Amount)},
		{"Razorpay Order", p.RazorpayOrderID},
		{"Razorpay Payment", p.RazorpayPaymentID},
	} {
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(40, 8, kv[0], "", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 11)
		pdf.MultiCell(0, 8, kv[1], "", "L", false)
	}

	return errors.Wrap(pdf.Output(w), "write receipt")
}

func truncate(s string, n int) string {
	r := []rune(strings.TrimSpace(s))
	if len(r) <= n {
		return string(r)
	}
	return string(r[:n-1]) + "~"
}
