// file: services/export_service.go
package services

import (
	"bytes"
	"encoding/csv"

	"github.com/jung-kurt/gofpdf"
	"github.com/vedantwankhade123/Roborace/content"
	"github.com/vedantwankhade123/Roborace/models"
)

var csvHeaders = []string{"Team Name", "Leader", "College", "Dept", "Email", "Phone", "Status", "Receipt"}

// ExportCSV renders the filtered registration list as RFC 4180 CSV. Fields
// containing separators, quotes or newlines are quoted by encoding/csv, so
// free-text columns such as college names survive a round trip.
func ExportCSV(regs []models.Registration) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeaders); err != nil {
		return nil, err
	}
	for _, reg := range regs {
		row := []string{
			reg.TeamName,
			reg.LeaderName,
			reg.CollegeName,
			reg.Department,
			reg.Email,
			reg.Phone,
			string(reg.Status),
			reg.ReceiptURL,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportPDF renders the filtered list as a fixed-column table.
func ExportPDF(regs []models.Registration) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 10, content.EventName+" Registrations")
	pdf.Ln(14)

	type column struct {
		header string
		width  float64
	}
	columns := []column{
		{"Team", 45},
		{"Leader", 45},
		{"College", 70},
		{"Status", 30},
	}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for _, col := range columns {
		pdf.CellFormat(col.width, 8, col.header, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, reg := range regs {
		cells := []string{reg.TeamName, reg.LeaderName, reg.CollegeName, string(reg.Status)}
		for i, col := range columns {
			pdf.CellFormat(col.width, 7, cells[i], "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
