package leadapp

import (
	"bytes"
	"fmt"
	"time"

	"github.com/studygate/studygate/business/domain/consultationbus"
	"github.com/xuri/excelize/v2"
)

// exportMaxRows caps the export query. Parsed by page.Parse, so it is a
// string.
const exportMaxRows = "10000"

var exportHeaders = []string{"Full Name", "Phone", "Email", "Destination", "Message", "Status", "Created"}

// Workbook carries rendered xlsx bytes out through the web framework.
type Workbook struct {
	data []byte
}

// Encode implements the web.Encoder interface.
func (wb Workbook) Encode() ([]byte, string, error) {
	return wb.data, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", nil
}

// buildConsultationWorkbook renders the consultations into a single sheet
// workbook with a bold header row.
func buildConsultationWorkbook(cons []consultationbus.Consultation) (Workbook, error) {
	const sheetName = "Consultations"

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return Workbook{}, fmt.Errorf("new sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return Workbook{}, fmt.Errorf("header style: %w", err)
	}

	for col, header := range exportHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return Workbook{}, fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return Workbook{}, fmt.Errorf("header value: %w", err)
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			return Workbook{}, fmt.Errorf("header cell style: %w", err)
		}
	}

	for i, con := range cons {
		var email string
		if con.Email != nil {
			email = con.Email.Address
		}

		values := []any{
			con.FullName.String(),
			con.Phone.String(),
			email,
			con.Destination,
			con.Message,
			con.Status.String(),
			con.CreatedAt.Format(time.RFC3339),
		}

		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return Workbook{}, fmt.Errorf("cell name: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return Workbook{}, fmt.Errorf("cell value: %w", err)
			}
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return Workbook{}, fmt.Errorf("write workbook: %w", err)
	}

	return Workbook{data: buf.Bytes()}, nil
}
