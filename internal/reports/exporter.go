package reports

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"github.com/fproduction/studio-backend/internal/contact"
	"github.com/fproduction/studio-backend/internal/event"
)

const timeLayout = "2006-01-02 15:04"

var contactHeader = []string{"Reference", "Full Name", "Phone", "Address", "Status", "Content", "Submitted At"}
var eventHeader = []string{"ID", "Title", "Client", "Place", "Start Date", "End Date", "Images", "Videos", "Created At"}

func contactRow(c contact.Contact) []string {
	return []string{
		c.ReferenceID,
		c.FullName,
		c.Phone,
		deref(c.Address),
		c.Status,
		deref(c.Content),
		c.CreatedAt.Format(timeLayout),
	}
}

func eventRow(e event.Response) []string {
	return []string{
		e.ID,
		e.Title,
		deref(e.Client),
		deref(e.Place),
		dateOf(e.StartDate),
		dateOf(e.EndDate),
		strconv.Itoa(e.ImageCount),
		strconv.Itoa(e.VideoCount),
		e.CreatedAt.Format(timeLayout),
	}
}

func dateOf(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ContactsCSV renders contacts as a UTF-8 CSV with a header row.
func ContactsCSV(contacts []contact.Contact) ([]byte, error) {
	return writeCSV(contactHeader, len(contacts), func(i int) []string { return contactRow(contacts[i]) })
}

func EventsCSV(events []event.Response) ([]byte, error) {
	return writeCSV(eventHeader, len(events), func(i int) []string { return eventRow(events[i]) })
}

func writeCSV(header []string, n int, row func(int) []string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		if err := w.Write(row(i)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ContactsXLSX renders contacts as a single-sheet Excel workbook.
func ContactsXLSX(contacts []contact.Contact) ([]byte, error) {
	return writeXLSX("Contacts", contactHeader, len(contacts), func(i int) []string { return contactRow(contacts[i]) })
}

func EventsXLSX(events []event.Response) ([]byte, error) {
	return writeXLSX("Events", eventHeader, len(events), func(i int) []string { return eventRow(events[i]) })
}

func writeXLSX(sheet string, header []string, n int, row func(int) []string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for col, h := range header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}
	for i := 0; i < n; i++ {
		for col, v := range row(i) {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ContactsPDF renders contacts as a landscape A4 table.
func ContactsPDF(contacts []contact.Contact) ([]byte, error) {
	widths := []float64{30, 45, 30, 50, 28, 60, 34}
	return writePDF("Contact Report", contactHeader, widths, len(contacts), func(i int) []string { return contactRow(contacts[i]) })
}

func EventsPDF(events []event.Response) ([]byte, error) {
	widths := []float64{44, 44, 34, 34, 22, 22, 16, 16, 34}
	return writePDF("Event Report", eventHeader, widths, len(events), func(i int) []string { return eventRow(events[i]) })
}

func writePDF(title string, header []string, widths []float64, n int, row func(int) []string) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle(title, true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 10, fmt.Sprintf("%s - %s", title, time.Now().Format("2006-01-02")))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 9)
	for i, h := range header {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	for i := 0; i < n; i++ {
		for j, v := range row(i) {
			if len(v) > 40 {
				v = v[:37] + "..."
			}
			pdf.CellFormat(widths[j], 6, v, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
