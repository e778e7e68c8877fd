// Package render: PDF renderer.
// Produces a printable weekly program from the dataset using gofpdf,
// grouped date → cinema → films.
package render

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/XxdarkadamxX/Cinema-showtimes-app/core"
)

// PDFRenderer renders the schedule as a PDF document.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render converts the dataset into PDF bytes.
func (r *PDFRenderer) Render(ds *core.Dataset) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()
	// Titles carry French accents; core fonts need cp1252 translation.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 18)
	pdf.MultiCell(0, 8, "Paris Showtimes", "", "L", false)

	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetTextColor(100, 100, 100)
	pdf.MultiCell(0, 5, tr("Sources: "+strings.Join(ds.Metadata.Sources, ", ")+", generated "+ds.Metadata.CreatedAt), "", "L", false)
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)

	byDay := make(map[string][]core.CanonicalRecord)
	var days []string
	for _, rec := range ds.Records {
		if _, seen := byDay[rec.ShowtimeDay]; !seen {
			days = append(days, rec.ShowtimeDay)
		}
		byDay[rec.ShowtimeDay] = append(byDay[rec.ShowtimeDay], rec)
	}
	sort.Strings(days)

	for _, day := range days {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 14)
		pdf.MultiCell(0, 7, day, "", "L", false)

		cinema := ""
		for _, rec := range byDay[day] {
			if rec.Cinema != cinema {
				cinema = rec.Cinema
				pdf.Ln(1)
				pdf.SetFont("Helvetica", "B", 11)
				pdf.MultiCell(0, 6, tr(cinema), "", "L", false)
			}

			pdf.SetFont("Helvetica", "", 10)
			line := rec.Movie
			if len(rec.Showtimes) > 0 {
				line += "  " + strings.Join(rec.Showtimes, ", ")
			} else if rec.NbShowings > 0 {
				line += fmt.Sprintf("  (%d showings)", rec.NbShowings)
			}
			pdf.MultiCell(0, 5, tr("- "+line), "", "L", false)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}
