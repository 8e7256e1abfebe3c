package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"

	"transformer-calc/internal/fault"
	"transformer-calc/internal/format"
)

// Core PDF fonts are cp1252; replace the symbols it cannot encode.
var pdfSymbols = strings.NewReplacer("Ω", "Ohm", "√", "sqrt", "×", "x")

// WriteResultPDF writes a one-page report of one calculation.
func WriteResultPDF(path string, r fault.Result, ts time.Time) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	text := func(s string) string { return tr(pdfSymbols.Replace(s)) }

	pdf.SetTitle("Transformer Fault Analysis", true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, text(r.Mode.Title()))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Report: %s", NextReportID(ts)))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", ts.Format("2006-01-02 15:04")))
	pdf.Ln(10)

	section := func(title string, rows [][2]string) {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, text(title))
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)
		for _, row := range rows {
			pdf.CellFormat(110, 7, text(row[0]), "B", 0, "L", false, 0, "")
			pdf.CellFormat(60, 7, text(row[1]), "B", 1, "R", false, 0, "")
		}
		pdf.Ln(6)
	}

	outputs := make([][2]string, 0, len(r.Outputs))
	for _, q := range r.Outputs {
		outputs = append(outputs, [2]string{q.Label, format.Value(q) + " " + q.Unit})
	}
	inputs := make([][2]string, 0, len(r.Inputs))
	for _, q := range r.Inputs {
		inputs = append(inputs, [2]string{q.Label, format.Number(q.Value) + " " + q.Unit})
	}

	section("Results", outputs)
	section("Input Values", inputs)

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write pdf file: %w", err)
	}
	return nil
}
