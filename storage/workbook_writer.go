package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/xuri/excelize/v2"

	"ppr-analyser/models"
)

// Sheet names of the exported workbook.
const (
	SheetSummary    = "Summary"
	SheetYears      = "Years"
	SheetMonthYears = "MonthYears"
	SheetRegions    = "Regions"
)

// WorkbookWriter exports an AggregateResult as an .xlsx workbook with one
// sheet per histogram.
type WorkbookWriter struct {
	path string
}

// NewWorkbookWriter creates a WorkbookWriter that saves to path.
func NewWorkbookWriter(path string) *WorkbookWriter {
	return &WorkbookWriter{path: path}
}

// Path returns the destination file.
func (w *WorkbookWriter) Path() string { return w.path }

// Write builds the workbook and saves it, replacing any previous file.
func (w *WorkbookWriter) Write(r *models.AggregateResult) error {
	if err := os.MkdirAll(filepath.Dir(w.path), 0755); err != nil {
		return fmt.Errorf("workbook: create output dir: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetSummary); err != nil {
		return fmt.Errorf("workbook: rename first sheet: %w", err)
	}
	if err := writeRows(f, SheetSummary, summaryRows(r)); err != nil {
		return err
	}

	years := make([][]interface{}, 0, r.Years.Len())
	for _, y := range r.Years.Keys() {
		years = append(years, []interface{}{y, r.Years.Count(y)})
	}
	if err := writeSheet(f, SheetYears, "Year", years); err != nil {
		return err
	}
	if err := writeSheet(f, SheetMonthYears, "Month/Year", stringCounts(r.MonthYears)); err != nil {
		return err
	}
	if err := writeSheet(f, SheetRegions, "Region", stringCounts(r.Regions)); err != nil {
		return err
	}

	if err := f.SaveAs(w.path); err != nil {
		return fmt.Errorf("workbook: save %q: %w", w.path, err)
	}
	return nil
}

func summaryRows(r *models.AggregateResult) [][]interface{} {
	rows := [][]interface{}{
		{"Statistic", "Value"},
		{"Records", r.Count},
		{"Total €", r.Total.InexactFloat64()},
		{"Max €", r.Max.InexactFloat64()},
		{"Min €", r.Min.InexactFloat64()},
		{"Mean per sale €", r.MeanPerSale},
		{"Mean per month €", r.MeanPerMonth},
	}
	if r.MeanPerYear.Defined {
		rows = append(rows, []interface{}{"Mean per year €", r.MeanPerYear.Value})
	}
	rows = append(rows,
		[]interface{}{"Median €", r.Median.Value},
		[]interface{}{"Mode €", r.Mode.Price.InexactFloat64()},
		[]interface{}{"Mode frequency", r.Mode.Frequency},
	)
	if r.StdDevOverall.Defined {
		rows = append(rows, []interface{}{"Std dev", r.StdDevOverall.Value})
	}
	return rows
}

func stringCounts(h *models.Histogram[string]) [][]interface{} {
	rows := make([][]interface{}, 0, h.Len())
	for _, k := range h.Keys() {
		rows = append(rows, []interface{}{k, h.Count(k)})
	}
	return rows
}

func writeSheet(f *excelize.File, sheet, keyLabel string, rows [][]interface{}) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("workbook: new sheet %s: %w", sheet, err)
	}
	all := append([][]interface{}{{keyLabel, "Sales"}}, rows...)
	return writeRows(f, sheet, all)
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell := "A" + strconv.Itoa(i+1)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("workbook: write %s!%s: %w", sheet, cell, err)
		}
	}
	return nil
}
