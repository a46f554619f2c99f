package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"ppr-analyser/models"
)

// SummaryWriter appends a human-readable summary block to a file.
// Existing content is preserved; each run adds one block.
type SummaryWriter struct {
	mu     sync.Mutex
	file   *os.File
	writer *csv.Writer
}

// NewSummaryWriter opens (or creates) the summary file at path for
// appending. Intermediate directories are created automatically.
func NewSummaryWriter(path string) (*SummaryWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("summary: create output dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("summary: open file %q: %w", path, err)
	}

	return &SummaryWriter{file: f, writer: csv.NewWriter(f)}, nil
}

// AppendSummary writes the rows-processed line, the label row, the value
// row and a blank separator line.
func (w *SummaryWriter) AppendSummary(s models.Summary) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, err := fmt.Fprintf(w.file, "Data Processing -> Rows processed: %d\n", s.RowsProcessed); err != nil {
		return fmt.Errorf("summary: write title: %w", err)
	}
	if err := w.writer.Write(models.SummaryLabels); err != nil {
		return fmt.Errorf("summary: write header: %w", err)
	}
	if err := w.writer.Write(summaryValues(s)); err != nil {
		return fmt.Errorf("summary: write values: %w", err)
	}
	w.writer.Flush()
	if err := w.writer.Error(); err != nil {
		return fmt.Errorf("summary: flush: %w", err)
	}
	if _, err := fmt.Fprintln(w.file); err != nil {
		return fmt.Errorf("summary: write separator: %w", err)
	}
	return nil
}

func summaryValues(s models.Summary) []string {
	stdDev := "n/a"
	if s.StdDev.Defined {
		stdDev = strconv.FormatFloat(s.StdDev.Value, 'f', 2, 64)
	}
	return []string{
		s.Total.StringFixed(2),
		s.Max.StringFixed(2),
		s.Min.StringFixed(2),
		strconv.FormatFloat(s.MeanPerSale, 'f', 2, 64),
		fmt.Sprintf("%s (%d)", s.Mode.StringFixed(2), s.ModeFrequency),
		stdDev,
	}
}

// Close flushes and closes the underlying file.
func (w *SummaryWriter) Close() error {
	w.writer.Flush()
	return w.file.Close()
}
