package services

import (
	"ppr-analyser/models"
	"ppr-analyser/utils"
)

// MinRowCap is the smallest row cap a user may ask for.
const MinRowCap = 2

// BuildOptions configures a DatasetBuilder.
type BuildOptions struct {
	// RowCap is the maximum number of input lines to parse.
	RowCap int
	// Strict aborts on the first malformed line; otherwise such lines are
	// logged and skipped.
	Strict bool
}

// BuildResult is the outcome of a successful build.
type BuildResult struct {
	Dataset       *models.Dataset
	Processed     int
	Skipped       int
	PriceWarnings int
}

// DatasetBuilder drives the parser over the input lines.
type DatasetBuilder struct {
	logger *utils.Logger
	opts   BuildOptions
}

// NewDatasetBuilder creates a DatasetBuilder with the given options.
func NewDatasetBuilder(logger *utils.Logger, opts BuildOptions) *DatasetBuilder {
	return &DatasetBuilder{logger: logger, opts: opts}
}

// ValidateRowCap rejects caps below MinRowCap.
func ValidateRowCap(n int) error {
	if n < MinRowCap {
		return &RowCapError{Requested: n, Minimum: MinRowCap}
	}
	return nil
}

// Build parses up to RowCap lines in order. In strict mode the first
// malformed line aborts the build and no dataset is returned.
func (b *DatasetBuilder) Build(lines []string) (*BuildResult, error) {
	if b.opts.RowCap < 1 {
		return nil, &RowCapError{Requested: b.opts.RowCap, Minimum: 1}
	}

	limit := min(b.opts.RowCap, len(lines))
	result := &BuildResult{Dataset: models.NewDataset(limit)}
	progress := utils.NewProgress(b.logger, "builder", limit)

	b.logger.Info("[builder] Parsing %d of %d lines (strict: %t)", limit, len(lines), b.opts.Strict)

	for i := 0; i < limit; i++ {
		lineNo := i + 1
		result.Processed++

		rec, warn, err := ParseLine(lines[i], lineNo)
		if err != nil {
			if b.opts.Strict {
				b.logger.Error("[builder] Aborting: %v", err)
				return nil, err
			}
			b.logger.Warn("[builder] Skipping: %v", err)
			result.Skipped++
			progress.Step(lineNo)
			continue
		}
		if warn != nil {
			b.logger.Warn("[builder] %v, using 0", warn)
			result.PriceWarnings++
		}

		result.Dataset.Append(rec)
		progress.Step(lineNo)
	}

	b.logger.Info("[builder] Built dataset: %d rows (skipped %d, price warnings %d)",
		result.Dataset.Len(), result.Skipped, result.PriceWarnings)
	return result, nil
}
