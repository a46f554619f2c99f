package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Measure is a statistic that may not be defined for a given dataset,
// e.g. a sample standard deviation over a single sale.
type Measure struct {
	Value   float64
	Defined bool
}

// DefinedMeasure wraps v as a defined Measure.
func DefinedMeasure(v float64) Measure { return Measure{Value: v, Defined: true} }

// Span is the date range covered by the dataset, taken from its first and
// last record by position.
type Span struct {
	FirstDate   time.Time
	LastDate    time.Time
	FirstYear   int
	FirstMonth  int
	LastYear    int
	LastMonth   int
	TotalYears  int
	TotalMonths int
}

// Median is the middle price and its index in the sorted price column.
type Median struct {
	Value float64
	Index int
}

// Mode is the most frequent price.
type Mode struct {
	Price     decimal.Decimal
	Frequency int
	Distinct  int
}

// SaleContext describes the sale behind an extreme price.
type SaleContext struct {
	Index       int
	DateOfSale  time.Time
	Price       decimal.Decimal
	Region      string
	Address     string
	Description string
}

// AggregateResult holds every statistic computed over a Dataset.
// It is built once and only read afterwards.
type AggregateResult struct {
	Count int
	Total decimal.Decimal
	Max   decimal.Decimal
	Min   decimal.Decimal

	Span Span

	MeanPerSale  float64
	MeanPerMonth float64
	MeanPerYear  Measure

	Median Median
	Mode   Mode

	StdDevOverall  Measure
	StdDevPerMonth Measure
	StdDevPerYear  Measure

	Years      *Histogram[int]
	MonthYears *Histogram[string]
	Regions    *Histogram[string]

	Highest SaleContext
	Lowest  SaleContext
}

// SummaryLabels are the column headings of the per-run summary block.
var SummaryLabels = []string{
	"Total Sales €",
	"Max Sale €",
	"Min Sale €",
	"Mean Sale €",
	"Mode Sale € (frequency)",
	"Standard Dev Of Price €",
}

// Summary is the block appended to the summary sink once per run.
type Summary struct {
	RowsProcessed int
	Total         decimal.Decimal
	Max           decimal.Decimal
	Min           decimal.Decimal
	MeanPerSale   float64
	Mode          decimal.Decimal
	ModeFrequency int
	StdDev        Measure
	CreatedAt     time.Time
}
