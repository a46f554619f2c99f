package services

import (
	"github.com/aclements/go-moremath/stats"
	"github.com/shopspring/decimal"

	"ppr-analyser/models"
	"ppr-analyser/utils"
)

// AggregationEngine computes the statistics suite over a built Dataset.
type AggregationEngine struct {
	logger *utils.Logger
}

// NewAggregationEngine creates an AggregationEngine with the given logger.
func NewAggregationEngine(logger *utils.Logger) *AggregationEngine {
	return &AggregationEngine{logger: logger}
}

// Generate computes a fresh AggregateResult from ds. The dataset is only
// read. Generate either returns a complete result or an error, never both.
func (e *AggregationEngine) Generate(ds *models.Dataset) (*models.AggregateResult, error) {
	if ds == nil || ds.Len() == 0 {
		return nil, ErrEmptyDataset
	}

	n := ds.Len()
	r := &models.AggregateResult{Count: n}

	// Totals and extrema. The first occurrence of an extreme price wins.
	total := decimal.Zero
	maxIdx, minIdx := 0, 0
	prices := make([]float64, n)
	years := make([]int, n)
	for i := 0; i < n; i++ {
		p := ds.Price(i)
		total = total.Add(p)
		if p.GreaterThan(ds.Price(maxIdx)) {
			maxIdx = i
		}
		if p.LessThan(ds.Price(minIdx)) {
			minIdx = i
		}
		prices[i] = p.InexactFloat64()
		years[i] = ds.Date(i).Year()
	}
	r.Total = total
	r.Max = ds.Price(maxIdx)
	r.Min = ds.Price(minIdx)
	r.Highest = saleContext(ds, maxIdx)
	r.Lowest = saleContext(ds, minIdx)
	e.logger.Debug("[aggregate] Totals: count=%d sum=%s max=%s min=%s", n, r.Total, r.Max, r.Min)

	r.Span = DecomposeSpan(ds.Date(0), ds.Date(n-1))

	sum := total.InexactFloat64()
	r.MeanPerSale = sum / float64(n)
	r.MeanPerMonth = SpreadMean(sum, r.Span.TotalMonths)
	if r.Span.TotalYears > 0 {
		r.MeanPerYear = models.DefinedMeasure(SpreadMean(sum, r.Span.TotalYears))
	}

	r.Median = MedianOf(prices)

	freq := FrequencyTable(ds.Prices())
	r.Mode = ModeOf(freq)
	e.logger.Debug("[aggregate] %d unique prices of %d sales", r.Mode.Distinct, n)

	if n > 1 {
		r.StdDevOverall = models.DefinedMeasure(stats.Sample{Xs: prices}.StdDev())
	}
	if r.Span.TotalMonths > 0 {
		r.StdDevPerMonth = SampleStdDev(prices, r.MeanPerMonth)
	}
	if r.MeanPerYear.Defined {
		r.StdDevPerYear = SampleStdDev(prices, r.MeanPerYear.Value)
	}

	r.Years = YearHistogram(years, r.Span.FirstYear, r.Span.LastYear)
	r.MonthYears = CountBy(n, func(i int) string { return MonthYearKey(ds.Date(i)) })
	r.Regions = CountBy(n, ds.Region)

	e.logger.Info("[aggregate] Computed statistics over %d sales (%d years, %d months, %d regions)",
		n, r.Years.Len(), r.MonthYears.Len(), r.Regions.Len())
	return r, nil
}

func saleContext(ds *models.Dataset, i int) models.SaleContext {
	return models.SaleContext{
		Index:       i,
		DateOfSale:  ds.Date(i),
		Price:       ds.Price(i),
		Region:      ds.Region(i),
		Address:     ds.Address(i),
		Description: ds.Description(i),
	}
}
