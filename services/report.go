package services

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"ppr-analyser/models"
)

const (
	displayDate = "02/01/2006"
	barWidth    = 40
)

// BuildSummary extracts the six statistics written to the summary sink.
func BuildSummary(r *models.AggregateResult, rowsProcessed int) models.Summary {
	return models.Summary{
		RowsProcessed: rowsProcessed,
		Total:         r.Total,
		Max:           r.Max,
		Min:           r.Min,
		MeanPerSale:   r.MeanPerSale,
		Mode:          r.Mode.Price,
		ModeFrequency: r.Mode.Frequency,
		StdDev:        r.StdDevOverall,
		CreatedAt:     time.Now(),
	}
}

// Printer renders an AggregateResult for the terminal.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a Printer writing to out.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

func (p *Printer) printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

func (p *Printer) heading(title string) {
	p.printf("\033[1;33m  %s\033[0m\n", title)
	p.printf("  %s\n", strings.Repeat("─", 54))
}

// All prints every section, framed like a report.
func (p *Printer) All(r *models.AggregateResult) {
	sep := strings.Repeat("═", 54)
	p.printf("\n\033[1;35m%s\033[0m\n", sep)
	p.printf("\033[1;35m  PROPERTY PRICE REGISTER STATISTICS\033[0m\n")
	p.printf("\033[1;35m%s\033[0m\n\n", sep)

	p.heading("Overview")
	p.Records(r)
	p.Maximum(r)
	p.Minimum(r)
	p.printf("\n")

	p.heading("Mean")
	p.Means(r)
	p.printf("\n")

	p.heading("Median / Mode")
	p.MedianValue(r)
	p.ModeValue(r)
	p.printf("\n")

	p.heading("Standard Deviation")
	p.StdDevs(r)
	p.printf("\n")

	p.Extra(r)
	p.printf("\n\033[1;35m%s\033[0m\n\n", sep)
}

// Records prints the row count and the total spent.
func (p *Printer) Records(r *models.AggregateResult) {
	p.printf("  Number of records : \033[1m%d\033[0m\n", r.Count)
	p.printf("  Total Euros       : \033[1m%s\033[0m\n", euro(r.Total))
}

// Maximum prints the highest price.
func (p *Printer) Maximum(r *models.AggregateResult) {
	p.printf("  Maximum value     : \033[1;32m%s\033[0m\n", euro(r.Max))
}

// Minimum prints the lowest price.
func (p *Printer) Minimum(r *models.AggregateResult) {
	p.printf("  Minimum value     : \033[1;32m%s\033[0m\n", euro(r.Min))
}

// Means prints the per-month, per-year and per-sale means.
func (p *Printer) Means(r *models.AggregateResult) {
	s := r.Span
	p.printf("  Mean values between %s and %s\n", s.FirstDate.Format(displayDate), s.LastDate.Format(displayDate))
	if s.TotalMonths <= 1 {
		p.printf("  Mean value (1 month(s))   : %s\n", euroF(r.MeanPerMonth))
	} else {
		p.printf("  Mean value (%d months)    : %s\n", s.TotalMonths, euroF(r.MeanPerMonth))
	}
	if r.MeanPerYear.Defined {
		p.printf("  Mean value (%d years)     : %s\n", s.TotalYears, euroF(r.MeanPerYear.Value))
	}
	p.printf("  Mean value (per sale)     : %s\n", euroF(r.MeanPerSale))
}

// MedianValue prints the median and its sorted index.
func (p *Printer) MedianValue(r *models.AggregateResult) {
	p.printf("  Median value      : %s at index %d\n", euroF(r.Median.Value), r.Median.Index)
}

// ModeValue prints the most common price and its frequency.
func (p *Printer) ModeValue(r *models.AggregateResult) {
	p.printf("  Mode value        : %s (%d sales, %d unique prices)\n",
		euro(r.Mode.Price), r.Mode.Frequency, r.Mode.Distinct)
}

// StdDevs prints the defined standard deviation variants.
func (p *Printer) StdDevs(r *models.AggregateResult) {
	if !r.StdDevOverall.Defined {
		p.printf("  Standard deviation needs at least 2 sales\n")
		return
	}
	p.printf("  Standard deviation (price)   : %.2f\n", r.StdDevOverall.Value)
	if r.StdDevPerMonth.Defined {
		p.printf("  Standard deviation (monthly) : %.2f\n", r.StdDevPerMonth.Value)
	}
	if r.StdDevPerYear.Defined {
		p.printf("  Standard deviation (yearly)  : %.2f\n", r.StdDevPerYear.Value)
	}
}

// Extra prints the grouped histograms and the extreme sales.
func (p *Printer) Extra(r *models.AggregateResult) {
	p.heading("Sales per Year")
	for _, y := range r.Years.Keys() {
		p.printf("  %-10d %6d\n", y, r.Years.Count(y))
	}
	mostYear, mostYearN := r.Years.Most()
	leastYear, leastYearN := r.Years.Least()
	p.printf("  Year of most houses sold  : %d with %d\n", mostYear, mostYearN)
	p.printf("  Year of least houses sold : %d with %d\n", leastYear, leastYearN)
	p.printf("\n")

	p.heading("Sales per Month")
	mostMonth, mostMonthN := r.MonthYears.Most()
	leastMonth, leastMonthN := r.MonthYears.Least()
	p.printf("  Month/Year most houses sold  : %s with %d\n", mostMonth, mostMonthN)
	p.printf("  Month/Year least houses sold : %s with %d\n", leastMonth, leastMonthN)
	p.printf("\n")

	p.heading("Highest / Lowest Price Paid")
	p.sale("Highest", r.Highest)
	p.sale("Lowest ", r.Lowest)
	p.printf("\n")

	p.heading("Sales by Region")
	p.regions(r.Regions)
	mostRegion, mostRegionN := r.Regions.Most()
	leastRegion, leastRegionN := r.Regions.Least()
	p.printf("  Region with most properties sold  : %s with %d\n", mostRegion, mostRegionN)
	p.printf("  Region with least properties sold : %s with %d\n", leastRegion, leastRegionN)
}

func (p *Printer) sale(label string, s models.SaleContext) {
	p.printf("  %s : %s \033[1;31m%s\033[0m\n", label, s.DateOfSale.Format(displayDate), euro(s.Price))
	p.printf("            %s, %s / %s\n", s.Address, s.Region, s.Description)
}

// regions prints one bar per region, busiest first, scaled to barWidth.
func (p *Printer) regions(h *models.Histogram[string]) {
	if h.Len() == 0 {
		p.printf("  No region data\n")
		return
	}
	keys := h.Keys()
	sort.SliceStable(keys, func(i, j int) bool {
		return h.Count(keys[i]) > h.Count(keys[j])
	})
	_, top := h.Most()
	for _, k := range keys {
		n := h.Count(k)
		bar := strings.Repeat("█", scaleBar(n, top))
		p.printf("  %-20s %s (%d)\n", truncate(k, 18), bar, n)
	}
}

func scaleBar(n, top int) int {
	if top <= barWidth {
		return n
	}
	w := n * barWidth / top
	if w == 0 && n > 0 {
		w = 1
	}
	return w
}

func euro(d decimal.Decimal) string {
	return "€" + d.StringFixed(2)
}

func euroF(f float64) string {
	return fmt.Sprintf("€%.2f", f)
}

// truncate shortens s to max runes, marking the cut with "...".
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
