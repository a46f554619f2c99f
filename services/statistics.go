package services

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"ppr-analyser/models"
)

// DecomposeSpan derives the year and month span between two sale dates.
// The aggregation passes the first and last record by position, so an
// unsorted input gives a positional span rather than a chronological one.
func DecomposeSpan(first, last time.Time) models.Span {
	s := models.Span{
		FirstDate:  first,
		LastDate:   last,
		FirstYear:  first.Year(),
		FirstMonth: int(first.Month()),
		LastYear:   last.Year(),
		LastMonth:  int(last.Month()),
	}
	s.TotalYears = s.LastYear - s.FirstYear
	if s.TotalYears > 0 {
		s.TotalMonths = 12*s.TotalYears + s.LastMonth - s.FirstMonth
	} else {
		s.TotalMonths = s.LastMonth - s.FirstMonth
	}
	return s
}

// SpreadMean divides sum over periods. With one period or fewer the sum
// itself is returned instead of dividing by a near-zero count.
func SpreadMean(sum float64, periods int) float64 {
	if periods <= 1 {
		return sum
	}
	return sum / float64(periods)
}

// MedianOf returns the median of xs and its index in the sorted sequence.
// xs is not modified.
func MedianOf(xs []float64) models.Median {
	if len(xs) == 0 {
		return models.Median{}
	}
	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return models.Median{Value: sorted[mid], Index: mid}
	}
	return models.Median{Value: (sorted[mid-1] + sorted[mid]) / 2, Index: mid}
}

// SampleStdDev is the two-pass sample standard deviation of xs around
// mean, normalised by len(xs)-1. It is undefined for fewer than two values.
func SampleStdDev(xs []float64, mean float64) models.Measure {
	if len(xs) < 2 {
		return models.Measure{}
	}
	var squares float64
	for _, x := range xs {
		d := x - mean
		squares += d * d
	}
	return models.DefinedMeasure(math.Sqrt(squares / float64(len(xs)-1)))
}

// FrequencyTable counts each distinct price. Keys are the canonical decimal
// strings, so 100 and 100.00 share a bucket.
func FrequencyTable(prices []decimal.Decimal) *models.Histogram[string] {
	h := models.NewHistogram[string]()
	for _, p := range prices {
		h.Add(p.String())
	}
	return h
}

// ModeOf picks the most frequent price of a frequency table. Ties go to the
// price that was seen first.
func ModeOf(freq *models.Histogram[string]) models.Mode {
	if freq.Len() == 0 {
		return models.Mode{}
	}
	key, count := freq.Most()
	// keys come from decimal.String and always parse back
	return models.Mode{Price: decimal.RequireFromString(key), Frequency: count, Distinct: freq.Len()}
}

// YearHistogram counts sales per year. Every year in [first, last] is
// present even with no sales; years outside the range are appended as seen.
func YearHistogram(years []int, first, last int) *models.Histogram[int] {
	h := models.NewHistogram[int]()
	for y := first; y <= last; y++ {
		h.Seed(y)
	}
	for _, y := range years {
		h.Add(y)
	}
	return h
}

// CountBy builds a histogram over n items keyed by key(i).
func CountBy[K comparable](n int, key func(i int) K) *models.Histogram[K] {
	h := models.NewHistogram[K]()
	for i := 0; i < n; i++ {
		h.Add(key(i))
	}
	return h
}

// MonthYearKey formats the month and year of t as "mm/yyyy", the same
// substring the register uses in its dd/mm/yyyy dates.
func MonthYearKey(t time.Time) string {
	return fmt.Sprintf("%02d/%04d", int(t.Month()), t.Year())
}
