package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecomposeSpan(t *testing.T) {
	tests := []struct {
		name       string
		first      [3]int
		last       [3]int
		wantYears  int
		wantMonths int
	}{
		{"same month", [3]int{2010, 1, 1}, [3]int{2010, 1, 30}, 0, 0},
		{"same year", [3]int{2010, 1, 1}, [3]int{2010, 9, 1}, 0, 8},
		{"across years", [3]int{2010, 11, 1}, [3]int{2012, 2, 1}, 2, 15},
		{"one year later earlier month", [3]int{2010, 12, 1}, [3]int{2011, 1, 1}, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first := day(tt.first[0], time.Month(tt.first[1]), tt.first[2])
			last := day(tt.last[0], time.Month(tt.last[1]), tt.last[2])
			s := DecomposeSpan(first, last)
			assert.Equal(t, tt.wantYears, s.TotalYears)
			assert.Equal(t, tt.wantMonths, s.TotalMonths)
			assert.Equal(t, tt.first[0], s.FirstYear)
			assert.Equal(t, tt.last[1], s.LastMonth)
		})
	}
}

func TestSpreadMean(t *testing.T) {
	assert.Equal(t, 1200.0, SpreadMean(1200, 0))
	assert.Equal(t, 1200.0, SpreadMean(1200, 1))
	assert.Equal(t, 400.0, SpreadMean(1200, 3))
}

func TestMedianOf(t *testing.T) {
	odd := MedianOf([]float64{3, 1, 2})
	assert.Equal(t, 2.0, odd.Value)
	assert.Equal(t, 1, odd.Index)

	even := MedianOf([]float64{4, 1, 3, 2})
	assert.Equal(t, 2.5, even.Value)
	assert.Equal(t, 2, even.Index)

	assert.Zero(t, MedianOf(nil).Value)
}

func TestMedianOfLeavesInputUnsorted(t *testing.T) {
	xs := []float64{3, 1, 2}
	MedianOf(xs)
	assert.Equal(t, []float64{3, 1, 2}, xs)
}

func TestSampleStdDev(t *testing.T) {
	xs := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	sd := SampleStdDev(xs, 5)
	require.True(t, sd.Defined)
	assert.InDelta(t, 2.138, sd.Value, 0.001)

	assert.False(t, SampleStdDev([]float64{42}, 42).Defined)
	assert.False(t, SampleStdDev(nil, 0).Defined)
}

func TestModeTieGoesToFirstSeen(t *testing.T) {
	var prices []decimal.Decimal
	add := func(v int64, times int) {
		for i := 0; i < times; i++ {
			prices = append(prices, decimal.NewFromInt(v))
		}
	}
	add(100, 3)
	add(200, 5)
	add(50, 5)

	mode := ModeOf(FrequencyTable(prices))
	assert.True(t, mode.Price.Equal(decimal.NewFromInt(200)))
	assert.Equal(t, 5, mode.Frequency)
	assert.Equal(t, 3, mode.Distinct)
}

func TestFrequencyTableMergesEqualAmounts(t *testing.T) {
	freq := FrequencyTable([]decimal.Decimal{
		decimal.RequireFromString("100"),
		decimal.RequireFromString("100.00"),
		decimal.RequireFromString("100.5"),
	})
	assert.Equal(t, 2, freq.Len())
	assert.Equal(t, 2, freq.Count("100"))
}

func TestModeOfEmpty(t *testing.T) {
	mode := ModeOf(FrequencyTable(nil))
	assert.True(t, mode.Price.IsZero())
	assert.Zero(t, mode.Frequency)
}

func TestYearHistogram(t *testing.T) {
	h := YearHistogram([]int{2019, 2019, 2020}, 2019, 2021)

	assert.Equal(t, []int{2019, 2020, 2021}, h.Keys())
	assert.Equal(t, 2, h.Count(2019))
	assert.Equal(t, 1, h.Count(2020))
	assert.Equal(t, 0, h.Count(2021))

	most, _ := h.Most()
	least, _ := h.Least()
	assert.Equal(t, 2019, most)
	assert.Equal(t, 2021, least)
}

func TestYearHistogramAppendsYearsOutsideRange(t *testing.T) {
	h := YearHistogram([]int{2021, 2018, 2020}, 2020, 2021)
	assert.Equal(t, []int{2020, 2021, 2018}, h.Keys())
	assert.Equal(t, 1, h.Count(2018))
}

func TestCountByAndMonthYearKey(t *testing.T) {
	ds := datasetOf(
		sale{date: day(2010, 1, 1), price: "1", region: "Dublin"},
		sale{date: day(2010, 1, 20), price: "2", region: "Cork"},
		sale{date: day(2010, 11, 2), price: "3", region: "Dublin"},
	)

	regions := CountBy(ds.Len(), ds.Region)
	assert.Equal(t, []string{"Dublin", "Cork"}, regions.Keys())
	assert.Equal(t, 2, regions.Count("Dublin"))

	months := CountBy(ds.Len(), func(i int) string { return MonthYearKey(ds.Date(i)) })
	assert.Equal(t, []string{"01/2010", "11/2010"}, months.Keys())
	assert.Equal(t, 2, months.Count("01/2010"))
}
