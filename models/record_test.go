package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatasetColumnsStayAligned(t *testing.T) {
	ds := NewDataset(2)
	first := &Record{
		DateOfSale:      time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC),
		Address:         "5 Main St, Dublin 6",
		PostalCode:      "D6",
		Region:          "Dublin",
		Price:           decimal.RequireFromString("343000"),
		FullMarketPrice: "No",
		VATExclusive:    "No",
		Description:     "Second-Hand Dwelling house /Apartment",
	}
	second := &Record{
		DateOfSale: time.Date(2010, 2, 3, 0, 0, 0, 0, time.UTC),
		Address:    "1 Quay Rd",
		Region:     "Cork",
		Price:      decimal.RequireFromString("185000.50"),
	}
	ds.Append(first)
	ds.Append(second)

	require.Equal(t, 2, ds.Len())
	assert.Equal(t, first, ds.Record(0))
	assert.Equal(t, second, ds.Record(1))
	assert.Equal(t, "Cork", ds.Region(1))
	assert.True(t, ds.Price(1).Equal(decimal.RequireFromString("185000.5")))
	assert.Equal(t, 2010, ds.Date(0).Year())
	assert.Equal(t, "1 Quay Rd", ds.Address(1))
	assert.Equal(t, "Second-Hand Dwelling house /Apartment", ds.Description(0))
}

func TestDatasetPricesReturnsCopy(t *testing.T) {
	ds := NewDataset(0)
	ds.Append(&Record{Price: decimal.NewFromInt(10)})

	prices := ds.Prices()
	prices[0] = decimal.NewFromInt(99)

	assert.True(t, ds.Price(0).Equal(decimal.NewFromInt(10)))
}

func TestNewDatasetNegativeCapacity(t *testing.T) {
	ds := NewDataset(-1)
	assert.Equal(t, 0, ds.Len())
}
