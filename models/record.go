package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Record is one parsed sale from the property price register.
type Record struct {
	DateOfSale      time.Time
	Address         string
	PostalCode      string
	Region          string
	Price           decimal.Decimal
	FullMarketPrice string
	VATExclusive    string
	Description     string
}

// Dataset stores parsed records column by column. Every column always has
// the same length; index i of each column belongs to the same sale.
type Dataset struct {
	dates            []time.Time
	addresses        []string
	postalCodes      []string
	regions          []string
	prices           []decimal.Decimal
	fullMarketPrices []string
	vatExclusive     []string
	descriptions     []string
}

// NewDataset returns an empty Dataset with room for capacity records.
func NewDataset(capacity int) *Dataset {
	if capacity < 0 {
		capacity = 0
	}
	return &Dataset{
		dates:            make([]time.Time, 0, capacity),
		addresses:        make([]string, 0, capacity),
		postalCodes:      make([]string, 0, capacity),
		regions:          make([]string, 0, capacity),
		prices:           make([]decimal.Decimal, 0, capacity),
		fullMarketPrices: make([]string, 0, capacity),
		vatExclusive:     make([]string, 0, capacity),
		descriptions:     make([]string, 0, capacity),
	}
}

// Append adds every field of r to the end of its column.
func (d *Dataset) Append(r *Record) {
	d.dates = append(d.dates, r.DateOfSale)
	d.addresses = append(d.addresses, r.Address)
	d.postalCodes = append(d.postalCodes, r.PostalCode)
	d.regions = append(d.regions, r.Region)
	d.prices = append(d.prices, r.Price)
	d.fullMarketPrices = append(d.fullMarketPrices, r.FullMarketPrice)
	d.vatExclusive = append(d.vatExclusive, r.VATExclusive)
	d.descriptions = append(d.descriptions, r.Description)
}

// Len returns the number of records.
func (d *Dataset) Len() int { return len(d.prices) }

func (d *Dataset) Date(i int) time.Time        { return d.dates[i] }
func (d *Dataset) Address(i int) string        { return d.addresses[i] }
func (d *Dataset) Region(i int) string         { return d.regions[i] }
func (d *Dataset) Price(i int) decimal.Decimal { return d.prices[i] }
func (d *Dataset) Description(i int) string    { return d.descriptions[i] }

// Record re-assembles the i-th row.
func (d *Dataset) Record(i int) *Record {
	return &Record{
		DateOfSale:      d.dates[i],
		Address:         d.addresses[i],
		PostalCode:      d.postalCodes[i],
		Region:          d.regions[i],
		Price:           d.prices[i],
		FullMarketPrice: d.fullMarketPrices[i],
		VATExclusive:    d.vatExclusive[i],
		Description:     d.descriptions[i],
	}
}

// Prices returns a copy of the price column.
func (d *Dataset) Prices() []decimal.Decimal {
	out := make([]decimal.Decimal, len(d.prices))
	copy(out, d.prices)
	return out
}
