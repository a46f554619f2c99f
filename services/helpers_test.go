package services

import (
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"ppr-analyser/models"
	"ppr-analyser/utils"
)

func newTestLogger() *utils.Logger { return utils.NewLoggerWithOutput(io.Discard, io.Discard) }

// registerLine renders a sale in the register's export layout.
func registerLine(date, address, region, price, description string) string {
	return fmt.Sprintf(`%s,"%s",, %s,"€%s",No,No,%s`, date, address, region, price, description)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type sale struct {
	date   time.Time
	price  string
	region string
}

func datasetOf(sales ...sale) *models.Dataset {
	ds := models.NewDataset(len(sales))
	for i, s := range sales {
		region := s.region
		if region == "" {
			region = "Dublin"
		}
		ds.Append(&models.Record{
			DateOfSale:  s.date,
			Address:     fmt.Sprintf("%d Main St", i+1),
			Region:      region,
			Price:       decimal.RequireFromString(s.price),
			Description: "Second-Hand Dwelling house /Apartment",
		})
	}
	return ds
}

// generated runs the engine over ds and fails the test on error.
func generated(t *testing.T, ds *models.Dataset) *models.AggregateResult {
	t.Helper()
	r, err := NewAggregationEngine(newTestLogger()).Generate(ds)
	require.NoError(t, err)
	return r
}
