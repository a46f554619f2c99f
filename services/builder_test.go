package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleLines() []string {
	return []string{
		registerLine("01/01/2010", "5 Main St, Dublin 6", "Dublin", "343,000.00", "Second-Hand Dwelling house /Apartment"),
		registerLine("03/01/2010", "1 Quay Rd", "Cork", "185,000.00", "Second-Hand Dwelling house /Apartment"),
		registerLine("04/02/2010", "2 Hill Rd", "Galway", "210,500.00", "New Dwelling house /Apartment"),
		registerLine("10/03/2010", "3 Shore Rd", "Dublin", "99,000.00", "Second-Hand Dwelling house /Apartment"),
	}
}

func TestBuildAllLines(t *testing.T) {
	b := NewDatasetBuilder(newTestLogger(), BuildOptions{RowCap: 10, Strict: true})
	res, err := b.Build(sampleLines())
	require.NoError(t, err)

	assert.Equal(t, 4, res.Dataset.Len())
	assert.Equal(t, 4, res.Processed)
	assert.Zero(t, res.Skipped)
	assert.Zero(t, res.PriceWarnings)
	assert.Equal(t, "Galway", res.Dataset.Region(2))
}

func TestBuildRespectsRowCap(t *testing.T) {
	b := NewDatasetBuilder(newTestLogger(), BuildOptions{RowCap: 2, Strict: true})
	res, err := b.Build(sampleLines())
	require.NoError(t, err)

	assert.Equal(t, 2, res.Dataset.Len())
	assert.Equal(t, "Cork", res.Dataset.Region(1))
}

func TestBuildStrictAbortsOnMalformedLine(t *testing.T) {
	lines := sampleLines()
	lines[2] = `04/02/2010,"2 Hill Rd","€210,500.00",No,No,New`

	b := NewDatasetBuilder(newTestLogger(), BuildOptions{RowCap: len(lines), Strict: true})
	res, err := b.Build(lines)
	assert.Nil(t, res)
	require.Error(t, err)

	var mle *MalformedLineError
	require.True(t, errors.As(err, &mle))
	assert.Equal(t, 3, mle.Line)
	assert.Equal(t, lines[2], mle.Content)
}

func TestBuildLenientSkipsMalformedLine(t *testing.T) {
	lines := sampleLines()
	lines[1] = "garbage"

	b := NewDatasetBuilder(newTestLogger(), BuildOptions{RowCap: len(lines), Strict: false})
	res, err := b.Build(lines)
	require.NoError(t, err)

	assert.Equal(t, 3, res.Dataset.Len())
	assert.Equal(t, 4, res.Processed)
	assert.Equal(t, 1, res.Skipped)
	assert.Equal(t, "Galway", res.Dataset.Region(1))
}

func TestBuildCountsPriceWarnings(t *testing.T) {
	lines := sampleLines()
	lines[0] = `01/01/2010,"5 Main St",, Dublin,"€",No,No,Second-Hand`

	b := NewDatasetBuilder(newTestLogger(), BuildOptions{RowCap: len(lines), Strict: true})
	res, err := b.Build(lines)
	require.NoError(t, err)

	assert.Equal(t, 4, res.Dataset.Len())
	assert.Equal(t, 1, res.PriceWarnings)
	assert.True(t, res.Dataset.Price(0).IsZero())
}

func TestBuildRejectsRowCapBelowOne(t *testing.T) {
	b := NewDatasetBuilder(newTestLogger(), BuildOptions{RowCap: 0, Strict: true})
	res, err := b.Build(sampleLines())
	assert.Nil(t, res)
	assert.True(t, errors.Is(err, ErrInvalidRowCap))
}

func TestValidateRowCap(t *testing.T) {
	assert.NoError(t, ValidateRowCap(2))
	assert.NoError(t, ValidateRowCap(1000))

	err := ValidateRowCap(1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidRowCap))

	var rce *RowCapError
	require.True(t, errors.As(err, &rce))
	assert.Equal(t, 1, rce.Requested)
	assert.Equal(t, MinRowCap, rce.Minimum)
}
