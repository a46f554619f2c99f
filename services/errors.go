package services

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedLine marks an input line whose field layout is not the
	// expected quote/comma structure.
	ErrMalformedLine = errors.New("malformed line")
	// ErrPriceParse marks a price token that could not be read as a number.
	// It is always recovered by substituting zero.
	ErrPriceParse = errors.New("price parse failure")
	// ErrEmptyDataset is returned when statistics are requested over no rows.
	ErrEmptyDataset = errors.New("empty dataset")
	// ErrInvalidRowCap is returned for a row cap below the usable minimum.
	ErrInvalidRowCap = errors.New("invalid row cap")
)

// MalformedLineError identifies the offending input line.
type MalformedLineError struct {
	Line    int // 1-based, header excluded
	Content string
	Reason  string
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("malformed line %d: %s: %q", e.Line, e.Reason, e.Content)
}

func (e *MalformedLineError) Unwrap() error { return ErrMalformedLine }

// PriceParseError is a non-fatal warning about an unreadable price.
type PriceParseError struct {
	Line    int
	Raw     string
	Cleaned string
	Err     error
}

func (e *PriceParseError) Error() string {
	msg := fmt.Sprintf("price %q on line %d", e.Raw, e.Line)
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", ErrPriceParse, msg, e.Err)
	}
	return fmt.Sprintf("%s: %s: no numeric characters", ErrPriceParse, msg)
}

func (e *PriceParseError) Unwrap() error { return ErrPriceParse }

// RowCapError reports a rejected row cap.
type RowCapError struct {
	Requested int
	Minimum   int
}

func (e *RowCapError) Error() string {
	return fmt.Sprintf("%s: %d rows requested, minimum is %d", ErrInvalidRowCap, e.Requested, e.Minimum)
}

func (e *RowCapError) Unwrap() error { return ErrInvalidRowCap }
