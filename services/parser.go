package services

import (
	"fmt"
	"strings"
	"time"

	"ppr-analyser/models"
)

const (
	quoteChar  = `"`
	fieldDelim = ","
	dateLayout = "02/01/2006"

	// date, address, location group, price, flags group
	minSegments = 5
	groupArity  = 4
)

// ParseLine turns one register line (terminator already stripped) into a
// Record. lineNo is used only for error reporting.
//
// The line is split on the quote character first, because quoted fields
// (address, price) may contain the delimiter:
//
//	01/01/2010,"5 Main St, Dublin 6",D6, Dublin,"€343,000.00",No,No,Second-Hand Dwelling
//
// gives the date, the address, ",D6, Dublin,", the price and
// ",No,No,Second-Hand Dwelling".
//
// A price that cannot be read is not fatal: the record carries zero and the
// warning is returned next to it.
func ParseLine(line string, lineNo int) (*models.Record, *PriceParseError, error) {
	segments := strings.Split(strings.TrimSpace(line), quoteChar)
	if len(segments) < minSegments {
		return nil, nil, &MalformedLineError{
			Line:    lineNo,
			Content: line,
			Reason:  fmt.Sprintf("expected %d quote-delimited segments, got %d", minSegments, len(segments)),
		}
	}

	dateToken := strings.TrimSpace(strings.Trim(segments[0], fieldDelim))
	date, err := time.Parse(dateLayout, dateToken)
	if err != nil {
		return nil, nil, &MalformedLineError{
			Line:    lineNo,
			Content: line,
			Reason:  fmt.Sprintf("invalid date of sale %q", dateToken),
		}
	}

	location, err := splitGroup(segments[2], "location", lineNo, line)
	if err != nil {
		return nil, nil, err
	}
	flags, err := splitGroup(segments[4], "flags", lineNo, line)
	if err != nil {
		return nil, nil, err
	}

	price, warn := NormalizePrice(segments[3])
	if warn != nil {
		warn.Line = lineNo
	}

	rec := &models.Record{
		DateOfSale:      date,
		Address:         segments[1],
		PostalCode:      location[1],
		Region:          strings.TrimSpace(location[2]),
		Price:           price,
		FullMarketPrice: strings.TrimSpace(flags[1]),
		VATExclusive:    strings.TrimSpace(flags[2]),
		Description:     strings.TrimSpace(flags[3]),
	}
	return rec, warn, nil
}

// splitGroup splits an unquoted comma-joined group that must hold exactly
// groupArity values.
func splitGroup(segment, name string, lineNo int, line string) ([]string, error) {
	parts := strings.Split(segment, fieldDelim)
	if len(parts) != groupArity {
		return nil, &MalformedLineError{
			Line:    lineNo,
			Content: line,
			Reason:  fmt.Sprintf("%s group has %d values, expected %d", name, len(parts), groupArity),
		}
	}
	return parts, nil
}
