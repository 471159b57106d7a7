package ssvfill

import (
	"fmt"
	"strconv"
)

// MaxIndicator is the largest indicator that fits in two digits.
const MaxIndicator = 99

// ExpandedRecord is one (duration, term) cell of the source matrix.
type ExpandedRecord struct {
	Indicator  string // two digits, start indicator + duration row
	Duration   string
	Product    string
	Value      Factor
	Term       int
	Identifier string // Product + Term + Indicator
}

// ParseStartIndicator validates a 1-2 digit start indicator and returns its
// value. A single digit is treated as if it had a leading zero.
func ParseStartIndicator(s string) (int, error) {
	if s == "" {
		return 0, inputErr("startIndicator", "missing")
	}
	if len(s) > 2 {
		return 0, inputErr("startIndicator", "%q has more than 2 digits", s)
	}
	for _, ch := range s {
		if ch < '0' || ch > '9' {
			return 0, inputErr("startIndicator", "%q is not numeric", s)
		}
	}
	if len(s) == 1 {
		s = "0" + s
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, inputErr("startIndicator", "%q: %v", s, err)
	}
	return n, nil
}

// FormatIndicator renders n as a zero-padded two digit indicator.
func FormatIndicator(n int) string {
	return fmt.Sprintf("%02d", n)
}

// Identifier composes product, term and indicator into a row key.
func Identifier(product string, term int, indicator string) string {
	return product + strconv.Itoa(term) + indicator
}

// Expand flattens src into one record per cell. Terms are the outer loop and
// durations the inner one, so the output holds every duration of the first
// term, then every duration of the second, and so on. The indicator depends
// only on the duration row.
func Expand(src *SourceMatrix, product, startIndicator string) ([]ExpandedRecord, error) {
	if product == "" {
		return nil, inputErr("product", "missing")
	}
	start, err := ParseStartIndicator(startIndicator)
	if err != nil {
		return nil, err
	}
	if n := len(src.Durations); n > 0 && start+n-1 > MaxIndicator {
		return nil, inputErr("startIndicator", "%s + %d durations exceeds %d", FormatIndicator(start), n, MaxIndicator)
	}

	indicators := make([]string, len(src.Durations))
	for i := range src.Durations {
		indicators[i] = FormatIndicator(start + i)
	}

	records := make([]ExpandedRecord, 0, len(src.Terms)*len(src.Durations))
	for j, term := range src.Terms {
		for i, duration := range src.Durations {
			records = append(records, ExpandedRecord{
				Indicator:  indicators[i],
				Duration:   duration,
				Product:    product,
				Value:      src.At(i, j),
				Term:       term,
				Identifier: Identifier(product, term, indicators[i]),
			})
		}
	}
	return records, nil
}
