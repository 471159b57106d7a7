package ssvfill

import (
	"fmt"
	"strconv"
	"strings"
)

// Describe returns a human-readable summary of src and of the rows a run with
// p would produce. Useful for checking an upload before converting it.
func Describe(src *SourceMatrix, p Params) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Source: %s (%d durations x %d terms, %d blank cells)\n",
		SourceSheet, len(src.Durations), len(src.Terms), src.Blanks())

	terms := make([]string, len(src.Terms))
	for i, t := range src.Terms {
		terms[i] = strconv.Itoa(t)
	}
	fmt.Fprintf(&b, "Terms: %s\n", strings.Join(terms, ", "))
	fmt.Fprintf(&b, "Durations: %s\n", strings.Join(src.Durations, ", "))
	fmt.Fprintf(&b, "Rows: %d\n", len(src.Terms)*len(src.Durations))

	if p.Product == "" || len(src.Terms) == 0 || len(src.Durations) == 0 {
		return b.String()
	}
	start, err := ParseStartIndicator(p.StartIndicator)
	if err != nil {
		fmt.Fprintf(&b, "Indicators: %v\n", err)
		return b.String()
	}
	last := start + len(src.Durations) - 1
	if last > MaxIndicator {
		fmt.Fprintf(&b, "Indicators: %s..%d exceeds %d\n", FormatIndicator(start), last, MaxIndicator)
		return b.String()
	}
	first, lastInd := FormatIndicator(start), FormatIndicator(last)
	fmt.Fprintf(&b, "Indicators: %s..%s\n", first, lastInd)
	fmt.Fprintf(&b, "Identifiers: %s .. %s\n",
		Identifier(p.Product, src.Terms[0], first),
		Identifier(p.Product, src.Terms[len(src.Terms)-1], lastInd))
	if p.InspStart <= p.InspEnd {
		fmt.Fprintf(&b, "INSPRM range: %s..%s\n", clampedInspColumn(p.InspStart), clampedInspColumn(p.InspEnd))
	} else {
		b.WriteString("INSPRM range: empty\n")
	}
	return b.String()
}

func clampedInspColumn(i int) string {
	i = max(1, min(i, InspSlots))
	return INSPRMColumn(i)
}
