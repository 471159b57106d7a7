package ssvfill

import (
	"math"
	"time"
)

// OutputRow is one Sheet3 row. Only the identifier, the INSPRM slots and the
// run timestamp vary; every other column is a constant of the layout.
type OutputRow struct {
	Identifier string
	Insp       [InspSlots]float64 // Insp[0] is INSPRM01
	Timestamp  string
}

// Values returns the row's cells in Columns order.
func (r OutputRow) Values() []any {
	v := make([]any, 0, len(Columns))
	v = append(v, r.Identifier)
	for i := 0; i < 9; i++ {
		v = append(v, 0) // INSTPR, MFACT*
	}
	v = append(v, PremUnit, 0, "")
	for _, p := range r.Insp {
		v = append(v, p)
	}
	return append(v, UserProfile, JobName, r.Timestamp, 0)
}

// FormatTimestamp renders t for the DATIME column. The fractional seconds are
// always written as zeros.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout) + TimestampFraction
}

// Project maps each scaled record onto a Sheet3 row. Slot i (1-based) holds
// the policy value when inspStart <= i <= inspEnd and 0 otherwise, so an
// empty or inverted range yields all-zero slots. NaN and infinite values are
// written as 0.
func Project(records []ScaledRecord, inspStart, inspEnd int, timestamp string) []OutputRow {
	rows := make([]OutputRow, len(records))
	for n, rec := range records {
		value := rec.PolicyValue
		if math.IsNaN(value) || math.IsInf(value, 0) {
			value = 0
		}
		row := OutputRow{Identifier: rec.Identifier, Timestamp: timestamp}
		for i := 1; i <= InspSlots; i++ {
			if inspStart <= i && i <= inspEnd {
				row.Insp[i-1] = value
			}
		}
		rows[n] = row
	}
	return rows
}
