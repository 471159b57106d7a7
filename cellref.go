package ssvfill

import "strconv"

// ColToName converts a 0-based column index to a column name.
// 0→"A", 25→"Z", 26→"AA"
func ColToName(col int) string {
	result := ""
	col++
	for col > 0 {
		col--
		result = string(rune('A'+col%26)) + result
		col /= 26
	}
	return result
}

// CellName formats a 0-based row and column as "A1", or "Sheet!A1" when
// sheet is set.
func CellName(sheet string, row, col int) string {
	name := ColToName(col) + strconv.Itoa(row+1)
	if sheet == "" {
		return name
	}
	return sheet + "!" + name
}
