package ssvfill

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Factor is a single body cell of the source matrix. Valid is false for
// blank, NaN or non-numeric cells.
type Factor struct {
	Value float64
	Valid bool
}

// SourceMatrix is the duration × term grid read from the SSV_Factors sheet.
// Values[i][j] holds the factor for Durations[i] and Terms[j].
type SourceMatrix struct {
	Durations []string // first column, passed through unchanged
	Terms     []int    // header row after the first column
	Values    [][]Factor
}

// At returns the factor at duration row i and term column j.
func (m *SourceMatrix) At(i, j int) Factor {
	if i >= len(m.Values) || j >= len(m.Values[i]) {
		return Factor{}
	}
	return m.Values[i][j]
}

// Blanks counts the body cells without a usable value.
func (m *SourceMatrix) Blanks() int {
	n := 0
	for i := range m.Durations {
		for j := range m.Terms {
			if !m.At(i, j).Valid {
				n++
			}
		}
	}
	return n
}

// ReadMatrixFrom opens a workbook from r and reads its SSV_Factors sheet.
func ReadMatrixFrom(r io.Reader) (*SourceMatrix, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, schemaErr("", "open workbook: %v", err)
	}
	defer f.Close()
	return ReadMatrix(f)
}

// ReadMatrix reads the SSV_Factors sheet of f. Cells are read raw so
// number formats in the source do not leak into term or factor parsing.
func ReadMatrix(f *excelize.File) (*SourceMatrix, error) {
	if !hasSheet(f, SourceSheet) {
		return nil, schemaErr("", "workbook has no sheet named %q", SourceSheet)
	}
	rows, err := f.GetRows(SourceSheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read rows from sheet %q: %w", SourceSheet, err)
	}
	rows = trimBlankRows(rows)
	if len(rows) == 0 {
		return nil, schemaErr(SourceSheet, "sheet is empty")
	}

	header := rows[0]
	if len(header) < 2 {
		return nil, schemaErr(SourceSheet, "header row has no term columns")
	}
	m := &SourceMatrix{Terms: make([]int, 0, len(header)-1)}
	for col := 1; col < len(header); col++ {
		term, err := parseTerm(header[col])
		if err != nil {
			return nil, schemaErr(CellName(SourceSheet, 0, col), "term header %q: %v", header[col], err)
		}
		m.Terms = append(m.Terms, term)
	}

	for rowIdx, row := range rows[1:] {
		if len(row) > len(header) {
			for col := len(header); col < len(row); col++ {
				if strings.TrimSpace(row[col]) != "" {
					return nil, schemaErr(CellName(SourceSheet, rowIdx+1, col), "value has no term header")
				}
			}
		}
		duration := ""
		if len(row) > 0 {
			duration = row[0]
		}
		values := make([]Factor, len(m.Terms))
		for j := range m.Terms {
			if j+1 < len(row) {
				values[j] = parseFactor(row[j+1])
			}
		}
		m.Durations = append(m.Durations, duration)
		m.Values = append(m.Values, values)
	}
	return m, nil
}

func hasSheet(f *excelize.File, name string) bool {
	for _, s := range f.GetSheetList() {
		if s == name {
			return true
		}
	}
	return false
}

// trimBlankRows drops trailing rows with no non-blank cell.
func trimBlankRows(rows [][]string) [][]string {
	end := len(rows)
	for end > 0 && isBlankRow(rows[end-1]) {
		end--
	}
	return rows[:end]
}

func isBlankRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// parseTerm accepts integers and integral decimals ("5", "5.0").
func parseTerm(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("blank")
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("not an integer")
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("not an integer")
	}
	if f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, fmt.Errorf("term out of range")
	}
	return int(f), nil
}

func parseFactor(s string) Factor {
	s = strings.TrimSpace(s)
	if s == "" {
		return Factor{}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return Factor{}
	}
	return Factor{Value: v, Valid: true}
}
