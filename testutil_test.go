package ssvfill

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// frozenClock returns a fixed instant for DATIME assertions.
func frozenClock() time.Time {
	return time.Date(2024, 3, 7, 9, 5, 2, 123456789, time.UTC)
}

const frozenStamp = "2024-03-07-09.05.02.000000"

// newFactorsWorkbook builds a workbook whose SSV_Factors sheet has header in
// row 1 and rows below it. Nil cells are left blank.
func newFactorsWorkbook(t *testing.T, header []any, rows [][]any) *excelize.File {
	t.Helper()
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetName("Sheet1", SourceSheet))
	require.NoError(t, f.SetSheetRow(SourceSheet, "A1", &header))
	for i, row := range rows {
		for j, v := range row {
			if v == nil {
				continue
			}
			require.NoError(t, f.SetCellValue(SourceSheet, CellName("", i+1, j), v))
		}
	}
	return f
}

func workbookBytes(t *testing.T, f *excelize.File) []byte {
	t.Helper()
	defer f.Close()
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return buf.Bytes()
}

// exampleWorkbook is durations [12, 24] with a single term column 5 holding
// 1.0 and a blank cell.
func exampleWorkbook(t *testing.T) []byte {
	t.Helper()
	return workbookBytes(t, newFactorsWorkbook(t,
		[]any{"Policy duration (in months)", 5},
		[][]any{{12, 1.0}, {24, nil}},
	))
}

func exampleParams() Params {
	return Params{
		Product:        "T36A",
		StartIndicator: "3",
		InspStart:      8,
		InspEnd:        10,
		Multiplier:     10000,
	}
}

func matrix(durations []string, terms []int, values ...[]Factor) *SourceMatrix {
	return &SourceMatrix{Durations: durations, Terms: terms, Values: values}
}

func num(v float64) Factor { return Factor{Value: v, Valid: true} }
