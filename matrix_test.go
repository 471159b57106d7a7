package ssvfill

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestReadMatrix_Basic(t *testing.T) {
	f := newFactorsWorkbook(t,
		[]any{"Policy duration (in months)", 5, 10, 15},
		[][]any{
			{12, 0.5, 0.25, nil},
			{24, "NaN", 1.75, 2},
			{"36m", nil, "n/a", 3.5},
		},
	)
	defer f.Close()

	m, err := ReadMatrix(f)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 10, 15}, m.Terms)
	assert.Equal(t, []string{"12", "24", "36m"}, m.Durations)

	assert.Equal(t, num(0.5), m.At(0, 0))
	assert.Equal(t, num(0.25), m.At(0, 1))
	assert.False(t, m.At(0, 2).Valid, "blank cell")
	assert.False(t, m.At(1, 0).Valid, "NaN text")
	assert.Equal(t, num(2), m.At(1, 2))
	assert.False(t, m.At(2, 1).Valid, "non-numeric text")
	assert.Equal(t, num(3.5), m.At(2, 2))
	assert.Equal(t, 4, m.Blanks())
}

func TestReadMatrixFrom_Bytes(t *testing.T) {
	m, err := ReadMatrixFrom(bytes.NewReader(exampleWorkbook(t)))
	require.NoError(t, err)
	assert.Equal(t, []int{5}, m.Terms)
	assert.Equal(t, []string{"12", "24"}, m.Durations)
	assert.Equal(t, num(1), m.At(0, 0))
	assert.False(t, m.At(1, 0).Valid)
}

func TestReadMatrixFrom_NotAWorkbook(t *testing.T) {
	_, err := ReadMatrixFrom(bytes.NewReader([]byte("plain text")))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSchema)
}

func TestReadMatrix_IntegralDecimalHeader(t *testing.T) {
	f := newFactorsWorkbook(t, []any{"Duration", "5.0", 10.0, " 20 "}, [][]any{{1, 1, 2, 3}})
	defer f.Close()

	m, err := ReadMatrix(f)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 10, 20}, m.Terms)
}

func TestReadMatrix_MissingSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	_, err := ReadMatrix(f)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSchema)
	assert.Contains(t, err.Error(), "SSV_Factors")
}

func TestReadMatrix_WrongSheetName(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetName("Sheet1", "ssv_factors"))

	_, err := ReadMatrix(f)
	assert.ErrorIs(t, err, ErrSchema)
}

func TestReadMatrix_NonIntegerTerm(t *testing.T) {
	tests := []struct {
		name   string
		header []any
		cell   string
	}{
		{"text", []any{"Duration", 5, "ten"}, "SSV_Factors!C1"},
		{"fraction", []any{"Duration", 5.5}, "SSV_Factors!B1"},
		{"blank", []any{"Duration", nil, 10}, "SSV_Factors!B1"},
		{"out of range", []any{"Duration", 5, 1e20}, "SSV_Factors!C1"},
		{"out of range text", []any{"Duration", "-100000000000000000000"}, "SSV_Factors!B1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFactorsWorkbook(t, tt.header, [][]any{{12, 1, 2}})
			defer f.Close()

			_, err := ReadMatrix(f)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrSchema)

			var fe *FieldError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tt.cell, fe.Field)
		})
	}
}

func TestReadMatrix_EmptySheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetName("Sheet1", SourceSheet))

	_, err := ReadMatrix(f)
	assert.ErrorIs(t, err, ErrSchema)
}

func TestReadMatrix_NoTermColumns(t *testing.T) {
	f := newFactorsWorkbook(t, []any{"Duration"}, [][]any{{12}})
	defer f.Close()

	_, err := ReadMatrix(f)
	assert.ErrorIs(t, err, ErrSchema)
}

func TestReadMatrix_ValueWithoutHeader(t *testing.T) {
	f := newFactorsWorkbook(t, []any{"Duration", 5}, [][]any{{12, 1, 99}})
	defer f.Close()

	_, err := ReadMatrix(f)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSchema)
	assert.Contains(t, err.Error(), "SSV_Factors!C2")
}

func TestReadMatrix_TrailingBlankRowsDropped(t *testing.T) {
	f := newFactorsWorkbook(t,
		[]any{"Duration", 5},
		[][]any{{12, 1}, {nil, nil}, {24, 2}, {"  ", nil}, {nil, " "}},
	)
	defer f.Close()

	m, err := ReadMatrix(f)
	require.NoError(t, err)
	// The interior blank row is kept as a duration row.
	assert.Equal(t, []string{"12", "", "24"}, m.Durations)
	assert.False(t, m.At(1, 0).Valid)
	assert.Equal(t, num(2), m.At(2, 0))
}

func TestSourceMatrix_AtOutOfRange(t *testing.T) {
	m := matrix([]string{"12"}, []int{5, 10}, []Factor{num(1)})
	assert.Equal(t, num(1), m.At(0, 0))
	assert.Equal(t, Factor{}, m.At(0, 1))
	assert.Equal(t, Factor{}, m.At(3, 0))
}

func TestReadMatrix_TermOutOfRange(t *testing.T) {
	f := newFactorsWorkbook(t, []any{"Duration", 1e20}, [][]any{{12, 1}})
	defer f.Close()

	m, err := ReadMatrix(f)
	require.Error(t, err)
	assert.Nil(t, m)
	assert.ErrorIs(t, err, ErrSchema)
	assert.Contains(t, err.Error(), "term out of range")
}
