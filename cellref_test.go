package ssvfill

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColToName(t *testing.T) {
	tests := []struct {
		col  int
		want string
	}{
		{0, "A"},
		{25, "Z"},
		{26, "AA"},
		{115, "DL"},
		{701, "ZZ"},
		{702, "AAA"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ColToName(tt.col), "col %d", tt.col)
	}
}

func TestCellName(t *testing.T) {
	assert.Equal(t, "A1", CellName("", 0, 0))
	assert.Equal(t, "C2", CellName("", 1, 2))
	assert.Equal(t, "SSV_Factors!B1", CellName(SourceSheet, 0, 1))
}
