package ssvfill

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func records(values ...Factor) []ExpandedRecord {
	out := make([]ExpandedRecord, len(values))
	for i, v := range values {
		ind := FormatIndicator(i + 1)
		out[i] = ExpandedRecord{Indicator: ind, Duration: "12", Product: "T", Value: v, Term: 5, Identifier: Identifier("T", 5, ind)}
	}
	return out
}

func TestScale_Example(t *testing.T) {
	scaled := Scale(records(num(1), Factor{}), 10000)
	assert.Equal(t, []ScaledRecord{
		{Identifier: "T501", PolicyValue: 10000},
		{Identifier: "T502", PolicyValue: 0},
	}, scaled)
}

func TestScale_NaNTreatedAsAbsent(t *testing.T) {
	scaled := Scale(records(Factor{Value: math.NaN(), Valid: true}, Factor{Value: math.Inf(1), Valid: true}), 10000)
	assert.Equal(t, 0.0, scaled[0].PolicyValue)
	assert.Equal(t, 0.0, scaled[1].PolicyValue)
}

func TestScale_ExactDecimalProduct(t *testing.T) {
	scaled := Scale(records(num(0.0123), num(1.1), num(0.07)), 10000)
	assert.Equal(t, 123.0, scaled[0].PolicyValue)
	assert.Equal(t, 11000.0, scaled[1].PolicyValue)
	assert.Equal(t, 700.0, scaled[2].PolicyValue)
}

func TestScale_PreservesOrder(t *testing.T) {
	in := records(num(3), num(1), num(2))
	scaled := Scale(in, 1)
	for i := range in {
		assert.Equal(t, in[i].Identifier, scaled[i].Identifier)
		assert.Equal(t, in[i].Value.Value, scaled[i].PolicyValue)
	}
}

func TestScaler_Expression(t *testing.T) {
	s, err := NewScaler("present ? value * multiplier + term : -1.0", 100)
	require.NoError(t, err)

	scaled, err := s.Scale(records(num(2), Factor{}))
	require.NoError(t, err)
	assert.Equal(t, 205.0, scaled[0].PolicyValue)
	assert.Equal(t, -1.0, scaled[1].PolicyValue)
}

func TestScaler_DefaultExpressionMatchesScale(t *testing.T) {
	in := records(num(1.5), Factor{}, num(0.25))
	s, err := NewScaler("value * multiplier", 10000)
	require.NoError(t, err)

	got, err := s.Scale(in)
	require.NoError(t, err)
	assert.Equal(t, Scale(in, 10000), got)
}

func TestNewScaler_InvalidExpression(t *testing.T) {
	for _, src := range []string{"value *", "indicator", "unknown + 1"} {
		_, err := NewScaler(src, 1)
		require.Error(t, err, src)
		assert.ErrorIs(t, err, ErrConfig, src)
	}
}
