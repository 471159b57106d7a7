package ssvfill

import (
	"fmt"
	"math"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/shopspring/decimal"
)

// ScaledRecord pairs an identifier with its policy value.
type ScaledRecord struct {
	Identifier  string
	PolicyValue float64
}

// Scale multiplies each record's value by multiplier, using 0 for absent
// values. Order is preserved.
func Scale(records []ExpandedRecord, multiplier float64) []ScaledRecord {
	out := make([]ScaledRecord, len(records))
	for i, r := range records {
		out[i] = ScaledRecord{
			Identifier:  r.Identifier,
			PolicyValue: scaleValue(presentValue(r.Value), multiplier),
		}
	}
	return out
}

func presentValue(f Factor) float64 {
	if !f.Valid || math.IsNaN(f.Value) || math.IsInf(f.Value, 0) {
		return 0
	}
	return f.Value
}

// scaleValue multiplies in decimal so that factors such as 0.0123 scale to
// exact integers.
func scaleValue(v, multiplier float64) float64 {
	if math.IsNaN(multiplier) || math.IsInf(multiplier, 0) {
		return v * multiplier
	}
	return decimal.NewFromFloat(v).Mul(decimal.NewFromFloat(multiplier)).InexactFloat64()
}

// Scaler computes policy values with a compiled expression.
type Scaler struct {
	expression string
	multiplier float64
	program    *vm.Program
}

func valueEnv(r ExpandedRecord, multiplier float64) map[string]any {
	return map[string]any{
		"value":      presentValue(r.Value),
		"present":    r.Value.Valid,
		"multiplier": multiplier,
		"term":       r.Term,
		"indicator":  r.Indicator,
		"duration":   r.Duration,
	}
}

// NewScaler compiles expression against the record environment. The
// expression must produce a number.
func NewScaler(expression string, multiplier float64) (*Scaler, error) {
	program, err := compileValueExpression(expression)
	if err != nil {
		return nil, configErr("valueExpression", "%v", err)
	}
	return &Scaler{expression: expression, multiplier: multiplier, program: program}, nil
}

func compileValueExpression(expression string) (*vm.Program, error) {
	return expr.Compile(expression, expr.Env(valueEnv(ExpandedRecord{}, 0)), expr.AsFloat64())
}

// Scale evaluates the expression for every record, in order.
func (s *Scaler) Scale(records []ExpandedRecord) ([]ScaledRecord, error) {
	out := make([]ScaledRecord, len(records))
	for i, r := range records {
		result, err := expr.Run(s.program, valueEnv(r, s.multiplier))
		if err != nil {
			return nil, fmt.Errorf("evaluate %q for %s: %w", s.expression, r.Identifier, err)
		}
		v, ok := result.(float64)
		if !ok {
			return nil, configErr("valueExpression", "%q evaluated to %T for %s, expected number", s.expression, result, r.Identifier)
		}
		out[i] = ScaledRecord{Identifier: r.Identifier, PolicyValue: v}
	}
	return out, nil
}
