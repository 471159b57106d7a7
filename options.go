package ssvfill

import (
	"time"

	"go.uber.org/zap"
)

// Params are the per-run inputs collected from the caller.
type Params struct {
	Product        string  // identifier prefix
	StartIndicator string  // 1-2 digits, left-padded to 2
	InspStart      int     // first INSPRM slot written, 1-based inclusive
	InspEnd        int     // last INSPRM slot written, 1-based inclusive
	Multiplier     float64 // policy value scaling factor
}

// DefaultParams returns the INSPRM range and multiplier defaults. Product and
// StartIndicator have no default.
func DefaultParams() Params {
	return Params{
		InspStart:  8,
		InspEnd:    55,
		Multiplier: 10000,
	}
}

// Options holds configuration for the Pipeline.
type Options struct {
	clock           func() time.Time
	logger          *zap.Logger
	valueExpr       string
	headerFill      string
	permissiveRange bool
}

func defaultOptions() *Options {
	return &Options{
		clock:      time.Now,
		logger:     zap.NewNop(),
		headerFill: DefaultHeaderFill,
	}
}

// Option configures the Pipeline.
type Option func(*Options)

// WithClock sets the clock read once per run for the DATIME column.
func WithClock(clock func() time.Time) Option {
	return func(o *Options) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// WithLogger sets the logger (default: no-op).
func WithLogger(logger *zap.Logger) Option {
	return func(o *Options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithValueExpression replaces "value * multiplier" with an expr-lang
// expression. Available variables: value, present, multiplier, term,
// indicator, duration.
func WithValueExpression(expression string) Option {
	return func(o *Options) { o.valueExpr = expression }
}

// WithHeaderFill sets the header row fill color (default: "CCCCFF").
// An empty color writes an unstyled header.
func WithHeaderFill(color string) Option {
	return func(o *Options) { o.headerFill = color }
}

// WithPermissiveRange accepts inverted or out-of-bounds INSPRM ranges and
// zero-fills the slots outside them instead of failing the run.
func WithPermissiveRange(permissive bool) Option {
	return func(o *Options) { o.permissiveRange = permissive }
}
