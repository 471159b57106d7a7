package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javajack/ssvfill"
)

// errMissingInput is returned before any processing when a required input is absent.
var errMissingInput = errors.New("missing input: please provide a file and fill all inputs to proceed")

// paramFlags are the run parameters shared by convert, validate and describe.
type paramFlags struct {
	product         string
	startIndicator  string
	inspStart       int
	inspEnd         int
	multiplier      float64
	valueExpr       string
	permissiveRange bool
}

func (f *paramFlags) register(cmd *cobra.Command) {
	d := ssvfill.DefaultParams()
	fs := cmd.Flags()
	fs.StringVarP(&f.product, "product", "p", "", "product code used as identifier prefix (e.g. T36A)")
	fs.StringVarP(&f.startIndicator, "start-indicator", "s", "", "1-2 digit start indicator (e.g. 3)")
	fs.IntVar(&f.inspStart, "insp-start", d.InspStart, "first INSPRM column written (1-99)")
	fs.IntVar(&f.inspEnd, "insp-end", d.InspEnd, "last INSPRM column written (1-99)")
	fs.Float64Var(&f.multiplier, "multiplier", d.Multiplier, "policy value multiplier (>= 1)")
	fs.StringVar(&f.valueExpr, "value-expr", "", `policy value expression, e.g. "value * multiplier"`)
	fs.BoolVar(&f.permissiveRange, "permissive-range", false, "zero-fill instead of failing on an inverted or out-of-range INSPRM range")
}

// params merges the flags over the configured defaults. Flags left unset keep
// the config value.
func (f *paramFlags) params(cmd *cobra.Command, a *app) ssvfill.Params {
	p := a.cfg.Params()
	p.Product = f.product
	p.StartIndicator = f.startIndicator
	fs := cmd.Flags()
	if fs.Changed("insp-start") {
		p.InspStart = f.inspStart
	}
	if fs.Changed("insp-end") {
		p.InspEnd = f.inspEnd
	}
	if fs.Changed("multiplier") {
		p.Multiplier = f.multiplier
	}
	return p
}

func (f *paramFlags) options(cmd *cobra.Command, a *app) []ssvfill.Option {
	opts := append(a.cfg.Options(), ssvfill.WithLogger(a.logger))
	if f.valueExpr != "" {
		opts = append(opts, ssvfill.WithValueExpression(f.valueExpr))
	}
	if cmd.Flags().Changed("permissive-range") {
		opts = append(opts, ssvfill.WithPermissiveRange(f.permissiveRange))
	}
	return opts
}

func requireInputs(p ssvfill.Params, inputPath string) error {
	var missing []string
	if inputPath == "" {
		missing = append(missing, "--input")
	}
	if p.Product == "" {
		missing = append(missing, "--product")
	}
	if p.StartIndicator == "" {
		missing = append(missing, "--start-indicator")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w (%v)", errMissingInput, missing)
	}
	return nil
}
