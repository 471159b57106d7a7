package ssvfill

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Result is the output table of one run.
type Result struct {
	RunID     string
	Timestamp string // DATIME shared by every row
	Rows      []OutputRow
}

// Pipeline runs Expander → Scaler → Projector over a source matrix.
// A Pipeline holds no per-run state and may be reused.
type Pipeline struct {
	opts *Options
}

// NewPipeline creates a Pipeline with the given options.
func NewPipeline(opts ...Option) *Pipeline {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return &Pipeline{opts: o}
}

// Generate reads inputPath and writes the Sheet3 workbook to outputPath.
func Generate(inputPath, outputPath string, p Params, opts ...Option) error {
	return NewPipeline(opts...).Generate(inputPath, outputPath, p)
}

// GenerateBytes converts an uploaded workbook and returns the output bytes.
func GenerateBytes(input []byte, p Params, opts ...Option) ([]byte, error) {
	return NewPipeline(opts...).GenerateBytes(input, p)
}

// GenerateReader reads a workbook from in and writes the output to out.
func GenerateReader(in io.Reader, out io.Writer, p Params, opts ...Option) error {
	return NewPipeline(opts...).GenerateWriter(in, out, p)
}

// Generate reads inputPath and writes the output workbook to outputPath. The
// output file is removed if the run fails.
func (pl *Pipeline) Generate(inputPath, outputPath string, p Params) error {
	in, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("open input file %q: %w", inputPath, err)
	}
	defer in.Close()

	// Build the whole workbook before touching the destination.
	var buf bytes.Buffer
	if err := pl.GenerateWriter(in, &buf, p); err != nil {
		return err
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create output file %q: %w", outputPath, err)
	}
	if _, err := buf.WriteTo(out); err != nil {
		out.Close()
		os.Remove(outputPath)
		return fmt.Errorf("write output file %q: %w", outputPath, err)
	}
	if err := out.Close(); err != nil {
		os.Remove(outputPath)
		return fmt.Errorf("close output file %q: %w", outputPath, err)
	}
	return nil
}

// GenerateBytes converts input and returns the output workbook as bytes.
func (pl *Pipeline) GenerateBytes(input []byte, p Params) ([]byte, error) {
	var buf bytes.Buffer
	if err := pl.GenerateWriter(bytes.NewReader(input), &buf, p); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GenerateWriter reads a workbook from in and writes the output to w.
// Parameters are validated before the input is opened.
func (pl *Pipeline) GenerateWriter(in io.Reader, w io.Writer, p Params) error {
	if err := FirstError(pl.Validate(p)); err != nil {
		return err
	}
	src, err := ReadMatrixFrom(in)
	if err != nil {
		return err
	}
	res, err := pl.Run(src, p)
	if err != nil {
		return err
	}
	if err := WriteSheet(res.Rows, w, pl.opts.headerFill); err != nil {
		return fmt.Errorf("run %s: %w", res.RunID, err)
	}
	return nil
}

// Run converts src into Sheet3 rows. The clock is read exactly once; any
// failure aborts the run without returning rows.
func (pl *Pipeline) Run(src *SourceMatrix, p Params) (*Result, error) {
	res := &Result{
		RunID:     uuid.NewString(),
		Timestamp: FormatTimestamp(pl.opts.clock()),
	}
	log := pl.opts.logger.With(zap.String("run_id", res.RunID))
	started := time.Now()

	if err := FirstError(pl.Validate(p)); err != nil {
		return nil, err
	}

	expanded, err := Expand(src, p.Product, p.StartIndicator)
	if err != nil {
		return nil, fmt.Errorf("expand: %w", err)
	}
	log.Debug("expanded source matrix",
		zap.Int("terms", len(src.Terms)),
		zap.Int("durations", len(src.Durations)),
		zap.Int("records", len(expanded)))

	var scaled []ScaledRecord
	if pl.opts.valueExpr != "" {
		s, err := NewScaler(pl.opts.valueExpr, p.Multiplier)
		if err != nil {
			return nil, err
		}
		if scaled, err = s.Scale(expanded); err != nil {
			return nil, fmt.Errorf("scale: %w", err)
		}
	} else {
		scaled = Scale(expanded, p.Multiplier)
	}
	log.Debug("scaled records", zap.Float64("multiplier", p.Multiplier), zap.String("expression", pl.opts.valueExpr))

	res.Rows = Project(scaled, p.InspStart, p.InspEnd, res.Timestamp)
	log.Info("generated sheet",
		zap.String("product", p.Product),
		zap.Int("rows", len(res.Rows)),
		zap.Int("insp_start", p.InspStart),
		zap.Int("insp_end", p.InspEnd),
		zap.Duration("elapsed", time.Since(started)))
	return res, nil
}
