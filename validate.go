package ssvfill

import (
	"errors"
	"fmt"
	"math"
)

// Severity indicates the severity of a validation issue.
type Severity int

const (
	SeverityError   Severity = iota // Run will fail
	SeverityWarning                 // Run may produce unexpected results
)

// ValidationIssue represents a single problem found in the run parameters.
type ValidationIssue struct {
	Severity Severity
	Field    string
	Message  string
	Err      error // wraps ErrInput or ErrConfig
}

// String formats the issue as "[ERROR] product: message" or "[WARN] ...".
func (v ValidationIssue) String() string {
	sev := "ERROR"
	if v.Severity == SeverityWarning {
		sev = "WARN"
	}
	return fmt.Sprintf("[%s] %s: %s", sev, v.Field, v.Message)
}

// Validate checks run parameters without reading any source data.
func Validate(p Params, opts ...Option) []ValidationIssue {
	return NewPipeline(opts...).Validate(p)
}

// Validate checks p against the pipeline's options.
func (pl *Pipeline) Validate(p Params) []ValidationIssue {
	var issues []ValidationIssue
	issues = append(issues, validateInputs(p)...)
	issues = append(issues, validateRange(p, pl.opts.permissiveRange)...)
	issues = append(issues, validateMultiplier(p)...)
	if pl.opts.valueExpr != "" {
		if _, err := compileValueExpression(pl.opts.valueExpr); err != nil {
			issues = append(issues, issueOf(SeverityError, configErr("valueExpression", "invalid expression syntax %q: %v", pl.opts.valueExpr, err)))
		}
	}
	return issues
}

// FirstError returns the error of the first Error-severity issue, or nil.
func FirstError(issues []ValidationIssue) error {
	for _, is := range issues {
		if is.Severity == SeverityError {
			return is.Err
		}
	}
	return nil
}

func issueOf(sev Severity, err error) ValidationIssue {
	is := ValidationIssue{Severity: sev, Message: err.Error(), Err: err}
	var fe *FieldError
	if errors.As(err, &fe) {
		is.Field = fe.Field
		is.Message = fe.Msg
	}
	return is
}

func validateInputs(p Params) []ValidationIssue {
	var issues []ValidationIssue
	if p.Product == "" {
		issues = append(issues, issueOf(SeverityError, inputErr("product", "missing")))
	}
	if _, err := ParseStartIndicator(p.StartIndicator); err != nil {
		issues = append(issues, issueOf(SeverityError, err))
	}
	return issues
}

func validateRange(p Params, permissive bool) []ValidationIssue {
	sev := SeverityError
	if permissive {
		sev = SeverityWarning
	}
	var issues []ValidationIssue
	if p.InspStart < 1 || p.InspStart > InspSlots {
		issues = append(issues, issueOf(sev, configErr("inspStart", "%d is outside 1..%d", p.InspStart, InspSlots)))
	}
	if p.InspEnd < 1 || p.InspEnd > InspSlots {
		issues = append(issues, issueOf(sev, configErr("inspEnd", "%d is outside 1..%d", p.InspEnd, InspSlots)))
	}
	if p.InspStart > p.InspEnd {
		issues = append(issues, issueOf(sev, configErr("inspEnd", "%d is before inspStart %d; every INSPRM slot will be 0", p.InspEnd, p.InspStart)))
	}
	return issues
}

func validateMultiplier(p Params) []ValidationIssue {
	if math.IsNaN(p.Multiplier) || math.IsInf(p.Multiplier, 0) || p.Multiplier < 1 {
		return []ValidationIssue{issueOf(SeverityError, configErr("multiplier", "%v must be a finite number >= 1", p.Multiplier))}
	}
	return nil
}
