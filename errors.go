package ssvfill

import (
	"errors"
	"fmt"
)

// Error kinds. Every input, schema or configuration failure returned by this
// package wraps exactly one of them.
var (
	ErrInput  = errors.New("input error")
	ErrSchema = errors.New("schema error")
	ErrConfig = errors.New("config error")
)

// FieldError reports a problem with a single named option or source cell.
type FieldError struct {
	Kind  error  // ErrInput, ErrSchema or ErrConfig
	Field string // option name ("product") or cell reference ("SSV_Factors!C1")
	Msg   string
}

func (e *FieldError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%v: %s", e.Kind, e.Msg)
	}
	return fmt.Sprintf("%v: %s: %s", e.Kind, e.Field, e.Msg)
}

func (e *FieldError) Unwrap() error { return e.Kind }

func inputErr(field, format string, args ...any) error {
	return &FieldError{Kind: ErrInput, Field: field, Msg: fmt.Sprintf(format, args...)}
}

func schemaErr(field, format string, args ...any) error {
	return &FieldError{Kind: ErrSchema, Field: field, Msg: fmt.Sprintf(format, args...)}
}

func configErr(field, format string, args ...any) error {
	return &FieldError{Kind: ErrConfig, Field: field, Msg: fmt.Sprintf(format, args...)}
}
