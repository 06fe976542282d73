package kaka

import (
	"errors"

	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/hcl/v2"
)

// Diagnostic converts the error into an HCL diagnostic whose subject covers
// the offending position.
func (e *Error) Diagnostic() *hcl.Diagnostic {
	start := hcl.Pos{Line: e.Pos.Line, Column: e.Pos.Column, Byte: e.Pos.Offset}
	end := start
	end.Column++
	end.Byte++
	return &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  e.Kind.String() + " error",
		Detail:   e.Message,
		Subject:  &hcl.Range{Filename: e.File, Start: start, End: end},
	}
}

// Diagnostics flattens err into HCL diagnostics. Front-end errors keep their
// source range; anything else becomes a summary-only diagnostic.
func Diagnostics(err error) hcl.Diagnostics {
	if err == nil {
		return nil
	}

	var merr *multierror.Error
	if errors.As(err, &merr) {
		var diags hcl.Diagnostics
		for _, each := range merr.Errors {
			diags = append(diags, Diagnostics(each)...)
		}
		return diags
	}

	var ferr *Error
	if errors.As(err, &ferr) {
		return hcl.Diagnostics{ferr.Diagnostic()}
	}
	return hcl.Diagnostics{{
		Severity: hcl.DiagError,
		Summary:  err.Error(),
	}}
}
