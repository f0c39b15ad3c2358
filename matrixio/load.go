// SPDX-License-Identifier: MIT

package matrixio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	hcljson "github.com/hashicorp/hcl/v2/json"
	"github.com/zclconf/go-cty/cty"
)

// ErrInvalidDocument is matched by every *ParseError.
var ErrInvalidDocument = errors.New("matrixio: invalid matrix document")

// ParseError reports a document that is not valid syntax or does not hold
// a list of lists of numbers.
type ParseError struct {
	Filename    string
	Diagnostics hcl.Diagnostics

	files map[string]*hcl.File // source needed to render snippets
}

// Error implements error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%v: %s", ErrInvalidDocument, e.Diagnostics.Error())
}

// Unwrap lets errors.Is(err, ErrInvalidDocument) match.
func (e *ParseError) Unwrap() error { return ErrInvalidDocument }

// Position returns the 1-based line and column of the first located error,
// or (0, 0) when no diagnostic carries a source range.
func (e *ParseError) Position() (line, column int) {
	for _, d := range e.Diagnostics {
		if d.Severity == hcl.DiagError && d.Subject != nil {
			return d.Subject.Start.Line, d.Subject.Start.Column
		}
	}

	return 0, 0
}

// Render writes every diagnostic with a source snippet pointing at the
// offending range. width wraps detail text (0 disables wrapping).
func (e *ParseError) Render(w io.Writer, width uint, color bool) error {
	return hcl.NewDiagnosticTextWriter(w, e.files, width, color).WriteDiagnostics(e.Diagnostics)
}

// hclDocument is the shape of a native-syntax input file.
type hclDocument struct {
	Matrix [][]float64 `hcl:"matrix"`
}

// Load reads path and parses it with Parse.
func Load(path string) ([][]float64, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("matrixio: read %s: %w", path, err)
	}

	return Parse(src, path)
}

// Parse decodes src, choosing the syntax from filename's extension:
// ".hcl" selects native HCL, anything else JSON.
func Parse(src []byte, filename string) ([][]float64, error) {
	if strings.EqualFold(filepath.Ext(filename), ".hcl") {
		return ParseHCL(src, filename)
	}

	return ParseJSON(src, filename)
}

// ParseJSON decodes a JSON document whose root is an array of arrays of
// numbers, e.g. [[1, 2], [3, 4]]. A null root yields zero rows.
func ParseJSON(src []byte, filename string) ([][]float64, error) {
	files := map[string]*hcl.File{filename: {Bytes: src}}

	expr, diags := hcljson.ParseExpression(src, filename)
	if diags.HasErrors() {
		return nil, &ParseError{Filename: filename, Diagnostics: diags, files: files}
	}

	if diags := checkNumberGrid(expr); diags.HasErrors() {
		return nil, &ParseError{Filename: filename, Diagnostics: diags, files: files}
	}

	var rows [][]float64
	if diags := gohcl.DecodeExpression(expr, nil, &rows); diags.HasErrors() {
		return nil, &ParseError{Filename: filename, Diagnostics: diags, files: files}
	}

	return rows, nil
}

// ParseHCL decodes a native HCL document holding a single attribute:
//
//	matrix = [[1, 2], [3, 4]]
func ParseHCL(src []byte, filename string) ([][]float64, error) {
	file, diags := hclsyntax.ParseConfig(src, filename, hcl.InitialPos)
	files := map[string]*hcl.File{filename: file}
	if file == nil {
		files[filename] = &hcl.File{Bytes: src}
	}
	if diags.HasErrors() {
		return nil, &ParseError{Filename: filename, Diagnostics: diags, files: files}
	}

	var doc hclDocument
	if diags := gohcl.DecodeBody(file.Body, nil, &doc); diags.HasErrors() {
		return nil, &ParseError{Filename: filename, Diagnostics: diags, files: files}
	}

	// gohcl converts "1" to 1; elements must be numbers before conversion.
	if body, ok := file.Body.(*hclsyntax.Body); ok {
		if attr, ok := body.Attributes["matrix"]; ok {
			if diags := checkNumberGrid(attr.Expr); diags.HasErrors() {
				return nil, &ParseError{Filename: filename, Diagnostics: diags, files: files}
			}
		}
	}

	return doc.Matrix, nil
}

// checkNumberGrid rejects any element whose own type is not number, with a
// diagnostic pointing at that element. A null or empty root is accepted.
// Shape (list of lists) errors are reported as well; row lengths are not checked.
func checkNumberGrid(expr hcl.Expression) hcl.Diagnostics {
	root, diags := expr.Value(nil)
	if diags.HasErrors() {
		return diags
	}
	if root.IsNull() || (root.IsKnown() && root.CanIterateElements() && root.LengthInt() == 0) {
		return diags // zero rows
	}

	rowExprs, listDiags := hcl.ExprList(expr)
	diags = append(diags, listDiags...)
	if listDiags.HasErrors() {
		return diags
	}

	for _, rowExpr := range rowExprs {
		elems, rowDiags := hcl.ExprList(rowExpr)
		diags = append(diags, rowDiags...)
		for _, elem := range elems {
			v, valDiags := elem.Value(nil)
			diags = append(diags, valDiags...)
			if valDiags.HasErrors() || (v.Type() == cty.Number && !v.IsNull()) {
				continue
			}
			found := v.Type().FriendlyName()
			if v.IsNull() {
				found = "null"
			}
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid matrix element",
				Detail:   fmt.Sprintf("Matrix elements must be numbers, found %s.", found),
				Subject:  elem.Range().Ptr(),
			})
		}
	}

	return diags
}
