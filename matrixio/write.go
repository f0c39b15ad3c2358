// SPDX-License-Identifier: MIT

package matrixio

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// ErrNonFinite is returned when a value cannot be represented in JSON.
var ErrNonFinite = errors.New("matrixio: NaN or Inf cannot be encoded")

// rowsType is the cty type of a nested matrix.
var rowsType = cty.List(cty.List(cty.Number))

// Marshal encodes rows as a compact JSON array of arrays.
// Negative zeros are written as 0. Numbers use positional notation (no
// exponent), so extreme magnitudes produce long but exact-round-trip text.
func Marshal(rows [][]float64) ([]byte, error) {
	clean := make([][]float64, len(rows))
	for i, row := range rows {
		clean[i] = make([]float64, len(row))
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: element (%d,%d) is %v", ErrNonFinite, i, j, v)
			}
			if v == 0 {
				v = 0 // drops the sign of -0
			}
			clean[i][j] = v
		}
	}

	val, err := gocty.ToCtyValue(clean, rowsType)
	if err != nil {
		return nil, fmt.Errorf("matrixio: convert: %w", err)
	}

	out, err := ctyjson.Marshal(val, rowsType)
	if err != nil {
		return nil, fmt.Errorf("matrixio: encode: %w", err)
	}

	return out, nil
}

// Write encodes rows with Marshal and writes them to path (mode 0644).
func Write(path string, rows [][]float64) error {
	data, err := Marshal(rows)
	if err != nil {
		return err
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("matrixio: write %s: %w", path, err)
	}

	return nil
}
