package matrixio_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/adjugate/matrixio"
)

func TestParseJSON(t *testing.T) {
	rows, err := matrixio.ParseJSON([]byte(`[[1, 2.5], [-3, 4e2]]`), "in.json")
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 2.5}, {-3, 400}}, rows)
}

func TestParseJSON_EmptyAndNull(t *testing.T) {
	rows, err := matrixio.ParseJSON([]byte(`[]`), "in.json")
	require.NoError(t, err)
	require.Empty(t, rows)

	rows, err = matrixio.ParseJSON([]byte(`null`), "in.json")
	require.NoError(t, err)
	require.Empty(t, rows)
}

// Ragged input is a valid document; row lengths are checked by the matrix package.
func TestParseJSON_RaggedIsAccepted(t *testing.T) {
	rows, err := matrixio.ParseJSON([]byte(`[[1, 2, 3], [4, 5]]`), "in.json")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Len(t, rows[0], 3)
	require.Len(t, rows[1], 2)
}

func TestParseJSON_SyntaxErrorHasPosition(t *testing.T) {
	src := []byte("[[1, 2],\n [3, oops]]")
	_, err := matrixio.ParseJSON(src, "broken.json")
	require.ErrorIs(t, err, matrixio.ErrInvalidDocument)

	var perr *matrixio.ParseError
	require.True(t, errors.As(err, &perr))
	require.Equal(t, "broken.json", perr.Filename)
	require.True(t, perr.Diagnostics.HasErrors())

	line, col := perr.Position()
	require.Equal(t, 2, line)
	require.Positive(t, col)

	var buf bytes.Buffer
	require.NoError(t, perr.Render(&buf, 0, false))
	require.Contains(t, buf.String(), "broken.json")
	require.Contains(t, buf.String(), "oops")
}

func TestParseJSON_WrongElementType(t *testing.T) {
	_, err := matrixio.ParseJSON([]byte(`[[1, true]]`), "in.json")
	var perr *matrixio.ParseError
	require.ErrorAs(t, err, &perr)
	line, _ := perr.Position()
	require.Equal(t, 1, line)
}

func TestParseJSON_StringElementsRejected(t *testing.T) {
	_, err := matrixio.ParseJSON([]byte(`[["1","2"],["3","4"]]`), "in.json")
	var perr *matrixio.ParseError
	require.ErrorAs(t, err, &perr)

	line, col := perr.Position()
	require.Equal(t, 1, line)
	require.Equal(t, 3, col) // first "1"
	require.Contains(t, perr.Error(), "Invalid matrix element")
}

func TestParseJSON_NullElementRejected(t *testing.T) {
	_, err := matrixio.ParseJSON([]byte("[[1, 2],\n [null, 4]]"), "in.json")
	var perr *matrixio.ParseError
	require.ErrorAs(t, err, &perr)
	line, _ := perr.Position()
	require.Equal(t, 2, line)
}

func TestParseHCL_StringElementsRejected(t *testing.T) {
	_, err := matrixio.ParseHCL([]byte("matrix = [[\"1\", 2]]\n"), "in.hcl")
	require.ErrorIs(t, err, matrixio.ErrInvalidDocument)
}

func TestParseJSON_RootNotArray(t *testing.T) {
	_, err := matrixio.ParseJSON([]byte(`{"matrix": [[1]]}`), "in.json")
	require.ErrorIs(t, err, matrixio.ErrInvalidDocument)
}

func TestParseHCL(t *testing.T) {
	src := []byte("matrix = [\n  [1, 2],\n  [3, 4],\n]\n")
	rows, err := matrixio.ParseHCL(src, "in.hcl")
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, rows)
}

func TestParseHCL_Errors(t *testing.T) {
	cases := map[string]string{
		"syntax":   "matrix = [[1, 2]\n",
		"missing":  "rows = [[1]]\n",
		"wrongtyp": "matrix = \"nope\"\n",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := matrixio.ParseHCL([]byte(src), "in.hcl")
			var perr *matrixio.ParseError
			require.ErrorAs(t, err, &perr)

			var buf bytes.Buffer
			require.NoError(t, perr.Render(&buf, 80, false))
			require.NotEmpty(t, buf.String())
		})
	}
}

func TestParse_DispatchesOnExtension(t *testing.T) {
	rows, err := matrixio.Parse([]byte("matrix = [[2]]"), "m.HCL")
	require.NoError(t, err)
	require.Equal(t, [][]float64{{2}}, rows)

	rows, err = matrixio.Parse([]byte("[[2]]"), "m.txt")
	require.NoError(t, err)
	require.Equal(t, [][]float64{{2}}, rows)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.json")
	require.NoError(t, os.WriteFile(path, []byte(`[[5]]`), 0o600))

	rows, err := matrixio.Load(path)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{5}}, rows)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := matrixio.Load(filepath.Join(t.TempDir(), "absent.json"))
	require.ErrorIs(t, err, os.ErrNotExist)
	require.NotErrorIs(t, err, matrixio.ErrInvalidDocument)
}
