// Package matrixio reads matrices from JSON or HCL documents and writes them as JSON.
//
// Input documents are parsed with hashicorp/hcl so every syntax or type error
// carries a file, line and column; ParseError.Render prints them as labelled
// source snippets. Output is encoded through go-cty.
//
// The package checks only that the document is a list of lists of numbers.
// Numbers are written in positional notation, never with an exponent:
// 1e-300 is emitted as "0.000…0001" with 300 fractional digits. The text is
// valid JSON and parses back to the same float64, but very large or very
// small magnitudes make the output long.
//
// Row lengths, squareness and singularity are the matrix package's business.
package matrixio
