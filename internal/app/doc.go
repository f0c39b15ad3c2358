// Package app wires the inversion pipeline: load the input document, admit it,
// invert it and write the result, logging each step.
package app
