// Package cli turns command-line arguments and an optional HCL config file
// into an app.Config, and maps usage problems to exit codes.
package cli
