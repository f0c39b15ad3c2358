package cli

import (
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/katalvlaran/adjugate/internal/app"
)

// fileConfig is the schema of the -config file. Every attribute is optional:
//
//	input      = "matrix.json"
//	output     = "inverse.json"
//	max_size   = 8
//	log_level  = "debug"
//	log_format = "json"
type fileConfig struct {
	Input     *string `hcl:"input,optional"`
	Output    *string `hcl:"output,optional"`
	MaxSize   *int    `hcl:"max_size,optional"`
	LogLevel  *string `hcl:"log_level,optional"`
	LogFormat *string `hcl:"log_format,optional"`
}

// loadFile overlays the attributes set in the HCL file at path onto cfg.
func loadFile(path string, cfg *app.Config) error {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return usageError("config %s: %s", path, diags.Error())
	}

	var fc fileConfig
	if diags = gohcl.DecodeBody(file.Body, nil, &fc); diags.HasErrors() {
		return usageError("config %s: %s", path, diags.Error())
	}

	if fc.Input != nil {
		cfg.InputPath = *fc.Input
	}
	if fc.Output != nil {
		cfg.OutputPath = *fc.Output
	}
	if fc.MaxSize != nil {
		cfg.MaxSize = *fc.MaxSize
	}
	if fc.LogLevel != nil {
		cfg.LogLevel = strings.ToLower(*fc.LogLevel)
	}
	if fc.LogFormat != nil {
		cfg.LogFormat = strings.ToLower(*fc.LogFormat)
	}

	return nil
}
