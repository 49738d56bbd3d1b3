package config

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// hclConfigFile is the decoding target for a configuration file:
//
//	entity = "robot"
//	prompt = "> "
//	grid {
//	  width  = 5
//	  height = 5
//	}
type hclConfigFile struct {
	Entity *string  `hcl:"entity,optional"`
	Prompt *string  `hcl:"prompt,optional"`
	Grid   *hclGrid `hcl:"grid,block"`
	Log    *hclLog  `hcl:"log,block"`
}

type hclGrid struct {
	Width  int `hcl:"width"`
	Height int `hcl:"height"`
}

type hclLog struct {
	Level  *string `hcl:"level,optional"`
	Format *string `hcl:"format,optional"`
}

// LoadFile overlays the settings found in the HCL file at path onto base.
func LoadFile(path string, base Config) (Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return base, fmt.Errorf("failed to parse config file %s: %w", path, diags)
	}
	return decode(path, file.Body, base)
}

// LoadBytes is LoadFile for in-memory content; filename is used in diagnostics.
func LoadBytes(src []byte, filename string, base Config) (Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return base, fmt.Errorf("failed to parse config file %s: %w", filename, diags)
	}
	return decode(filename, file.Body, base)
}

func decode(filename string, body hcl.Body, base Config) (Config, error) {
	var parsed hclConfigFile
	if diags := gohcl.DecodeBody(body, nil, &parsed); diags.HasErrors() {
		return base, fmt.Errorf("failed to decode config file %s: %w", filename, diags)
	}
	cfg := base
	if parsed.Entity != nil {
		cfg.Entity = *parsed.Entity
	}
	if parsed.Prompt != nil {
		cfg.Prompt = *parsed.Prompt
	}
	if parsed.Grid != nil {
		cfg.Width = parsed.Grid.Width
		cfg.Height = parsed.Grid.Height
	}
	if parsed.Log != nil {
		if parsed.Log.Level != nil {
			cfg.LogLevel = *parsed.Log.Level
		}
		if parsed.Log.Format != nil {
			cfg.LogFormat = LogFormat(*parsed.Log.Format)
		}
	}
	return cfg, nil
}
