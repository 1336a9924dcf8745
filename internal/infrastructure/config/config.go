package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	Version     string `koanf:"version"`
	Environment string `koanf:"environment"`
	LogLevel    string `koanf:"log_level" validate:"oneof=debug info warn error"`

	Columns  ColumnsConfig  `koanf:"columns"`
	Pipeline PipelineConfig `koanf:"pipeline"`
	Output   OutputConfig   `koanf:"output"`
}

// ColumnsConfig names the required input columns. Defaults match the phone
// enrichment vendor's export headers; override when a vendor renames them.
type ColumnsConfig struct {
	DNC    string              `koanf:"dnc" validate:"required"`
	Phones []PhoneColumnConfig `koanf:"phones" validate:"required,len=3,dive"`
}

type PhoneColumnConfig struct {
	Number string `koanf:"number" validate:"required"`
	Type   string `koanf:"type" validate:"required"`
}

type PipelineConfig struct {
	Deduplicate bool `koanf:"deduplicate"`
}

type OutputConfig struct {
	Directory string `koanf:"directory" validate:"required"`
}

func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Load defaults
	defaults := &Config{
		Version:     "dev",
		Environment: "development",
		LogLevel:    "info",
		Columns: ColumnsConfig{
			DNC: "DNC/Litigator Scrub",
			Phones: []PhoneColumnConfig{
				{Number: "Phone1", Type: "Phone1 Type"},
				{Number: "Phone2", Type: "Phone2 Type"},
				{Number: "Phone3", Type: "Phone3 Type"},
			},
		},
		Pipeline: PipelineConfig{
			Deduplicate: true,
		},
		Output: OutputConfig{
			Directory: ".",
		},
	}

	if err := k.Load(structs.Provider(defaults, "koanf"), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	// Load from config file if one was given
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
	}

	// Override with environment variables
	if err := k.Load(env.Provider("DIALPREP_", ".", func(s string) string {
		return strings.Replace(strings.ToLower(
			strings.TrimPrefix(s, "DIALPREP_")), "_", ".", -1)
	}), nil); err != nil {
		return nil, fmt.Errorf("loading environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}
