package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config controls a generator run.
type Config struct {
	// Definitions is a FHIR definitions zip archive or a directory with its extracted bundles.
	Definitions string `mapstructure:"definitions"`
	// Out is the directory the release package is written to.
	Out string `mapstructure:"out"`
	// Release names the FHIR release, its lower case form is the package name.
	Release string `mapstructure:"release"`
	// Types restricts generation to the named resources and types.
	Types  []string `mapstructure:"types"`
	Pretty bool     `mapstructure:"pretty"`
}

// loadConfig merges, in increasing precedence, defaults, an optional fhirgen.yaml,
// FHIRGEN_* environment variables and the command line flags.
func loadConfig(cmd *cobra.Command) (*Config, error) {
	v := viper.New()
	v.SetConfigName("fhirgen")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix("FHIRGEN")
	v.AutomaticEnv()

	v.SetDefault("out", "model/gen")
	v.SetDefault("release", "R4")

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if cfg.Definitions == "" {
		return nil, errors.New("no definitions given, set --definitions or FHIRGEN_DEFINITIONS")
	}
	return cfg, nil
}
