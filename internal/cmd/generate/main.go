// Command generate emits the model package of a FHIR release from its StructureDefinitions.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/damedic/fhir-model-go/internal/generate"
	"github.com/damedic/fhir-model-go/internal/generate/ir"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "generate",
		Short:        "Generate FHIR models from StructureDefinitions",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return run(cfg, newLogger(cfg.Pretty))
		},
	}

	cmd.Flags().String("definitions", "", "FHIR definitions zip archive or directory")
	cmd.Flags().String("out", "model/gen", "Output directory")
	cmd.Flags().String("release", "R4", "FHIR release, e.g. R4")
	cmd.Flags().StringSlice("types", nil, "Only generate the named resources and types")
	cmd.Flags().Bool("pretty", false, "Human readable log output")

	return cmd
}

func newLogger(pretty bool) zerolog.Logger {
	if pretty {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}

func run(cfg *Config, logger zerolog.Logger) error {
	logger.Info().Str("definitions", cfg.Definitions).Msg("reading definitions")
	bundle, err := readDefinitions(cfg.Definitions)
	if err != nil {
		return fmt.Errorf("read definitions: %w", err)
	}

	logger.Info().Int("entries", len(bundle.Entry)).Msg("parsing definitions")
	rt, err := ir.Parse(bundle, cfg.Types...)
	if err != nil {
		return fmt.Errorf("parse definitions: %w", err)
	}
	if len(rt) == 0 {
		logger.Warn().Strs("types", cfg.Types).Msg("no resources or types matched")
	}

	pkgName := strings.ToLower(cfg.Release)
	logger.Info().Str("release", cfg.Release).Int("types", len(rt)).Msg("generating")
	files := generate.Generate(cfg.Release, pkgName, rt, generate.Generators()...)

	if err := files.Save(cfg.Out); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	logger.Info().Str("out", cfg.Out).Int("files", len(files.Names())).Msg("done")
	return nil
}
