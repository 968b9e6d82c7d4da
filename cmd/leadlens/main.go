// Package main implements the leadlens CLI for extracting structured
// customer records from sales call transcripts and evaluating the
// extraction engine against its built-in corpus.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/leadlenslabs/leadlens/internal/config"
	"github.com/leadlenslabs/leadlens/internal/extraction"
	"github.com/leadlenslabs/leadlens/internal/logging"
)

var (
	// configPath is the optional YAML config file
	configPath string
	// version information
	version = "dev"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "leadlens",
	Short: "Extract structured customer records from sales call transcripts",
	Long: `leadlens turns free-form sales call transcripts into structured customer
records. It combines deterministic pattern extraction with an optional
LLM-backed extractor, fused by confidence.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to YAML config file")
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(evalCmd)
}

// setup loads config and builds the extraction pipeline shared by the
// commands.
func setup() (*config.Config, *extraction.Pipeline, *zap.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, nil, err
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return nil, nil, nil, err
	}

	patterns, err := extraction.NewPatternExtractor()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to build pattern extractor: %w", err)
	}

	prob, err := extraction.NewProbabilisticExtractor(extraction.Config{
		Provider:  cfg.Extractor.Provider,
		Model:     cfg.Extractor.Model,
		APIKey:    cfg.Extractor.APIKey.Value(),
		BaseURL:   cfg.Extractor.BaseURL,
		MaxTokens: cfg.Extractor.MaxTokens,
		Timeout:   cfg.Extractor.TimeoutSeconds,
	})
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to build probabilistic extractor: %w", err)
	}

	return cfg, extraction.NewPipeline(patterns, prob, logger), logger, nil
}
