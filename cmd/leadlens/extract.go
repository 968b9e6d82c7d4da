package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/leadlenslabs/leadlens/internal/logging"
)

var extractDeterministic bool

// extractCmd extracts a structured record from a transcript
var extractCmd = &cobra.Command{
	Use:   "extract [file]",
	Short: "Extract a customer record from a transcript file or stdin",
	Long: `Extract a structured customer record from a sales call transcript.

Examples:
  # Extract from a file
  leadlens extract call.txt

  # Extract from stdin
  cat call.txt | leadlens extract -

  # Skip the LLM-backed extractor
  leadlens extract --deterministic call.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().BoolVar(&extractDeterministic, "deterministic", false, "use pattern extraction only")
}

func runExtract(cmd *cobra.Command, args []string) error {
	var content []byte
	var err error

	if len(args) == 0 || args[0] == "-" {
		content, err = io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read from stdin: %w", err)
		}
	} else {
		content, err = os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
	}

	if len(content) == 0 {
		return fmt.Errorf("no transcript to extract from")
	}

	_, pipeline, logger, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = logging.Sync(logger) }()

	result := pipeline.Extract(cmd.Context(), string(content), !extractDeterministic)

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
