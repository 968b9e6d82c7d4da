package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/leadlenslabs/leadlens/internal/evaluation"
	"github.com/leadlenslabs/leadlens/internal/logging"
)

var (
	evalOut           string
	evalDeterministic bool
)

// evalCmd runs the built-in evaluation corpus
var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Run the built-in evaluation corpus and report accuracy",
	Long: `Run the extraction engine against the built-in labeled corpus and
report per-case results and overall accuracy.

Examples:
  # Run the evaluation
  leadlens eval

  # Pattern extraction only
  leadlens eval --deterministic

  # Write the full report as JSON
  leadlens eval --out report.json`,
	Args: cobra.NoArgs,
	RunE: runEval,
}

func init() {
	evalCmd.Flags().StringVar(&evalOut, "out", "", "write the full JSON report to this file")
	evalCmd.Flags().BoolVar(&evalDeterministic, "deterministic", false, "use pattern extraction only")
}

func runEval(cmd *cobra.Command, args []string) error {
	cfg, pipeline, logger, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = logging.Sync(logger) }()

	engine := evaluation.NewEngine(pipeline, !evalDeterministic, logger)
	report := engine.Run(cmd.Context(), evaluation.DefaultCorpus())

	for _, o := range report.Outcomes {
		status := "FAIL"
		if o.Passed {
			status = "PASS"
		}
		fmt.Printf("  [%s] case %d (%s) confidence=%.2f\n", status, o.TestID, o.Category, o.Confidence)
	}
	fmt.Printf("\n%d/%d passed, accuracy %.1f%%\n", report.Passed, report.Total, report.Accuracy)

	outPath := evalOut
	if outPath == "" {
		outPath = cfg.Evaluation.ResultPath
	}
	if outPath != "" {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		if err := os.WriteFile(outPath, data, 0o600); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		fmt.Printf("report written to %s\n", outPath)
	}

	return nil
}
