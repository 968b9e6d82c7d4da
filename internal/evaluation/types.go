// Package evaluation runs the extraction pipeline against a labeled corpus
// and scores the results.
package evaluation

import (
	"time"

	"github.com/leadlenslabs/leadlens/internal/extraction"
)

// TestCase is a labeled transcript. Empty expected fields are not compared.
type TestCase struct {
	ID       int         `json:"id"`
	Category string      `json:"category,omitempty"`
	Input    string      `json:"input"`
	Expected Expectation `json:"expected"`
}

// Expectation is the labeled output for a test case.
type Expectation struct {
	Customer extraction.CustomerFields `json:"customer"`
	Summary  string                    `json:"summary"`
}

// Outcome records a single case's result.
type Outcome struct {
	TestID     int                         `json:"test_id"`
	Category   string                      `json:"category,omitempty"`
	Passed     bool                        `json:"passed"`
	Confidence float64                     `json:"confidence"`
	Timestamp  time.Time                   `json:"timestamp"`
	Input      string                      `json:"input"`
	Expected   Expectation                 `json:"expected"`
	Actual     extraction.ExtractionResult `json:"actual"`
}

// Report aggregates a full corpus run.
type Report struct {
	Outcomes []Outcome `json:"results"`
	Accuracy float64   `json:"accuracy"`
	Total    int       `json:"total_tests"`
	Passed   int       `json:"passed_tests"`
	Failed   int       `json:"failed_tests"`
}
