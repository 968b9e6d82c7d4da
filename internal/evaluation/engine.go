package evaluation

import (
	"context"
	"math"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/leadlenslabs/leadlens/internal/extraction"
)

// Extractor is the slice of the pipeline the engine depends on.
type Extractor interface {
	Extract(ctx context.Context, text string, useProbabilistic bool) extraction.ExtractionResult
}

// Engine runs labeled cases through an extractor and scores the outcomes.
type Engine struct {
	extractor     Extractor
	probabilistic bool
	logger        *zap.Logger
}

// NewEngine returns an evaluation engine. probabilistic controls whether
// each case goes through the merged pipeline or the deterministic path only.
func NewEngine(extractor Extractor, probabilistic bool, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		extractor:     extractor,
		probabilistic: probabilistic,
		logger:        logger.Named("evaluation"),
	}
}

// Run evaluates every case and aggregates a report. A panic inside one case
// is recovered and recorded as a failed outcome; the rest of the corpus
// still runs.
func (e *Engine) Run(ctx context.Context, cases []TestCase) Report {
	report := Report{
		Outcomes: make([]Outcome, 0, len(cases)),
		Total:    len(cases),
	}

	for _, tc := range cases {
		outcome := e.runCase(ctx, tc)
		if outcome.Passed {
			report.Passed++
		} else {
			report.Failed++
		}
		report.Outcomes = append(report.Outcomes, outcome)
	}

	if report.Total > 0 {
		report.Accuracy = float64(report.Passed) / float64(report.Total) * 100
	}

	e.logger.Info("evaluation complete",
		zap.Int("total", report.Total),
		zap.Int("passed", report.Passed),
		zap.Float64("accuracy", report.Accuracy),
	)
	return report
}

func (e *Engine) runCase(ctx context.Context, tc TestCase) (outcome Outcome) {
	outcome = Outcome{
		TestID:    tc.ID,
		Category:  tc.Category,
		Timestamp: time.Now().UTC(),
		Input:     tc.Input,
		Expected:  tc.Expected,
	}
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("case panicked",
				zap.Int("test_id", tc.ID),
				zap.Any("panic", r),
			)
			outcome.Passed = false
			outcome.Confidence = 0
		}
	}()

	outcome.Actual = e.extractor.Extract(ctx, tc.Input, e.probabilistic)
	outcome.Passed = CompareResults(outcome.Actual, tc.Expected)
	outcome.Confidence = ScoreConfidence(outcome.Actual)

	e.logger.Debug("case evaluated",
		zap.Int("test_id", tc.ID),
		zap.Bool("passed", outcome.Passed),
		zap.Float64("confidence", outcome.Confidence),
	)
	return outcome
}

// CompareResults reports whether an extraction matches an expectation.
// Customer fields with a non-empty expected value must match after
// lower-casing and trimming; the summary passes on equality or when the
// expected summary is a substring of the actual one.
func CompareResults(actual extraction.ExtractionResult, expected Expectation) bool {
	pairs := []struct{ got, want string }{
		{actual.Customer.FullName, expected.Customer.FullName},
		{actual.Customer.Phone, expected.Customer.Phone},
		{actual.Customer.Address, expected.Customer.Address},
		{actual.Customer.City, expected.Customer.City},
		{actual.Customer.Locality, expected.Customer.Locality},
	}
	for _, p := range pairs {
		want := canonical(p.want)
		if want != "" && canonical(p.got) != want {
			return false
		}
	}

	gotSummary := canonical(actual.Interaction.Summary)
	wantSummary := canonical(expected.Summary)
	return gotSummary == wantSummary || strings.Contains(gotSummary, wantSummary)
}

// ScoreConfidence returns the mean of the result's confidence values,
// rounded to two decimals. The score describes how sure the extractor was,
// independent of whether it was right.
func ScoreConfidence(actual extraction.ExtractionResult) float64 {
	if len(actual.Confidence) == 0 {
		return 0
	}
	return math.Round(actual.Confidence.Mean()*100) / 100
}

func canonical(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
