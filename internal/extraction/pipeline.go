package extraction

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Pipeline runs the full extraction flow: deterministic pattern extraction,
// an optional probabilistic pass, and the confidence-precedence merge. All
// state is read-only after construction; a single Pipeline may serve
// concurrent callers.
type Pipeline struct {
	patterns      *PatternExtractor
	probabilistic ProbabilisticExtractor
	probTimeout   time.Duration
	logger        *zap.Logger
	metrics       *Metrics
}

// NewPipeline wires a pipeline from its parts. prob may be a NoOpExtractor;
// logger may be nil for a no-op logger.
func NewPipeline(patterns *PatternExtractor, prob ProbabilisticExtractor, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{
		patterns:      patterns,
		probabilistic: prob,
		probTimeout:   defaultTimeout,
		logger:        logger.Named("pipeline"),
		metrics:       NewMetrics(),
	}
}

// Extract produces the merged result for a transcript. When useProbabilistic
// is false, or no probabilistic extractor is configured, the deterministic
// result is returned as-is. A probabilistic failure is logged and counted,
// never surfaced: extraction always succeeds using at least the pattern
// path.
func (p *Pipeline) Extract(ctx context.Context, text string, useProbabilistic bool) ExtractionResult {
	det := p.patterns.Extract(text)

	mode := "deterministic"
	var prob *ExtractionResult
	if useProbabilistic && p.probabilistic.Available() {
		prob = p.extractProbabilistic(ctx, text)
		if prob != nil {
			mode = "merged"
		}
	}

	result := Merge(det, prob)

	p.metrics.ExtractionsTotal.WithLabelValues(mode).Inc()
	p.metrics.Confidence.Observe(result.Confidence.Mean())
	p.logger.Debug("extraction complete",
		zap.String("mode", mode),
		zap.Float64("confidence", result.Confidence.Mean()))
	return result
}

// ExtractDeterministic runs the pattern-only path. It has no external
// dependency and is always available.
func (p *Pipeline) ExtractDeterministic(text string) ExtractionResult {
	result := p.patterns.Extract(text)
	p.metrics.ExtractionsTotal.WithLabelValues("deterministic").Inc()
	return result
}

// extractProbabilistic invokes the external extractor under a bounded
// timeout and converts every failure into "no result".
func (p *Pipeline) extractProbabilistic(ctx context.Context, text string) *ExtractionResult {
	ctx, cancel := context.WithTimeout(ctx, p.probTimeout)
	defer cancel()

	result, err := p.probabilistic.Extract(ctx, text)
	if err != nil {
		p.metrics.LLMFailuresTotal.Inc()
		p.logger.Warn("probabilistic extraction failed, using pattern result only",
			zap.Error(err))
		return nil
	}
	return result
}
