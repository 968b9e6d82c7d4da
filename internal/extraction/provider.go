package extraction

import (
	"context"
	"fmt"
)

// NewProbabilisticExtractor creates a probabilistic extractor based on
// configuration. A disabled or unset provider gets a NoOpExtractor so the
// pipeline never has to nil-check.
func NewProbabilisticExtractor(cfg Config) (ProbabilisticExtractor, error) {
	switch cfg.Provider {
	case "", "disabled":
		return &NoOpExtractor{}, nil
	case "openai":
		return newOpenAIExtractor(cfg)
	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Provider)
	}
}

// NoOpExtractor is the stand-in when no external extractor is configured.
type NoOpExtractor struct{}

// Extract returns no result.
func (n *NoOpExtractor) Extract(ctx context.Context, text string) (*ExtractionResult, error) {
	return nil, nil
}

// Available returns false for NoOpExtractor.
func (n *NoOpExtractor) Available() bool {
	return false
}

// Ensure interface is implemented.
var _ ProbabilisticExtractor = (*NoOpExtractor)(nil)
