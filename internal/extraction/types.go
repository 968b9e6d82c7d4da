// Package extraction turns a free-form sales call transcript into a
// structured customer record and interaction summary. It supports both
// heuristic (pattern-based) and LLM-backed extraction methods, fused by a
// confidence-precedence merge.
package extraction

import (
	"context"
	"time"
)

// Confidence map field keys.
const (
	FieldName     = "name"
	FieldPhone    = "phone"
	FieldAddress  = "address"
	FieldCity     = "city"
	FieldLocality = "locality"
	FieldSummary  = "summary"
)

// fields lists every confidence key. New keys must be added here so fresh
// results always carry the full map.
var fields = []string{FieldName, FieldPhone, FieldAddress, FieldCity, FieldLocality, FieldSummary}

// CustomerFields holds the customer portion of an extraction. Empty string
// means "not found" — no field is ever null in the result contract.
type CustomerFields struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	Locality string `json:"locality"`
}

// InteractionFields holds the interaction portion of an extraction.
// CreatedAt is the extraction timestamp, not a business time.
type InteractionFields struct {
	Summary   string    `json:"summary"`
	CreatedAt time.Time `json:"created_at"`
}

// ConfidenceMap maps field keys to heuristic trust scores in [0, 1].
// The scores are ordering weights, not calibrated probabilities.
type ConfidenceMap map[string]float64

// NewConfidenceMap returns a map with every field present at 0.0.
func NewConfidenceMap() ConfidenceMap {
	m := make(ConfidenceMap, len(fields))
	for _, f := range fields {
		m[f] = 0.0
	}
	return m
}

// Mean returns the average of all confidence values, or 0 for an empty map.
func (m ConfidenceMap) Mean() float64 {
	if len(m) == 0 {
		return 0
	}
	var total float64
	for _, v := range m {
		total += v
	}
	return total / float64(len(m))
}

// ExtractionResult is the full output of one extraction call. Results are
// constructed fresh per call; nothing is shared between invocations.
type ExtractionResult struct {
	Customer    CustomerFields    `json:"customer"`
	Interaction InteractionFields `json:"interaction"`
	Confidence  ConfidenceMap     `json:"confidence_scores"`
}

// NewResult returns an empty result with a fully-populated confidence map
// and the extraction timestamp set to now.
func NewResult() ExtractionResult {
	return ExtractionResult{
		Interaction: InteractionFields{CreatedAt: time.Now()},
		Confidence:  NewConfidenceMap(),
	}
}

// ProbabilisticExtractor produces a structured guess for a transcript using
// an external model. Implementations must be safe for concurrent use.
// Absence of a configured backend is represented by Available() == false,
// not by a nil interface scattered through the pipeline.
type ProbabilisticExtractor interface {
	// Extract returns a structured guess with fixed per-field confidence
	// weights. Any failure (network, timeout, malformed response) is
	// returned as an error; callers treat errors as "no result".
	Extract(ctx context.Context, text string) (*ExtractionResult, error)

	// Available reports whether the extractor is configured and ready.
	Available() bool
}

// Config holds provider-specific configuration for the probabilistic
// extractor.
type Config struct {
	Provider  string `json:"provider"` // "disabled" or "openai"
	Model     string `json:"model,omitempty"`
	APIKey    string `json:"api_key,omitempty"`
	BaseURL   string `json:"base_url,omitempty"`
	MaxTokens int    `json:"max_tokens,omitempty"`
	Timeout   int    `json:"timeout,omitempty"` // seconds
}
