package extraction

// cascade is an ordered list of regex patterns for one field. Patterns are
// tried in order and the first match wins; the confidence of a match at
// index i is base + i*increment, so earlier (more specific) patterns carry
// higher confidence.
type cascade struct {
	base      float64
	increment float64
	patterns  []string
}

// defaultCascades returns the per-field pattern cascades. Order within each
// list is load-bearing: it determines both short-circuit evaluation and the
// rank-derived confidence.
func defaultCascades() map[string]cascade {
	return map[string]cascade{
		FieldName: {
			base:      0.80,
			increment: 0.04,
			patterns: []string{
				`customer\s+([A-Za-z]+\s+[A-Za-z]+)`,
				`([A-Za-z]+\s+[A-Za-z]+)\s+called`,
				`spoke\s+with\s+([A-Za-z]+\s+[A-Za-z]+)`,
				`met\s+with\s+([A-Za-z]+\s+[A-Za-z]+)`,
				`called\s+([A-Za-z]+\s+[A-Za-z]+)`,
			},
		},
		FieldPhone: {
			base:      0.90,
			increment: 0.02,
			patterns: []string{
				`phone\s+(?:number\s+)?([0-9\s]{10,15})`,
				`number\s+is\s+([0-9\s]{10,15})`,
				`contact\s+([0-9\s]{10,15})`,
				`([0-9]{10})`,
				`([0-9\s]{10})`,
			},
		},
		FieldAddress: {
			base:      0.70,
			increment: 0.05,
			patterns: []string{
				`at\s+([0-9]+\s+[^,]+)`,
				`address\s+is\s+([^,]+)`,
				`located\s+at\s+([^,]+)`,
				`([^,]+\s+(?:Street|Road|Lane|Avenue|Sector|Block))`,
			},
		},
		FieldLocality: {
			base:      0.75,
			increment: 0.05,
			patterns: []string{
				`([A-Za-z]+\s+(?:Layout|Colony|Nagar|Enclave|Park|Garden|Hills|Lake|Circle|Square))`,
				`([A-Za-z]+\s+(?:Sector|Block|Phase|Zone))`,
				`([A-Za-z]+\s+(?:Street|Road|Lane|Avenue))`,
				`in\s+([A-Za-z]+\s+(?:Layout|Colony|Nagar))`,
			},
		},
		FieldSummary: {
			base:      0.80,
			increment: 0.05,
			patterns: []string{
				`(?:discussed|talked about|we|they)\s+(.+)`,
				`(?:next steps|follow up|meeting|demo|pricing|contract|agreement)\s*(.+)`,
				`(?:interested in|wants to|needs to|will)\s+(.+)`,
			},
		},
	}
}
