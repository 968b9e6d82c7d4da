package extraction

import "strings"

// probAdoptThreshold is the confidence a probabilistic field value must
// exceed before it overrides the deterministic value.
const probAdoptThreshold = 0.8

// Merge fuses a deterministic result with an optional probabilistic one.
// Customer fields adopt the probabilistic value only when it is non-empty
// and its declared confidence exceeds the threshold; otherwise the
// deterministic value and confidence are kept. The summary instead adopts
// the probabilistic text whenever it is non-empty and longer than the
// deterministic one — summary quality is judged by informativeness, not by
// threshold confidence. A nil probabilistic result degenerates to a
// pass-through of the deterministic result.
func Merge(det ExtractionResult, prob *ExtractionResult) ExtractionResult {
	if prob == nil {
		return det
	}

	merged := NewResult()

	type fieldPair struct {
		key  string
		det  string
		prob string
		dst  *string
	}
	pairs := []fieldPair{
		{FieldName, det.Customer.FullName, prob.Customer.FullName, &merged.Customer.FullName},
		{FieldPhone, det.Customer.Phone, prob.Customer.Phone, &merged.Customer.Phone},
		{FieldAddress, det.Customer.Address, prob.Customer.Address, &merged.Customer.Address},
		{FieldCity, det.Customer.City, prob.Customer.City, &merged.Customer.City},
		{FieldLocality, det.Customer.Locality, prob.Customer.Locality, &merged.Customer.Locality},
	}

	for _, p := range pairs {
		probVal := strings.TrimSpace(p.prob)
		if probVal != "" && prob.Confidence[p.key] > probAdoptThreshold {
			*p.dst = probVal
			merged.Confidence[p.key] = prob.Confidence[p.key]
			continue
		}
		*p.dst = strings.TrimSpace(p.det)
		merged.Confidence[p.key] = det.Confidence[p.key]
	}

	probSummary := strings.TrimSpace(prob.Interaction.Summary)
	detSummary := strings.TrimSpace(det.Interaction.Summary)
	if probSummary != "" && len(probSummary) > len(detSummary) {
		merged.Interaction.Summary = probSummary
		merged.Confidence[FieldSummary] = prob.Confidence[FieldSummary]
	} else {
		merged.Interaction.Summary = detSummary
		merged.Confidence[FieldSummary] = det.Confidence[FieldSummary]
	}

	return merged
}
