package extraction

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/leadlenslabs/leadlens/internal/normalize"
)

// minPhoneDigits is the minimum digit count for a captured phone group; the
// last ten digits are kept, dropping any country or trunk prefix.
const minPhoneDigits = 10

// PatternExtractor extracts customer and interaction fields from transcript
// text using ordered regex cascades. It is read-only after construction and
// safe for concurrent use.
type PatternExtractor struct {
	cascades map[string]*compiledCascade
	cities   *CityMatcher
}

// compiledCascade holds one field's pre-compiled pattern list.
type compiledCascade struct {
	base      float64
	increment float64
	regexes   []*regexp.Regexp
}

// NewPatternExtractor compiles the default cascades and gazetteer.
func NewPatternExtractor() (*PatternExtractor, error) {
	cascades := make(map[string]*compiledCascade)
	for field, c := range defaultCascades() {
		compiled := &compiledCascade{base: c.base, increment: c.increment}
		for _, p := range c.patterns {
			re, err := regexp.Compile(`(?i)` + p)
			if err != nil {
				return nil, fmt.Errorf("compile %s pattern %q: %w", field, p, err)
			}
			compiled.regexes = append(compiled.regexes, re)
		}
		cascades[field] = compiled
	}

	return &PatternExtractor{
		cascades: cascades,
		cities:   NewCityMatcher(),
	}, nil
}

// Extract runs every field cascade against the transcript and returns a
// fresh result. No pattern matching is an absent field, not an error, so
// Extract always succeeds; empty input yields an all-empty result.
func (e *PatternExtractor) Extract(text string) ExtractionResult {
	result := NewResult()
	text = normalize.Normalize(text)

	if name, conf := e.matchFirst(FieldName, text); conf > 0 {
		result.Customer.FullName = name
		result.Confidence[FieldName] = conf
	}

	if phone, conf := e.extractPhone(text); conf > 0 {
		result.Customer.Phone = phone
		result.Confidence[FieldPhone] = conf
	}

	if addr, conf := e.matchFirst(FieldAddress, text); conf > 0 {
		result.Customer.Address = addr
		result.Confidence[FieldAddress] = conf
	}

	if city, conf := e.cities.Match(text); conf > 0 {
		result.Customer.City = city
		result.Confidence[FieldCity] = conf
	}

	if locality, conf := e.matchFirst(FieldLocality, text); conf > 0 {
		result.Customer.Locality = locality
		result.Confidence[FieldLocality] = conf
	}

	if summary, conf := e.matchFirst(FieldSummary, text); conf > 0 {
		result.Interaction.Summary = strings.TrimRight(summary, ".")
		result.Confidence[FieldSummary] = conf
	}

	return result
}

// matchFirst tries the field's patterns in order and returns the first
// capture with its rank-derived confidence. Later patterns are never
// evaluated once one matches.
func (e *PatternExtractor) matchFirst(field, text string) (string, float64) {
	c := e.cascades[field]
	for i, re := range c.regexes {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		return strings.TrimSpace(m[1]), c.base + float64(i)*c.increment
	}
	return "", 0
}

// extractPhone runs the phone cascade and normalizes the captured group:
// whitespace is stripped and, if at least ten digits remain, the last ten
// are kept. Captures with fewer digits do not stop the cascade.
func (e *PatternExtractor) extractPhone(text string) (string, float64) {
	c := e.cascades[FieldPhone]
	for i, re := range c.regexes {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		phone := strings.Join(strings.Fields(m[1]), "")
		if len(phone) < minPhoneDigits {
			continue
		}
		return phone[len(phone)-minPhoneDigits:], c.base + float64(i)*c.increment
	}
	return "", 0
}
