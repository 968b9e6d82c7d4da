package extraction

import (
	"strings"
	"unicode"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

const (
	// exactMatchConfidence is the fixed confidence for a gazetteer
	// substring hit.
	exactMatchConfidence = 0.85

	// fuzzyAcceptScore is the similarity score (0-100 scale) a fuzzy
	// candidate must exceed to be accepted.
	fuzzyAcceptScore = 80

	// minTokenLen filters out short words before fuzzy scoring; anything of
	// three runes or fewer is too noisy to resemble a city name.
	minTokenLen = 3
)

// CityMatcher resolves a city name from transcript text against a fixed
// gazetteer. Exact substring lookup runs first in list order; when that
// fails, fuzzy matching picks the best-scoring entry above a threshold.
// Read-only after construction.
type CityMatcher struct {
	gazetteer []string
}

// NewCityMatcher returns a matcher over the default gazetteer.
func NewCityMatcher() *CityMatcher {
	return &CityMatcher{gazetteer: defaultGazetteer}
}

// Match returns the title-cased city and its confidence, or ("", 0) when
// nothing matches. An exact hit carries a fixed confidence; a fuzzy hit
// carries its similarity score scaled to [0, 1].
func (m *CityMatcher) Match(text string) (string, float64) {
	lower := strings.ToLower(text)

	// Exact stage: first substring hit in gazetteer order wins, even when a
	// longer or more specific entry appears later in the list.
	for _, city := range m.gazetteer {
		if strings.Contains(lower, city) {
			return titleCase(city), exactMatchConfidence
		}
	}

	// Fuzzy stage: score candidate token windows against every entry and
	// keep the best.
	best, score := m.closest(lower)
	if score > fuzzyAcceptScore {
		return titleCase(best), float64(score) / 100
	}

	return "", 0
}

// closest returns the gazetteer entry with the highest similarity score
// against any candidate window of the text, on a 0-100 scale.
func (m *CityMatcher) closest(lower string) (string, int) {
	tokens := candidateTokens(lower)
	if len(tokens) == 0 {
		return "", 0
	}

	var best string
	bestScore := 0
	for _, city := range m.gazetteer {
		for _, window := range windows(tokens, len(strings.Fields(city))) {
			if s := similarity(window, city); s > bestScore {
				best = city
				bestScore = s
			}
		}
	}
	return best, bestScore
}

// similarity converts Levenshtein distance to a 0-100 ratio.
func similarity(a, b string) int {
	longest := len(a)
	if len(b) > longest {
		longest = len(b)
	}
	if longest == 0 {
		return 0
	}
	dist := fuzzy.LevenshteinDistance(a, b)
	if dist >= longest {
		return 0
	}
	return (longest - dist) * 100 / longest
}

// candidateTokens splits text into lower-case words, strips surrounding
// punctuation, and drops tokens too short to resemble a city name.
func candidateTokens(lower string) []string {
	var tokens []string
	for _, raw := range strings.Fields(lower) {
		tok := strings.TrimFunc(raw, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if len([]rune(tok)) > minTokenLen {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// windows returns every run of size consecutive tokens joined by single
// spaces, so multi-word gazetteer entries like "navi mumbai" can score
// against adjacent token pairs.
func windows(tokens []string, size int) []string {
	if size <= 1 {
		return tokens
	}
	if len(tokens) < size {
		return nil
	}
	out := make([]string, 0, len(tokens)-size+1)
	for i := 0; i+size <= len(tokens); i++ {
		out = append(out, strings.Join(tokens[i:i+size], " "))
	}
	return out
}

// titleCase upper-cases the first letter of each word. The gazetteer is
// stored lower-case; output follows the title-case contract.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
