// Package normalize converts spoken number words in transcript text into
// digit strings so that downstream pattern matching sees literal phone
// numbers instead of "nine nine eight eight ...".
package normalize

import (
	"regexp"
	"strings"
)

// numberWords maps spoken numbers zero through twenty to digit strings.
// Nothing above twenty is recognized; compounds like "fifty lakhs" pass
// through untouched.
var numberWords = map[string]string{
	"zero": "0", "one": "1", "two": "2", "three": "3", "four": "4",
	"five": "5", "six": "6", "seven": "7", "eight": "8", "nine": "9",
	"ten": "10", "eleven": "11", "twelve": "12", "thirteen": "13",
	"fourteen": "14", "fifteen": "15", "sixteen": "16", "seventeen": "17",
	"eighteen": "18", "nineteen": "19", "twenty": "20",
}

var (
	spokenNumberRe = regexp.MustCompile(`(?i)\b(?:zero|one|two|three|four|five|six|seven|eight|nine|ten|eleven|twelve|thirteen|fourteen|fifteen|sixteen|seventeen|eighteen|nineteen|twenty)\b`)

	// A run of five or more single digits separated by whitespace, the way a
	// phone number comes out of a transcript when spoken digit by digit.
	digitRunRe   = regexp.MustCompile(`(?:\d\s+){4,}\d`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// Normalize replaces spoken number words with digits and compacts runs of
// whitespace-separated single digits into contiguous digit strings. The
// transform is deterministic and case-preserving: tokens are matched
// case-insensitively but everything that is not a number word keeps its
// original form. Internal whitespace is collapsed to single spaces.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	// First pass: word-by-word substitution.
	tokens := strings.Fields(text)
	for i, tok := range tokens {
		if digits, ok := numberWords[strings.ToLower(tok)]; ok {
			tokens[i] = digits
		}
	}
	out := strings.Join(tokens, " ")

	// Second pass: sweep for spoken numbers the word split missed, e.g.
	// hyphenated or punctuation-attached forms like "twenty-five" or "nine,".
	out = spokenNumberRe.ReplaceAllStringFunc(out, func(m string) string {
		return numberWords[strings.ToLower(m)]
	})

	// Final pass: compact digit-by-digit sequences into one number.
	out = digitRunRe.ReplaceAllStringFunc(out, func(run string) string {
		return whitespaceRe.ReplaceAllString(run, "")
	})

	return out
}
