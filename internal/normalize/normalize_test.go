package normalize

import (
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "empty input",
			in:   "",
			want: "",
		},
		{
			name: "spoken phone number compacts to ten digits",
			in:   "nine nine eight eight seven seven six six five five",
			want: "9988776655",
		},
		{
			name: "mixed case number words",
			in:   "Nine Eight SEVEN six five four three two one zero",
			want: "9876543210",
		},
		{
			name: "number words embedded in a sentence",
			in:   "His phone number is nine nine eight eight seven seven six six five five. Call him.",
			want: "His phone number is 9988776655. Call him.",
		},
		{
			name: "teens and twenty",
			in:   "eleven twelve thirteen twenty",
			want: "11 12 13 20",
		},
		{
			name: "words above twenty pass through",
			in:   "fifty lakhs for the deal",
			want: "fifty lakhs for the deal",
		},
		{
			name: "short digit runs are not compacted",
			in:   "sector one five near the mall",
			want: "sector 1 5 near the mall",
		},
		{
			name: "punctuation-attached words caught by second pass",
			in:   "nine, eight, seven, six, five, four, three, two, one, zero",
			want: "9, 8, 7, 6, 5, 4, 3, 2, 1, 0",
		},
		{
			name: "non-number text unchanged",
			in:   "Customer Sarah Johnson called about pricing.",
			want: "Customer Sarah Johnson called about pricing.",
		},
		{
			name: "whitespace collapsed",
			in:   "nine  nine\teight eight seven seven six six five five",
			want: "9988776655",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalize_Deterministic(t *testing.T) {
	in := "Contact number is nine eight seven six five four three two one zero."
	first := Normalize(in)
	second := Normalize(in)
	if first != second {
		t.Errorf("Normalize not deterministic: %q != %q", first, second)
	}
}
