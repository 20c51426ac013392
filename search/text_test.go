package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "simple words", input: "heat loss", want: []string{"heat", "loss"}},
		{name: "case folding", input: "Heat LOSS", want: []string{"heat", "loss"}},
		{name: "punctuation boundaries", input: "heat-loss, again!", want: []string{"heat", "loss", "again"}},
		{name: "digits kept", input: "rfc 9110 section2", want: []string{"rfc", "9110", "section2"}},
		{name: "empty", input: "", want: nil},
		{name: "whitespace only", input: "   \t\n", want: nil},
		{name: "separators only", input: "!!! --- ???", want: nil},
		{name: "unicode letters", input: "Überlegung naïve", want: []string{"überlegung", "naïve"}},
		{name: "apostrophes split", input: "Fourier's law", want: []string{"fourier", "s", "law"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTokenSet(t *testing.T) {
	set := tokenSet("the quick THE fox")
	assert.Len(t, set, 3)
	assert.Contains(t, set, "the")
	assert.Contains(t, set, "quick")
	assert.Contains(t, set, "fox")
}
