package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "simple title", input: "Admission Notice 2026", want: "admission-notice-2026"},
		{name: "punctuation collapses", input: "Results: BSc (Hons) -- Final!", want: "results-bsc-hons-final"},
		{name: "already a slug", input: "governing-body", want: "governing-body"},
		{name: "leading and trailing junk", input: "  ***Hello***  ", want: "hello"},
		{name: "uppercase", input: "ANNUAL SPORTS", want: "annual-sports"},
		{name: "empty", input: "", want: "untitled"},
		{name: "only symbols", input: "!!!", want: "untitled"},
		{name: "non-ascii dropped", input: "Café Münster", want: "caf-m-nster"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Make(tt.input))
		})
	}
}
