package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitTrim(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "empty", in: "", want: nil},
		{name: "single", in: "a", want: []string{"a"}},
		{name: "trims and drops empty", in: " a, ,b ,", want: []string{"a", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitTrim(tt.in, ","))
		})
	}
}

func TestRoundFloat64(t *testing.T) {
	assert.Equal(t, 3.14, RoundFloat64(3.14159, 2))
	assert.Equal(t, 2.0, RoundFloat64(1.999, 2))
	assert.Equal(t, 0.125, RoundFloat64(0.1249999, 3))
}
