package morphkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkQuantities(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"ama_s", "am\u0101s"},
		{"ro^sa", "r\u014fsa"},
		{"A_ra", "\u0100ra"},
		{"ly^ra", "ly\u0306ra"},
		{"Y^", "Y\u0306"},
		{"y_Y_", "\u0233\u0232"},
		{"U^u_", "\u016c\u016b"},
		{"rosa", "rosa"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MarkQuantities(tt.in), tt.in)
	}
}

func TestAtone(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"ama_s", "am\u0101s", "ama^s", "am\u0103s"} {
		assert.Equal(t, "amas", Atone(in), in)
	}
	assert.Equal(t, "lyra", Atone(MarkQuantities("ly^ra")))
}

func TestNormalizeLemma(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"ei)mi/_(#2)", "ei)mi/"},
		{"*LE/GW", "le/gw"},
		{"a)po-ba/llw", "a)poba/llw"},
		{"A_mo_", "amo"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeLemma(tt.in), tt.in)
	}
}
