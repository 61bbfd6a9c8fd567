package betacode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToGreek(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain word with acute", "lo/gos", "\u03bb\u03cc\u03b3\u03bf\u03c2"},
		{"circumflex", "tou=", "\u03c4\u03bf\u1fe6"},
		{"breathing and accent", "a)nh/r", "\u1f00\u03bd\u03ae\u03c1"},
		{"capital with breathing", "*)ihsou=s", "\u1f38\u03b7\u03c3\u03bf\u1fe6\u03c2"},
		{"iota subscript", "tw=|", "\u03c4\u1ff7"},
		{"medial and final sigma", "sws", "\u03c3\u03c9\u03c2"},
		{"explicit lunate sigma", "s3", "\u03f2"},
		{"explicit medial sigma at end", "s1", "\u03c3"},
		{"uppercase input letters", "LOGOS", "\u03bb\u03bf\u03b3\u03bf\u03c2"},
		{"homonym digits pass through", "ei)mi/#2", "\u03b5\u1f30\u03bc\u03af#2"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ToGreek(tt.in))
		})
	}
}

func FuzzToGreek(f *testing.F) {
	for _, s := range []string{"lo/gos", "*)ihsou=s", "s", "*", "**s2", "tw=|"} {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, s string) {
		// Must not panic.
		_ = ToGreek(s)
	})
}
