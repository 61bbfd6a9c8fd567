package morphkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitBlocks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "no marker",
			in:   "nothing here\n:lem o(\n",
			want: nil,
		},
		{
			name: "empty input",
			in:   "",
			want: nil,
		},
		{
			name: "preamble dropped",
			in:   "<NL>N tou=</NL>\n:raw tou=\n:lem o(\n",
			want: []string{":raw tou=\n:lem o("},
		},
		{
			name: "blank edges trimmed, inner lines kept",
			in:   ":raw a\n\n:lem b\n\n:end c\n\n\n:raw d\n:lem e\n",
			want: []string{":raw a\n\n:lem b\n\n:end c", ":raw d\n:lem e"},
		},
		{
			name: "crlf line endings",
			in:   ":raw a\r\n:lem b\r\n",
			want: []string{":raw a\n:lem b"},
		},
		{
			name: "marker must be a whole prefix",
			in:   ":raw a\n:rawform b\n",
			want: []string{":raw a\n:rawform b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, SplitBlocks(tt.in))
		})
	}
}

func TestSplitBlocksTranscript(t *testing.T) {
	t.Parallel()

	blocks := SplitBlocks(touTranscript)
	require.Len(t, blocks, 3)
	for _, b := range blocks {
		assert.True(t, isRawLine(b[:len(":raw tou=")]))
	}
}

func TestBlocksRestartable(t *testing.T) {
	t.Parallel()

	seq := Blocks(touTranscript)
	count := func() int {
		n := 0
		for range seq {
			n++
		}
		return n
	}
	assert.Equal(t, 3, count())
	assert.Equal(t, 3, count())
}

func TestBlocksStopsEarly(t *testing.T) {
	t.Parallel()

	var first string
	for b := range Blocks(touTranscript) {
		first = b
		break
	}
	assert.Contains(t, first, ":lem o(")
}

func FuzzSplitBlocks(f *testing.F) {
	f.Add(touTranscript)
	f.Add(":raw\n")
	f.Add("\n\n:raw x\r\n")
	f.Fuzz(func(t *testing.T, s string) {
		// Must not panic, and every block starts with a marker.
		for _, b := range SplitBlocks(s) {
			if !isRawLine(firstLine(b)) {
				t.Fatalf("block does not start with a marker: %q", b)
			}
		}
	})
}

func firstLine(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			return s[:i]
		}
	}
	return s
}
