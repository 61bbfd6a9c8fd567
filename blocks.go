package morphkit

import (
	"iter"
	"strings"
)

const rawMarker = ":raw"

// SplitBlocks cuts a transcript into per-analysis blocks. A block starts
// at a line beginning with ":raw" and runs up to the next such line or the
// end of input. Text before the first marker is dropped, as are leading
// and trailing blank lines of each block.
func SplitBlocks(transcript string) []string {
	var out []string
	for b := range Blocks(transcript) {
		out = append(out, b)
	}
	return out
}

// Blocks is the lazy form of SplitBlocks. The sequence can be ranged over
// more than once.
func Blocks(transcript string) iter.Seq[string] {
	return func(yield func(string) bool) {
		var cur []string
		inBlock := false
		flush := func() bool {
			if !inBlock {
				return true
			}
			block := trimBlankLines(cur)
			cur = cur[:0]
			return yield(block)
		}
		for line := range strings.Lines(transcript) {
			line = strings.TrimRight(line, "\r\n")
			if isRawLine(line) {
				if !flush() {
					return
				}
				inBlock = true
			}
			if inBlock {
				cur = append(cur, line)
			}
		}
		flush()
	}
}

// isRawLine reports whether line is a ":raw" marker line.
func isRawLine(line string) bool {
	rest, ok := strings.CutPrefix(line, rawMarker)
	return ok && (rest == "" || rest[0] == ' ' || rest[0] == '\t')
}

func trimBlankLines(lines []string) string {
	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return strings.Join(lines[start:end], "\n")
}
