// Package betacode converts Greek betacode, as written by Morpheus, to
// Unicode Greek in NFC.
package betacode

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var letters = map[rune]rune{
	'a': 'α', 'b': 'β', 'g': 'γ', 'd': 'δ', 'e': 'ε', 'z': 'ζ',
	'h': 'η', 'q': 'θ', 'i': 'ι', 'k': 'κ', 'l': 'λ', 'm': 'μ',
	'n': 'ν', 'c': 'ξ', 'o': 'ο', 'p': 'π', 'r': 'ρ', 's': 'σ',
	't': 'τ', 'u': 'υ', 'f': 'φ', 'x': 'χ', 'y': 'ψ', 'w': 'ω',
	'v': 'ϝ',
}

// diacritics maps betacode marks to combining characters.
var diacritics = map[rune]rune{
	')':  '\u0313', // smooth breathing
	'(':  '\u0314', // rough breathing
	'/':  '\u0301', // acute
	'\\': '\u0300', // grave
	'=':  '\u0342', // circumflex
	'+':  '\u0308', // diaeresis
	'|':  '\u0345', // iota subscript
	'_':  '\u0304', // macron
	'^':  '\u0306', // breve
}

var punctuation = map[rune]rune{
	'\'': '\u2019',
	':':  '\u00b7',
}

const (
	sigma      = 'σ'
	finalSigma = 'ς'
	lunate     = 'ϲ'
)

// ToGreek converts a betacode string. Letters may be upper or lower case;
// '*' capitalises the next letter and takes the diacritics written
// between it and the letter. Unknown characters pass through unchanged.
func ToGreek(s string) string {
	in := []rune(s)
	var b strings.Builder
	b.Grow(len(s) * 2)

	for i := 0; i < len(in); i++ {
		r := in[i]
		switch {
		case r == '*':
			// Capital: diacritics may precede the letter.
			var marks []rune
			j := i + 1
			for ; j < len(in); j++ {
				if d, ok := diacritics[in[j]]; ok {
					marks = append(marks, d)
					continue
				}
				break
			}
			if j < len(in) {
				if g, ok := letters[unicode.ToLower(in[j])]; ok {
					b.WriteRune(unicode.ToUpper(g))
					for _, m := range marks {
						b.WriteRune(m)
					}
					i = j
					if g == sigma {
						i += skipSigmaDigit(in, j)
					}
					continue
				}
			}
			b.WriteRune(r)
		case isSigma(r):
			b.WriteRune(sigmaAt(in, i))
			i += skipSigmaDigit(in, i)
		default:
			if g, ok := letters[unicode.ToLower(r)]; ok && r < unicode.MaxASCII {
				b.WriteRune(g)
			} else if d, ok := diacritics[r]; ok {
				b.WriteRune(d)
			} else if p, ok := punctuation[r]; ok {
				b.WriteRune(p)
			} else {
				b.WriteRune(r)
			}
		}
	}
	return norm.NFC.String(b.String())
}

func isSigma(r rune) bool { return r == 's' || r == 'S' }

// sigmaAt picks the sigma form for the 's' at i: an explicit s1/s2/s3,
// otherwise final when no letter follows.
func sigmaAt(in []rune, i int) rune {
	if i+1 < len(in) {
		switch in[i+1] {
		case '1':
			return sigma
		case '2':
			return finalSigma
		case '3':
			return lunate
		}
	}
	for j := i + 1; j < len(in); j++ {
		if _, ok := diacritics[in[j]]; ok {
			continue
		}
		if _, ok := letters[unicode.ToLower(in[j])]; ok && in[j] < unicode.MaxASCII {
			return sigma
		}
		break
	}
	return finalSigma
}

func skipSigmaDigit(in []rune, i int) int {
	if i+1 < len(in) && in[i+1] >= '1' && in[i+1] <= '3' {
		return 1
	}
	return 0
}
