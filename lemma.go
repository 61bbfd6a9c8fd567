package morphkit

import (
	"regexp"
	"strconv"
	"strings"
)

// Lemma is a dictionary headword as Morpheus reports it.
type Lemma struct {
	// Full is the lemma exactly as transcribed, e.g. "ei)mi/#2".
	Full string `json:"full"`
	// Base is Full without the homonym index.
	Base string `json:"base"`
	// Homonym is the trailing homonym index, 0 when absent.
	Homonym int `json:"homonym,omitempty"`
	// Native is Base in the language's own script.
	Native string `json:"native,omitempty"`
}

// homonymRe splits a trailing homonym index, optionally introduced by '#'.
var homonymRe = regexp.MustCompile(`^(.*?[^0-9#])#?([1-9][0-9]*)$`)

// ParseLemma splits a transcribed lemma into its base and homonym index.
func ParseLemma(full string) Lemma {
	l := Lemma{Full: full, Base: full}
	if m := homonymRe.FindStringSubmatch(full); m != nil {
		n, err := strconv.Atoi(m[2])
		if err == nil {
			l.Base, l.Homonym = m[1], n
		}
	}
	return l
}

// Key is the grouping key of the lemma: the base, plus whatever the full
// form adds to it in parentheses, e.g. "ei)mi/_(#2)".
func (l Lemma) Key() string {
	if l.Full == l.Base {
		return l.Base
	}
	return l.Base + "_(" + strings.TrimPrefix(l.Full, l.Base) + ")"
}
