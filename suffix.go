package morphkit

import (
	"strconv"
	"strings"
)

// Marker is a trailing tag segment: degree, an extra, or a dialect.
// Marker values are declared in canonical tag order; the homonym digit
// sits between the degree markers and the extras.
type Marker uint8

const (
	MarkerNone Marker = iota
	Comparative
	Superlative
	markerHomonymRank
	Crasis
	Negative
	Abbreviated
	Interrogative
	ParticleAttached
	MiddleSignificance
	Contracted
	Transitive
	Apocopated
	Irregular
	Aeolic
	Attic
)

type markerInfo struct {
	code  string
	label string
	// verb is true for verb-only markers and false for non-verb ones.
	verb bool
	// any markers fit every part of speech.
	any bool
	// degree markers fit adjectives and adverbs only.
	degree bool
}

var markers = []markerInfo{
	Comparative:        {code: "C", label: "Comparative", degree: true},
	Superlative:        {code: "S", label: "Superlative", degree: true},
	Crasis:             {code: "K", label: "Crasis"},
	Negative:           {code: "N", label: "Negative"},
	Abbreviated:        {code: "ABB", label: "Abbreviated"},
	Interrogative:      {code: "I", label: "Interrogative"},
	ParticleAttached:   {code: "P", label: "Particle Attached"},
	MiddleSignificance: {code: "M", label: "Middle Significance", verb: true},
	Contracted:         {code: "C", label: "Contracted", verb: true},
	Transitive:         {code: "T", label: "Transitive", verb: true},
	Apocopated:         {code: "AP", label: "Apocopated", verb: true},
	Irregular:          {code: "IRR", label: "Irregular", verb: true},
	Aeolic:             {code: "A", label: "Aeolic", any: true},
	Attic:              {code: "ATT", label: "Attic", any: true},
}

func (m Marker) Code() string {
	if int(m) >= len(markers) {
		return ""
	}
	return markers[m].code
}

func (m Marker) String() string {
	if int(m) >= len(markers) {
		return ""
	}
	return markers[m].label
}

// Fits reports whether the marker may follow a tag of the given part of
// speech.
func (m Marker) Fits(p POS) bool {
	if m == MarkerNone || m == markerHomonymRank || int(m) >= len(markers) {
		return false
	}
	info := markers[m]
	switch {
	case info.any:
		return true
	case info.degree:
		return p == POSAdjective || p == POSAdverb
	case info.verb:
		return p == POSVerb
	}
	return p != POSVerb
}

// lookupMarker resolves a suffix segment. Verbs and non-verbs read the
// same code differently ("C" is Contracted on a verb, Comparative
// elsewhere).
func lookupMarker(seg string, p POS) (Marker, bool) {
	var fallback Marker
	for i, info := range markers {
		if info.code != seg || info.code == "" {
			continue
		}
		m := Marker(i)
		if m.Fits(p) {
			return m, true
		}
		if fallback == MarkerNone {
			fallback = m
		}
	}
	return fallback, fallback != MarkerNone
}

// Suffixes are the trailing segments of a tag.
type Suffixes struct {
	// Homonym is the lemma's homonym index, 0 when absent.
	Homonym int
	// Markers must be in canonical order without repeats.
	Markers []Marker
}

func (s Suffixes) segments() []string {
	var out []string
	homonymDone := s.Homonym == 0
	for _, m := range s.Markers {
		if !homonymDone && m > markerHomonymRank {
			out = append(out, strconv.Itoa(s.Homonym))
			homonymDone = true
		}
		out = append(out, m.Code())
	}
	if !homonymDone {
		out = append(out, strconv.Itoa(s.Homonym))
	}
	return out
}

// label is the value reported for the Suffix feature.
func (s Suffixes) label() string {
	names := make([]string, 0, len(s.Markers))
	for _, m := range s.Markers {
		names = append(names, m.String())
	}
	return strings.Join(names, ", ")
}

func (s Suffixes) has(m Marker) bool {
	for _, x := range s.Markers {
		if x == m {
			return true
		}
	}
	return false
}
