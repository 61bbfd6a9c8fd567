package morphkit

import (
	"fmt"
	"slices"
	"strings"
)

// Language selects the Morpheus vocabulary and transliteration.
type Language string

const (
	Greek Language = "greek"
	Latin Language = "latin"
)

// ParseLanguage accepts "greek" or "latin" in any letter case.
func ParseLanguage(s string) (Language, error) {
	switch l := Language(strings.ToLower(strings.TrimSpace(s))); l {
	case Greek, Latin:
		return l, nil
	}
	return "", fmt.Errorf("unsupported language %q", s)
}

// Form is a word form in transliteration and in the language's own
// script.
type Form struct {
	Translit string `json:"translit"`
	Native   string `json:"native,omitempty"`
}

// Features holds the grammatical values found on a record. Each slot may
// carry several values when Morpheus reports a disjunction such as
// "masc/neut".
type Features struct {
	Case   []string `json:"case,omitempty"`
	Number []string `json:"number,omitempty"`
	Gender []string `json:"gender,omitempty"`
	Tense  []string `json:"tense,omitempty"`
	Voice  []string `json:"voice,omitempty"`
	Mood   []string `json:"mood,omitempty"`
	Person []string `json:"person,omitempty"`
	Degree []string `json:"degree,omitempty"`
}

func (f *Features) slot(name Feature) *[]string {
	switch name {
	case FeatureCase:
		return &f.Case
	case FeatureNumber:
		return &f.Number
	case FeatureGender:
		return &f.Gender
	case FeatureTense:
		return &f.Tense
	case FeatureVoice:
		return &f.Voice
	case FeatureMood:
		return &f.Mood
	case FeaturePerson:
		return &f.Person
	case FeatureDegree:
		return &f.Degree
	}
	return nil
}

// Values returns the values recorded for a feature.
func (f Features) Values(name Feature) []string {
	if s := f.slot(name); s != nil {
		return *s
	}
	return nil
}

func (f *Features) add(name Feature, value string) {
	if s := f.slot(name); s != nil && !slices.Contains(*s, value) {
		*s = append(*s, value)
	}
}

// ParseRecord is one analysis of a word form: a single lemma with its
// stem and ending.
type ParseRecord struct {
	Language Language `json:"language"`
	Raw      Form     `json:"raw"`
	Work     Form     `json:"work"`
	Lemma    Lemma    `json:"lemma"`
	Prefixes []string `json:"prefixes,omitempty"`
	Augment  string   `json:"augment,omitempty"`
	Stem     string   `json:"stem,omitempty"`
	// Suffix is the derivational suffix of a ":suff" line.
	Suffix string `json:"suffix,omitempty"`
	Ending string `json:"ending,omitempty"`

	// StemCodes and EndCodes are the recognised vocabulary tokens of the
	// stem and ending lines, in order of appearance.
	StemCodes []string `json:"stem_codes,omitempty"`
	EndCodes  []string `json:"end_codes,omitempty"`
	// StemFlags and EndFlags keep unrecognised tokens verbatim.
	StemFlags []string `json:"stem_flags,omitempty"`
	EndFlags  []string `json:"end_flags,omitempty"`

	Dialects []string `json:"dialects,omitempty"`
	Features Features `json:"features"`

	POS  POS      `json:"pos"`
	Tags []string `json:"tags,omitempty"`
}

// Codes returns every code and flag of the record in classification
// order: ending codes, stem codes, then the flags.
func (r *ParseRecord) Codes() []string {
	out := make([]string, 0, len(r.StemCodes)+len(r.EndCodes)+len(r.StemFlags)+len(r.EndFlags))
	out = append(out, r.EndCodes...)
	out = append(out, r.StemCodes...)
	out = append(out, r.EndFlags...)
	return append(out, r.StemFlags...)
}

// HasCode reports whether any code or flag of the record equals c.
func (r *ParseRecord) HasCode(c string) bool {
	return slices.Contains(r.EndCodes, c) || slices.Contains(r.StemCodes, c) ||
		slices.Contains(r.EndFlags, c) || slices.Contains(r.StemFlags, c)
}
