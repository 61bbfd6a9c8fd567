package morphkit

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// SlotReport describes how one feature of a tag was read.
type SlotReport struct {
	Feature Feature `json:"feature"`
	Value   string  `json:"value"`
	// Code is the raw tag code the value was read from.
	Code string `json:"code,omitempty"`
	// Unambiguous is false for empty slots and disjunctive values such as
	// "Middle or Passive".
	Unambiguous bool `json:"unambiguous"`
}

// Decode parses a tag string into a Tag. Decoding is case-sensitive and
// rejects whitespace, unknown codes, wrong segment lengths and suffixes
// out of canonical order.
func Decode(s string) (Tag, error) {
	t, _, err := decode(s)
	return t, err
}

// DecodeVerbose is Decode plus a per-slot report.
func DecodeVerbose(s string) (Tag, []SlotReport, error) {
	return decode(s)
}

// DecodeFeatures decodes a tag into its named features.
func DecodeFeatures(s string) ([]FeatureValue, error) {
	t, err := Decode(s)
	if err != nil {
		return nil, err
	}
	return t.Features(), nil
}

type segment struct {
	text  string
	start int
}

type tagParser struct {
	src    string
	segs   []segment
	next   int
	report []SlotReport
}

func (p *tagParser) errorf(seg, pos int, format string, args ...any) error {
	return &DecodeError{Tag: p.src, Segment: seg, Position: pos, Reason: fmt.Sprintf(format, args...)}
}

func (p *tagParser) note(f Feature, value, code string, unambiguous bool) {
	p.report = append(p.report, SlotReport{Feature: f, Value: value, Code: code, Unambiguous: unambiguous && value != ""})
}

// take returns the next segment, which must have one of the given lengths.
func (p *tagParser) take(what string, lengths ...int) (segment, error) {
	if p.next >= len(p.segs) {
		return segment{}, p.errorf(p.next, len(p.src), "missing %s segment", what)
	}
	seg := p.segs[p.next]
	for _, n := range lengths {
		if len(seg.text) == n {
			p.next++
			return seg, nil
		}
	}
	return segment{}, p.errorf(p.next, seg.start, "%s segment %q has %d characters, want %s",
		what, seg.text, len(seg.text), joinInts(lengths))
}

func joinInts(ns []int) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, " or ")
}

// decodeChar reads the one-character code at index i of seg.
func decodeChar[E ~uint8](p *tagParser, idx map[string]E, f Feature, seg segment, i int) (E, error) {
	c := seg.text[i : i+1]
	v, ok := idx[c]
	if !ok {
		return 0, p.errorf(p.next-1, seg.start+i, "invalid %s code %q", strings.ToLower(string(f)), c)
	}
	return v, nil
}

func splitSegments(s string) []segment {
	var segs []segment
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == '-' {
			segs = append(segs, segment{text: s[start:i], start: start})
			start = i + 1
		}
	}
	return segs
}

// multiSegmentPOS are indeclinable codes spelled with a hyphen.
var multiSegmentPOS = map[string]map[string]POS{
	"N": {"PRI": POSProperNounIndeclinable, "LI": POSLetterIndeclinable, "OI": POSNounOtherIndeclinable},
	"A": {"NUI": POSNumeralIndeclinable},
}

func decode(s string) (Tag, []SlotReport, error) {
	p := &tagParser{src: s}
	if s == "" {
		return Tag{}, nil, p.errorf(0, 0, "empty tag")
	}
	if i := strings.IndexFunc(s, func(r rune) bool { return r <= ' ' || r > '~' }); i >= 0 {
		r, _ := utf8.DecodeRuneInString(s[i:])
		return Tag{}, nil, p.errorf(strings.Count(s[:i], "-"), i, "unexpected character %q", r)
	}
	p.segs = splitSegments(s)
	for i, seg := range p.segs {
		if seg.text == "" {
			return Tag{}, nil, p.errorf(i, seg.start, "empty segment")
		}
	}

	var t Tag
	head := p.segs[0].text
	pos, ok := posByTag[head]
	if !ok {
		return Tag{}, nil, p.errorf(0, 0, "unknown part of speech %q", head)
	}
	p.next = 1
	if sub, ok := multiSegmentPOS[head]; ok && len(p.segs) > 1 {
		if indecl, ok := sub[p.segs[1].text]; ok {
			pos = indecl
			p.next = 2
		}
	}
	t.POS = pos
	p.note(FeaturePOS, pos.String(), pos.Code(), pos != POSCorrelativeOrInterrogativePronoun)

	var err error
	switch pos.Kind() {
	case KindVerbal:
		t.Payload, err = p.verbal()
	case KindNominal:
		t.Payload, err = p.nominal()
	case KindPronominal:
		t.Payload, err = p.pronominal()
	case KindReflexive:
		t.Payload, err = p.reflexive()
	case KindPossessive:
		t.Payload, err = p.possessive()
	default:
		t.Payload = Indeclinable{}
	}
	if err != nil {
		return Tag{}, nil, err
	}
	if t.Suffixes, err = p.suffixes(pos); err != nil {
		return Tag{}, nil, err
	}
	return t, p.report, nil
}

func (p *tagParser) verbal() (Payload, error) {
	var v Verbal
	seg, err := p.take("tense-voice-mood", 3, 4)
	if err != nil {
		return nil, err
	}
	tcode := seg.text[:1]
	if seg.text[0] == '2' {
		tcode = seg.text[:2]
	}
	if len(seg.text)-len(tcode) != 2 {
		return nil, p.errorf(p.next-1, seg.start, "tense-voice-mood segment %q has a bad tense", seg.text)
	}
	tense, ok := tenseByTag[tcode]
	if !ok {
		return nil, p.errorf(p.next-1, seg.start, "invalid tense code %q", tcode)
	}
	v.Tense = tense
	rest := segment{text: seg.text[len(tcode):], start: seg.start + len(tcode)}
	if v.Voice, err = decodeChar(p, voiceByTag, FeatureVoice, rest, 0); err != nil {
		return nil, err
	}
	if v.Mood, err = decodeChar(p, moodByTag, FeatureMood, rest, 1); err != nil {
		return nil, err
	}
	p.note(FeatureTense, v.Tense.String(), tcode, v.Tense != NoTenseStated)
	p.note(FeatureVoice, v.Voice.String(), v.Voice.Code(),
		v.Voice != MiddleOrPassive && v.Voice != MiddleOrPassiveDeponent && v.Voice != NoVoice)
	p.note(FeatureMood, v.Mood.String(), v.Mood.Code(), true)

	switch {
	case v.Mood.Finite():
		seg, err := p.take("person-number", 2)
		if err != nil {
			return nil, err
		}
		if v.Person, err = decodeChar(p, personByTag, FeaturePerson, seg, 0); err != nil {
			return nil, err
		}
		if v.Number, err = decodeChar(p, numberByTag, FeatureNumber, seg, 1); err != nil {
			return nil, err
		}
	case v.Mood.Participial():
		seg, err := p.take("case-number-gender", 3)
		if err != nil {
			return nil, err
		}
		if v.Case, v.Number, v.Gender, err = p.cng(seg, 0); err != nil {
			return nil, err
		}
	}
	p.note(FeaturePerson, v.Person.String(), v.Person.Code(), true)
	p.noteCNG(v.Case, v.Number, v.Gender)
	return v, nil
}

func (p *tagParser) cng(seg segment, off int) (c Case, n Number, g Gender, err error) {
	if c, err = decodeChar(p, caseByTag, FeatureCase, seg, off); err != nil {
		return
	}
	if n, err = decodeChar(p, numberByTag, FeatureNumber, seg, off+1); err != nil {
		return
	}
	g, err = decodeChar(p, genderByTag, FeatureGender, seg, off+2)
	return
}

func (p *tagParser) noteCNG(c Case, n Number, g Gender) {
	p.note(FeatureCase, c.String(), c.Code(), true)
	p.note(FeatureNumber, n.String(), n.Code(), true)
	p.note(FeatureGender, g.String(), g.Code(), true)
}

func (p *tagParser) nominal() (Payload, error) {
	seg, err := p.take("case-number-gender", 3)
	if err != nil {
		return nil, err
	}
	var v Nominal
	if v.Case, v.Number, v.Gender, err = p.cng(seg, 0); err != nil {
		return nil, err
	}
	p.noteCNG(v.Case, v.Number, v.Gender)
	return v, nil
}

func (p *tagParser) pronominal() (Payload, error) {
	seg, err := p.take("person-case-number-gender", 2, 3, 4)
	if err != nil {
		return nil, err
	}
	var v Pronominal
	off := 0
	if c := seg.text[0]; c >= '0' && c <= '9' {
		if v.Person, err = decodeChar(p, personByTag, FeaturePerson, seg, 0); err != nil {
			return nil, err
		}
		off = 1
	}
	switch len(seg.text) - off {
	case 2:
		if v.Case, err = decodeChar(p, caseByTag, FeatureCase, seg, off); err != nil {
			return nil, err
		}
		if v.Number, err = decodeChar(p, numberByTag, FeatureNumber, seg, off+1); err != nil {
			return nil, err
		}
	case 3:
		if v.Case, v.Number, v.Gender, err = p.cng(seg, off); err != nil {
			return nil, err
		}
	default:
		return nil, p.errorf(p.next-1, seg.start, "segment %q has %d characters after the person, want 2 or 3",
			seg.text, len(seg.text)-off)
	}
	p.note(FeaturePerson, v.Person.String(), v.Person.Code(), true)
	p.noteCNG(v.Case, v.Number, v.Gender)
	return v, nil
}

func (p *tagParser) reflexive() (Payload, error) {
	seg, err := p.take("person-case-number-gender", 4)
	if err != nil {
		return nil, err
	}
	var v Reflexive
	if v.Person, err = decodeChar(p, personByTag, FeaturePerson, seg, 0); err != nil {
		return nil, err
	}
	if v.Case, v.Number, v.Gender, err = p.cng(seg, 1); err != nil {
		return nil, err
	}
	p.note(FeaturePerson, v.Person.String(), v.Person.Code(), true)
	p.noteCNG(v.Case, v.Number, v.Gender)
	return v, nil
}

func (p *tagParser) possessive() (Payload, error) {
	seg, err := p.take("possessor-case-number-gender", 5)
	if err != nil {
		return nil, err
	}
	var v Possessive
	if v.PossessorPerson, err = decodeChar(p, personByTag, FeaturePossessorPerson, seg, 0); err != nil {
		return nil, err
	}
	if v.PossessorNumber, err = decodeChar(p, numberByTag, FeaturePossessorNumber, seg, 1); err != nil {
		return nil, err
	}
	if v.Case, v.Number, v.Gender, err = p.cng(seg, 2); err != nil {
		return nil, err
	}
	p.note(FeaturePossessorPerson, v.PossessorPerson.String(), v.PossessorPerson.Code(), true)
	p.note(FeaturePossessorNumber, v.PossessorNumber.String(), v.PossessorNumber.Code(), true)
	p.noteCNG(v.Case, v.Number, v.Gender)
	return v, nil
}

func (p *tagParser) suffixes(pos POS) (Suffixes, error) {
	var s Suffixes
	last := MarkerNone
	for ; p.next < len(p.segs); p.next++ {
		seg := p.segs[p.next]
		if c := seg.text[0]; c >= '0' && c <= '9' {
			n, err := strconv.Atoi(seg.text)
			if err != nil || c == '0' {
				return s, p.errorf(p.next, seg.start, "invalid homonym index %q", seg.text)
			}
			if last >= markerHomonymRank {
				return s, p.errorf(p.next, seg.start, "homonym index %q out of order", seg.text)
			}
			s.Homonym = n
			last = markerHomonymRank
			p.note(FeatureHomonym, seg.text, seg.text, true)
			continue
		}
		m, ok := lookupMarker(seg.text, pos)
		if !ok {
			return s, p.errorf(p.next, seg.start, "unknown suffix %q", seg.text)
		}
		if !m.Fits(pos) {
			return s, p.errorf(p.next, seg.start, "suffix %q does not fit %s", seg.text, pos)
		}
		if m <= last {
			return s, p.errorf(p.next, seg.start, "suffix %q out of order", seg.text)
		}
		s.Markers = append(s.Markers, m)
		last = m
		p.note(FeatureSuffix, m.String(), m.Code(), true)
	}
	return s, nil
}
