package morphkit

import (
	"fmt"
	"slices"
)

// Morpheus values per slot. Values missing here have no tag code.
var (
	recordCase = map[string]Case{
		"nom": Nominative, "gen": Genitive, "dat": Dative, "acc": Accusative, "voc": Vocative,
	}
	recordNumber = map[string]Number{"sg": Singular, "pl": Plural, "dual": Dual}
	recordGender = map[string]Gender{"masc": Masculine, "fem": Feminine, "neut": Neuter}
	recordPerson = map[string]Person{"1st": First, "2nd": Second, "3rd": Third}
	recordMood   = map[string]Mood{
		"ind": Indicative, "subj": Subjunctive, "opt": Optative, "imperat": Imperative,
		"inf": Infinitive, "part": Participle,
	}
	recordDegree  = map[string]Marker{"comp": Comparative, "superl": Superlative}
	recordDialect = map[string]Marker{"attic": Attic, "aeolic": Aeolic}

	// secondTenseCodes turn a tense into its second form.
	secondTenseCodes = map[Tense][]string{
		Future:     {"fut2", "future2"},
		Aorist:     {"aor2", "aor2_pass"},
		Perfect:    {"perf2"},
		Pluperfect: {"lpl2", "plup2"},
	}
	secondTense = map[Tense]Tense{
		Future: SecondFuture, Aorist: SecondAorist, Perfect: SecondPerfect, Pluperfect: SecondPluperfect,
	}
	recordTense = map[string]Tense{
		"pres": Present, "imperf": Imperfect, "fut": Future, "aor": Aorist,
		"perf": Perfect, "plup": Pluperfect, "futperf": NoTenseStated,
	}
	recordVoice = map[string]Voice{
		"act": Active, "mid": Middle, "pass": Passive, "mp": MiddleOrPassive,
	}
	deponentVoice = map[Voice]Voice{
		Middle: MiddleDeponent, Passive: PassiveDeponent, MiddleOrPassive: MiddleOrPassiveDeponent,
	}
)

// Encode renders every tag a parse record admits. When a slot holds
// several values one tag is produced per combination. The record's POS is
// used when set, otherwise it is classified first.
func Encode(r ParseRecord) ([]string, error) {
	tags, err := TagsFor(r)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		s, err := EncodeTag(t)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return unique(out), nil
}

// EncodeTag validates a structured tag and renders it.
func EncodeTag(t Tag) (string, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t.String(), nil
}

// TagsFor builds the structured tags of a parse record.
func TagsFor(r ParseRecord) ([]Tag, error) {
	pos := r.POS
	if pos == POSUnknown {
		pos = ClassifyPOS(r)
	}
	b := tagBuilder{r: &r, pos: pos}

	switch pos.Kind() {
	case KindNone:
		return nil, b.fail(FeaturePOS, "no template for %s", pos)
	case KindVerbal:
		return b.verbal()
	case KindNominal:
		return b.declined(func(c Case, n Number, g Gender) Payload { return Nominal{c, n, g} })
	case KindPronominal:
		return b.pronominal()
	case KindReflexive:
		persons, err := lookupAll(&b, FeaturePerson, recordPerson, true)
		if err != nil {
			return nil, err
		}
		var tags []Tag
		for _, p := range persons {
			more, err := b.declined(func(c Case, n Number, g Gender) Payload { return Reflexive{p, c, n, g} })
			if err != nil {
				return nil, err
			}
			tags = append(tags, more...)
		}
		return tags, nil
	case KindPossessive:
		// Morpheus reports no possessor.
		return nil, b.fail(FeaturePossessorNumber, "required slot is empty")
	}
	return b.withSuffixes(Indeclinable{})
}

type tagBuilder struct {
	r   *ParseRecord
	pos POS
}

func (b *tagBuilder) fail(slot Feature, format string, args ...any) error {
	return &EncodeError{POS: b.pos, Slot: slot, Reason: fmt.Sprintf(format, args...)}
}

// lookupAll maps the record's values of one slot to typed values. A
// required slot must not be empty; an optional empty slot yields the zero
// value once.
func lookupAll[E comparable](b *tagBuilder, f Feature, table map[string]E, required bool) ([]E, error) {
	values := b.r.Features.Values(f)
	if len(values) == 0 {
		if required {
			return nil, b.fail(f, "required slot is empty")
		}
		var zero E
		return []E{zero}, nil
	}
	out := make([]E, 0, len(values))
	for _, v := range values {
		e, ok := table[v]
		if !ok {
			return nil, b.fail(f, "value %q has no tag code", v)
		}
		if !slices.Contains(out, e) {
			out = append(out, e)
		}
	}
	return out, nil
}

// suffixVariants lists the suffix sets of the record: one per degree
// value, each carrying the homonym, the extras and the dialect markers.
func (b *tagBuilder) suffixVariants() []Suffixes {
	var common []Marker
	if b.pos == POSAdverb && b.r.HasCode("interrog") {
		common = append(common, Interrogative)
	}
	for _, d := range b.r.Dialects {
		if m, ok := recordDialect[d]; ok && !slices.Contains(common, m) {
			common = append(common, m)
		}
	}
	slices.Sort(common)

	degrees := []Marker{MarkerNone}
	if b.pos == POSAdjective || b.pos == POSAdverb {
		var found []Marker
		for _, d := range b.r.Features.Degree {
			if m, ok := recordDegree[d]; ok && !slices.Contains(found, m) {
				found = append(found, m)
			}
		}
		if len(found) > 0 {
			degrees = found
		}
	}

	out := make([]Suffixes, 0, len(degrees))
	for _, d := range degrees {
		s := Suffixes{Homonym: b.r.Lemma.Homonym}
		if d != MarkerNone {
			s.Markers = append(s.Markers, d)
		}
		s.Markers = append(s.Markers, common...)
		out = append(out, s)
	}
	return out
}

func (b *tagBuilder) withSuffixes(payloads ...Payload) ([]Tag, error) {
	variants := b.suffixVariants()
	tags := make([]Tag, 0, len(payloads)*len(variants))
	for _, p := range payloads {
		for _, s := range variants {
			tags = append(tags, Tag{POS: b.pos, Payload: p, Suffixes: s})
		}
	}
	return tags, nil
}

// declined expands case, number and gender, all required.
func (b *tagBuilder) declined(mk func(Case, Number, Gender) Payload) ([]Tag, error) {
	cases, err := lookupAll(b, FeatureCase, recordCase, true)
	if err != nil {
		return nil, err
	}
	numbers, err := lookupAll(b, FeatureNumber, recordNumber, true)
	if err != nil {
		return nil, err
	}
	genders, err := lookupAll(b, FeatureGender, recordGender, true)
	if err != nil {
		return nil, err
	}
	var payloads []Payload
	for _, c := range cases {
		for _, n := range numbers {
			for _, g := range genders {
				payloads = append(payloads, mk(c, n, g))
			}
		}
	}
	return b.withSuffixes(payloads...)
}

func (b *tagBuilder) pronominal() ([]Tag, error) {
	persons, err := lookupAll(b, FeaturePerson, recordPerson, false)
	if err != nil {
		return nil, err
	}
	cases, err := lookupAll(b, FeatureCase, recordCase, true)
	if err != nil {
		return nil, err
	}
	numbers, err := lookupAll(b, FeatureNumber, recordNumber, true)
	if err != nil {
		return nil, err
	}
	genders, err := lookupAll(b, FeatureGender, recordGender, false)
	if err != nil {
		return nil, err
	}
	var payloads []Payload
	for _, p := range persons {
		for _, c := range cases {
			for _, n := range numbers {
				for _, g := range genders {
					payloads = append(payloads, Pronominal{p, c, n, g})
				}
			}
		}
	}
	return b.withSuffixes(payloads...)
}

func (b *tagBuilder) verbal() ([]Tag, error) {
	tenses, err := b.tenses()
	if err != nil {
		return nil, err
	}
	voices, err := b.voices()
	if err != nil {
		return nil, err
	}
	moods, err := lookupAll(b, FeatureMood, recordMood, true)
	if err != nil {
		return nil, err
	}

	var payloads []Payload
	for _, t := range tenses {
		for _, v := range voices {
			for _, m := range moods {
				more, err := b.verbForms(Verbal{Tense: t, Voice: v, Mood: m})
				if err != nil {
					return nil, err
				}
				payloads = append(payloads, more...)
			}
		}
	}
	return b.withSuffixes(payloads...)
}

// verbForms fills the mood-dependent slots of a verb.
func (b *tagBuilder) verbForms(base Verbal) ([]Payload, error) {
	var out []Payload
	switch {
	case base.Mood.Finite():
		persons, err := lookupAll(b, FeaturePerson, recordPerson, true)
		if err != nil {
			return nil, err
		}
		numbers, err := lookupAll(b, FeatureNumber, recordNumber, true)
		if err != nil {
			return nil, err
		}
		for _, p := range persons {
			for _, n := range numbers {
				v := base
				v.Person, v.Number = p, n
				out = append(out, v)
			}
		}
	case base.Mood.Participial():
		cases, err := lookupAll(b, FeatureCase, recordCase, true)
		if err != nil {
			return nil, err
		}
		numbers, err := lookupAll(b, FeatureNumber, recordNumber, true)
		if err != nil {
			return nil, err
		}
		genders, err := lookupAll(b, FeatureGender, recordGender, true)
		if err != nil {
			return nil, err
		}
		for _, c := range cases {
			for _, n := range numbers {
				for _, g := range genders {
					v := base
					v.Case, v.Number, v.Gender = c, n, g
					out = append(out, v)
				}
			}
		}
	default:
		out = append(out, base)
	}
	return out, nil
}

// tenses reads the tense slot; a missing tense is "No Tense Stated" and
// second-tense class codes promote the tense.
func (b *tagBuilder) tenses() ([]Tense, error) {
	if len(b.r.Features.Tense) == 0 {
		return []Tense{NoTenseStated}, nil
	}
	ts, err := lookupAll(b, FeatureTense, recordTense, true)
	if err != nil {
		return nil, err
	}
	for i, t := range ts {
		for _, c := range secondTenseCodes[t] {
			if b.r.HasCode(c) {
				ts[i] = secondTense[t]
				break
			}
		}
	}
	return unique(ts), nil
}

// voices reads the voice slot; a missing voice is "No Voice" and the
// deponent flag shifts middle and passive voices to their deponent codes.
func (b *tagBuilder) voices() ([]Voice, error) {
	if len(b.r.Features.Voice) == 0 {
		return []Voice{NoVoice}, nil
	}
	vs, err := lookupAll(b, FeatureVoice, recordVoice, true)
	if err != nil {
		return nil, err
	}
	if b.r.HasCode("deponent") {
		for i, v := range vs {
			if d, ok := deponentVoice[v]; ok {
				vs[i] = d
			}
		}
	}
	return vs, nil
}

// unique returns a deduplicated slice preserving order.
func unique[E comparable](ss []E) []E {
	seen := make(map[E]bool, len(ss))
	var out []E
	for _, s := range ss {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
