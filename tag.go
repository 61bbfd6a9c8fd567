package morphkit

import (
	"fmt"
	"strconv"
	"strings"
)

// Tag is a structured Sandborg-Petersen tag. The payload type must match
// the template kind of POS.
type Tag struct {
	POS      POS
	Payload  Payload
	Suffixes Suffixes
}

// Payload holds the slot values of one template kind.
type Payload interface {
	kind() Kind
}

// Verbal is the payload of verb tags.
type Verbal struct {
	Tense  Tense
	Voice  Voice
	Mood   Mood
	Person Person
	Number Number
	Case   Case
	Gender Gender
}

// Nominal is the payload of noun, adjective and article tags.
type Nominal struct {
	Case   Case
	Number Number
	Gender Gender
}

// Pronominal is the payload of most pronoun tags. Person and Gender are
// optional.
type Pronominal struct {
	Person Person
	Case   Case
	Number Number
	Gender Gender
}

// Reflexive is the payload of reflexive pronoun tags.
type Reflexive struct {
	Person Person
	Case   Case
	Number Number
	Gender Gender
}

// Possessive is the payload of possessive pronoun tags.
type Possessive struct {
	PossessorPerson Person
	PossessorNumber Number
	Case            Case
	Number          Number
	Gender          Gender
}

// Indeclinable is the empty payload of indeclinable tags.
type Indeclinable struct{}

func (Verbal) kind() Kind       { return KindVerbal }
func (Nominal) kind() Kind      { return KindNominal }
func (Pronominal) kind() Kind   { return KindPronominal }
func (Reflexive) kind() Kind    { return KindReflexive }
func (Possessive) kind() Kind   { return KindPossessive }
func (Indeclinable) kind() Kind { return KindIndeclinable }

// String renders the tag. It does not validate; use EncodeTag for that.
func (t Tag) String() string {
	var b strings.Builder
	b.WriteString(t.POS.Code())
	switch p := t.Payload.(type) {
	case Verbal:
		b.WriteString("-" + p.Tense.Code() + p.Voice.Code() + p.Mood.Code())
		switch {
		case p.Mood.Finite():
			b.WriteString("-" + p.Person.Code() + p.Number.Code())
		case p.Mood.Participial():
			b.WriteString("-" + p.Case.Code() + p.Number.Code() + p.Gender.Code())
		}
	case Nominal:
		b.WriteString("-" + p.Case.Code() + p.Number.Code() + p.Gender.Code())
	case Pronominal:
		b.WriteString("-" + p.Person.Code() + p.Case.Code() + p.Number.Code() + p.Gender.Code())
	case Reflexive:
		b.WriteString("-" + p.Person.Code() + p.Case.Code() + p.Number.Code() + p.Gender.Code())
	case Possessive:
		b.WriteString("-" + p.PossessorPerson.Code() + p.PossessorNumber.Code() +
			p.Case.Code() + p.Number.Code() + p.Gender.Code())
	}
	for _, seg := range t.Suffixes.segments() {
		b.WriteString("-" + seg)
	}
	return b.String()
}

// Validate checks the tag against its template.
func (t Tag) Validate() error {
	fail := func(slot Feature, format string, args ...any) error {
		return &EncodeError{POS: t.POS, Slot: slot, Reason: fmt.Sprintf(format, args...)}
	}
	if int(t.POS) >= len(posCodes) {
		return fail(FeaturePOS, "unknown part of speech %d", t.POS)
	}
	kind := t.POS.Kind()
	if kind == KindNone {
		return fail(FeaturePOS, "no template for %s", t.POS)
	}
	payload := t.Payload
	if payload == nil && kind == KindIndeclinable {
		payload = Indeclinable{}
	}
	if payload == nil || payload.kind() != kind {
		return fail(FeaturePOS, "payload %T does not fit %s", t.Payload, t.POS)
	}

	tmpl := templates[kind]
	for _, s := range tmpl.Slots {
		need, allow := s.Required, true
		if v, ok := payload.(Verbal); ok && !s.Required {
			need, allow = verbSlot(v.Mood, s.Feature)
		}
		set := t.slotValue(s.Feature) != ""
		switch {
		case need && !set:
			return fail(s.Feature, "required slot is empty")
		case !allow && set:
			return fail(s.Feature, "slot must be empty for mood %s", payload.(Verbal).Mood)
		}
	}

	if t.Suffixes.Homonym < 0 {
		return fail(FeatureHomonym, "negative homonym index %d", t.Suffixes.Homonym)
	}
	last := MarkerNone
	for _, m := range t.Suffixes.Markers {
		if !m.Fits(t.POS) {
			return fail(FeatureSuffix, "marker %q does not fit %s", m.Code(), t.POS)
		}
		if m <= last {
			return fail(FeatureSuffix, "marker %q out of order", m.Code())
		}
		last = m
	}
	return nil
}

// verbSlot tells whether a mood-dependent verb slot is required and
// whether it is allowed at all.
func verbSlot(m Mood, f Feature) (need, allow bool) {
	switch {
	case m.Finite():
		need = f == FeaturePerson || f == FeatureNumber
	case m.Participial():
		need = f == FeatureCase || f == FeatureNumber || f == FeatureGender
	}
	return need, need
}

// FeatureValue is one named feature of a decoded tag. Empty slots have an
// empty Value.
type FeatureValue struct {
	Name  Feature `json:"name"`
	Value string  `json:"value"`
}

// Features lists the part of speech, every template slot, the suffix and
// the homonym, in that order.
func (t Tag) Features() []FeatureValue {
	out := []FeatureValue{{FeaturePOS, t.POS.String()}}
	tmpl, _ := TemplateFor(t.POS)
	for _, s := range tmpl.Slots {
		out = append(out, FeatureValue{s.Feature, t.slotValue(s.Feature)})
	}
	homonym := ""
	if t.Suffixes.Homonym > 0 {
		homonym = strconv.Itoa(t.Suffixes.Homonym)
	}
	return append(out,
		FeatureValue{FeatureSuffix, t.Suffixes.label()},
		FeatureValue{FeatureHomonym, homonym},
	)
}

// FeatureMap is Features keyed by feature name.
func (t Tag) FeatureMap() map[string]string {
	fs := t.Features()
	m := make(map[string]string, len(fs))
	for _, f := range fs {
		m[string(f.Name)] = f.Value
	}
	return m
}

func (t Tag) slotValue(f Feature) string {
	switch p := t.Payload.(type) {
	case Verbal:
		switch f {
		case FeatureTense:
			return p.Tense.String()
		case FeatureVoice:
			return p.Voice.String()
		case FeatureMood:
			return p.Mood.String()
		case FeaturePerson:
			return p.Person.String()
		case FeatureNumber:
			return p.Number.String()
		case FeatureCase:
			return p.Case.String()
		case FeatureGender:
			return p.Gender.String()
		}
	case Nominal:
		return cngValue(f, p.Case, p.Number, p.Gender)
	case Pronominal:
		if f == FeaturePerson {
			return p.Person.String()
		}
		return cngValue(f, p.Case, p.Number, p.Gender)
	case Reflexive:
		if f == FeaturePerson {
			return p.Person.String()
		}
		return cngValue(f, p.Case, p.Number, p.Gender)
	case Possessive:
		switch f {
		case FeaturePossessorPerson:
			return p.PossessorPerson.String()
		case FeaturePossessorNumber:
			return p.PossessorNumber.String()
		}
		return cngValue(f, p.Case, p.Number, p.Gender)
	}
	return ""
}

func cngValue(f Feature, c Case, n Number, g Gender) string {
	switch f {
	case FeatureCase:
		return c.String()
	case FeatureNumber:
		return n.String()
	case FeatureGender:
		return g.String()
	}
	return ""
}

// comparisonPOS is the part-of-speech label used when comparing: verbs in
// the participle or infinitive mood get their own class.
func (t Tag) comparisonPOS() string {
	if v, ok := t.Payload.(Verbal); ok {
		switch {
		case v.Mood == Participle:
			return labelParticiple
		case v.Mood == Infinitive:
			return labelInfinitive
		}
	}
	return t.POS.String()
}
