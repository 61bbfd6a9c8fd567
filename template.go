package morphkit

// Slot is one position of a tag template.
type Slot struct {
	Feature  Feature
	Required bool
}

// Template is the ordered slot layout of the tags of one part of speech.
// For verbs the mood decides which of the optional slots are filled:
// finite moods take person and number, participles take case, number and
// gender, and infinitives take none of them.
type Template struct {
	Kind  Kind
	Slots []Slot
}

var templates = map[Kind]Template{
	KindVerbal: {KindVerbal, []Slot{
		{FeatureTense, true},
		{FeatureVoice, true},
		{FeatureMood, true},
		{FeaturePerson, false},
		{FeatureCase, false},
		{FeatureNumber, false},
		{FeatureGender, false},
	}},
	KindNominal: {KindNominal, []Slot{
		{FeatureCase, true},
		{FeatureNumber, true},
		{FeatureGender, true},
	}},
	KindPronominal: {KindPronominal, []Slot{
		{FeaturePerson, false},
		{FeatureCase, true},
		{FeatureNumber, true},
		{FeatureGender, false},
	}},
	KindReflexive: {KindReflexive, []Slot{
		{FeaturePerson, true},
		{FeatureCase, true},
		{FeatureNumber, true},
		{FeatureGender, true},
	}},
	KindPossessive: {KindPossessive, []Slot{
		{FeaturePossessorPerson, true},
		{FeaturePossessorNumber, true},
		{FeatureCase, true},
		{FeatureNumber, true},
		{FeatureGender, true},
	}},
	KindIndeclinable: {KindIndeclinable, nil},
}

// TemplateFor returns the template of a part of speech. The boolean is
// false for POSUnknown, which cannot be tagged.
func TemplateFor(p POS) (Template, bool) {
	t, ok := templates[p.Kind()]
	return t, ok
}

// Has reports whether the template contains the feature.
func (t Template) Has(f Feature) bool {
	for _, s := range t.Slots {
		if s.Feature == f {
			return true
		}
	}
	return false
}

// sharesSlot reports whether the templates of two parts of speech have a
// feature slot in common.
func sharesSlot(a, b POS) bool {
	ta, okA := TemplateFor(a)
	tb, okB := TemplateFor(b)
	if !okA || !okB {
		return false
	}
	for _, s := range ta.Slots {
		if tb.Has(s.Feature) {
			return true
		}
	}
	return false
}
