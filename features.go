package morphkit

// Feature names a grammatical category. The names double as the keys of
// decoded tags and of the comparator's weight table.
type Feature string

const (
	FeaturePOS             Feature = "Part of Speech"
	FeatureCase            Feature = "Case"
	FeatureNumber          Feature = "Number"
	FeatureGender          Feature = "Gender"
	FeatureTense           Feature = "Tense"
	FeatureVoice           Feature = "Voice"
	FeatureMood            Feature = "Mood"
	FeaturePerson          Feature = "Person"
	FeaturePossessorPerson Feature = "Possessor Person"
	FeaturePossessorNumber Feature = "Possessor Number"
	FeatureSuffix          Feature = "Suffix"
	FeatureHomonym         Feature = "Homonym"

	// FeatureDegree only occurs on parse records; tags carry degree as a
	// suffix marker.
	FeatureDegree Feature = "Degree"
)

// code pairs the tag code of an enum value with its human-readable label.
type code struct {
	tag   string
	label string
}

func codeIndex[E ~uint8](table []code) map[string]E {
	idx := make(map[string]E, len(table))
	for i, c := range table {
		if c.tag != "" {
			idx[c.tag] = E(i)
		}
	}
	return idx
}

func codeAt[E ~uint8](table []code, e E) code {
	if int(e) >= len(table) {
		return code{}
	}
	return table[e]
}

func labelsOf(table []code) []string {
	out := make([]string, 0, len(table))
	for _, c := range table {
		if c.label != "" {
			out = append(out, c.label)
		}
	}
	return out
}

// Case is the grammatical case slot. CaseNone marks an empty slot.
type Case uint8

const (
	CaseNone Case = iota
	Nominative
	Genitive
	Dative
	Accusative
	Vocative
)

var caseCodes = []code{
	CaseNone:   {},
	Nominative: {"N", "Nominative"},
	Genitive:   {"G", "Genitive"},
	Dative:     {"D", "Dative"},
	Accusative: {"A", "Accusative"},
	Vocative:   {"V", "Vocative"},
}

var caseByTag = codeIndex[Case](caseCodes)

func (c Case) Code() string   { return codeAt(caseCodes, c).tag }
func (c Case) String() string { return codeAt(caseCodes, c).label }

// Number is the grammatical number slot.
type Number uint8

const (
	NumberNone Number = iota
	Singular
	Plural
	Dual
)

var numberCodes = []code{
	NumberNone: {},
	Singular:   {"S", "Singular"},
	Plural:     {"P", "Plural"},
	Dual:       {"D", "Dual"},
}

var numberByTag = codeIndex[Number](numberCodes)

func (n Number) Code() string   { return codeAt(numberCodes, n).tag }
func (n Number) String() string { return codeAt(numberCodes, n).label }

// Gender is the grammatical gender slot.
type Gender uint8

const (
	GenderNone Gender = iota
	Masculine
	Feminine
	Neuter
)

var genderCodes = []code{
	GenderNone: {},
	Masculine:  {"M", "Masculine"},
	Feminine:   {"F", "Feminine"},
	Neuter:     {"N", "Neuter"},
}

var genderByTag = codeIndex[Gender](genderCodes)

func (g Gender) Code() string   { return codeAt(genderCodes, g).tag }
func (g Gender) String() string { return codeAt(genderCodes, g).label }

// Person is the grammatical person slot.
type Person uint8

const (
	PersonNone Person = iota
	First
	Second
	Third
)

var personCodes = []code{
	PersonNone: {},
	First:      {"1", "First"},
	Second:     {"2", "Second"},
	Third:      {"3", "Third"},
}

var personByTag = codeIndex[Person](personCodes)

func (p Person) Code() string   { return codeAt(personCodes, p).tag }
func (p Person) String() string { return codeAt(personCodes, p).label }

// Tense is the verbal tense slot. Second tenses use a two-character code.
type Tense uint8

const (
	TenseNone Tense = iota
	Present
	Imperfect
	Future
	SecondFuture
	Aorist
	SecondAorist
	Perfect
	SecondPerfect
	Pluperfect
	SecondPluperfect
	NoTenseStated
)

var tenseCodes = []code{
	TenseNone:        {},
	Present:          {"P", "Present"},
	Imperfect:        {"I", "Imperfect"},
	Future:           {"F", "Future"},
	SecondFuture:     {"2F", "Second Future"},
	Aorist:           {"A", "Aorist"},
	SecondAorist:     {"2A", "Second Aorist"},
	Perfect:          {"R", "Perfect"},
	SecondPerfect:    {"2R", "Second Perfect"},
	Pluperfect:       {"L", "Pluperfect"},
	SecondPluperfect: {"2L", "Second Pluperfect"},
	NoTenseStated:    {"X", "No Tense Stated"},
}

var tenseByTag = codeIndex[Tense](tenseCodes)

func (t Tense) Code() string   { return codeAt(tenseCodes, t).tag }
func (t Tense) String() string { return codeAt(tenseCodes, t).label }

// Voice is the verbal voice slot.
type Voice uint8

const (
	VoiceNone Voice = iota
	Active
	Middle
	Passive
	MiddleOrPassive
	MiddleDeponent
	PassiveDeponent
	MiddleOrPassiveDeponent
	ImpersonalActive
	NoVoice
)

var voiceCodes = []code{
	VoiceNone:               {},
	Active:                  {"A", "Active"},
	Middle:                  {"M", "Middle"},
	Passive:                 {"P", "Passive"},
	MiddleOrPassive:         {"E", "Middle or Passive"},
	MiddleDeponent:          {"D", "Middle Deponent"},
	PassiveDeponent:         {"O", "Passive Deponent"},
	MiddleOrPassiveDeponent: {"N", "Middle or Passive Deponent"},
	ImpersonalActive:        {"Q", "Impersonal Active"},
	NoVoice:                 {"X", "No Voice"},
}

var voiceByTag = codeIndex[Voice](voiceCodes)

func (v Voice) Code() string   { return codeAt(voiceCodes, v).tag }
func (v Voice) String() string { return codeAt(voiceCodes, v).label }

// Mood is the verbal mood slot. It also selects the shape of the verb's
// second feature segment.
type Mood uint8

const (
	MoodNone Mood = iota
	Indicative
	Subjunctive
	Optative
	Imperative
	Infinitive
	Participle
	ImperativeParticiple
)

var moodCodes = []code{
	MoodNone:             {},
	Indicative:           {"I", "Indicative"},
	Subjunctive:          {"S", "Subjunctive"},
	Optative:             {"O", "Optative"},
	Imperative:           {"M", "Imperative"},
	Infinitive:           {"N", "Infinitive"},
	Participle:           {"P", "Participle"},
	ImperativeParticiple: {"R", "Imperative Participle"},
}

var moodByTag = codeIndex[Mood](moodCodes)

func (m Mood) Code() string   { return codeAt(moodCodes, m).tag }
func (m Mood) String() string { return codeAt(moodCodes, m).label }

// Finite reports whether the mood takes a person/number segment.
func (m Mood) Finite() bool {
	switch m {
	case Indicative, Subjunctive, Optative, Imperative:
		return true
	}
	return false
}

// Participial reports whether the mood takes a case/number/gender segment.
func (m Mood) Participial() bool {
	return m == Participle || m == ImperativeParticiple
}

// featureLabels lists the closed label set of each enumerated feature.
// Suffix and Homonym values are open and have no entry.
var featureLabels = map[Feature][]string{
	FeaturePOS:             append(labelsOf(posCodes), labelParticiple, labelInfinitive),
	FeatureCase:            labelsOf(caseCodes),
	FeatureNumber:          labelsOf(numberCodes),
	FeatureGender:          labelsOf(genderCodes),
	FeaturePerson:          labelsOf(personCodes),
	FeaturePossessorPerson: labelsOf(personCodes),
	FeaturePossessorNumber: labelsOf(numberCodes),
	FeatureTense:           labelsOf(tenseCodes),
	FeatureVoice:           labelsOf(voiceCodes),
	FeatureMood:            labelsOf(moodCodes),
}
