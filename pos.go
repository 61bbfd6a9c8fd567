package morphkit

import "fmt"

// POS is the part of speech of an analysis. POSUnknown is the zero value
// and has no tag template.
type POS uint8

const (
	POSUnknown POS = iota
	POSNoun
	POSAdjective
	POSArticle
	POSVerb
	POSPersonalPronoun
	POSRelativePronoun
	POSReciprocalPronoun
	POSDemonstrativePronoun
	POSCorrelativePronoun
	POSInterrogativePronoun
	POSIndefinitePronoun
	POSCorrelativeOrInterrogativePronoun
	POSReflexivePronoun
	POSPossessivePronoun
	POSAdverb
	POSConjunction
	POSConditional
	POSParticle
	POSPreposition
	POSInterjection
	POSAramaic
	POSHebrew
	POSProperNounIndeclinable
	POSNumeralIndeclinable
	POSLetterIndeclinable
	POSNounOtherIndeclinable
	POSPunctuation
)

// Comparison-only part-of-speech classes: verbs in the participle or
// infinitive mood are compared under these labels.
const (
	labelParticiple = "Participle"
	labelInfinitive = "Infinitive"
)

// posCodes holds the tag prefix (without the trailing hyphen) and label.
var posCodes = []code{
	POSUnknown:                           {},
	POSNoun:                              {"N", "Noun"},
	POSAdjective:                         {"A", "Adjective"},
	POSArticle:                           {"T", "Article"},
	POSVerb:                              {"V", "Verb"},
	POSPersonalPronoun:                   {"P", "Personal Pronoun"},
	POSRelativePronoun:                   {"R", "Relative Pronoun"},
	POSReciprocalPronoun:                 {"C", "Reciprocal Pronoun"},
	POSDemonstrativePronoun:              {"D", "Demonstrative Pronoun"},
	POSCorrelativePronoun:                {"K", "Correlative Pronoun"},
	POSInterrogativePronoun:              {"I", "Interrogative Pronoun"},
	POSIndefinitePronoun:                 {"X", "Indefinite Pronoun"},
	POSCorrelativeOrInterrogativePronoun: {"Q", "Correlative or Interrogative Pronoun"},
	POSReflexivePronoun:                  {"F", "Reflexive Pronoun"},
	POSPossessivePronoun:                 {"S", "Possessive Pronoun"},
	POSAdverb:                            {"ADV", "Adverb"},
	POSConjunction:                       {"CONJ", "Conjunction"},
	POSConditional:                       {"COND", "Conditional"},
	POSParticle:                          {"PRT", "Particle"},
	POSPreposition:                       {"PREP", "Preposition"},
	POSInterjection:                      {"INJ", "Interjection"},
	POSAramaic:                           {"ARAM", "Aramaic"},
	POSHebrew:                            {"HEB", "Hebrew"},
	POSProperNounIndeclinable:            {"N-PRI", "Proper Noun Indeclinable"},
	POSNumeralIndeclinable:               {"A-NUI", "Numeral Indeclinable"},
	POSLetterIndeclinable:                {"N-LI", "Letter Indeclinable"},
	POSNounOtherIndeclinable:             {"N-OI", "Noun Other Type Indeclinable"},
	POSPunctuation:                       {"PUNCT", "Punctuation"},
}

var posByTag = codeIndex[POS](posCodes)

// Code returns the tag prefix of the part of speech, e.g. "N" or "N-PRI".
func (p POS) Code() string { return codeAt(posCodes, p).tag }

func (p POS) String() string {
	if p == POSUnknown {
		return "Unknown"
	}
	return codeAt(posCodes, p).label
}

// MarshalText encodes the part of speech as its label.
func (p POS) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// UnmarshalText accepts a label or a tag prefix.
func (p *POS) UnmarshalText(b []byte) error {
	s := string(b)
	if v, ok := posByTag[s]; ok {
		*p = v
		return nil
	}
	for i, c := range posCodes {
		if c.label == s {
			*p = POS(i)
			return nil
		}
	}
	if s == "Unknown" {
		*p = POSUnknown
		return nil
	}
	return fmt.Errorf("unknown part of speech %q", s)
}

// Kind groups parts of speech sharing one tag template.
type Kind uint8

const (
	KindNone Kind = iota
	KindVerbal
	KindNominal
	KindPronominal
	KindReflexive
	KindPossessive
	KindIndeclinable
)

// Kind returns the template kind of the part of speech.
func (p POS) Kind() Kind {
	switch p {
	case POSVerb:
		return KindVerbal
	case POSNoun, POSAdjective, POSArticle:
		return KindNominal
	case POSPersonalPronoun, POSRelativePronoun, POSReciprocalPronoun,
		POSDemonstrativePronoun, POSCorrelativePronoun, POSInterrogativePronoun,
		POSIndefinitePronoun, POSCorrelativeOrInterrogativePronoun:
		return KindPronominal
	case POSReflexivePronoun:
		return KindReflexive
	case POSPossessivePronoun:
		return KindPossessive
	case POSUnknown:
		return KindNone
	}
	return KindIndeclinable
}
