package morphkit

import (
	"slices"
	"strings"
)

// classCodePOS maps class codes and flags that settle the part of speech
// on their own.
var classCodePOS = map[string]POS{
	"conj":       POSConjunction,
	"aor1":       POSVerb,
	"aor2":       POSVerb,
	"aor2_pass":  POSVerb,
	"irreg_mi":   POSVerb,
	"irreg_adj3": POSAdjective,
	"verb_adj2":  POSAdjective,
	"wn_on_comp": POSAdjective,
	"demonstr":   POSDemonstrativePronoun,
	"pron_adj1":  POSDemonstrativePronoun,
	"prep":       POSPreposition,
	"particle":   POSParticle,
	"numeral":    POSNumeralIndeclinable,
	"relative":   POSRelativePronoun,
	"pron1":      POSPersonalPronoun,
	"pron2":      POSPersonalPronoun,
	"pron3":      POSPersonalPronoun,
	"art_adj":    POSPersonalPronoun,
	"indef":      POSIndefinitePronoun,
	"interrog":   POSInterrogativePronoun,
	"article":    POSArticle,
	"adverb":     POSAdverb,
	"adverbial":  POSAdverb,
	"exclam":     POSInterjection,
}

// adjectivalClasses are two-termination declension classes; classes with
// three or more endings ("os_h_on") are adjectival as well.
var adjectivalClasses = []string{"os_on", "hs_es", "wn_on", "us_u", "hs_hs"}

// ClassifyPOS assigns a part of speech to a parse record. The rules are
// tried in priority order and the first match wins; a record matching
// none is POSUnknown.
func ClassifyPOS(r ParseRecord) POS {
	f := r.Features

	// 1. Tense, mood or voice only occur on verbs.
	if len(f.Tense) > 0 || len(f.Mood) > 0 || len(f.Voice) > 0 {
		return POSVerb
	}

	// 2. Class codes and flags, endings first.
	codes := r.Codes()
	for _, c := range codes {
		if p, ok := classCodePOS[c]; ok {
			return p
		}
	}

	// 3. Indeclinables.
	if slices.Contains(codes, "indeclform") {
		switch {
		case slices.Equal(f.Gender, []string{"neut"}) && slices.Equal(f.Number, []string{"sg"}) &&
			len(f.Case) == 1 && (f.Case[0] == "nom" || f.Case[0] == "acc"):
			return POSAdverb
		case len(f.Gender) > 0 || len(f.Number) > 0:
			return POSProperNounIndeclinable
		}
		return POSNounOtherIndeclinable
	}

	// 4. Clitics.
	if slices.Contains(codes, "enclitic") || slices.Contains(codes, "proclitic") {
		return POSParticle
	}

	// 5. Declined words.
	if len(f.Case) > 0 || len(f.Gender) > 0 {
		if len(f.Degree) > 0 || hasAdjectivalClass(codes) {
			return POSAdjective
		}
		return POSNoun
	}

	// 6. Adverbial endings.
	if slices.Contains(r.EndFlags, "adverbial") {
		return POSAdverb
	}
	return POSUnknown
}

func hasAdjectivalClass(codes []string) bool {
	for _, c := range codes {
		if !stemClassRe.MatchString(c) {
			continue
		}
		if slices.Contains(adjectivalClasses, c) || strings.Count(c, "_") >= 2 {
			return true
		}
	}
	return false
}
