package morphkit

import (
	"regexp"
	"strings"
)

// quantityReplacer renders Morpheus Latin quantity marks ("a_" long,
// "a^" short) as precomposed macron and breve letters.
var quantityReplacer = strings.NewReplacer(
	"a_", "\u0101", // ā
	"a^", "\u0103", // ă
	"e_", "\u0113", // ē
	"e^", "\u0115", // ĕ
	"i_", "\u012b", // ī
	"i^", "\u012d", // ĭ
	"o_", "\u014d", // ō
	"o^", "\u014f", // ŏ
	"u_", "\u016b", // ū
	"u^", "\u016d", // ŭ
	"y_", "\u0233", // ȳ

	"A_", "\u0100", // Ā
	"A^", "\u0102", // Ă
	"E_", "\u0112", // Ē
	"E^", "\u0114", // Ĕ
	"I_", "\u012a", // Ī
	"I^", "\u012c", // Ĭ
	"O_", "\u014c", // Ō
	"O^", "\u014e", // Ŏ
	"U_", "\u016a", // Ū
	"U^", "\u016c", // Ŭ
	"Y_", "\u0232", // Ȳ

	// no precomposed y with breve
	"y^", "y\u0306",
	"Y^", "Y\u0306",
)

// MarkQuantities converts a Morpheus Latin form to display spelling with
// vowel-quantity diacritics.
func MarkQuantities(s string) string {
	return quantityReplacer.Replace(s)
}

// atoneReplacer removes vowel quantities in both Morpheus and Unicode
// spelling.
var atoneReplacer = strings.NewReplacer(
	"_", "", "^", "",
	"\u0101", "a", "\u0103", "a",
	"\u0113", "e", "\u0115", "e",
	"\u012b", "i", "\u012d", "i",
	"\u014d", "o", "\u014f", "o",
	"\u016b", "u", "\u016d", "u",
	"\u0233", "y",
	"\u0100", "A", "\u0102", "A",
	"\u0112", "E", "\u0114", "E",
	"\u012a", "I", "\u012c", "I",
	"\u014c", "O", "\u014e", "O",
	"\u016a", "U", "\u016c", "U",
	"\u0232", "Y",
	"\u0306", "",
)

// Atone strips vowel-quantity marks from s.
func Atone(s string) string {
	return atoneReplacer.Replace(s)
}

// lemmaKeySuffix matches the "_(...)" tail that Lemma.Key adds.
var lemmaKeySuffix = regexp.MustCompile(`_\([^)]*\)$`)

// NormalizeLemma folds a lemma or lemma key for loose matching: the key
// suffix, hyphens, betacode capital marks, quantities and letter case
// are dropped.
func NormalizeLemma(s string) string {
	s = lemmaKeySuffix.ReplaceAllString(s, "")
	s = strings.NewReplacer("-", "", "*", "").Replace(s)
	return strings.ToLower(Atone(s))
}
