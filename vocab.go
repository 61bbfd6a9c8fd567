package morphkit

import "regexp"

type langMask uint8

const (
	greekOnly langMask = 1 << iota
	latinOnly
	bothLangs = greekOnly | latinOnly
)

func (m langMask) has(l Language) bool {
	switch l {
	case Greek:
		return m&greekOnly != 0
	case Latin:
		return m&latinOnly != 0
	}
	return false
}

// term is a recognised Morpheus token. Tokens without a feature are class
// codes (stem types, part-of-speech hints, dialects).
type term struct {
	feature Feature
	dialect bool
	langs   langMask
}

var vocabulary = map[string]term{
	// case
	"nom": {feature: FeatureCase, langs: bothLangs},
	"gen": {feature: FeatureCase, langs: bothLangs},
	"dat": {feature: FeatureCase, langs: bothLangs},
	"acc": {feature: FeatureCase, langs: bothLangs},
	"voc": {feature: FeatureCase, langs: bothLangs},
	"abl": {feature: FeatureCase, langs: latinOnly},

	// number
	"sg":   {feature: FeatureNumber, langs: bothLangs},
	"pl":   {feature: FeatureNumber, langs: bothLangs},
	"dual": {feature: FeatureNumber, langs: greekOnly},

	// gender
	"masc": {feature: FeatureGender, langs: bothLangs},
	"fem":  {feature: FeatureGender, langs: bothLangs},
	"neut": {feature: FeatureGender, langs: bothLangs},

	// tense
	"pres":    {feature: FeatureTense, langs: bothLangs},
	"imperf":  {feature: FeatureTense, langs: bothLangs},
	"fut":     {feature: FeatureTense, langs: bothLangs},
	"aor":     {feature: FeatureTense, langs: greekOnly},
	"perf":    {feature: FeatureTense, langs: bothLangs},
	"plup":    {feature: FeatureTense, langs: bothLangs},
	"futperf": {feature: FeatureTense, langs: bothLangs},

	// voice
	"act":  {feature: FeatureVoice, langs: bothLangs},
	"mid":  {feature: FeatureVoice, langs: greekOnly},
	"pass": {feature: FeatureVoice, langs: bothLangs},
	"mp":   {feature: FeatureVoice, langs: greekOnly},

	// mood
	"ind":       {feature: FeatureMood, langs: bothLangs},
	"subj":      {feature: FeatureMood, langs: bothLangs},
	"opt":       {feature: FeatureMood, langs: greekOnly},
	"imperat":   {feature: FeatureMood, langs: bothLangs},
	"inf":       {feature: FeatureMood, langs: bothLangs},
	"part":      {feature: FeatureMood, langs: bothLangs},
	"gerundive": {feature: FeatureMood, langs: latinOnly},
	"supine":    {feature: FeatureMood, langs: latinOnly},

	// person
	"1st": {feature: FeaturePerson, langs: bothLangs},
	"2nd": {feature: FeaturePerson, langs: bothLangs},
	"3rd": {feature: FeaturePerson, langs: bothLangs},

	// degree
	"comp":   {feature: FeatureDegree, langs: bothLangs},
	"superl": {feature: FeatureDegree, langs: bothLangs},

	// dialect
	"attic":   {dialect: true, langs: greekOnly},
	"epic":    {dialect: true, langs: greekOnly},
	"ionic":   {dialect: true, langs: greekOnly},
	"doric":   {dialect: true, langs: greekOnly},
	"aeolic":  {dialect: true, langs: greekOnly},
	"homeric": {dialect: true, langs: greekOnly},

	// class codes
	"conj":       {langs: bothLangs},
	"aor1":       {langs: greekOnly},
	"aor2":       {langs: greekOnly},
	"aor2_pass":  {langs: greekOnly},
	"fut2":       {langs: greekOnly},
	"future2":    {langs: greekOnly},
	"perf2":      {langs: greekOnly},
	"lpl2":       {langs: greekOnly},
	"plup2":      {langs: greekOnly},
	"irreg_mi":   {langs: greekOnly},
	"irreg_adj3": {langs: greekOnly},
	"verb_adj2":  {langs: greekOnly},
	"wn_on_comp": {langs: greekOnly},
	"demonstr":   {langs: bothLangs},
	"pron_adj1":  {langs: greekOnly},
	"prep":       {langs: bothLangs},
	"particle":   {langs: bothLangs},
	"numeral":    {langs: bothLangs},
	"relative":   {langs: bothLangs},
	"pron1":      {langs: bothLangs},
	"pron2":      {langs: bothLangs},
	"pron3":      {langs: bothLangs},
	"art_adj":    {langs: greekOnly},
	"indef":      {langs: bothLangs},
	"interrog":   {langs: bothLangs},
	"article":    {langs: greekOnly},
	"adverb":     {langs: bothLangs},
	"adverbial":  {langs: bothLangs},
	"exclam":     {langs: bothLangs},
	"indeclform": {langs: bothLangs},
	"enclitic":   {langs: bothLangs},
	"proclitic":  {langs: greekOnly},
	"deponent":   {langs: bothLangs},
}

// stemClassRe matches Morpheus inflection class names such as "os_h_on"
// or "ew_pr".
var stemClassRe = regexp.MustCompile(`^[a-z0-9]+(_[a-z0-9]+)+$`)

// lookupTerm resolves a token for a language. Unlisted tokens shaped like
// an inflection class are class codes for both languages.
func lookupTerm(tok string, lang Language) (term, bool) {
	if t, ok := vocabulary[tok]; ok {
		return t, t.langs.has(lang)
	}
	if stemClassRe.MatchString(tok) {
		return term{langs: bothLangs}, true
	}
	return term{}, false
}
