package morphkit

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPOSText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want POS
	}{
		{"Noun", POSNoun},
		{"N", POSNoun},
		{"N-PRI", POSProperNounIndeclinable},
		{"Proper Noun Indeclinable", POSProperNounIndeclinable},
		{"ADV", POSAdverb},
		{"Correlative or Interrogative Pronoun", POSCorrelativeOrInterrogativePronoun},
		{"Unknown", POSUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			var p POS
			require.NoError(t, p.UnmarshalText([]byte(tt.in)))
			assert.Equal(t, tt.want, p)
		})
	}

	var p POS
	assert.Error(t, p.UnmarshalText([]byte("noun")))
}

func TestPOSJSON(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(POSIndefinitePronoun)
	require.NoError(t, err)
	assert.JSONEq(t, `"Indefinite Pronoun"`, string(b))

	var got struct{ POS POS }
	require.NoError(t, json.Unmarshal([]byte(`{"POS":"X"}`), &got))
	assert.Equal(t, POSIndefinitePronoun, got.POS)
}

func TestPOSKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pos  POS
		kind Kind
		code string
	}{
		{POSUnknown, KindNone, ""},
		{POSVerb, KindVerbal, "V"},
		{POSArticle, KindNominal, "T"},
		{POSCorrelativeOrInterrogativePronoun, KindPronominal, "Q"},
		{POSReflexivePronoun, KindReflexive, "F"},
		{POSPossessivePronoun, KindPossessive, "S"},
		{POSNumeralIndeclinable, KindIndeclinable, "A-NUI"},
		{POSPunctuation, KindIndeclinable, "PUNCT"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.kind, tt.pos.Kind(), tt.pos.String())
		assert.Equal(t, tt.code, tt.pos.Code(), tt.pos.String())
	}
	assert.Equal(t, "", POS(250).Code())
}

func TestTemplateFor(t *testing.T) {
	t.Parallel()

	_, ok := TemplateFor(POSUnknown)
	assert.False(t, ok)

	tmpl, ok := TemplateFor(POSPossessivePronoun)
	require.True(t, ok)
	assert.True(t, tmpl.Has(FeaturePossessorPerson))
	assert.False(t, tmpl.Has(FeatureTense))

	tmpl, ok = TemplateFor(POSConjunction)
	require.True(t, ok)
	assert.Empty(t, tmpl.Slots)

	assert.True(t, sharesSlot(POSNoun, POSVerb))
	assert.True(t, sharesSlot(POSArticle, POSIndefinitePronoun))
	assert.False(t, sharesSlot(POSAdverb, POSConjunction))
	assert.False(t, sharesSlot(POSNoun, POSUnknown))
}

func TestParseLanguage(t *testing.T) {
	t.Parallel()

	l, err := ParseLanguage(" Greek ")
	require.NoError(t, err)
	assert.Equal(t, Greek, l)

	l, err = ParseLanguage("LATIN")
	require.NoError(t, err)
	assert.Equal(t, Latin, l)

	_, err = ParseLanguage("sanskrit")
	assert.Error(t, err)
}
