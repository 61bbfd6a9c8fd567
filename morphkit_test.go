package morphkit

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFetcher struct {
	transcripts map[string]string
	err         error
	calls       []string
}

func (f *fakeFetcher) FetchTranscript(_ context.Context, word string, lang Language) (string, error) {
	f.calls = append(f.calls, string(lang)+":"+word)
	if f.err != nil {
		return "", f.err
	}
	return f.transcripts[word], nil
}

func newAnalyzer(t *testing.T, opts ...Option) *Analyzer {
	t.Helper()
	a, err := New(opts...)
	require.NoError(t, err)
	return a
}

func TestAnalyze(t *testing.T) {
	t.Parallel()

	res := newAnalyzer(t).Analyze(touTranscript, Greek)
	require.Empty(t, res.Errors)
	assert.Equal(t, 3, res.Blocks)
	assert.Equal(t, Greek, res.Language)
	assert.Equal(t, "tou=", res.Raw.Translit)
	require.Len(t, res.Records, 3)

	var pos []POS
	var tags [][]string
	for _, r := range res.Records {
		pos = append(pos, r.POS)
		tags = append(tags, r.Tags)
	}
	assert.Equal(t, []POS{POSArticle, POSProperNounIndeclinable, POSIndefinitePronoun}, pos)
	assert.Equal(t, [][]string{{"T-GSM", "T-GSN"}, {"N-PRI"}, {"X-GSM", "X-GSN"}}, tags)
}

func TestAnalyzeCollectsErrors(t *testing.T) {
	t.Parallel()

	transcript := touTranscript +
		":raw \n:lem broken\n" +
		":raw ou)\n:lem ou)\n:end \t\tfoo\t\n" +
		legeiTranscript

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
	res := newAnalyzer(t, WithLogger(log)).Analyze(transcript, Greek)

	assert.Equal(t, 6, res.Blocks)
	require.Len(t, res.Errors, 2)

	var be *BlockError
	require.ErrorAs(t, res.Errors[0], &be)
	assert.Equal(t, 4, be.Index)

	assert.True(t, errors.Is(res.Errors[1], ErrEncode))
	assert.Contains(t, res.Errors[1].Error(), "block 5 record 1")
	assert.Equal(t, []string{res.Errors[0].Error(), res.Errors[1].Error()}, res.ErrorMessages())

	// The untaggable record is kept, the legei records follow.
	require.Len(t, res.Records, 6)
	assert.Equal(t, POSUnknown, res.Records[3].POS)
	assert.Empty(t, res.Records[3].Tags)
	assert.Equal(t, []string{"V-PAI-3S"}, res.Records[4].Tags)
	assert.Equal(t, []string{"V-PEI-2S"}, res.Records[5].Tags)

	assert.Contains(t, buf.String(), "skipping block")
	assert.Contains(t, buf.String(), "cannot tag record")
}

func TestAnalyzeLatin(t *testing.T) {
	t.Parallel()

	transcript := ":raw ama_s\n:lem amo\n:stem am\t\tare_vb\t\n:end a_s\t pres ind act 2nd sg\t\tare_vb\n"
	res := newAnalyzer(t).Analyze(transcript, Latin)
	require.Empty(t, res.Errors)
	require.Len(t, res.Records, 1)
	assert.Equal(t, POSVerb, res.Records[0].POS)
	assert.Empty(t, res.Records[0].Tags)
	assert.Equal(t, "am\u0101s", res.Raw.Native)
}

func TestAnalyzeEmpty(t *testing.T) {
	t.Parallel()

	res := newAnalyzer(t).Analyze("<NL>N xyz</NL>\n", Greek)
	assert.Zero(t, res.Blocks)
	assert.NotNil(t, res.Records)
	assert.Empty(t, res.Records)
	assert.Empty(t, res.Errors)
}

func TestAnalyzeWord(t *testing.T) {
	t.Parallel()

	f := &fakeFetcher{transcripts: map[string]string{"le/gei": legeiTranscript}}
	res, err := newAnalyzer(t).AnalyzeWord(context.Background(), f, "  le/gei ", Greek)
	require.NoError(t, err)
	assert.Equal(t, []string{"greek:le/gei"}, f.calls)
	assert.Equal(t, "le/gei", res.Word)
	require.Len(t, res.Records, 2)
	assert.Equal(t, []string{"V-PAI-3S"}, res.Records[0].Tags)
}

func TestAnalyzeWordErrors(t *testing.T) {
	t.Parallel()

	a := newAnalyzer(t)

	_, err := a.AnalyzeWord(context.Background(), &fakeFetcher{}, " ", Greek)
	require.Error(t, err)

	boom := errors.New("connection refused")
	f := &fakeFetcher{err: boom}
	_, err = a.AnalyzeWord(context.Background(), f, "lo/gos", Greek)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), `fetch "lo/gos"`)
}

func TestNewWithComparator(t *testing.T) {
	t.Parallel()

	c := newComparator(t, WithPartialCredit(0.5))
	a := newAnalyzer(t, WithComparator(c))
	assert.Same(t, c, a.Comparator())

	a = newAnalyzer(t, WithComparator(nil), WithLogger(nil))
	assert.NotNil(t, a.Comparator())
}
