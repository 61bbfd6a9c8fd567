// Package morphkit turns Morpheus analysis transcripts for Greek and Latin
// word forms into Sandborg-Petersen style tags (V-PAI-3S, N-NSN-ATT) and
// scores the similarity of two tags.
//
// The core is pure: SplitBlocks and ParseBlock read transcripts,
// ClassifyPOS assigns a part of speech, Encode and Decode convert between
// records and tag strings, and a Comparator scores tag pairs. An Analyzer
// chains these steps over a whole transcript.
package morphkit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// Fetcher supplies the raw transcript for a word, typically from a
// Morpheus server.
type Fetcher interface {
	FetchTranscript(ctx context.Context, word string, lang Language) (string, error)
}

// Analyzer runs the split, parse, classify and encode pipeline. It holds
// no mutable state and is safe for concurrent use.
type Analyzer struct {
	log *slog.Logger
	cmp *Comparator
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithLogger sets the logger for per-block and per-record diagnostics.
// Failures go to Warn, progress to Debug.
func WithLogger(l *slog.Logger) Option {
	return func(a *Analyzer) {
		if l != nil {
			a.log = l
		}
	}
}

// WithComparator sets the comparator used by Rank.
func WithComparator(c *Comparator) Option {
	return func(a *Analyzer) {
		if c != nil {
			a.cmp = c
		}
	}
}

// New returns an Analyzer. Without options it logs nothing and compares
// with the built-in similarity tables.
func New(opts ...Option) (*Analyzer, error) {
	a := &Analyzer{log: discardLogger()}
	for _, opt := range opts {
		opt(a)
	}
	if a.cmp == nil {
		cmp, err := NewComparator(DefaultConfig(), WithCompareLogger(a.log))
		if err != nil {
			return nil, err
		}
		a.cmp = cmp
	}
	return a, nil
}

func discardLogger() *slog.Logger { return slog.New(slog.DiscardHandler) }

// Analysis is the result of analysing one transcript.
type Analysis struct {
	Word     string        `json:"word,omitempty"`
	Language Language      `json:"language"`
	Raw      Form          `json:"raw"`
	Blocks   int           `json:"blocks"`
	Records  []ParseRecord `json:"records"`
	// Errors holds the per-block and per-record failures. They never stop
	// the remaining blocks and records from being processed.
	Errors []error `json:"-"`
}

// ErrorMessages returns Errors as strings.
func (a *Analysis) ErrorMessages() []string {
	out := make([]string, 0, len(a.Errors))
	for _, err := range a.Errors {
		out = append(out, err.Error())
	}
	return out
}

// Analyze splits a transcript into blocks, parses every block and
// classifies and tags each record. Latin records are parsed and
// classified but not tagged.
func (a *Analyzer) Analyze(transcript string, lang Language) *Analysis {
	res := &Analysis{Language: lang, Records: []ParseRecord{}}
	index := 0
	for block := range Blocks(transcript) {
		index++
		raw, records, err := parseBlock(index, block, lang)
		if err != nil {
			a.log.Warn("skipping block", "block", index, "error", err)
			res.Errors = append(res.Errors, err)
			continue
		}
		if res.Raw.Translit == "" {
			res.Raw = raw
		}
		for i := range records {
			r := &records[i]
			r.POS = ClassifyPOS(*r)
			a.log.Debug("classified record",
				"block", index, "record", i+1, "lemma", r.Lemma.Full, "pos", r.POS.String())
			if lang != Greek {
				continue
			}
			tags, err := Encode(*r)
			if err != nil {
				err = fmt.Errorf("block %d record %d: %w", index, i+1, err)
				a.log.Warn("cannot tag record", "error", err)
				res.Errors = append(res.Errors, err)
				continue
			}
			r.Tags = tags
			a.log.Debug("tagged record", "block", index, "record", i+1, "tags", strings.Join(tags, ","))
		}
		res.Records = append(res.Records, records...)
	}
	res.Blocks = index
	return res
}

// AnalyzeWord fetches the transcript of a word and analyses it. Only
// transport failures are returned as errors; block and record failures
// are reported in the Analysis.
func (a *Analyzer) AnalyzeWord(ctx context.Context, f Fetcher, word string, lang Language) (*Analysis, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return nil, errors.New("empty word")
	}
	transcript, err := f.FetchTranscript(ctx, word, lang)
	if err != nil {
		return nil, fmt.Errorf("fetch %q: %w", word, err)
	}
	res := a.Analyze(transcript, lang)
	res.Word = word
	return res, nil
}

// Comparator returns the comparator the analyzer ranks with.
func (a *Analyzer) Comparator() *Comparator { return a.cmp }
