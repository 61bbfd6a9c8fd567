package morphkit

import (
	"bufio"
	"slices"
	"strings"

	"github.com/cours-de-latin/morphkit/internal/betacode"
)

// ParseBlock reads one transcript block into the raw form and the parse
// records it contains. A block without a raw form fails with a
// *BlockError.
func ParseBlock(block string, lang Language) (Form, []ParseRecord, error) {
	return parseBlock(1, block, lang)
}

// blockParser accumulates the records of a single block.
type blockParser struct {
	lang    Language
	raw     Form
	work    Form
	records []*ParseRecord
	// cur is the record being filled; started is false until a
	// record-level line has been seen.
	cur     *ParseRecord
	started bool
}

func parseBlock(index int, block string, lang Language) (Form, []ParseRecord, error) {
	p := &blockParser{lang: lang, cur: &ParseRecord{}}

	sc := bufio.NewScanner(strings.NewReader(block))
	sc.Buffer(make([]byte, 0, 4096), 1<<20)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if !strings.HasPrefix(line, ":") {
			continue
		}
		prefix, payload := splitPrefix(line)
		form, tokens := splitPayload(payload)

		switch prefix {
		case ":raw":
			p.raw = nativeForm(form, lang)
		case ":workw":
			p.work = nativeForm(form, lang)
		case ":lem":
			if p.cur.Lemma.Full != "" {
				p.next(false)
			}
			p.cur.Lemma = ParseLemma(form)
			p.cur.Lemma.Native = nativeForm(p.cur.Lemma.Base, lang).Native
			p.stemTokens(tokens)
		case ":prvb":
			for _, pv := range strings.Split(form, ",") {
				if pv = strings.TrimSpace(pv); pv != "" {
					p.cur.Prefixes = append(p.cur.Prefixes, pv)
				}
			}
			p.stemTokens(tokens)
		case ":aug1":
			p.cur.Augment = form
			p.stemTokens(tokens)
		case ":stem":
			p.cur.Stem = form
			p.stemTokens(tokens)
		case ":suff":
			p.cur.Suffix = form
			p.stemTokens(tokens)
		case ":end":
			if p.cur.Ending != "" || len(p.cur.EndCodes) > 0 || len(p.cur.EndFlags) > 0 {
				p.next(true)
			}
			p.cur.Ending = form
			for _, tok := range tokens {
				p.classify(tok, &p.cur.EndCodes, &p.cur.EndFlags)
			}
		default:
			// Unknown prefixes carry nothing we use.
			continue
		}
		if prefix != ":raw" && prefix != ":workw" {
			p.started = true
		}
	}
	if err := sc.Err(); err != nil {
		return Form{}, nil, &BlockError{Index: index, Reason: err.Error()}
	}
	if p.raw.Translit == "" {
		return Form{}, nil, &BlockError{Index: index, Reason: "missing raw form"}
	}
	if p.started {
		p.records = append(p.records, p.cur)
	}

	out := make([]ParseRecord, 0, len(p.records))
	for _, r := range p.records {
		r.Language = lang
		r.Raw = p.raw
		r.Work = p.work
		out = append(out, *r)
	}
	return p.raw, out, nil
}

// next closes the current record. A record opened by a repeated ":end"
// line keeps everything but the ending of its predecessor.
func (p *blockParser) next(inherit bool) {
	prev := p.cur
	p.records = append(p.records, prev)
	p.cur = &ParseRecord{}
	if !inherit {
		return
	}
	p.cur.Lemma = prev.Lemma
	p.cur.Prefixes = slices.Clone(prev.Prefixes)
	p.cur.Augment = prev.Augment
	p.cur.Stem = prev.Stem
	p.cur.Suffix = prev.Suffix
	for _, c := range prev.StemCodes {
		p.classify(c, &p.cur.StemCodes, &p.cur.StemFlags)
	}
	p.cur.StemFlags = append(p.cur.StemFlags, prev.StemFlags...)
}

func (p *blockParser) stemTokens(tokens []string) {
	for _, tok := range tokens {
		p.classify(tok, &p.cur.StemCodes, &p.cur.StemFlags)
	}
}

// classify expands a token on '/' and files each part as a code, with
// its feature or dialect, or as a flag.
func (p *blockParser) classify(tok string, codes, flags *[]string) {
	for part := range strings.SplitSeq(tok, "/") {
		if part == "" {
			continue
		}
		t, ok := lookupTerm(part, p.lang)
		if !ok {
			if !slices.Contains(*flags, part) {
				*flags = append(*flags, part)
			}
			continue
		}
		if !slices.Contains(*codes, part) {
			*codes = append(*codes, part)
		}
		switch {
		case t.dialect:
			if !slices.Contains(p.cur.Dialects, part) {
				p.cur.Dialects = append(p.cur.Dialects, part)
			}
		case t.feature != "":
			p.cur.Features.add(t.feature, part)
		}
	}
}

// splitPrefix separates the ":xxx" prefix from the payload. Exactly one
// separating blank is consumed so that an empty form field survives.
func splitPrefix(line string) (prefix, payload string) {
	i := strings.IndexAny(line, " \t")
	if i < 0 {
		return line, ""
	}
	return line[:i], line[i+1:]
}

// splitPayload returns the form and the code tokens of a line payload.
// Fields are TAB separated; payloads without TABs are split on blanks.
func splitPayload(payload string) (form string, tokens []string) {
	if !strings.Contains(payload, "\t") {
		fields := strings.Fields(payload)
		if len(fields) == 0 {
			return "", nil
		}
		return fields[0], fields[1:]
	}
	fields := strings.Split(payload, "\t")
	form = strings.TrimSpace(fields[0])
	for _, f := range fields[1:] {
		tokens = append(tokens, strings.Fields(f)...)
	}
	return form, tokens
}

// nativeForm renders a transliterated form in the language's own script.
func nativeForm(translit string, lang Language) Form {
	f := Form{Translit: translit}
	if translit == "" {
		return f
	}
	switch lang {
	case Greek:
		f.Native = betacode.ToGreek(translit)
	case Latin:
		f.Native = MarkQuantities(translit)
	}
	return f
}
