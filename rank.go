package morphkit

import (
	"cmp"
	"math"
	"slices"
	"strconv"
	"strings"
)

// Reference is the expected analysis records are ranked against.
type Reference struct {
	Tag   string `json:"tag"`
	Lemma string `json:"lemma"`
}

// RankedRecord is a record with the similarity of each of its tags to the
// reference tag, in percent.
type RankedRecord struct {
	Record       ParseRecord `json:"record"`
	Similarities []int       `json:"similarities"`
	Best         int         `json:"best"`
}

// Label joins the similarities with '/', e.g. "85/60".
func (r RankedRecord) Label() string {
	parts := make([]string, len(r.Similarities))
	for i, s := range r.Similarities {
		parts[i] = strconv.Itoa(s)
	}
	return strings.Join(parts, "/")
}

// LemmaGroup collects the records of one lemma key.
type LemmaGroup struct {
	Key       string         `json:"key"`
	Reference bool           `json:"reference,omitempty"`
	Best      int            `json:"best"`
	Records   []RankedRecord `json:"records"`
}

// Rank groups records by lemma key and orders them for review: the group
// of the reference lemma first, then the other groups by their best
// similarity, records within a group likewise. Ties keep input order.
func (c *Comparator) Rank(records []ParseRecord, ref Reference) []LemmaGroup {
	var groups []*LemmaGroup
	byKey := make(map[string]*LemmaGroup)

	for _, r := range records {
		rr := RankedRecord{Record: r, Similarities: make([]int, 0, len(r.Tags))}
		for _, tag := range r.Tags {
			s := c.percent(tag, ref.Tag)
			rr.Similarities = append(rr.Similarities, s)
			rr.Best = max(rr.Best, s)
		}
		key := r.Lemma.Key()
		g, ok := byKey[key]
		if !ok {
			g = &LemmaGroup{Key: key}
			byKey[key] = g
			groups = append(groups, g)
		}
		g.Records = append(g.Records, rr)
		g.Best = max(g.Best, rr.Best)
	}

	markReference(groups, ref.Lemma)

	out := make([]LemmaGroup, 0, len(groups))
	for _, g := range groups {
		slices.SortStableFunc(g.Records, func(a, b RankedRecord) int { return cmp.Compare(b.Best, a.Best) })
		out = append(out, *g)
	}
	slices.SortStableFunc(out, func(a, b LemmaGroup) int {
		if a.Reference != b.Reference {
			if a.Reference {
				return -1
			}
			return 1
		}
		return cmp.Compare(b.Best, a.Best)
	})
	return out
}

// markReference flags the group matching the reference lemma: an exact
// key match wins over a normalized one.
func markReference(groups []*LemmaGroup, lemma string) {
	if lemma == "" {
		return
	}
	for _, g := range groups {
		if g.Key == lemma {
			g.Reference = true
			return
		}
	}
	want := NormalizeLemma(lemma)
	for _, g := range groups {
		if NormalizeLemma(g.Key) == want {
			g.Reference = true
			return
		}
	}
}

func (c *Comparator) percent(tag, ref string) int {
	switch {
	case ref == "":
		return 0
	case tag == ref:
		return 100
	}
	res, err := c.Compare(ref, tag)
	if err != nil {
		c.log.Debug("cannot rank tag", "tag", tag, "reference", ref, "error", err)
		return 0
	}
	return int(math.Round(res.Overall * 100))
}
