package morphkit

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
)

// Detail is the per-feature breakdown of a comparison.
type Detail struct {
	Tag1       string  `json:"tag1"`
	Tag2       string  `json:"tag2"`
	Similarity float64 `json:"similarity"`
	Weight     int     `json:"weight"`
}

// Result is the outcome of comparing two tags.
type Result struct {
	Tag1    string  `json:"tag1"`
	Tag2    string  `json:"tag2"`
	Overall float64 `json:"overall_similarity"`
	// Incompatible is set when the parts of speech differ and their
	// templates share no slot; Overall is then 0.
	Incompatible bool              `json:"incompatible,omitempty"`
	Details      map[string]Detail `json:"details"`
}

// Comparator scores tag pairs with a weight table and similarity
// matrices. It is safe for concurrent use.
type Comparator struct {
	order    []Feature
	weights  map[Feature]int
	matrices map[Feature]*Matrix
	partial  float64
	log      *slog.Logger
}

// CompareOption adjusts a comparator at construction time. Overrides never
// touch the Config they start from.
type CompareOption func(*Comparator) error

// WithWeights overrides or adds feature weights.
func WithWeights(w map[Feature]int) CompareOption {
	return func(c *Comparator) error {
		keys := slices.Sorted(maps.Keys(w))
		for _, f := range keys {
			if err := checkWeight(f, w[f]); err != nil {
				return err
			}
			if _, ok := c.weights[f]; !ok {
				c.order = append(c.order, f)
			}
			c.weights[f] = w[f]
		}
		return nil
	}
}

// WithMatrix replaces the similarity matrix of one feature.
func WithMatrix(f Feature, pairs []Pair) CompareOption {
	return func(c *Comparator) error {
		var substring float64
		if prev := c.matrices[f]; prev != nil {
			substring = prev.substring
		}
		m, err := NewMatrix(f, pairs, substring)
		if err != nil {
			return err
		}
		c.matrices[f] = m
		return nil
	}
}

// WithPartialCredit sets the score of a slot valued in only one tag.
func WithPartialCredit(v float64) CompareOption {
	return func(c *Comparator) error {
		if v < 0 || v > 1 {
			return &ConfigError{Reason: fmt.Sprintf("partial credit %v outside [0,1]", v)}
		}
		c.partial = v
		return nil
	}
}

// WithCompareLogger sets the logger for per-feature debug output.
func WithCompareLogger(l *slog.Logger) CompareOption {
	return func(c *Comparator) error {
		c.log = l
		return nil
	}
}

// NewComparator builds a comparator from cfg, DefaultConfig when nil.
func NewComparator(cfg *Config, opts ...CompareOption) (*Comparator, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	c := &Comparator{
		order:    slices.Clone(cfg.order),
		weights:  make(map[Feature]int, len(cfg.weights)),
		matrices: make(map[Feature]*Matrix, len(cfg.matrices)),
		partial:  cfg.partialCredit,
		log:      discardLogger(),
	}
	maps.Copy(c.weights, cfg.weights)
	maps.Copy(c.matrices, cfg.matrices)
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Compare decodes and compares two tag strings.
func (c *Comparator) Compare(tag1, tag2 string) (Result, error) {
	a, err := Decode(tag1)
	if err != nil {
		return Result{}, fmt.Errorf("first tag: %w", err)
	}
	b, err := Decode(tag2)
	if err != nil {
		return Result{}, fmt.Errorf("second tag: %w", err)
	}
	return c.CompareTags(a, b), nil
}

// CompareTags scores two structured tags. Slots empty in both tags are
// skipped; a slot valued in only one of them earns the partial credit.
// The overall score is the weighted mean of the counted slots.
func (c *Comparator) CompareTags(a, b Tag) Result {
	res := Result{Tag1: a.String(), Tag2: b.String(), Details: make(map[string]Detail)}
	fa, fb := comparisonFeatures(a), comparisonFeatures(b)

	if a.POS != b.POS && !sharesSlot(a.POS, b.POS) {
		res.Incompatible = true
		res.Details[string(FeaturePOS)] = Detail{
			Tag1:   fa[FeaturePOS],
			Tag2:   fb[FeaturePOS],
			Weight: c.weights[FeaturePOS],
		}
		c.log.Debug("incompatible parts of speech", "tag1", res.Tag1, "tag2", res.Tag2)
		return res
	}

	slots := map[Feature]bool{FeaturePOS: true, FeatureSuffix: true}
	for _, p := range []POS{a.POS, b.POS} {
		tmpl, _ := TemplateFor(p)
		for _, s := range tmpl.Slots {
			slots[s.Feature] = true
		}
	}

	var total, weight float64
	for _, f := range c.order {
		if !slots[f] {
			continue
		}
		va, vb := fa[f], fb[f]
		var sim float64
		switch {
		case va == "" && vb == "":
			continue
		case va == "" || vb == "":
			sim = c.partial
		default:
			sim = c.matrices[f].Sim(va, vb)
		}
		w := c.weights[f]
		res.Details[string(f)] = Detail{Tag1: va, Tag2: vb, Similarity: sim, Weight: w}
		total += float64(w) * sim
		weight += float64(w)
		c.log.Debug("compare feature", "feature", f, "tag1", va, "tag2", vb, "similarity", sim, "weight", w)
	}

	switch {
	case weight == 0 && res.Tag1 == res.Tag2:
		res.Overall = 1
	case weight == 0:
		res.Overall = 0
	default:
		res.Overall = min(max(total/weight, 0), 1)
	}
	return res
}

// comparisonFeatures maps each feature to its value, with participles and
// infinitives as their own part-of-speech classes.
func comparisonFeatures(t Tag) map[Feature]string {
	out := make(map[Feature]string)
	for _, fv := range t.Features() {
		out[fv.Name] = fv.Value
	}
	out[FeaturePOS] = t.comparisonPOS()
	return out
}
