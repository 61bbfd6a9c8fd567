package morphkit

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed similarity.yaml
var defaultSimilarityYAML []byte

// Pair is one unordered entry of a similarity matrix. In YAML it is
// written as a flow sequence: [Nominative, Vocative, 0.8].
type Pair struct {
	A, B  string
	Score float64
}

// UnmarshalYAML decodes the three-element sequence form.
func (p *Pair) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.SequenceNode || len(n.Content) != 3 {
		return fmt.Errorf("line %d: pair must be [label, label, score]", n.Line)
	}
	if err := n.Content[0].Decode(&p.A); err != nil {
		return err
	}
	if err := n.Content[1].Decode(&p.B); err != nil {
		return err
	}
	return n.Content[2].Decode(&p.Score)
}

type pairKey struct{ a, b string }

func keyOf(a, b string) pairKey {
	if b < a {
		a, b = b, a
	}
	return pairKey{a, b}
}

// Matrix scores pairs of values of one feature. It is symmetric and has
// 1.0 on the diagonal.
type Matrix struct {
	scores map[pairKey]float64
	// substring scores values where one contains the other; 0 disables.
	substring float64
}

// NewMatrix builds a matrix for a feature, checking labels, the score
// range, the diagonal and conflicting duplicates.
func NewMatrix(feature Feature, pairs []Pair, substring float64) (*Matrix, error) {
	fail := func(format string, args ...any) error {
		return &ConfigError{Feature: string(feature), Reason: fmt.Sprintf(format, args...)}
	}
	if substring < 0 || substring > 1 {
		return nil, fail("substring score %v outside [0,1]", substring)
	}
	labels, closed := featureLabels[feature]
	m := &Matrix{scores: make(map[pairKey]float64, len(pairs)), substring: substring}
	for _, p := range pairs {
		if closed {
			for _, l := range []string{p.A, p.B} {
				if !slices.Contains(labels, l) {
					return nil, fail("unknown label %q", l)
				}
			}
		}
		if p.Score < 0 || p.Score > 1 {
			return nil, fail("score %v for %s/%s outside [0,1]", p.Score, p.A, p.B)
		}
		if p.A == p.B {
			if p.Score != 1 {
				return nil, fail("diagonal %s must be 1.0, got %v", p.A, p.Score)
			}
			continue
		}
		k := keyOf(p.A, p.B)
		if prev, ok := m.scores[k]; ok && prev != p.Score {
			return nil, fail("conflicting scores for %s/%s: %v and %v", p.A, p.B, prev, p.Score)
		}
		m.scores[k] = p.Score
	}
	return m, nil
}

// Sim returns the similarity of two non-empty values.
func (m *Matrix) Sim(a, b string) float64 {
	if a == b {
		return 1
	}
	if m == nil {
		return 0
	}
	if s, ok := m.scores[keyOf(a, b)]; ok {
		return s
	}
	if m.substring > 0 && a != "" && b != "" && (strings.Contains(a, b) || strings.Contains(b, a)) {
		return m.substring
	}
	return 0
}

// Config is an immutable set of feature weights and similarity matrices.
type Config struct {
	version       int
	partialCredit float64
	order         []Feature
	weights       map[Feature]int
	matrices      map[Feature]*Matrix
}

type configFile struct {
	Version       int      `yaml:"version"`
	PartialCredit *float64 `yaml:"partial_credit"`
	Weights       []struct {
		Feature string `yaml:"feature"`
		Weight  int    `yaml:"weight"`
	} `yaml:"weights"`
	Matrices []struct {
		Feature   string  `yaml:"feature"`
		Substring float64 `yaml:"substring_score"`
		Pairs     []Pair  `yaml:"pairs"`
	} `yaml:"matrices"`
}

// comparableFeatures are the features a weight may be given to.
var comparableFeatures = []Feature{
	FeaturePOS, FeatureNumber, FeatureTense, FeatureVoice, FeatureMood,
	FeatureGender, FeatureCase, FeaturePerson, FeatureSuffix,
	FeaturePossessorPerson, FeaturePossessorNumber,
}

// DefaultConfig returns the built-in tables. It is parsed once and shared.
var DefaultConfig = sync.OnceValue(func() *Config {
	cfg, err := LoadConfig(bytes.NewReader(defaultSimilarityYAML))
	if err != nil {
		panic("morphkit: built-in similarity tables: " + err.Error())
	}
	return cfg
})

// LoadConfig reads weights and matrices from YAML and validates them.
func LoadConfig(r io.Reader) (*Config, error) {
	var f configFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, &ConfigError{Reason: err.Error()}
	}

	cfg := &Config{
		version:       f.Version,
		partialCredit: 0.25,
		weights:       make(map[Feature]int, len(f.Weights)),
		matrices:      make(map[Feature]*Matrix, len(f.Matrices)),
	}
	if f.PartialCredit != nil {
		cfg.partialCredit = *f.PartialCredit
	}
	if cfg.partialCredit < 0 || cfg.partialCredit > 1 {
		return nil, &ConfigError{Reason: fmt.Sprintf("partial_credit %v outside [0,1]", cfg.partialCredit)}
	}

	for _, w := range f.Weights {
		feat := Feature(w.Feature)
		if err := checkWeight(feat, w.Weight); err != nil {
			return nil, err
		}
		if _, dup := cfg.weights[feat]; dup {
			return nil, &ConfigError{Feature: w.Feature, Reason: "duplicate weight"}
		}
		cfg.weights[feat] = w.Weight
		cfg.order = append(cfg.order, feat)
	}
	for _, m := range f.Matrices {
		feat := Feature(m.Feature)
		if !slices.Contains(comparableFeatures, feat) {
			return nil, &ConfigError{Feature: m.Feature, Reason: "unknown feature"}
		}
		if _, dup := cfg.matrices[feat]; dup {
			return nil, &ConfigError{Feature: m.Feature, Reason: "duplicate matrix"}
		}
		mx, err := NewMatrix(feat, m.Pairs, m.Substring)
		if err != nil {
			return nil, err
		}
		cfg.matrices[feat] = mx
	}
	return cfg, nil
}

func checkWeight(f Feature, w int) error {
	if !slices.Contains(comparableFeatures, f) {
		return &ConfigError{Feature: string(f), Reason: "unknown feature"}
	}
	if w <= 0 {
		return &ConfigError{Feature: string(f), Reason: fmt.Sprintf("weight %d must be positive", w)}
	}
	return nil
}

// Version is the table version declared in the YAML.
func (c *Config) Version() int { return c.version }

// PartialCredit is the score of a slot valued in only one of two tags.
func (c *Config) PartialCredit() float64 { return c.partialCredit }

// Weights returns a copy of the weight table.
func (c *Config) Weights() map[Feature]int {
	return maps.Clone(c.weights)
}

// Similarity scores two values of a feature. Identical values score 1.
func (c *Config) Similarity(f Feature, a, b string) float64 {
	return c.matrices[f].Sim(a, b)
}
