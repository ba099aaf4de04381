package sentiment

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cognicore/pulse/pkg/pulse/internalerr"
)

// Tokens reach the scorer already canonicalized, so only canonical keys are
// listed here. A synonym variant such as "broken" or "awesome" would never
// match; it is counted through its key ("crash", "great").
var defaultPositive = strings.Fields(`
good great love helpful clear fast responsive satisfied happy improved
intuitive smooth reliable easy
`)

var defaultNegative = strings.Fields(`
bad confusing slow bug issue crash difficult hate terrible poor unreliable
annoying frustrating expensive
`)

// Polarity holds the two disjoint word sets used for scoring.
type Polarity struct {
	positive map[string]struct{}
	negative map[string]struct{}
}

// NewPolarity builds a polarity lexicon. A word listed as both positive and
// negative is rejected.
func NewPolarity(positive, negative []string) (*Polarity, error) {
	p := &Polarity{
		positive: make(map[string]struct{}, len(positive)),
		negative: make(map[string]struct{}, len(negative)),
	}
	for _, w := range positive {
		if w = normalize(w); w != "" {
			p.positive[w] = struct{}{}
		}
	}
	for _, w := range negative {
		w = normalize(w)
		if w == "" {
			continue
		}
		if _, clash := p.positive[w]; clash {
			return nil, fmt.Errorf("sentiment word %q is both positive and negative: %w", w, internalerr.ErrInvalidInput)
		}
		p.negative[w] = struct{}{}
	}
	return p, nil
}

var defaultPolarity = mustPolarity(defaultPositive, defaultNegative)

func mustPolarity(positive, negative []string) *Polarity {
	p, err := NewPolarity(positive, negative)
	if err != nil {
		panic(err)
	}
	return p
}

// DefaultPolarity returns the built-in lexicon. It is shared and read-only.
func DefaultPolarity() *Polarity {
	return defaultPolarity
}

// DefaultPositive returns a copy of the built-in positive words.
func DefaultPositive() []string {
	return append([]string(nil), defaultPositive...)
}

// DefaultNegative returns a copy of the built-in negative words.
func DefaultNegative() []string {
	return append([]string(nil), defaultNegative...)
}

// IsPositive reports whether token is a positive word.
func (p *Polarity) IsPositive(token string) bool {
	_, ok := p.positive[token]
	return ok
}

// IsNegative reports whether token is a negative word.
func (p *Polarity) IsNegative(token string) bool {
	_, ok := p.negative[token]
	return ok
}

func normalize(w string) string {
	return strings.ToLower(strings.TrimSpace(w))
}

// Positive returns the positive words, sorted.
func (p *Polarity) Positive() []string {
	return sortedWords(p.positive)
}

// Negative returns the negative words, sorted.
func (p *Polarity) Negative() []string {
	return sortedWords(p.negative)
}

// IsPolar reports whether token carries sentiment either way.
func (p *Polarity) IsPolar(token string) bool {
	return p.IsPositive(token) || p.IsNegative(token)
}

func sortedWords(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for w := range set {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}
