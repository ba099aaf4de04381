package sentiment

import (
	"fmt"

	"github.com/cognicore/pulse/pkg/pulse/ingest"
)

// Tally is the raw count of positive and negative lexicon hits in a batch.
type Tally struct {
	Positive int `json:"positive" yaml:"positive"`
	Negative int `json:"negative" yaml:"negative"`
}

// String renders the tally the way it is shown to users.
func (t Tally) String() string {
	return fmt.Sprintf("positive %d  negative %d", t.Positive, t.Negative)
}

// Balance returns Positive minus Negative.
func (t Tally) Balance() int {
	return t.Positive - t.Negative
}

// Scorer counts lexicon hits. It tokenizes on its own and does not share
// frequency tables with the phrase ranker.
type Scorer struct {
	tokenizer *ingest.Tokenizer
	polarity  *Polarity
}

// NewScorer creates a scorer. A nil polarity uses DefaultPolarity.
func NewScorer(tokenizer *ingest.Tokenizer, polarity *Polarity) *Scorer {
	if polarity == nil {
		polarity = DefaultPolarity()
	}
	return &Scorer{tokenizer: tokenizer, polarity: polarity}
}

// Score sums lexicon membership over every token of every unit.
func (s *Scorer) Score(units []string) Tally {
	var t Tally
	for _, unit := range units {
		for _, tok := range s.tokenizer.Tokenize(unit) {
			switch {
			case s.polarity.IsPositive(tok):
				t.Positive++
			case s.polarity.IsNegative(tok):
				t.Negative++
			}
		}
	}
	return t
}
