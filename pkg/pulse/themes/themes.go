package themes

import (
	"strings"

	"github.com/cognicore/pulse/pkg/pulse/ingest"
	"github.com/cognicore/pulse/pkg/pulse/stoplist"
)

// DefaultTopK is the number of themes returned when the caller does not ask
// for a specific count.
const DefaultTopK = 8

// Ranker selects recurring phrases from a batch of text units.
type Ranker struct {
	tokenizer *ingest.Tokenizer
}

// NewRanker creates a ranker that tokenizes with the given tokenizer.
func NewRanker(tokenizer *ingest.Tokenizer) *Ranker {
	return &Ranker{tokenizer: tokenizer}
}

// Counts holds the batch-wide frequency tables, each sorted by descending
// count with ties in encounter order.
type Counts struct {
	Units    int
	Tokens   int
	Unigrams []Entry
	Bigrams  []Entry
}

// Counts tokenizes every unit and accumulates unigram and adjacent-bigram
// frequencies across the batch.
func (r *Ranker) Counts(units []string) Counts {
	uni, bi, total := r.count(units)
	return Counts{
		Units:    len(units),
		Tokens:   total,
		Unigrams: uni.ranked(),
		Bigrams:  bi.ranked(),
	}
}

func (r *Ranker) count(units []string) (*counter, *counter, int) {
	uni := newCounter()
	bi := newCounter()
	total := 0
	for _, unit := range units {
		tokens := r.tokenizer.Tokenize(unit)
		total += len(tokens)
		for i, tok := range tokens {
			uni.add(tok)
			if i > 0 {
				bi.add(tokens[i-1] + " " + tok)
			}
		}
	}
	return uni, bi, total
}

// Rank returns up to k themes. Bigrams are taken first in descending
// frequency; tokens covered by an accepted bigram are not repeated as
// unigrams. Unigrams fill whatever slots remain. k <= 0 means DefaultTopK.
func (r *Ranker) Rank(units []string, k int) []string {
	if k <= 0 {
		k = DefaultTopK
	}
	uni, bi, _ := r.count(units)
	if uni.len() == 0 {
		return nil
	}

	stops := r.tokenizer.Stoplist()
	chosen := make([]string, 0, k)
	seen := make(map[string]struct{}, k)
	covered := make(map[string]struct{})

	for _, e := range bi.ranked() {
		if len(chosen) >= k {
			break
		}
		left, right, _ := strings.Cut(e.Term, " ")
		if stops.IsGeneric(left) || stops.IsGeneric(right) {
			continue
		}
		if _, dup := seen[e.Term]; dup {
			continue
		}
		seen[e.Term] = struct{}{}
		chosen = append(chosen, e.Term)
		covered[left] = struct{}{}
		covered[right] = struct{}{}
	}

	for _, e := range uni.ranked() {
		if len(chosen) >= k {
			break
		}
		if stops.IsGeneric(e.Term) {
			continue
		}
		if _, ok := covered[e.Term]; ok {
			continue
		}
		if _, dup := seen[e.Term]; dup {
			continue
		}
		seen[e.Term] = struct{}{}
		chosen = append(chosen, e.Term)
	}
	return chosen
}

// DocumentFrequency reports, for every token, how many units contain it.
// Tokens are listed in encounter order.
func (r *Ranker) DocumentFrequency(units []string) []stoplist.Stats {
	df := newCounter()
	n := 0
	for _, unit := range units {
		tokens := r.tokenizer.Tokenize(unit)
		if len(tokens) == 0 {
			continue
		}
		n++
		seen := make(map[string]struct{}, len(tokens))
		for _, tok := range tokens {
			if _, dup := seen[tok]; dup {
				continue
			}
			seen[tok] = struct{}{}
			df.add(tok)
		}
	}

	out := make([]stoplist.Stats, len(df.rows))
	for i, e := range df.rows {
		out[i] = stoplist.Stats{
			Token:     e.Term,
			DF:        e.Count,
			DFPercent: 100 * float64(e.Count) / float64(n),
		}
	}
	return out
}
