package pulse

import (
	"go.uber.org/zap"

	"github.com/cognicore/pulse/pkg/pulse/ingest"
	"github.com/cognicore/pulse/pkg/pulse/stoplist"
)

// SuggestGeneric proposes additions to the generic-term list: tokens found
// in more than minDFPercent of the lines of text that are neither sentiment
// words nor synonym keys. Batches shorter than stoplist.DefaultMinUnits
// yield nothing.
func (e *Engine) SuggestGeneric(text string, minDFPercent float64) []stoplist.Candidate {
	units := ingest.SplitLines(text)
	if len(units) < stoplist.DefaultMinUnits {
		return nil
	}
	stats := e.ranker.DocumentFrequency(units)

	var out []stoplist.Candidate
	for _, c := range e.tokenizer.Stoplist().SuggestGeneric(stats, minDFPercent) {
		if e.polarity.IsPolar(c.Token) || e.tokenizer.Lexicon().HasSynonyms(c.Token) {
			continue
		}
		out = append(out, c)
	}
	e.logger.Debug("generic terms suggested",
		zap.Int("units", len(units)),
		zap.Int("tokens", len(stats)),
		zap.Int("candidates", len(out)))
	return out
}
