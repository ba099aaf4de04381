package stoplist

import "sort"

// Suggestion defaults. Batches smaller than DefaultMinUnits give no
// suggestions, since a handful of lines makes every token look common.
const (
	DefaultMinDFPercent = 60.0
	DefaultMinUnits     = 5
)

// Stats is the document frequency of one token across a batch of units.
type Stats struct {
	Token     string
	DF        int
	DFPercent float64
}

// Candidate is a token suggested for the generic list.
type Candidate struct {
	Token     string  `json:"token" yaml:"token"`
	DF        int     `json:"df" yaml:"df"`
	DFPercent float64 `json:"df_percent" yaml:"df_percent"`
}

// SuggestGeneric returns tokens that occur in more than minDFPercent of the
// units and are not excluded yet, most frequent first. Ties keep the order
// of stats. minDFPercent <= 0 means DefaultMinDFPercent.
func (m *Manager) SuggestGeneric(stats []Stats, minDFPercent float64) []Candidate {
	if minDFPercent <= 0 {
		minDFPercent = DefaultMinDFPercent
	}
	var out []Candidate
	for _, s := range stats {
		if m.Excluded(s.Token) {
			continue
		}
		if s.DFPercent > minDFPercent {
			out = append(out, Candidate{Token: s.Token, DF: s.DF, DFPercent: s.DFPercent})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DFPercent > out[j].DFPercent
	})
	return out
}
