package columns

import (
	"math/rand"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cognicore/pulse/pkg/pulse/table"
)

// Detection defaults.
const (
	DefaultMaxColumns = 3
	DefaultThreshold  = 0.5
	DefaultSampleSize = 200
	DefaultSeed       = 42

	// IDPenalty is subtracted from columns whose name looks like an
	// identifier.
	IDPenalty = 2.0
)

// Score weights.
const (
	alphaWeight  = 2.0
	uniqueWeight = 0.5
	lengthWeight = 0.2
	lengthScale  = 30.0
	digitWeight  = 1.0
)

var identifierNames = map[string]struct{}{
	"id": {}, "uid": {}, "guid": {}, "ticket": {}, "order": {}, "case": {}, "number": {},
}

// Score is the textiness of one column.
type Score struct {
	Column string  `json:"column" yaml:"column"`
	Score  float64 `json:"score" yaml:"score"`
}

// Detector finds the columns of a table that hold free-form feedback.
type Detector struct {
	Threshold  float64
	SampleSize int
	Seed       int64
}

// NewDetector returns a detector with the default threshold, sample size and
// seed.
func NewDetector() *Detector {
	return &Detector{
		Threshold:  DefaultThreshold,
		SampleSize: DefaultSampleSize,
		Seed:       DefaultSeed,
	}
}

// Detect returns up to maxCols text columns scoring above the threshold,
// best first. If none qualify it falls back to the table's first column; a
// table without columns yields nil. maxCols <= 0 means DefaultMaxColumns.
func (d *Detector) Detect(t *table.Table, maxCols int) []string {
	if maxCols <= 0 {
		maxCols = DefaultMaxColumns
	}
	var out []string
	for _, s := range d.Scores(t) {
		if len(out) >= maxCols {
			break
		}
		if s.Score > d.Threshold {
			out = append(out, s.Column)
		}
	}
	if len(out) == 0 {
		if first := t.First(); first != nil {
			return []string{first.Name}
		}
	}
	return out
}

// Scores returns the textiness of every text column, highest first. Columns
// with equal scores keep table order. Numeric and other structured columns
// are not scored.
func (d *Detector) Scores(t *table.Table) []Score {
	var scores []Score
	for _, name := range t.Columns() {
		col, _ := t.Column(name)
		if col.Kind != table.KindText {
			continue
		}
		scores = append(scores, Score{Column: name, Score: d.ColumnScore(col)})
	}
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})
	return scores
}

// ColumnScore computes
//
//	2.0*alpha + 0.5*unique + 0.2*(meanLen/30) - 1.0*digits
//
// over a sample of the column's present values, minus IDPenalty when the
// column name looks like an identifier. An all-missing column scores 0.
func (d *Detector) ColumnScore(col *table.Column) float64 {
	sample := d.sample(col.NonMissing())
	if len(sample) == 0 {
		return 0
	}

	var letters, digits, chars int
	distinct := make(map[string]struct{}, len(sample))
	for _, v := range sample {
		distinct[v] = struct{}{}
		chars += utf8.RuneCountInString(v)
		for _, r := range v {
			switch {
			case unicode.IsLetter(r):
				letters++
			case unicode.IsDigit(r):
				digits++
			}
		}
	}

	var alpha, digit float64
	if chars > 0 {
		alpha = float64(letters) / float64(chars)
		digit = float64(digits) / float64(chars)
	}
	unique := float64(len(distinct)) / float64(len(sample))
	meanLen := float64(chars) / float64(len(sample))

	score := alphaWeight*alpha + uniqueWeight*unique + lengthWeight*(meanLen/lengthScale) - digitWeight*digit
	if isIdentifierName(col.Name) {
		score -= IDPenalty
	}
	return score
}

// sample keeps all values when there are few enough, otherwise draws
// SampleSize of them with a fixed seed so repeated runs agree.
func (d *Detector) sample(values []string) []string {
	size := d.SampleSize
	if size <= 0 {
		size = DefaultSampleSize
	}
	if len(values) <= size {
		return values
	}
	rng := rand.New(rand.NewSource(d.Seed))
	perm := rng.Perm(len(values))[:size]
	sort.Ints(perm)
	out := make([]string, size)
	for i, idx := range perm {
		out[i] = values[idx]
	}
	return out
}

func isIdentifierName(name string) bool {
	_, ok := identifierNames[strings.ToLower(strings.TrimSpace(name))]
	return ok
}
