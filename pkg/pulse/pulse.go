// Package pulse turns raw feedback into recurring themes, a sentiment tally
// and a short list of next actions. Feedback arrives either as a pasted
// block of text or as a table, in which case the free-text columns are
// found automatically.
package pulse

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/cognicore/pulse/pkg/pulse/actions"
	"github.com/cognicore/pulse/pkg/pulse/columns"
	"github.com/cognicore/pulse/pkg/pulse/ingest"
	"github.com/cognicore/pulse/pkg/pulse/sentiment"
	"github.com/cognicore/pulse/pkg/pulse/table"
	"github.com/cognicore/pulse/pkg/pulse/themes"
)

// Messages returned in place of themes when there is nothing to analyze.
const (
	MsgBlankText     = "Paste feedback on the left."
	MsgEmptyTable    = "Empty table."
	MsgNoTextColumns = "No text-like columns found."
	MsgNoThemes      = "_No recurring themes found._"
)

// Engine runs the analysis pipeline. It holds only read-only state and can
// serve concurrent requests.
type Engine struct {
	tokenizer  *ingest.Tokenizer
	ranker     *themes.Ranker
	scorer     *sentiment.Scorer
	polarity   *sentiment.Polarity
	detector   *columns.Detector
	tables     *table.Loader
	topK       int
	maxColumns int
	logger     *zap.Logger
}

// Options configures an Engine. Zero values fall back to the defaults.
type Options struct {
	Tokenizer  *ingest.Tokenizer
	Polarity   *sentiment.Polarity
	Detector   *columns.Detector
	Tables     *table.Loader
	TopK       int
	MaxColumns int
	Logger     *zap.Logger
}

// New creates an Engine with the given dependencies
func New(opts Options) *Engine {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	tok := opts.Tokenizer
	if tok == nil {
		tok = ingest.NewTokenizer(ingest.Options{})
	}
	detector := opts.Detector
	if detector == nil {
		detector = columns.NewDetector()
	}
	tables := opts.Tables
	if tables == nil {
		tables = table.NewLoader(logger)
	}
	topK := opts.TopK
	if topK <= 0 {
		topK = themes.DefaultTopK
	}
	polarity := opts.Polarity
	if polarity == nil {
		polarity = sentiment.DefaultPolarity()
	}
	maxCols := opts.MaxColumns
	if maxCols <= 0 {
		maxCols = columns.DefaultMaxColumns
	}
	return &Engine{
		tokenizer:  tok,
		ranker:     themes.NewRanker(tok),
		scorer:     sentiment.NewScorer(tok, polarity),
		polarity:   polarity,
		detector:   detector,
		tables:     tables,
		topK:       topK,
		maxColumns: maxCols,
		logger:     logger.Named("engine"),
	}
}

// Result is the outcome of one analysis. When Message is set there was
// nothing to analyze and Tally and Actions are nil.
type Result struct {
	Message string           `json:"message,omitempty" yaml:"message,omitempty"`
	Themes  []string         `json:"themes" yaml:"themes"`
	Tally   *sentiment.Tally `json:"sentiment,omitempty" yaml:"sentiment,omitempty"`
	Actions []string         `json:"actions,omitempty" yaml:"actions,omitempty"`
	Columns []string         `json:"columns,omitempty" yaml:"columns,omitempty"`
}

// Analyzed reports whether the pipeline ran, as opposed to returning an
// empty-input message.
func (r Result) Analyzed() bool {
	return r.Message == "" && r.Tally != nil
}

// AnalyzeText analyzes a pasted block of feedback, one text unit per
// non-empty line.
func (e *Engine) AnalyzeText(text string) Result {
	if ingest.IsBlank(text) {
		return Result{Message: MsgBlankText}
	}
	return e.analyze(ingest.SplitLines(text))
}

// TableOptions selects which columns of a table are analyzed.
type TableOptions struct {
	// Columns lists explicit columns. When empty the text columns are
	// detected automatically.
	Columns []string
	// Aggregate analyzes all chosen columns together. When false only the
	// first chosen column contributes.
	Aggregate bool
}

// DefaultTableOptions detects columns automatically and aggregates them.
func DefaultTableOptions() TableOptions {
	return TableOptions{Aggregate: true}
}

// AnalyzeTable analyzes the text columns of a table.
func (e *Engine) AnalyzeTable(t *table.Table, opts TableOptions) Result {
	if t.Empty() {
		return Result{Message: MsgEmptyTable}
	}

	cols := e.resolveColumns(t, opts.Columns)
	if len(cols) == 0 {
		return Result{Message: MsgNoTextColumns}
	}
	if !opts.Aggregate {
		cols = cols[:1]
	}

	var units []string
	for _, name := range cols {
		col, _ := t.Column(name)
		for _, v := range col.Strings("") {
			if v = strings.TrimSpace(v); v != "" {
				units = append(units, v)
			}
		}
	}
	if len(units) == 0 {
		return Result{Message: fmt.Sprintf("No text found in column(s): %s.", strings.Join(cols, ", "))}
	}

	res := e.analyze(units)
	res.Columns = cols
	return res
}

// AnalyzeFile loads a table from path and analyzes it. Load errors are
// returned to the caller.
func (e *Engine) AnalyzeFile(ctx context.Context, path string, opts TableOptions) (Result, error) {
	t, err := e.tables.Load(ctx, path)
	if err != nil {
		return Result{}, err
	}
	return e.AnalyzeTable(t, opts), nil
}

// DetectColumns returns the feedback columns of t.
func (e *Engine) DetectColumns(t *table.Table) []string {
	return e.detector.Detect(t, e.maxColumns)
}

// ColumnScores returns the textiness score of every text column of t.
func (e *Engine) ColumnScores(t *table.Table) []columns.Score {
	return e.detector.Scores(t)
}

// LoadTable reads a table with the engine's loader.
func (e *Engine) LoadTable(ctx context.Context, path string) (*table.Table, error) {
	return e.tables.Load(ctx, path)
}

// resolveColumns keeps the explicit columns present in t, or detects them.
func (e *Engine) resolveColumns(t *table.Table, explicit []string) []string {
	if len(explicit) == 0 {
		return e.DetectColumns(t)
	}
	var cols []string
	seen := make(map[string]struct{}, len(explicit))
	for _, name := range explicit {
		if _, ok := t.Column(name); !ok {
			e.logger.Warn("requested column not in table", zap.String("column", name))
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		cols = append(cols, name)
	}
	return cols
}

func (e *Engine) analyze(units []string) Result {
	found := e.ranker.Rank(units, e.topK)
	tally := e.scorer.Score(units)
	acts := actions.Recommend(found, tally)

	e.logger.Debug("analysis complete",
		zap.Int("units", len(units)),
		zap.Int("themes", len(found)),
		zap.Int("positive", tally.Positive),
		zap.Int("negative", tally.Negative),
		zap.Int("actions", len(acts)))

	return Result{
		Themes:  found,
		Tally:   &tally,
		Actions: acts,
	}
}
