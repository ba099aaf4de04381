package report

import (
	"crypto/rand"
	"encoding/csv"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/pulse/pkg/pulse"
)

// Builder stamps analysis results with sortable IDs.
type Builder struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
	now     func() time.Time
}

// New creates a new report builder
func New() *Builder {
	return &Builder{
		entropy: ulid.Monotonic(rand.Reader, 0),
		now:     time.Now,
	}
}

// Report wraps one analysis with provenance.
type Report struct {
	ID        string        `json:"id" yaml:"id"`
	CreatedAt time.Time     `json:"created_at" yaml:"created_at"`
	Source    string        `json:"source" yaml:"source"`
	Mode      string        `json:"mode" yaml:"mode"`
	Result    pulse.Result  `json:"result" yaml:"result"`
	Summary   pulse.Summary `json:"summary" yaml:"summary"`
}

// Build wraps a result. source names the input (a path or "stdin"); mode is
// the analysis that produced it ("text", "table", "llm").
func (b *Builder) Build(source, mode string, res pulse.Result) Report {
	return b.wrap(source, mode, res, res.Summary())
}

// BuildSummary wraps a summary that has no structured result behind it,
// such as the LLM backend's free-text answer.
func (b *Builder) BuildSummary(source, mode string, s pulse.Summary) Report {
	return b.wrap(source, mode, pulse.Result{}, s)
}

func (b *Builder) wrap(source, mode string, res pulse.Result, s pulse.Summary) Report {
	b.mu.Lock()
	now := b.now()
	id := ulid.MustNew(ulid.Timestamp(now), b.entropy).String()
	b.mu.Unlock()

	return Report{
		ID:        id,
		CreatedAt: now.UTC(),
		Source:    source,
		Mode:      mode,
		Result:    res,
		Summary:   s,
	}
}

// WriteThemesCSV writes a single "themes" column with one row per theme.
func WriteThemesCSV(w io.Writer, themes []string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"themes"}); err != nil {
		return err
	}
	for _, t := range themes {
		if err := cw.Write([]string{t}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ThemesFromMarkdown recovers theme lines from a rendered bullet list.
// Blank lines are dropped and the "- " prefix is removed.
func ThemesFromMarkdown(md string) []string {
	var out []string
	for _, line := range strings.Split(md, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "-*"))
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
