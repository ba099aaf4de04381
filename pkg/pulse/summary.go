package pulse

import "strings"

// Summary is the markdown rendering of a Result. A slot is empty when the
// corresponding stage had no input.
type Summary struct {
	Themes    string   `json:"themes" yaml:"themes"`
	Sentiment string   `json:"sentiment,omitempty" yaml:"sentiment,omitempty"`
	Actions   string   `json:"actions,omitempty" yaml:"actions,omitempty"`
	Columns   []string `json:"columns,omitempty" yaml:"columns,omitempty"`
}

// Summary renders themes and actions as "- " bullet lists and the tally as
// "positive N  negative M". An empty-input result carries its message in the
// themes slot.
func (r Result) Summary() Summary {
	if r.Message != "" {
		return Summary{Themes: r.Message}
	}
	s := Summary{
		Themes:  Bullets(r.Themes),
		Actions: Bullets(r.Actions),
		Columns: r.Columns,
	}
	if s.Themes == "" && r.Tally != nil {
		s.Themes = MsgNoThemes
	}
	if r.Tally != nil {
		s.Sentiment = r.Tally.String()
	}
	return s
}

// Bullets renders items as a markdown bullet list, one per line.
func Bullets(items []string) string {
	if len(items) == 0 {
		return ""
	}
	return "- " + strings.Join(items, "\n- ")
}
