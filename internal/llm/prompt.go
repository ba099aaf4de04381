package llm

import (
	"fmt"
	"strings"
)

// Placeholder fills a section the model did not return.
const Placeholder = "—"

const promptTemplate = `You are a product analyst. Given raw feedback, return:
1) 6-8 key themes (bulleted, short phrases)
2) a quick sentiment estimate (positive/negative counts)
3) 3 concrete next actions

Feedback:
---
%s
---
Return plain text with three sections: THEMES:, SENTIMENT:, ACTIONS:
`

// Prompt renders the analyst prompt around text, trimmed and cut to at most
// maxChars characters.
func Prompt(text string, maxChars int) string {
	text = strings.TrimSpace(text)
	if maxChars > 0 {
		if r := []rune(text); len(r) > maxChars {
			text = string(r[:maxChars])
		}
	}
	return fmt.Sprintf(promptTemplate, text)
}

// Sections is a model answer split by label.
type Sections struct {
	Themes    string
	Sentiment string
	Actions   string
}

var labels = []string{"THEMES", "SENTIMENT", "ACTIONS"}

// ParseSections splits a free-text answer into its THEMES, SENTIMENT and
// ACTIONS sections. A line whose text starts with a label (any case, with
// leading markdown '#' or '*' ignored) opens that section; anything after
// the label's colon is kept. Lines before the first label are dropped.
// Missing sections are set to Placeholder.
func ParseSections(out string) Sections {
	parts := make(map[string]*strings.Builder, len(labels))
	for _, l := range labels {
		parts[l] = &strings.Builder{}
	}

	section := ""
	for _, raw := range strings.Split(out, "\n") {
		raw = strings.TrimRight(raw, "\r")
		line := strings.TrimLeft(strings.TrimSpace(raw), "#* ")
		if label, rest, ok := cutLabel(line); ok {
			section = label
			if rest != "" {
				parts[section].WriteString(rest + "\n")
			}
			continue
		}
		if section != "" {
			parts[section].WriteString(raw + "\n")
		}
	}

	get := func(label string) string {
		if s := strings.TrimSpace(parts[label].String()); s != "" {
			return s
		}
		return Placeholder
	}
	return Sections{
		Themes:    get("THEMES"),
		Sentiment: get("SENTIMENT"),
		Actions:   get("ACTIONS"),
	}
}

func cutLabel(line string) (label, rest string, ok bool) {
	for _, l := range labels {
		if len(line) >= len(l) && strings.EqualFold(line[:len(l)], l) {
			rest = strings.TrimSpace(strings.TrimLeft(line[len(l):], "*:"))
			return l, rest, true
		}
	}
	return "", "", false
}
