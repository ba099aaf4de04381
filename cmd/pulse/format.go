package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/pulse/pkg/pulse/report"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	FormatHuman OutputFormat = "human"
	FormatJSON  OutputFormat = "json"
	FormatYAML  OutputFormat = "yaml"
)

func parseFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(s)); f {
	case FormatHuman, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported format: %s", s)
	}
}

// FormatReport formats a report according to the specified format
func FormatReport(r report.Report, format OutputFormat) (string, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal JSON: %w", err)
		}
		return string(data), nil
	case FormatYAML:
		data, err := yaml.Marshal(r)
		if err != nil {
			return "", fmt.Errorf("failed to marshal YAML: %w", err)
		}
		return strings.TrimRight(string(data), "\n"), nil
	case FormatHuman:
		return formatHuman(r), nil
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

func formatHuman(r report.Report) string {
	var b strings.Builder
	s := r.Summary

	b.WriteString("## Key Themes\n")
	b.WriteString(s.Themes)
	b.WriteString("\n")
	if len(s.Columns) > 0 {
		fmt.Fprintf(&b, "\n_Analyzed columns: **%s**_\n", strings.Join(s.Columns, ", "))
	}
	if s.Sentiment != "" {
		b.WriteString("\n## Sentiment\n")
		b.WriteString(s.Sentiment)
		b.WriteString("\n")
	}
	if s.Actions != "" {
		b.WriteString("\n## Suggested Actions\n")
		b.WriteString(s.Actions)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
