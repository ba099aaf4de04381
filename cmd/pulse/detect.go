package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/cognicore/pulse/pkg/pulse/columns"
)

var detectCmd = &cobra.Command{
	Use:   "detect PATH",
	Short: "Show which columns of a table look like free text",
	Long: `Load a table and print the textiness score of every text column,
followed by the columns that would be analyzed.

Examples:
  pulse detect survey.csv
  pulse detect tickets.xlsx --format json --max-cols 1`,
	Args: cobra.ExactArgs(1),
	RunE: runDetect,
}

var detectMaxCols int

func init() {
	detectCmd.Flags().IntVar(&detectMaxCols, "max-cols", 0, "Maximum columns to report as detected (default from config)")
	rootCmd.AddCommand(detectCmd)
}

type detectResponse struct {
	Path     string          `json:"path" yaml:"path"`
	Rows     int             `json:"rows" yaml:"rows"`
	Scores   []columns.Score `json:"scores" yaml:"scores"`
	Detected []string        `json:"detected" yaml:"detected"`
}

func runDetect(cmd *cobra.Command, args []string) error {
	t, err := app.engine.LoadTable(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	detected := app.engine.DetectColumns(t)
	if detectMaxCols > 0 {
		detected = app.comps.Detector.Detect(t, detectMaxCols)
	}
	resp := detectResponse{
		Path:     args[0],
		Rows:     t.Len(),
		Scores:   app.engine.ColumnScores(t),
		Detected: detected,
	}

	format, err := parseFormat(formatFlag)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(resp, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(data))
	case FormatYAML:
		data, err := yaml.Marshal(resp)
		if err != nil {
			return err
		}
		fmt.Fprint(w, string(data))
	default:
		fmt.Fprintf(w, "%s (%d rows)\n\n", resp.Path, resp.Rows)
		for _, s := range resp.Scores {
			fmt.Fprintf(w, "  %-30s %6.3f\n", s.Column, s.Score)
		}
		fmt.Fprintf(w, "\nDetected: %s\n", strings.Join(resp.Detected, ", "))
	}
	return nil
}
