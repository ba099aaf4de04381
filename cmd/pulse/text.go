package main

import (
	"github.com/spf13/cobra"
)

var textInput string

var textCmd = &cobra.Command{
	Use:   "text [LINE...]",
	Short: "Analyze pasted feedback text",
	Long: `Analyze a block of feedback, one item per line.

Examples:
  pulse text "Dashboard is slow" "Support was helpful"
  pulse text --input feedback.txt
  pbpaste | pulse text --format json`,
	RunE: runText,
}

func init() {
	textCmd.Flags().StringVarP(&textInput, "input", "i", "", "Read feedback from this file instead of stdin")
	rootCmd.AddCommand(textCmd)
}

func runText(cmd *cobra.Command, args []string) error {
	text, source, err := readText(args, textInput, cmd.InOrStdin())
	if err != nil {
		return err
	}
	res := app.engine.AnalyzeText(text)
	return emit(cmd.OutOrStdout(), app.reports.Build(source, "text", res), res.Themes)
}
