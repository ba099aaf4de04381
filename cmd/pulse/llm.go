package main

import (
	"github.com/spf13/cobra"

	"github.com/cognicore/pulse/pkg/pulse/report"
)

var llmInput string

var llmCmd = &cobra.Command{
	Use:   "llm [LINE...]",
	Short: "Analyze feedback with a local language model",
	Long: `Send the feedback to an OpenAI-compatible endpoint (a local Ollama server by
default) and print its themes, sentiment and actions.

Configure with LLM_BASE_URL, LLM_MODEL, LLM_API_KEY and LLM_TIMEOUT.

Examples:
  ollama pull mistral
  pulse llm --input feedback.txt`,
	RunE: runLLM,
}

func init() {
	llmCmd.Flags().StringVarP(&llmInput, "input", "i", "", "Read feedback from this file instead of stdin")
	rootCmd.AddCommand(llmCmd)
}

func runLLM(cmd *cobra.Command, args []string) error {
	text, source, err := readText(args, llmInput, cmd.InOrStdin())
	if err != nil {
		return err
	}
	client := newLLMClient(app.cfg, app.logger)
	summary, ok := client.Analyze(cmd.Context(), text)
	var themes []string
	if ok {
		themes = report.ThemesFromMarkdown(summary.Themes)
	}
	return emit(cmd.OutOrStdout(), app.reports.BuildSummary(source, "llm", summary), themes)
}
