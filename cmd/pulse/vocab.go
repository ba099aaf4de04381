package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/cognicore/pulse/pkg/pulse/config"
	"github.com/cognicore/pulse/pkg/pulse/stoplist"
)

var (
	vocabSuggest string
	vocabMinDF   float64
)

var vocabCmd = &cobra.Command{
	Use:   "vocab",
	Short: "Print the active vocabulary or suggest generic terms",
	Long: `Without flags, print the stopwords, generic terms, sentiment words and synonym
groups in effect as a vocabulary file. Save it, edit it and point
PULSE_VOCABULARY at it to customize the analysis.

With --suggest, read a feedback file and list words that appear in most lines
but are not yet filtered; they are candidates for the generic list.

Examples:
  pulse vocab > vocabulary.yaml
  pulse vocab --suggest feedback.txt --min-df 50`,
	Args: cobra.NoArgs,
	RunE: runVocab,
}

func init() {
	vocabCmd.Flags().StringVar(&vocabSuggest, "suggest", "", "Suggest generic terms from this feedback file")
	vocabCmd.Flags().Float64Var(&vocabMinDF, "min-df", stoplist.DefaultMinDFPercent, "Minimum share of lines (percent) a suggested word must appear in")
	rootCmd.AddCommand(vocabCmd)
}

func runVocab(cmd *cobra.Command, args []string) error {
	format, err := parseFormat(formatFlag)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()

	if vocabSuggest == "" {
		tok := app.comps.Tokenizer
		vocab := config.Effective(tok.Stoplist(), tok.Lexicon(), app.comps.Polarity)
		if format == FormatJSON {
			return writeJSON(w, vocab)
		}
		return vocab.Write(w)
	}

	text, _, err := readText(nil, vocabSuggest, cmd.InOrStdin())
	if err != nil {
		return err
	}
	candidates := app.engine.SuggestGeneric(text, vocabMinDF)

	switch format {
	case FormatJSON:
		return writeJSON(w, candidates)
	case FormatYAML:
		generic := make([]string, len(candidates))
		for i, c := range candidates {
			generic[i] = c.Token
		}
		return (&config.Vocabulary{Generic: generic}).Write(w)
	default:
		if len(candidates) == 0 {
			fmt.Fprintln(w, "No generic-term candidates found.")
			return nil
		}
		for _, c := range candidates {
			fmt.Fprintf(w, "  %-24s %5.1f%%  (%d lines)\n", c.Token, c.DFPercent, c.DF)
		}
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
