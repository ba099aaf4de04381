package main

import (
	"github.com/spf13/cobra"

	"github.com/cognicore/pulse/pkg/pulse"
)

var (
	fileColumns   []string
	fileAggregate bool
)

var fileCmd = &cobra.Command{
	Use:   "file PATH",
	Short: "Analyze feedback stored in a table file",
	Long: `Analyze the free-text columns of a CSV, TSV, Excel, JSON, HTML or SQLite file.

Text columns are detected automatically unless --columns is given.

Examples:
  pulse file survey.csv
  pulse file tickets.xlsx --columns summary,comments
  pulse file export.json --aggregate=false`,
	Args: cobra.ExactArgs(1),
	RunE: runFile,
}

func init() {
	fileCmd.Flags().StringSliceVarP(&fileColumns, "columns", "c", nil, "Columns to analyze (default: auto-detect)")
	fileCmd.Flags().BoolVar(&fileAggregate, "aggregate", true, "Analyze all chosen columns together; false uses only the first")
	rootCmd.AddCommand(fileCmd)
}

func runFile(cmd *cobra.Command, args []string) error {
	opts := pulse.DefaultTableOptions()
	opts.Columns = fileColumns
	opts.Aggregate = fileAggregate

	res, err := app.engine.AnalyzeFile(cmd.Context(), args[0], opts)
	if err != nil {
		return err
	}
	return emit(cmd.OutOrStdout(), app.reports.Build(args[0], "table", res), res.Themes)
}
