package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/cognicore/pulse/pkg/pulse/report"
)

// emit prints the report and, when --csv is set, exports its themes.
func emit(w io.Writer, r report.Report, themes []string) error {
	format, err := parseFormat(formatFlag)
	if err != nil {
		return err
	}
	out, err := FormatReport(r, format)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, out)

	if csvPath == "" || len(themes) == 0 {
		return nil
	}
	f, err := os.Create(csvPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", csvPath, err)
	}
	defer f.Close()
	if err := report.WriteThemesCSV(f, themes); err != nil {
		return fmt.Errorf("write %s: %w", csvPath, err)
	}
	app.logger.Info("themes exported", zap.String("path", csvPath), zap.Int("themes", len(themes)))
	return nil
}
