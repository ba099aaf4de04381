package table

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Format identifies a file layout the loader understands.
type Format string

const (
	FormatCSV    Format = "csv"
	FormatTSV    Format = "tsv"
	FormatExcel  Format = "excel"
	FormatJSON   Format = "json"
	FormatNDJSON Format = "ndjson"
	FormatHTML   Format = "html"
	FormatSQLite Format = "sqlite"
)

// FormatFor picks the format from the file extension. Unknown extensions
// are read as CSV.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tsv", ".txt":
		return FormatTSV
	case ".xlsx", ".xls", ".xlsm":
		return FormatExcel
	case ".json":
		return FormatJSON
	case ".jsonl", ".ndjson":
		return FormatNDJSON
	case ".html", ".htm":
		return FormatHTML
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite
	default:
		return FormatCSV
	}
}

// Loader reads feedback tables from files.
type Loader struct {
	logger *zap.Logger
}

// NewLoader creates a loader. A nil logger disables logging.
func NewLoader(logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{logger: logger.Named("table")}
}

// Load reads the file at path into a Table, dispatching on its extension.
// Malformed rows are skipped; an unreadable or unparseable file is an
// error.
func (l *Loader) Load(ctx context.Context, path string) (*Table, error) {
	format := FormatFor(path)
	l.logger.Debug("loading table", zap.String("path", path), zap.String("format", string(format)))

	if format == FormatSQLite {
		return l.loadSQLite(ctx, path)
	}
	if format == FormatExcel {
		return l.loadExcel(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	var t *Table
	switch format {
	case FormatTSV:
		t, err = l.ReadDelimited(f, '\t')
	case FormatJSON:
		t, err = l.ReadJSON(f)
	case FormatNDJSON:
		t, err = l.ReadNDJSON(f)
	case FormatHTML:
		t, err = ReadHTML(f)
	default:
		t, err = l.ReadDelimited(f, ',')
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}

	l.logger.Debug("table loaded",
		zap.String("path", path),
		zap.Int("rows", t.Len()),
		zap.Int("columns", t.Width()))
	return t, nil
}
