package table

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/cognicore/pulse/pkg/pulse/internalerr"
)

// loadSQLite reads every row of the first user table in a SQLite file.
// The file is only queried, never written.
func (l *Loader) loadSQLite(ctx context.Context, path string) (*Table, error) {
	// sql.Open would create a missing database file
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}

	dsn, err := readOnlyDSN(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	defer db.Close()

	var name string
	err = db.QueryRowContext(ctx,
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY rowid LIMIT 1`,
	).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s has no tables: %w", filepath.Base(path), internalerr.ErrEmptyInput)
	}
	if err != nil {
		return nil, fmt.Errorf("list tables in %s: %w", filepath.Base(path), err)
	}

	rows, err := db.QueryContext(ctx, "SELECT * FROM "+quoteIdent(name))
	if err != nil {
		return nil, fmt.Errorf("query table %q: %w", name, err)
	}
	defer rows.Close()

	header, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var grid [][]Cell
	for rows.Next() {
		values := make([]any, len(header))
		ptrs := make([]any, len(header))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan table %q: %w", name, err)
		}
		row := make([]Cell, len(header))
		for i, v := range values {
			row[i] = cellFromSQL(v)
		}
		grid = append(grid, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read table %q: %w", name, err)
	}

	l.logger.Debug("read sqlite table", zap.String("table", name), zap.Int("rows", len(grid)))
	return FromCells(header, grid), nil
}

// readOnlyDSN turns a file path into a SQLite URI opened with mode=ro, so
// the connection can neither create nor modify the database.
func readOnlyDSN(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	abs = filepath.ToSlash(abs)
	if !strings.HasPrefix(abs, "/") {
		abs = "/" + abs
	}
	u := url.URL{Scheme: "file", Path: abs, RawQuery: "mode=ro"}
	return u.String(), nil
}

func cellFromSQL(v any) Cell {
	switch x := v.(type) {
	case nil:
		return Null
	case string:
		return Str(x)
	case []byte:
		return Str(string(x))
	case int64:
		return Str(strconv.FormatInt(x, 10))
	case float64:
		return Str(strconv.FormatFloat(x, 'f', -1, 64))
	case bool:
		return Str(strconv.FormatBool(x))
	case time.Time:
		return Str(x.Format(time.RFC3339))
	default:
		return Str(fmt.Sprint(x))
	}
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
