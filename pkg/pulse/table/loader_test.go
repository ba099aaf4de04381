package table

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap/zaptest"

	"github.com/cognicore/pulse/pkg/pulse/internalerr"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func load(t *testing.T, path string) *Table {
	t.Helper()
	tbl, err := NewLoader(zaptest.NewLogger(t)).Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load(%s): %v", filepath.Base(path), err)
	}
	return tbl
}

func columnValues(t *testing.T, tbl *Table, name string) []string {
	t.Helper()
	col, ok := tbl.Column(name)
	if !ok {
		t.Fatalf("column %q not found in %q", name, tbl.Columns())
	}
	return col.Strings("<nil>")
}

func TestFormatFor(t *testing.T) {
	tests := map[string]Format{
		"feedback.csv":      FormatCSV,
		"feedback.CSV":      FormatCSV,
		"feedback.log":      FormatCSV,
		"feedback":          FormatCSV,
		"feedback.tsv":      FormatTSV,
		"feedback.txt":      FormatTSV,
		"feedback.xlsx":     FormatExcel,
		"feedback.xls":      FormatExcel,
		"feedback.json":     FormatJSON,
		"feedback.jsonl":    FormatNDJSON,
		"feedback.ndjson":   FormatNDJSON,
		"feedback.html":     FormatHTML,
		"feedback.htm":      FormatHTML,
		"feedback.db":       FormatSQLite,
		"feedback.sqlite3":  FormatSQLite,
		"dir.v2/survey.tsv": FormatTSV,
	}
	for path, want := range tests {
		if got := FormatFor(path); got != want {
			t.Errorf("FormatFor(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestLoadCSVSkipsMalformedRows(t *testing.T) {
	path := writeFile(t, "feedback.csv", "\ufeffid,comment,score\n"+
		"1,\"Dashboard is slow, very slow\",4\n"+
		"2,Export crashed,,extra\n"+
		"3,Short row\n")
	tbl := load(t, path)

	if got := tbl.Columns(); !reflect.DeepEqual(got, []string{"id", "comment", "score"}) {
		t.Fatalf("Columns = %q", got)
	}
	if tbl.Len() != 2 {
		t.Fatalf("Len = %d, want 2 (row with surplus fields skipped)", tbl.Len())
	}
	if got := columnValues(t, tbl, "comment"); !reflect.DeepEqual(got, []string{"Dashboard is slow, very slow", "Short row"}) {
		t.Errorf("comment = %q", got)
	}
	if got := columnValues(t, tbl, "score"); !reflect.DeepEqual(got, []string{"4", "<nil>"}) {
		t.Errorf("score = %q", got)
	}
	id, _ := tbl.Column("id")
	if id.Kind != KindNumeric {
		t.Errorf("id kind = %v, want numeric", id.Kind)
	}
}

func TestLoadTSV(t *testing.T) {
	path := writeFile(t, "survey.txt", "id\tcomment\n1\tLogin failed\n2\tLove it\n")
	tbl := load(t, path)
	if got := columnValues(t, tbl, "comment"); !reflect.DeepEqual(got, []string{"Login failed", "Love it"}) {
		t.Errorf("comment = %q", got)
	}
}

func TestLoadEmptyCSV(t *testing.T) {
	path := writeFile(t, "empty.csv", "")
	_, err := NewLoader(nil).Load(context.Background(), path)
	if !errors.Is(err, internalerr.ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	for _, name := range []string{"missing.csv", "missing.db"} {
		_, err := NewLoader(nil).Load(context.Background(), filepath.Join(t.TempDir(), name))
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("%s: expected os.ErrNotExist, got %v", name, err)
		}
	}
}

func TestLoadJSONRecords(t *testing.T) {
	path := writeFile(t, "feedback.json", `[
		{"id": 1, "comment": "Dashboard slow", "extra": null},
		{"id": 2, "comment": "", "flag": true}
	]`)
	tbl := load(t, path)

	if got := tbl.Columns(); !reflect.DeepEqual(got, []string{"id", "comment", "extra", "flag"}) {
		t.Fatalf("Columns = %q", got)
	}
	if got := columnValues(t, tbl, "comment"); !reflect.DeepEqual(got, []string{"Dashboard slow", ""}) {
		t.Errorf("comment = %q (empty JSON string is present)", got)
	}
	if got := columnValues(t, tbl, "extra"); !reflect.DeepEqual(got, []string{"<nil>", "<nil>"}) {
		t.Errorf("extra = %q", got)
	}
	if got := columnValues(t, tbl, "flag"); !reflect.DeepEqual(got, []string{"<nil>", "true"}) {
		t.Errorf("flag = %q", got)
	}
}

func TestLoadJSONColumns(t *testing.T) {
	tests := map[string]string{
		"arrays":  `{"id": [1, 2], "comment": ["slow", "Café \"crash\""]}`,
		"indexed": `{"id": {"0": 1, "1": 2}, "comment": {"0": "slow", "1": "Café \"crash\""}}`,
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			tbl := load(t, writeFile(t, "cols.json", doc))
			if got := columnValues(t, tbl, "id"); !reflect.DeepEqual(got, []string{"1", "2"}) {
				t.Errorf("id = %q", got)
			}
			if got := columnValues(t, tbl, "comment"); !reflect.DeepEqual(got, []string{"slow", `Café "crash"`}) {
				t.Errorf("comment = %q", got)
			}
		})
	}
}

func TestLoadJSONFallsBackToLines(t *testing.T) {
	path := writeFile(t, "lines.json", "{\"comment\": \"slow\"}\n{\"comment\": \"crash\"}\n")
	tbl := load(t, path)
	if got := columnValues(t, tbl, "comment"); !reflect.DeepEqual(got, []string{"slow", "crash"}) {
		t.Errorf("comment = %q", got)
	}
}

func TestLoadNDJSONSkipsMalformedLines(t *testing.T) {
	path := writeFile(t, "feedback.jsonl", "{\"comment\": \"slow\"}\nnot json\n\n{\"comment\": \"crash\", \"id\": 7}\n")
	tbl := load(t, path)
	if tbl.Len() != 2 {
		t.Fatalf("Len = %d, want 2", tbl.Len())
	}
	if got := columnValues(t, tbl, "id"); !reflect.DeepEqual(got, []string{"<nil>", "7"}) {
		t.Errorf("id = %q", got)
	}
}

func TestLoadJSONErrors(t *testing.T) {
	_, err := NewLoader(nil).Load(context.Background(), writeFile(t, "empty.json", "  \n"))
	if !errors.Is(err, internalerr.ErrEmptyInput) {
		t.Errorf("empty document: expected ErrEmptyInput, got %v", err)
	}
	_, err = NewLoader(nil).Load(context.Background(), writeFile(t, "bad.json", "not json\nat all\n"))
	if !errors.Is(err, internalerr.ErrUnsupportedFormat) {
		t.Errorf("garbage: expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestLoadHTML(t *testing.T) {
	path := writeFile(t, "export.html", `<html><body>
		<p>Survey export</p>
		<table>
		  <thead><tr><th>id</th><th>comment</th></tr></thead>
		  <tbody>
		    <tr><td>1</td><td>Dashboard <b>slow</b></td></tr>
		    <tr><td>2</td><td>Export crash<table><tr><td>inner</td></tr></table></td></tr>
		    <tr><td>3</td></tr>
		  </tbody>
		</table>
		<table><tr><th>other</th></tr></table>
	</body></html>`)
	tbl := load(t, path)

	if got := tbl.Columns(); !reflect.DeepEqual(got, []string{"id", "comment"}) {
		t.Fatalf("Columns = %q", got)
	}
	if got := columnValues(t, tbl, "comment"); !reflect.DeepEqual(got, []string{"Dashboard slow", "Export crash", "<nil>"}) {
		t.Errorf("comment = %q", got)
	}
}

func TestLoadHTMLWithoutTable(t *testing.T) {
	_, err := NewLoader(nil).Load(context.Background(), writeFile(t, "page.html", "<p>nothing here</p>"))
	if !errors.Is(err, internalerr.ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
}

func TestLoadSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feedback.db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	stmts := []string{
		`CREATE TABLE "survey ""2024""" (id INTEGER, comment TEXT, rating REAL)`,
		`INSERT INTO "survey ""2024""" VALUES (1, 'Login failed again', 2.5)`,
		`INSERT INTO "survey ""2024""" VALUES (2, NULL, 4)`,
		`CREATE TABLE later (x TEXT)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("exec %q: %v", stmt, err)
		}
	}
	if err := db.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	tbl := load(t, path)
	if got := tbl.Columns(); !reflect.DeepEqual(got, []string{"id", "comment", "rating"}) {
		t.Fatalf("Columns = %q", got)
	}
	if got := columnValues(t, tbl, "comment"); !reflect.DeepEqual(got, []string{"Login failed again", "<nil>"}) {
		t.Errorf("comment = %q", got)
	}
	if got := columnValues(t, tbl, "id"); !reflect.DeepEqual(got, []string{"1", "2"}) {
		t.Errorf("id = %q", got)
	}
}

func TestLoadSQLiteWithoutTables(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.sqlite")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := db.Exec("PRAGMA user_version = 1"); err != nil {
		t.Fatalf("init: %v", err)
	}
	db.Close()

	_, err = NewLoader(nil).Load(context.Background(), path)
	if !errors.Is(err, internalerr.ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
}

func TestReadOnlyDSNRejectsWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feed back.db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	for _, stmt := range []string{`CREATE TABLE notes (body TEXT)`, `INSERT INTO notes VALUES ('Export is slow')`} {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("exec %q: %v", stmt, err)
		}
	}
	db.Close()
	before, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	dsn, err := readOnlyDSN(path)
	if err != nil {
		t.Fatalf("readOnlyDSN: %v", err)
	}
	ro, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("open %s: %v", dsn, err)
	}
	defer ro.Close()
	var n int
	if err := ro.QueryRow(`SELECT count(*) FROM notes`).Scan(&n); err != nil {
		t.Fatalf("read through %s: %v", dsn, err)
	}
	if _, err := ro.Exec(`INSERT INTO notes VALUES ('x')`); err == nil {
		t.Fatal("expected write through read-only connection to fail")
	}

	if _, err := NewLoader(nil).Load(context.Background(), path); err != nil {
		t.Fatalf("Load: %v", err)
	}
	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(before, after) {
		t.Error("Load modified the database file")
	}
}

func TestLoadExcel(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]any{
		{"id", "comment", "note"},
		{1, "Docs are unclear", "x"},
		{2, "Great support"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatal(err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("SetSheetRow: %v", err)
		}
	}
	path := filepath.Join(t.TempDir(), "feedback.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs: %v", err)
	}
	f.Close()

	tbl := load(t, path)
	if got := tbl.Columns(); !reflect.DeepEqual(got, []string{"id", "comment", "note"}) {
		t.Fatalf("Columns = %q", got)
	}
	if got := columnValues(t, tbl, "comment"); !reflect.DeepEqual(got, []string{"Docs are unclear", "Great support"}) {
		t.Errorf("comment = %q", got)
	}
	if got := columnValues(t, tbl, "note"); !reflect.DeepEqual(got, []string{"x", "<nil>"}) {
		t.Errorf("note = %q", got)
	}
}

func TestLoadLegacyExcel(t *testing.T) {
	// BIFF8 workbook with one sheet; row 3 is absent from the file.
	tbl := load(t, filepath.Join("testdata", "feedback.xls"))
	if got := tbl.Columns(); !reflect.DeepEqual(got, []string{"id", "comment", "rating"}) {
		t.Fatalf("Columns = %q", got)
	}
	want := map[string][]string{
		"id":      {"1", "2", "<nil>", "3"},
		"comment": {"Login fails on mobile", "Great support, fast replies", "<nil>", "Café export is slow"},
		"rating":  {"4", "<nil>", "<nil>", "2"},
	}
	for name, values := range want {
		if got := columnValues(t, tbl, name); !reflect.DeepEqual(got, values) {
			t.Errorf("%s = %q, want %q", name, got, values)
		}
	}
	if col, _ := tbl.Column("rating"); col.Kind != KindNumeric {
		t.Errorf("rating kind = %v, want numeric", col.Kind)
	}
}

func TestLoadLegacyExcelRejectsGarbage(t *testing.T) {
	path := writeFile(t, "old.xls", "not a compound document, just text that is long enough to fill a header block")
	if _, err := NewLoader(nil).Load(context.Background(), path); err == nil {
		t.Fatal("expected error for malformed workbook")
	}
}
