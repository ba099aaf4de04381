package table

import (
	"reflect"
	"testing"
)

func TestNewMissingValues(t *testing.T) {
	tbl := New([]string{"id", "comment"}, [][]string{
		{"1", "slow dashboard"},
		{"2", ""},
		{"3"},
	})

	if tbl.Len() != 3 || tbl.Width() != 2 {
		t.Fatalf("got %dx%d table, want 3x2", tbl.Len(), tbl.Width())
	}
	col, ok := tbl.Column("comment")
	if !ok {
		t.Fatal("comment column not found")
	}
	if got := col.NonMissing(); !reflect.DeepEqual(got, []string{"slow dashboard"}) {
		t.Errorf("NonMissing = %q", got)
	}
	if got := col.Strings("?"); !reflect.DeepEqual(got, []string{"slow dashboard", "?", "?"}) {
		t.Errorf("Strings = %q", got)
	}
	if _, present := col.Value(1); present {
		t.Error("empty CSV field should be missing")
	}
}

func TestFromCellsKeepsEmptyStrings(t *testing.T) {
	tbl := FromCells([]string{"comment"}, [][]Cell{{Str("")}, {Null}})
	col := tbl.First()
	if v, ok := col.Value(0); !ok || v != "" {
		t.Errorf("Value(0) = %q, %v; want present empty string", v, ok)
	}
	if _, ok := col.Value(1); ok {
		t.Error("Value(1) should be missing")
	}
}

func TestFromCellsRaggedRows(t *testing.T) {
	tbl := FromCells([]string{"a", "b"}, [][]Cell{
		{Str("1"), Str("2"), Str("3")},
		{Str("4")},
	})
	b, _ := tbl.Column("b")
	if got := b.Strings(""); !reflect.DeepEqual(got, []string{"2", ""}) {
		t.Errorf("b = %q", got)
	}
}

func TestHeaderNames(t *testing.T) {
	tbl := New([]string{"\ufeffid", "", "note", "note", "  ", "note"}, nil)
	want := []string{"id", "Unnamed: 1", "note", "note.1", "Unnamed: 4", "note.2"}
	if got := tbl.Columns(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Columns = %q, want %q", got, want)
	}
	for _, name := range want {
		if _, ok := tbl.Column(name); !ok {
			t.Errorf("Column(%q) not found", name)
		}
	}
}

func TestHeaderNamesSuffixCollision(t *testing.T) {
	tbl := New([]string{"a", "a", "a.1"}, [][]string{{"x", "y", "z"}})
	want := []string{"a", "a.1", "a.1.1"}
	if got := tbl.Columns(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Columns = %q, want %q", got, want)
	}
	values := []string{"x", "y", "z"}
	for i, name := range want {
		col, ok := tbl.Column(name)
		if !ok {
			t.Fatalf("Column(%q) not found", name)
		}
		if got, _ := col.Value(0); got != values[i] {
			t.Errorf("Column(%q) row 0 = %q, want %q", name, got, values[i])
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   Kind
	}{
		{"integers", []string{"1", "2", "30"}, KindNumeric},
		{"floats with missing", []string{"1.5", "", "-2e3"}, KindNumeric},
		{"dates", []string{"2024-01-02", "2024-03-04T10:00:00Z"}, KindOther},
		{"booleans", []string{"true", "FALSE"}, KindOther},
		{"free text", []string{"slow dashboard", "great support"}, KindText},
		{"mixed numbers and words", []string{"1", "two"}, KindText},
		{"all missing", []string{"", ""}, KindText},
		{"identifiers", []string{"T-1001", "T-1002"}, KindText},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := make([][]string, len(tt.values))
			for i, v := range tt.values {
				rows[i] = []string{v}
			}
			if got := New([]string{"c"}, rows).First().Kind; got != tt.want {
				t.Errorf("kind = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNilTable(t *testing.T) {
	var tbl *Table
	if !tbl.Empty() || tbl.Len() != 0 || tbl.Width() != 0 || tbl.First() != nil {
		t.Error("nil table should behave as empty")
	}
	if _, ok := tbl.Column("x"); ok {
		t.Error("nil table should have no columns")
	}
}

func TestEmpty(t *testing.T) {
	if !New([]string{"a"}, nil).Empty() {
		t.Error("header-only table should be empty")
	}
	if New([]string{"a"}, [][]string{{"x"}}).Empty() {
		t.Error("table with a row should not be empty")
	}
}
