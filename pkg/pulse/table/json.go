package table

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/cognicore/pulse/pkg/pulse/internalerr"
)

// ReadJSON parses a JSON document holding either an array of records or an
// object of columns ({"col": [...]} or {"col": {"0": ...}}). If neither
// shape parses, the input is read again as newline-delimited records.
func (l *Loader) ReadJSON(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("json: %w", internalerr.ErrEmptyInput)
	}

	t, err := parseJSONDocument(data)
	if err == nil {
		return t, nil
	}
	l.logger.Debug("json document parse failed, trying newline-delimited records", zap.Error(err))
	return l.ReadNDJSON(bytes.NewReader(data))
}

// ReadNDJSON parses one JSON object per line. Malformed lines are skipped.
func (l *Loader) ReadNDJSON(r io.Reader) (*Table, error) {
	var (
		rec     records
		skipped int
		lineNo  int
	)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		lineNo++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		dec := json.NewDecoder(bytes.NewReader(line))
		keys, values, err := readObject(dec)
		if err != nil {
			l.logger.Warn("skipping malformed JSON line", zap.Int("line", lineNo), zap.Error(err))
			skipped++
			continue
		}
		rec.add(keys, values)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(rec.rows) == 0 {
		if skipped > 0 {
			return nil, fmt.Errorf("no valid JSON records (%d malformed lines): %w", skipped, internalerr.ErrUnsupportedFormat)
		}
		return nil, fmt.Errorf("json lines: %w", internalerr.ErrEmptyInput)
	}
	return rec.table(), nil
}

func parseJSONDocument(data []byte) (*Table, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	var t *Table
	switch tok {
	case json.Delim('['):
		t, err = readRecordArray(dec)
	case json.Delim('{'):
		t, err = readColumnObject(dec)
	default:
		return nil, fmt.Errorf("unexpected JSON token %v: %w", tok, internalerr.ErrUnsupportedFormat)
	}
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("trailing data after JSON document: %w", internalerr.ErrUnsupportedFormat)
	}
	return t, nil
}

func readRecordArray(dec *json.Decoder) (*Table, error) {
	var rec records
	for dec.More() {
		keys, values, err := readObject(dec)
		if err != nil {
			return nil, err
		}
		rec.add(keys, values)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return rec.table(), nil
}

// readColumnObject reads {"col": [v0, v1]} or {"col": {"idx": v}}. Row
// order follows the first column's index order.
func readColumnObject(dec *json.Decoder) (*Table, error) {
	var (
		header   []string
		columns  [][]Cell
		rowIndex = make(map[string]int)
	)
	for dec.More() {
		name, err := readKey(dec)
		if err != nil {
			return nil, err
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}
		cells, err := columnCells(raw, rowIndex)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", name, err)
		}
		header = append(header, name)
		columns = append(columns, cells)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	n := 0
	for _, col := range columns {
		if len(col) > n {
			n = len(col)
		}
	}
	rows := make([][]Cell, n)
	for i := range rows {
		rows[i] = make([]Cell, len(columns))
		for j, col := range columns {
			if i < len(col) {
				rows[i][j] = col[i]
			}
		}
	}
	return FromCells(header, rows), nil
}

func columnCells(raw json.RawMessage, rowIndex map[string]int) ([]Cell, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch tok {
	case json.Delim('['):
		var cells []Cell
		for dec.More() {
			var v json.RawMessage
			if err := dec.Decode(&v); err != nil {
				return nil, err
			}
			cells = append(cells, cellFromJSON(v))
		}
		return cells, nil
	case json.Delim('{'):
		keys, values, err := readObjectBody(dec)
		if err != nil {
			return nil, err
		}
		var cells []Cell
		for _, k := range keys {
			i, ok := rowIndex[k]
			if !ok {
				i = len(rowIndex)
				rowIndex[k] = i
			}
			for len(cells) <= i {
				cells = append(cells, Null)
			}
			cells[i] = cellFromJSON(values[k])
		}
		return cells, nil
	default:
		return nil, fmt.Errorf("column values must be an array or object: %w", internalerr.ErrUnsupportedFormat)
	}
}

// readObject reads one JSON object keeping its key order.
func readObject(dec *json.Decoder) ([]string, map[string]json.RawMessage, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, nil, err
	}
	if tok != json.Delim('{') {
		return nil, nil, fmt.Errorf("expected object, got %v: %w", tok, internalerr.ErrUnsupportedFormat)
	}
	return readObjectBody(dec)
}

func readObjectBody(dec *json.Decoder) ([]string, map[string]json.RawMessage, error) {
	var keys []string
	values := make(map[string]json.RawMessage)
	for dec.More() {
		key, err := readKey(dec)
		if err != nil {
			return nil, nil, err
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, nil, err
		}
		if _, dup := values[key]; !dup {
			keys = append(keys, key)
		}
		values[key] = raw
	}
	if _, err := dec.Token(); err != nil {
		return nil, nil, err
	}
	return keys, values, nil
}

func readKey(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", err
	}
	key, ok := tok.(string)
	if !ok {
		return "", errors.New("object key is not a string")
	}
	return key, nil
}

// cellFromJSON renders a JSON value as a cell: null is missing, strings are
// taken verbatim, numbers and booleans keep their literal text and nested
// values stay compact JSON.
func cellFromJSON(raw json.RawMessage) Cell {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return Null
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return Str(string(raw))
		}
		return Str(s)
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err == nil {
		return Str(buf.String())
	}
	return Str(string(raw))
}

// records accumulates JSON objects with possibly different key sets.
// Columns appear in first-seen order.
type records struct {
	header []string
	index  map[string]int
	rows   []map[string]json.RawMessage
}

func (r *records) add(keys []string, values map[string]json.RawMessage) {
	if r.index == nil {
		r.index = make(map[string]int)
	}
	for _, k := range keys {
		if _, ok := r.index[k]; !ok {
			r.index[k] = len(r.header)
			r.header = append(r.header, k)
		}
	}
	r.rows = append(r.rows, values)
}

func (r *records) table() *Table {
	rows := make([][]Cell, len(r.rows))
	for i, values := range r.rows {
		row := make([]Cell, len(r.header))
		for k, v := range values {
			row[r.index[k]] = cellFromJSON(v)
		}
		rows[i] = row
	}
	return FromCells(r.header, rows)
}
