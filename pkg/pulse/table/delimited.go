package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/cognicore/pulse/pkg/pulse/internalerr"
)

// ReadDelimited parses comma- or tab-separated text. The first record is the
// header. Records that fail to parse or carry more fields than the header
// are skipped; short records are padded with missing values.
func (l *Loader) ReadDelimited(r io.Reader, comma rune) (*Table, error) {
	reader := csv.NewReader(r)
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var (
		header  []string
		rows    [][]string
		skipped int
	)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				skipped++
				continue
			}
			return nil, err
		}
		if header == nil {
			header = record
			continue
		}
		if len(record) > len(header) {
			skipped++
			continue
		}
		rows = append(rows, record)
	}

	if header == nil {
		return nil, fmt.Errorf("no header row: %w", internalerr.ErrEmptyInput)
	}
	if skipped > 0 {
		l.logger.Warn("skipped malformed rows", zap.Int("skipped", skipped), zap.Int("kept", len(rows)))
	}
	return New(header, rows), nil
}
