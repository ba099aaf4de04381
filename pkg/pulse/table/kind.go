package table

import (
	"strconv"
	"strings"
	"time"
)

// Kind classifies a column's values.
type Kind int

const (
	// KindText is free-form string data and the only kind scanned for
	// feedback.
	KindText Kind = iota
	// KindNumeric columns hold numbers only.
	KindNumeric
	// KindOther covers structured non-numeric values: dates and booleans.
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindNumeric:
		return "numeric"
	case KindOther:
		return "other"
	default:
		return "unknown"
	}
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"01/02/2006",
	"02.01.2006",
}

// classify assigns a kind once, at build time. A column is numeric or other
// only when every present value agrees; mixed and all-missing columns are
// text.
func classify(cells []Cell) Kind {
	numeric, structured, present := true, true, 0
	for _, c := range cells {
		if !c.Valid {
			continue
		}
		present++
		v := strings.TrimSpace(c.Value)
		if numeric && !isNumber(v) {
			numeric = false
		}
		if structured && !isBool(v) && !isDate(v) {
			structured = false
		}
		if !numeric && !structured {
			return KindText
		}
	}
	switch {
	case present == 0:
		return KindText
	case numeric:
		return KindNumeric
	case structured:
		return KindOther
	default:
		return KindText
	}
}

func isNumber(v string) bool {
	_, err := strconv.ParseFloat(v, 64)
	return err == nil
}

func isBool(v string) bool {
	switch strings.ToLower(v) {
	case "true", "false":
		return true
	}
	return false
}

func isDate(v string) bool {
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, v); err == nil {
			return true
		}
	}
	return false
}
