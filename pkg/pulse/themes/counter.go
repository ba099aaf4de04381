package themes

import "sort"

// Entry is one row of a frequency table.
type Entry struct {
	Term  string
	Count int
}

// counter is a frequency table that remembers the order in which terms
// were first seen. Ranking sorts stably on count, so equal counts keep
// encounter order and results are deterministic.
type counter struct {
	index map[string]int
	rows  []Entry
}

func newCounter() *counter {
	return &counter{index: make(map[string]int)}
}

func (c *counter) add(term string) {
	if i, ok := c.index[term]; ok {
		c.rows[i].Count++
		return
	}
	c.index[term] = len(c.rows)
	c.rows = append(c.rows, Entry{Term: term, Count: 1})
}

func (c *counter) len() int {
	return len(c.rows)
}

// ranked returns a copy of the table sorted by descending count.
func (c *counter) ranked() []Entry {
	out := make([]Entry, len(c.rows))
	copy(out, c.rows)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}
