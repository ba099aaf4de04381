package stoplist

import (
	"sort"
	"strings"
)

// Manager holds the terms excluded from analysis. Stopwords are function
// words; generic terms are content words too vague to stand as a theme
// ("feature", "app"). Both are dropped during tokenization, and the phrase
// ranker checks the generic set again when it assembles bigrams.
//
// A Manager is immutable once built, so one instance is shared by every
// analysis.
type Manager struct {
	stops   map[string]struct{}
	generic map[string]struct{}
}

// NewManager creates a manager from the given stopwords and generic terms.
// Terms are lowercased and trimmed; empty entries are ignored.
func NewManager(stopwords, generic []string) *Manager {
	return &Manager{
		stops:   toSet(stopwords),
		generic: toSet(generic),
	}
}

// Default returns the built-in English feedback stoplist.
func Default() *Manager {
	return NewManager(DefaultStopwords(), DefaultGeneric())
}

// Extend returns a new manager containing the receiver's terms plus the
// given ones. The receiver is left untouched.
func (m *Manager) Extend(stopwords, generic []string) *Manager {
	return NewManager(append(m.Stopwords(), stopwords...), append(m.Generic(), generic...))
}

// IsStop checks if a token is a stopword
func (m *Manager) IsStop(token string) bool {
	_, ok := m.stops[token]
	return ok
}

// IsGeneric checks if a token is a generic term
func (m *Manager) IsGeneric(token string) bool {
	_, ok := m.generic[token]
	return ok
}

// Excluded reports whether the tokenizer should drop the token.
func (m *Manager) Excluded(token string) bool {
	return m.IsStop(token) || m.IsGeneric(token)
}

// Stopwords returns all stopwords, sorted.
func (m *Manager) Stopwords() []string {
	return sortedKeys(m.stops)
}

// Generic returns all generic terms, sorted.
func (m *Manager) Generic() []string {
	return sortedKeys(m.generic)
}

func toSet(terms []string) map[string]struct{} {
	set := make(map[string]struct{}, len(terms))
	for _, t := range terms {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		set[t] = struct{}{}
	}
	return set
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
