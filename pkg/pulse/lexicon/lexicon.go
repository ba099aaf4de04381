package lexicon

import (
	"fmt"
	"strings"

	"github.com/cognicore/pulse/pkg/pulse/internalerr"
)

// Lexicon collapses surface forms of the same complaint or praise onto one
// canonical key, so "crashed", "error" and "failed" all count as "crash".
//
// Each surface form belongs to exactly one group. The reverse index is
// built once and the lexicon is never mutated afterwards.
type Lexicon struct {
	// canonical -> all variants (canonical first)
	// Example: "crash" -> ["crash", "crashed", "error", "failed"]
	synonyms map[string][]string

	// variant -> canonical
	// Example: "error" -> "crash"
	reverseIndex map[string]string

	// canonical keys in insertion order
	order []string
}

// Group is one synonym group as written in vocabulary files.
type Group struct {
	Canonical string   `yaml:"canonical"`
	Variants  []string `yaml:"variants"`
}

// New builds a lexicon from synonym groups. A group whose canonical key was
// already seen replaces the earlier group. A surface form claimed by two
// different canonical keys is an error.
func New(groups ...Group) (*Lexicon, error) {
	l := &Lexicon{
		synonyms:     make(map[string][]string),
		reverseIndex: make(map[string]string),
	}
	for _, g := range groups {
		if err := l.add(g); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// MustNew is like New but panics on conflicting groups. It is intended for
// package-level defaults.
func MustNew(groups ...Group) *Lexicon {
	l, err := New(groups...)
	if err != nil {
		panic(err)
	}
	return l
}

// Extend returns a new lexicon with the receiver's groups followed by the
// given ones. Groups with an existing canonical key replace the old group.
func (l *Lexicon) Extend(groups ...Group) (*Lexicon, error) {
	return New(append(l.Groups(), groups...)...)
}

func (l *Lexicon) add(g Group) error {
	canonical := strings.ToLower(strings.TrimSpace(g.Canonical))
	if !isToken(canonical) {
		return fmt.Errorf("synonym group %q: canonical must be a single [a-z0-9] token: %w", g.Canonical, internalerr.ErrInvalidInput)
	}

	// Clean up old reverse index entries if this canonical already exists
	if old, exists := l.synonyms[canonical]; exists {
		for _, v := range old {
			delete(l.reverseIndex, v)
		}
	} else {
		l.order = append(l.order, canonical)
	}

	// Ensure canonical is first in the list and deduplicate
	variants := []string{canonical}
	seen := map[string]bool{canonical: true}
	for _, v := range g.Variants {
		v = strings.ToLower(strings.TrimSpace(v))
		if seen[v] {
			continue
		}
		if !isToken(v) {
			return fmt.Errorf("synonym group %q: variant %q must be a single [a-z0-9] token: %w", canonical, v, internalerr.ErrInvalidInput)
		}
		seen[v] = true
		variants = append(variants, v)
	}

	for _, v := range variants {
		if owner, ok := l.reverseIndex[v]; ok && owner != canonical {
			return fmt.Errorf("synonym %q claimed by both %q and %q: %w", v, owner, canonical, internalerr.ErrInvalidInput)
		}
	}

	l.synonyms[canonical] = variants
	for _, v := range variants {
		l.reverseIndex[v] = canonical
	}
	return nil
}

// Normalize returns the canonical form of a token.
// If the token is not in the lexicon, returns the token itself.
//
// Examples:
//   - Normalize("failed") -> "crash"
//   - Normalize("dashboard") -> "dashboard"
func (l *Lexicon) Normalize(token string) string {
	if canonical, ok := l.reverseIndex[token]; ok {
		return canonical
	}
	return token
}

// Variants returns all known variants of a token (including the canonical form).
// If the token is not in the lexicon, returns a slice containing only the token itself.
func (l *Lexicon) Variants(token string) []string {
	token = strings.ToLower(token)
	if canonical, ok := l.reverseIndex[token]; ok {
		return append([]string(nil), l.synonyms[canonical]...)
	}
	return []string{token}
}

// HasSynonyms returns true if the token belongs to a synonym group.
func (l *Lexicon) HasSynonyms(token string) bool {
	_, exists := l.reverseIndex[strings.ToLower(token)]
	return exists
}

// Groups returns the synonym groups in insertion order.
func (l *Lexicon) Groups() []Group {
	out := make([]Group, 0, len(l.order))
	for _, c := range l.order {
		variants := l.synonyms[c]
		out = append(out, Group{
			Canonical: c,
			Variants:  append([]string(nil), variants[1:]...),
		})
	}
	return out
}

// Stats returns statistics about the lexicon contents.
func (l *Lexicon) Stats() Stats {
	total := 0
	for _, variants := range l.synonyms {
		total += len(variants)
	}
	return Stats{SynonymGroups: len(l.synonyms), TotalVariants: total}
}

// Stats holds statistics about lexicon contents.
type Stats struct {
	SynonymGroups int // Number of canonical forms
	TotalVariants int // Total number of surface forms across all groups
}

func isToken(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}
