package lexicon

import (
	"errors"
	"testing"

	"github.com/cognicore/pulse/pkg/pulse/internalerr"
)

func TestNewEmpty(t *testing.T) {
	lex, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if stats := lex.Stats(); stats.SynonymGroups != 0 {
		t.Errorf("empty lexicon should have 0 groups, got %d", stats.SynonymGroups)
	}
	if got := lex.Normalize("anything"); got != "anything" {
		t.Errorf("Normalize on empty lexicon = %q, want passthrough", got)
	}
}

func TestNormalize(t *testing.T) {
	lex := MustNew(Group{Canonical: "crash", Variants: []string{"crashed", "error", "failed"}})

	tests := []struct {
		in, want string
	}{
		{"crash", "crash"},
		{"crashed", "crash"},
		{"error", "crash"},
		{"failed", "crash"},
		{"dashboard", "dashboard"},
	}
	for _, tt := range tests {
		if got := lex.Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestVariantsCanonicalFirst(t *testing.T) {
	lex := MustNew(Group{Canonical: "Slow", Variants: []string{"LAG", "delay", "lag"}})

	variants := lex.Variants("delay")
	want := []string{"slow", "lag", "delay"}
	if len(variants) != len(want) {
		t.Fatalf("Variants = %v, want %v", variants, want)
	}
	for i := range want {
		if variants[i] != want[i] {
			t.Fatalf("Variants = %v, want %v", variants, want)
		}
	}
	if got := lex.Variants("unknown"); len(got) != 1 || got[0] != "unknown" {
		t.Errorf("Variants(unknown) = %v", got)
	}
}

func TestConflictingSurfaceForm(t *testing.T) {
	_, err := New(
		Group{Canonical: "crash", Variants: []string{"error"}},
		Group{Canonical: "bug", Variants: []string{"error"}},
	)
	if !errors.Is(err, internalerr.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCanonicalClaimedAsVariant(t *testing.T) {
	_, err := New(
		Group{Canonical: "crash", Variants: []string{"bug"}},
		Group{Canonical: "bug"},
	)
	if !errors.Is(err, internalerr.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRejectsNonTokenVariants(t *testing.T) {
	for _, v := range []string{"sign in", "log-in", "café"} {
		if _, err := New(Group{Canonical: "login", Variants: []string{v}}); !errors.Is(err, internalerr.ErrInvalidInput) {
			t.Errorf("variant %q: expected ErrInvalidInput, got %v", v, err)
		}
	}
	if _, err := New(Group{Canonical: ""}); !errors.Is(err, internalerr.ErrInvalidInput) {
		t.Errorf("empty canonical: expected ErrInvalidInput, got %v", err)
	}
}

func TestReplaceGroup(t *testing.T) {
	lex := MustNew(
		Group{Canonical: "slow", Variants: []string{"lag"}},
		Group{Canonical: "slow", Variants: []string{"sluggish"}},
	)
	if got := lex.Normalize("lag"); got != "lag" {
		t.Errorf("replaced variant should no longer map, got %q", got)
	}
	if got := lex.Normalize("sluggish"); got != "slow" {
		t.Errorf("Normalize(sluggish) = %q, want slow", got)
	}
	if got := lex.Stats().SynonymGroups; got != 1 {
		t.Errorf("expected 1 group, got %d", got)
	}
}

func TestExtendIsCopy(t *testing.T) {
	base := MustNew(Group{Canonical: "slow", Variants: []string{"lag"}})
	ext, err := base.Extend(Group{Canonical: "outage", Variants: []string{"downtime"}})
	if err != nil {
		t.Fatalf("Extend: %v", err)
	}
	if got := ext.Normalize("downtime"); got != "outage" {
		t.Errorf("extended Normalize(downtime) = %q", got)
	}
	if got := ext.Normalize("lag"); got != "slow" {
		t.Errorf("extended lexicon lost base group: %q", got)
	}
	if base.HasSynonyms("downtime") {
		t.Error("Extend must not mutate the receiver")
	}
}

func TestGroupsRoundTrip(t *testing.T) {
	groups := Default().Groups()
	rebuilt, err := New(groups...)
	if err != nil {
		t.Fatalf("rebuild default lexicon: %v", err)
	}
	if rebuilt.Stats() != Default().Stats() {
		t.Errorf("stats differ: %+v vs %+v", rebuilt.Stats(), Default().Stats())
	}
}

func TestDefaultCollapsesFailures(t *testing.T) {
	lex := Default()
	for _, w := range []string{"crashed", "error", "failed", "failure", "broken"} {
		if got := lex.Normalize(w); got != "crash" {
			t.Errorf("Normalize(%q) = %q, want crash", w, got)
		}
	}
	for _, w := range []string{"lag", "delay", "sluggish"} {
		if got := lex.Normalize(w); got != "slow" {
			t.Errorf("Normalize(%q) = %q, want slow", w, got)
		}
	}
	if got := lex.Normalize("unclear"); got != "confusing" {
		t.Errorf("Normalize(unclear) = %q, want confusing", got)
	}
}
