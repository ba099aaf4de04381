package ingest

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/cognicore/pulse/pkg/pulse/lexicon"
	"github.com/cognicore/pulse/pkg/pulse/stoplist"
)

// MinTokenLen is the shortest token kept. Anything of length two or less
// ("ui", "ok", "s") carries too little signal.
const MinTokenLen = 3

// Tokenizer handles text tokenization and normalization.
// It holds only read-only state and is safe for concurrent use.
type Tokenizer struct {
	stoplist       *stoplist.Manager
	lexicon        *lexicon.Lexicon
	foldDiacritics bool
}

// Options configures a Tokenizer. Nil fields fall back to the built-in
// defaults.
type Options struct {
	Stoplist *stoplist.Manager
	Lexicon  *lexicon.Lexicon
	// FoldDiacritics strips combining marks before the ASCII filter so that
	// "café" survives as "cafe" instead of "caf".
	FoldDiacritics bool
}

// NewTokenizer creates a tokenizer from the given options.
func NewTokenizer(opts Options) *Tokenizer {
	t := &Tokenizer{
		stoplist:       opts.Stoplist,
		lexicon:        opts.Lexicon,
		foldDiacritics: opts.FoldDiacritics,
	}
	if t.stoplist == nil {
		t.stoplist = stoplist.Default()
	}
	if t.lexicon == nil {
		t.lexicon = lexicon.Default()
	}
	return t
}

// Stoplist returns the stoplist the tokenizer filters with.
func (t *Tokenizer) Stoplist() *stoplist.Manager {
	return t.stoplist
}

// Lexicon returns the synonym lexicon the tokenizer canonicalizes with.
func (t *Tokenizer) Lexicon() *lexicon.Lexicon {
	return t.lexicon
}

// Tokenize lowercases text, blanks every character outside [a-z0-9] and
// whitespace, splits on whitespace, filters stopwords, generic terms, short
// and purely numeric tokens, and maps what remains to canonical keys.
func (t *Tokenizer) Tokenize(text string) []string {
	if t.foldDiacritics {
		text = fold(text)
	}
	text = strings.ToLower(text)

	var tokens []string
	for _, word := range strings.FieldsFunc(text, isSeparator) {
		if tok := t.processToken(word); tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// processToken applies stopword, length and numeric filtering, then
// lexicon normalization.
func (t *Tokenizer) processToken(word string) string {
	if t.stoplist.Excluded(word) {
		return ""
	}
	if len(word) < MinTokenLen {
		return ""
	}
	if isNumericOnly(word) {
		return ""
	}
	return t.lexicon.Normalize(word)
}

// isSeparator treats every rune outside [a-z0-9] as a split point. This is
// equivalent to replacing those runes with a space and splitting on
// whitespace.
func isSeparator(r rune) bool {
	return (r < 'a' || r > 'z') && (r < '0' || r > '9')
}

// isNumericOnly returns true if the token contains only digits.
func isNumericOnly(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func fold(s string) string {
	tr := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(tr, s)
	if err != nil {
		return s
	}
	return out
}
