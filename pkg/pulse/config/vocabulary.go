package config

import (
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/pulse/pkg/pulse/lexicon"
	"github.com/cognicore/pulse/pkg/pulse/sentiment"
	"github.com/cognicore/pulse/pkg/pulse/stoplist"
)

// Vocabulary represents the vocabulary configuration file.
//
// Expected format:
//
//	replace: false
//	stopwords: [hey, hello]
//	generic: [platform]
//	positive: [delightful]
//	negative: [outage]
//	synonyms:
//	  - canonical: outage
//	    variants: [downtime, offline]
//
// Lists extend the built-in defaults unless replace is true.
type Vocabulary struct {
	Replace   bool            `yaml:"replace,omitempty"`
	Stopwords []string        `yaml:"stopwords,omitempty"`
	Generic   []string        `yaml:"generic,omitempty"`
	Positive  []string        `yaml:"positive,omitempty"`
	Negative  []string        `yaml:"negative,omitempty"`
	Synonyms  []lexicon.Group `yaml:"synonyms,omitempty"`
}

// LoadVocabulary loads a vocabulary from a YAML file
func LoadVocabulary(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var v Vocabulary
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, err
	}

	return &v, nil
}

// Effective captures the vocabulary the given components run with as a
// self-contained replace file. Loading the result reproduces them exactly.
func Effective(stops *stoplist.Manager, lex *lexicon.Lexicon, polarity *sentiment.Polarity) *Vocabulary {
	return &Vocabulary{
		Replace:   true,
		Stopwords: stops.Stopwords(),
		Generic:   stops.Generic(),
		Positive:  polarity.Positive(),
		Negative:  polarity.Negative(),
		Synonyms:  lex.Groups(),
	}
}

// Write renders the vocabulary as YAML.
func (v *Vocabulary) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
