package config

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cognicore/pulse/pkg/pulse/columns"
	"github.com/cognicore/pulse/pkg/pulse/ingest"
	"github.com/cognicore/pulse/pkg/pulse/lexicon"
	"github.com/cognicore/pulse/pkg/pulse/sentiment"
	"github.com/cognicore/pulse/pkg/pulse/stoplist"
	"github.com/cognicore/pulse/pkg/pulse/table"
)

// Loader builds the analysis components described by a Config.
type Loader struct {
	Config *Config
	Logger *zap.Logger
}

// Components holds all loaded configuration components
type Components struct {
	Tokenizer  *ingest.Tokenizer
	Polarity   *sentiment.Polarity
	Detector   *columns.Detector
	Tables     *table.Loader
	TopK       int
	MaxColumns int
}

// Load reads the vocabulary file, if any, and returns initialized components
func (l *Loader) Load() (*Components, error) {
	cfg := l.Config
	if cfg == nil {
		var err error
		if cfg, err = Load(""); err != nil {
			return nil, err
		}
	}
	logger := l.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	stops := stoplist.Default()
	lex := lexicon.Default()
	polarity := sentiment.DefaultPolarity()

	if cfg.Analysis.VocabularyPath != "" {
		vocab, err := LoadVocabulary(cfg.Analysis.VocabularyPath)
		if err != nil {
			return nil, fmt.Errorf("load vocabulary: %w", err)
		}
		stops, lex, polarity, err = vocab.Build()
		if err != nil {
			return nil, fmt.Errorf("build vocabulary: %w", err)
		}
		logger.Info("vocabulary loaded",
			zap.String("path", cfg.Analysis.VocabularyPath),
			zap.Bool("replace", vocab.Replace),
			zap.Int("synonym_groups", lex.Stats().SynonymGroups))
	}

	detector := columns.NewDetector()
	detector.Threshold = cfg.Analysis.MinColumnScore
	detector.SampleSize = cfg.Analysis.SampleSize
	detector.Seed = cfg.Analysis.SampleSeed

	return &Components{
		Tokenizer: ingest.NewTokenizer(ingest.Options{
			Stoplist:       stops,
			Lexicon:        lex,
			FoldDiacritics: cfg.Analysis.FoldDiacritics,
		}),
		Polarity:   polarity,
		Detector:   detector,
		Tables:     table.NewLoader(logger),
		TopK:       cfg.Analysis.TopK,
		MaxColumns: cfg.Analysis.MaxColumns,
	}, nil
}

// Build merges the vocabulary with the built-in defaults, or replaces them
// when Replace is set.
func (v *Vocabulary) Build() (*stoplist.Manager, *lexicon.Lexicon, *sentiment.Polarity, error) {
	var (
		stops              *stoplist.Manager
		lex                *lexicon.Lexicon
		positive, negative []string
		err                error
	)
	if v.Replace {
		stops = stoplist.NewManager(v.Stopwords, v.Generic)
		lex, err = lexicon.New(v.Synonyms...)
		positive, negative = v.Positive, v.Negative
	} else {
		stops = stoplist.Default().Extend(v.Stopwords, v.Generic)
		lex, err = lexicon.Default().Extend(v.Synonyms...)
		positive = append(sentiment.DefaultPositive(), v.Positive...)
		negative = append(sentiment.DefaultNegative(), v.Negative...)
	}
	if err != nil {
		return nil, nil, nil, err
	}
	polarity, err := sentiment.NewPolarity(positive, negative)
	if err != nil {
		return nil, nil, nil, err
	}
	return stops, lex, polarity, nil
}
