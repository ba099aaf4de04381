package main

import (
	"go.uber.org/zap"

	"github.com/cognicore/pulse/internal/llm"
	"github.com/cognicore/pulse/pkg/pulse"
	"github.com/cognicore/pulse/pkg/pulse/config"
)

// buildEngine wires the configured components into an engine.
func buildEngine(cfg *config.Config, logger *zap.Logger) (*pulse.Engine, *config.Components, error) {
	loader := config.Loader{Config: cfg, Logger: logger}
	comp, err := loader.Load()
	if err != nil {
		return nil, nil, err
	}
	engine := pulse.New(pulse.Options{
		Tokenizer:  comp.Tokenizer,
		Polarity:   comp.Polarity,
		Detector:   comp.Detector,
		Tables:     comp.Tables,
		TopK:       comp.TopK,
		MaxColumns: comp.MaxColumns,
		Logger:     logger,
	})
	return engine, comp, nil
}

// newLLMClient builds the bridge client from config.
func newLLMClient(cfg *config.Config, logger *zap.Logger) *llm.Client {
	return llm.NewClient(llm.Config{
		BaseURL:        cfg.LLM.BaseURL,
		Model:          cfg.LLM.Model,
		APIKey:         cfg.LLM.APIKey,
		Timeout:        cfg.LLM.Timeout,
		MaxPromptChars: cfg.LLM.MaxPromptChars,
	}, logger)
}
