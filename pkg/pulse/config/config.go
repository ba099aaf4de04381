package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/cognicore/pulse/pkg/pulse/internalerr"
)

// Config holds all configuration for pulse.
// Configuration can come from a YAML file or environment variables.
// Environment variables always override YAML values.
type Config struct {
	Analysis AnalysisConfig `yaml:"analysis"`
	LLM      LLMConfig      `yaml:"llm"`
	Log      LogConfig      `yaml:"log"`
}

// AnalysisConfig tunes the analytics pipeline.
type AnalysisConfig struct {
	TopK           int     `yaml:"top_k" env:"PULSE_TOP_K" env-default:"8"`
	MaxColumns     int     `yaml:"max_columns" env:"PULSE_MAX_COLUMNS" env-default:"3"`
	MinColumnScore float64 `yaml:"min_column_score" env:"PULSE_MIN_COLUMN_SCORE" env-default:"0.5"`
	SampleSize     int     `yaml:"sample_size" env:"PULSE_SAMPLE_SIZE" env-default:"200"`
	SampleSeed     int64   `yaml:"sample_seed" env:"PULSE_SAMPLE_SEED" env-default:"42"`
	FoldDiacritics bool    `yaml:"fold_diacritics" env:"PULSE_FOLD_DIACRITICS" env-default:"false"`

	// VocabularyPath points at a YAML file extending (or replacing) the
	// built-in stopwords, generic terms, sentiment words and synonyms.
	VocabularyPath string `yaml:"vocabulary" env:"PULSE_VOCABULARY" env-default:""`
}

// LLMConfig points at an OpenAI-compatible completion endpoint. The default
// is a local Ollama server.
type LLMConfig struct {
	BaseURL        string        `yaml:"base_url" env:"LLM_BASE_URL" env-default:"http://localhost:11434/v1"`
	Model          string        `yaml:"model" env:"LLM_MODEL" env-default:"mistral"`
	APIKey         string        `yaml:"-" env:"LLM_API_KEY"` // Secret - not in YAML
	Timeout        time.Duration `yaml:"timeout" env:"LLM_TIMEOUT" env-default:"180s"`
	MaxPromptChars int           `yaml:"max_prompt_chars" env:"LLM_MAX_PROMPT_CHARS" env-default:"8000"`
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"console"` // console or json
}

// Load reads configuration from the YAML file at path, if given, and then
// from the environment.
func Load(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read config from environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	var problems []string
	if c.Analysis.TopK <= 0 {
		problems = append(problems, "analysis.top_k must be positive")
	}
	if c.Analysis.MaxColumns <= 0 {
		problems = append(problems, "analysis.max_columns must be positive")
	}
	if c.Analysis.SampleSize <= 0 {
		problems = append(problems, "analysis.sample_size must be positive")
	}
	if c.LLM.Timeout <= 0 {
		problems = append(problems, "llm.timeout must be positive")
	}
	if c.LLM.MaxPromptChars <= 0 {
		problems = append(problems, "llm.max_prompt_chars must be positive")
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		problems = append(problems, fmt.Sprintf("log.format %q must be console or json", c.Log.Format))
	}
	if len(problems) > 0 {
		return fmt.Errorf("%s: %w", strings.Join(problems, "; "), internalerr.ErrInvalidConfig)
	}
	return nil
}
