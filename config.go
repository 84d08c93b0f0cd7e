package morpho

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mova-institute/morpho/lexicon"
)

// Config describes an Analyzer and the lexicon it reads.
//
//	lexicon: data/vesum.db
//	cache_size: 10000
//	expand_adjectives_as_nouns: false
//	keep_n2adj: false
//	keep_paradigm_omonyms: false
type Config struct {
	Lexicon                 string `yaml:"lexicon"`
	CacheSize               int    `yaml:"cache_size"`
	ExpandAdjectivesAsNouns bool   `yaml:"expand_adjectives_as_nouns"`
	KeepN2Adj               bool   `yaml:"keep_n2adj"`
	KeepParadigmOmonyms     bool   `yaml:"keep_paradigm_omonyms"`
}

// LoadConfig reads a YAML config file. Missing keys keep their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := Config{CacheSize: DefaultCacheSize}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("open %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.CacheSize == 0 {
		cfg.CacheSize = DefaultCacheSize
	}
	return cfg, nil
}

// Options converts the analyzer settings of c to options for New.
func (c Config) Options() []Option {
	size := c.CacheSize
	if size == 0 {
		size = DefaultCacheSize
	}
	return []Option{
		WithCacheSize(size),
		WithExpandAdjectivesAsNouns(c.ExpandAdjectivesAsNouns),
		WithKeepN2Adj(c.KeepN2Adj),
		WithKeepParadigmOmonyms(c.KeepParadigmOmonyms),
	}
}

// Open loads the lexicon named by c and returns an Analyzer over it.
func Open(ctx context.Context, c Config) (*Analyzer, error) {
	if c.Lexicon == "" {
		return nil, ErrNoDictionary
	}
	lex, err := lexicon.Open(ctx, c.Lexicon)
	if err != nil {
		return nil, err
	}
	return New(lex, c.Options()...)
}
