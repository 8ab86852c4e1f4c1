package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// FileName is the optional per-project config file
const FileName = ".eventato.yaml"

// Config represents the eventato configuration
type Config struct {
	Agent     AgentConfig     `mapstructure:"agent" yaml:"agent"`
	Scan      ScanConfig      `mapstructure:"scan" yaml:"scan"`
	Relevance RelevanceConfig `mapstructure:"relevance" yaml:"relevance"`
}

// AgentConfig contains external coding agent settings
type AgentConfig struct {
	Binary string   `mapstructure:"binary" yaml:"binary"`
	Args   []string `mapstructure:"args" yaml:"args"`
}

// ScanConfig controls which files make up the source corpus
type ScanConfig struct {
	Extensions []string `mapstructure:"extensions" yaml:"extensions"`
	Ignore     []string `mapstructure:"ignore" yaml:"ignore"`
}

// RelevanceConfig controls candidate file selection
type RelevanceConfig struct {
	Keywords      []string `mapstructure:"keywords" yaml:"keywords"`
	MaxMatches    int      `mapstructure:"max_matches" yaml:"max_matches"`
	FallbackLimit int      `mapstructure:"fallback_limit" yaml:"fallback_limit"`
}

// Path returns the default config path for a project directory
func Path(dir string) string {
	return filepath.Join(dir, FileName)
}

// Load reads the config from path. A missing file yields DefaultConfig.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Apply defaults for missing values
	applyDefaults(&cfg)

	return &cfg, nil
}

// DefaultConfig returns a config with default values
func DefaultConfig() *Config {
	return &Config{
		Agent: AgentConfig{
			Binary: "cursor-agent",
			Args:   []string{"--print", "--force"},
		},
		Scan: ScanConfig{
			Extensions: []string{".js", ".jsx", ".ts", ".tsx", ".py", ".vue"},
			Ignore: []string{
				"**/node_modules/**",
				"**/dist/**",
				"**/build/**",
				"**/*.test.*",
				"**/*.spec.*",
			},
		},
		Relevance: RelevanceConfig{
			Keywords:      []string{"component", "page", "feature"},
			MaxMatches:    5,
			FallbackLimit: 10,
		},
	}
}

func applyDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.Agent.Binary == "" {
		cfg.Agent.Binary = defaults.Agent.Binary
	}
	if cfg.Agent.Args == nil {
		cfg.Agent.Args = defaults.Agent.Args
	}
	if len(cfg.Scan.Extensions) == 0 {
		cfg.Scan.Extensions = defaults.Scan.Extensions
	}
	if cfg.Scan.Ignore == nil {
		cfg.Scan.Ignore = defaults.Scan.Ignore
	}
	if cfg.Relevance.Keywords == nil {
		cfg.Relevance.Keywords = defaults.Relevance.Keywords
	}
	if cfg.Relevance.MaxMatches <= 0 {
		cfg.Relevance.MaxMatches = defaults.Relevance.MaxMatches
	}
	if cfg.Relevance.FallbackLimit <= 0 {
		cfg.Relevance.FallbackLimit = defaults.Relevance.FallbackLimit
	}
}
