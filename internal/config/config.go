package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Rule is one validator declaration from the configuration file.
type Rule struct {
	Name    string            `yaml:"name"`
	Options map[string]string `yaml:"options"`
}

// Option returns a string option, or fallback when unset.
func (r Rule) Option(key, fallback string) string {
	if v, ok := r.Options[key]; ok && v != "" {
		return v
	}
	return fallback
}

// IntOption returns an integer option, or fallback when unset or unparsable.
func (r Rule) IntOption(key string, fallback int) int {
	if v, ok := r.Options[key]; ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

// Configuration is the resolved run configuration: the ordered rule list,
// the symbol table and the document language.
type Configuration struct {
	Lang    string
	Rules   []Rule
	Symbols *SymbolTable
}

// file is the on-disk YAML shape.
type file struct {
	Lang    string            `yaml:"lang"`
	Rules   []Rule            `yaml:"rules"`
	Symbols map[string]string `yaml:"symbols"`
}

// Parse builds a Configuration from YAML bytes.
func Parse(data []byte) (*Configuration, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse configuration: %w", err)
	}
	if f.Lang == "" {
		f.Lang = "en"
	}
	return &Configuration{
		Lang:    f.Lang,
		Rules:   f.Rules,
		Symbols: NewSymbolTable(f.Lang, f.Symbols),
	}, nil
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Configuration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read configuration: %w", err)
	}
	return Parse(data)
}

// New builds a Configuration programmatically, without a file.
func New(lang string, rules []Rule, symbols map[string]string) *Configuration {
	if lang == "" {
		lang = "en"
	}
	return &Configuration{
		Lang:    lang,
		Rules:   rules,
		Symbols: NewSymbolTable(lang, symbols),
	}
}

// Validate fails fast on configurations that cannot produce a usable engine.
func (c *Configuration) Validate() error {
	if c.Symbols == nil {
		return fmt.Errorf("symbol table is required")
	}
	for _, r := range c.Rules {
		if r.Name == "" {
			return fmt.Errorf("rule declaration without a name")
		}
	}
	return nil
}

// ServerConfig holds process-level settings for the HTTP server mode.
type ServerConfig struct {
	Port           string
	APIKey         string
	MaxUploadBytes int64
}

// LoadServer reads server settings from the environment.
func LoadServer() ServerConfig {
	cfg := ServerConfig{
		Port:           envOr("PORT", "8070"),
		APIKey:         os.Getenv("REDPEN_API_KEY"),
		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 10485760), // 10MB
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 10485760
	}
	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}
