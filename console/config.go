package console

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is looked up in the working directory first, then in
// the user's home directory.
const ConfigFileName = ".clasp.yaml"

// Config holds the console settings.
type Config struct {
	// Prompt opens every fresh statement.
	Prompt string `yaml:"prompt,omitempty"`

	// More marks continuation lines while brackets or a literal are
	// still open.
	More string `yaml:"more,omitempty"`

	// CommentMore replaces More while a block comment is open.
	CommentMore string `yaml:"comment_more,omitempty"`

	// HistoryFile keeps the line-editing history. Empty disables it.
	HistoryFile string `yaml:"history_file,omitempty"`

	// IncludePaths seeds the header search list. Entries may be
	// PATH-style lists.
	IncludePaths []string `yaml:"include_paths,omitempty"`

	// Libraries are shared libraries loaded at startup, as if by .L.
	Libraries []string `yaml:"libraries,omitempty"`

	// Compiler is the external command completed statements are piped
	// to. Empty means accepted statements are echoed instead.
	Compiler []string `yaml:"compiler,omitempty"`
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		Prompt:      "[clasp]$ ",
		More:        "? ",
		CommentMore: "* ",
		HistoryFile: filepath.Join(home, ".clasp_history"),
	}
}

// FindConfig returns the path of the config file to load: dir first,
// then the home directory. Empty when neither has one.
func FindConfig(dir string) string {
	candidate := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(candidate); err == nil {
		return candidate
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidate = filepath.Join(home, ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

// LoadConfig loads the config file found from dir, falling back to the
// defaults when there is none. A file that exists but does not parse
// is an error.
func LoadConfig(dir string) (*Config, error) {
	path := FindConfig(dir)
	if path == "" {
		return DefaultConfig(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return ParseConfig(data, path)
}

// ParseConfig parses config file content. Fields absent from the file
// keep their defaults. The path is used only in error messages.
func ParseConfig(data []byte, path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}
