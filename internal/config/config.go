// Package config provides configuration loading for report generation.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config represents the report generator configuration.
type Config struct {
	Engine  EngineConfig  `toml:"engine"`
	Report  ReportConfig  `toml:"report"`
	Preview PreviewConfig `toml:"preview"`
}

// EngineConfig identifies the agent engine whose logs are being parsed.
type EngineConfig struct {
	ID       string `toml:"id"`        // Engine identifier (default "claude")
	MaxTurns int    `toml:"max_turns"` // Turn budget; 0 disables max-turns detection
}

// ReportConfig controls rendered report output.
type ReportConfig struct {
	Format    string `toml:"format"`     // markdown (default), text, or terminal
	SizeLimit int    `toml:"size_limit"` // Byte ceiling for markdown output; 0 selects the default
}

// PreviewConfig controls safe-output preview rendering.
type PreviewConfig struct {
	MaxEntries int  `toml:"max_entries"` // Entries shown before the overflow trailer
	PlainText  bool `toml:"plain_text"`  // Use plain-text field caps and no markup
}

// New creates a new config with defaults.
func New() *Config {
	return &Config{
		Engine: EngineConfig{
			ID: "claude",
		},
		Report: ReportConfig{
			Format: "markdown",
		},
	}
}

// Default returns a default configuration.
func Default() *Config {
	return New()
}

// LoadFile loads configuration from a TOML file.
func LoadFile(path string) (*Config, error) {
	cfg := New()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// LoadDefault loads configuration from runreport.toml in the current
// directory, falling back to defaults when the file does not exist.
func LoadDefault() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	path := filepath.Join(cwd, "runreport.toml")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return New(), nil
	}
	return LoadFile(path)
}

// Validate checks field values that have a closed set of choices.
func (c *Config) Validate() error {
	switch c.Report.Format {
	case "", "markdown", "text", "terminal":
	default:
		return fmt.Errorf("unknown report format %q", c.Report.Format)
	}
	if c.Engine.MaxTurns < 0 {
		return fmt.Errorf("max_turns must not be negative")
	}
	return nil
}

// EngineSetting is the engine declaration inside a workflow file. It
// accepts either a bare string ("claude") or a mapping with an id and
// an optional max-turns override.
type EngineSetting struct {
	ID       string
	MaxTurns int
}

// UnmarshalYAML implements yaml.Unmarshaler for the two engine shapes.
func (e *EngineSetting) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		return node.Decode(&e.ID)
	}

	var mapping struct {
		ID       string `yaml:"id"`
		MaxTurns int    `yaml:"max-turns"`
	}
	if err := node.Decode(&mapping); err != nil {
		return fmt.Errorf("invalid engine setting: %w", err)
	}
	e.ID = mapping.ID
	e.MaxTurns = mapping.MaxTurns
	return nil
}

// WorkflowFrontmatter is the subset of a workflow markdown file's YAML
// frontmatter that affects report generation.
type WorkflowFrontmatter struct {
	Engine EngineSetting `yaml:"engine"`
}

// LoadWorkflowFrontmatter reads a workflow markdown file and extracts
// the engine id and turn budget from its frontmatter.
func LoadWorkflowFrontmatter(path string) (*WorkflowFrontmatter, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read workflow: %w", err)
	}
	return ParseWorkflowFrontmatter(string(data))
}

// ParseWorkflowFrontmatter parses workflow markdown content.
func ParseWorkflowFrontmatter(content string) (*WorkflowFrontmatter, error) {
	frontmatter, err := splitFrontmatter(content)
	if err != nil {
		return nil, err
	}

	fm := &WorkflowFrontmatter{}
	if err := yaml.Unmarshal([]byte(frontmatter), fm); err != nil {
		return nil, fmt.Errorf("invalid frontmatter: %w", err)
	}
	return fm, nil
}

// splitFrontmatter extracts YAML frontmatter from markdown.
func splitFrontmatter(content string) (string, error) {
	lines := strings.Split(content, "\n")

	if len(lines) == 0 || strings.TrimSpace(lines[0]) != "---" {
		return "", fmt.Errorf("missing frontmatter delimiter")
	}

	var fmLines []string
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			return strings.Join(fmLines, "\n"), nil
		}
		fmLines = append(fmLines, lines[i])
	}
	return "", fmt.Errorf("unclosed frontmatter")
}
