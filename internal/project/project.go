package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/scaffgen-labs/scaffgen/internal/branding"
	"go.yaml.in/yaml/v3"
)

// Config is the parsed project configuration.
type Config struct {
	Requires  string            `yaml:"requires,omitempty"`
	Templates string            `yaml:"templates,omitempty"`
	Overwrite string            `yaml:"overwrite,omitempty"`
	Dirs      map[string]string `yaml:"dirs,omitempty"`
}

// Dir returns the configured output directory for a mode, or "" if unset.
func (c *Config) Dir(mode string) string {
	if c == nil {
		return ""
	}
	return c.Dirs[mode]
}

// DefaultOverwrite returns the configured overwrite policy, or "" if unset.
func (c *Config) DefaultOverwrite() string {
	if c == nil {
		return ""
	}
	return c.Overwrite
}

// TemplatesDir returns the configured local template root, or "" if unset.
func (c *Config) TemplatesDir() string {
	if c == nil {
		return ""
	}
	return c.Templates
}

// Find walks from startDir toward the filesystem root looking for the
// project config file. It returns the file path, or "" when no project
// config exists anywhere above startDir.
func Find(startDir string) string {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return ""
	}
	for {
		candidate := filepath.Join(dir, branding.ProjectFile())
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// Load finds, validates, and parses the project config for startDir.
// A missing config file is not an error; the returned Config is nil.
func Load(startDir string) (*Config, string, error) {
	path := Find(startDir)
	if path == "" {
		return nil, "", nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("reading project config %s: %w", path, err)
	}

	result, err := Validate(data)
	if err != nil {
		return nil, path, fmt.Errorf("validating project config %s: %w", path, err)
	}
	if !result.Valid {
		var msgs []string
		for _, issue := range result.Issues {
			msg := issue.Message
			if issue.Path != "" {
				msg = issue.Path + ": " + msg
			}
			msgs = append(msgs, msg)
		}
		return nil, path, fmt.Errorf("invalid project config %s:\n  %s", path, strings.Join(msgs, "\n  "))
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, path, fmt.Errorf("parsing project config %s: %w", path, err)
	}

	// Resolve the templates dir relative to the config file location.
	if cfg.Templates != "" && !filepath.IsAbs(cfg.Templates) {
		cfg.Templates = filepath.Join(filepath.Dir(path), cfg.Templates)
	}

	return &cfg, path, nil
}

// CheckVersion verifies the running tool version against the config's
// "requires" constraint. Development builds ("dev") bypass the check so a
// source build can always run.
func (c *Config) CheckVersion(version string) error {
	if c == nil || c.Requires == "" || version == "dev" {
		return nil
	}

	constraint, err := semver.NewConstraint(c.Requires)
	if err != nil {
		return fmt.Errorf("invalid requires constraint %q: %w", c.Requires, err)
	}

	v, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return fmt.Errorf("parsing tool version %q: %w", version, err)
	}

	if !constraint.Check(v) {
		return fmt.Errorf("this project requires %s %s, but you are running %s", branding.CLIName(), c.Requires, version)
	}
	return nil
}
