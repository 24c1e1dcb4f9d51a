package project

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeProjectFile(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ".scaffgen.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing project file: %v", err)
	}
	return path
}

func TestLoadMissingConfig(t *testing.T) {
	cfg, path, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg != nil || path != "" {
		t.Errorf("Load() = (%v, %q), want (nil, \"\")", cfg, path)
	}
}

func TestLoadValidConfig(t *testing.T) {
	dir := t.TempDir()
	writeProjectFile(t, dir, `
requires: ">= 0.1.0"
overwrite: deny
templates: ./my-templates
dirs:
  component: app/components
  hook: app/hooks
`)

	cfg, path, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if path == "" {
		t.Fatal("Load() did not find the config file")
	}
	if cfg.Requires != ">= 0.1.0" {
		t.Errorf("Requires = %q", cfg.Requires)
	}
	if cfg.DefaultOverwrite() != "deny" {
		t.Errorf("DefaultOverwrite() = %q, want deny", cfg.DefaultOverwrite())
	}
	if cfg.Dir("component") != "app/components" {
		t.Errorf("Dir(component) = %q", cfg.Dir("component"))
	}
	if cfg.Dir("context") != "" {
		t.Errorf("Dir(context) = %q, want empty", cfg.Dir("context"))
	}

	// Relative templates path resolves against the config file directory.
	want := filepath.Join(dir, "my-templates")
	if cfg.TemplatesDir() != want {
		t.Errorf("TemplatesDir() = %q, want %q", cfg.TemplatesDir(), want)
	}
}

func TestLoadFindsConfigInParent(t *testing.T) {
	root := t.TempDir()
	writeProjectFile(t, root, "overwrite: force\n")
	nested := filepath.Join(root, "src", "components")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	cfg, _, err := Load(nested)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg == nil || cfg.Overwrite != "force" {
		t.Errorf("Load() from nested dir = %+v", cfg)
	}
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{"unknown key", "unknown_key: true\n", "unknown_key"},
		{"bad overwrite value", "overwrite: sometimes\n", "/overwrite"},
		{"bad dirs mode", "dirs:\n  widget: src/widgets\n", "/dirs"},
		{"wrong type", "dirs: 42\n", "/dirs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeProjectFile(t, dir, tt.content)

			_, _, err := Load(dir)
			if err == nil {
				t.Fatal("Load() = nil error, want validation failure")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not mention %q", err, tt.wantMsg)
			}
		})
	}
}

func TestLoadEmptyConfig(t *testing.T) {
	dir := t.TempDir()
	writeProjectFile(t, dir, "")

	cfg, path, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if path == "" {
		t.Fatal("Load() did not find the config file")
	}
	if cfg == nil {
		t.Fatal("Load() returned nil config for empty file")
	}
	if cfg.Requires != "" || len(cfg.Dirs) != 0 {
		t.Errorf("empty config parsed as %+v", cfg)
	}
}

func TestCheckVersion(t *testing.T) {
	tests := []struct {
		name     string
		requires string
		version  string
		wantErr  bool
	}{
		{"no constraint", "", "0.1.0", false},
		{"satisfied", ">= 0.1.0", "0.2.0", false},
		{"satisfied with v prefix", ">= 0.1.0", "v0.2.0", false},
		{"unsatisfied", ">= 2.0.0", "0.2.0", true},
		{"dev build bypasses", ">= 2.0.0", "dev", false},
		{"range satisfied", ">= 0.1.0, < 1.0.0", "0.5.3", false},
		{"range unsatisfied", ">= 0.1.0, < 1.0.0", "1.2.0", true},
		{"bad constraint", "not-a-constraint", "0.1.0", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Requires: tt.requires}
			err := cfg.CheckVersion(tt.version)
			if (err != nil) != tt.wantErr {
				t.Errorf("CheckVersion(%q vs %q) error = %v, wantErr %v", tt.version, tt.requires, err, tt.wantErr)
			}
		})
	}
}

func TestCheckVersionNilConfig(t *testing.T) {
	var cfg *Config
	if err := cfg.CheckVersion("0.1.0"); err != nil {
		t.Errorf("nil config CheckVersion() = %v, want nil", err)
	}
}

func TestValidateIssuesCarryPaths(t *testing.T) {
	result, err := Validate([]byte("overwrite: sometimes\n"))
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if result.Valid {
		t.Fatal("Validate() = valid, want issues")
	}
	var found bool
	for _, issue := range result.Issues {
		if issue.Path == "/overwrite" {
			found = true
		}
	}
	if !found {
		t.Errorf("no issue with path /overwrite in %+v", result.Issues)
	}
}
