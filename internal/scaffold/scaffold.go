package scaffold

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Policy governs what happens when a target file already exists.
type Policy string

const (
	// PolicyPrompt asks the confirmer per file; a decline skips that file
	// and the run continues.
	PolicyPrompt Policy = "prompt"
	// PolicyDeny aborts the whole run before anything is written if any
	// target exists.
	PolicyDeny Policy = "deny"
	// PolicyForce overwrites existing files without asking.
	PolicyForce Policy = "force"
)

// ParsePolicy validates a policy string from a flag or config value.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case PolicyPrompt, PolicyDeny, PolicyForce:
		return Policy(s), nil
	}
	return "", fmt.Errorf("invalid overwrite policy %q: must be prompt, deny, or force", s)
}

// Confirmer answers yes/no questions for the prompt overwrite policy. The
// CLI injects a stdin-backed implementation; tests inject stubs.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to the Confirmer interface.
type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

// AlreadyExistsError reports a target file blocked by the deny policy.
type AlreadyExistsError struct {
	Path string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s already exists (use --overwrite force to replace, or remove the file)", e.Path)
}

// Options configures a Generate run.
type Options struct {
	OutputDir    string    // base directory; files land in OutputDir/<kebab>/
	TemplatesDir string    // optional local template root shadowing built-ins
	Overwrite    Policy    // defaults to PolicyPrompt
	Confirm      Confirmer // required for PolicyPrompt when targets exist
	DryRun       bool      // render and report without touching the filesystem
	Out          io.Writer // dry-run report destination; defaults to os.Stdout
}

// Result holds the outcome of a scaffold generation.
type Result struct {
	OutputDir string   // the scaffold directory, OutputDir/<kebab>
	Written   []string // files created or overwritten
	Skipped   []string // files left untouched after a declined prompt
	Planned   []string // dry-run only: files that would be written
}

// Generate renders the template set for mode and writes the results under
// opts.OutputDir/<kebab>/. Existing files are handled per the overwrite
// policy. With DryRun set, nothing is written and the would-be paths and
// contents go to opts.Out instead.
func Generate(mode string, data *Data, opts Options) (*Result, error) {
	if opts.Overwrite == "" {
		opts.Overwrite = PolicyPrompt
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	files, err := render(mode, data, opts.TemplatesDir)
	if err != nil {
		return nil, err
	}

	scaffoldDir := filepath.Join(opts.OutputDir, data.Kebab)
	result := &Result{OutputDir: scaffoldDir}

	if opts.DryRun {
		for _, f := range files {
			target := filepath.Join(scaffoldDir, f.Name)
			result.Planned = append(result.Planned, target)
			fmt.Fprintf(opts.Out, "--- %s ---\n%s\n", target, f.Content)
		}
		return result, nil
	}

	// Deny policy is all-or-nothing: scan every target before writing the
	// first byte so a failed run leaves no partial scaffold behind.
	if opts.Overwrite == PolicyDeny {
		for _, f := range files {
			target := filepath.Join(scaffoldDir, f.Name)
			if _, err := os.Stat(target); err == nil {
				return nil, &AlreadyExistsError{Path: target}
			}
		}
	}

	if err := os.MkdirAll(scaffoldDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory %s: %w", scaffoldDir, err)
	}

	for _, f := range files {
		target := filepath.Join(scaffoldDir, f.Name)

		if opts.Overwrite == PolicyPrompt {
			if _, err := os.Stat(target); err == nil {
				if opts.Confirm == nil || !opts.Confirm.Confirm(fmt.Sprintf("Overwrite %s?", target)) {
					result.Skipped = append(result.Skipped, target)
					continue
				}
			}
		}

		if err := os.WriteFile(target, f.Content, 0644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", target, err)
		}
		result.Written = append(result.Written, target)
	}

	return result, nil
}

// render picks the local template set when one shadows the built-in mode.
func render(mode string, data *Data, templatesDir string) ([]File, error) {
	if templatesDir != "" {
		modeDir := filepath.Join(templatesDir, mode)
		if info, err := os.Stat(modeDir); err == nil && info.IsDir() {
			return RenderDir(modeDir, mode, data)
		}
	}
	return Render(mode, data)
}
