package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/scaffgen-labs/scaffgen/internal/config"
	"github.com/scaffgen-labs/scaffgen/internal/names"
	"github.com/scaffgen-labs/scaffgen/internal/project"
	"github.com/scaffgen-labs/scaffgen/internal/scaffold"
	"github.com/spf13/cobra"
)

// Shared flags for all generate subcommands.
var (
	genDir       string
	genOverwrite string
	genDryRun    bool
	genYes       bool
)

// Component-only flags.
var (
	genState  bool
	genEffect bool
)

// defaultDirs is the fallback output directory per mode, used when neither
// a flag, the project config, nor the user config names one.
var defaultDirs = map[string]string{
	"component": "src/components",
	"hook":      "src/hooks",
	"context":   "src/contexts",
}

// dirConfigKeys maps each mode to its user config key.
var dirConfigKeys = map[string]string{
	"component": config.KeyComponentDir,
	"hook":      config.KeyHookDir,
	"context":   config.KeyContextDir,
}

func init() {
	generateCmd.PersistentFlags().StringVar(&genDir, "dir", "", "Output directory (default: per-mode, e.g. src/components)")
	generateCmd.PersistentFlags().StringVar(&genOverwrite, "overwrite", "", "Overwrite policy for existing files: prompt, deny, or force")
	generateCmd.PersistentFlags().BoolVar(&genDryRun, "dry-run", false, "Print the would-be files to stdout without writing anything")
	generateCmd.PersistentFlags().BoolVar(&genYes, "yes", false, "Answer yes to all overwrite prompts")
	rootCmd.AddCommand(generateCmd)

	generateComponentCmd.Flags().BoolVar(&genState, "state", false, "Include a useState stanza")
	generateComponentCmd.Flags().BoolVar(&genEffect, "effect", false, "Include a useEffect stanza")

	generateCmd.AddCommand(generateComponentCmd)
	generateCmd.AddCommand(generateHookCmd)
	generateCmd.AddCommand(generateContextCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a source scaffold from a template",
	Long: `Generate a new component, hook, or context scaffold. The name may be given
in PascalCase or kebab-case; both forms are derived automatically.`,
}

var generateComponentCmd = &cobra.Command{
	Use:   "component <name>",
	Short: "Generate a component scaffold",
	Long: `Generate a component directory with an index.tsx and a test file.

Examples:
  scaffgen generate component UserCard --state
  scaffgen generate component nav-bar --dir src/ui --dry-run`,
	Args: exactName,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd, "component", args[0])
	},
}

var generateHookCmd = &cobra.Command{
	Use:   "hook <name>",
	Short: "Generate a hook scaffold",
	Long: `Generate a hook directory with an index.ts and a test file. Pass the bare
name; the "use" prefix is added by the template (local-storage → useLocalStorage).

Example:
  scaffgen generate hook local-storage`,
	Args: exactName,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd, "hook", args[0])
	},
}

var generateContextCmd = &cobra.Command{
	Use:   "context <name>",
	Short: "Generate a context scaffold",
	Long: `Generate a context directory with a provider, a consumer hook, and a test.

Example:
  scaffgen generate context Theme`,
	Args: exactName,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd, "context", args[0])
	},
}

// exactName enforces the single required <name> argument with a usage error
// that shows the invocation syntax.
func exactName(cmd *cobra.Command, args []string) error {
	switch len(args) {
	case 0:
		return usageError(cmd, "missing required <name> argument")
	case 1:
		if args[0] == "" {
			return usageError(cmd, "name must not be empty")
		}
		return nil
	default:
		return usageError(cmd, "expected exactly one <name> argument, got %d", len(args))
	}
}

func runGenerate(cmd *cobra.Command, mode, rawName string) error {
	derived, err := names.Derive(rawName)
	if err != nil {
		return usageError(cmd, "%v", err)
	}

	config.Load()

	proj, _, err := project.Load(".")
	if err != nil {
		return err
	}
	if err := proj.CheckVersion(buildVersion); err != nil {
		return err
	}

	policy, err := resolvePolicy(proj)
	if err != nil {
		return usageError(cmd, "%v", err)
	}

	data := scaffold.NewData(derived, buildVersion)
	if mode == "component" {
		data.IncludeState = genState
		data.IncludeEffect = genEffect
	}

	result, err := scaffold.Generate(mode, data, scaffold.Options{
		OutputDir:    resolveDir(mode, proj),
		TemplatesDir: proj.TemplatesDir(),
		Overwrite:    policy,
		Confirm:      resolveConfirmer(cmd),
		DryRun:       genDryRun,
		Out:          cmd.OutOrStdout(),
	})
	if err != nil {
		return err
	}

	if genDryRun {
		fmt.Fprintf(cmd.ErrOrStderr(), "Dry run: %d file(s) would be written to %s/\n", len(result.Planned), result.OutputDir)
		return nil
	}

	printGenerateResult(cmd, mode, derived.Pascal, result)
	return nil
}

// resolveDir picks the output directory: flag, then project config, then
// user config, then the built-in default.
func resolveDir(mode string, proj *project.Config) string {
	if genDir != "" {
		return genDir
	}
	if dir := proj.Dir(mode); dir != "" {
		return dir
	}
	if dir := config.Get(dirConfigKeys[mode]); dir != "" {
		return dir
	}
	return defaultDirs[mode]
}

// resolvePolicy picks the overwrite policy: flag, then project config, then
// user config, defaulting to the interactive prompt.
func resolvePolicy(proj *project.Config) (scaffold.Policy, error) {
	value := genOverwrite
	if value == "" {
		value = proj.DefaultOverwrite()
	}
	if value == "" {
		value = config.Get(config.KeyOverwrite)
	}
	if value == "" {
		return scaffold.PolicyPrompt, nil
	}
	return scaffold.ParsePolicy(value)
}

// resolveConfirmer returns an auto-yes confirmer under --yes, otherwise a
// stdin-backed one. Prompts go to stderr so stdout stays scriptable.
func resolveConfirmer(cmd *cobra.Command) scaffold.Confirmer {
	if genYes {
		return scaffold.ConfirmFunc(func(string) bool { return true })
	}
	return newStdinConfirmer(cmd.InOrStdin(), cmd.ErrOrStderr())
}

// stdinConfirmer asks a y/N question on a line-oriented reader. Anything
// other than an explicit yes declines. The reader is buffered once for the
// confirmer's lifetime: a run prompts once per existing file, and a fresh
// buffer per question would swallow answers already queued on the stream
// (piped input answering several prompts).
type stdinConfirmer struct {
	reader *bufio.Reader
	out    io.Writer
}

func newStdinConfirmer(in io.Reader, out io.Writer) *stdinConfirmer {
	return &stdinConfirmer{reader: bufio.NewReader(in), out: out}
}

func (c *stdinConfirmer) Confirm(prompt string) bool {
	fmt.Fprintf(c.out, "%s [y/N]: ", prompt)
	line, err := c.reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func printGenerateResult(cmd *cobra.Command, mode, pascal string, result *scaffold.Result) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created %s %s at %s/\n", mode, pascal, result.OutputDir)
	for _, f := range result.Written {
		fmt.Fprintf(out, "  %s\n", f)
	}
	for _, f := range result.Skipped {
		fmt.Fprintf(out, "  %s (skipped, file exists)\n", f)
	}
}
