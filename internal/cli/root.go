package cli

import (
	"fmt"
	"os"

	"github.com/scaffgen-labs/scaffgen/internal/branding"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` generates frontend source scaffolds (components, hooks,
contexts) from built-in templates, deriving PascalCase and kebab-case forms
of a name and refusing to overwrite existing work without consent.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command with build info injected via ldflags.
// Errors are printed here so main only has to translate them into a
// non-zero exit status.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

// usageError wraps a user input problem with the command's usage line so
// the failure message shows the correct invocation syntax.
func usageError(cmd *cobra.Command, format string, args ...interface{}) error {
	return fmt.Errorf("%s\n\nUsage:\n  %s", fmt.Sprintf(format, args...), cmd.UseLine())
}
