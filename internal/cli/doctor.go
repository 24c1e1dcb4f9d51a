package cli

import (
	"fmt"
	"os"

	"github.com/scaffgen-labs/scaffgen/internal/config"
	"github.com/scaffgen-labs/scaffgen/internal/names"
	"github.com/scaffgen-labs/scaffgen/internal/project"
	"github.com/scaffgen-labs/scaffgen/internal/scaffold"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for the scaffgen environment",
	Long: `Run diagnostic checks: the user config is readable, the project config (if
any) is schema-valid and compatible with this version, and every built-in
template set renders cleanly.`,
	RunE: runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	failed := 0

	check := func(name string, err error) {
		if err != nil {
			failed++
			fmt.Fprintf(out, "  ✗ %s: %v\n", name, err)
			return
		}
		fmt.Fprintf(out, "  ✓ %s\n", name)
	}

	fmt.Fprintln(out, "Checking configuration:")
	check("user config", checkUserConfig())

	proj, path, projErr := project.Load(".")
	if path == "" && projErr == nil {
		fmt.Fprintln(out, "  - project config: none found (optional)")
	} else {
		check("project config", projErr)
		if projErr == nil {
			check("version requirement", proj.CheckVersion(buildVersion))
			if dir := proj.TemplatesDir(); dir != "" {
				check("template override dir", checkDir(dir))
			}
		}
	}

	fmt.Fprintln(out, "Checking template sets:")
	sample, err := names.Derive("doctor-probe")
	if err != nil {
		return fmt.Errorf("deriving probe name: %w", err)
	}
	data := scaffold.NewData(sample, buildVersion)
	data.IncludeState = true
	data.IncludeEffect = true
	for _, mode := range scaffold.Modes() {
		_, err := scaffold.Render(mode, data)
		check(mode, err)
	}

	if failed > 0 {
		return fmt.Errorf("%d check(s) failed", failed)
	}
	fmt.Fprintln(out, "All checks passed.")
	return nil
}

func checkUserConfig() error {
	config.Load()
	if _, err := os.Stat(config.FilePath()); os.IsNotExist(err) {
		// No user config is fine; defaults apply.
		return nil
	} else if err != nil {
		return err
	}
	if value := config.Get(config.KeyOverwrite); value != "" {
		if _, err := scaffold.ParsePolicy(value); err != nil {
			return err
		}
	}
	return nil
}

func checkDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}
	return nil
}
