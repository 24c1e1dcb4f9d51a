package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/scaffgen-labs/scaffgen/internal/scaffold"
	"github.com/spf13/cobra"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available generator modes",
	Long:  `List the built-in template modes and the files each one produces.`,
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

// listEntry represents one generator mode for display.
type listEntry struct {
	Mode  string   `json:"mode"`
	Files []string `json:"files"`
}

func runList(cmd *cobra.Command, args []string) error {
	var entries []listEntry
	for _, mode := range scaffold.Modes() {
		files, err := scaffold.ModeFiles(mode)
		if err != nil {
			return fmt.Errorf("listing templates for %s: %w", mode, err)
		}
		entries = append(entries, listEntry{Mode: mode, Files: files})
	}

	if listJSON {
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling mode list: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "MODE\tFILES")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\n", e.Mode, strings.Join(e.Files, ", "))
	}
	return w.Flush()
}
