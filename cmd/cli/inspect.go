package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/sevigo/reposcope/internal/gitutil"
	"github.com/sevigo/reposcope/internal/repolocation"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [path]",
	Short: "Resolve the remotes of a local git repository.",
	Long: `Opens the local git repository at the given path, reads its configured
remotes, and resolves each remote URL into a named location. The
repository is only read; nothing is fetched.`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		repoPath := args[0]
		slog.Info("Inspecting local repository", "path", repoPath)

		locations, err := gitutil.RemoteLocations(repoPath, repolocation.NewRegistry())
		if err != nil {
			return err
		}

		if outputJSON {
			return printLocationsJSON(locations)
		}
		printLocationsTable(locations)
		return nil
	},
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	inspectCmd.Flags().BoolVar(&outputJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(inspectCmd)
}
