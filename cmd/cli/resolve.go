package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sevigo/reposcope/internal/config"
	"github.com/sevigo/reposcope/internal/repolocation"
)

var (
	titleColor   = color.New(color.FgCyan, color.Bold)
	successColor = color.New(color.FgGreen)
	errorColor   = color.New(color.FgRed)
)

var outputJSON bool

// resolvedLocation is the JSON view of a Location; the entity itself
// keeps its fields unexported.
type resolvedLocation struct {
	Location     string `json:"location"`
	Name         string `json:"name"`
	Organization string `json:"organization,omitempty"`
}

var resolveCmd = &cobra.Command{
	Use:   "resolve [location...]",
	Short: "Resolve repository locations into unique display names.",
	Long: `Resolves each given location (or, without arguments, the entries of the
repo list file) into a display name and, for GitHub clone URLs, an
organization. Colliding fallback names are suffixed with a counter.`,
	RunE: func(_ *cobra.Command, args []string) error {
		reg := repolocation.NewRegistry()

		var locations []repolocation.Location
		var err error
		if len(args) > 0 {
			locations, err = repolocation.ConvertLocations(args, reg)
		} else {
			locations, err = config.LoadRepoList(viper.GetString("REPO_LIST_PATH"), reg)
		}
		if err != nil {
			errorColor.Fprintln(os.Stderr, err)
			return err
		}
		if locations == nil {
			return fmt.Errorf("no locations given and the repo list has no repos entry")
		}

		if outputJSON {
			return printLocationsJSON(locations)
		}
		printLocationsTable(locations)
		return nil
	},
}

func printLocationsJSON(locations []repolocation.Location) error {
	out := make([]resolvedLocation, 0, len(locations))
	for _, loc := range locations {
		out = append(out, resolvedLocation{
			Location:     loc.String(),
			Name:         loc.Name(),
			Organization: loc.Organization(),
		})
	}
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

func printLocationsTable(locations []repolocation.Location) {
	titleColor.Printf("Resolved %d location(s)\n", len(locations))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "NAME\tORGANIZATION\tLOCATION")
	for _, loc := range locations {
		org := loc.Organization()
		if org == "" {
			org = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", loc.Name(), org, loc)
	}
	w.Flush()
	successColor.Println("done")
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	resolveCmd.Flags().BoolVar(&outputJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(resolveCmd)
}
