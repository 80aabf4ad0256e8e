package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sevigo/reposcope/internal/authorship"
	"github.com/sevigo/reposcope/internal/core"
)

var reportAuthors []string

var reportCmd = &cobra.Command{
	Use:   "report [attribution-file]",
	Short: "Aggregate a line-attribution file into per-author contribution counts.",
	Long: `Reads a JSON file of per-file line attributions and tallies, for each
analyzed author, the number of lines per file type. Lines attributed to
authors outside the --author set are skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read attribution file: %w", err)
		}

		var results []core.FileResult
		if err := json.Unmarshal(data, &results); err != nil {
			return fmt.Errorf("failed to parse attribution file: %w", err)
		}

		authors := make([]core.Author, 0, len(reportAuthors))
		for _, gitID := range reportAuthors {
			authors = append(authors, core.Author{GitID: gitID})
		}

		summary := authorship.Aggregate(results, authors)
		printSummary(summary)
		return nil
	},
}

func printSummary(summary *authorship.Summary) {
	authors := summary.Authors()
	sort.Slice(authors, func(i, j int) bool { return authors[i].GitID < authors[j].GitID })

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "AUTHOR\tFILE TYPE\tLINES")
	for _, author := range authors {
		counts := summary.Contributions(author)

		fileTypes := make([]string, 0, len(counts))
		for fileType := range counts {
			fileTypes = append(fileTypes, fileType)
		}
		sort.Strings(fileTypes)

		for _, fileType := range fileTypes {
			fmt.Fprintf(w, "%s\t%s\t%d\n", author.GitID, fileType, counts[fileType])
		}
		fmt.Fprintf(w, "%s\ttotal\t%d\n", author.GitID, summary.TotalLines(author))
	}
	w.Flush()
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	reportCmd.Flags().StringSliceVarP(&reportAuthors, "author", "a", nil, "Git ID of an analyzed author (repeatable)")
	rootCmd.AddCommand(reportCmd)
}
