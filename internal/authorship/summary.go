// Package authorship aggregates line-attribution results into
// per-author, per-file-type contribution counts.
package authorship

import "github.com/sevigo/reposcope/internal/core"

// Summary is the per-author, per-file-type line tally for one run.
type Summary struct {
	contributions map[core.Author]map[string]int
}

func newSummary(authors []core.Author) *Summary {
	contributions := make(map[core.Author]map[string]int, len(authors))
	for _, author := range authors {
		contributions[author] = make(map[string]int)
	}
	return &Summary{contributions: contributions}
}

// Aggregate tallies every line in results against the analyzed
// authors. Lines attributed to an author outside that set are skipped,
// not counted under a catch-all.
func Aggregate(results []core.FileResult, authors []core.Author) *Summary {
	summary := newSummary(authors)
	for _, result := range results {
		for _, line := range result.Lines {
			counts, tracked := summary.contributions[line.Author]
			if !tracked {
				continue
			}
			counts[result.FileType]++
		}
	}
	return summary
}

// LineCount returns the number of lines of the given file type
// attributed to author.
func (s *Summary) LineCount(author core.Author, fileType string) int {
	return s.contributions[author][fileType]
}

// TotalLines returns the number of lines attributed to author across
// all file types.
func (s *Summary) TotalLines(author core.Author) int {
	total := 0
	for _, count := range s.contributions[author] {
		total += count
	}
	return total
}

// Contributions returns a copy of the per-file-type counts for author.
// The author is present with an empty map even when no line was
// attributed to them.
func (s *Summary) Contributions(author core.Author) map[string]int {
	counts, ok := s.contributions[author]
	if !ok {
		return nil
	}
	out := make(map[string]int, len(counts))
	for fileType, count := range counts {
		out[fileType] = count
	}
	return out
}

// Authors returns the analyzed authors in unspecified order.
func (s *Summary) Authors() []core.Author {
	authors := make([]core.Author, 0, len(s.contributions))
	for author := range s.contributions {
		authors = append(authors, author)
	}
	return authors
}
