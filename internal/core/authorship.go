// Package core holds the domain types shared between the resolution,
// aggregation, and reporting layers.
package core

// Author identifies one contributor whose lines are attributed.
type Author struct {
	GitID string `json:"git_id"`
}

// LineInfo is a single line of a file together with the author the
// attribution pass assigned to it.
type LineInfo struct {
	Number  int    `json:"number"`
	Author  Author `json:"author"`
	Content string `json:"content,omitempty"`
}

// FileResult is the line-attribution result for one file.
type FileResult struct {
	Path     string     `json:"path"`
	FileType string     `json:"file_type"`
	Lines    []LineInfo `json:"lines"`
}
