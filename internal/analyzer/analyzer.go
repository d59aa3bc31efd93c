// Package analyzer defines the payload-producing step of an analysis
// request. The production engine behind this interface is out of scope;
// Mock is the only implementation shipped.
package analyzer

import (
	"context"
	"time"
)

// Issue is one finding inside a file.
type Issue struct {
	Type       string `json:"type"`     // bug, security, performance, style
	Severity   string `json:"severity"` // low, medium, high, critical
	Line       int    `json:"line"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion"`
	Solution   string `json:"solution"`
}

// FileResult groups findings for one file.
type FileResult struct {
	File   string  `json:"file"`
	Issues []Issue `json:"issues"`
}

// Summary aggregates findings across all files.
type Summary struct {
	TotalFilesAnalyzed int            `json:"total_files_analyzed"`
	TotalIssues        int            `json:"total_issues"`
	SeverityBreakdown  map[string]int `json:"severity_breakdown"`
	TypeBreakdown      map[string]int `json:"type_breakdown"`
}

// Result is the full payload returned to an analysis caller.
type Result struct {
	Success    bool         `json:"success"`
	Results    []FileResult `json:"results"`
	Summary    Summary      `json:"summary"`
	AnalyzedAt time.Time    `json:"analyzedAt"`
}

// Analyzer produces a result payload for a named repository.
type Analyzer interface {
	Analyze(ctx context.Context, owner, repo string) (*Result, error)
}

// Summarize recomputes the aggregate counters from the file list, so the
// summary always agrees with the findings it describes.
func Summarize(files []FileResult) Summary {
	s := Summary{
		TotalFilesAnalyzed: len(files),
		SeverityBreakdown:  map[string]int{"low": 0, "medium": 0, "high": 0, "critical": 0},
		TypeBreakdown:      map[string]int{"bug": 0, "security": 0, "performance": 0, "style": 0},
	}
	for _, f := range files {
		s.TotalIssues += len(f.Issues)
		for _, issue := range f.Issues {
			s.SeverityBreakdown[issue.Severity]++
			s.TypeBreakdown[issue.Type]++
		}
	}
	return s
}
