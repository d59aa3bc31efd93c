package analyzer

import (
	"context"
	"time"
)

// Mock returns a fixed set of findings regardless of the named repository.
// The payload is demo fixture data, not real static-analysis output.
type Mock struct{}

// NewMock creates the fixture-backed analyzer.
func NewMock() *Mock {
	return &Mock{}
}

// Analyze returns the fixture findings with a fresh timestamp.
func (m *Mock) Analyze(ctx context.Context, owner, repo string) (*Result, error) {
	files := mockFiles()
	return &Result{
		Success:    true,
		Results:    files,
		Summary:    Summarize(files),
		AnalyzedAt: time.Now().UTC(),
	}, nil
}

func mockFiles() []FileResult {
	return []FileResult{
		{
			File: "src/components/App.js",
			Issues: []Issue{
				{
					Type:       "bug",
					Severity:   "high",
					Line:       15,
					Message:    "Potential null pointer exception when accessing user.profile",
					Suggestion: "Add null check before accessing nested properties",
					Solution:   "// Safe property access:\nif (user && user.profile) {\n  // Access user.profile safely\n} \n// Or use optional chaining:\nuser?.profile?.name",
				},
				{
					Type:       "security",
					Severity:   "medium",
					Line:       23,
					Message:    "Unsafe use of innerHTML without sanitization",
					Suggestion: "Use textContent or DOMPurify for HTML sanitization",
					Solution:   "// Safe alternatives:\nelement.textContent = userInput; // For text\n// Or for HTML:\nelement.innerHTML = DOMPurify.sanitize(userInput);",
				},
			},
		},
		{
			File: "src/utils/helper.js",
			Issues: []Issue{
				{
					Type:       "performance",
					Severity:   "medium",
					Line:       8,
					Message:    "Array.length called in loop condition - performance impact",
					Suggestion: "Cache array length before loop for better performance",
					Solution:   "// Optimized loop:\nconst len = items.length;\nfor (let i = 0; i < len; i++) {\n  // Process items[i]\n}",
				},
				{
					Type:       "bug",
					Severity:   "medium",
					Line:       12,
					Message:    "parseInt without radix parameter",
					Suggestion: "Always specify radix to avoid unexpected results",
					Solution:   "// Replace: parseInt(value)\n// With: parseInt(value, 10) for decimal numbers",
				},
			},
		},
	}
}
