package output

// LintOutput is the JSON document written by the lint command.
type LintOutput struct {
	Summary LintSummary      `json:"summary"`
	Files   []LintFileResult `json:"files"`
}

// LintSummary totals a lint run.
type LintSummary struct {
	FilesAnalyzed int    `json:"files_analyzed"`
	FilesCached   int    `json:"files_cached"`
	TotalIssues   int    `json:"total_issues"`
	Errors        int    `json:"errors"`
	Warnings      int    `json:"warnings"`
	Info          int    `json:"info"`
	Hints         int    `json:"hints"`
	RunID         string `json:"run_id,omitempty"`
	DurationMS    int64  `json:"duration_ms"`
}

// LintFileResult lists the diagnostics of one file.
type LintFileResult struct {
	Path        string           `json:"path"`
	Diagnostics []LintDiagnostic `json:"diagnostics"`
}

// LintDiagnostic is one finding with its resolved position.
type LintDiagnostic struct {
	RuleID           string `json:"rule_id"`
	Severity         string `json:"severity"`
	Message          string `json:"message"`
	Line             int    `json:"line"`
	Column           int    `json:"column"`
	Offset           int    `json:"offset"`
	EndOffset        int    `json:"end_offset"`
	DocumentationURL string `json:"documentation_url,omitempty"`
}
