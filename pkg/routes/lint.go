package routes

import (
	"fmt"
	"strings"
)

// Linter checks a scanned descriptor set for suspicious patterns. It never
// rewrites anything and neither Scan nor the factory runs it: duplicate
// paths stay legal at registration time and land in the host framework
// as-is. Lint exists for CLI checks and build pipelines.
type Linter struct {
	descriptors []*Descriptor
	issues      []LintIssue
}

// LintIssue represents one finding against a descriptor set.
type LintIssue struct {
	// Type is the issue category
	Type LintIssueType

	// Message is the human-readable description
	Message string

	// Files are the source files involved
	Files []string

	// Path is the compiled pattern the finding concerns
	Path string

	// Details contains additional issue-specific information
	Details string
}

func (e LintIssue) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// LintIssueType categorizes lint findings.
type LintIssueType string

const (
	// IssueDuplicatePath indicates multiple files compile to the same
	// pattern within the same class.
	// Example: payments/route.ts and payments.route.ts both → /payments
	IssueDuplicatePath LintIssueType = "DUPLICATE_PATH"

	// IssueEmptyParam indicates a dynamic or catch-all token with an
	// empty parameter name.
	// Example: users.[].route.ts
	IssueEmptyParam LintIssueType = "EMPTY_PARAM"

	// IssueDoubleSlash indicates a pattern carrying the preserved double
	// slash a root-level catch-all produces.
	// Example: [...all].route.ts → //*
	IssueDoubleSlash LintIssueType = "DOUBLE_SLASH"
)

// MultiLintError wraps multiple lint findings.
type MultiLintError struct {
	Issues []LintIssue
}

func (e *MultiLintError) Error() string {
	if len(e.Issues) == 0 {
		return "no lint issues"
	}
	if len(e.Issues) == 1 {
		return e.Issues[0].Error()
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d route lint issues:\n", len(e.Issues)))
	for i, issue := range e.Issues {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, issue.Error()))
	}
	return sb.String()
}

// NewLinter creates a linter over a scanned descriptor set.
func NewLinter(descriptors []*Descriptor) *Linter {
	return &Linter{
		descriptors: descriptors,
	}
}

// Lint checks the descriptor set. Returns nil when clean, or a
// MultiLintError carrying every finding.
func (l *Linter) Lint() error {
	l.issues = nil

	l.lintDuplicatePaths()
	l.lintParams()
	l.lintDoubleSlashes()

	if len(l.issues) > 0 {
		return &MultiLintError{Issues: l.issues}
	}
	return nil
}

// lintDuplicatePaths finds files compiling to the same pattern and class.
func (l *Linter) lintDuplicatePaths() {
	byKey := make(map[string][]*Descriptor)
	var order []string
	for _, d := range l.descriptors {
		key := d.Kind() + " " + d.Path
		if _, seen := byKey[key]; !seen {
			order = append(order, key)
		}
		byKey[key] = append(byKey[key], d)
	}

	for _, key := range order {
		group := byKey[key]
		if len(group) <= 1 {
			continue
		}

		files := make([]string, len(group))
		for i, d := range group {
			files[i] = d.FilePath
		}

		l.issues = append(l.issues, LintIssue{
			Type:    IssueDuplicatePath,
			Message: fmt.Sprintf("%d files compile to the same %s %s", len(group), group[0].Kind(), group[0].Path),
			Path:    group[0].Path,
			Files:   files,
			Details: fmt.Sprintf("Files: %s", strings.Join(files, ", ")),
		})
	}
}

// lintParams finds dynamic tokens with empty parameter names.
func (l *Linter) lintParams() {
	for _, d := range l.descriptors {
		for _, param := range d.Params {
			if param != "" {
				continue
			}
			l.issues = append(l.issues, LintIssue{
				Type:    IssueEmptyParam,
				Message: fmt.Sprintf("empty parameter name in %s", d.Path),
				Path:    d.Path,
				Files:   []string{d.FilePath},
			})
		}
	}
}

// lintDoubleSlashes flags the preserved root-catch-all anomaly.
func (l *Linter) lintDoubleSlashes() {
	for _, d := range l.descriptors {
		if !strings.Contains(d.Path, "//") {
			continue
		}
		l.issues = append(l.issues, LintIssue{
			Type:    IssueDoubleSlash,
			Message: fmt.Sprintf("pattern %s keeps a double slash", d.Path),
			Path:    d.Path,
			Files:   []string{d.FilePath},
			Details: "a root-level catch-all compiles to //*; some frameworks will not match it",
		})
	}
}

// Lint checks a descriptor set in one call. Returns nil when clean, or a
// MultiLintError with every finding.
func Lint(descriptors []*Descriptor) error {
	return NewLinter(descriptors).Lint()
}

// FormatLintIssue formats a finding for display:
//
//	WARNING: 2 files compile to the same route /payments
//	  app/routes/payments/route.ts → /payments
//	  app/routes/payments.route.ts → /payments
func FormatLintIssue(issue LintIssue) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("WARNING: %s\n", issue.Message))

	for _, file := range issue.Files {
		sb.WriteString(fmt.Sprintf("  %s → %s\n", file, issue.Path))
	}

	if issue.Details != "" {
		sb.WriteString(fmt.Sprintf("  Details: %s\n", issue.Details))
	}

	return sb.String()
}
