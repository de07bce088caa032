package errors

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Category represents the type of error.
type Category string

const (
	CategoryScan   Category = "scan"
	CategorySource Category = "source"
	CategoryLint   Category = "lint"
	CategoryConfig Category = "config"
	CategoryCLI    Category = "cli"
)

// Location represents a position in a route file.
type Location struct {
	File   string
	Line   int
	Column int
}

// String returns the location as a formatted string.
func (l *Location) String() string {
	if l == nil {
		return ""
	}
	if l.Column > 0 {
		return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
	}
	if l.Line > 0 {
		return fmt.Sprintf("%s:%d", l.File, l.Line)
	}
	return l.File
}

// CLIError is a structured error with route-file location, suggestions,
// and documentation links, rendered by the CLI commands.
type CLIError struct {
	// Code is a unique error identifier (e.g., "E001").
	Code string

	// Category is the error type (scan, source, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Location is the route-file position where the error occurred.
	Location *Location

	// Context contains surrounding route-file lines.
	Context []string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Example is a filename or snippet showing the correct approach.
	Example string

	// DocURL is a link to documentation about this error.
	DocURL string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *CLIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *CLIError) Unwrap() error {
	return e.Wrapped
}

// WithLocation adds a route-file position to the error.
func (e *CLIError) WithLocation(file string, line, column int) *CLIError {
	e.Location = &Location{File: file, Line: line, Column: column}
	e.Context = readContextLines(file, line, 5)
	return e
}

// WithFile adds a file to the error without a line position.
func (e *CLIError) WithFile(file string) *CLIError {
	e.Location = &Location{File: file}
	return e
}

// WithLocationFromError extracts a position from err's text. Two forms
// are recognized: "file:line:col: message" (compiler style) and
// "file: Line N:M message" (the script engine's syntax errors).
func (e *CLIError) WithLocationFromError(file string, err error) *CLIError {
	if err == nil {
		return e
	}
	msg := err.Error()

	if idx := strings.Index(msg, "Line "); idx != -1 {
		rest := msg[idx+len("Line "):]
		if line, col, ok := parseLineCol(rest); ok {
			return e.WithLocation(file, line, col)
		}
	}

	parts := strings.SplitN(msg, ":", 4)
	if len(parts) >= 3 {
		line, errLine := strconv.Atoi(strings.TrimSpace(parts[1]))
		col, errCol := strconv.Atoi(strings.TrimSpace(parts[2]))
		if errLine == nil && line > 0 {
			if errCol != nil {
				col = 0
			}
			return e.WithLocation(file, line, col)
		}
	}

	return e.WithFile(file)
}

// parseLineCol parses a leading "N:M" pair from s.
func parseLineCol(s string) (line, col int, ok bool) {
	end := strings.IndexFunc(s, func(r rune) bool {
		return r != ':' && (r < '0' || r > '9')
	})
	if end == -1 {
		end = len(s)
	}
	pair := strings.SplitN(s[:end], ":", 2)
	line, err := strconv.Atoi(pair[0])
	if err != nil || line <= 0 {
		return 0, 0, false
	}
	if len(pair) == 2 {
		col, _ = strconv.Atoi(pair[1])
	}
	return line, col, true
}

// WithSuggestion adds a fix suggestion to the error.
func (e *CLIError) WithSuggestion(s string) *CLIError {
	e.Suggestion = s
	return e
}

// WithExample adds an example to the error.
func (e *CLIError) WithExample(ex string) *CLIError {
	e.Example = ex
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *CLIError) WithDetail(d string) *CLIError {
	e.Detail = d
	return e
}

// WithContext adds custom context lines to the error.
func (e *CLIError) WithContext(lines []string) *CLIError {
	e.Context = lines
	return e
}

// Wrap wraps another error.
func (e *CLIError) Wrap(err error) *CLIError {
	e.Wrapped = err
	return e
}

// readContextLines reads lines around the specified line number from a file.
func readContextLines(filename string, targetLine, contextSize int) []string {
	if targetLine <= 0 {
		return nil
	}
	file, err := os.Open(filename)
	if err != nil {
		return nil
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	lineNum := 0
	startLine := targetLine - contextSize/2
	endLine := targetLine + contextSize/2

	for scanner.Scan() {
		lineNum++
		if lineNum >= startLine && lineNum <= endLine {
			lines = append(lines, scanner.Text())
		}
		if lineNum > endLine {
			break
		}
	}

	return lines
}

// New creates a CLIError from a registered error code.
func New(code string) *CLIError {
	template, ok := registry[code]
	if !ok {
		return &CLIError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &CLIError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
		DocURL:   template.DocURL,
	}
}

// Newf creates a new CLIError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *CLIError {
	return &CLIError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a CLIError.
func FromError(err error, code string) *CLIError {
	if err == nil {
		return nil
	}
	if ce, ok := err.(*CLIError); ok {
		return ce
	}
	return New(code).Wrap(err)
}
