package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/routedir-dev/routedir/internal/errors"
	"github.com/routedir-dev/routedir/internal/logging"
	"github.com/routedir-dev/routedir/pkg/routes"
	"github.com/routedir-dev/routedir/pkg/source/jsmodule"
)

func checkCmd() *cobra.Command {
	var (
		exts    []string
		resolve bool
	)

	cmd := &cobra.Command{
		Use:   "check [dir]",
		Short: "Check route files for problems",
		Long: `Scan a routes directory and report suspicious patterns.

Checks:
  duplicate paths   multiple files compiling to the same pattern (E040)
  empty parameters  dynamic tokens with no name, like [].route.ts (E041)
  double slashes    the // a root-level catch-all leaves behind (E042)

With --resolve each matched file is also evaluated as a JavaScript
module, surfacing syntax errors (E021) and files exporting nothing
usable (E022).

The command exits non-zero when any check fails.

Examples:
  routedir check
  routedir check app/routes
  routedir check --resolve`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(args, exts, resolve)
		},
	}

	cmd.Flags().StringSliceVar(&exts, "ext", nil, "Route file extensions (default: .ts, .js)")
	cmd.Flags().BoolVar(&resolve, "resolve", false, "Evaluate route files as JavaScript modules")

	return cmd
}

func runCheck(args, exts []string, resolve bool) error {
	target, err := resolveTarget(args, exts)
	if err != nil {
		return err
	}

	info("Checking %s...", target.dir)

	descriptors, err := scanRoutes(target.dir, target.extensions)
	if err != nil {
		return err
	}

	if target.verbose {
		for _, d := range descriptors {
			info("%-10s %s ← %s", d.Kind(), d.Path, d.FilePath)
		}
	}

	failures := 0

	if err := routes.Lint(descriptors); err != nil {
		multi, ok := err.(*routes.MultiLintError)
		if !ok {
			return err
		}
		for _, issue := range multi.Issues {
			errorMsg("%s: %s", lintCode(issue.Type), issue.Message)
			for _, file := range issue.Files {
				info("%s → %s", file, issue.Path)
			}
			failures++
		}
	}

	if resolve {
		failures += resolveModules(descriptors, newCheckLogger(target))
	}

	if failures > 0 {
		return errors.Newf(errors.CategoryLint, "%d problems found in %s", failures, target.dir)
	}

	success("%d files checked, no problems found", len(descriptors))
	return nil
}

// resolveModules evaluates every matched file and reports script
// failures in full, context lines included. Returns the number of
// failing files. Files exporting nothing usable only warn: the factory
// skips them rather than failing.
func resolveModules(descriptors []*routes.Descriptor, logger *slog.Logger) int {
	src := jsmodule.New(jsmodule.WithLogger(logger))

	failures := 0
	for _, d := range descriptors {
		handlers, err := src.Resolve(d.FilePath)
		if err != nil {
			errors.PrintError(errors.New("E021").
				WithLocationFromError(d.FilePath, err).
				Wrap(err))
			failures++
			continue
		}
		if len(handlers) == 0 {
			warn("E022: %s exports no handlers", d.FilePath)
		}
	}
	return failures
}

// lintCode maps a lint issue type to its error code.
func lintCode(t routes.LintIssueType) string {
	switch t {
	case routes.IssueEmptyParam:
		return "E041"
	case routes.IssueDoubleSlash:
		return "E042"
	default:
		return "E040"
	}
}

// newCheckLogger builds the logger script evaluation logs to,
// configured by routedir.yaml when present. Verbose mode forces debug.
func newCheckLogger(target scanTarget) *slog.Logger {
	level := "info"
	format := logging.FormatAuto
	if target.cfg != nil {
		level = target.cfg.Log.Level
		format = target.cfg.Log.Format
	}
	if target.verbose {
		level = "debug"
	}
	return logging.New(os.Stderr, logging.ParseLevel(level), format)
}
