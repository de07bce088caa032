package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/routedir-dev/routedir/internal/config"
	"github.com/routedir-dev/routedir/internal/errors"
	"github.com/routedir-dev/routedir/pkg/routes"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// verbose is the persistent --verbose flag, also switched on by the
// verbose setting in routedir.yaml.
var verbose bool

const banner = `
  ┬─┐┌─┐┬ ┬┌┬┐┌─┐┌┬┐┬┬─┐
  ├┬┘│ ││ │ │ ├┤  │││├┬┘
  ┴└─└─┘└─┘ ┴ └─┘─┴┘┴┴└─
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "routedir",
		Short: "File-based route registration for Go HTTP frameworks",
		Long: `Routedir turns a directory of route files into framework registrations.

Files named by convention compile to route patterns:

  routes/route.ts                 → /
  routes/users/route.ts           → /users
  routes/users.[id].route.ts      → /users/:id
  routes/docs/[...path].route.ts  → /docs/*
  routes/admin/middleware.ts      → middleware for /admin and below

Commands scan the directory given as an argument, or the one configured
in routedir.yaml.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	// Add commands
	rootCmd.AddCommand(
		listCmd(),
		checkCmd(),
		openapiCmd(),
		versionCmd(),
	)

	// Execute
	if err := rootCmd.Execute(); err != nil {
		errors.PrintError(err)
		os.Exit(1)
	}
}

// printBanner prints the routedir ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(format string, args ...any) {
	fmt.Printf("\033[33m⚠\033[0m %s\n", fmt.Sprintf(format, args...))
}

// errorMsg prints an error message.
func errorMsg(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "\033[31m✗\033[0m %s\n", fmt.Sprintf(format, args...))
}

// scanTarget is the resolved input of a scanning command.
type scanTarget struct {
	dir        string
	extensions []string
	verbose    bool

	// cfg is the loaded routedir.yaml, nil when none was found.
	cfg *config.Config
}

// resolveTarget determines what a command scans. An explicit directory
// argument wins over routedir.yaml, which wins over the defaults. A
// missing config file is fine; a broken one is not.
func resolveTarget(args, exts []string) (scanTarget, error) {
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		if ce, ok := err.(*errors.CLIError); !ok || ce.Code != "E061" {
			return scanTarget{}, err
		}
		cfg = nil
	}

	target := scanTarget{cfg: cfg}
	target.verbose = verbose || (cfg != nil && cfg.Verbose)

	switch {
	case len(args) > 0:
		target.dir = args[0]
	case cfg != nil:
		target.dir = cfg.RoutesPath()
	default:
		target.dir = config.DefaultRoutesDir
	}

	target.extensions = exts
	if len(target.extensions) == 0 && cfg != nil {
		target.extensions = cfg.Routes.Extensions
	}

	return target, nil
}

// scanRoutes scans dir and returns descriptors in registration order.
func scanRoutes(dir string, extensions []string) ([]*routes.Descriptor, error) {
	if _, err := os.Stat(dir); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E001").
				WithDetail("Looked for: " + dir).
				WithSuggestion("Pass the routes directory as an argument or set routes.dir in routedir.yaml")
		}
		return nil, errors.FromError(err, "E002")
	}

	var opts []routes.ScannerOption
	if len(extensions) > 0 {
		opts = append(opts, routes.WithExtensions(extensions...))
	}

	descriptors, err := routes.NewScanner(dir, opts...).Scan()
	if err != nil {
		return nil, errors.FromError(err, "E002")
	}
	return descriptors, nil
}
