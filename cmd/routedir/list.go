package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/routedir-dev/routedir/pkg/routes"
)

func listCmd() *cobra.Command {
	var (
		exts   []string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "list [dir]",
		Short: "List compiled routes",
		Long: `Scan a routes directory and print every compiled route and middleware
mount in registration order.

Registration order is middleware first, then routes, deeper paths
before shallower ones. This is the order CreateRouter registers
descriptors in, so the listing doubles as a registration preview.

Examples:
  routedir list                  # Scan the configured routes directory
  routedir list app/routes       # Scan an explicit directory
  routedir list --ext .mjs       # Accept .mjs route files
  routedir list --json           # Machine-readable output`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(args, exts, asJSON)
		},
	}

	cmd.Flags().StringSliceVar(&exts, "ext", nil, "Route file extensions (default: .ts, .js)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	return cmd
}

func runList(args, exts []string, asJSON bool) error {
	target, err := resolveTarget(args, exts)
	if err != nil {
		return err
	}

	descriptors, err := scanRoutes(target.dir, target.extensions)
	if err != nil {
		return err
	}

	if asJSON {
		return printListJSON(descriptors)
	}

	if len(descriptors) == 0 {
		warn("No route files found in %s", target.dir)
		return nil
	}

	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	if target.verbose {
		fmt.Fprintln(w, "  KIND\tPATH\tPARAMS\tFILE")
		for _, d := range descriptors {
			fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n", d.Kind(), d.Path, strings.Join(d.Params, ", "), d.FilePath)
		}
	} else {
		fmt.Fprintln(w, "  KIND\tPATH\tFILE")
		for _, d := range descriptors {
			fmt.Fprintf(w, "  %s\t%s\t%s\n", d.Kind(), d.Path, d.FilePath)
		}
	}
	w.Flush()
	fmt.Println()

	middleware := 0
	for _, d := range descriptors {
		if d.IsMiddleware {
			middleware++
		}
	}
	success("%d registrations (%d middleware, %d routes)",
		len(descriptors), middleware, len(descriptors)-middleware)

	return nil
}

// listEntry is one descriptor in --json output.
type listEntry struct {
	Kind     string   `json:"kind"`
	Path     string   `json:"path"`
	File     string   `json:"file"`
	Params   []string `json:"params,omitempty"`
	CatchAll bool     `json:"catchAll,omitempty"`
}

func printListJSON(descriptors []*routes.Descriptor) error {
	entries := make([]listEntry, len(descriptors))
	for i, d := range descriptors {
		entries[i] = listEntry{
			Kind:     d.Kind(),
			Path:     d.Path,
			File:     d.FilePath,
			Params:   d.Params,
			CatchAll: d.IsCatchAll,
		}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
