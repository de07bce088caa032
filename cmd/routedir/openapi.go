package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/routedir-dev/routedir/internal/config"
	"github.com/routedir-dev/routedir/internal/errors"
	"github.com/routedir-dev/routedir/pkg/routes"
)

func openapiCmd() *cobra.Command {
	var (
		exts        []string
		output      string
		title       string
		description string
		apiVersion  string
	)

	cmd := &cobra.Command{
		Use:   "openapi [dir]",
		Short: "Generate an OpenAPI 3.0 document",
		Long: `Generate an OpenAPI 3.0 document from a routes directory.

Route files become path items with their dynamic tokens as path
parameters; a catch-all becomes a single parameter covering the rest
of the path. Middleware files are skipped. Without handler information
every path carries a stub GET operation.

Output is deterministic: scanning an unchanged directory twice
produces identical documents.

Examples:
  routedir openapi                       # Write openapi.json
  routedir openapi -o docs/api.json      # Custom output path
  routedir openapi --title "My API"      # Custom document title
  routedir openapi --api-version 2.0.0   # Custom document version`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOpenAPI(args, exts, output, title, description, apiVersion)
		},
	}

	cmd.Flags().StringSliceVar(&exts, "ext", nil, "Route file extensions (default: .ts, .js)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: openapi.json)")
	cmd.Flags().StringVar(&title, "title", "", "Document title (default: project name)")
	cmd.Flags().StringVar(&description, "description", "", "Document description")
	cmd.Flags().StringVar(&apiVersion, "api-version", "", "Document version (default: 1.0.0)")

	return cmd
}

func runOpenAPI(args, exts []string, output, title, description, apiVersion string) error {
	target, err := resolveTarget(args, exts)
	if err != nil {
		return err
	}

	// Flags win over routedir.yaml, which wins over the defaults.
	if target.cfg != nil {
		if output == "" {
			output = target.cfg.OpenAPIOutputPath()
		}
		if title == "" {
			title = target.cfg.OpenAPI.Title
		}
		if description == "" {
			description = target.cfg.OpenAPI.Description
		}
		if apiVersion == "" {
			apiVersion = target.cfg.OpenAPI.Version
		}
	}
	if output == "" {
		output = config.DefaultOpenAPIOutput
	}

	info("Scanning %s...", target.dir)

	descriptors, err := scanRoutes(target.dir, target.extensions)
	if err != nil {
		return err
	}

	if target.verbose {
		for _, d := range descriptors {
			if !d.IsMiddleware {
				info("%s ← %s", d.Path, d.FilePath)
			}
		}
	}

	gen := routes.NewOpenAPIGenerator(descriptors, routes.OpenAPIInfo{
		Title:       title,
		Description: description,
		Version:     apiVersion,
	})

	doc, err := gen.Generate()
	if err != nil {
		return err
	}

	if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.FromError(err, "E080")
		}
	}
	if err := os.WriteFile(output, doc, 0644); err != nil {
		return errors.FromError(err, "E080")
	}

	success("Generated %s", output)
	return nil
}
