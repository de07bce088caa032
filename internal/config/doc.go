// Package config provides configuration parsing for routedir projects.
//
// The configuration is stored in routedir.yaml at the project root.
// This package handles loading, saving, and validating configuration;
// CLI commands fall back to it when no directory argument is given.
//
// # Configuration File Structure
//
//	name: my-api
//
//	routes:
//	  dir: routes
//	  extensions: [".ts", ".js"]
//
//	openapi:
//	  title: My API
//	  version: 1.0.0
//	  output: openapi.json
//
//	log:
//	  level: info
//	  format: auto
//
//	verbose: false
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Routes:", cfg.RoutesPath())
package config
