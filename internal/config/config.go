package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/routedir-dev/routedir/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "routedir.yaml"

	// DefaultRoutesDir is the default routes directory.
	DefaultRoutesDir = "routes"

	// DefaultOpenAPIOutput is the default OpenAPI output file.
	DefaultOpenAPIOutput = "openapi.json"

	// DefaultOpenAPIVersion is the default API version for generated
	// documents.
	DefaultOpenAPIVersion = "1.0.0"
)

// DefaultExtensions are the route-file extensions scanned when the
// config does not name any.
var DefaultExtensions = []string{".ts", ".js"}

// Config represents the complete routedir.yaml configuration.
type Config struct {
	// Name is the project name, used as the default OpenAPI title.
	Name string `yaml:"name,omitempty"`

	// Routes configures the scan.
	Routes RoutesConfig `yaml:"routes,omitempty"`

	// OpenAPI configures document generation.
	OpenAPI OpenAPIConfig `yaml:"openapi,omitempty"`

	// Log configures CLI logging.
	Log LogConfig `yaml:"log,omitempty"`

	// Verbose enables per-registration output.
	Verbose bool `yaml:"verbose,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// RoutesConfig configures the route-file scan.
type RoutesConfig struct {
	// Dir is the routes directory, relative to the config file.
	Dir string `yaml:"dir,omitempty"`

	// Extensions are the accepted route-file extensions, each with a
	// leading dot. All listed extensions are treated identically.
	Extensions []string `yaml:"extensions,omitempty"`
}

// OpenAPIConfig configures the openapi command.
type OpenAPIConfig struct {
	// Title is the API title (default: project name).
	Title string `yaml:"title,omitempty"`

	// Description is the API description.
	Description string `yaml:"description,omitempty"`

	// Version is the API version.
	Version string `yaml:"version,omitempty"`

	// Output is the output file, relative to the config file.
	Output string `yaml:"output,omitempty"`
}

// LogConfig configures CLI logging.
type LogConfig struct {
	// Level is the minimum level: debug, info, warn, or error.
	Level string `yaml:"level,omitempty"`

	// Format is the output encoding: auto, text, or json.
	Format string `yaml:"format,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Routes: RoutesConfig{
			Dir:        DefaultRoutesDir,
			Extensions: append([]string(nil), DefaultExtensions...),
		},
		OpenAPI: OpenAPIConfig{
			Version: DefaultOpenAPIVersion,
			Output:  DefaultOpenAPIOutput,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "auto",
		},
	}
}

// Load reads configuration from the specified directory.
// It looks for routedir.yaml in the directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E061").
				WithDetail("No " + ConfigFileName + " found in " + filepath.Dir(path)).
				WithSuggestion("Create a " + ConfigFileName + " or pass the routes directory as an argument")
		}
		return nil, errors.New("E060").Wrap(err)
	}

	cfg := New()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E060").
			WithDetail("Failed to parse "+ConfigFileName+": "+err.Error()).
			WithSuggestion("Check that " + ConfigFileName + " is valid YAML").
			Wrap(err)
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.New("E060").Wrap(err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E080").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Routes.Dir == "" {
		c.Routes.Dir = DefaultRoutesDir
	}
	if len(c.Routes.Extensions) == 0 {
		c.Routes.Extensions = append([]string(nil), DefaultExtensions...)
	}
	if c.OpenAPI.Title == "" {
		c.OpenAPI.Title = c.Name
	}
	if c.OpenAPI.Version == "" {
		c.OpenAPI.Version = DefaultOpenAPIVersion
	}
	if c.OpenAPI.Output == "" {
		c.OpenAPI.Output = DefaultOpenAPIOutput
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "auto"
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	for _, ext := range c.Routes.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			return errors.New("E062").
				WithDetail("Invalid extension " + strconv.Quote(ext)).
				WithSuggestion("Write extensions with a leading dot, e.g. \".ts\"")
		}
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.New("E060").
			WithDetail("Invalid log level " + strconv.Quote(c.Log.Level)).
			WithSuggestion("Use one of: debug, info, warn, error")
	}
	switch c.Log.Format {
	case "auto", "text", "json":
	default:
		return errors.New("E060").
			WithDetail("Invalid log format " + strconv.Quote(c.Log.Format)).
			WithSuggestion("Use one of: auto, text, json")
	}
	return nil
}

// RoutesPath returns the absolute path to the routes directory.
func (c *Config) RoutesPath() string {
	path := c.Routes.Dir
	if path == "" {
		path = DefaultRoutesDir
	}
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.Dir(), path)
}

// OpenAPIOutputPath returns the absolute path to the OpenAPI output file.
func (c *Config) OpenAPIOutputPath() string {
	path := c.OpenAPI.Output
	if path == "" {
		path = DefaultOpenAPIOutput
	}
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.Dir(), path)
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}

// FindProjectRoot walks up directories to find the project root.
// Returns the directory containing routedir.yaml, or an error if not found.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("E061").
				WithDetail("No " + ConfigFileName + " found in " + startDir + " or any parent directory").
				WithSuggestion("Create a " + ConfigFileName + " or pass the routes directory as an argument")
		}
		dir = parent
	}
}

// LoadFromWorkingDir loads configuration from the current working directory.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	root, err := FindProjectRoot(wd)
	if err != nil {
		return nil, err
	}

	return Load(root)
}
