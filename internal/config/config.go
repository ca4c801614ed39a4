package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Input   InputConfig   `yaml:"input" envconfig:"INPUT"`
	Output  OutputConfig  `yaml:"output" envconfig:"OUTPUT"`
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
}

// InputConfig contains the source files for the report
type InputConfig struct {
	DataFile string `yaml:"data_file" envconfig:"DATA_FILE" validate:"required"`
	LogoFile string `yaml:"logo_file" envconfig:"LOGO_FILE"`
}

// OutputConfig contains the report artifacts to produce
type OutputConfig struct {
	ChartFile    string `yaml:"chart_file" envconfig:"CHART_FILE" validate:"required"`
	ReportsDir   string `yaml:"reports_dir" envconfig:"REPORTS_DIR"`
	SkipDataset  bool   `yaml:"skip_dataset" envconfig:"SKIP_DATASET"`
	SkipWorkbook bool   `yaml:"skip_workbook" envconfig:"SKIP_WORKBOOK"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" envconfig:"FORMAT" validate:"oneof=text json"`
}

// Default returns the configuration that reproduces the original
// fixed-path behavior when nothing else is set.
func Default() Config {
	return Config{
		Input: InputConfig{
			DataFile: "lcoe.csv",
			LogoFile: "logo.png",
		},
		Output: OutputConfig{
			ChartFile:  "lcoe.svg",
			ReportsDir: "reports",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load resolves configuration in three layers: code defaults, an
// optional YAML file unmarshaled over them, and LCOE_-prefixed
// environment variables on top. Defaults live in Default rather than in
// envconfig tags: envconfig applies a default tag whenever the env var
// is unset, which would clobber the file layer. Load does not validate;
// callers run Validate after applying any overrides of their own.
func Load(configFile string) (*Config, error) {
	cfg := Default()

	if configFile != "" {
		if _, err := os.Stat(configFile); err == nil {
			data, err := os.ReadFile(configFile)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file %s: %w", configFile, err)
			}
		}
	}

	if err := envconfig.Process("LCOE", &cfg); err != nil {
		return nil, fmt.Errorf("load config from env: %w", err)
	}

	return &cfg, nil
}

// Validate checks the configuration for invalid values
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	if filepath.Ext(c.Output.ChartFile) != ".svg" {
		return fmt.Errorf("validate config: chart file %q must have a .svg extension", c.Output.ChartFile)
	}

	return nil
}

// DatasetCSV returns the path for the processed dataset export
func (c *Config) DatasetCSV() string {
	return filepath.Join(c.Output.ReportsDir, "lcoe_processed.csv")
}

// SummaryWorkbook returns the path for the category summary workbook
func (c *Config) SummaryWorkbook() string {
	return filepath.Join(c.Output.ReportsDir, "lcoe_summary.xlsx")
}
