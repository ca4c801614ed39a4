package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "lcoe.csv", cfg.Input.DataFile)
	assert.Equal(t, "logo.png", cfg.Input.LogoFile)
	assert.Equal(t, "lcoe.svg", cfg.Output.ChartFile)
	assert.Equal(t, "reports", cfg.Output.ReportsDir)
	assert.False(t, cfg.Output.SkipDataset)
	assert.False(t, cfg.Output.SkipWorkbook)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "lcoe.yml")

	content := `
input:
  data_file: data/estimates.csv
output:
  chart_file: out/chart.svg
  reports_dir: out
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0644))

	cfg, err := Load(configFile)
	require.NoError(t, err)

	assert.Equal(t, "data/estimates.csv", cfg.Input.DataFile)
	assert.Equal(t, "out/chart.svg", cfg.Output.ChartFile)
	assert.Equal(t, "out", cfg.Output.ReportsDir)
	assert.Equal(t, "debug", cfg.Logging.Level)
	// Unset fields keep their defaults.
	assert.Equal(t, "logo.png", cfg.Input.LogoFile)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestLoadFileOverridesEveryDefault(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "lcoe.yml")

	content := `
input:
  data_file: custom/data.csv
  logo_file: custom/logo.png
output:
  chart_file: custom/chart.svg
  reports_dir: custom
  skip_dataset: true
  skip_workbook: true
logging:
  level: warn
  format: json
`
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0644))

	cfg, err := Load(configFile)
	require.NoError(t, err)

	want := &Config{
		Input: InputConfig{
			DataFile: "custom/data.csv",
			LogoFile: "custom/logo.png",
		},
		Output: OutputConfig{
			ChartFile:    "custom/chart.svg",
			ReportsDir:   "custom",
			SkipDataset:  true,
			SkipWorkbook: true,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "json",
		},
	}
	assert.Equal(t, want, cfg)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "lcoe.yml")
	require.NoError(t, os.WriteFile(configFile, []byte("logging:\n  level: debug\n"), 0644))

	t.Setenv("LCOE_LOGGING_LEVEL", "warn")
	t.Setenv("LCOE_OUTPUT_CHART_FILE", "env.svg")

	cfg, err := Load(configFile)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "env.svg", cfg.Output.ChartFile)
}

func TestLoadMissingFileIgnored(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yml"))
	require.NoError(t, err)
	assert.Equal(t, "lcoe.csv", cfg.Input.DataFile)
}

func TestLoadDefersValidation(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "lcoe.yml")
	require.NoError(t, os.WriteFile(configFile, []byte("output:\n  chart_file: chart.png\n"), 0644))

	// A value that flags may still override loads cleanly; Validate is
	// the caller's last step.
	cfg, err := Load(configFile)
	require.NoError(t, err)
	assert.Error(t, cfg.Validate())

	cfg.Output.ChartFile = "chart.svg"
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid defaults",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "empty data file",
			mutate:  func(c *Config) { c.Input.DataFile = "" },
			wantErr: true,
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: true,
		},
		{
			name:    "bad log format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: true,
		},
		{
			name:    "chart file without svg extension",
			mutate:  func(c *Config) { c.Output.ChartFile = "lcoe.png" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load("")
			require.NoError(t, err)
			tt.mutate(cfg)

			err = cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestReportPaths(t *testing.T) {
	cfg := &Config{Output: OutputConfig{ReportsDir: "out"}}
	assert.Equal(t, filepath.Join("out", "lcoe_processed.csv"), cfg.DatasetCSV())
	assert.Equal(t, filepath.Join("out", "lcoe_summary.xlsx"), cfg.SummaryWorkbook())
}
