// Command lcoe-report builds the levelized-cost-of-electricity comparison
// chart from a CSV of LCOE estimates.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/michael-k-goff/lcoe-graphic/internal/chart"
	"github.com/michael-k-goff/lcoe-graphic/internal/config"
	"github.com/michael-k-goff/lcoe-graphic/internal/dataset"
	"github.com/michael-k-goff/lcoe-graphic/internal/exporter"
	"github.com/michael-k-goff/lcoe-graphic/internal/infrastructure"
	"github.com/michael-k-goff/lcoe-graphic/internal/lcoe"
)

func main() {
	configFile := flag.String("config", "lcoe.yml", "path to optional YAML config file")
	dataFile := flag.String("data", "", "input CSV of LCOE estimates (overrides config)")
	logoFile := flag.String("logo", "", "logo PNG to overlay on the chart (overrides config)")
	outFile := flag.String("out", "", "output SVG path (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if *dataFile != "" {
		cfg.Input.DataFile = *dataFile
	}
	if *logoFile != "" {
		cfg.Input.LogoFile = *logoFile
	}
	if *outFile != "" {
		cfg.Output.ChartFile = *outFile
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	logger := infrastructure.NewLogger(cfg.Logging, os.Stdout)
	slog.SetDefault(logger)

	ctx := context.Background()

	logger.Info("Loading LCOE dataset", "path", cfg.Input.DataFile)
	rows, err := dataset.Load(cfg.Input.DataFile)
	if err != nil {
		logger.Error("Failed to load dataset", "error", err)
		os.Exit(1)
	}
	if len(rows) == 0 {
		logger.Error("No observations found in dataset",
			"path", cfg.Input.DataFile,
			"hint", "Check that the CSV has data rows below the header")
		os.Exit(1)
	}
	logger.Info("Loaded LCOE dataset", "observations", len(rows))

	calc := lcoe.NewCalculator(logger)
	result, err := calc.Run(ctx, rows)
	if err != nil {
		logger.Error("Failed to process dataset", "error", err)
		os.Exit(1)
	}

	opts := chart.DefaultOptions()
	opts.LogoFile = cfg.Input.LogoFile
	renderer := chart.NewRenderer(opts, logger)

	logger.Info("Rendering chart", "path", cfg.Output.ChartFile)
	if err := renderer.RenderToFile(result.Series, cfg.Output.ChartFile); err != nil {
		logger.Error("Failed to render chart", "error", err)
		os.Exit(1)
	}

	if !cfg.Output.SkipDataset {
		path := cfg.DatasetCSV()
		logger.Info("Exporting processed dataset", "path", path)
		if err := exporter.WriteDataset(result.Rows, path); err != nil {
			logger.Error("Failed to export processed dataset", "error", err)
			os.Exit(1)
		}
	}

	if !cfg.Output.SkipWorkbook {
		path := cfg.SummaryWorkbook()
		logger.Info("Exporting summary workbook", "path", path)
		if err := exporter.WriteSummaryWorkbook(result.Series, path); err != nil {
			logger.Error("Failed to export summary workbook", "error", err)
			os.Exit(1)
		}
	}

	logger.Info("Report generated successfully",
		"chart", cfg.Output.ChartFile,
		"observations", len(result.Rows),
		"categories", len(result.Series))

	printSummary(result.Series)
}

// printSummary prints the ranked category table to stdout.
func printSummary(series []lcoe.CategorySeries) {
	if len(series) == 0 {
		return
	}

	fmt.Println("\n=== LCOE BY CATEGORY (MOST TO LEAST EXPENSIVE) ===")
	fmt.Println("Rank | Category           | Studies | Mean ¢/kWh | Min   | Max")
	fmt.Println("-----|--------------------|---------|------------|-------|------")

	for i, s := range series {
		name := strings.ReplaceAll(s.Category, "\n", " ")
		fmt.Printf("%4d | %-18s | %7d | %10.1f | %5.1f | %5.1f\n",
			i+1, name, s.Count, s.Mean, s.Min(), s.Max())
	}
}
