package exporter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/michael-k-goff/lcoe-graphic/internal/dataset"
)

// WriteOptions configures CSV writing behavior
type WriteOptions struct {
	Headers   []string
	Records   [][]string
	BOMPrefix bool // Add UTF-8 BOM for Excel compatibility
}

// WriteCSV writes data to a CSV file with the given options
func WriteCSV(filePath string, options WriteOptions) error {
	slog.Debug("writing CSV file",
		slog.String("path", filePath),
		slog.Int("record_count", len(options.Records)))

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("create CSV file: %w", err)
	}
	defer file.Close()

	// BOM helps Excel recognize UTF-8.
	if options.BOMPrefix {
		if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return fmt.Errorf("write BOM: %w", err)
		}
	}

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if len(options.Headers) > 0 {
		if err := writer.Write(options.Headers); err != nil {
			return fmt.Errorf("write CSV header: %w", err)
		}
	}

	for i, record := range options.Records {
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write CSV record %d: %w", i, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteDataset exports the processed observations as CSV, using the same
// column names as the source file.
func WriteDataset(rows []dataset.Observation, outputPath string) error {
	if len(rows) == 0 {
		return fmt.Errorf("no observations to export")
	}

	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		records = append(records, []string{
			row.Category,
			row.Type,
			formatFloat(row.LCOE),
			formatFloat(row.Low),
			formatFloat(row.High),
		})
	}

	return WriteCSV(outputPath, WriteOptions{
		Headers: []string{
			dataset.ColCategory,
			dataset.ColType,
			dataset.ColLCOE,
			dataset.ColLow,
			dataset.ColHigh,
		},
		Records: records,
	})
}
