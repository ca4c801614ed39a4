package exporter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/michael-k-goff/lcoe-graphic/internal/lcoe"
)

const summarySheet = "Category Summary"

// WriteSummaryWorkbook exports per-category statistics to an Excel
// workbook. Series are written in their ranked order.
func WriteSummaryWorkbook(series []lcoe.CategorySeries, outputPath string) error {
	if len(series) == 0 {
		return fmt.Errorf("no categories to export")
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", summarySheet)

	headers := []string{
		"Rank", "Category", "Observations",
		"Mean (¢/kWh)", "Min (¢/kWh)", "Max (¢/kWh)",
	}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(summarySheet, cell, header); err != nil {
			return fmt.Errorf("write header %q: %w", header, err)
		}
		if err := f.SetColWidth(summarySheet, cell[:1], cell[:1], 16); err != nil {
			return fmt.Errorf("set column width: %w", err)
		}
	}

	for i, s := range series {
		row := i + 2
		// Axis labels embed newlines; flatten for the spreadsheet.
		name := flattenCategory(s.Category)

		cells := []struct {
			col   string
			value interface{}
		}{
			{"A", i + 1},
			{"B", name},
			{"C", s.Count},
			{"D", s.Mean},
			{"E", s.Min()},
			{"F", s.Max()},
		}
		for _, c := range cells {
			cell := fmt.Sprintf("%s%d", c.col, row)
			if err := f.SetCellValue(summarySheet, cell, c.value); err != nil {
				return fmt.Errorf("write cell %s: %w", cell, err)
			}
		}
	}

	if err := f.SaveAs(outputPath); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}

	return nil
}

func flattenCategory(name string) string {
	return strings.ReplaceAll(name, "\n", " ")
}
