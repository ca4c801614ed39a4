package exporter

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/michael-k-goff/lcoe-graphic/internal/lcoe"
)

func TestWriteSummaryWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.xlsx")

	series := []lcoe.CategorySeries{
		{Category: "Oil", Values: []float64{15, 18, 22}, Mean: 18.33, Count: 1},
		{Category: "Offshore\nWind", Values: []float64{6, 8, 11}, Mean: 8.33, Count: 1},
	}

	require.NoError(t, WriteSummaryWorkbook(series, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(summarySheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Rank", rows[0][0])
	assert.Equal(t, "Category", rows[0][1])

	assert.Equal(t, "1", rows[1][0])
	assert.Equal(t, "Oil", rows[1][1])

	// Embedded label newlines are flattened for the spreadsheet.
	assert.Equal(t, "Offshore Wind", rows[2][1])
}

func TestWriteSummaryWorkbookEmpty(t *testing.T) {
	err := WriteSummaryWorkbook(nil, filepath.Join(t.TempDir(), "summary.xlsx"))
	assert.Error(t, err)
}

func TestFlattenCategory(t *testing.T) {
	assert.Equal(t, "Solar, Non-PV", flattenCategory("Solar,\nNon-PV"))
	assert.Equal(t, "Coal", flattenCategory("Coal"))
}
