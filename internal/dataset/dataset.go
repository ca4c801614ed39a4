// Package dataset loads the LCOE estimate table from CSV into memory.
package dataset

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Column names expected in the source CSV header.
const (
	ColCategory = "Category"
	ColType     = "Type"
	ColLCOE     = "LCOE"
	ColLow      = "LCOE Low"
	ColHigh     = "LCOE High"
)

// Observation is one LCOE estimate for a specific power generation
// technology. Category is the broad classification (Coal, Nuclear, ...),
// Type the specific one (Supercritical, IGCC, ...). A value <= 0 in any
// of the three cost fields means the source did not report it.
type Observation struct {
	Category string
	Type     string
	LCOE     float64
	Low      float64
	High     float64
}

// HasLCOE reports whether a point estimate was given.
func (o Observation) HasLCOE() bool { return o.LCOE > 0 }

// HasLow reports whether a low bound was given.
func (o Observation) HasLow() bool { return o.Low > 0 }

// HasHigh reports whether a high bound was given.
func (o Observation) HasHigh() bool { return o.High > 0 }

// Load reads the LCOE dataset from the CSV file at path. The file must
// have a header row with at least the Category, Type, LCOE, LCOE Low and
// LCOE High columns; extra columns are ignored. Malformed numeric cells
// fail the load.
func Load(path string) ([]Observation, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer file.Close()

	df := dataframe.ReadCSV(file,
		dataframe.WithTypes(map[string]series.Type{
			ColCategory: series.String,
			ColType:     series.String,
		}))
	if df.Err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", path, df.Err)
	}

	return fromRecords(df.Records())
}

// fromRecords converts header-plus-rows string records into observations.
func fromRecords(records [][]string) ([]Observation, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("dataset is empty")
	}

	idx := make(map[string]int, len(records[0]))
	for i, col := range records[0] {
		idx[strings.TrimSpace(col)] = i
	}
	for _, col := range []string{ColCategory, ColType, ColLCOE, ColLow, ColHigh} {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("dataset missing required column %q", col)
		}
	}

	obs := make([]Observation, 0, len(records)-1)
	for rowNum, record := range records[1:] {
		o := Observation{
			Category: record[idx[ColCategory]],
			Type:     record[idx[ColType]],
		}

		var err error
		if o.LCOE, err = parseCost(record[idx[ColLCOE]]); err != nil {
			return nil, fmt.Errorf("row %d: column %q: %w", rowNum+2, ColLCOE, err)
		}
		if o.Low, err = parseCost(record[idx[ColLow]]); err != nil {
			return nil, fmt.Errorf("row %d: column %q: %w", rowNum+2, ColLow, err)
		}
		if o.High, err = parseCost(record[idx[ColHigh]]); err != nil {
			return nil, fmt.Errorf("row %d: column %q: %w", rowNum+2, ColHigh, err)
		}

		obs = append(obs, o)
	}

	return obs, nil
}

// parseCost parses one cost cell. Empty and "NaN" cells follow the
// source convention for missing values.
func parseCost(cell string) (float64, error) {
	cell = strings.TrimSpace(cell)
	if cell == "" || strings.EqualFold(cell, "nan") {
		return 0, nil
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", cell, err)
	}
	return v, nil
}
