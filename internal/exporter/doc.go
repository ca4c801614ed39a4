// Package exporter writes the secondary report artifacts.
//
// Two exports accompany the chart: the processed dataset (post-filter,
// post-imputation) as CSV for downstream analysis, and a per-category
// summary workbook for review in a spreadsheet.
package exporter
