package lcoe

import (
	"sort"

	"github.com/michael-k-goff/lcoe-graphic/internal/dataset"
)

// Aggregate partitions rows by category and pools each partition into one
// flat sample: all low values, then all point values, then all high
// values. Categories appear in order of first occurrence in rows. Input
// rows must already be imputed.
func Aggregate(rows []dataset.Observation) []CategorySeries {
	byCategory := make(map[string][]dataset.Observation)
	var order []string

	for _, row := range rows {
		if _, seen := byCategory[row.Category]; !seen {
			order = append(order, row.Category)
		}
		byCategory[row.Category] = append(byCategory[row.Category], row)
	}

	series := make([]CategorySeries, 0, len(order))
	for _, cat := range order {
		members := byCategory[cat]
		values := make([]float64, 0, 3*len(members))
		for _, m := range members {
			values = append(values, m.Low)
		}
		for _, m := range members {
			values = append(values, m.LCOE)
		}
		for _, m := range members {
			values = append(values, m.High)
		}

		series = append(series, CategorySeries{
			Category: cat,
			Values:   values,
			Mean:     Mean(values),
			Count:    len(members),
		})
	}

	return series
}

// Rank sorts series by descending mean in place. Ties keep their
// aggregation order.
func Rank(series []CategorySeries) {
	sort.SliceStable(series, func(i, j int) bool {
		return series[i].Mean > series[j].Mean
	})
}

// Mean returns the arithmetic mean of values, or 0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
