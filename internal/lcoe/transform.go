package lcoe

import (
	"github.com/michael-k-goff/lcoe-graphic/internal/dataset"
)

// Filter returns the rows whose Type is not in excluded. Excluded rows
// take no part in any later stage.
func Filter(rows []dataset.Observation, excluded map[string]bool) []dataset.Observation {
	kept := make([]dataset.Observation, 0, len(rows))
	for _, row := range rows {
		if excluded[row.Type] {
			continue
		}
		kept = append(kept, row)
	}
	return kept
}

// Recategorize rewrites each row's Category from the Type-keyed override
// table. Rows whose Type has no override keep their source category.
func Recategorize(rows []dataset.Observation, overrides map[string]string) []dataset.Observation {
	out := make([]dataset.Observation, len(rows))
	for i, row := range rows {
		if cat, ok := overrides[row.Type]; ok {
			row.Category = cat
		}
		out[i] = row
	}
	return out
}

// Impute fills the missing cost fields of one observation. A missing
// point estimate becomes the midpoint of the low and high bounds; after
// that, a missing bound becomes the point estimate. The point is derived
// first so a row with only bounds resolves, and a row with only a point
// collapses to a zero-width range. Already-complete rows pass through
// unchanged, so Impute(Impute(o)) == Impute(o).
func Impute(o dataset.Observation) dataset.Observation {
	if !o.HasLCOE() {
		o.LCOE = (o.Low + o.High) / 2
	}
	if !o.HasLow() {
		o.Low = o.LCOE
	}
	if !o.HasHigh() {
		o.High = o.LCOE
	}
	return o
}

// ImputeAll applies Impute to every row.
func ImputeAll(rows []dataset.Observation) []dataset.Observation {
	out := make([]dataset.Observation, len(rows))
	for i, row := range rows {
		out[i] = Impute(row)
	}
	return out
}
