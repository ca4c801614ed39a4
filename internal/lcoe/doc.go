// Package lcoe prepares levelized-cost-of-electricity estimates for the
// comparison boxplot.
//
// The pipeline is a single synchronous pass over the loaded dataset:
//
//  1. Filter: drop rows whose Type is excluded from the comparison
//     (depreciated plants, CCS variants, immature and distributed
//     technologies).
//  2. Recategorize: remap Category by Type so the plot's groupings differ
//     from the source file where needed (Solar split into PV and non-PV,
//     Wind into onshore and offshore, Petroleum renamed Oil, MHK renamed
//     Ocean).
//  3. Impute: every study gets a full low/point/high triple. A missing
//     point estimate becomes the midpoint of the bounds; a missing bound
//     becomes the point estimate.
//  4. Aggregate: per category, all low, point and high values are pooled
//     into one flat sample so each study carries equal weight.
//  5. Rank: categories are ordered by descending mean of the pooled
//     sample.
//
// Usage:
//
//	calc := lcoe.NewCalculator(slog.Default())
//	result, err := calc.Run(ctx, rows)
//	if err != nil {
//	    // handle
//	}
//	for _, s := range result.Series {
//	    fmt.Println(s.Category, s.Mean)
//	}
package lcoe
