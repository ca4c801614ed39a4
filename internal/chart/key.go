package chart

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/michael-k-goff/lcoe-graphic/internal/lcoe"
)

// addKey draws the illustrative key boxplot above the category rows and
// labels its anatomy for viewers unfamiliar with boxplots. The label
// positions come from the key box's own computed statistics. Returns the
// top of the key region so the caller can size the axis.
func (r *Renderer) addKey(p *plot.Plot, loc float64) (float64, error) {
	box, err := plotter.NewBoxPlot(vg.Points(14), loc, plotter.Values(r.opts.KeyValues))
	if err != nil {
		return 0, fmt.Errorf("key boxplot: %w", err)
	}
	box.Horizontal = true
	box.Outside = nil
	styleBox(box)
	p.Add(box)

	keyMean := lcoe.Mean(r.opts.KeyValues)
	meanPt, err := plotter.NewScatter(plotter.XYs{{X: keyMean, Y: loc}})
	if err != nil {
		return 0, fmt.Errorf("key mean marker: %w", err)
	}
	meanPt.GlyphStyle = meanGlyph()
	p.Add(meanPt)

	labels := []struct {
		text  string
		x, y  float64
		align draw.XAlignment
	}{
		{"Mean", keyMean, loc - 0.85, draw.XCenter},
		{"Median", box.Median, loc - 0.85, draw.XCenter},
		{"25th\nPercentile", box.Quartile1, loc + 0.75, draw.XCenter},
		{"75th\nPercentile", box.Quartile3, loc + 0.75, draw.XCenter},
		{"25th Percentile\nminus 1.5X\nInterquartile Range", box.AdjLow - 1, loc, draw.XRight},
		{"75th Percentile\nplus 1.5X\nInterquartile Range", box.AdjHigh + 1, loc, draw.XLeft},
	}
	for _, l := range labels {
		lbl, err := newLabel(l.text, l.x, l.y, 8, l.align)
		if err != nil {
			return 0, fmt.Errorf("key label %q: %w", l.text, err)
		}
		p.Add(lbl)
	}

	return loc + 1.5, nil
}
