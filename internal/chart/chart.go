// Package chart renders the LCOE comparison boxplot.
package chart

import (
	"fmt"
	"image/color"
	"log/slog"

	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/michael-k-goff/lcoe-graphic/internal/lcoe"
)

// faintBlack is the shared stroke color for boxes, whiskers, gridlines
// and raw estimate markers.
var faintBlack = color.NRGBA{A: 0x77}

// Options configures the rendered chart
type Options struct {
	Title          string
	Caption        string
	Attribution    string
	TruncationNote string

	// XMax clips the cost axis; estimates beyond it stay in the
	// statistics but out of view.
	XMax float64

	// KeyValues feed the illustrative key boxplot. The default set is
	// arbitrary, chosen so one value falls outside the whiskers.
	KeyValues []float64
	ShowKey   bool

	LogoFile string

	Width  vg.Length
	Height vg.Length
}

// DefaultOptions returns the standard chart configuration
func DefaultOptions() Options {
	return Options{
		Title: "Levelized Cost of Electricity by Source",
		Caption: "Levelized cost of electricity from major sources. LCOE is defined as the price that a\n" +
			"power plant needs to receive for electricity over its lifetime to be profitable. While\n" +
			"informative, the LCOE metric does not include several important costs of producing\n" +
			"electricity, such as transmission infrastructure and environmental impacts.",
		Attribution: "urbancruiseship.org\ninfo@urbancruiseship.org\nrev. July 7, 2020 by\nLee Nelson and\nMichael Goff",
		TruncationNote: "Ocean energy outliers\nexceeding 50¢/kWh not shown",
		XMax:           50.5,
		KeyValues: []float64{
			26, 27, 28, 29, 30, 31, 32, 33, 34, 35, 36, 37, 38, 39, 47, 48, 79,
		},
		ShowKey: true,
		Width:   9 * vg.Inch,
		Height:  8 * vg.Inch,
	}
}

// Renderer draws the comparison boxplot from ranked category series
type Renderer struct {
	opts   Options
	logger *slog.Logger
}

// NewRenderer creates a renderer with the given options
func NewRenderer(opts Options, logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{opts: opts, logger: logger}
}

// Render builds the plot. Series must arrive ranked by descending mean;
// index 0 is drawn at the bottom so the most expensive category sits
// lowest, matching the ranked reading order from top to bottom.
func (r *Renderer) Render(series []lcoe.CategorySeries) (*plot.Plot, error) {
	if len(series) == 0 {
		return nil, fmt.Errorf("no categories to plot")
	}

	p := plot.New()
	p.Title.Text = r.opts.Title
	p.Title.TextStyle.Font.Size = vg.Points(20)
	p.Title.TextStyle.Font.Weight = xfont.WeightBold

	n := len(series)
	names := make([]string, n)
	for i, s := range series {
		names[i] = s.Category
	}
	p.NominalY(names...)

	r.addGridLines(p, n)

	for i, s := range series {
		if err := r.addCategory(p, s, float64(i)); err != nil {
			return nil, err
		}
	}

	keyTop := float64(n) - 0.4
	if r.opts.ShowKey {
		var err error
		keyTop, err = r.addKey(p, float64(n)+1.4)
		if err != nil {
			return nil, fmt.Errorf("add key: %w", err)
		}
	}

	if err := r.addAnnotations(p); err != nil {
		return nil, err
	}

	if r.opts.LogoFile != "" {
		if err := r.addLogo(p); err != nil {
			return nil, fmt.Errorf("add logo: %w", err)
		}
	}

	// Axis ranges last: Add grows them for every DataRanger, and the
	// truncation of costs above XMax must win.
	p.X.Min, p.X.Max = 0, r.opts.XMax
	p.X.Tick.Marker = plot.ConstantTicks(costTicks())
	p.X.Tick.Length = 0
	p.X.LineStyle.Width = 0
	p.Y.Min, p.Y.Max = captionBottom, keyTop

	return p, nil
}

// RenderToFile renders the chart and writes it as SVG.
func (r *Renderer) RenderToFile(series []lcoe.CategorySeries, path string) error {
	p, err := r.Render(series)
	if err != nil {
		return err
	}

	if err := p.Save(r.opts.Width, r.opts.Height, path); err != nil {
		return fmt.Errorf("save chart: %w", err)
	}

	r.logger.Info("chart written",
		"path", path,
		"categories", len(series),
	)
	return nil
}

// addCategory draws one category row: the box, every raw estimate as a
// faint marker, the mean marker and the mean annotation.
func (r *Renderer) addCategory(p *plot.Plot, s lcoe.CategorySeries, loc float64) error {
	box, err := plotter.NewBoxPlot(vg.Points(18), loc, plotter.Values(s.Values))
	if err != nil {
		return fmt.Errorf("boxplot for %s: %w", s.Category, err)
	}
	box.Horizontal = true
	box.Outside = nil // raw estimates are overlaid below, fliers stay hidden
	styleBox(box)
	p.Add(box)

	pts := make(plotter.XYs, len(s.Values))
	for j, v := range s.Values {
		pts[j] = plotter.XY{X: v, Y: loc}
	}
	raw, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("raw estimates for %s: %w", s.Category, err)
	}
	raw.GlyphStyle = draw.GlyphStyle{
		Color:  color.NRGBA{A: 0x44},
		Radius: vg.Points(2),
		Shape:  draw.CircleGlyph{},
	}
	p.Add(raw)

	meanPt, err := plotter.NewScatter(plotter.XYs{{X: s.Mean, Y: loc}})
	if err != nil {
		return fmt.Errorf("mean marker for %s: %w", s.Category, err)
	}
	meanPt.GlyphStyle = meanGlyph()
	p.Add(meanPt)

	label, err := newLabel(fmt.Sprintf("%.1f¢/kWh", s.Mean), s.Mean-1, loc+0.45, 11, draw.XLeft)
	if err != nil {
		return fmt.Errorf("mean label for %s: %w", s.Category, err)
	}
	p.Add(label)

	return nil
}

// addGridLines draws faint vertical rules at the tick positions, under
// the category rows only.
func (r *Renderer) addGridLines(p *plot.Plot, n int) {
	top := float64(n) - 0.5
	for _, t := range costTicks() {
		ln, err := plotter.NewLine(plotter.XYs{
			{X: t.Value, Y: -0.5},
			{X: t.Value, Y: top},
		})
		if err != nil {
			continue
		}
		ln.LineStyle = draw.LineStyle{
			Color: color.NRGBA{A: 0x22},
			Width: vg.Points(0.7),
		}
		p.Add(ln)
	}
}

// meanGlyph is the filled marker used for category and key means.
func meanGlyph() draw.GlyphStyle {
	return draw.GlyphStyle{
		Color:  color.Black,
		Radius: vg.Points(2.5),
		Shape:  draw.SquareGlyph{},
	}
}

// styleBox applies the monochrome boxplot styling shared by the category
// rows and the key.
func styleBox(b *plotter.BoxPlot) {
	b.FillColor = nil
	b.BoxStyle.Color = faintBlack
	b.WhiskerStyle.Color = faintBlack
	b.MedianStyle = draw.LineStyle{
		Color: color.Black,
		Width: vg.Points(1),
	}
}

// newLabel builds a single-entry label plotter with the given font size
// and horizontal alignment.
func newLabel(text string, x, y float64, size float64, align draw.XAlignment) (*plotter.Labels, error) {
	lbl, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{{X: x, Y: y}},
		Labels: []string{text},
	})
	if err != nil {
		return nil, err
	}
	lbl.TextStyle[0].Font.Size = vg.Points(size)
	lbl.TextStyle[0].XAlign = align
	return lbl, nil
}
