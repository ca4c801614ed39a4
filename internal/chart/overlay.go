package chart

import (
	"fmt"
	"image"
	_ "image/png"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"
)

// captionBottom is the bottom of the caption region in row coordinates.
// Rows occupy 0..n-1; everything below -0.5 is annotation space.
const captionBottom = -3.2

// addAnnotations places the truncation note, the caption paragraph and
// the attribution block.
func (r *Renderer) addAnnotations(p *plot.Plot) error {
	type block struct {
		name  string
		text  string
		x, y  float64
		size  float64
		align draw.XAlignment
	}

	blocks := []block{
		{"truncation note", r.opts.TruncationNote, r.opts.XMax - 1, 0.1, 8, draw.XRight},
		{"caption", r.opts.Caption, 0.5, -1.3, 10, draw.XLeft},
		{"attribution", r.opts.Attribution, r.opts.XMax * 0.8, -1.3, 7, draw.XLeft},
	}

	for _, b := range blocks {
		if b.text == "" {
			continue
		}
		lbl, err := newLabel(b.text, b.x, b.y, b.size, b.align)
		if err != nil {
			return fmt.Errorf("%s: %w", b.name, err)
		}
		lbl.TextStyle[0].YAlign = draw.YTop
		p.Add(lbl)
	}

	return nil
}

// addLogo decodes the logo raster and embeds it to the right of the
// caption, below the category rows.
func (r *Renderer) addLogo(p *plot.Plot) error {
	img, err := loadImage(r.opts.LogoFile)
	if err != nil {
		return err
	}

	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return fmt.Errorf("logo %s has no pixels", r.opts.LogoFile)
	}

	// Fixed width in data units, height from the image aspect ratio.
	const logoWidth = 6.0
	aspect := float64(bounds.Dy()) / float64(bounds.Dx())
	logoHeight := logoWidth * aspect * 0.16 // row units are much taller than cost units

	xMax := r.opts.XMax - 0.5
	yMax := -2.9 + logoHeight
	p.Add(plotter.NewImage(img, xMax-logoWidth, -2.9, xMax, yMax))

	r.logger.Debug("logo embedded",
		"path", r.opts.LogoFile,
		"width_px", bounds.Dx(),
		"height_px", bounds.Dy(),
	)
	return nil
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open logo: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode logo %s: %w", path, err)
	}
	return img, nil
}
