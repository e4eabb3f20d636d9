package graphics

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/esimov/stackblur-go"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"
)

// PreviewSheet lays out an icon at several sizes next to each other, each
// one labelled with its pixel dimensions.
type PreviewSheet struct {
	Color struct {
		Label   color.Color
		Overlay color.Color
	}
	Sizes       []int
	Padding     int
	Gap         int
	LabelSize   float64
	LabelMargin int
	BlurRadius  uint32
}

func NewPreviewSheet(sizes []int) *PreviewSheet {
	p := &PreviewSheet{}
	p.Color.Label = color.White
	p.Color.Overlay = color.NRGBA{0, 0, 0, 0x73}
	p.Sizes = sizes
	p.Padding = 32
	p.Gap = 24
	p.LabelSize = 14
	p.LabelMargin = 8
	p.BlurRadius = 24
	return p
}

func (p *PreviewSheet) Render(icon *AppIcon) (image.Image, error) {
	if len(p.Sizes) == 0 {
		return nil, fmt.Errorf("no sizes to preview")
	}

	icons := make([]image.Image, len(p.Sizes))
	largest := 0
	for i, size := range p.Sizes {
		img, err := icon.Render(size)
		if err != nil {
			return nil, err
		}
		icons[i] = img
		if size > p.Sizes[largest] {
			largest = i
		}
	}

	w, h := p.Bounds()
	backdrop, err := p.backdrop(icons[largest], w, h)
	if err != nil {
		return nil, err
	}

	dc := gg.NewContextForImage(backdrop)
	dc.SetColor(p.Color.Overlay)
	dc.DrawRectangle(0, 0, float64(w), float64(h))
	dc.Fill()

	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	dc.SetFontFace(truetype.NewFace(f, &truetype.Options{Size: p.LabelSize}))
	dc.SetColor(p.Color.Label)

	baseline := p.Padding + p.Sizes[largest]
	x := p.Padding
	for i, size := range p.Sizes {
		// icons sit on a common base line
		dc.DrawImage(icons[i], x, baseline-size)
		label := fmt.Sprintf("%dx%d", size, size)
		dc.DrawStringAnchored(label, float64(x)+float64(size)/2, float64(baseline+p.LabelMargin), 0.5, 1)
		x += size + p.Gap
	}

	return dc.Image(), nil
}

// Bounds returns the sheet dimensions for the configured sizes.
func (p *PreviewSheet) Bounds() (width, height int) {
	largest := 0
	width = 2*p.Padding - p.Gap
	for _, size := range p.Sizes {
		width += size + p.Gap
		largest = max(largest, size)
	}
	height = 2*p.Padding + largest + p.LabelMargin + int(p.LabelSize*2)
	return width, height
}

func (p *PreviewSheet) backdrop(src image.Image, w, h int) (image.Image, error) {
	filled := imaging.Fill(src, w, h, imaging.Center, imaging.Lanczos)
	if p.BlurRadius == 0 {
		return filled, nil
	}
	blurred, err := stackblur.Process(filled, p.BlurRadius)
	if err != nil {
		return nil, err
	}
	return blurred, nil
}
