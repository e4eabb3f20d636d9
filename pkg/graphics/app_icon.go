package graphics

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
)

type AppIcon struct {
	Palette Palette
}

type starPlacement struct {
	X, Y, Radius float64 // fractions of the icon size
}

var starPlacements = []starPlacement{
	{X: 0.2, Y: 0.2, Radius: 0.08},
	{X: 0.8, Y: 0.15, Radius: 0.06},
	{X: 0.15, Y: 0.8, Radius: 0.06},
	{X: 0.85, Y: 0.85, Radius: 0.08},
}

func NewAppIcon() *AppIcon {
	return &AppIcon{Palette: DefaultPalette()}
}

// Render draws the icon at size×size pixels. The result depends only on size
// and the palette.
func (a *AppIcon) Render(size int) (*image.NRGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("icon size must be greater than 0, got %d", size)
	}
	pc, err := a.Palette.resolve()
	if err != nil {
		return nil, err
	}

	// background through the rounded corner mask
	bg := gradient(size, pc.top, pc.bottom)
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.DrawMask(img, img.Bounds(), bg, image.Point{}, RoundedMask(size, size/5), image.Point{}, draw.Src)

	// tent and its opening share the base line
	t := tentGeometry(size)
	FillPolygon(img, Triangle(t.cx, t.baseline, t.width, t.height), pc.tent)
	FillPolygon(img, Triangle(t.cx, t.baseline, t.width/2, t.height/2), pc.bottom)

	s := float64(size)
	for _, sp := range starPlacements {
		FillPolygon(img, Star(s*sp.X, s*sp.Y, s*sp.Radius), pc.star)
	}

	return img, nil
}

// Gradient returns the unmasked background: one color per row blended from
// the top color to the bottom color.
func (a *AppIcon) Gradient(size int) (*image.NRGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("icon size must be greater than 0, got %d", size)
	}
	pc, err := a.Palette.resolve()
	if err != nil {
		return nil, err
	}
	return gradient(size, pc.top, pc.bottom), nil
}

func gradient(size int, top, bottom color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		c := gradientRow(y, size, top, bottom)
		row := img.Pix[y*img.Stride : y*img.Stride+size*4]
		for x := 0; x < len(row); x += 4 {
			row[x+0] = c.R
			row[x+1] = c.G
			row[x+2] = c.B
			row[x+3] = c.A
		}
	}
	return img
}

func gradientRow(y, size int, top, bottom color.NRGBA) color.NRGBA {
	t := float64(y) / float64(size)
	lerp := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*t)
	}
	return color.NRGBA{
		R: lerp(top.R, bottom.R),
		G: lerp(top.G, bottom.G),
		B: lerp(top.B, bottom.B),
		A: 0xff,
	}
}

type tent struct {
	cx, baseline, width, height int
}

func tentGeometry(size int) tent {
	return tent{
		cx:       size / 2,
		baseline: int(float64(size) * 0.6),
		width:    size / 2,
		height:   int(float64(size) * 0.35),
	}
}
