package graphics

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"math"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers"
	"github.com/tdewolff/canvas/renderers/rasterizer"
)

// Canvas builds the icon as vector paths with one unit per pixel. Canvas
// coordinates grow upwards, so every y is flipped against the icon height.
func (a *AppIcon) Canvas(size int) (*canvas.Canvas, error) {
	if size <= 0 {
		return nil, fmt.Errorf("icon size must be greater than 0, got %d", size)
	}
	pc, err := a.Palette.resolve()
	if err != nil {
		return nil, err
	}

	s := float64(size)
	c := canvas.New(s, s)
	ctx := canvas.NewContext(c)
	ctx.SetStrokeColor(canvas.Transparent)

	// one stripe per gradient row, narrowed to the rounded corners
	radius := float64(size / 5)
	for y := 0; y < size; y++ {
		inset := cornerInset(float64(y)+0.5, s, radius)
		ctx.SetFillColor(gradientRow(y, size, pc.top, pc.bottom))
		ctx.DrawPath(0, 0, flippedPath(s, []Point{
			{X: inset, Y: float64(y)},
			{X: s - inset, Y: float64(y)},
			{X: s - inset, Y: float64(y + 1)},
			{X: inset, Y: float64(y + 1)},
		}))
	}

	t := tentGeometry(size)
	drawFilled(ctx, s, Triangle(t.cx, t.baseline, t.width, t.height), pc.tent)
	drawFilled(ctx, s, Triangle(t.cx, t.baseline, t.width/2, t.height/2), pc.bottom)
	for _, sp := range starPlacements {
		drawFilled(ctx, s, Star(s*sp.X, s*sp.Y, s*sp.Radius), pc.star)
	}

	return c, nil
}

func (a *AppIcon) WriteSVG(w io.Writer, size int) error {
	c, err := a.Canvas(size)
	if err != nil {
		return err
	}
	return renderers.SVG()(w, c)
}

// Rasterize renders the vector icon anti-aliased at size×size pixels.
func (a *AppIcon) Rasterize(size int) (image.Image, error) {
	c, err := a.Canvas(size)
	if err != nil {
		return nil, err
	}
	return rasterizer.Draw(c, canvas.DPMM(1.0), canvas.DefaultColorSpace), nil
}

func drawFilled(ctx *canvas.Context, height float64, points []Point, c color.Color) {
	ctx.SetFillColor(c)
	ctx.DrawPath(0, 0, flippedPath(height, points))
}

func flippedPath(height float64, points []Point) *canvas.Path {
	p := &canvas.Path{}
	for i, pt := range points {
		if i == 0 {
			p.MoveTo(pt.X, height-pt.Y)
		} else {
			p.LineTo(pt.X, height-pt.Y)
		}
	}
	p.Close()
	return p
}

// cornerInset is the horizontal distance from the edge to the rounded
// outline at height y.
func cornerInset(y, size, radius float64) float64 {
	var dy float64
	switch {
	case y < radius:
		dy = radius - y
	case y > size-radius:
		dy = y - (size - radius)
	default:
		return 0
	}
	return radius - math.Sqrt(radius*radius-dy*dy)
}
