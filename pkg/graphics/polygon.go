package graphics

import (
	"image"
	"image/color"
	"math"
	"sort"
)

type Point struct {
	X, Y float64
}

// Triangle returns an upward-pointing triangle whose base is centered on cx at
// baseline y.
func Triangle(cx, baseline, width, height int) []Point {
	return []Point{
		{X: float64(cx - width/2), Y: float64(baseline)},
		{X: float64(cx), Y: float64(baseline - height)},
		{X: float64(cx + width/2), Y: float64(baseline)},
	}
}

// Star returns the 10 vertices of a five-pointed star, starting at the top
// point and alternating between the outer radius and half of it.
func Star(cx, cy, radius float64) []Point {
	points := make([]Point, 0, 10)
	for i := 0; i < 10; i++ {
		angle := math.Pi*float64(i)/5 - math.Pi/2
		r := radius
		if i%2 == 1 {
			r = radius * 0.5
		}
		points = append(points, Point{
			X: cx + r*math.Cos(angle),
			Y: cy + r*math.Sin(angle),
		})
	}
	return points
}

// FillPolygon paints every pixel whose center lies inside the polygon
// (even-odd rule). No anti-aliasing is applied.
func FillPolygon(img *image.NRGBA, points []Point, c color.NRGBA) {
	if len(points) < 3 {
		return
	}
	bounds := img.Bounds()

	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points[1:] {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	y0 := max(bounds.Min.Y, int(math.Floor(minY)))
	y1 := min(bounds.Max.Y, int(math.Ceil(maxY))+1)

	xs := make([]float64, 0, len(points))
	for y := y0; y < y1; y++ {
		yc := float64(y) + 0.5
		xs = xs[:0]
		for i := range points {
			a := points[i]
			b := points[(i+1)%len(points)]
			// half-open so a vertex shared by two edges is counted once
			if (a.Y <= yc && yc < b.Y) || (b.Y <= yc && yc < a.Y) {
				xs = append(xs, a.X+(yc-a.Y)*(b.X-a.X)/(b.Y-a.Y))
			}
		}
		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			x0 := max(bounds.Min.X, int(math.Ceil(xs[i]-0.5)))
			x1 := min(bounds.Max.X, int(math.Ceil(xs[i+1]-0.5)))
			for x := x0; x < x1; x++ {
				img.SetNRGBA(x, y, c)
			}
		}
	}
}

// RoundedMask returns an opaque mask of a size×size rounded rectangle. A pixel
// is kept only when its whole unit square fits inside the shape.
func RoundedMask(size, radius int) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		dy := cornerOverhang(y, size, radius)
		for x := 0; x < size; x++ {
			dx := cornerOverhang(x, size, radius)
			if dx > 0 && dy > 0 && dx*dx+dy*dy > radius*radius {
				continue
			}
			mask.SetAlpha(x, y, color.Alpha{A: 0xff})
		}
	}
	return mask
}

// cornerOverhang is how far the far edge of pixel i reaches past the center of
// the nearest corner arc, or 0 when the pixel is outside the corner band.
func cornerOverhang(i, size, radius int) int {
	if i < radius {
		return radius - i
	}
	if i+1 > size-radius {
		return i + 1 - (size - radius)
	}
	return 0
}
