package graphics

import (
	"image"
	"image/color"
	"math"
	"testing"
)

func TestStar(t *testing.T) {
	pts := Star(50, 50, 20)
	if len(pts) != 10 {
		t.Fatalf("len = %d, want 10", len(pts))
	}
	if math.Abs(pts[0].X-50) > 1e-9 || math.Abs(pts[0].Y-30) > 1e-9 {
		t.Errorf("first vertex = %v, want top point (50,30)", pts[0])
	}
	for i, p := range pts {
		want := 20.0
		if i%2 == 1 {
			want = 10
		}
		if d := math.Hypot(p.X-50, p.Y-50); math.Abs(d-want) > 1e-9 {
			t.Errorf("vertex %d at distance %v, want %v", i, d, want)
		}
	}
}

func TestTriangle(t *testing.T) {
	got := Triangle(50, 60, 50, 35)
	want := []Point{{25, 60}, {50, 25}, {75, 60}}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("vertex %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestFillPolygonSquare(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 6, 6))
	red := color.NRGBA{R: 0xff, A: 0xff}
	FillPolygon(img, []Point{{1, 1}, {5, 1}, {5, 5}, {1, 5}}, red)

	count := 0
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			inside := x >= 1 && x < 5 && y >= 1 && y < 5
			painted := img.NRGBAAt(x, y) == red
			if painted {
				count++
			}
			if inside != painted {
				t.Errorf("pixel (%d,%d) painted = %v, want %v", x, y, painted, inside)
			}
		}
	}
	if count != 16 {
		t.Errorf("painted %d pixels, want 16", count)
	}
}

func TestFillPolygonClipped(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	c := color.NRGBA{G: 0xff, A: 0xff}
	FillPolygon(img, []Point{{-10, -10}, {10, -10}, {10, 10}, {-10, 10}}, c)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if img.NRGBAAt(x, y) != c {
				t.Fatalf("pixel (%d,%d) not painted", x, y)
			}
		}
	}
}

func TestFillPolygonDegenerate(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	FillPolygon(img, []Point{{0, 0}, {3, 3}}, color.NRGBA{A: 0xff})
	for _, v := range img.Pix {
		if v != 0 {
			t.Fatal("two-point polygon painted pixels")
		}
	}
}

func TestRoundedMask(t *testing.T) {
	tests := []struct {
		x, y int
		want uint8
	}{
		{0, 0, 0},
		{1, 0, 0},
		{0, 1, 0},
		{1, 1, 0xff},
		{2, 0, 0xff},
		{5, 5, 0xff},
		{9, 9, 0},
		{8, 8, 0xff},
		{9, 0, 0},
		{0, 9, 0},
	}
	mask := RoundedMask(10, 2)
	for _, tt := range tests {
		if got := mask.AlphaAt(tt.x, tt.y).A; got != tt.want {
			t.Errorf("alpha at (%d,%d) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRoundedMaskNoRadius(t *testing.T) {
	mask := RoundedMask(4, 0)
	for _, a := range mask.Pix {
		if a != 0xff {
			t.Fatal("square mask has transparent pixels")
		}
	}
}
