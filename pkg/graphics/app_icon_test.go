package graphics

import (
	"bytes"
	"image/color"
	"testing"
)

var testSizes = []int{8, 16, 40, 48, 58, 87, 100, 192, 1024}

func TestRenderSize(t *testing.T) {
	icon := NewAppIcon()
	for _, size := range testSizes {
		img, err := icon.Render(size)
		if err != nil {
			t.Fatalf("Render(%d): %v", size, err)
		}
		b := img.Bounds()
		if b.Min.X != 0 || b.Min.Y != 0 || b.Dx() != size || b.Dy() != size {
			t.Errorf("Render(%d) bounds = %v, want %dx%d at origin", size, b, size, size)
		}
	}
}

func TestRenderDeterministic(t *testing.T) {
	for _, size := range []int{40, 120, 1024} {
		a, err := NewAppIcon().Render(size)
		if err != nil {
			t.Fatal(err)
		}
		b, err := NewAppIcon().Render(size)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(a.Pix, b.Pix) {
			t.Errorf("Render(%d) is not deterministic", size)
		}
	}
}

func TestRenderCornersTransparent(t *testing.T) {
	icon := NewAppIcon()
	for size := 5; size <= 64; size++ {
		img, err := icon.Render(size)
		if err != nil {
			t.Fatal(err)
		}
		for _, p := range [][2]int{{0, 0}, {size - 1, 0}, {0, size - 1}, {size - 1, size - 1}} {
			if a := img.NRGBAAt(p[0], p[1]).A; a != 0 {
				t.Errorf("size %d: alpha at %v = %d, want 0", size, p, a)
			}
		}
	}
}

func TestRenderTentBody(t *testing.T) {
	icon := NewAppIcon()
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	for _, size := range testSizes {
		img, err := icon.Render(size)
		if err != nil {
			t.Fatal(err)
		}
		s := float64(size)
		y := int(s*0.6 - s*0.35*0.5)
		if got := img.NRGBAAt(size/2, y); got != white {
			t.Errorf("size %d: pixel (%d,%d) = %v, want %v", size, size/2, y, got, white)
		}
	}
}

func TestRenderTentOpening(t *testing.T) {
	img, err := NewAppIcon().Render(100)
	if err != nil {
		t.Fatal(err)
	}
	want := color.NRGBA{R: 48, G: 63, B: 159, A: 0xff}
	// just above the base line on the centerline
	if got := img.NRGBAAt(50, 59); got != want {
		t.Errorf("opening pixel = %v, want %v", got, want)
	}
}

func TestRenderStars(t *testing.T) {
	img, err := NewAppIcon().Render(200)
	if err != nil {
		t.Fatal(err)
	}
	gold := color.NRGBA{R: 255, G: 215, B: 0, A: 0xff}
	for _, sp := range starPlacements {
		x, y := int(200*sp.X), int(200*sp.Y)
		if got := img.NRGBAAt(x, y); got != gold {
			t.Errorf("star center (%d,%d) = %v, want %v", x, y, got, gold)
		}
	}
}

func TestRenderInvalidSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		if _, err := NewAppIcon().Render(size); err == nil {
			t.Errorf("Render(%d) returned no error", size)
		}
	}
}

func TestRenderInvalidPalette(t *testing.T) {
	icon := NewAppIcon()
	icon.Palette.Star = "gold"
	if _, err := icon.Render(40); err == nil {
		t.Error("Render with bad palette returned no error")
	}
}

func TestGradientMonotonic(t *testing.T) {
	const size = 180
	img, err := NewAppIcon().Gradient(size)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := img.NRGBAAt(size/2, 0), (color.NRGBA{R: 63, G: 81, B: 181, A: 0xff}); got != want {
		t.Errorf("row 0 = %v, want %v", got, want)
	}
	prev := img.NRGBAAt(size/2, 0)
	for y := 1; y < size; y++ {
		c := img.NRGBAAt(size/2, y)
		if c.R > prev.R || c.G > prev.G || c.B > prev.B {
			t.Fatalf("row %d = %v brighter than row %d = %v", y, c, y-1, prev)
		}
		if c.R < 48 || c.G < 63 || c.B < 159 {
			t.Fatalf("row %d = %v passes the bottom color", y, c)
		}
		if c.A != 0xff {
			t.Fatalf("row %d alpha = %d, want 255", y, c.A)
		}
		prev = c
	}
	for x := 0; x < size; x++ {
		if img.NRGBAAt(x, 90) != img.NRGBAAt(0, 90) {
			t.Fatalf("row 90 is not uniform at x=%d", x)
		}
	}
}

func TestGradientTruncates(t *testing.T) {
	img, err := NewAppIcon().Gradient(100)
	if err != nil {
		t.Fatal(err)
	}
	// t=0.5: 63-7.5, 81-9, 181-11
	want := color.NRGBA{R: 55, G: 72, B: 170, A: 0xff}
	if got := img.NRGBAAt(3, 50); got != want {
		t.Errorf("row 50 = %v, want %v", got, want)
	}
}
