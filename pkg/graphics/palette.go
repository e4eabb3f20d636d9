package graphics

import (
	"encoding/json"
	"fmt"
	"image/color"
	"math"
	"os"

	"github.com/go-playground/colors"
)

type Palette struct {
	Top    string `json:"top"`    // gradient at row 0
	Bottom string `json:"bottom"` // gradient end, also the tent opening
	Tent   string `json:"tent"`
	Star   string `json:"star"`
}

type paletteColors struct {
	top, bottom, tent, star color.NRGBA
}

func DefaultPalette() Palette {
	return Palette{
		Top:    "#3f51b5",
		Bottom: "#303f9f",
		Tent:   "#ffffff",
		Star:   "#ffd700",
	}
}

func (p *Palette) FillEmptyWithDefault() {
	d := DefaultPalette()
	if p.Top == "" {
		p.Top = d.Top
	}
	if p.Bottom == "" {
		p.Bottom = d.Bottom
	}
	if p.Tent == "" {
		p.Tent = d.Tent
	}
	if p.Star == "" {
		p.Star = d.Star
	}
}

func (p *Palette) Assert() error {
	for _, f := range []struct{ name, value string }{
		{"top", p.Top},
		{"bottom", p.Bottom},
		{"tent", p.Tent},
		{"star", p.Star},
	} {
		if _, err := colors.ParseHEX(f.value); err != nil {
			return fmt.Errorf("%s color %q is not a hex color: %w", f.name, f.value, err)
		}
	}
	return nil
}

// LoadPalette reads a JSON palette. Missing colors keep their defaults.
func LoadPalette(path string) (Palette, error) {
	var p Palette
	data, err := os.ReadFile(path)
	if err != nil {
		return p, err
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("parse palette %s: %w", path, err)
	}
	p.FillEmptyWithDefault()
	if err := p.Assert(); err != nil {
		return p, err
	}
	return p, nil
}

func (p *Palette) resolve() (paletteColors, error) {
	if err := p.Assert(); err != nil {
		return paletteColors{}, err
	}
	return paletteColors{
		top:    parseHex(p.Top),
		bottom: parseHex(p.Bottom),
		tent:   parseHex(p.Tent),
		star:   parseHex(p.Star),
	}, nil
}

// parseHex expects a value already checked by Assert.
func parseHex(s string) color.NRGBA {
	hex, _ := colors.ParseHEX(s)
	rgba := hex.ToRGBA()
	return color.NRGBA{R: rgba.R, G: rgba.G, B: rgba.B, A: uint8(math.Round(rgba.A * 255))}
}
