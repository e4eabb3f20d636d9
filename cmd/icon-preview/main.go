package main

import (
	"os"

	"github.com/disintegration/imaging"

	"github.com/kids-activity-tracker/appicon/internal/export"
	"github.com/kids-activity-tracker/appicon/pkg/graphics"
)

// Usage: icon-preview [output.png] [palette.json]
func main() {
	path := "preview.png"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	icon := graphics.NewAppIcon()
	if len(os.Args) > 2 {
		p, err := graphics.LoadPalette(os.Args[2])
		if err != nil {
			panic(err)
		}
		icon.Palette = p
	}

	// the marketing icon would dwarf the rest of the sheet
	var sizes []int
	for _, size := range export.Sizes() {
		if size <= 192 {
			sizes = append(sizes, size)
		}
	}

	img, err := graphics.NewPreviewSheet(sizes).Render(icon)
	if err != nil {
		panic(err)
	}

	pngFile, err := os.Create(path)
	if err != nil {
		panic(err)
	}
	defer pngFile.Close()

	if err := imaging.Encode(pngFile, img, imaging.PNG); err != nil {
		panic(err)
	}
}
