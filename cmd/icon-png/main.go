package main

import (
	"os"

	"github.com/disintegration/imaging"

	"github.com/kids-activity-tracker/appicon/pkg/graphics"
)

const pngSize = 1024

// Usage: icon-png [output.png] [palette.json]
// Writes the anti-aliased rendition of the icon, for store listings and docs.
func main() {
	path := "icon-master.png"
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

	img, err := icon.Rasterize(pngSize)
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
