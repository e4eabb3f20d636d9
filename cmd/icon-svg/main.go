package main

import (
	"os"

	"github.com/kids-activity-tracker/appicon/pkg/graphics"
)

// vector master of the icon, one unit per pixel
const svgSize = 1024

// Usage: icon-svg [output.svg] [palette.json]
func main() {
	path := "icon.svg"
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

	svgFile, err := os.Create(path)
	if err != nil {
		panic(err)
	}
	defer svgFile.Close()

	if err := icon.WriteSVG(svgFile, svgSize); err != nil {
		panic(err)
	}
}
