package export

import "path/filepath"

var (
	IOSDir     = filepath.Join("ios", "KidsCampTracker", "Images.xcassets", "AppIcon.appiconset")
	AndroidDir = filepath.Join("android", "app", "src", "main", "res")
)

const (
	ManifestName         = "Contents.json"
	AndroidLauncher      = "ic_launcher.png"
	AndroidLauncherRound = "ic_launcher_round.png"
)

type IOSIcon struct {
	Size     int
	Filename string
}

type AndroidIcon struct {
	Size int
	Dir  string // mipmap density folder
}

var IOSIcons = []IOSIcon{
	{Size: 40, Filename: "icon-40.png"},
	{Size: 60, Filename: "icon-60.png"},
	{Size: 58, Filename: "icon-58.png"},
	{Size: 87, Filename: "icon-87.png"},
	{Size: 80, Filename: "icon-80.png"},
	{Size: 120, Filename: "icon-120.png"},
	{Size: 180, Filename: "icon-180.png"},
	{Size: 1024, Filename: "icon-1024.png"},
}

var AndroidIcons = []AndroidIcon{
	{Size: 48, Dir: "mipmap-mdpi"},
	{Size: 72, Dir: "mipmap-hdpi"},
	{Size: 96, Dir: "mipmap-xhdpi"},
	{Size: 144, Dir: "mipmap-xxhdpi"},
	{Size: 192, Dir: "mipmap-xxxhdpi"},
}

// Sizes returns every distinct pixel size of both tables, iOS first.
func Sizes() []int {
	seen := make(map[int]bool)
	var sizes []int
	add := func(size int) {
		if !seen[size] {
			seen[size] = true
			sizes = append(sizes, size)
		}
	}
	for _, i := range IOSIcons {
		add(i.Size)
	}
	for _, a := range AndroidIcons {
		add(a.Size)
	}
	return sizes
}
