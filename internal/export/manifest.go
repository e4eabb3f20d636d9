package export

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/tidwall/pretty"
)

// Manifest is the asset catalog Contents.json of an app icon set.
type Manifest struct {
	Images []ManifestImage `json:"images"`
	Info   ManifestInfo    `json:"info"`
}

type ManifestImage struct {
	Size     string `json:"size"`
	Idiom    string `json:"idiom"` // "iphone" | "ios-marketing"
	Filename string `json:"filename"`
	Scale    string `json:"scale"` // "1x" | "2x" | "3x"
}

type ManifestInfo struct {
	Version int    `json:"version"`
	Author  string `json:"author"`
}

func NewManifest() *Manifest {
	return &Manifest{
		Images: []ManifestImage{
			{Size: "20x20", Idiom: "iphone", Filename: "icon-40.png", Scale: "2x"},
			{Size: "20x20", Idiom: "iphone", Filename: "icon-60.png", Scale: "3x"},
			{Size: "29x29", Idiom: "iphone", Filename: "icon-58.png", Scale: "2x"},
			{Size: "29x29", Idiom: "iphone", Filename: "icon-87.png", Scale: "3x"},
			{Size: "40x40", Idiom: "iphone", Filename: "icon-80.png", Scale: "2x"},
			{Size: "40x40", Idiom: "iphone", Filename: "icon-120.png", Scale: "3x"},
			{Size: "60x60", Idiom: "iphone", Filename: "icon-120.png", Scale: "2x"},
			{Size: "60x60", Idiom: "iphone", Filename: "icon-180.png", Scale: "3x"},
			{Size: "1024x1024", Idiom: "ios-marketing", Filename: "icon-1024.png", Scale: "1x"},
		},
		Info: ManifestInfo{Version: 1, Author: "xcode"},
	}
}

func (m *Manifest) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(m); err != nil {
		return nil, err
	}
	return pretty.Pretty(buf.Bytes()), nil
}

func (m *Manifest) WriteFile(path string) error {
	data, err := m.Marshal()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
