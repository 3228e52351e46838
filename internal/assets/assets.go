package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/png" // Register PNG format

	"interstellar/internal/dialogue"
)

const (
	ChatIcon  = "ChatIcon.png"
	LaserIcon = "LaserIcon.png"
)

//go:embed images/*.png dialogue.txt
var projectAssets embed.FS

// LoadImage decodes an embedded PNG icon
func LoadImage(name string) (image.Image, error) {
	fileData, err := projectAssets.ReadFile("images/" + name)
	if err != nil {
		return nil, fmt.Errorf("failed to read image '%s': %w", name, err)
	}

	img, _, err := image.Decode(bytes.NewReader(fileData))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image '%s': %w", name, err)
	}

	return img, nil
}

// Dialogue parses the embedded support chat script
func Dialogue() (*dialogue.Script, error) {
	fileData, err := projectAssets.ReadFile("dialogue.txt")
	if err != nil {
		return nil, fmt.Errorf("failed to read dialogue: %w", err)
	}
	return dialogue.Parse(bytes.NewReader(fileData))
}
