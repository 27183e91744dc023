//go:build ignore

// Tray icon generator.
// Run: go run scripts/generate_icons.go
package main

import (
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"path/filepath"
)

func main() {
	dir := "embedded"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Fatalf("Failed to create directory %s: %v", dir, err)
	}

	icons := []struct {
		name  string
		color color.RGBA
	}{
		{"icon_idle.png", color.RGBA{128, 128, 128, 255}},   // Grey
		{"icon_fetching.png", color.RGBA{39, 174, 96, 255}}, // Green
		{"icon_paused.png", color.RGBA{230, 160, 50, 255}},  // Orange
	}

	for _, icon := range icons {
		path := filepath.Join(dir, icon.name)
		if err := generateIcon(path, icon.color); err != nil {
			log.Fatalf("Failed to generate %s: %v", icon.name, err)
		}
		log.Printf("Created: %s", path)
	}
}

// generateIcon draws a simplified open book.
func generateIcon(path string, c color.RGBA) error {
	const size = 64
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	// Two page blocks with a gap for the spine
	top, bottom := 18, 46
	left, right := 10, 54
	spine := size / 2

	for y := top; y <= bottom; y++ {
		for x := left; x <= right; x++ {
			if x == spine || x == spine-1 {
				continue
			}
			img.Set(x, y, c)
		}
	}

	// Spine line below the pages
	for y := bottom; y < bottom+6 && y < size; y++ {
		for x := spine - 2; x <= spine+1; x++ {
			img.Set(x, y, c)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, img)
}
