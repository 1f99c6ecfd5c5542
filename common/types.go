// Package common contains common types that are used throughout this module. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

import (
	"image"
	"image/draw"
)

// TextureStagingData holds RGBA pixel data for a texture pending GPU upload.
// The texture synthesizer rasterizes into this shape before handing the pixels to the graphics context.
type TextureStagingData struct {
	// Pixels is the byte slice representing the actual pixel data for the texture. It is in RGBA format, with 4 bytes per pixel, row-major.
	Pixels []byte
	// Width is the width of the texture in pixels.
	Width int
	// Height is the height of the texture in pixels.
	Height int
}

// StagingFromImage converts any image into tightly packed RGBA staging data.
// *image.RGBA inputs whose stride matches their width are used without copying.
//
// Parameters:
//   - img: the source image
//
// Returns:
//   - TextureStagingData: the RGBA pixels with the image dimensions
func StagingFromImage(img image.Image) TextureStagingData {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Stride != width*4 || rgba.Rect.Min != (image.Point{}) {
		rgba = image.NewRGBA(image.Rect(0, 0, width, height))
		draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	}

	return TextureStagingData{
		Pixels: rgba.Pix,
		Width:  width,
		Height: height,
	}
}
