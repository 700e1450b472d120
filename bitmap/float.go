// Package bitmap handles the floating-point pixel buffers produced by the
// render worker: PFM decoding, tone mapping and PNG export.
package bitmap

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
)

// Float is a H x W x 3 floating-point pixel buffer in scanline order,
// top row first.
type Float struct {
	Width  int
	Height int
	Pix    []float32 // len == Width*Height*3, RGB interleaved
}

// NewFloat allocates a zeroed buffer.
func NewFloat(width, height int) *Float {
	return &Float{
		Width:  width,
		Height: height,
		Pix:    make([]float32, width*height*3),
	}
}

// At returns the RGB triple at (x, y).
func (f *Float) At(x, y int) (r, g, b float32) {
	i := (y*f.Width + x) * 3
	return f.Pix[i], f.Pix[i+1], f.Pix[i+2]
}

// Set stores the RGB triple at (x, y).
func (f *Float) Set(x, y int, r, g, b float32) {
	i := (y*f.Width + x) * 3
	f.Pix[i], f.Pix[i+1], f.Pix[i+2] = r, g, b
}

// ToRGBA converts the buffer to an 8-bit image by applying exposure,
// clamping to [0,1] and encoding with the given gamma.
func (f *Float) ToRGBA(exposure, gamma float64) *image.RGBA {
	if exposure <= 0 {
		exposure = 1.0
	}
	if gamma <= 0 {
		gamma = 2.2
	}
	inv := 1.0 / gamma

	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			r, g, b := f.At(x, y)
			img.SetRGBA(x, y, color.RGBA{
				R: quantize(float64(r)*exposure, inv),
				G: quantize(float64(g)*exposure, inv),
				B: quantize(float64(b)*exposure, inv),
				A: 0xff,
			})
		}
	}
	return img
}

func quantize(v, invGamma float64) uint8 {
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	return uint8(math.Pow(v, invGamma)*255.0 + 0.5)
}

// WritePNG persists an image to path.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("bitmap: %v", err)
	}
	defer f.Close()

	if err = png.Encode(f, img); err != nil {
		return fmt.Errorf("bitmap: encoding %s: %v", path, err)
	}
	return nil
}
