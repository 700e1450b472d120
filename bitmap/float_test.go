package bitmap

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestToRGBAClampsAndEncodes(t *testing.T) {
	f := NewFloat(3, 1)
	f.Set(0, 0, -1, -1, -1) // below range
	f.Set(1, 0, 1, 1, 1)    // exactly full
	f.Set(2, 0, 10, 10, 10) // above range

	img := f.ToRGBA(1.0, 2.2)

	if c := img.RGBAAt(0, 0); c.R != 0 || c.G != 0 || c.B != 0 {
		t.Fatalf("expected negative values clamped to black; got %v", c)
	}
	if c := img.RGBAAt(1, 0); c.R != 255 {
		t.Fatalf("expected full intensity at 255; got %v", c)
	}
	if full, over := img.RGBAAt(1, 0), img.RGBAAt(2, 0); full != over {
		t.Fatalf("expected over-range values clamped to full; got %v vs %v", full, over)
	}
	if a := img.RGBAAt(0, 0).A; a != 255 {
		t.Fatalf("expected opaque alpha; got %d", a)
	}
}

func TestToRGBAGamma(t *testing.T) {
	f := NewFloat(1, 1)
	f.Set(0, 0, 0.5, 0.5, 0.5)

	// 0.5^(1/2.2) * 255 + 0.5 rounds to 186.
	if c := f.ToRGBA(1.0, 2.2).RGBAAt(0, 0); c.R != 186 {
		t.Fatalf("expected gamma-encoded 186; got %d", c.R)
	}

	// Gamma 1.0 is a straight linear quantization.
	if c := f.ToRGBA(1.0, 1.0).RGBAAt(0, 0); c.R != 128 {
		t.Fatalf("expected linear 128; got %d", c.R)
	}
}

func TestToRGBAExposure(t *testing.T) {
	f := NewFloat(1, 1)
	f.Set(0, 0, 0.25, 0.25, 0.25)

	dim := f.ToRGBA(1.0, 1.0).RGBAAt(0, 0)
	bright := f.ToRGBA(2.0, 1.0).RGBAAt(0, 0)
	if bright.R <= dim.R {
		t.Fatalf("expected higher exposure to brighten; got %d vs %d", bright.R, dim.R)
	}
}

func TestWritePNG(t *testing.T) {
	f := NewFloat(4, 4)
	for i := range f.Pix {
		f.Pix[i] = 0.5
	}

	path := filepath.Join(t.TempDir(), "frame.png")
	if err := WritePNG(path, f.ToRGBA(1.0, 2.2)); err != nil {
		t.Fatal(err)
	}

	fh, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer fh.Close()
	img, err := png.Decode(fh)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 4 {
		t.Fatalf("expected 4x4 png; got %v", img.Bounds())
	}
}
