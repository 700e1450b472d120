package renderer

import (
	"testing"

	"github.com/lumen-render/lumen/scene"
)

func TestClampZeroSamplesBecomesOne(t *testing.T) {
	opts := Options{Width: 512, Height: 512, SamplesPerPixel: 0}
	opts.Clamp()
	if opts.SamplesPerPixel != 1 {
		t.Fatalf("expected sample count coerced to 1; got %d", opts.SamplesPerPixel)
	}
}

func TestClampRanges(t *testing.T) {
	opts := Options{Width: 1, Height: 100000, SamplesPerPixel: 100000, MaxDepth: -3}
	opts.Clamp()

	if opts.Width != 16 {
		t.Fatalf("expected width clamped to 16; got %d", opts.Width)
	}
	if opts.Height != 8192 {
		t.Fatalf("expected height clamped to 8192; got %d", opts.Height)
	}
	if opts.SamplesPerPixel != 8192 {
		t.Fatalf("expected spp clamped to 8192; got %d", opts.SamplesPerPixel)
	}
	if opts.MaxDepth != 0 {
		t.Fatalf("expected depth clamped to 0; got %d", opts.MaxDepth)
	}
	if opts.Variant != VariantScalar {
		t.Fatalf("expected empty variant to default to %s; got %s", VariantScalar, opts.Variant)
	}
	if opts.Exposure != 1.0 {
		t.Fatalf("expected zero exposure to default to 1.0; got %v", opts.Exposure)
	}
}

func TestApplyOverridesFilmAndSampler(t *testing.T) {
	d, err := scene.NewBasicScene(scene.Params{})
	if err != nil {
		t.Fatal(err)
	}

	opts := DefaultOptions()
	opts.Width, opts.Height = 800, 600
	opts.SamplesPerPixel = 32
	merged := opts.Apply(d)

	film := merged.Sub("sensor").Sub("film")
	if film["width"] != 800 || film["height"] != 600 {
		t.Fatalf("expected 800x600 film; got %vx%v", film["width"], film["height"])
	}
	sampler := merged.Sub("sensor").Sub("sampler")
	if sampler["sample_count"] != 32 {
		t.Fatalf("expected sample_count 32; got %v", sampler["sample_count"])
	}
}

func TestApplyZeroDepthKeepsSceneDepth(t *testing.T) {
	d, err := scene.NewGlassScene(scene.Params{})
	if err != nil {
		t.Fatal(err)
	}
	sceneDepth := d.Sub("integrator")["max_depth"]

	opts := DefaultOptions() // MaxDepth zero
	merged := opts.Apply(d)
	if got := merged.Sub("integrator")["max_depth"]; got != sceneDepth {
		t.Fatalf("expected scene depth %v preserved; got %v", sceneDepth, got)
	}

	opts.MaxDepth = 4
	merged = opts.Apply(d)
	if got := merged.Sub("integrator")["max_depth"]; got != 4 {
		t.Fatalf("expected depth override 4; got %v", got)
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	d, err := scene.NewBasicScene(scene.Params{})
	if err != nil {
		t.Fatal(err)
	}
	before := d.Sub("sensor").Sub("film")["width"]

	opts := DefaultOptions()
	opts.Width = 4096
	opts.Apply(d)

	if d.Sub("sensor").Sub("film")["width"] != before {
		t.Fatal("expected Apply to leave the original scene untouched")
	}
}
