package renderer

import "github.com/lumen-render/lumen/scene"

// Backend variants understood by the worker.
const (
	VariantScalar = "scalar_rgb"  // single-threaded CPU reference mode
	VariantLLVM   = "llvm_ad_rgb" // vectorized CPU, differentiable
	VariantCUDA   = "cuda_ad_rgb" // GPU, differentiable
)

// Variants returns the known backend variants in preference order.
func Variants() []string {
	return []string{VariantScalar, VariantLLVM, VariantCUDA}
}

// VariantDescription returns a short human-readable summary for the
// variants listing.
func VariantDescription(v string) string {
	switch v {
	case VariantScalar:
		return "portable scalar CPU mode, works everywhere"
	case VariantLLVM:
		return "JIT-vectorized CPU mode, differentiable"
	case VariantCUDA:
		return "CUDA GPU mode, differentiable, needs an NVIDIA driver"
	}
	return "unknown variant"
}

// Options are the render settings merged into the scene description before
// invocation. They are orthogonal to the scene itself.
type Options struct {
	// Frame dims.
	Width  int
	Height int

	// Samples per pixel. Quality/speed tradeoff.
	SamplesPerPixel int

	// Maximum light-bounce depth. Zero keeps the depth chosen by the
	// scene builder.
	MaxDepth int

	// Numerical backend variant.
	Variant string

	// Exposure for tonemapping.
	Exposure float64
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Width:           512,
		Height:          512,
		SamplesPerPixel: 64,
		MaxDepth:        0,
		Variant:         VariantScalar,
		Exposure:        1.0,
	}
}

// Clamp coerces every setting into its documented range so that any slider
// position stays renderable. A zero sample count becomes the minimum of one
// rather than reaching the external renderer.
func (o *Options) Clamp() {
	o.Width = clampInt(o.Width, 16, 8192)
	o.Height = clampInt(o.Height, 16, 8192)
	o.SamplesPerPixel = clampInt(o.SamplesPerPixel, 1, 8192)
	o.MaxDepth = clampInt(o.MaxDepth, 0, 64)
	if o.Variant == "" {
		o.Variant = VariantScalar
	}
	if o.Exposure <= 0 {
		o.Exposure = 1.0
	}
}

// Apply merges the settings into a copy of the scene description, replacing
// the builder's placeholder film, sampler and integrator values.
func (o Options) Apply(d scene.Dict) scene.Dict {
	out := d.Clone()

	if sensor := out.Sub("sensor"); sensor != nil {
		if film := sensor.Sub("film"); film != nil {
			film["width"] = o.Width
			film["height"] = o.Height
		}
		if sampler := sensor.Sub("sampler"); sampler != nil {
			sampler["sample_count"] = o.SamplesPerPixel
		}
	}
	if integrator := out.Sub("integrator"); o.MaxDepth > 0 && integrator != nil {
		integrator["max_depth"] = o.MaxDepth
	}
	return out
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
