package renderer

import (
	"context"

	"github.com/lumen-render/lumen/bitmap"
	"github.com/lumen-render/lumen/scene"
)

// Backend runs the external renderer against a merged scene description.
// Implementations must honor context cancellation and may report progress
// in [0,1] through the callback; a backend that reports nothing gets coarse
// progress synthesized by the Renderer.
type Backend interface {
	// Name of the backend, for logs.
	Name() string

	// Variants reports which numerical backend variants this machine
	// supports.
	Variants(ctx context.Context) ([]string, error)

	// Render blocks until the frame is done, cancelled or failed.
	Render(ctx context.Context, d scene.Dict, opts Options, progress func(float64)) (*bitmap.Float, error)
}
