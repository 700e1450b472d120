package renderer

import "errors"

var (
	// ErrBusy rejects a render request while another job is in flight.
	// Jobs are never queued behind one another.
	ErrBusy = errors.New("renderer: another render is in progress")

	// ErrCancelled reports a user-initiated cancellation.
	ErrCancelled = errors.New("renderer: cancelled")

	// ErrInvalidScene reports a scene description rejected by the
	// external renderer's schema.
	ErrInvalidScene = errors.New("renderer: scene description rejected")

	// ErrUnsupportedVariant reports a numerical backend variant that is
	// not available on this machine.
	ErrUnsupportedVariant = errors.New("renderer: variant not available")

	// ErrRenderFailed reports an unspecified internal renderer failure.
	ErrRenderFailed = errors.New("renderer: render failed")
)
