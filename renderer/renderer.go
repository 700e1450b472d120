package renderer

import (
	"context"
	"fmt"
	"time"

	"github.com/lumen-render/lumen/bitmap"
	"github.com/lumen-render/lumen/log"
	"github.com/lumen-render/lumen/scene"
)

// Renderer runs render jobs against a backend, one at a time. The slot
// channel is the single shared resource: capacity one, reject on full, so
// the at-most-one-active-job invariant is checkable by inspection.
type Renderer struct {
	backend Backend
	slot    chan struct{}
	logger  log.Logger
}

// New creates a renderer around the given backend.
func New(backend Backend) *Renderer {
	return &Renderer{
		backend: backend,
		slot:    make(chan struct{}, 1),
		logger:  log.New("renderer"),
	}
}

// Submit starts an asynchronous render job writing its PNG to outPath.
// It returns ErrBusy, without queueing, when another job is in flight.
func (r *Renderer) Submit(ctx context.Context, sceneName string, d scene.Dict, opts Options, outPath string) (*Job, error) {
	opts.Clamp()

	select {
	case r.slot <- struct{}{}:
	default:
		return nil, ErrBusy
	}

	jobCtx, cancel := context.WithCancel(ctx)
	job := newJob(sceneName, opts, cancel)

	r.logger.Noticef("render requested: %s %dx%d %d spp (%s)",
		sceneName, opts.Width, opts.Height, opts.SamplesPerPixel, opts.Variant)

	go r.run(jobCtx, job, d, outPath)
	return job, nil
}

// Render is the synchronous form used by the command-line demos.
func (r *Renderer) Render(ctx context.Context, sceneName string, d scene.Dict, opts Options, outPath string) (*Result, error) {
	job, err := r.Submit(ctx, sceneName, d, opts, outPath)
	if err != nil {
		return nil, err
	}
	return job.Wait()
}

// run executes a single job on the worker goroutine. It is the only
// blocking operation in the application; everything it produces flows back
// through the job's event channel.
func (r *Renderer) run(ctx context.Context, job *Job, d scene.Dict, outPath string) {
	defer func() { <-r.slot }()
	defer job.cancel()

	// Cancelled while still requested: guaranteed never to run.
	if ctx.Err() != nil {
		r.logger.Notice("render cancelled before start")
		job.finish(StateCancelled, nil, ErrCancelled)
		return
	}

	job.setState(StateRunning)
	job.emit(Event{Kind: EventLog, Message: "render started"})
	job.emit(Event{Kind: EventProgress, Progress: 0})

	sawProgress := false
	onProgress := func(p float64) {
		sawProgress = true
		job.setProgress(p)
		job.emit(Event{Kind: EventProgress, Progress: p})
	}

	start := time.Now()
	frame, err := r.backend.Render(ctx, d, job.Opts, onProgress)
	elapsed := time.Since(start)

	// A backend already inside an uninterruptible native call cannot be
	// stopped mid-flight; its result is discarded on return instead.
	if ctx.Err() != nil {
		r.logger.Noticef("render cancelled after %s, result discarded", elapsed)
		job.finish(StateCancelled, nil, ErrCancelled)
		return
	}
	if err != nil {
		r.logger.Errorf("render failed after %s: %s", elapsed, err)
		job.emit(Event{Kind: EventLog, Message: err.Error()})
		job.finish(StateFailed, nil, err)
		return
	}

	// Backends without native progress get the coarse mid tick between
	// the start and done notifications.
	if !sawProgress {
		job.setProgress(0.5)
		job.emit(Event{Kind: EventProgress, Progress: 0.5})
	}

	img := frame.ToRGBA(job.Opts.Exposure, 2.2)
	if werr := bitmap.WritePNG(outPath, img); werr != nil {
		r.logger.Errorf("cannot persist frame: %s", werr)
		job.finish(StateFailed, nil, fmt.Errorf("%w: %v", ErrRenderFailed, werr))
		return
	}

	r.logger.Noticef("rendered %s in %s, wrote %s", job.SceneName, elapsed, outPath)
	job.emit(Event{Kind: EventProgress, Progress: 1.0})
	job.finish(StateCompleted, &Result{
		Buffer:     frame,
		Image:      img,
		OutputPath: outPath,
		Elapsed:    elapsed,
	}, nil)
}
