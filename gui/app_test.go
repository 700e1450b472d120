package gui

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/lumen-render/lumen/bitmap"
	"github.com/lumen-render/lumen/renderer"
	"github.com/lumen-render/lumen/scene"
)

type instantBackend struct{}

func (instantBackend) Name() string { return "instant" }

func (instantBackend) Variants(ctx context.Context) ([]string, error) {
	return []string{renderer.VariantScalar}, nil
}

func (instantBackend) Render(ctx context.Context, d scene.Dict, opts renderer.Options, progress func(float64)) (*bitmap.Float, error) {
	return bitmap.NewFloat(opts.Width, opts.Height), nil
}

// The cancel button and the event consumer touch the current job from
// different goroutines; cancelling must stay safe while a job finishes and
// the slot is cleared.
func TestCancelRacesJobCompletion(t *testing.T) {
	r := renderer.New(instantBackend{})
	s := &studio{renderer: r}

	d, err := scene.NewBasicScene(scene.Params{})
	if err != nil {
		t.Fatal(err)
	}
	opts := renderer.DefaultOptions()
	opts.Width, opts.Height = 8, 8
	dir := t.TempDir()

	for i := 0; i < 20; i++ {
		// The slot frees an instant after Wait returns, so retry on busy.
		var job *renderer.Job
		for {
			job, err = r.Submit(context.Background(), "basic", d, opts, filepath.Join(dir, "out.png"))
			if !errors.Is(err, renderer.ErrBusy) {
				break
			}
		}
		if err != nil {
			t.Fatal(err)
		}
		s.setJob(job)

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			job.Wait()
			s.setJob(nil)
		}()
		go func() {
			defer wg.Done()
			s.cancelJob()
		}()
		wg.Wait()

		if job.State() != renderer.StateCompleted && job.State() != renderer.StateCancelled {
			t.Fatalf("expected a terminal job state; got %v", job.State())
		}
	}
}

func TestCancelWithoutJobIsNoOp(t *testing.T) {
	s := &studio{}
	s.cancelJob()
	s.setJob(nil)
	s.cancelJob()
}
