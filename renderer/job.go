package renderer

import (
	"context"
	"image"
	"sync"
	"time"

	"github.com/lumen-render/lumen/bitmap"
)

// State tracks a render job through its lifecycle:
//
//	Requested -> Running -> Completed | Failed | Cancelled
//
// Requested becomes Running only while no other job holds the slot, and a
// job cancelled while still Requested never runs.
type State int

const (
	StateRequested State = iota
	StateRunning
	StateCompleted
	StateFailed
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateRequested:
		return "requested"
	case StateRunning:
		return "running"
	case StateCompleted:
		return "completed"
	case StateFailed:
		return "failed"
	case StateCancelled:
		return "cancelled"
	}
	return "unknown"
}

// Terminal reports whether the job has finished one way or another.
func (s State) Terminal() bool {
	return s == StateCompleted || s == StateFailed || s == StateCancelled
}

// EventKind discriminates job notifications.
type EventKind int

const (
	EventProgress EventKind = iota
	EventLog
	EventDone
)

// Event is one notification from a running job. Events arrive in production
// order and EventDone is always the final one.
type Event struct {
	Kind     EventKind
	Progress float64 // for EventProgress, in [0,1]
	Message  string  // for EventLog
	Result   *Result // for EventDone on success
	Err      error   // for EventDone on failure or cancellation
}

// Result is the outcome of a completed render.
type Result struct {
	// Buffer is the raw floating-point framebuffer from the backend.
	Buffer *bitmap.Float

	// Image is the tone-mapped 8-bit conversion.
	Image *image.RGBA

	// OutputPath is where the PNG was written.
	OutputPath string

	// Elapsed covers the backend call only, not tone mapping or I/O.
	Elapsed time.Duration
}

// Job is one in-flight render. It is created in StateRequested and owns the
// merged scene, a progress fraction and a cancellation hook. All state moves
// through the mutex; the background worker is the only writer after Submit.
type Job struct {
	SceneName string
	Opts      Options

	events chan Event
	done   chan struct{}
	cancel context.CancelFunc

	mu       sync.Mutex
	state    State
	progress float64
	result   *Result
	err      error
}

func newJob(sceneName string, opts Options, cancel context.CancelFunc) *Job {
	return &Job{
		SceneName: sceneName,
		Opts:      opts,
		events:    make(chan Event, 128),
		done:      make(chan struct{}),
		cancel:    cancel,
		state:     StateRequested,
	}
}

// Events returns the notification stream. The channel closes after the
// terminal event has been delivered.
func (j *Job) Events() <-chan Event {
	return j.events
}

// State returns the current lifecycle state.
func (j *Job) State() State {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.state
}

// Progress returns the last reported progress fraction.
func (j *Job) Progress() float64 {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.progress
}

// Cancel requests cooperative cancellation. A job still in StateRequested is
// guaranteed never to run; a job already inside the backend call has its
// context cancelled and its result discarded on return.
func (j *Job) Cancel() {
	j.cancel()
}

// Wait blocks until the job reaches a terminal state.
func (j *Job) Wait() (*Result, error) {
	<-j.done
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.result, j.err
}

func (j *Job) setState(s State) {
	j.mu.Lock()
	j.state = s
	j.mu.Unlock()
}

func (j *Job) setProgress(p float64) {
	j.mu.Lock()
	if p > j.progress {
		j.progress = p
	}
	j.mu.Unlock()
}

// emit enqueues a non-terminal event, dropping it when the consumer lags.
func (j *Job) emit(ev Event) {
	select {
	case j.events <- ev:
	default:
	}
}

// finish records the outcome, delivers the terminal event and closes the
// stream. The worker goroutine is the only caller. Dropping stale progress
// events keeps the terminal event last even for a slow consumer.
func (j *Job) finish(s State, res *Result, err error) {
	j.mu.Lock()
	j.state = s
	j.result = res
	j.err = err
	if s == StateCompleted {
		j.progress = 1.0
	}
	j.mu.Unlock()

	ev := Event{Kind: EventDone, Result: res, Err: err}
	for {
		select {
		case j.events <- ev:
			close(j.events)
			close(j.done)
			return
		default:
			// Discard the oldest buffered event. The consumer may have
			// drained the channel in the meantime, so never block here.
			select {
			case <-j.events:
			default:
			}
		}
	}
}
