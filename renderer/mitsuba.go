package renderer

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/lumen-render/lumen/bitmap"
	"github.com/lumen-render/lumen/log"
	"github.com/lumen-render/lumen/scene"
)

// Mitsuba invokes the external render worker binary. The worker consumes a
// JSON scene file, emits "PROGRESS:<0-100>" and "LOG:<msg>" lines on stdout,
// "ERROR:<stage>:<msg>" on stderr, and writes the raw framebuffer as a PFM
// file. The scene schema is the worker's contract; this side never
// validates it.
type Mitsuba struct {
	// WorkerPath locates the worker binary; resolved through PATH when
	// not absolute.
	WorkerPath string

	logger log.Logger
}

// NewMitsuba creates a worker-backed render backend.
func NewMitsuba(workerPath string) *Mitsuba {
	return &Mitsuba{
		WorkerPath: workerPath,
		logger:     log.New("mitsuba"),
	}
}

func (m *Mitsuba) Name() string {
	return "mitsuba"
}

// Variants asks the worker which numerical variants its renderer build
// supports, one per output line.
func (m *Mitsuba) Variants(ctx context.Context) ([]string, error) {
	out, err := exec.CommandContext(ctx, m.WorkerPath, "--list-variants").Output()
	if err != nil {
		return nil, fmt.Errorf("%w: cannot query worker: %v", ErrUnsupportedVariant, err)
	}

	var variants []string
	for _, line := range strings.Split(string(out), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			variants = append(variants, line)
		}
	}
	return variants, nil
}

// Render shells out to the worker and blocks until it exits.
func (m *Mitsuba) Render(ctx context.Context, d scene.Dict, opts Options, progress func(float64)) (*bitmap.Float, error) {
	sceneFile, err := writeSceneFile(d, opts)
	if err != nil {
		return nil, err
	}
	defer os.Remove(sceneFile)

	outFile := sceneFile + ".pfm"
	defer os.Remove(outFile)

	cmd := exec.CommandContext(ctx, m.WorkerPath,
		"--variant", opts.Variant,
		"--spp", strconv.Itoa(opts.SamplesPerPixel),
		sceneFile, outFile,
	)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	m.logger.Infof("starting worker %s (variant %s, %d spp)", m.WorkerPath, opts.Variant, opts.SamplesPerPixel)
	if err = cmd.Start(); err != nil {
		return nil, fmt.Errorf("%w: cannot start worker %s: %v", ErrRenderFailed, m.WorkerPath, err)
	}

	if serr := m.consumeWorkerOutput(stdout, progress); serr != nil {
		m.logger.Warningf("worker output stream ended early: %s", serr)
	}

	if err = cmd.Wait(); err != nil {
		if ctx.Err() != nil {
			return nil, ErrCancelled
		}
		return nil, classifyWorkerError(err, stderr.String())
	}

	frame, err := bitmap.ReadPFM(outFile)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot read worker output: %v", ErrRenderFailed, err)
	}
	if frame.Width != opts.Width || frame.Height != opts.Height {
		m.logger.Warningf("worker returned %dx%d frame, expected %dx%d",
			frame.Width, frame.Height, opts.Width, opts.Height)
	}
	return frame, nil
}

// consumeWorkerOutput forwards the worker's stdout line protocol until the
// stream ends, reporting any read error that cut it short.
func (m *Mitsuba) consumeWorkerOutput(r io.Reader, progress func(float64)) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "PROGRESS:"):
			if pct, err := strconv.Atoi(strings.TrimPrefix(line, "PROGRESS:")); err == nil && progress != nil {
				progress(float64(pct) / 100.0)
			}
		case strings.HasPrefix(line, "LOG:"):
			m.logger.Info(strings.TrimPrefix(line, "LOG:"))
		default:
			m.logger.Debug(line)
		}
	}
	return scanner.Err()
}

// writeSceneFile serializes the merged scene description to a temp file.
func writeSceneFile(d scene.Dict, opts Options) (string, error) {
	payload := map[string]interface{}{
		"scene": opts.Apply(d),
		"options": map[string]interface{}{
			"variant": opts.Variant,
			"spp":     opts.SamplesPerPixel,
		},
	}

	f, err := os.CreateTemp("", "lumen-scene-*.json")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}
	enc := json.NewEncoder(f)
	if err = enc.Encode(payload); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}
	if err = f.Close(); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}
	return f.Name(), nil
}

// classifyWorkerError maps worker failures onto the error taxonomy using the
// "ERROR:<stage>:<msg>" stderr protocol. Anything unrecognized is an
// internal renderer failure, surfaced with the worker's own message.
func classifyWorkerError(err error, stderr string) error {
	stage, msg := "", strings.TrimSpace(stderr)
	for _, line := range strings.Split(stderr, "\n") {
		if !strings.HasPrefix(line, "ERROR:") {
			continue
		}
		parts := strings.SplitN(strings.TrimPrefix(line, "ERROR:"), ":", 2)
		stage = parts[0]
		if len(parts) == 2 {
			msg = strings.TrimSpace(parts[1])
		}
	}

	switch stage {
	case "scene":
		return fmt.Errorf("%w: %s", ErrInvalidScene, msg)
	case "variant":
		return fmt.Errorf("%w: %s", ErrUnsupportedVariant, msg)
	}
	if msg == "" {
		msg = err.Error()
	}
	return fmt.Errorf("%w: %s", ErrRenderFailed, msg)
}
