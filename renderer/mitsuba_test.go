package renderer

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/lumen-render/lumen/scene"
)

func TestClassifyWorkerError(t *testing.T) {
	exitErr := fmt.Errorf("exit status 1")

	cases := []struct {
		stderr string
		exp    error
		msg    string
	}{
		{"ERROR:scene:unknown plugin 'warpdrive'", ErrInvalidScene, "unknown plugin 'warpdrive'"},
		{"ERROR:variant:cuda_ad_rgb is not compiled in", ErrUnsupportedVariant, "cuda_ad_rgb is not compiled in"},
		{"ERROR:render:out of memory", ErrRenderFailed, "out of memory"},
		{"some unstructured crash output", ErrRenderFailed, "some unstructured crash output"},
		{"", ErrRenderFailed, "exit status 1"},
	}

	for _, tc := range cases {
		err := classifyWorkerError(exitErr, tc.stderr)
		if !errors.Is(err, tc.exp) {
			t.Fatalf("stderr %q: expected %v; got %v", tc.stderr, tc.exp, err)
		}
		if !strings.Contains(err.Error(), tc.msg) {
			t.Fatalf("stderr %q: expected message %q; got %q", tc.stderr, tc.msg, err.Error())
		}
	}
}

func TestClassifyWorkerErrorUsesLastErrorLine(t *testing.T) {
	stderr := "LOG:loading scene\nERROR:render:warmup failed\nERROR:scene:missing emitter"
	err := classifyWorkerError(fmt.Errorf("exit status 1"), stderr)
	if !errors.Is(err, ErrInvalidScene) {
		t.Fatalf("expected the last error line to win; got %v", err)
	}
}

// failingReader yields its payload, then an error, as a worker pipe does
// when the process dies mid-write.
type failingReader struct {
	data []byte
	err  error
}

func (r *failingReader) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, r.err
	}
	n := copy(p, r.data)
	r.data = r.data[n:]
	return n, nil
}

func TestConsumeWorkerOutput(t *testing.T) {
	m := NewMitsuba("lumen-worker")

	var ticks []float64
	in := strings.NewReader("PROGRESS:25\nLOG:tracing\nPROGRESS:100\nnoise\n")
	if err := m.consumeWorkerOutput(in, func(p float64) { ticks = append(ticks, p) }); err != nil {
		t.Fatal(err)
	}
	if len(ticks) != 2 || ticks[0] != 0.25 || ticks[1] != 1.0 {
		t.Fatalf("expected progress ticks [0.25 1]; got %v", ticks)
	}
}

func TestConsumeWorkerOutputReportsReadError(t *testing.T) {
	m := NewMitsuba("lumen-worker")
	readErr := errors.New("read: connection reset")

	var ticks []float64
	r := &failingReader{data: []byte("PROGRESS:50\n"), err: readErr}
	err := m.consumeWorkerOutput(r, func(p float64) { ticks = append(ticks, p) })
	if !errors.Is(err, readErr) {
		t.Fatalf("expected the read error surfaced; got %v", err)
	}
	if len(ticks) != 1 || ticks[0] != 0.5 {
		t.Fatalf("expected the lines before the error forwarded; got %v", ticks)
	}
}

func TestWriteSceneFilePayload(t *testing.T) {
	d, err := scene.NewBasicScene(scene.Params{})
	if err != nil {
		t.Fatal(err)
	}
	opts := DefaultOptions()
	opts.Width, opts.Height = 256, 128

	path, err := writeSceneFile(d, opts)
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(path)

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var payload struct {
		Scene   map[string]interface{} `json:"scene"`
		Options struct {
			Variant string `json:"variant"`
			Spp     int    `json:"spp"`
		} `json:"options"`
	}
	if err = json.Unmarshal(raw, &payload); err != nil {
		t.Fatal(err)
	}

	if payload.Options.Variant != VariantScalar {
		t.Fatalf("expected variant %s; got %s", VariantScalar, payload.Options.Variant)
	}
	if payload.Options.Spp != opts.SamplesPerPixel {
		t.Fatalf("expected spp %d; got %d", opts.SamplesPerPixel, payload.Options.Spp)
	}
	if payload.Scene["type"] != "scene" {
		t.Fatalf("expected scene root in payload; got %v", payload.Scene["type"])
	}

	film := payload.Scene["sensor"].(map[string]interface{})["film"].(map[string]interface{})
	if film["width"].(float64) != 256 || film["height"].(float64) != 128 {
		t.Fatalf("expected 256x128 film in payload; got %vx%v", film["width"], film["height"])
	}
}
