// Package gui implements the desktop application: one tab per demo scene,
// parameter controls generated from the scene definitions, a shared image
// viewer and a log console.
package gui

import (
	"context"
	"errors"
	"image"
	"image/png"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/lumen-render/lumen/config"
	"github.com/lumen-render/lumen/log"
	"github.com/lumen-render/lumen/renderer"
	"github.com/lumen-render/lumen/scene"
)

var logger = log.New("gui")

type studio struct {
	cfg      config.Config
	window   fyne.Window
	renderer *renderer.Renderer

	viewer   *canvas.Image
	progress *widget.ProgressBar
	status   *widget.Label
	console  *console

	jobMu     sync.Mutex
	job       *renderer.Job // guarded by jobMu
	lastImage image.Image
}

func (s *studio) setJob(j *renderer.Job) {
	s.jobMu.Lock()
	s.job = j
	s.jobMu.Unlock()
}

// cancelJob cancels the in-flight job, if any. Cancelling a job that just
// finished is a no-op, so racing a completion is harmless.
func (s *studio) cancelJob() {
	s.jobMu.Lock()
	j := s.job
	s.jobMu.Unlock()
	if j != nil {
		j.Cancel()
	}
}

// Run builds the main window and blocks until the user closes it.
func Run(cfg config.Config) error {
	a := app.New()
	w := a.NewWindow("Lumen Render Studio")

	s := &studio{
		cfg:      cfg,
		window:   w,
		renderer: renderer.New(renderer.NewMitsuba(cfg.WorkerPath)),
		progress: widget.NewProgressBar(),
		status:   widget.NewLabel("Idle"),
		console:  newConsole(),
	}

	placeholder := image.NewRGBA(image.Rect(0, 0, cfg.DefaultWidth, cfg.DefaultHeight))
	s.viewer = canvas.NewImageFromImage(placeholder)
	s.viewer.FillMode = canvas.ImageFillContain
	s.viewer.SetMinSize(fyne.NewSize(512, 512))

	log.AddSink(s.console)
	logger.Notice("render studio started")

	tabs := container.NewAppTabs(s.homeTab())
	for _, kind := range scene.Kinds() {
		tabs.Append(container.NewTabItem(kind.Title(), s.sceneTab(kind)))
	}
	tabs.Append(container.NewTabItem("Custom Mesh", infoTab(customMeshText)))
	tabs.Append(container.NewTabItem("Inverse Rendering", infoTab(inverseRenderingText)))

	saveBtn := widget.NewButton("Save Image As...", s.saveImage)
	right := container.NewBorder(
		nil,
		container.NewVBox(s.progress, container.NewBorder(nil, nil, nil, saveBtn, s.status)),
		nil, nil,
		container.NewVSplit(s.viewer, container.NewScroll(s.console.entry)),
	)

	split := container.NewHSplit(tabs, right)
	split.SetOffset(0.35)

	w.SetContent(split)
	w.Resize(fyne.NewSize(float32(cfg.WindowWidth), float32(cfg.WindowHeight)))
	w.ShowAndRun()

	log.Close()
	return nil
}

// sceneTab builds one demo tab: generated parameter controls, the render
// settings shared by every scene, and the render/cancel triggers.
func (s *studio) sceneTab(kind scene.Kind) fyne.CanvasObject {
	controls := newControlSet(kind.Defs())
	form := controls.form(nil)

	settings := newControlSet(renderSettingDefs(s.cfg))
	settingsForm := settings.form(nil)

	renderBtn := widget.NewButton("Render", func() {
		s.startRender(kind, controls.params(), settings.params())
	})
	cancelBtn := widget.NewButton("Cancel", s.cancelJob)

	return container.NewVScroll(container.NewVBox(
		widget.NewCard(kind.Title(), "", form),
		widget.NewCard("Render Settings", "", settingsForm),
		container.NewGridWithColumns(2, renderBtn, cancelBtn),
	))
}

// renderSettingDefs exposes the render options as parameter definitions so
// the settings group reuses the same widget generation as scene parameters.
func renderSettingDefs(cfg config.Config) []scene.ParamDef {
	return []scene.ParamDef{
		{Name: "width", Label: "Width", Type: scene.IntParam, Default: cfg.DefaultWidth, Min: 64, Max: 2048},
		{Name: "height", Label: "Height", Type: scene.IntParam, Default: cfg.DefaultHeight, Min: 64, Max: 2048},
		{Name: "spp", Label: "Samples/Pixel", Type: scene.IntParam, Default: cfg.DefaultSamples, Min: 1, Max: 1024},
		{Name: "variant", Label: "Variant", Type: scene.ChoiceParam, Default: cfg.DefaultVariant,
			Choices: renderer.Variants()},
	}
}

// startRender kicks off a background job. A second trigger while one is in
// flight is rejected and surfaced in the console, never queued.
func (s *studio) startRender(kind scene.Kind, params scene.Params, settings scene.Params) {
	d, err := kind.Build(params)
	if err != nil {
		logger.Errorf("cannot build scene: %s", err)
		s.status.SetText("Error: " + err.Error())
		return
	}

	opts := renderer.Options{
		Width:           settings.Int("width"),
		Height:          settings.Int("height"),
		SamplesPerPixel: settings.Int("spp"),
		Variant:         settings.String("variant"),
		Exposure:        s.cfg.Exposure,
	}

	outPath := s.cfg.TimestampedOutputPath(kind.String(), time.Now())
	job, err := s.renderer.Submit(context.Background(), kind.String(), d, opts, outPath)
	if err != nil {
		if errors.Is(err, renderer.ErrBusy) {
			logger.Warning("render already in progress")
			s.status.SetText("Busy: a render is already running")
			return
		}
		logger.Errorf("cannot start render: %s", err)
		s.status.SetText("Error: " + err.Error())
		return
	}

	s.setJob(job)
	s.progress.SetValue(0)
	s.status.SetText("Rendering " + kind.Title() + "...")

	go s.consumeEvents(job)
}

// consumeEvents forwards job notifications to the widgets. Events arrive in
// order with the terminal event last, so the final UI state always matches
// the job outcome.
func (s *studio) consumeEvents(job *renderer.Job) {
	for ev := range job.Events() {
		switch ev.Kind {
		case renderer.EventProgress:
			s.progress.SetValue(ev.Progress)
		case renderer.EventLog:
			s.console.Append(ev.Message)
		case renderer.EventDone:
			s.finishJob(ev)
		}
	}
}

func (s *studio) finishJob(ev renderer.Event) {
	s.setJob(nil)
	switch {
	case ev.Err == nil:
		s.progress.SetValue(1)
		s.status.SetText("Done: " + ev.Result.OutputPath)
		s.lastImage = ev.Result.Image
		s.viewer.Image = ev.Result.Image
		s.viewer.Refresh()
	case errors.Is(ev.Err, renderer.ErrCancelled):
		s.status.SetText("Cancelled")
	default:
		s.status.SetText("Failed: " + ev.Err.Error())
	}
}

// saveImage writes the most recent render to a user-chosen PNG location.
func (s *studio) saveImage() {
	if s.lastImage == nil {
		s.status.SetText("Nothing to save yet")
		return
	}
	dialog.ShowFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil || wc == nil {
			return
		}
		defer wc.Close()
		if err = png.Encode(wc, s.lastImage); err != nil {
			logger.Errorf("cannot save image: %s", err)
			s.status.SetText("Save failed: " + err.Error())
			return
		}
		logger.Noticef("saved image to %s", wc.URI())
		s.status.SetText("Saved " + wc.URI().Name())
	}, s.window)
}

func (s *studio) homeTab() *container.TabItem {
	intro := widget.NewRichTextFromMarkdown(homeText)
	intro.Wrapping = fyne.TextWrapWord
	return container.NewTabItem("Home", container.NewVScroll(intro))
}

func infoTab(text string) fyne.CanvasObject {
	rt := widget.NewRichTextFromMarkdown(text)
	rt.Wrapping = fyne.TextWrapWord
	return container.NewVScroll(rt)
}
