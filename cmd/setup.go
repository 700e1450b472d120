package cmd

import (
	"bytes"
	"fmt"

	"github.com/lumen-render/lumen/config"
	"github.com/lumen-render/lumen/renderer"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// loadConfig reads lumen.toml (or the --config override), prepares the
// output/log directories and wires up logging.
func loadConfig(ctx *cli.Context) (config.Config, error) {
	path := ctx.GlobalString("config")
	if path == "" {
		path = "lumen.toml"
	}

	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	if err = cfg.EnsureDirs(); err != nil {
		return cfg, err
	}

	setupLogging(ctx, cfg)
	return cfg, nil
}

// newRenderer builds the worker-backed renderer from the configuration.
func newRenderer(cfg config.Config) *renderer.Renderer {
	return renderer.New(renderer.NewMitsuba(cfg.WorkerPath))
}

// optionsFromFlags merges command-line render settings over the configured
// defaults.
func optionsFromFlags(ctx *cli.Context, cfg config.Config) renderer.Options {
	opts := renderer.Options{
		Width:           cfg.DefaultWidth,
		Height:          cfg.DefaultHeight,
		SamplesPerPixel: cfg.DefaultSamples,
		MaxDepth:        cfg.DefaultDepth,
		Variant:         cfg.DefaultVariant,
		Exposure:        cfg.Exposure,
	}
	if ctx.IsSet("width") {
		opts.Width = ctx.Int("width")
	}
	if ctx.IsSet("height") {
		opts.Height = ctx.Int("height")
	}
	if ctx.IsSet("spp") {
		opts.SamplesPerPixel = ctx.Int("spp")
	}
	if ctx.IsSet("depth") {
		opts.MaxDepth = ctx.Int("depth")
	}
	if ctx.IsSet("variant") {
		opts.Variant = ctx.String("variant")
	}
	if ctx.IsSet("exposure") {
		opts.Exposure = ctx.Float64("exposure")
	}
	opts.Clamp()
	return opts
}

// displayRenderStats prints a summary table after a command-line render.
func displayRenderStats(res *renderer.Result, opts renderer.Options) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Resolution", "Samples", "Variant", "Render time", "Output"})
	table.Append([]string{
		fmt.Sprintf("%dx%d", opts.Width, opts.Height),
		fmt.Sprintf("%d", opts.SamplesPerPixel),
		opts.Variant,
		res.Elapsed.String(),
		res.OutputPath,
	})

	table.Render()
	logger.Noticef("frame statistics\n%s", buf.String())
}
