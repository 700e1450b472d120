package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/lumen-render/lumen/scene"
	"github.com/urfave/cli"
)

// Demo runs one fixed educational demonstration with documented defaults
// and writes its image(s) to the output directory.
func Demo(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	if ctx.NArg() != 1 {
		return errors.New("missing demo name argument (quick-start, basic, materials, lighting, glass, cornell)")
	}
	name := ctx.Args().First()

	r := newRenderer(cfg)
	opts := optionsFromFlags(ctx, cfg)

	switch name {
	case "quick-start":
		d, err := scene.NewQuickStart()
		if err != nil {
			return err
		}
		logger.Notice("rendering the quick-start scene: a red diffuse sphere, a ground plane and a point light")
		res, err := r.Render(context.Background(), "quick_start", d, opts, cfg.OutputPath("quick_start"))
		if err != nil {
			return err
		}
		displayRenderStats(res, opts)
		return nil

	case "lighting":
		// One image per lighting arrangement, same scene otherwise.
		for i, setup := range scene.LightingSetups {
			d, err := scene.NewLightingScene(scene.Params{"setup": setup})
			if err != nil {
				return err
			}
			outName := fmt.Sprintf("lighting_%02d_%s", i+1, setup)
			logger.Noticef("[%d/%d] rendering %s lighting", i+1, len(scene.LightingSetups), setup)
			res, err := r.Render(context.Background(), outName, d, opts, cfg.OutputPath(outName))
			if err != nil {
				return err
			}
			displayRenderStats(res, opts)
		}
		return nil

	default:
		kind, err := scene.ParseKind(name)
		if err != nil {
			return err
		}
		d, err := kind.Build(scene.Params{})
		if err != nil {
			return err
		}
		logger.Noticef("rendering the %s demo", kind.Title())
		res, err := r.Render(context.Background(), kind.String(), d, opts, cfg.OutputPath(kind.String()))
		if err != nil {
			return err
		}
		displayRenderStats(res, opts)
		return nil
	}
}
