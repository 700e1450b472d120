package main

import (
	"fmt"
	"os"

	"github.com/lumen-render/lumen/cmd"
	"github.com/lumen-render/lumen/log"
	"github.com/urfave/cli"
)

func renderFlags() []cli.Flag {
	return []cli.Flag{
		cli.IntFlag{
			Name:  "width",
			Value: 512,
			Usage: "frame width",
		},
		cli.IntFlag{
			Name:  "height",
			Value: 512,
			Usage: "frame height",
		},
		cli.IntFlag{
			Name:  "spp",
			Value: 64,
			Usage: "samples per pixel",
		},
		cli.IntFlag{
			Name:  "depth",
			Usage: "maximum light-bounce depth (0 keeps the scene default)",
		},
		cli.StringFlag{
			Name:  "variant",
			Value: "scalar_rgb",
			Usage: "numerical backend variant (see the variants command)",
		},
		cli.Float64Flag{
			Name:  "exposure",
			Value: 1.0,
			Usage: "exposure for tone-mapping",
		},
	}
}

func main() {
	os.Exit(run(os.Args))
}

// run executes the application and maps any command error onto a non-zero
// exit code. cli only honors ExitCoder errors on its own, so plain errors
// from command actions must be reported here.
func run(args []string) int {
	defer log.Close()

	if err := newApp().Run(args); err != nil {
		fmt.Fprintf(os.Stderr, "lumen: %s\n", err)
		return 1
	}
	return 0
}

func newApp() *cli.App {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "lumen"
	app.Usage = "learn physically-based rendering by driving the Mitsuba 3 render worker"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
		cli.StringFlag{
			Name:  "config",
			Usage: "path to lumen.toml",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "demo",
			Usage: "run one educational demonstration",
			Description: `
Render one of the fixed teaching scenes with its documented defaults and
write the image(s) to the output directory. Available demos:

   quick-start  minimal first render
   basic        one sphere, selectable material, point light
   materials    five spheres comparing material types
   lighting     six images comparing lighting arrangements
   glass        dielectric object with caustics
   cornell      the classic global-illumination box`,
			ArgsUsage: "demo_name",
			Flags:     renderFlags(),
			Action:    cmd.Demo,
		},
		{
			Name:      "render",
			Usage:     "render a scene with custom parameters",
			ArgsUsage: "scene_name",
			Flags: append(renderFlags(),
				cli.StringSliceFlag{
					Name:  "param, p",
					Usage: "override a scene parameter, e.g. -p radius=2.5",
				},
				cli.StringFlag{
					Name:  "out, o",
					Usage: "image filename for the rendered frame",
				},
			),
			Action: cmd.RenderScene,
		},
		{
			Name:   "variants",
			Usage:  "list available numerical backend variants",
			Action: cmd.ListVariants,
		},
		{
			Name:   "gui",
			Usage:  "launch the interactive desktop application",
			Action: cmd.Gui,
		},
	}
	return app
}
