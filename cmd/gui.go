package cmd

import (
	"github.com/lumen-render/lumen/gui"
	"github.com/urfave/cli"
)

// Gui launches the desktop application.
func Gui(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	return gui.Run(cfg)
}
