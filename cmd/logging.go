package cmd

import (
	"github.com/lumen-render/lumen/config"
	"github.com/lumen-render/lumen/log"
	"github.com/urfave/cli"
)

var logger = log.New("lumen")

func setupLogging(ctx *cli.Context, cfg config.Config) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}

	if err := log.SetFile(cfg.LogFile()); err != nil {
		logger.Warningf("cannot open log file: %s", err)
	}
}
