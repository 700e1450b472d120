package cmd

import (
	"bytes"
	"context"
	"time"

	"github.com/lumen-render/lumen/renderer"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// ListVariants probes the render worker and prints which numerical backend
// variants this machine supports.
func ListVariants(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	probeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	available := make(map[string]bool)
	supported, err := renderer.NewMitsuba(cfg.WorkerPath).Variants(probeCtx)
	if err != nil {
		logger.Warningf("cannot probe worker %s: %s", cfg.WorkerPath, err)
	}
	for _, v := range supported {
		available[v] = true
	}

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Variant", "Available", "Description"})
	for _, v := range renderer.Variants() {
		mark := "no"
		if available[v] {
			mark = "yes"
		}
		table.Append([]string{v, mark, renderer.VariantDescription(v)})
	}

	table.Render()
	logger.Noticef("backend variants\n%s", buf.String())
	return nil
}
