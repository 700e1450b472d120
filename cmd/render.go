package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lumen-render/lumen/scene"
	"github.com/urfave/cli"
)

// RenderScene renders a named scene kind with optional -p key=value
// parameter overrides.
func RenderScene(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	if ctx.NArg() != 1 {
		return errors.New("missing scene name argument")
	}
	kind, err := scene.ParseKind(ctx.Args().First())
	if err != nil {
		return err
	}

	params, err := parseParamOverrides(kind, ctx.StringSlice("param"))
	if err != nil {
		return err
	}

	d, err := kind.Build(params)
	if err != nil {
		return err
	}

	opts := optionsFromFlags(ctx, cfg)
	outPath := ctx.String("out")
	if outPath == "" {
		outPath = cfg.OutputPath(kind.String())
	}

	res, err := newRenderer(cfg).Render(context.Background(), kind.String(), d, opts, outPath)
	if err != nil {
		return err
	}
	displayRenderStats(res, opts)
	return nil
}

// parseParamOverrides converts key=value pairs using the scene's parameter
// definitions; unknown keys and malformed values are rejected up front.
func parseParamOverrides(kind scene.Kind, overrides []string) (scene.Params, error) {
	defs := kind.Defs()
	byName := make(map[string]scene.ParamDef, len(defs))
	for _, def := range defs {
		byName[def.Name] = def
	}

	params := make(scene.Params, len(overrides))
	for _, kv := range overrides {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			return nil, fmt.Errorf("malformed parameter override %q, want key=value", kv)
		}
		def, ok := byName[key]
		if !ok {
			return nil, fmt.Errorf("scene %s has no parameter %q", kind, key)
		}
		v, err := def.Parse(value)
		if err != nil {
			return nil, err
		}
		params[key] = v
	}
	return params, nil
}
