package main

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/canopy-config/canopy"
	"github.com/canopy-config/canopy/document"
)

type MainConfig struct {
	Sep        string `cli:"name=sep desc='path separator (default .)'"`
	Indent     int    `cli:"name=indent desc='indent width (default 2)'"`
	NoComments bool   `cli:"name=nc aliases=no-comments desc='drop comments on load and save'"`
	Color      bool   `cli:"name=color desc='force colored output'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) options() canopy.Options {
	opts := canopy.DefaultOptions()
	if cfg.Sep != "" {
		opts.PathSeparator = []rune(cfg.Sep)[0]
	}
	if cfg.Indent > 0 {
		opts.Indent = cfg.Indent
	}
	opts.ParseComments = !cfg.NoComments
	return opts
}

func (cfg *MainConfig) loadFile(path string) (*canopy.Configuration, error) {
	return document.LoadFile(path, document.WithOptions(cfg.options()))
}

func (cfg *MainConfig) colored() bool {
	return cfg.Color || isatty.IsTerminal(os.Stdout.Fd())
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type KeysConfig struct {
	*MainConfig

	Deep bool `cli:"name=deep aliases=r desc='recurse into subsections'"`

	Keys *cli.Command
}

type SetConfig struct {
	*MainConfig

	String bool `cli:"name=s desc='treat the value as text, skipping scalar detection'"`

	Set *cli.Command
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig

	Patch *cli.Command
}
