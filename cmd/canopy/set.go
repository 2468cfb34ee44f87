package main

import (
	"fmt"
	"strconv"

	"github.com/scott-cotton/cli"

	"github.com/canopy-config/canopy"
	"github.com/canopy-config/canopy/document"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 3 {
		return fmt.Errorf("%w: set [-s] <path> <value> <file>", cli.ErrUsage)
	}
	path, raw, file := args[0], args[1], args[2]
	conf, err := cfg.loadFile(file)
	if err != nil {
		return err
	}
	var v *canopy.Value
	if cfg.String {
		v = canopy.FromString(raw)
	} else {
		v = scalarArg(raw)
	}
	if err := conf.Set(path, v); err != nil {
		return fmt.Errorf("%w: %v", cli.ErrUsage, err)
	}
	return document.SaveFile(file, conf)
}

// scalarArg resolves a command line argument the way the text format
// resolves an untagged scalar. "null" removes the key.
func scalarArg(raw string) *canopy.Value {
	switch raw {
	case "null", "~":
		return nil
	case "true":
		return canopy.FromBool(true)
	case "false":
		return canopy.FromBool(false)
	}
	if i, err := strconv.ParseInt(raw, 0, 64); err == nil {
		if i >= -1<<31 && i < 1<<31 {
			return canopy.FromInt32(int32(i))
		}
		return canopy.FromInt64(i)
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return canopy.FromFloat64(f)
	}
	return canopy.FromString(raw)
}
