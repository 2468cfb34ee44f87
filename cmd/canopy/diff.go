package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/canopy-config/canopy/document"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := canonical(cfg, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := canonical(cfg, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	if a == b {
		return nil
	}
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	if cfg.colored() {
		fmt.Fprint(cc.Out, dmp.DiffPrettyText(diffs))
	} else {
		patches := dmp.PatchMake(a, diffs)
		fmt.Fprint(cc.Out, dmp.PatchToText(patches))
	}
	return cli.ExitCodeErr(1)
}

// canonical loads a file and re-renders it, so cosmetic differences in
// the inputs do not show up in the diff.
func canonical(cfg *DiffConfig, file string) (string, error) {
	conf, err := cfg.loadFile(file)
	if err != nil {
		return "", err
	}
	return document.SaveString(conf)
}
