package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: get <path> <file>", cli.ErrUsage)
	}
	conf, err := cfg.loadFile(args[1])
	if err != nil {
		return err
	}
	v := conf.Get(args[0])
	if v == nil {
		return cli.ExitCodeErr(1)
	}
	fmt.Fprintln(cc.Out, v.Text())
	return nil
}

func keys(cfg *KeysConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Keys.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: keys [-deep] <file>", cli.ErrUsage)
	}
	conf, err := cfg.loadFile(args[0])
	if err != nil {
		return err
	}
	for _, p := range conf.Keys(cfg.Deep) {
		fmt.Fprintln(cc.Out, p)
	}
	return nil
}
