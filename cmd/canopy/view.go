package main

import (
	"fmt"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/canopy-config/canopy/document"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: view [files]", cli.ErrUsage)
	}
	colors := newViewColors(cfg.colored())
	for _, file := range args {
		conf, err := cfg.loadFile(file)
		if err != nil {
			return fmt.Errorf("error loading %s: %w", file, err)
		}
		text, err := document.SaveString(conf)
		if err != nil {
			return err
		}
		fmt.Fprint(cc.Out, colorize(text, colors))
	}
	return nil
}

func colorize(text string, colors *viewColors) string {
	lines := strings.Split(text, "\n")
	for i, ln := range lines {
		lines[i] = colorizeLine(ln, colors)
	}
	return strings.Join(lines, "\n")
}

func colorizeLine(ln string, colors *viewColors) string {
	trimmed := strings.TrimLeft(ln, " ")
	indent := ln[:len(ln)-len(trimmed)]
	if strings.HasPrefix(trimmed, "#") {
		return indent + colors.comment("%s", trimmed)
	}
	body, comment := splitTrailingComment(trimmed)
	res := indent + colorizeBody(body, colors)
	if comment != "" {
		res += colors.comment("%s", comment)
	}
	return res
}

func colorizeBody(body string, colors *viewColors) string {
	if strings.HasPrefix(body, "- ") {
		return colors.sep("- ") + colorizeBody(body[2:], colors)
	}
	key, val, found := strings.Cut(body, ": ")
	if !found {
		if strings.HasSuffix(body, ":") {
			return colors.field("%s", strings.TrimSuffix(body, ":")) + colors.sep(":")
		}
		return colors.value(body)
	}
	return colors.field("%s", key) + colors.sep(": ") + colors.value(val)
}

// splitTrailingComment cuts an unquoted trailing comment off a line.
func splitTrailingComment(ln string) (string, string) {
	inSingle, inDouble := false, false
	for i, r := range ln {
		switch r {
		case '\'':
			if !inDouble {
				inSingle = !inSingle
			}
		case '"':
			if !inSingle {
				inDouble = !inDouble
			}
		case '#':
			if !inSingle && !inDouble && i > 0 && ln[i-1] == ' ' {
				return ln[:i], ln[i:]
			}
		}
	}
	return ln, ""
}
