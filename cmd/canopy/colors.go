package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

type viewColors struct {
	comment func(string, ...any) string
	field   func(string, ...any) string
	sep     func(string, ...any) string
	number  func(string, ...any) string
	boolean func(string, ...any) string
	text    func(string, ...any) string
}

func newViewColors(enabled bool) *viewColors {
	if !enabled {
		plain := fmt.Sprintf
		return &viewColors{
			comment: plain,
			field:   plain,
			sep:     plain,
			number:  plain,
			boolean: plain,
			text:    plain,
		}
	}
	return &viewColors{
		comment: color.BlueString,
		field:   color.RGB(196, 96, 16).SprintfFunc(),
		sep:     color.RGB(255, 0, 196).SprintfFunc(),
		number:  color.RGB(128, 216, 236).SprintfFunc(),
		boolean: color.RGB(128, 216, 236).SprintfFunc(),
		text:    fmt.Sprintf,
	}
}

// value picks a color by scalar class.
func (c *viewColors) value(v string) string {
	t := strings.TrimSpace(v)
	switch {
	case t == "":
		return v
	case t == "true" || t == "false" || t == "null":
		return c.boolean("%s", v)
	default:
		if _, err := strconv.ParseFloat(t, 64); err == nil {
			return c.number("%s", v)
		}
		return c.text("%s", v)
	}
}
