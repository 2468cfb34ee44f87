package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Load     bool
	Save     bool
	Comments bool
	CLI      bool
}

var d *debug

func init() {
	d = &debug{}
	d.Load = boolEnv("CANOPY_DEBUG_LOAD")
	d.Save = boolEnv("CANOPY_DEBUG_SAVE")
	d.Comments = boolEnv("CANOPY_DEBUG_COMMENTS")
	d.CLI = boolEnv("CANOPY_DEBUG_CLI")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Load() bool {
	return d.Load
}
func Save() bool {
	return d.Save
}
func Comments() bool {
	return d.Comments
}
func CLI() bool {
	return d.CLI
}
