// Package debug exposes environment switches for tracing the mapping
// engine. A switch is on when its variable parses as a true bool.
//
//	DFE_DEBUG_BUILD  descriptor tables as models are built
//	DFE_DEBUG_MAP    each field as it is read or written
//	DFE_DEBUG_DIFF   change lists computed by libdiff
package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Build bool
	Map   bool
	Diff  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Build = boolEnv("DFE_DEBUG_BUILD")
	d.Map = boolEnv("DFE_DEBUG_MAP")
	d.Diff = boolEnv("DFE_DEBUG_DIFF")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Build() bool {
	return d.Build
}
func Map() bool {
	return d.Map
}
func Diff() bool {
	return d.Diff
}

// LogAny writes v to stderr as a json line.
func LogAny(v any) {
	data, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(append(data, '\n'))
}
