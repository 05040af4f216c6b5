package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Lex    bool
	Tree   bool
	Schema bool
	Checks bool
}

var d *debug

func init() {
	d = &debug{}
	d.Lex = boolEnv("FPATH_DEBUG_LEX")
	d.Tree = boolEnv("FPATH_DEBUG_TREE")
	d.Schema = boolEnv("FPATH_DEBUG_SCHEMA")
	d.Checks = boolEnv("FPATH_DEBUG_CHECKS")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Lex() bool {
	return d.Lex
}
func Tree() bool {
	return d.Tree
}
func Schema() bool {
	return d.Schema
}

// Checks reports whether tree contract checks are enabled. Violations
// found by the checks panic.
func Checks() bool {
	return d.Checks
}

// SetChecks turns contract checks on or off and returns the previous setting.
func SetChecks(v bool) bool {
	prev := d.Checks
	d.Checks = v
	return prev
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(append(d, '\n'))
}
