// Package debug holds env-var-gated diagnostic switches.  Traces are
// written to stderr and never influence parsing behavior.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Parse  bool
	Tokens bool
}

var d *debug

func init() {
	d = &debug{
		Parse:  boolEnv("ZY_DEBUG_PARSE"),
		Tokens: boolEnv("ZY_DEBUG_TOKENS"),
	}
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}

func Tokens() bool {
	return d.Tokens
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
