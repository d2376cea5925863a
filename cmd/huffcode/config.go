package main

import (
	"flag"

	"github.com/abhinav/huffcode/internal/symbols"
)

type config struct {
	Input   string // empty for stdin
	Split   symbols.Mode
	Codes   codeAssignments
	Encode  bool
	LogFile string
	Verbose bool
}

func (c *config) RegisterFlags(flag *flag.FlagSet) {
	// No help here because we put it all in _usage.
	flag.Var(&c.Split, "split", "")
	flag.Var(&c.Codes, "codes", "")
	flag.BoolVar(&c.Encode, "encode", false, "")
	flag.StringVar(&c.LogFile, "log", "", "")
	flag.BoolVar(&c.Verbose, "verbose", false, "")
}

// Args rebuilds a list of arguments from which this configuration may be
// parsed.
func (c *config) Args() []string {
	var args []string
	if c.Split != symbols.RuneMode {
		args = append(args, "-split", c.Split.String())
	}
	if len(c.Codes) > 0 {
		args = append(args, "-codes", c.Codes.String())
	}
	if c.Encode {
		args = append(args, "-encode")
	}
	if len(c.LogFile) > 0 {
		args = append(args, "-log", c.LogFile)
	}
	if c.Verbose {
		args = append(args, "-verbose")
	}
	if len(c.Input) > 0 {
		args = append(args, c.Input)
	}
	return args
}
