// huffcode builds a Huffman code for the symbols in a text
// and reports how close it comes to the entropy of the text.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/abhinav/huffcode/internal/log"
	"github.com/abhinav/huffcode/internal/paniclog"
	"github.com/benbjohnson/clock"
	"go.uber.org/multierr"
	"golang.org/x/term"
)

var _version = "dev"

var _main = mainCmd{
	Stdin:    os.Stdin,
	Stdout:   os.Stdout,
	Stderr:   os.Stderr,
	Getenv:   os.Getenv,
	Clock:    clock.New(),
	ColorLog: term.IsTerminal(int(os.Stderr.Fd())),
}

func main() {
	if err := run(&_main, os.Args[1:]); err != nil && err != flag.ErrHelp {
		fmt.Fprintln(_main.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *mainCmd, args []string) (err error) {
	var cfg config
	flag := flag.NewFlagSet(_name, flag.ContinueOnError)
	flag.SetOutput(cmd.Stderr)
	flag.Usage = func() {
		name := flag.Name()
		fmt.Fprintf(flag.Output(), _usage, name)
	}
	cfg.RegisterFlags(flag)
	version := flag.Bool("version", false, "")
	if err := flag.Parse(args); err != nil {
		return err
	}

	if *version {
		fmt.Fprintf(cmd.Stdout, "huffcode version %v\n", _version)
		return nil
	}

	switch args := flag.Args(); len(args) {
	case 0:
	case 1:
		cfg.Input = args[0]
	default:
		return fmt.Errorf("unexpected arguments %q", args[1:])
	}

	if len(cfg.LogFile) == 0 {
		cfg.LogFile = cmd.Getenv(_logfileEnv)
	}

	return cmd.Run(&cfg)
}

type mainCmd struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	Getenv func(string) string // == os.Getenv
	Clock  clock.Clock

	// ColorLog colors log output written to Stderr.
	// Log files are never colored.
	ColorLog bool

	runTarget runTargetFunc
}

const (
	_name       = "huffcode"
	_logfileEnv = "HUFFCODE_LOG"
)

const _usage = `usage: %v [options] [FILE]

Builds a Huffman code for the symbols in FILE, or stdin if FILE is omitted,
and reports the code table alongside the entropy of the text and the expected
length of the code.

The following flags are available:

	-split MODE
		how to split the text into symbols.
		MODE is one of:
			runes      one symbol per Unicode code point (default)
			graphemes  one symbol per user-perceived character
	-codes ASSIGNMENTS
		evaluate the given code instead of building one.
		ASSIGNMENTS is a list of SYM=BITS pairs separated by spaces.
		Quote symbols that contain spaces.
			-codes "a=0 b=10 c=11"
			-codes "' '=0 x=1"
		Every symbol in the text must have a code, and every code must
		belong to a symbol in the text.
	-encode
		also print the encoded text as a string of 0s and 1s.
	-log FILE
		file to write logs to.
		Uses $HUFFCODE_LOG if set, stderr otherwise.
	-verbose
		log more output.
	-version
		display version information.
`

func (cmd *mainCmd) init() {
	if cmd.runTarget == nil {
		cmd.runTarget = runTarget
	}
	if cmd.Clock == nil {
		cmd.Clock = clock.New()
	}
}

func (cmd *mainCmd) Run(cfg *config) (err error) {
	cmd.init()

	lvl := log.Info
	if cfg.Verbose {
		lvl = log.Debug
	}

	var logger *log.Logger
	if file := cfg.LogFile; len(file) > 0 {
		f, err := os.OpenFile(file, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log %q: %w", file, err)
		}
		defer multierr.AppendInvoke(&err, multierr.Close(f))
		logger = log.New(f, lvl)
	} else if cmd.ColorLog {
		logger = log.NewColor(cmd.Stderr, lvl)
	} else {
		logger = log.New(cmd.Stderr, lvl)
	}

	defer paniclog.Recover(&err, logger)

	target := &app{
		Log:    logger,
		Clock:  cmd.Clock,
		Stdin:  cmd.Stdin,
		Stdout: cmd.Stdout,
	}

	return cmd.runTarget(target, cfg)
}

// runTargetFunc runs objects that conform to the app signature.
// Tests replace it to intercept the run.
type runTargetFunc func(interface {
	Run(*config) error
}, *config) error

func runTarget(target interface{ Run(*config) error }, cfg *config) error {
	return target.Run(cfg)
}
