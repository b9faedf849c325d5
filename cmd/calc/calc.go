package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/rogpeppe/calc/shell"
)

var (
	verbose  = flag.Bool("v", false, "print the tokens and postfix form of each expression")
	debug    = flag.Bool("debug", false, "dump each stage of evaluation to stderr")
	maxLine  = flag.Int("maxline", shell.DefaultMaxLineSize, "maximum length of an input line in bytes")
	opsFlag  = flag.Bool("ops", false, "print the operator table and exit")
	acmeFlag = flag.Bool("acme", false, "run in a new acme window")
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "calc: %v\n", err)
		os.Exit(2)
	}
}

func run(ctx context.Context) error {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: calc [flags] [expr...]\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if *opsFlag {
		printOps(os.Stdout)
		return nil
	}
	sh := newShell(os.Stdout, os.Stderr)
	if *acmeFlag {
		return runAcme(sh)
	}
	if flag.NArg() > 0 {
		return evalArgs(sh, os.Stdout, flag.Args())
	}
	return sh.Run(ctx, os.Stdin)
}

func newShell(stdout, stderr io.Writer) *shell.Shell {
	sh := &shell.Shell{
		Stdout:      stdout,
		Stderr:      stderr,
		MaxLineSize: *maxLine,
		Verbose:     *verbose,
	}
	if *debug {
		sh.Log = log.New(stderr, "calc: ", 0)
	}
	return sh
}

// evalArgs evaluates the arguments, joined with spaces,
// as a single expression.
func evalArgs(sh *shell.Shell, w io.Writer, args []string) error {
	v, err := sh.Eval(strings.Join(args, " "))
	if err != nil {
		return err
	}
	fmt.Fprintln(w, shell.FormatValue(v))
	return nil
}
