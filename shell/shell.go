// Package shell implements a line-at-a-time front end
// to the calc package.
package shell

import (
	"context"
	"fmt"
	"io"
	"log"
	"strconv"
	"unicode/utf8"

	"github.com/davecgh/go-spew/spew"

	"github.com/rogpeppe/calc/calc"
)

// DefaultMaxLineSize is the longest line accepted by Run
// when Shell.MaxLineSize is zero.
const DefaultMaxLineSize = 64 * 1024

// Shell evaluates expressions one line at a time.
type Shell struct {
	// Stdout receives the value of each expression.
	Stdout io.Writer

	// Stderr receives error messages.
	Stderr io.Writer

	// MaxLineSize holds the maximum number of bytes in
	// an input line. Longer lines are reported and skipped.
	MaxLineSize int

	// Verbose causes the tokens and postfix form of
	// each expression to be printed before its value.
	Verbose bool

	// Log, if non-nil, receives a dump of each stage
	// of evaluation.
	Log *log.Logger
}

// Run reads lines from r, executing each one, until EOF.
// Lines that are too long or are not valid UTF-8 are
// reported to sh.Stderr and skipped. Run returns early
// with ctx.Err() if ctx is cancelled; this is checked
// before each line is executed. Any other error reading
// from r stops Run and is returned.
func (sh *Shell) Run(ctx context.Context, r io.Reader) error {
	maxSize := sh.MaxLineSize
	if maxSize <= 0 {
		maxSize = DefaultMaxLineSize
	}
	lineNum := 0
	return readLines(r, maxSize, func(line []byte, readErr error) error {
		lineNum++
		if err := ctx.Err(); err != nil {
			return err
		}
		switch {
		case readErr != nil:
			sh.errorf("line %d: %v", lineNum, readErr)
		case !utf8.Valid(line):
			sh.errorf("line %d: invalid UTF-8", lineNum)
		default:
			sh.Exec(string(line))
		}
		return nil
	})
}

// Exec evaluates a single line and prints its value to sh.Stdout.
// If the line cannot be evaluated, the error is printed to sh.Stderr
// instead. A line with no tokens is silently ignored. Exec reports
// whether a value was printed.
func (sh *Shell) Exec(line string) bool {
	tokens, err := calc.Parse(line)
	if err != nil {
		sh.errorf("%v", err)
		return false
	}
	if len(tokens) == 0 {
		return false
	}
	v, err := sh.evaluate(tokens)
	if err != nil {
		sh.errorf("%v", err)
		return false
	}
	fmt.Fprintln(sh.Stdout, FormatValue(v))
	return true
}

// Eval evaluates expr. It behaves like calc.Eval except that
// it also produces any verbose or debug output that sh asks for.
func (sh *Shell) Eval(expr string) (float64, error) {
	tokens, err := calc.Parse(expr)
	if err != nil {
		return 0, err
	}
	return sh.evaluate(tokens)
}

func (sh *Shell) evaluate(tokens []calc.Token) (float64, error) {
	postfix := calc.ToPostfix(tokens)
	if sh.Verbose {
		fmt.Fprintf(sh.Stdout, "tokens: %s\n", calc.FormatTokens(tokens))
		fmt.Fprintf(sh.Stdout, "postfix: %s\n", calc.FormatTokens(postfix))
	}
	if sh.Log != nil {
		sh.Log.Printf("tokens:\n%s", spew.Sdump(tokens))
		sh.Log.Printf("postfix:\n%s", spew.Sdump(postfix))
	}
	v, err := calc.Evaluate(postfix)
	if err != nil {
		sh.logf("error: %+v", err)
		return 0, err
	}
	sh.logf("value: %v", v)
	return v, nil
}

// FormatValue formats v in the way the shell prints values:
// the shortest decimal representation that reads back as v,
// without an exponent.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (sh *Shell) errorf(f string, a ...interface{}) {
	fmt.Fprintf(sh.Stderr, "calc: %s\n", fmt.Sprintf(f, a...))
}

func (sh *Shell) logf(f string, a ...interface{}) {
	if sh.Log == nil {
		return
	}
	sh.Log.Printf(f, a...)
}
