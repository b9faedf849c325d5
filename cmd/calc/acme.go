package main

import (
	"fmt"
	"log"
	"os"
	"os/user"
	"strings"

	"9fans.net/go/acme"
	"golang.org/x/xerrors"

	"github.com/rogpeppe/calc/calc"
	"github.com/rogpeppe/calc/shell"
)

// acmeWindow holds the methods of *acme.Win used by acmeCalc.
type acmeWindow interface {
	Addr(format string, args ...interface{}) error
	Write(file string, b []byte) (int, error)
}

// acmeCalc evaluates expressions executed in an acme window,
// appending the results to the window body.
type acmeCalc struct {
	win acmeWindow
	sh  *shell.Shell
}

func newAcmeCalc(win acmeWindow, sh *shell.Shell) *acmeCalc {
	body := bodyWriter{win}
	wsh := *sh
	wsh.Stdout = body
	wsh.Stderr = body
	return &acmeCalc{
		win: win,
		sh:  &wsh,
	}
}

// execute handles text executed (middle-clicked) in the window.
// It reports whether the text has been dealt with; if not, the
// event should be handed back to acme.
func (c *acmeCalc) execute(text string) bool {
	switch text {
	case "":
		return false
	case "Clear":
		if err := c.clear(); err != nil {
			log.Printf("cannot clear window: %v", err)
		}
		return true
	}
	// Anything that's not made of expression characters is
	// probably an acme command.
	if _, err := calc.Parse(text); err != nil {
		var badErr *calc.BadTokenError
		if xerrors.As(err, &badErr) {
			return false
		}
	}
	fmt.Fprintf(c.sh.Stdout, "%s\n", text)
	c.sh.Exec(text)
	return true
}

// clear deletes everything in the window body.
func (c *acmeCalc) clear() error {
	if err := c.win.Addr(","); err != nil {
		return xerrors.Errorf("cannot set address: %w", err)
	}
	if _, err := c.win.Write("data", nil); err != nil {
		return xerrors.Errorf("cannot delete body: %w", err)
	}
	return nil
}

type bodyWriter struct {
	win acmeWindow
}

func (w bodyWriter) Write(buf []byte) (int, error) {
	return w.win.Write("body", buf)
}

func runAcme(sh *shell.Shell) error {
	if err := setNameSpace(); err != nil {
		return err
	}
	win, err := acme.New()
	if err != nil {
		return xerrors.Errorf("cannot create acme window: %w", err)
	}
	defer win.CloseFiles()
	dir, err := os.Getwd()
	if err != nil {
		dir = "/tmp"
	}
	if err := win.Name("%s/+Calc", dir); err != nil {
		return xerrors.Errorf("cannot name window: %w", err)
	}
	if _, err := win.Write("tag", []byte("Clear ")); err != nil {
		return xerrors.Errorf("cannot write window tag: %w", err)
	}
	if err := win.Ctl("clean"); err != nil {
		return xerrors.Errorf("cannot mark window clean: %w", err)
	}

	c := newAcmeCalc(win, sh)
	for e := range win.EventChan() {
		switch e.C2 {
		case 'x', 'X':
			if c.execute(strings.TrimSpace(string(e.Text))) {
				win.Ctl("clean")
				continue
			}
			win.WriteEvent(e)
		case 'l', 'L':
			win.WriteEvent(e)
		}
	}
	return nil
}

func setNameSpace() error {
	if ns := os.Getenv("NAMESPACE"); ns != "" {
		return nil
	}
	ns, err := nsFromDisplay()
	if err != nil {
		return xerrors.Errorf("cannot get name space: %w", err)
	}
	os.Setenv("NAMESPACE", ns)
	return nil
}

// nsFromDisplay returns the plan9port name space directory
// for the current user and X display, as src/lib9/getns.c does.
func nsFromDisplay() (string, error) {
	disp := canonicalDisplay(os.Getenv("DISPLAY"))
	u, err := user.Current()
	if err != nil {
		return "", xerrors.Errorf("cannot get current user name: %w", err)
	}
	ns := fmt.Sprintf("/tmp/ns.%s.%s", u.Username, disp)
	_, err = os.Stat(ns)
	if os.IsNotExist(err) {
		return "", xerrors.New("no name space directory found")
	}
	if err != nil {
		return "", xerrors.Errorf("cannot stat name space directory: %w", err)
	}
	return ns, nil
}

// canonicalDisplay returns the form of the X display name
// disp used in plan9port name space directory names.
func canonicalDisplay(disp string) string {
	if disp == "" {
		disp = ":0.0"
	}
	// canonicalize: xxx:0.0 => xxx:0
	if strings.Contains(disp, ":") {
		disp = strings.TrimSuffix(disp, ".0")
	}
	// turn /tmp/launch/:0 into _tmp_launch_:0 (OS X 10.5)
	return strings.Replace(disp, "/", "_", -1)
}
