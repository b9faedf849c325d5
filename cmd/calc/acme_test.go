package main

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"

	"github.com/rogpeppe/calc/shell"
)

type fakeWindow struct {
	files   map[string]*bytes.Buffer
	addrs   []string
	addrErr error
}

func newFakeWindow() *fakeWindow {
	return &fakeWindow{
		files: make(map[string]*bytes.Buffer),
	}
}

func (w *fakeWindow) Addr(format string, args ...interface{}) error {
	if w.addrErr != nil {
		return w.addrErr
	}
	w.addrs = append(w.addrs, fmt.Sprintf(format, args...))
	return nil
}

func (w *fakeWindow) Write(file string, b []byte) (int, error) {
	if w.files[file] == nil {
		w.files[file] = new(bytes.Buffer)
	}
	return w.files[file].Write(b)
}

func (w *fakeWindow) body() string {
	if w.files["body"] == nil {
		return ""
	}
	return w.files["body"].String()
}

func TestAcmeExecute(t *testing.T) {
	var stdout bytes.Buffer
	sh := &shell.Shell{
		Stdout: &stdout,
		Stderr: &stdout,
	}
	win := newFakeWindow()
	c := newAcmeCalc(win, sh)

	require.True(t, c.execute("2 + 3"))
	require.True(t, c.execute("4 / 0"))
	require.True(t, c.execute("(1"))
	require.Equal(t, `2 + 3
5
4 / 0
calc: division by zero
(1
calc: unclosed '(' at offset 0: mismatched parentheses
`, win.body())

	// The original shell is left alone.
	require.Equal(t, "", stdout.String())
}

func TestAcmeExecutePassesCommandsToAcme(t *testing.T) {
	win := newFakeWindow()
	c := newAcmeCalc(win, &shell.Shell{})
	for _, cmd := range []string{"", "Del", "Put", "Look foo", "2 + x"} {
		require.False(t, c.execute(cmd), "command %q", cmd)
	}
	require.Equal(t, "", win.body())
}

func TestAcmeClear(t *testing.T) {
	win := newFakeWindow()
	c := newAcmeCalc(win, &shell.Shell{})
	require.True(t, c.execute("Clear"))
	require.Equal(t, []string{","}, win.addrs)
	require.NotNil(t, win.files["data"])
	require.Equal(t, 0, win.files["data"].Len())
}

func TestAcmeClearAddrError(t *testing.T) {
	errAddr := xerrors.New("bad address")
	win := newFakeWindow()
	win.addrErr = errAddr
	c := newAcmeCalc(win, &shell.Shell{})
	err := c.clear()
	require.True(t, xerrors.Is(err, errAddr), "got %v", err)
	require.EqualError(t, err, "cannot set address: bad address")
	// Nothing must be deleted when the address could not be set.
	require.Nil(t, win.files["data"])
}

var canonicalDisplayTests = []struct {
	disp   string
	expect string
}{{
	disp:   "",
	expect: ":0",
}, {
	disp:   ":0",
	expect: ":0",
}, {
	disp:   ":1",
	expect: ":1",
}, {
	disp:   ":0.0",
	expect: ":0",
}, {
	disp:   "host:0.0",
	expect: "host:0",
}, {
	disp:   "host:10.0",
	expect: "host:10",
}, {
	disp:   "host:0.1",
	expect: "host:0.1",
}, {
	disp:   "/tmp/launch/:0",
	expect: "_tmp_launch_:0",
}, {
	disp:   "/private/tmp/com.apple.launchd.x/org.macosforge.xquartz:0",
	expect: "_private_tmp_com.apple.launchd.x_org.macosforge.xquartz:0",
}}

func TestCanonicalDisplay(t *testing.T) {
	for i, test := range canonicalDisplayTests {
		got := canonicalDisplay(test.disp)
		if got != test.expect {
			t.Errorf("test %d (%q); want %q; got %q", i, test.disp, test.expect, got)
		}
	}
}
