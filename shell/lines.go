package shell

import (
	"bufio"
	"io"

	"golang.org/x/xerrors"
)

var errLineTooLong = xerrors.New("line too long")

// readLines reads lines from r and calls fn with each line read, not
// including the line terminator. If a line exceeds maxSize bytes, the
// whole line is discarded and fn is called with a nil line and
// errLineTooLong. If fn returns a non-nil error, reading ends and
// the error is returned from readLines. When EOF is encountered,
// readLines returns nil.
func readLines(r io.Reader, maxSize int, fn func(line []byte, err error) error) error {
	b := bufio.NewReader(r)
	for {
		line, isPrefix, err := b.ReadLine()
		if err != nil {
			return eofNilError(err)
		}
		if !isPrefix {
			// Simple line that fits within the bufio buffer size.
			if err := deliver(line, maxSize, fn); err != nil {
				return err
			}
			continue
		}
		buf := make([]byte, len(line), len(line)*2)
		copy(buf, line)
		for isPrefix {
			line, isPrefix, err = b.ReadLine()
			if err != nil {
				if err := deliver(buf, maxSize, fn); err != nil {
					return err
				}
				return eofNilError(err)
			}
			// Keep reading the rest of an overlong line, but
			// don't keep it.
			if len(buf) <= maxSize {
				buf = append(buf, line...)
			}
		}
		if err := deliver(buf, maxSize, fn); err != nil {
			return err
		}
	}
}

func deliver(line []byte, maxSize int, fn func([]byte, error) error) error {
	if len(line) > maxSize {
		return fn(nil, errLineTooLong)
	}
	return fn(line, nil)
}

func eofNilError(err error) error {
	if err == io.EOF {
		return nil
	}
	return err
}
