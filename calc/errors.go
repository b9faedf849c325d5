package calc

import (
	"fmt"

	"golang.org/x/xerrors"
)

var (
	// ErrMismatchedParens is returned (wrapped) by Parse when a
	// closing bracket has no opening bracket or an opening
	// bracket is never closed.
	ErrMismatchedParens = xerrors.New("mismatched parentheses")

	// ErrNumberTooLarge is returned (wrapped) by Parse when a
	// number does not fit in a uint64.
	ErrNumberTooLarge = xerrors.New("number too large")

	// ErrDivisionByZero is returned by Evaluate and Operator.Apply
	// when the right operand of / is zero.
	ErrDivisionByZero = xerrors.New("division by zero")

	// ErrInvalidExpression is returned (wrapped) by Evaluate when
	// the postfix sequence does not reduce to exactly one value.
	ErrInvalidExpression = xerrors.New("invalid expression")
)

// BadTokenError is returned by Parse when it finds a
// character that cannot start a token.
type BadTokenError struct {
	Char rune
	// Offset holds the byte offset of Char in the input.
	Offset int
	// Byte is non-zero when the input is not valid UTF-8
	// at Offset. It holds the offending byte, and Char
	// holds utf8.RuneError.
	Byte byte
}

func (e *BadTokenError) Error() string {
	if e.Byte != 0 {
		return fmt.Sprintf("invalid UTF-8 byte %#x at offset %d", e.Byte, e.Offset)
	}
	return fmt.Sprintf("bad token %q at offset %d", e.Char, e.Offset)
}
