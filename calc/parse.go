package calc

import (
	"math"
	"unicode/utf8"

	"golang.org/x/xerrors"
)

// Parse splits text into tokens.
//
// Consecutive digits form a single number. Spaces do not
// end a number: a digit following a number token extends
// it, so "1 2" is the number 12. Brackets are checked for
// balance; the converter and evaluator rely on that.
//
// Only space and newline are treated as white space; any
// other character that is not part of an expression
// is a BadTokenError.
//
// The first error found scanning left to right is returned.
// An unclosed opening bracket is only detected once the
// whole of text has been scanned.
func Parse(text string) ([]Token, error) {
	var tokens []Token
	// parens holds the offsets of the currently open brackets.
	var parens []int
	for i, c := range text {
		switch {
		case '0' <= c && c <= '9':
			d := uint64(c - '0')
			if n := len(tokens); n > 0 && tokens[n-1].Kind == KindNumber {
				v := tokens[n-1].Value
				if v > (math.MaxUint64-d)/10 {
					return nil, xerrors.Errorf("number at offset %d: %w", i, ErrNumberTooLarge)
				}
				tokens[n-1].Value = v*10 + d
				break
			}
			tokens = append(tokens, NumberToken(d))
		case c == '(':
			tokens = append(tokens, OpenBracket)
			parens = append(parens, i)
		case c == ')':
			tokens = append(tokens, CloseBracket)
			if len(parens) == 0 {
				return nil, xerrors.Errorf("unmatched ')' at offset %d: %w", i, ErrMismatchedParens)
			}
			parens = parens[:len(parens)-1]
		case isSpace(c):
		default:
			op, ok := LookupOperator(c)
			if ok {
				tokens = append(tokens, OperatorToken(op))
				break
			}
			err := &BadTokenError{Char: c, Offset: i}
			if c == utf8.RuneError {
				if _, size := utf8.DecodeRuneInString(text[i:]); size == 1 {
					err.Byte = text[i]
				}
			}
			return nil, err
		}
	}
	if len(parens) > 0 {
		return nil, xerrors.Errorf("unclosed '(' at offset %d: %w", parens[0], ErrMismatchedParens)
	}
	return tokens, nil
}

func isSpace(c rune) bool {
	return c == ' ' || c == '\n'
}
