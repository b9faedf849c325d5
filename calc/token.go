package calc

import (
	"strconv"
	"strings"
)

// Kind says which variant of Token is in use.
type Kind uint8

const (
	KindNumber Kind = iota
	KindOperator
	KindBracket
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindOperator:
		return "operator"
	case KindBracket:
		return "bracket"
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Token is a single lexical item of an expression.
// Only the fields relevant to Kind are significant;
// the others are always zero, so tokens can be
// compared with ==.
type Token struct {
	Kind Kind

	// Value holds the value of a KindNumber token.
	Value uint64

	// Op holds the operator of a KindOperator token.
	Op Operator

	// Open is true for an opening bracket.
	Open bool
}

var (
	OpenBracket  = Token{Kind: KindBracket, Open: true}
	CloseBracket = Token{Kind: KindBracket}
)

// NumberToken returns a number token holding n.
func NumberToken(n uint64) Token {
	return Token{Kind: KindNumber, Value: n}
}

// OperatorToken returns a token for the given operator.
func OperatorToken(op Operator) Token {
	return Token{Kind: KindOperator, Op: op}
}

// String returns the token as it would appear in an expression.
func (t Token) String() string {
	switch t.Kind {
	case KindNumber:
		return strconv.FormatUint(t.Value, 10)
	case KindOperator:
		return t.Op.String()
	case KindBracket:
		if t.Open {
			return "("
		}
		return ")"
	}
	return "<" + t.Kind.String() + ">"
}

// FormatTokens returns the tokens separated by spaces.
func FormatTokens(ts []Token) string {
	var b strings.Builder
	for i, t := range ts {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.String())
	}
	return b.String()
}
