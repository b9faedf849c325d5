package calc

import (
	"golang.org/x/xerrors"
)

var errStackUnderflow = xerrors.New("stack underflow")

// Evaluate reduces a postfix token sequence, as produced by
// ToPostfix, to a single value.
//
// Division by zero fails with ErrDivisionByZero. If the
// sequence leaves other than exactly one value, or an operator
// finds fewer than two operands, Evaluate fails with an error
// wrapping ErrInvalidExpression. Brackets are ignored.
func Evaluate(postfix []Token) (v float64, err error) {
	var s stack
	defer func() {
		e := recover()
		if e == nil {
			return
		}
		if e == errStackUnderflow {
			err = xerrors.Errorf("%v: %w", e, ErrInvalidExpression)
			return
		}
		panic(e)
	}()
	for _, t := range postfix {
		switch t.Kind {
		case KindNumber:
			s.push(float64(t.Value))
		case KindOperator:
			arg := s.popN(2)
			r, err := t.Op.Apply(arg[0], arg[1])
			if err != nil {
				return 0, err
			}
			s.push(r)
		}
	}
	switch len(s.items) {
	case 1:
		return s.items[0], nil
	case 0:
		return 0, xerrors.Errorf("no value: %w", ErrInvalidExpression)
	}
	return 0, xerrors.Errorf("%d values left over: %w", len(s.items), ErrInvalidExpression)
}

// Eval evaluates the infix expression expr.
func Eval(expr string) (float64, error) {
	tokens, err := Parse(expr)
	if err != nil {
		return 0, err
	}
	return Evaluate(ToPostfix(tokens))
}

type stack struct {
	items []float64
}

func (s *stack) push(v float64) {
	s.items = append(s.items, v)
}

// popN pops n items, returning them in the order they were pushed.
func (s *stack) popN(n int) []float64 {
	d := len(s.items) - n
	if d < 0 {
		panic(errStackUnderflow)
	}
	v := s.items[d:]
	s.items = s.items[0:d]
	return v
}
