package calc

import (
	"math"
	"testing"

	"golang.org/x/xerrors"
)

func TestPrecedenceIsStrictlyIncreasing(t *testing.T) {
	for op := Add + 1; op < numOperators; op++ {
		if op.Precedence() <= (op - 1).Precedence() {
			t.Errorf("precedence of %v (%d) not greater than %v (%d)", op, op.Precedence(), op-1, (op - 1).Precedence())
		}
	}
}

func TestLookupOperator(t *testing.T) {
	for _, op := range Operators() {
		got, ok := LookupOperator(op.Symbol())
		if !ok || got != op {
			t.Errorf("lookup %q; want %v; got %v, %v", op.Symbol(), op, got, ok)
		}
	}
	if op, ok := LookupOperator('^'); ok {
		t.Errorf("unexpected operator %v for '^'", op)
	}
}

var applyTests = []struct {
	op          Operator
	left, right float64
	want        float64
}{
	{Add, 1, 2, 3},
	{Sub, 1, 2, -1},
	{Mul, 3, 4, 12},
	{Div, 3, 4, 0.75},
	{Pow, 2, 3, 9},
	{Pow, 2.9, 3, 9},
	{Pow, -2, 2, 0.25},
	{Rem, 7, 3, 1},
	{Rem, -7, 3, -1},
	{Rem, 7, -3, 1},
	{Perc, 10, 50, 5},
}

func TestApply(t *testing.T) {
	for i, test := range applyTests {
		got, err := test.op.Apply(test.left, test.right)
		if err != nil {
			t.Errorf("test %d; %v %v %v: unexpected error: %v", i, test.left, test.op, test.right, err)
			continue
		}
		if got != test.want {
			t.Errorf("test %d; %v %v %v: want %v; got %v", i, test.left, test.op, test.right, test.want, got)
		}
	}
}

func TestApplyErrors(t *testing.T) {
	if _, err := Div.Apply(1, 0); !xerrors.Is(err, ErrDivisionByZero) {
		t.Errorf("want division by zero; got %v", err)
	}
	if _, err := numOperators.Apply(1, 2); !xerrors.Is(err, ErrInvalidExpression) {
		t.Errorf("want invalid expression; got %v", err)
	}
}

var truncTests = []struct {
	f    float64
	want int32
}{
	{0, 0},
	{2.9, 2},
	{-2.9, -2},
	{1e10, math.MaxInt32},
	{-1e10, math.MinInt32},
	{math.Inf(1), math.MaxInt32},
	{math.Inf(-1), math.MinInt32},
	{math.NaN(), 0},
}

func TestTruncInt32(t *testing.T) {
	for _, test := range truncTests {
		if got := truncInt32(test.f); got != test.want {
			t.Errorf("truncInt32(%v); want %d; got %d", test.f, test.want, got)
		}
	}
}
