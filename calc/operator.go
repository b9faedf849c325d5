package calc

import (
	"math"
	"strconv"

	"golang.org/x/xerrors"
)

// Operator is a binary arithmetic operator.
type Operator uint8

const (
	Add Operator = iota
	Sub
	Mul
	Div
	Pow
	Rem
	Perc
	numOperators
)

type opInfo struct {
	sym  rune
	name string
	// prec is the binding strength of the operator.
	// When two operators have equal precedence, the
	// leftmost is applied first.
	prec int
	help string
	f    func(left, right float64) (float64, error)
}

var ops = [numOperators]opInfo{
	Add:  {'+', "add", 1, "left + right", opAdd},
	Sub:  {'-', "sub", 2, "left - right", opSub},
	Mul:  {'*', "mul", 3, "left * right", opMul},
	Div:  {'/', "div", 4, "left / right", opDiv},
	Pow:  {'!', "pow", 5, "right raised to the integer part of left", opPow},
	Rem:  {'m', "rem", 6, "remainder of left / right, with the sign of left", opRem},
	Perc: {'%', "perc", 7, "left percent of right", opPerc},
}

// Operators returns all the operators in ascending order of precedence.
func Operators() []Operator {
	all := make([]Operator, numOperators)
	for i := range all {
		all[i] = Operator(i)
	}
	return all
}

// LookupOperator returns the operator with the given symbol.
func LookupOperator(sym rune) (Operator, bool) {
	for i, info := range ops {
		if info.sym == sym {
			return Operator(i), true
		}
	}
	return 0, false
}

func (op Operator) valid() bool {
	return op < numOperators
}

// Precedence returns the precedence rank of op.
// Higher ranks bind more tightly.
func (op Operator) Precedence() int {
	if !op.valid() {
		return 0
	}
	return ops[op].prec
}

// Symbol returns the character used for op in expressions.
func (op Operator) Symbol() rune {
	if !op.valid() {
		return '?'
	}
	return ops[op].sym
}

// Name returns a short lower case name for op.
func (op Operator) Name() string {
	if !op.valid() {
		return "op" + strconv.Itoa(int(op))
	}
	return ops[op].name
}

// Help returns a description of what op computes.
func (op Operator) Help() string {
	if !op.valid() {
		return ""
	}
	return ops[op].help
}

func (op Operator) String() string {
	return string(op.Symbol())
}

// Apply applies op to its operands. The left operand
// is the one that appeared first in the expression.
func (op Operator) Apply(left, right float64) (float64, error) {
	if !op.valid() {
		return 0, xerrors.Errorf("unknown operator %d: %w", int(op), ErrInvalidExpression)
	}
	return ops[op].f(left, right)
}

func opAdd(left, right float64) (float64, error) {
	return left + right, nil
}

func opSub(left, right float64) (float64, error) {
	return left - right, nil
}

func opMul(left, right float64) (float64, error) {
	return left * right, nil
}

func opDiv(left, right float64) (float64, error) {
	if right == 0 {
		return 0, ErrDivisionByZero
	}
	return left / right, nil
}

// opPow uses the right operand as the base and the left
// as the exponent, so "2 ! 3" is 3 squared.
func opPow(left, right float64) (float64, error) {
	return math.Pow(right, float64(truncInt32(left))), nil
}

func opRem(left, right float64) (float64, error) {
	return math.Mod(left, right), nil
}

func opPerc(left, right float64) (float64, error) {
	return (right * left) / 100, nil
}

// truncInt32 truncates f towards zero, saturating
// at the limits of int32. NaN converts to zero.
func truncInt32(f float64) int32 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt32:
		return math.MaxInt32
	case f <= math.MinInt32:
		return math.MinInt32
	}
	return int32(f)
}
