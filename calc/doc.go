// Package calc evaluates simple infix arithmetic expressions.
//
// Evaluation happens in three stages: Parse splits the text
// into tokens, ToPostfix reorders them into postfix order and
// Evaluate reduces the postfix sequence to a value. Eval runs
// all three.
//
// Expressions are made from non-negative integers, brackets
// and the following binary operators, listed from lowest to
// highest precedence:
//
//	+	add
//	-	subtract
//	*	multiply
//	/	divide
//	!	power: a ! b is b raised to the integer part of a
//	m	remainder
//	%	percent: a % b is a percent of b
//
// Operators of equal precedence associate to the left.
// There is no unary minus.
package calc
