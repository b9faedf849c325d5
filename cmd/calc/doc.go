/*
Calc evaluates infix arithmetic expressions.

With arguments, calc joins them with spaces, evaluates the result
as a single expression and prints its value. Without arguments it
reads expressions from standard input, one per line, printing the
value of each. Errors are printed to standard error and do not stop
calc reading further lines.

Here is a brief overview by demonstration:

	% calc '2 * 2 + 48 / 4'
	16
	%
	% # Brackets override precedence.
	% calc '(2 + 3) * 4'
	20
	%
	% # Numbers are non-negative integers, but
	% # results need not be.
	% calc 10 / 4
	2.5
	%
	% # The power operator takes its exponent on the left.
	% calc '2 ! 3'
	9
	%
	% # m is remainder, % is percentage.
	% calc 17 m 5
	2
	% calc 25 % 80
	20
	%
	% # Space does not separate digits.
	% calc 1 2 + 3
	15
	%
	% # The -v flag shows how the expression was understood.
	% calc -v '2 + 3 * 4'
	tokens: 2 + 3 * 4
	postfix: 2 3 4 * +
	14
	%
	% calc 4 / 0
	calc: division by zero
	%
	% # The -ops flag lists the operators.
	% calc -ops
	op name prec meaning
	+  add  1    left + right
	-  sub  2    left - right
	*  mul  3    left * right
	/  div  4    left / right
	!  pow  5    right raised to the integer part of left
	m  rem  6    remainder of left / right, with the sign of left
	%  perc 7    left percent of right

With the -acme flag, calc opens an acme window named +Calc.
Executing an expression in that window with the middle button
appends the expression and its value to the window's body.
Executing Clear empties it.
*/
package main
