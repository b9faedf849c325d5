package calc

// ToPostfix reorders infix tokens into postfix (reverse Polish)
// order using the shunting-yard algorithm. Operators of equal
// precedence associate to the left.
//
// The brackets in tokens must be balanced, as they are in any
// sequence returned by Parse; brackets do not appear in the result.
func ToPostfix(tokens []Token) []Token {
	out := make([]Token, 0, len(tokens))
	var stack []Token
	pop := func() Token {
		t := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return t
	}
	for _, t := range tokens {
		switch t.Kind {
		case KindNumber:
			out = append(out, t)
		case KindOperator:
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.Kind != KindOperator || top.Op.Precedence() < t.Op.Precedence() {
					break
				}
				out = append(out, pop())
			}
			stack = append(stack, t)
		case KindBracket:
			if t.Open {
				stack = append(stack, t)
				break
			}
			for len(stack) > 0 {
				top := pop()
				if top == OpenBracket {
					break
				}
				out = append(out, top)
			}
		}
	}
	for len(stack) > 0 {
		out = append(out, pop())
	}
	return out
}
