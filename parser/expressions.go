package parser

import (
	"github.com/chalkline/loxwalk/ast"
	"github.com/chalkline/loxwalk/token"
)

// expression is the entry point; precedence climbs from comma (lowest)
// down through assignment, ternary, logical or/and, equality,
// comparison, term, factor, unary, to call/primary (highest), per the
// operator table in spec §4.E.
func (p *Parser) expression() (ast.Expr, error) {
	return p.comma()
}

func (p *Parser) comma() (ast.Expr, error) {
	expr, err := p.assignment()
	if err != nil {
		return nil, err
	}
	for p.match(token.COMMA) {
		right, err := p.assignment()
		if err != nil {
			return nil, err
		}
		expr = ast.NewBinary(expr, token.New(token.COMMA, ",", nil, p.previous().Line), right)
	}
	return expr, nil
}

func (p *Parser) assignment() (ast.Expr, error) {
	expr, err := p.ternary()
	if err != nil {
		return nil, err
	}

	if p.match(token.EQUAL) {
		value, err := p.assignment()
		if err != nil {
			return nil, err
		}
		switch target := expr.(type) {
		case *ast.Variable:
			return ast.NewAssign(target.Name, value), nil
		case *ast.Get:
			return ast.NewSet(target.Object, target.Name, value), nil
		case *ast.ArrayGet:
			return ast.NewArraySet(target.Array, target.Index, value), nil
		default:
			return nil, &ParseError{Tok: p.previous(), Message: "Invalid assignment target."}
		}
	}
	return expr, nil
}

func (p *Parser) ternary() (ast.Expr, error) {
	cond, err := p.or()
	if err != nil {
		return nil, err
	}
	if p.match(token.QUESTION) {
		onTrue, err := p.ternary()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.COLON, "Expect ':' in ternary expression."); err != nil {
			return nil, err
		}
		onFalse, err := p.ternary()
		if err != nil {
			return nil, err
		}
		return ast.NewTernary(cond, onTrue, onFalse), nil
	}
	return cond, nil
}

func (p *Parser) or() (ast.Expr, error) {
	expr, err := p.and()
	if err != nil {
		return nil, err
	}
	for p.match(token.OR) {
		op := p.previous()
		right, err := p.and()
		if err != nil {
			return nil, err
		}
		expr = ast.NewLogical(expr, op, right)
	}
	return expr, nil
}

func (p *Parser) and() (ast.Expr, error) {
	expr, err := p.equality()
	if err != nil {
		return nil, err
	}
	for p.match(token.AND) {
		op := p.previous()
		right, err := p.equality()
		if err != nil {
			return nil, err
		}
		expr = ast.NewLogical(expr, op, right)
	}
	return expr, nil
}

func (p *Parser) equality() (ast.Expr, error) {
	expr, err := p.comparison()
	if err != nil {
		return nil, err
	}
	for p.match(token.BANG_EQUAL, token.EQUAL_EQUAL) {
		op := p.previous()
		right, err := p.comparison()
		if err != nil {
			return nil, err
		}
		expr = ast.NewBinary(expr, op, right)
	}
	return expr, nil
}

func (p *Parser) comparison() (ast.Expr, error) {
	expr, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.match(token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL) {
		op := p.previous()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		expr = ast.NewBinary(expr, op, right)
	}
	return expr, nil
}

func (p *Parser) term() (ast.Expr, error) {
	expr, err := p.factor()
	if err != nil {
		return nil, err
	}
	for p.match(token.MINUS, token.PLUS) {
		op := p.previous()
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		expr = ast.NewBinary(expr, op, right)
	}
	return expr, nil
}

func (p *Parser) factor() (ast.Expr, error) {
	expr, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.match(token.SLASH, token.STAR) {
		op := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		expr = ast.NewBinary(expr, op, right)
	}
	return expr, nil
}

func (p *Parser) unary() (ast.Expr, error) {
	if p.match(token.BANG, token.MINUS) {
		op := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return ast.NewUnary(op, right), nil
	}
	return p.call()
}

func (p *Parser) call() (ast.Expr, error) {
	expr, err := p.primary()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.match(token.LEFT_PAREN):
			expr, err = p.finishCall(expr)
			if err != nil {
				return nil, err
			}
		case p.match(token.DOT):
			name, err := p.consume(token.IDENTIFIER, "Expect property name after '.'.")
			if err != nil {
				return nil, err
			}
			expr = ast.NewGet(expr, name)
		case p.match(token.LEFT_BRACKET):
			index, err := p.expression()
			if err != nil {
				return nil, err
			}
			if _, err := p.consume(token.RIGHT_BRACKET, "Expect ']' after index."); err != nil {
				return nil, err
			}
			expr = ast.NewArrayGet(expr, index)
		default:
			return expr, nil
		}
	}
}

func (p *Parser) finishCall(callee ast.Expr) (ast.Expr, error) {
	var args []ast.Expr
	if !p.check(token.RIGHT_PAREN) {
		for {
			arg, err := p.assignment()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	paren, err := p.consume(token.RIGHT_PAREN, "Expect ')' after arguments.")
	if err != nil {
		return nil, err
	}
	return ast.NewCall(callee, paren, args), nil
}

// arrayLiteral parses "[expr, expr, ...]". The evaluator accepts the
// resulting ast.Array node but raises Unimplemented on it (spec §9 Open
// Question — arrays are parsed, not evaluated).
func (p *Parser) arrayLiteral() (ast.Expr, error) {
	var values []ast.Expr
	if !p.check(token.RIGHT_BRACKET) {
		for {
			v, err := p.assignment()
			if err != nil {
				return nil, err
			}
			values = append(values, v)
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	if _, err := p.consume(token.RIGHT_BRACKET, "Expect ']' after array elements."); err != nil {
		return nil, err
	}
	return ast.NewArray(values), nil
}

func (p *Parser) primary() (ast.Expr, error) {
	switch {
	case p.match(token.FALSE):
		return ast.NewLiteral(false), nil
	case p.match(token.TRUE):
		return ast.NewLiteral(true), nil
	case p.match(token.NIL):
		return ast.NewLiteral(nil), nil
	case p.match(token.NUMBER):
		return ast.NewLiteral(p.previous().Literal), nil
	case p.match(token.STRING):
		return ast.NewLiteral(p.previous().Literal), nil
	case p.match(token.THIS):
		return ast.NewThis(p.previous()), nil
	case p.match(token.SUPER):
		kw := p.previous()
		if _, err := p.consume(token.DOT, "Expect '.' after 'super'."); err != nil {
			return nil, err
		}
		method, err := p.consume(token.IDENTIFIER, "Expect superclass method name.")
		if err != nil {
			return nil, err
		}
		return ast.NewSuper(kw, method), nil
	case p.match(token.IDENTIFIER):
		return ast.NewVariable(p.previous()), nil
	case p.match(token.LEFT_PAREN):
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.RIGHT_PAREN, "Expect ')' after expression."); err != nil {
			return nil, err
		}
		return ast.NewGrouping(expr), nil
	case p.match(token.LEFT_BRACKET):
		return p.arrayLiteral()
	default:
		return nil, &ParseError{Tok: p.peek(), Message: "Expect expression."}
	}
}
