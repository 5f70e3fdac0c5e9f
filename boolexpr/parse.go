// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package boolexpr

// parser is a recursive descent parser for:
//
//	expr   = term { "+" term } .
//	term   = factor { "*" factor } .
//	factor = primary { "'" } .
//	primary = variable | constant | "(" expr ")" .
//
type parser struct {
	l lexer
	t token
}

func (p *parser) advance() (err error) {
	p.t, err = p.l.lex()
	return err
}

func (p *parser) expr() (node, error) {
	return p.list(false, p.term)
}

func (p *parser) term() (node, error) {
	return p.list(true, p.factor)
}

func (p *parser) list(and bool, next func() (node, error)) (node, error) {
	sep := tOr
	if and {
		sep = tAnd
	}
	n, err := next()
	if err != nil {
		return nil, err
	}
	if p.t.typ != sep {
		return n, nil
	}
	args := []node{n}
	for p.t.typ == sep {
		if err = p.advance(); err != nil {
			return nil, err
		}
		if n, err = next(); err != nil {
			return nil, err
		}
		args = append(args, n)
	}
	return op{and: and, args: args}, nil
}

func (p *parser) factor() (node, error) {
	n, err := p.primary()
	if err != nil {
		return nil, err
	}
	for p.t.typ == tNot {
		n = not{n}
		if err = p.advance(); err != nil {
			return nil, err
		}
	}
	return n, nil
}

func (p *parser) primary() (node, error) {
	t := p.t
	switch t.typ {
	case tVar:
		return variable(string(t.val)), p.advance()
	case tConst:
		return constant(t.val == '1'), p.advance()
	case tOpen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		n, err := p.expr()
		if err != nil {
			return nil, err
		}
		if p.t.typ != tClose {
			return nil, parseError(p.l.input, p.t.pos, "expected \")\", got "+p.t.String())
		}
		return n, p.advance()
	}
	return nil, parseError(p.l.input, t.pos, "expected operand, got "+t.String())
}
