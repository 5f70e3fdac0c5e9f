// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package boolexpr

import (
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Tokens
type tokenType int

const (
	tEOF tokenType = iota
	tVar
	tConst
	tNot
	tAnd
	tOr
	tOpen
	tClose
)

var tokenNames = [...]string{
	tEOF:   "end of input",
	tVar:   "variable",
	tConst: "constant",
	tNot:   "'",
	tAnd:   "*",
	tOr:    "+",
	tOpen:  "(",
	tClose: ")",
}

func (t tokenType) String() string { return tokenNames[t] }

type token struct {
	typ tokenType
	pos int
	val rune
}

func (t token) String() string {
	switch t.typ {
	case tVar, tConst:
		return t.typ.String() + " " + strconv.QuoteRune(t.val)
	}
	return strconv.Quote(t.typ.String())
}

// lexer splits an expression into tokens. Variables are single letters.
//
type lexer struct {
	input string
	pos   int
}

func (l *lexer) lex() (token, error) {
	for l.pos < len(l.input) {
		r, sz := utf8.DecodeRuneInString(l.input[l.pos:])
		pos := l.pos
		l.pos += sz
		switch {
		case unicode.IsSpace(r):
			continue
		case unicode.IsLetter(r):
			return token{tVar, pos, r}, nil
		case r == '0' || r == '1':
			return token{tConst, pos, r}, nil
		case r == '\'':
			return token{tNot, pos, r}, nil
		case r == '*':
			return token{tAnd, pos, r}, nil
		case r == '+':
			return token{tOr, pos, r}, nil
		case r == '(':
			return token{tOpen, pos, r}, nil
		case r == ')':
			return token{tClose, pos, r}, nil
		default:
			return token{}, parseError(l.input, pos, "unexpected character "+strconv.QuoteRune(r))
		}
	}
	return token{tEOF, l.pos, 0}, nil
}

func parseError(in string, pos int, msg string) error {
	return errors.Errorf("in %q at pos %d: %s", in, pos+1, msg)
}
