// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package parse builds canonical expressions from infix input. The
// grammar is the conventional precedence ladder — sums below products,
// unary minus below powers, power right-associative — and everything
// the parser builds goes straight through the expr constructors, so the
// values it returns are always canonical.
package parse // import "robpike.io/cas/parse"

import (
	"fmt"

	"robpike.io/cas/config"
	"robpike.io/cas/expr"
	"robpike.io/cas/scan"
	"robpike.io/cas/value"
)

// node is a parsed, not yet built, expression. Eval hands it to the
// expr builder surface.
type node interface {
	Eval() expr.Expr
}

// constNode holds a numeric literal, already canonical.
type constNode struct {
	val expr.Expr
}

func (c constNode) Eval() expr.Expr {
	return c.val
}

// variableExpr holds a name to be looked up when the line is built.
// A name with no binding is a free symbol.
type variableExpr struct {
	name string
	vars map[string]expr.Expr
}

func (e *variableExpr) Eval() expr.Expr {
	if v, ok := e.vars[e.name]; ok {
		return v
	}
	return expr.Symbol(e.name)
}

type unary struct {
	op    string
	right node
}

func (u *unary) Eval() expr.Expr {
	return expr.Unary(u.op, u.right.Eval())
}

type binary struct {
	op    string
	left  node
	right node
}

func (b *binary) Eval() expr.Expr {
	return expr.Binary(b.left.Eval(), b.op, b.right.Eval())
}

type call struct {
	name string
	args []node
}

func (c *call) Eval() expr.Expr {
	args := make([]expr.Expr, len(c.args))
	for i, a := range c.args {
		args[i] = a.Eval()
	}
	return expr.Func(c.name, args...)
}

// Tree prints a representation of the parse tree n.
func Tree(n node) string {
	switch n := n.(type) {
	case nil:
		return ""
	case constNode:
		return fmt.Sprintf("<%s>", n.val)
	case *variableExpr:
		return fmt.Sprintf("<var %s>", n.name)
	case *unary:
		return fmt.Sprintf("(%s %s)", n.op, Tree(n.right))
	case *binary:
		return fmt.Sprintf("(%s %s %s)", Tree(n.left), n.op, Tree(n.right))
	case *call:
		s := "(" + n.name
		for _, a := range n.args {
			s += " " + Tree(a)
		}
		return s + ")"
	}
	return fmt.Sprintf("%T", n)
}

// Parser stores the state for the parser.
type Parser struct {
	scanner  *scan.Scanner
	config   *config.Config
	fileName string
	lineNum  int
	peekTok  scan.Token
	curTok   scan.Token // most recent token from scanner
	vars     map[string]expr.Expr
}

// NewParser returns a new parser that will read from the scanner.
func NewParser(conf *config.Config, fileName string, scanner *scan.Scanner) *Parser {
	return &Parser{
		scanner:  scanner,
		config:   conf,
		fileName: fileName,
		vars:     make(map[string]expr.Expr),
	}
}

func (p *Parser) next() scan.Token {
	tok := p.peekTok
	if tok.Type != scan.EOF {
		p.peekTok = scan.Token{Type: scan.EOF}
	} else {
		tok = <-p.scanner.Tokens
	}
	p.curTok = tok
	if tok.Type != scan.Newline {
		p.lineNum = tok.Line
	}
	return tok
}

func (p *Parser) peek() scan.Token {
	tok := p.peekTok
	if tok.Type != scan.EOF {
		return tok
	}
	p.peekTok = <-p.scanner.Tokens
	return p.peekTok
}

// Loc returns the current input location in the form name:line.
func (p *Parser) Loc() string {
	return fmt.Sprintf("%s:%d", p.fileName, p.lineNum)
}

func (p *Parser) errorf(format string, args ...interface{}) {
	// Flush to newline.
	for p.curTok.Type != scan.Newline && p.curTok.Type != scan.EOF {
		p.next()
	}
	p.peekTok = scan.Token{Type: scan.EOF}
	value.Errorf(format, args...)
}

// Line reads a line of input and returns the canonical value it
// evaluates to, or nil for a line with nothing to print (blank lines
// and assignments). The boolean reports whether input remains.
//
// Line:
//	'\n'
//	Identifier '=' expr '\n'
//	expr '\n'
func (p *Parser) Line() (expr.Expr, bool) {
	tok := p.next()
	switch tok.Type {
	case scan.Error:
		p.errorf("%s", tok)
	case scan.EOF:
		return nil, false
	case scan.Newline:
		return nil, true
	}
	variableName := ""
	if tok.Type == scan.Identifier && p.peek().Type == scan.Assign {
		p.next()
		variableName = tok.Text
		tok = p.next()
	}
	x := p.parseExpr(tok)
	tok = p.next()
	switch tok.Type {
	case scan.Error:
		p.errorf("%s", tok)
	case scan.EOF, scan.Newline:
	default:
		p.errorf("unexpected %s", tok)
	}
	if p.config.Debug("parse") {
		fmt.Println(Tree(x))
	}
	v := x.Eval()
	if variableName != "" {
		p.vars[variableName] = v
		return nil, true // No value to print.
	}
	return v, true
}

// parseExpr:
//	term
//	expr ('+' | '-') term
func (p *Parser) parseExpr(tok scan.Token) node {
	n := p.term(tok)
	for p.peek().Type == scan.Operator {
		op := p.peek().Text
		if op != "+" && op != "-" {
			break
		}
		p.next()
		n = &binary{op: op, left: n, right: p.term(p.next())}
	}
	return n
}

// term:
//	factor
//	term ('*' | '/') factor
func (p *Parser) term(tok scan.Token) node {
	n := p.factor(tok)
	for p.peek().Type == scan.Operator {
		op := p.peek().Text
		if op != "*" && op != "/" {
			break
		}
		p.next()
		n = &binary{op: op, left: n, right: p.factor(p.next())}
	}
	return n
}

// factor:
//	power
//	('+' | '-') factor
func (p *Parser) factor(tok scan.Token) node {
	if tok.Type == scan.Operator {
		if tok.Text == "+" || tok.Text == "-" {
			return &unary{op: tok.Text, right: p.factor(p.next())}
		}
		p.errorf("unexpected operator %q", tok.Text)
	}
	return p.power(tok)
}

// power:
//	primary
//	primary '^' factor
//
// The exponent recurses through factor so that x^-2 parses and the
// operator is right-associative.
func (p *Parser) power(tok scan.Token) node {
	n := p.primary(tok)
	if p.peek().Type == scan.Operator && p.peek().Text == "^" {
		p.next()
		return &binary{op: "^", left: n, right: p.factor(p.next())}
	}
	return n
}

// primary:
//	Number
//	Rational
//	Identifier
//	Identifier '(' args ')'
//	'(' expr ')'
func (p *Parser) primary(tok scan.Token) node {
	switch tok.Type {
	case scan.Number, scan.Rational:
		r, err := value.ParseRat(tok.Text)
		if err != nil {
			p.errorf("%s: %s", tok.Text, err)
		}
		return constNode{val: expr.NumberRat(r)}
	case scan.Identifier:
		if p.peek().Type == scan.LeftParen {
			p.next()
			return p.callArgs(tok.Text)
		}
		return &variableExpr{name: tok.Text, vars: p.vars}
	case scan.LeftParen:
		n := p.parseExpr(p.next())
		tok := p.next()
		if tok.Type != scan.RightParen {
			p.errorf("expected right paren, found %s", tok)
		}
		return n
	}
	p.errorf("unexpected %s", tok)
	panic("not reached")
}

// callArgs parses the argument list of a function application; the
// opening paren has been consumed.
func (p *Parser) callArgs(name string) node {
	c := &call{name: name}
	if p.peek().Type == scan.RightParen {
		p.next()
		return c
	}
	for {
		c.args = append(c.args, p.parseExpr(p.next()))
		tok := p.next()
		switch tok.Type {
		case scan.Comma:
			continue
		case scan.RightParen:
			return c
		default:
			p.errorf("expected comma or right paren, found %s", tok)
		}
	}
}
