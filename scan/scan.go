// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scan // import "robpike.io/cas/scan"

import (
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"robpike.io/cas/config"
)

type Pos int // Byte position.

// Token represents a token or text string returned from the scanner.
type Token struct {
	Type Type   // The type of this item.
	Line int    // The line on which the item appeared.
	Text string // The text of this item.
}

// Type identifies the type of lex items.
type Type int

const (
	EOF   Type = iota // zero value so closed channel delivers EOF
	Error             // error occurred; value is text of error
	Newline
	// Interesting things
	Assign     // '='
	Comma      // ','
	Identifier // alphanumeric identifier
	LeftParen  // '('
	Number     // decimal integer
	Operator   // '+', '-', '*', '/', or '^'
	Rational   // rational number like 2/3
	RightParen // ')'
)

func (i Token) String() string {
	switch {
	case i.Type == EOF:
		return "EOF"
	case i.Type == Error:
		return "error: " + i.Text
	case len(i.Text) > 10:
		return fmt.Sprintf("%d: %.10q...", i.Type, i.Text)
	}
	return fmt.Sprintf("%d: %q", i.Type, i.Text)
}

const eof = -1

// stateFn represents the state of the scanner as a function that returns the next state.
type stateFn func(*Scanner) stateFn

// Scanner holds the state of the scanner.
type Scanner struct {
	Tokens chan Token // channel of scanned items
	config *config.Config
	r      io.ByteReader
	done   bool
	name   string // the name of the input; used only for error reports
	buf    []byte
	input  string  // the line of text being scanned.
	state  stateFn // the next lexing function to enter
	line   int     // line number in input
	pos    Pos     // current position in the input
	start  Pos     // start position of this item
	width  Pos     // width of last rune read from input
}

// loadLine reads the next line of input and stores it in (appends it to) the input.
// (l.input may have data left over when we are called.)
func (l *Scanner) loadLine() {
	l.buf = l.buf[:0]
	for {
		c, err := l.r.ReadByte()
		if err != nil {
			l.done = true
			break
		}
		l.buf = append(l.buf, c)
		if c == '\n' {
			break
		}
	}
	l.input = l.input[l.start:l.pos] + string(l.buf)
	l.pos -= l.start
	l.start = 0
}

// next returns the next rune in the input.
func (l *Scanner) next() rune {
	if !l.done && int(l.pos) == len(l.input) {
		l.loadLine()
	}
	if Pos(len(l.input)) == l.pos {
		l.width = 0
		return eof
	}
	r, w := utf8.DecodeRuneInString(l.input[l.pos:])
	l.width = Pos(w)
	l.pos += l.width
	if r == '\n' {
		l.line++
	}
	return r
}

// peek returns but does not consume the next rune in the input.
func (l *Scanner) peek() rune {
	r := l.next()
	l.backup()
	return r
}

// backup steps back one rune. Can only be called once per call of next.
func (l *Scanner) backup() {
	if l.width == 1 && l.pos > 0 && l.input[l.pos-1] == '\n' {
		l.line--
	}
	l.pos -= l.width
}

// emit passes an item back to the client.
func (l *Scanner) emit(t Type) {
	s := l.input[l.start:l.pos]
	tok := Token{t, l.line, s}
	if l.config.Debug("tokens") {
		fmt.Printf("emit %s\n", tok)
	}
	l.Tokens <- tok
	l.start = l.pos
}

// ignore skips over the pending input before this point.
func (l *Scanner) ignore() {
	l.start = l.pos
}

// accept consumes the next rune if it's from the valid set.
func (l *Scanner) accept(valid string) bool {
	if strings.ContainsRune(valid, l.next()) {
		return true
	}
	l.backup()
	return false
}

// acceptRun consumes a run of runes from the valid set.
func (l *Scanner) acceptRun(valid string) {
	for strings.ContainsRune(valid, l.next()) {
	}
	l.backup()
}

// errorf returns an error token and continues to scan.
func (l *Scanner) errorf(format string, args ...interface{}) stateFn {
	l.Tokens <- Token{Error, l.line, fmt.Sprintf(format, args...)}
	return lexAny
}

// New creates a new scanner for the input string.
func New(conf *config.Config, name string, r io.ByteReader) *Scanner {
	l := &Scanner{
		r:      r,
		config: conf,
		name:   name,
		line:   1,
		Tokens: make(chan Token),
	}
	go l.run()
	return l
}

// run runs the state machine for the Scanner.
func (l *Scanner) run() {
	for l.state = lexSpace; l.state != nil; {
		l.state = l.state(l)
	}
	close(l.Tokens)
}

// state functions

const startComment = "#"

// lexComment scans a comment; the comment marker is known to be present.
// The newline that ends it is emitted so line structure is preserved.
func lexComment(l *Scanner) stateFn {
	for {
		r := l.next()
		if r == eof {
			return nil
		}
		if r == '\n' {
			l.start = l.pos - 1
			l.emit(Newline)
			return lexSpace
		}
	}
}

// lexAny scans non-space items.
func lexAny(l *Scanner) stateFn {
	if strings.HasPrefix(l.input[l.pos:], startComment) {
		return lexComment
	}
	switch r := l.next(); {
	case r == eof:
		return nil
	case r == '\n':
		l.emit(Newline)
		return lexAny
	case isSpace(r):
		return lexSpace
	case '0' <= r && r <= '9':
		l.backup()
		return lexNumber
	case r == '+' || r == '-' || r == '*' || r == '/' || r == '^':
		l.emit(Operator)
		return lexAny
	case r == '=':
		l.emit(Assign)
		return lexAny
	case r == ',':
		l.emit(Comma)
		return lexAny
	case r == '(':
		l.emit(LeftParen)
		return lexAny
	case r == ')':
		l.emit(RightParen)
		return lexAny
	case isAlphaNumeric(r):
		l.backup()
		return lexIdentifier
	default:
		return l.errorf("unrecognized character: %#U", r)
	}
}

// lexSpace scans a run of space characters.
func lexSpace(l *Scanner) stateFn {
	for isSpace(l.peek()) {
		l.next()
	}
	l.ignore()
	return lexAny
}

// lexIdentifier scans an alphanumeric.
func lexIdentifier(l *Scanner) stateFn {
	for {
		r := l.next()
		if isAlphaNumeric(r) {
			continue
		}
		l.backup()
		if !l.atTerminator() {
			return l.errorf("bad character %#U", r)
		}
		l.emit(Identifier)
		return lexAny
	}
}

// lexNumber scans a decimal integer or a rational like 2/3. The slash
// only joins a rational when a digit follows; otherwise it is left for
// the division operator.
func lexNumber(l *Scanner) stateFn {
	if !l.scanNumber() {
		return l.errorf("bad number syntax: %q", l.input[l.start:l.pos])
	}
	if l.peek() != '/' {
		l.emit(Number)
		return lexAny
	}
	l.accept("/")
	if r := l.peek(); r < '0' || '9' < r {
		// Not a rational after all; back up before the slash.
		l.pos--
		l.emit(Number)
		l.accept("/")
		l.emit(Operator)
		return lexAny
	}
	if !l.scanNumber() {
		return l.errorf("bad number syntax: %q", l.input[l.start:l.pos])
	}
	l.emit(Rational)
	return lexAny
}

func (l *Scanner) scanNumber() bool {
	l.acceptRun("0123456789")
	// Next thing mustn't be alphanumeric.
	if isAlphaNumeric(l.peek()) {
		l.next()
		return false
	}
	return true
}

// atTerminator reports whether the input is at a valid termination
// character to appear after an identifier.
func (l *Scanner) atTerminator() bool {
	r := l.peek()
	return r == eof || isSpace(r) || isEndOfLine(r) || unicode.IsPunct(r) || unicode.IsSymbol(r)
}

// isSpace reports whether r is a space character.
func isSpace(r rune) bool {
	return r == ' ' || r == '\t'
}

// isEndOfLine reports whether r is an end-of-line character.
func isEndOfLine(r rune) bool {
	return r == '\r' || r == '\n'
}

// isAlphaNumeric reports whether r is an alphabetic, digit, or underscore.
func isAlphaNumeric(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
