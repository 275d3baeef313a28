package parser

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/apawn/boa/token"
)

const (
	errUnexpectedToken      = "Unexpected token %s"
	errUnexpectedEndOfInput = "Unexpected end of input"
)

// ErrorKind classifies parse failures.
type ErrorKind int

const (
	// AbruptEnd reports that the token stream ended where a token was
	// structurally required.
	AbruptEnd ErrorKind = iota
	// UnexpectedToken reports a token whose kind matches no grammar
	// alternative at the current position.
	UnexpectedToken
	// RestrictedProduction reports a line terminator at a position where the
	// grammar forbids one.
	RestrictedProduction
	// RecursionLimitExceeded reports input nested deeper than the parser is
	// willing to recurse.
	RecursionLimitExceeded
)

func (k ErrorKind) String() string {
	switch k {
	case AbruptEnd:
		return "AbruptEnd"
	case UnexpectedToken:
		return "UnexpectedToken"
	case RestrictedProduction:
		return "RestrictedProduction"
	case RecursionLimitExceeded:
		return "RecursionLimitExceeded"
	}
	return "ErrorKind(" + fmt.Sprint(int(k)) + ")"
}

// Error is the structured failure result of a parse. A single grammar
// violation aborts the enclosing parse attempt; there is no local recovery.
type Error struct {
	Kind     ErrorKind
	Expected []token.Token
	Found    token.Token
	Literal  string
	Context  string
	Line     int
	Offset   int
}

func (e *Error) Error() string {
	switch e.Kind {
	case AbruptEnd:
		return errUnexpectedEndOfInput
	case RestrictedProduction:
		msg := "Unexpected line terminator"
		if e.Context != "" {
			msg += " in " + e.Context
		}
		return e.withLine(msg)
	case RecursionLimitExceeded:
		return e.withLine("Maximum nesting depth exceeded")
	}

	msg := fmt.Sprintf(errUnexpectedToken, describeToken(e.Found, e.Literal))
	if len(e.Expected) > 0 {
		names := make([]string, len(e.Expected))
		for i, tkn := range e.Expected {
			names[i] = "'" + tkn.String() + "'"
		}
		slices.Sort(names)
		msg += ", expected " + strings.Join(names, " or ")
	}
	if e.Context != "" {
		msg += " in " + e.Context
	}
	return e.withLine(msg)
}

func (e *Error) withLine(msg string) string {
	if e.Line > 0 {
		return fmt.Sprintf("%s at line %d", msg, e.Line)
	}
	return msg
}

func describeToken(tkn token.Token, literal string) string {
	switch tkn {
	case token.Identifier:
		if literal != "" {
			return "identifier '" + literal + "'"
		}
		return "identifier"
	case token.Keyword:
		return "reserved word '" + literal + "'"
	case token.Number:
		return "number '" + literal + "'"
	case token.String:
		return "string"
	case token.Illegal:
		if literal != "" {
			return "'" + literal + "'"
		}
		return "illegal character"
	}
	return "'" + tkn.String() + "'"
}

// errorAbruptEnd ...
func (p *parser) errorAbruptEnd() error {
	tok := p.cursor.peek(0)
	return &Error{Kind: AbruptEnd, Found: token.Eof, Line: tok.Line, Offset: tok.Offset}
}

// errorUnexpectedToken builds an UnexpectedToken error for the token at the
// cursor, naming the kinds that would have been legal.
func (p *parser) errorUnexpectedToken(context string, expected ...token.Token) error {
	tok := p.cursor.peek(0)
	if tok.Kind == token.Eof {
		return p.errorAbruptEnd()
	}
	return &Error{
		Kind:     UnexpectedToken,
		Expected: expected,
		Found:    tok.Kind,
		Literal:  tok.Literal,
		Context:  context,
		Line:     tok.Line,
		Offset:   tok.Offset,
	}
}

// errorRecursionLimit ...
func (p *parser) errorRecursionLimit() error {
	tok := p.cursor.peek(0)
	return &Error{Kind: RecursionLimitExceeded, Line: tok.Line, Offset: tok.Offset}
}

// ErrorKindOf extracts the structured kind from err, reporting ok=false when
// err did not originate from this parser.
func ErrorKindOf(err error) (ErrorKind, bool) {
	if e, ok := err.(*Error); ok {
		return e.Kind, true
	}
	return 0, false
}
