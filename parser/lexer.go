package parser

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/rangetable"

	"github.com/apawn/boa/token"
)

// lexToken is one scanned token. Literal holds the cooked value (identifier
// or keyword text, decoded string contents); Raw holds the source spelling
// where it differs. OnNewLine is set when at least one line terminator
// appeared between the previous token and this one, which is what the
// restricted-production checks ask about.
type lexToken struct {
	Kind      token.Token
	Literal   string
	Raw       string
	Offset    int
	Line      int
	OnNewLine bool
}

var (
	idStartTable    = rangetable.Merge(unicode.L, unicode.Nl, unicode.Other_ID_Start)
	idContinueTable = rangetable.Merge(
		unicode.L, unicode.Nl, unicode.Other_ID_Start,
		unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc, unicode.Other_ID_Continue,
	)
)

func isIdentifierStart(chr rune) bool {
	return chr == '$' || chr == '_' ||
		'a' <= chr && chr <= 'z' || 'A' <= chr && chr <= 'Z' ||
		chr >= utf8.RuneSelf && unicode.Is(idStartTable, chr)
}

func isIdentifierPart(chr rune) bool {
	return chr == '$' || chr == '_' ||
		'a' <= chr && chr <= 'z' || 'A' <= chr && chr <= 'Z' ||
		'0' <= chr && chr <= '9' ||
		chr >= utf8.RuneSelf && unicode.Is(idContinueTable, chr)
}

func isLineTerminator(chr rune) bool {
	switch chr {
	case '\n', '\r', '\u2028', '\u2029':
		return true
	}
	return false
}

func isDecimalDigit(chr rune) bool {
	return '0' <= chr && chr <= '9'
}

// lexer is a hand-written scanner over the source text. It keeps one rune of
// state: chr is the current rune, chrOffset its byte offset, and offset the
// byte offset of the rune after it. chr is -1 at end of input.
type lexer struct {
	str string

	chr       rune
	chrOffset int
	offset    int

	line      int
	onNewLine bool
}

func newLexer(src string) *lexer {
	l := &lexer{str: src, chr: ' ', line: 1}
	l.read()
	return l
}

func (l *lexer) read() {
	if l.offset < len(l.str) {
		l.chrOffset = l.offset
		chr, width := rune(l.str[l.offset]), 1
		if chr >= utf8.RuneSelf {
			chr, width = utf8.DecodeRuneInString(l.str[l.offset:])
		}
		l.offset += width
		l.chr = chr
	} else {
		l.chrOffset = len(l.str)
		l.chr = -1
	}
}

func (l *lexer) peekByte() byte {
	if l.offset < len(l.str) {
		return l.str[l.offset]
	}
	return 0
}

// next scans and returns the next token. At end of input it returns Eof
// tokens forever.
func (l *lexer) next() lexToken {
	l.skipWhitespaceAndComments()

	tok := lexToken{
		Offset:    l.chrOffset,
		Line:      l.line,
		OnNewLine: l.onNewLine,
	}
	l.onNewLine = false

	switch chr := l.chr; {
	case chr == -1:
		tok.Kind = token.Eof
	case isIdentifierStart(chr):
		literal := l.scanIdentifier()
		tok.Literal = literal
		if kind := token.LiteralKeyword(literal); kind != 0 {
			tok.Kind = kind
		} else {
			tok.Kind = token.Identifier
		}
	case isDecimalDigit(chr), chr == '.' && isDecimalDigit(rune(l.peekByte())):
		tok.Kind = token.Number
		tok.Raw = l.scanNumber()
		tok.Literal = tok.Raw
	case chr == '"' || chr == '\'':
		literal, raw, err := l.scanString()
		if err != nil {
			tok.Kind = token.Illegal
			tok.Literal = err.Error()
			break
		}
		tok.Kind = token.String
		tok.Literal = literal
		tok.Raw = raw
	default:
		tok.Kind = l.scanPunctuator()
		if tok.Kind == token.Illegal {
			tok.Literal = string(chr)
		}
	}
	return tok
}

func (l *lexer) skipWhitespaceAndComments() {
	for {
		switch chr := l.chr; {
		case chr == ' ' || chr == '\t' || chr == '\v' || chr == '\f' || chr == '\u00a0' || chr == '\uFEFF':
			l.read()
		case isLineTerminator(chr):
			l.scanNewline()
		case chr == '/' && l.peekByte() == '/':
			for l.chr >= 0 && !isLineTerminator(l.chr) {
				l.read()
			}
		case chr == '/' && l.peekByte() == '*':
			l.read()
			l.read()
			for l.chr >= 0 {
				if l.chr == '*' && l.peekByte() == '/' {
					l.read()
					l.read()
					break
				}
				if isLineTerminator(l.chr) {
					l.scanNewline()
				} else {
					l.read()
				}
			}
		case chr >= utf8.RuneSelf && unicode.IsSpace(chr):
			l.read()
		default:
			return
		}
	}
}

func (l *lexer) scanNewline() {
	if l.chr == '\r' && l.peekByte() == '\n' {
		l.read()
	}
	l.read()
	l.line++
	l.onNewLine = true
}

func (l *lexer) scanIdentifier() string {
	start := l.chrOffset
	for isIdentifierPart(l.chr) {
		l.read()
	}
	return l.str[start:l.chrOffset]
}

func (l *lexer) scanNumber() string {
	start := l.chrOffset
	if l.chr == '0' {
		l.read()
		switch l.chr {
		case 'x', 'X':
			l.read()
			for isHexDigit(l.chr) {
				l.read()
			}
			return l.str[start:l.chrOffset]
		case 'b', 'B':
			l.read()
			for l.chr == '0' || l.chr == '1' {
				l.read()
			}
			return l.str[start:l.chrOffset]
		case 'o', 'O':
			l.read()
			for '0' <= l.chr && l.chr <= '7' {
				l.read()
			}
			return l.str[start:l.chrOffset]
		}
	}
	for isDecimalDigit(l.chr) {
		l.read()
	}
	if l.chr == '.' && isDecimalDigit(rune(l.peekByte())) {
		l.read()
		for isDecimalDigit(l.chr) {
			l.read()
		}
	}
	if l.chr == 'e' || l.chr == 'E' {
		l.read()
		if l.chr == '+' || l.chr == '-' {
			l.read()
		}
		// A malformed exponent stays in the raw text; parseNumberLiteral
		// rejects it and the parser reports the bad literal.
		for isDecimalDigit(l.chr) {
			l.read()
		}
	}
	return l.str[start:l.chrOffset]
}

func isHexDigit(chr rune) bool {
	return '0' <= chr && chr <= '9' || 'a' <= chr && chr <= 'f' || 'A' <= chr && chr <= 'F'
}

func hexValue(chr rune) (rune, bool) {
	switch {
	case '0' <= chr && chr <= '9':
		return chr - '0', true
	case 'a' <= chr && chr <= 'f':
		return chr - 'a' + 10, true
	case 'A' <= chr && chr <= 'F':
		return chr - 'A' + 10, true
	}
	return 0, false
}

func (l *lexer) scanString() (string, string, error) {
	quote := l.chr
	start := l.chrOffset
	l.read()

	var sb strings.Builder
	for {
		chr := l.chr
		switch {
		case chr == -1 || isLineTerminator(chr):
			return "", "", errors.New("unterminated string literal")
		case chr == quote:
			l.read()
			return sb.String(), l.str[start:l.chrOffset], nil
		case chr == '\\':
			l.read()
			if isLineTerminator(l.chr) {
				// Line continuation contributes nothing.
				l.scanNewline()
				l.onNewLine = false
				continue
			}
			value, err := l.scanEscape()
			if err != nil {
				return "", "", err
			}
			if value >= 0 {
				sb.WriteRune(value)
			}
		default:
			sb.WriteRune(chr)
			l.read()
		}
	}
}

// scanEscape decodes the escape sequence after the backslash has been
// consumed. A negative return value means the escape produced no character.
func (l *lexer) scanEscape() (rune, error) {
	chr := l.chr
	l.read()
	switch chr {
	case 'b':
		return '\b', nil
	case 'f':
		return '\f', nil
	case 'n':
		return '\n', nil
	case 'r':
		return '\r', nil
	case 't':
		return '\t', nil
	case 'v':
		return '\v', nil
	case '0':
		return 0, nil
	case 'x':
		return l.scanHexEscape(2)
	case 'u':
		if l.chr == '{' {
			l.read()
			var value rune = -1
			var accum rune
			for l.chr != '}' {
				digit, ok := hexValue(l.chr)
				if !ok {
					return 0, errors.New("invalid Unicode escape sequence")
				}
				accum = accum<<4 | digit
				if accum > utf8.MaxRune {
					return 0, errors.New("undefined Unicode code-point")
				}
				value = accum
				l.read()
			}
			if value < 0 {
				return 0, errors.New("invalid Unicode escape sequence")
			}
			l.read()
			return value, nil
		}
		return l.scanHexEscape(4)
	default:
		return chr, nil
	}
}

func (l *lexer) scanHexEscape(size int) (rune, error) {
	var value rune
	for i := 0; i < size; i++ {
		digit, ok := hexValue(l.chr)
		if !ok {
			return 0, errors.New("invalid hexadecimal escape sequence")
		}
		value = value<<4 | digit
		l.read()
	}
	return value, nil
}

func (l *lexer) scanPunctuator() token.Token {
	chr := l.chr
	l.read()
	switch chr {
	case '(':
		return token.LeftParenthesis
	case ')':
		return token.RightParenthesis
	case '[':
		return token.LeftBracket
	case ']':
		return token.RightBracket
	case '{':
		return token.LeftBrace
	case '}':
		return token.RightBrace
	case ',':
		return token.Comma
	case ';':
		return token.Semicolon
	case ':':
		return token.Colon
	case '~':
		return token.BitwiseNot
	case '.':
		if l.chr == '.' && l.peekByte() == '.' {
			l.read()
			l.read()
			return token.Ellipsis
		}
		return token.Period
	case '?':
		if l.chr == '?' {
			l.read()
			if l.chr == '=' {
				l.read()
				return token.CoalesceAssign
			}
			return token.Coalesce
		}
		return token.QuestionMark
	case '=':
		if l.chr == '=' {
			l.read()
			if l.chr == '=' {
				l.read()
				return token.StrictEqual
			}
			return token.Equal
		}
		if l.chr == '>' {
			l.read()
			return token.Arrow
		}
		return token.Assign
	case '!':
		if l.chr == '=' {
			l.read()
			if l.chr == '=' {
				l.read()
				return token.StrictNotEqual
			}
			return token.NotEqual
		}
		return token.Not
	case '<':
		if l.chr == '<' {
			l.read()
			if l.chr == '=' {
				l.read()
				return token.ShiftLeftAssign
			}
			return token.ShiftLeft
		}
		if l.chr == '=' {
			l.read()
			return token.LessOrEqual
		}
		return token.Less
	case '>':
		if l.chr == '>' {
			l.read()
			if l.chr == '>' {
				l.read()
				if l.chr == '=' {
					l.read()
					return token.UnsignedShiftRightAssign
				}
				return token.UnsignedShiftRight
			}
			if l.chr == '=' {
				l.read()
				return token.ShiftRightAssign
			}
			return token.ShiftRight
		}
		if l.chr == '=' {
			l.read()
			return token.GreaterOrEqual
		}
		return token.Greater
	case '+':
		if l.chr == '+' {
			l.read()
			return token.Increment
		}
		if l.chr == '=' {
			l.read()
			return token.AddAssign
		}
		return token.Plus
	case '-':
		if l.chr == '-' {
			l.read()
			return token.Decrement
		}
		if l.chr == '=' {
			l.read()
			return token.SubtractAssign
		}
		return token.Minus
	case '*':
		if l.chr == '*' {
			l.read()
			if l.chr == '=' {
				l.read()
				return token.ExponentAssign
			}
			return token.Exponent
		}
		if l.chr == '=' {
			l.read()
			return token.MultiplyAssign
		}
		return token.Multiply
	case '/':
		if l.chr == '=' {
			l.read()
			return token.QuotientAssign
		}
		return token.Slash
	case '%':
		if l.chr == '=' {
			l.read()
			return token.RemainderAssign
		}
		return token.Remainder
	case '&':
		if l.chr == '&' {
			l.read()
			if l.chr == '=' {
				l.read()
				return token.LogicalAndAssign
			}
			return token.LogicalAnd
		}
		if l.chr == '=' {
			l.read()
			return token.AndAssign
		}
		return token.And
	case '|':
		if l.chr == '|' {
			l.read()
			if l.chr == '=' {
				l.read()
				return token.LogicalOrAssign
			}
			return token.LogicalOr
		}
		if l.chr == '=' {
			l.read()
			return token.OrAssign
		}
		return token.Or
	case '^':
		if l.chr == '=' {
			l.read()
			return token.ExclusiveOrAssign
		}
		return token.ExclusiveOr
	}
	return token.Illegal
}

// parseNumberLiteral converts the raw spelling of a numeric literal to its
// value.
func parseNumberLiteral(literal string) (float64, error) {
	n, err := strconv.ParseInt(literal, 0, 64)
	if err == nil {
		return float64(n), nil
	}

	parseIntErr := err

	value, err := strconv.ParseFloat(literal, 64)
	if err == nil {
		return value, nil
	} else if errors.Is(err, strconv.ErrRange) {
		// Infinity, etc.
		return value, nil
	}

	if errors.Is(parseIntErr, strconv.ErrRange) {
		if len(literal) > 2 && literal[0] == '0' && (literal[1] == 'X' || literal[1] == 'x') {
			// Could just be a very large number (e.g. 0x8000000000000000)
			var value float64
			for _, chr := range literal[2:] {
				digit, ok := hexValue(chr)
				if !ok {
					return 0, errors.New("illegal numeric literal")
				}
				value = value*16 + float64(digit)
			}
			return value, nil
		}
	}
	return 0, errors.New("illegal numeric literal")
}
