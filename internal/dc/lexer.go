package dc

import (
	"strconv"
	"strings"
)

// Lexer produces a lazy sequence of (Token, Span) pairs over DC source text.
// Whitespace and both comment styles are consumed but never yielded; newlines
// are counted to maintain line numbers. Reset rewinds to the beginning so the
// same lexer can be walked again.
type Lexer struct {
	src  string
	pos  int
	line int
}

// NewLexer returns a lexer over src, positioned at the first token.
func NewLexer(src string) *Lexer {
	return &Lexer{src: src, line: 1}
}

// Reset rewinds the lexer to the start of the source text.
func (lx *Lexer) Reset() {
	lx.pos = 0
	lx.line = 1
}

// Next returns the next token and its span. At the end of input it returns a
// TokEOF token. A literal that cannot be parsed into its target
// representation, or text that cannot be tokenized at all, returns a
// *LexError; the compile step must abort and report the location.
func (lx *Lexer) Next() (Token, Span, error) {
	for lx.pos < len(lx.src) {
		c := lx.src[lx.pos]
		switch {
		case c == ' ' || c == '\t' || c == '\r':
			lx.pos++
		case c == '\n':
			lx.line++
			lx.pos++
		case c == '/' && lx.peek(1) == '/':
			for lx.pos < len(lx.src) && lx.src[lx.pos] != '\n' {
				lx.pos++
			}
		case c == '/' && lx.peek(1) == '*':
			if err := lx.skipBlockComment(); err != nil {
				return Token{}, Span{}, err
			}
		default:
			return lx.scanToken()
		}
	}
	span := Span{Start: lx.pos, End: lx.pos, Line: lx.line}
	return Token{Kind: TokEOF}, span, nil
}

// peek returns the byte at pos+n, or 0 past the end of input.
func (lx *Lexer) peek(n int) byte {
	if lx.pos+n >= len(lx.src) {
		return 0
	}
	return lx.src[lx.pos+n]
}

// skipBlockComment consumes a non-nested C-style comment, counting newlines.
func (lx *Lexer) skipBlockComment() error {
	start := lx.pos
	startLine := lx.line
	lx.pos += 2
	for lx.pos < len(lx.src) {
		if lx.src[lx.pos] == '*' && lx.peek(1) == '/' {
			lx.pos += 2
			return nil
		}
		if lx.src[lx.pos] == '\n' {
			lx.line++
		}
		lx.pos++
	}
	return &LexError{
		Span: Span{Start: start, End: lx.pos, Line: startLine},
		Msg:  "unterminated block comment",
	}
}

func (lx *Lexer) scanToken() (Token, Span, error) {
	start := lx.pos
	line := lx.line
	c := lx.src[lx.pos]

	span := func() Span { return Span{Start: start, End: lx.pos, Line: line} }
	fail := func(msg string) (Token, Span, error) {
		err := &LexError{Span: Span{Start: start, End: lx.pos, Line: line}, Msg: msg}
		return Token{}, Span{}, err
	}

	switch {
	case c >= '0' && c <= '9':
		return lx.scanNumber()

	case c == '.' && lx.peek(1) >= '0' && lx.peek(1) <= '9':
		return lx.scanNumber()

	case c == '\'':
		lx.pos++
		if lx.pos >= len(lx.src) || lx.src[lx.pos] == '\n' {
			return fail("unterminated character literal")
		}
		ch := lx.src[lx.pos]
		lx.pos++
		if lx.pos >= len(lx.src) || lx.src[lx.pos] != '\'' {
			return fail("unterminated character literal")
		}
		lx.pos++
		return Token{Kind: TokChar, Text: string(ch)}, span(), nil

	case c == '"':
		lx.pos++
		for lx.pos < len(lx.src) && lx.src[lx.pos] != '"' {
			if lx.src[lx.pos] == '\n' {
				return fail("newline in string literal")
			}
			lx.pos++
		}
		if lx.pos >= len(lx.src) {
			return fail("unterminated string literal")
		}
		text := lx.src[start+1 : lx.pos]
		lx.pos++
		return Token{Kind: TokString, Text: text}, span(), nil

	case c == '\\':
		lx.pos++
		if lx.pos >= len(lx.src) {
			return fail("incomplete escape sequence")
		}
		if lx.src[lx.pos] == 'x' {
			lx.pos++
			n := 0
			for lx.pos < len(lx.src) && isHexDigit(lx.src[lx.pos]) {
				lx.pos++
				n++
			}
			if n == 0 {
				return fail("hex escape with no digits")
			}
		} else {
			lx.pos++
		}
		return Token{Kind: TokEscape, Text: lx.src[start:lx.pos]}, span(), nil

	case isIdentStart(c):
		for lx.pos < len(lx.src) && isIdentPart(lx.src[lx.pos]) {
			lx.pos++
		}
		text := lx.src[start:lx.pos]
		return Token{Kind: classifyWord(text), Text: text}, span(), nil

	default:
		if kind, ok := punctuation[c]; ok {
			lx.pos++
			return Token{Kind: kind, Text: string(c)}, span(), nil
		}
		lx.pos++
		return fail("unexpected character " + strconv.QuoteRune(rune(c)))
	}
}

// scanNumber handles decimal, octal, hex and binary integers plus floats.
func (lx *Lexer) scanNumber() (Token, Span, error) {
	start := lx.pos
	line := lx.line

	span := func() Span { return Span{Start: start, End: lx.pos, Line: line} }
	fail := func(msg string) (Token, Span, error) {
		err := &LexError{Span: Span{Start: start, End: lx.pos, Line: line}, Msg: msg}
		return Token{}, Span{}, err
	}

	if lx.src[lx.pos] == '0' {
		switch lx.peek(1) {
		case 'x', 'X':
			lx.pos += 2
			n := 0
			for lx.pos < len(lx.src) && isHexDigit(lx.src[lx.pos]) {
				lx.pos++
				n++
			}
			if n == 0 {
				return fail("hex literal with no digits")
			}
			return Token{Kind: TokHex, Text: lx.src[start:lx.pos]}, span(), nil
		case 'b', 'B':
			lx.pos += 2
			n := 0
			for lx.pos < len(lx.src) && (lx.src[lx.pos] == '0' || lx.src[lx.pos] == '1') {
				lx.pos++
				n++
			}
			if n == 0 {
				return fail("binary literal with no digits")
			}
			return Token{Kind: TokBinary, Text: lx.src[start:lx.pos]}, span(), nil
		}
		if lx.peek(1) >= '0' && lx.peek(1) <= '9' {
			lx.pos++
			for lx.pos < len(lx.src) && lx.src[lx.pos] >= '0' && lx.src[lx.pos] <= '7' {
				lx.pos++
			}
			if lx.pos < len(lx.src) && lx.src[lx.pos] >= '8' && lx.src[lx.pos] <= '9' {
				lx.pos++
				return fail("invalid octal digit")
			}
			return Token{Kind: TokOctal, Text: lx.src[start:lx.pos]}, span(), nil
		}
	}

	for lx.pos < len(lx.src) && lx.src[lx.pos] >= '0' && lx.src[lx.pos] <= '9' {
		lx.pos++
	}

	if lx.pos < len(lx.src) && lx.src[lx.pos] == '.' {
		lx.pos++
		n := 0
		for lx.pos < len(lx.src) && lx.src[lx.pos] >= '0' && lx.src[lx.pos] <= '9' {
			lx.pos++
			n++
		}
		if n == 0 {
			return fail("float literal with no fractional digits")
		}
		text := lx.src[start:lx.pos]
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return fail("float literal does not parse as float64: " + text)
		}
		return Token{Kind: TokFloat, Text: text, Float: f}, span(), nil
	}

	text := lx.src[start:lx.pos]
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return fail("decimal literal does not parse as int64: " + text)
	}
	return Token{Kind: TokDecimal, Text: text, Int: v}, span(), nil
}

var punctuation = map[byte]TokenKind{
	'%': TokModulus,
	'*': TokMultiply,
	'+': TokPlus,
	'-': TokMinus,
	'/': TokDivide,
	'(': TokLParen,
	')': TokRParen,
	'{': TokLBrace,
	'}': TokRBrace,
	'[': TokLBracket,
	']': TokRBracket,
	',': TokComma,
	';': TokSemicolon,
	'=': TokEquals,
	':': TokColon,
}

// classifyWord maps an identifier-shaped lexeme to its token kind.
func classifyWord(text string) TokenKind {
	switch text {
	case "char":
		return TokCharType
	case "float64":
		return TokFloatType
	case "string":
		return TokStringType
	case "blob":
		return TokBlobType
	case "dclass", "struct", "keyword":
		return TokKeyword
	}
	base := strings.TrimPrefix(text, "u")
	switch base {
	case "int8", "int16", "int32", "int64":
		return TokIntType
	}
	return TokIdentifier
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
