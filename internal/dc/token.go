package dc

import "fmt"

// TokenKind classifies one lexical token of the DC schema grammar.
type TokenKind int

const (
	TokEOF TokenKind = iota

	// Literals
	TokDecimal // base-10 integer, parsed value in Token.Int
	TokOctal   // "0" followed by octal digits, raw text preserved
	TokHex     // "0x"/"0X" followed by hex digits, raw text preserved
	TokBinary  // "0b"/"0B" followed by binary digits, raw text preserved
	TokFloat   // decimal float, parsed value in Token.Float
	TokChar    // character literal, quotes stripped
	TokString  // string literal, quotes stripped
	TokEscape  // standalone escape sequence, backslash preserved

	// Built-in type keywords
	TokCharType   // "char"
	TokIntType    // "int8".."int64", "uint8".."uint64"
	TokFloatType  // "float64"
	TokStringType // "string"
	TokBlobType   // "blob"

	TokIdentifier
	TokKeyword // "dclass" | "struct" | "keyword"

	// Operators
	TokModulus  // %
	TokMultiply // *
	TokPlus     // +
	TokMinus    // -
	TokDivide   // /

	// Delimiters
	TokLParen    // (
	TokRParen    // )
	TokLBrace    // {
	TokRBrace    // }
	TokLBracket  // [
	TokRBracket  // ]
	TokComma     // ,
	TokSemicolon // ;
	TokEquals    // =
	TokColon     // :
)

var tokenNames = map[TokenKind]string{
	TokEOF:        "EOF",
	TokDecimal:    "DecimalLiteral",
	TokOctal:      "OctalLiteral",
	TokHex:        "HexLiteral",
	TokBinary:     "BinaryLiteral",
	TokFloat:      "FloatLiteral",
	TokChar:       "CharacterLiteral",
	TokString:     "StringLiteral",
	TokEscape:     "EscapeCharacter",
	TokCharType:   "CharType",
	TokIntType:    "IntType",
	TokFloatType:  "FloatType",
	TokStringType: "StringType",
	TokBlobType:   "BlobType",
	TokIdentifier: "Identifier",
	TokKeyword:    "Keyword",
	TokModulus:    "%",
	TokMultiply:   "*",
	TokPlus:       "+",
	TokMinus:      "-",
	TokDivide:     "/",
	TokLParen:     "(",
	TokRParen:     ")",
	TokLBrace:     "{",
	TokRBrace:     "}",
	TokLBracket:   "[",
	TokRBracket:   "]",
	TokComma:      ",",
	TokSemicolon:  ";",
	TokEquals:     "=",
	TokColon:      ":",
}

func (k TokenKind) String() string {
	if name, ok := tokenNames[k]; ok {
		return name
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// Token is one lexical token. Text holds the lexeme (quotes stripped for
// character and string literals); Int and Float hold parsed values for
// decimal and float literals respectively.
type Token struct {
	Kind  TokenKind
	Text  string
	Int   int64
	Float float64
}

// Span locates a token within the source text.
type Span struct {
	Start int // byte offset of the first byte
	End   int // byte offset one past the last byte
	Line  int // 1-based line number at token start
}
