package dc

import (
	"errors"
	"testing"
)

// lexAll drains the lexer into tokens, failing the test on any lex error.
func lexAll(t *testing.T, src string) []Token {
	t.Helper()
	lx := NewLexer(src)
	var out []Token
	for {
		tok, _, err := lx.Next()
		if err != nil {
			t.Fatalf("lex %q: %v", src, err)
		}
		if tok.Kind == TokEOF {
			return out
		}
		out = append(out, tok)
	}
}

func TestLexKeywordDeclaration(t *testing.T) {
	toks := lexAll(t, "keyword test;")
	want := []Token{
		{Kind: TokKeyword, Text: "keyword"},
		{Kind: TokIdentifier, Text: "test"},
		{Kind: TokSemicolon, Text: ";"},
	}
	if len(toks) != len(want) {
		t.Fatalf("token count: got=%d want=%d (%v)", len(toks), len(want), toks)
	}
	for i := range want {
		if toks[i].Kind != want[i].Kind || toks[i].Text != want[i].Text {
			t.Fatalf("token %d: got=%v %q want=%v %q",
				i, toks[i].Kind, toks[i].Text, want[i].Kind, want[i].Text)
		}
	}
}

func TestLexSkipsCommentsAndWhitespace(t *testing.T) {
	src := "// line comment\n  /* block\n comment */ dclass"
	toks := lexAll(t, src)
	if len(toks) != 1 || toks[0].Kind != TokKeyword || toks[0].Text != "dclass" {
		t.Fatalf("unexpected tokens: %v", toks)
	}
}

func TestLexTracksLineNumbers(t *testing.T) {
	lx := NewLexer("first\n\nthird")
	tok, span, err := lx.Next()
	if err != nil || tok.Text != "first" || span.Line != 1 {
		t.Fatalf("first token: tok=%v span=%v err=%v", tok, span, err)
	}
	tok, span, err = lx.Next()
	if err != nil || tok.Text != "third" || span.Line != 3 {
		t.Fatalf("second token: tok=%v span=%v err=%v", tok, span, err)
	}
}

func TestLexNumericLiterals(t *testing.T) {
	cases := []struct {
		src  string
		kind TokenKind
	}{
		{"123", TokDecimal},
		{"0", TokDecimal},
		{"0755", TokOctal},
		{"0xFF", TokHex},
		{"0b1010", TokBinary},
		{"3.25", TokFloat},
		{".5", TokFloat},
	}
	for _, tc := range cases {
		toks := lexAll(t, tc.src)
		if len(toks) != 1 || toks[0].Kind != tc.kind {
			t.Fatalf("lex %q: got=%v want kind=%v", tc.src, toks, tc.kind)
		}
	}

	toks := lexAll(t, "123")
	if toks[0].Int != 123 {
		t.Fatalf("decimal value: got=%d want=123", toks[0].Int)
	}
	toks = lexAll(t, "3.25")
	if toks[0].Float != 3.25 {
		t.Fatalf("float value: got=%v want=3.25", toks[0].Float)
	}
}

func TestLexCharAndStringLiteralsStripQuotes(t *testing.T) {
	toks := lexAll(t, `'a' "hello world"`)
	if len(toks) != 2 {
		t.Fatalf("token count: got=%d want=2 (%v)", len(toks), toks)
	}
	if toks[0].Kind != TokChar || toks[0].Text != "a" {
		t.Fatalf("char literal: got=%v %q", toks[0].Kind, toks[0].Text)
	}
	if toks[1].Kind != TokString || toks[1].Text != "hello world" {
		t.Fatalf("string literal: got=%v %q", toks[1].Kind, toks[1].Text)
	}
}

func TestLexTypeKeywords(t *testing.T) {
	cases := []struct {
		src  string
		kind TokenKind
	}{
		{"int8", TokIntType},
		{"uint64", TokIntType},
		{"char", TokCharType},
		{"float64", TokFloatType},
		{"string", TokStringType},
		{"blob", TokBlobType},
		{"uint", TokIdentifier},
		{"int128", TokIdentifier},
	}
	for _, tc := range cases {
		toks := lexAll(t, tc.src)
		if len(toks) != 1 || toks[0].Kind != tc.kind {
			t.Fatalf("lex %q: got=%v want kind=%v", tc.src, toks, tc.kind)
		}
	}
}

func TestLexOversizedDecimalFails(t *testing.T) {
	lx := NewLexer("99999999999999999999")
	_, _, err := lx.Next()
	var lexErr *LexError
	if !errors.As(err, &lexErr) {
		t.Fatalf("expected *LexError, got %v", err)
	}
	if lexErr.Span.Line != 1 {
		t.Fatalf("error line: got=%d want=1", lexErr.Span.Line)
	}
}

func TestLexUnterminatedBlockCommentFails(t *testing.T) {
	lx := NewLexer("/* never closed")
	_, _, err := lx.Next()
	var lexErr *LexError
	if !errors.As(err, &lexErr) {
		t.Fatalf("expected *LexError, got %v", err)
	}
}

func TestLexReset(t *testing.T) {
	lx := NewLexer("dclass\nAvatar")
	for {
		tok, _, err := lx.Next()
		if err != nil {
			t.Fatalf("first pass: %v", err)
		}
		if tok.Kind == TokEOF {
			break
		}
	}
	lx.Reset()
	tok, span, err := lx.Next()
	if err != nil || tok.Text != "dclass" || span.Line != 1 {
		t.Fatalf("after reset: tok=%v span=%v err=%v", tok, span, err)
	}
}
