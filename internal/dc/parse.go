package dc

import (
	"fmt"
	"math"

	"github.com/rs/zerolog/log"

	"github.com/dcnet-server/dcnet/internal/protocol"
)

// ParseFile tokenizes and parses DC source text into a compiled File. Any
// failure is fatal to the compile step: the caller receives a *LexError or
// *ParseError pointing at the offending location and must abort startup
// rather than work with a partially built schema.
func ParseFile(src string, opts FileOptions) (*File, error) {
	p := &parser{lx: NewLexer(src), file: NewFile(opts)}
	if err := p.advance(); err != nil {
		return nil, compileAbort(err)
	}
	for p.tok.Kind != TokEOF {
		if err := p.parseDecl(); err != nil {
			return nil, compileAbort(err)
		}
	}
	log.Debug().
		Int("classes", p.file.NumClasses()).
		Int("structs", p.file.NumStructs()).
		Int("fields", p.file.NumFields()).
		Msg("dc: schema compiled")
	return p.file, nil
}

// compileAbort logs a fatal compile failure before surfacing it. The error
// already carries the span and line, so the event is useful even when the
// caller only prints the message.
func compileAbort(err error) error {
	log.Error().Err(err).Msg("dc: schema compile aborted")
	return err
}

type parser struct {
	lx   *Lexer
	file *File
	tok  Token
	span Span
}

func (p *parser) advance() error {
	tok, span, err := p.lx.Next()
	if err != nil {
		return err
	}
	p.tok = tok
	p.span = span
	return nil
}

func (p *parser) fail(format string, args ...any) error {
	return &ParseError{Span: p.span, Msg: fmt.Sprintf(format, args...)}
}

// expect consumes a token of the given kind and returns it.
func (p *parser) expect(kind TokenKind) (Token, error) {
	if p.tok.Kind != kind {
		return Token{}, p.fail("expected %s, found %s %q", kind, p.tok.Kind, p.tok.Text)
	}
	tok := p.tok
	if err := p.advance(); err != nil {
		return Token{}, err
	}
	return tok, nil
}

func (p *parser) parseDecl() error {
	switch {
	case p.tok.Kind == TokKeyword && p.tok.Text == "keyword":
		return p.parseKeywordDecl()
	case p.tok.Kind == TokKeyword && p.tok.Text == "struct":
		return p.parseStructDecl()
	case p.tok.Kind == TokKeyword && p.tok.Text == "dclass":
		return p.parseClassDecl()
	case p.tok.Kind == TokIdentifier && p.tok.Text == "from":
		return p.parseImportDecl()
	}
	return p.fail("expected declaration, found %s %q", p.tok.Kind, p.tok.Text)
}

// keyword name ;
func (p *parser) parseKeywordDecl() error {
	if err := p.advance(); err != nil {
		return err
	}
	name, err := p.expect(TokIdentifier)
	if err != nil {
		return err
	}
	if _, err := p.expect(TokSemicolon); err != nil {
		return err
	}
	p.file.DeclareKeyword(name.Text)
	return nil
}

// from module import Symbol [, Symbol]*
func (p *parser) parseImportDecl() error {
	if err := p.advance(); err != nil {
		return err
	}
	module, err := p.expect(TokIdentifier)
	if err != nil {
		return err
	}
	kw, err := p.expect(TokIdentifier)
	if err != nil {
		return err
	}
	if kw.Text != "import" {
		return p.fail("expected \"import\", found %q", kw.Text)
	}
	imp := Import{Module: module.Text}
	for {
		symbol, err := p.expect(TokIdentifier)
		if err != nil {
			return err
		}
		imp.Symbols = append(imp.Symbols, symbol.Text)
		if p.tok.Kind != TokComma {
			break
		}
		if err := p.advance(); err != nil {
			return err
		}
	}
	p.file.AddImport(imp)
	return nil
}

// struct name { field ; ... } ;
func (p *parser) parseStructDecl() error {
	if err := p.advance(); err != nil {
		return err
	}
	name, err := p.expect(TokIdentifier)
	if err != nil {
		return err
	}
	s := NewStruct(name.Text)
	p.file.AddStruct(s)

	if _, err := p.expect(TokLBrace); err != nil {
		return err
	}
	for p.tok.Kind != TokRBrace {
		field, err := p.parseParameterField(false)
		if err != nil {
			return err
		}
		if err := p.file.AddField(s, field); err != nil {
			return err
		}
		if _, err := p.expect(TokSemicolon); err != nil {
			return err
		}
	}
	if err := p.advance(); err != nil {
		return err
	}
	_, err = p.expect(TokSemicolon)
	return err
}

// dclass name [: parent [, parent]*] { field ; ... } ;
func (p *parser) parseClassDecl() error {
	if err := p.advance(); err != nil {
		return err
	}
	name, err := p.expect(TokIdentifier)
	if err != nil {
		return err
	}
	c := NewClass(name.Text)

	if p.tok.Kind == TokColon {
		if err := p.advance(); err != nil {
			return err
		}
		for {
			parentName, err := p.expect(TokIdentifier)
			if err != nil {
				return err
			}
			parent, ok := p.file.ClassByName(parentName.Text)
			if !ok {
				return p.fail("unknown parent class %q", parentName.Text)
			}
			c.AddParent(parent)
			if p.tok.Kind != TokComma {
				break
			}
			if err := p.advance(); err != nil {
				return err
			}
		}
	}

	if err := p.file.AddClass(c); err != nil {
		return err
	}

	if _, err := p.expect(TokLBrace); err != nil {
		return err
	}
	for p.tok.Kind != TokRBrace {
		field, err := p.parseClassField()
		if err != nil {
			return err
		}
		if err := p.file.AddField(c, field); err != nil {
			return err
		}
		if _, err := p.expect(TokSemicolon); err != nil {
			return err
		}
	}
	if err := p.advance(); err != nil {
		return err
	}
	_, err = p.expect(TokSemicolon)
	return err
}

// parseClassField dispatches between atomic (method) fields and plain
// parameter fields. An identifier followed by "(" opens a method signature;
// an identifier followed by anything else names a struct type.
func (p *parser) parseClassField() (*Field, error) {
	if p.tok.Kind == TokIdentifier {
		name := p.tok
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.tok.Kind == TokLParen {
			return p.parseAtomicField(name.Text)
		}
		// struct-typed parameter field; the identifier was the type name
		structType, ok := p.file.StructByName(name.Text)
		if !ok {
			return nil, p.fail("unknown struct type %q", name.Text)
		}
		fieldName, err := p.expect(TokIdentifier)
		if err != nil {
			return nil, err
		}
		field := NewField(fieldName.Text, NewStructType(structType))
		if err := p.parseFieldKeywords(field); err != nil {
			return nil, err
		}
		return field, nil
	}
	return p.parseParameterField(true)
}

// name ( param [, param]* ) keyword*
func (p *parser) parseAtomicField(name string) (*Field, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	method := NewMethodType()
	for p.tok.Kind != TokRParen {
		param, err := p.parseTypeSpec()
		if err != nil {
			return nil, err
		}
		// parameter names are optional and carry no semantics
		if p.tok.Kind == TokIdentifier {
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
		method.AddParameter(param)
		if p.tok.Kind != TokComma {
			break
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(TokRParen); err != nil {
		return nil, err
	}
	field := NewField(name, method)
	if err := p.parseFieldKeywords(field); err != nil {
		return nil, err
	}
	return field, nil
}

// type name keyword*
func (p *parser) parseParameterField(allowKeywords bool) (*Field, error) {
	typ, err := p.parseTypeSpec()
	if err != nil {
		return nil, err
	}
	name, err := p.expect(TokIdentifier)
	if err != nil {
		return nil, err
	}
	field := NewField(name.Text, typ)
	if allowKeywords {
		if err := p.parseFieldKeywords(field); err != nil {
			return nil, err
		}
	}
	return field, nil
}

func (p *parser) parseFieldKeywords(field *Field) error {
	for p.tok.Kind == TokIdentifier {
		if kw, ok := ParseKeyword(p.tok.Text); ok {
			field.AddKeyword(kw)
		} else if !p.isDeclaredKeyword(p.tok.Text) {
			return p.fail("unknown field keyword %q", p.tok.Text)
		}
		if err := p.advance(); err != nil {
			return err
		}
	}
	return nil
}

func (p *parser) isDeclaredKeyword(name string) bool {
	for _, kw := range p.file.DeclaredKeywords() {
		if kw == name {
			return true
		}
	}
	return false
}

// parseTypeSpec parses a type with its optional constraints:
//
//	uint16(0-100)/10%360   numeric with range, divisor, modulus
//	string(32)             fixed-size sized type
//	Position               struct reference
func (p *parser) parseTypeSpec() (Type, error) {
	switch p.tok.Kind {
	case TokIntType, TokFloatType, TokCharType:
		kind, ok := numericKindFor(p.tok)
		if !ok {
			return nil, p.fail("unknown numeric type %q", p.tok.Text)
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return p.parseNumericConstraints(NewNumericType(NewTypeDefinition(kind)))

	case TokStringType, TokBlobType:
		fixed, variable := TString, TVarString
		if p.tok.Kind == TokBlobType {
			fixed, variable = TBlob, TVarBlob
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.tok.Kind != TokLParen {
			return NewTypeDefinition(variable), nil
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		size, err := p.expect(TokDecimal)
		if err != nil {
			return nil, err
		}
		if size.Int <= 0 || size.Int > math.MaxUint16 {
			return nil, p.fail("sized type length %d outside 16-bit size tag", size.Int)
		}
		if _, err := p.expect(TokRParen); err != nil {
			return nil, err
		}
		def := NewTypeDefinition(fixed)
		def.SetSize(protocol.DgSize(size.Int))
		return def, nil

	case TokIdentifier:
		s, ok := p.file.StructByName(p.tok.Text)
		if !ok {
			return nil, p.fail("unknown struct type %q", p.tok.Text)
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return NewStructType(s), nil
	}
	return nil, p.fail("expected type, found %s %q", p.tok.Kind, p.tok.Text)
}

func (p *parser) parseNumericConstraints(nt *NumericType) (Type, error) {
	if p.tok.Kind == TokLParen {
		if err := p.advance(); err != nil {
			return nil, err
		}
		min, err := p.parseNumberLit(nt)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokMinus); err != nil {
			return nil, err
		}
		max, err := p.parseNumberLit(nt)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokRParen); err != nil {
			return nil, err
		}
		rng := NumericRange{Kind: min.Kind, Min: min, Max: max}
		if err := nt.SetRange(rng); err != nil {
			return nil, err
		}
	}
	if p.tok.Kind == TokDivide {
		if err := p.advance(); err != nil {
			return nil, err
		}
		divisor, err := p.expect(TokDecimal)
		if err != nil {
			return nil, err
		}
		if divisor.Int <= 0 || divisor.Int > math.MaxUint16 {
			return nil, p.fail("divisor %d outside 16-bit space", divisor.Int)
		}
		if err := nt.SetDivisor(uint16(divisor.Int)); err != nil {
			return nil, p.fail("invalid divisor %d: %v", divisor.Int, err)
		}
	}
	if p.tok.Kind == TokModulus {
		if err := p.advance(); err != nil {
			return nil, err
		}
		modulus, err := p.parseNumberLit(nt)
		if err != nil {
			return nil, err
		}
		if err := nt.SetModulus(numberAsFloat(modulus)); err != nil {
			return nil, p.fail("invalid modulus: %v", err)
		}
	}
	return nt, nil
}

// parseNumberLit parses an optionally negated numeric literal into the value
// kind of the numeric type being declared.
func (p *parser) parseNumberLit(nt *NumericType) (Number, error) {
	neg := false
	if p.tok.Kind == TokMinus {
		neg = true
		if err := p.advance(); err != nil {
			return Number{}, err
		}
	}
	switch p.tok.Kind {
	case TokDecimal:
		v := p.tok.Int
		if neg {
			v = -v
		}
		if err := p.advance(); err != nil {
			return Number{}, err
		}
		switch nt.numberKind() {
		case NumberInt:
			return NewInt(v), nil
		case NumberUint:
			if v < 0 {
				return Number{}, p.fail("negative bound for unsigned type")
			}
			return NewUint(uint64(v)), nil
		case NumberFloat:
			return NewFloat(float64(v)), nil
		}
	case TokFloat:
		f := p.tok.Float
		if neg {
			f = -f
		}
		if err := p.advance(); err != nil {
			return Number{}, err
		}
		if nt.numberKind() != NumberFloat {
			return Number{}, p.fail("float bound on integer type")
		}
		return NewFloat(f), nil
	}
	return Number{}, p.fail("expected numeric literal, found %s %q", p.tok.Kind, p.tok.Text)
}

func numericKindFor(tok Token) (TypeKind, bool) {
	switch tok.Kind {
	case TokCharType:
		return TChar, true
	case TokFloatType:
		return TFloat64, true
	}
	switch tok.Text {
	case "int8":
		return TInt8, true
	case "int16":
		return TInt16, true
	case "int32":
		return TInt32, true
	case "int64":
		return TInt64, true
	case "uint8":
		return TUInt8, true
	case "uint16":
		return TUInt16, true
	case "uint32":
		return TUInt32, true
	case "uint64":
		return TUInt64, true
	}
	return TInvalid, false
}
