package dc

import (
	"errors"
	"fmt"
)

var (
	// ErrIDSpaceExhausted reports that the 16-bit class-id or field-id space
	// ran out. This is fatal to the compile phase.
	ErrIDSpaceExhausted = errors.New("dc: 16-bit id space exhausted")

	// ErrInvalidDivisor reports a zero divisor. The existing divisor is kept.
	ErrInvalidDivisor = errors.New("dc: divisor must be nonzero")

	// ErrInvalidModulus reports a modulus that is not a positive number.
	ErrInvalidModulus = errors.New("dc: modulus must be positive")

	// ErrTypeDecodeMismatch reports value bytes whose length does not match
	// the declared type size, or a type tag with no decode mapping.
	ErrTypeDecodeMismatch = errors.New("dc: value does not decode as declared type")

	// ErrValueOutOfRange reports a decoded value outside the scaled range or
	// not congruent to zero modulo the scaled modulus.
	ErrValueOutOfRange = errors.New("dc: value outside declared constraints")
)

// LexError is a fatal schema-compile failure produced when a literal token
// cannot be parsed into its target representation or the source text cannot
// be tokenized. It carries the offending span so startup diagnostics can
// point at the exact location.
type LexError struct {
	Span Span
	Msg  string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("dc: lex error at line %d (offset %d-%d): %s",
		e.Span.Line, e.Span.Start, e.Span.End, e.Msg)
}

// ParseError is a fatal schema-compile failure produced while building the
// schema model from the token stream.
type ParseError struct {
	Span Span
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("dc: parse error at line %d (offset %d-%d): %s",
		e.Span.Line, e.Span.Start, e.Span.End, e.Msg)
}
