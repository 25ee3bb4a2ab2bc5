package dc

import (
	"github.com/dcnet-server/dcnet/internal/dc/hashgen"
	"github.com/dcnet-server/dcnet/internal/protocol"
	"github.com/dcnet-server/dcnet/internal/wire"
)

// NumericType composes a TypeDefinition with the numeric constraints a field
// may declare: a fixed-point divisor, a modulus and a legal value range.
//
// The modulus and range keep two representations. The original, as-declared
// values are the source of truth; the divisor-scaled counterparts are what
// runtime validation checks against, and they are re-derived from the
// originals whenever the divisor changes.
type NumericType struct {
	base    *TypeDefinition
	divisor uint16

	origModulus float64
	origRange   NumericRange

	modulus Number
	rng     NumericRange
}

// NewNumericType wraps base, which must have a numeric kind, with a divisor
// of 1 and no declared constraints.
func NewNumericType(base *TypeDefinition) *NumericType {
	return &NumericType{base: base, divisor: 1}
}

// Delegating accessors over the composed type definition.

func (t *NumericType) Kind() TypeKind         { return t.base.Kind() }
func (t *NumericType) Size() protocol.DgSize  { return t.base.Size() }
func (t *NumericType) IsVariableLength() bool { return t.base.IsVariableLength() }
func (t *NumericType) HasAlias() bool         { return t.base.HasAlias() }
func (t *NumericType) Alias() (string, bool)  { return t.base.Alias() }
func (t *NumericType) SetAlias(alias string)  { t.base.SetAlias(alias) }

// Divisor returns the fixed-point scale factor.
func (t *NumericType) Divisor() uint16 {
	return t.divisor
}

// HasModulus reports whether a modulus constraint was declared.
func (t *NumericType) HasModulus() bool {
	return t.origModulus != 0
}

// HasRange reports whether a range constraint was declared.
func (t *NumericType) HasRange() bool {
	return !t.origRange.IsEmpty()
}

// Modulus returns the as-declared, unscaled modulus.
func (t *NumericType) Modulus() float64 {
	return t.origModulus
}

// Range returns the as-declared, unscaled range.
func (t *NumericType) Range() NumericRange {
	return t.origRange
}

// SetDivisor changes the fixed-point scale factor and re-derives the scaled
// modulus and range from the declared originals. A zero divisor is rejected
// without mutating any state.
func (t *NumericType) SetDivisor(divisor uint16) error {
	if divisor == 0 {
		return ErrInvalidDivisor
	}
	t.divisor = divisor
	if t.HasRange() {
		if err := t.SetRange(t.origRange); err != nil {
			return err
		}
	}
	if t.HasModulus() {
		if err := t.SetModulus(t.origModulus); err != nil {
			return err
		}
	}
	return nil
}

// SetModulus declares a modulus constraint. The scaled modulus is the
// declared value multiplied by the divisor, represented in the type's value
// kind. A modulus that is not positive is rejected.
func (t *NumericType) SetModulus(modulus float64) error {
	if modulus <= 0 {
		return ErrInvalidModulus
	}
	t.origModulus = modulus
	t.modulus = scaleToKind(modulus, t.divisor, t.numberKind())
	return nil
}

// SetRange declares a range constraint. The scaled bounds are the declared
// bounds multiplied by the divisor, represented in the type's value kind.
func (t *NumericType) SetRange(rng NumericRange) error {
	t.origRange = rng
	kind := t.numberKind()
	t.rng = NumericRange{
		Kind: kind,
		Min:  scaleToKind(numberAsFloat(rng.Min), t.divisor, kind),
		Max:  scaleToKind(numberAsFloat(rng.Max), t.divisor, kind),
	}
	return nil
}

// WithinRange decodes data as this type's wire representation and checks it
// against the scaled range and modulus. A byte slice whose length does not
// exactly match the declared size is a decode failure, never a partial read.
func (t *NumericType) WithinRange(data []byte) error {
	num, err := t.dataToNumber(data)
	if err != nil {
		return err
	}
	if !t.rng.Contains(num) {
		return ErrValueOutOfRange
	}
	if t.HasModulus() && !congruentToZero(num, t.modulus) {
		return ErrValueOutOfRange
	}
	return nil
}

// dataToNumber decodes raw bytes into a typed number using the fixed mapping
// from type tag to decode routine.
func (t *NumericType) dataToNumber(data []byte) (Number, error) {
	if len(data) != int(t.base.Size()) {
		return Number{}, ErrTypeDecodeMismatch
	}

	dg := wire.NewDatagram()
	if err := dg.AddData(data); err != nil {
		return Number{}, ErrTypeDecodeMismatch
	}
	dgi := wire.NewIterator(dg)

	switch t.base.Kind() {
	case TInt8:
		v, err := dgi.ReadInt8()
		return NewInt(int64(v)), decodeErr(err)
	case TInt16:
		v, err := dgi.ReadInt16()
		return NewInt(int64(v)), decodeErr(err)
	case TInt32:
		v, err := dgi.ReadInt32()
		return NewInt(int64(v)), decodeErr(err)
	case TInt64:
		v, err := dgi.ReadInt64()
		return NewInt(v), decodeErr(err)
	case TChar, TUInt8:
		v, err := dgi.ReadUint8()
		return NewUint(uint64(v)), decodeErr(err)
	case TUInt16:
		v, err := dgi.ReadUint16()
		return NewUint(uint64(v)), decodeErr(err)
	case TUInt32:
		v, err := dgi.ReadUint32()
		return NewUint(uint64(v)), decodeErr(err)
	case TUInt64:
		v, err := dgi.ReadUint64()
		return NewUint(v), decodeErr(err)
	case TFloat32:
		v, err := dgi.ReadFloat32()
		return NewFloat(float64(v)), decodeErr(err)
	case TFloat64:
		v, err := dgi.ReadFloat64()
		return NewFloat(v), decodeErr(err)
	}
	return Number{}, ErrTypeDecodeMismatch
}

// GenerateHash folds the composed definition, the divisor and the scaled
// constraints into the fingerprint.
func (t *NumericType) GenerateHash(h *hashgen.Generator) {
	t.base.GenerateHash(h)
	h.AddInt(uint32(t.divisor))
	if t.HasModulus() {
		h.AddInt(numberAsHashInt(t.modulus))
	}
	if t.HasRange() {
		h.AddInt(numberAsHashInt(t.rng.Min))
		h.AddInt(numberAsHashInt(t.rng.Max))
	}
}

// numberKind maps the type tag to the value kind its decode routine yields.
func (t *NumericType) numberKind() NumberKind {
	switch t.base.Kind() {
	case TInt8, TInt16, TInt32, TInt64:
		return NumberInt
	case TChar, TUInt8, TUInt16, TUInt32, TUInt64:
		return NumberUint
	case TFloat32, TFloat64:
		return NumberFloat
	}
	return NumberNone
}

func decodeErr(err error) error {
	if err != nil {
		return ErrTypeDecodeMismatch
	}
	return nil
}

// scaleToKind multiplies a declared value by the divisor and represents the
// result in the target value kind.
func scaleToKind(v float64, divisor uint16, kind NumberKind) Number {
	scaled := v * float64(divisor)
	switch kind {
	case NumberInt:
		return NewInt(int64(scaled))
	case NumberUint:
		return NewUint(uint64(scaled))
	case NumberFloat:
		return NewFloat(scaled)
	}
	return Number{}
}

func numberAsFloat(n Number) float64 {
	switch n.Kind {
	case NumberInt:
		return float64(n.Int)
	case NumberUint:
		return float64(n.Uint)
	case NumberFloat:
		return n.Float
	}
	return 0
}

// numberAsHashInt casts a scaled constraint value to the 32-bit integer the
// hash accumulator folds.
func numberAsHashInt(n Number) uint32 {
	switch n.Kind {
	case NumberInt:
		return uint32(n.Int)
	case NumberUint:
		return uint32(n.Uint)
	case NumberFloat:
		return uint32(int64(n.Float))
	}
	return 0
}
