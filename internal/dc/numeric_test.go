package dc

import (
	"errors"
	"testing"

	"github.com/dcnet-server/dcnet/internal/wire"
)

// encodeUint16 returns the two-byte wire form of v.
func encodeUint16(t *testing.T, v uint16) []byte {
	t.Helper()
	dg := wire.NewDatagram()
	if err := dg.AddUint16(v); err != nil {
		t.Fatalf("encode u16: %v", err)
	}
	return dg.Bytes()
}

func TestSetDivisorZeroRejectedWithoutMutation(t *testing.T) {
	nt := NewNumericType(NewTypeDefinition(TUInt16))
	if err := nt.SetDivisor(3); err != nil {
		t.Fatalf("set divisor 3: %v", err)
	}
	if err := nt.SetDivisor(0); !errors.Is(err, ErrInvalidDivisor) {
		t.Fatalf("expected ErrInvalidDivisor, got %v", err)
	}
	if nt.Divisor() != 3 {
		t.Fatalf("failed set mutated divisor: got=%d want=3", nt.Divisor())
	}
}

func TestSetModulusRejectsNonPositive(t *testing.T) {
	nt := NewNumericType(NewTypeDefinition(TUInt8))
	for _, m := range []float64{0, -1} {
		if err := nt.SetModulus(m); !errors.Is(err, ErrInvalidModulus) {
			t.Fatalf("modulus %v: expected ErrInvalidModulus, got %v", m, err)
		}
	}
	if nt.HasModulus() {
		t.Fatalf("failed set left a modulus constraint")
	}
}

func TestWithinRangeInclusiveBounds(t *testing.T) {
	nt := NewNumericType(NewTypeDefinition(TUInt16))
	if err := nt.SetRange(NewUintRange(10, 100)); err != nil {
		t.Fatalf("set range: %v", err)
	}

	for _, v := range []uint16{10, 55, 100} {
		if err := nt.WithinRange(encodeUint16(t, v)); err != nil {
			t.Fatalf("value %d rejected: %v", v, err)
		}
	}
	for _, v := range []uint16{9, 101} {
		err := nt.WithinRange(encodeUint16(t, v))
		if !errors.Is(err, ErrValueOutOfRange) {
			t.Fatalf("value %d: expected ErrValueOutOfRange, got %v", v, err)
		}
	}
}

func TestWithinRangeLengthMismatch(t *testing.T) {
	nt := NewNumericType(NewTypeDefinition(TUInt16))
	for _, data := range [][]byte{nil, {1}, {1, 2, 3}} {
		err := nt.WithinRange(data)
		if !errors.Is(err, ErrTypeDecodeMismatch) {
			t.Fatalf("len=%d: expected ErrTypeDecodeMismatch, got %v", len(data), err)
		}
	}
}

func TestDivisorScalesRangeBounds(t *testing.T) {
	nt := NewNumericType(NewTypeDefinition(TUInt16))
	if err := nt.SetRange(NewUintRange(0, 10)); err != nil {
		t.Fatalf("set range: %v", err)
	}
	if err := nt.SetDivisor(10); err != nil {
		t.Fatalf("set divisor: %v", err)
	}

	// wire values are scaled by the divisor, so 0..10 declared means 0..100
	if err := nt.WithinRange(encodeUint16(t, 100)); err != nil {
		t.Fatalf("scaled max rejected: %v", err)
	}
	if err := nt.WithinRange(encodeUint16(t, 101)); !errors.Is(err, ErrValueOutOfRange) {
		t.Fatalf("above scaled max: expected ErrValueOutOfRange, got %v", err)
	}
	// the declared, unscaled range still reads back unchanged
	if rng := nt.Range(); rng.Max.Uint != 10 {
		t.Fatalf("declared max mutated: got=%d want=10", rng.Max.Uint)
	}
}

func TestModulusCongruence(t *testing.T) {
	nt := NewNumericType(NewTypeDefinition(TUInt8))
	if err := nt.SetModulus(5); err != nil {
		t.Fatalf("set modulus: %v", err)
	}

	if err := nt.WithinRange([]byte{10}); err != nil {
		t.Fatalf("multiple of modulus rejected: %v", err)
	}
	if err := nt.WithinRange([]byte{12}); !errors.Is(err, ErrValueOutOfRange) {
		t.Fatalf("non-multiple: expected ErrValueOutOfRange, got %v", err)
	}
}

func TestWithinRangeSignedAndFloat(t *testing.T) {
	signed := NewNumericType(NewTypeDefinition(TInt8))
	if err := signed.SetRange(NewIntRange(-5, 5)); err != nil {
		t.Fatalf("set range: %v", err)
	}
	if err := signed.WithinRange([]byte{0xFB}); err != nil { // -5
		t.Fatalf("signed min rejected: %v", err)
	}
	if err := signed.WithinRange([]byte{0xFA}); !errors.Is(err, ErrValueOutOfRange) { // -6
		t.Fatalf("below signed min: expected ErrValueOutOfRange, got %v", err)
	}

	fl := NewNumericType(NewTypeDefinition(TFloat64))
	if err := fl.SetRange(NewFloatRange(0, 1)); err != nil {
		t.Fatalf("set range: %v", err)
	}
	dg := wire.NewDatagram()
	if err := dg.AddFloat64(0.5); err != nil {
		t.Fatalf("encode f64: %v", err)
	}
	if err := fl.WithinRange(dg.Bytes()); err != nil {
		t.Fatalf("in-range float rejected: %v", err)
	}
	dg = wire.NewDatagram()
	if err := dg.AddFloat64(1.5); err != nil {
		t.Fatalf("encode f64: %v", err)
	}
	if err := fl.WithinRange(dg.Bytes()); !errors.Is(err, ErrValueOutOfRange) {
		t.Fatalf("out-of-range float: expected ErrValueOutOfRange, got %v", err)
	}
}

func TestNumericRangeKindMismatch(t *testing.T) {
	rng := NewIntRange(0, 10)
	if rng.Contains(NewUint(5)) {
		t.Fatalf("unsigned value accepted by signed range")
	}
	if !(NumericRange{}).Contains(NewUint(5)) {
		t.Fatalf("unset range rejected a value")
	}
}
