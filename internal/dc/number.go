package dc

import "math"

// NumberKind tags which member of a Number carries the value.
type NumberKind int

const (
	NumberNone NumberKind = iota
	NumberInt
	NumberUint
	NumberFloat
)

// Number is an explicit sum type for signed, unsigned and floating-point
// values. Every operation matches on Kind before touching a payload member;
// there is no shared storage to misinterpret.
type Number struct {
	Kind  NumberKind
	Int   int64
	Uint  uint64
	Float float64
}

// NewInt returns a signed integer number.
func NewInt(v int64) Number {
	return Number{Kind: NumberInt, Int: v}
}

// NewUint returns an unsigned integer number.
func NewUint(v uint64) Number {
	return Number{Kind: NumberUint, Uint: v}
}

// NewFloat returns a floating-point number.
func NewFloat(v float64) Number {
	return Number{Kind: NumberFloat, Float: v}
}

// NumericRange is a closed interval tagged by value kind. A range whose kind
// is NumberNone is unset and treated as unbounded.
type NumericRange struct {
	Kind NumberKind
	Min  Number
	Max  Number
}

// NewIntRange returns a closed signed integer interval.
func NewIntRange(min, max int64) NumericRange {
	return NumericRange{Kind: NumberInt, Min: NewInt(min), Max: NewInt(max)}
}

// NewUintRange returns a closed unsigned integer interval.
func NewUintRange(min, max uint64) NumericRange {
	return NumericRange{Kind: NumberUint, Min: NewUint(min), Max: NewUint(max)}
}

// NewFloatRange returns a closed floating-point interval.
func NewFloatRange(min, max float64) NumericRange {
	return NumericRange{Kind: NumberFloat, Min: NewFloat(min), Max: NewFloat(max)}
}

// IsEmpty reports whether the range is unset.
func (r NumericRange) IsEmpty() bool {
	return r.Kind == NumberNone
}

// Contains reports whether num lies within the closed interval. An unset
// range contains every value; a value whose kind does not match the range's
// kind is rejected.
func (r NumericRange) Contains(num Number) bool {
	switch r.Kind {
	case NumberNone:
		return true
	case NumberInt:
		if num.Kind != NumberInt {
			return false
		}
		return r.Min.Int <= num.Int && num.Int <= r.Max.Int
	case NumberUint:
		if num.Kind != NumberUint {
			return false
		}
		return r.Min.Uint <= num.Uint && num.Uint <= r.Max.Uint
	case NumberFloat:
		if num.Kind != NumberFloat {
			return false
		}
		return r.Min.Float <= num.Float && num.Float <= r.Max.Float
	}
	return false
}

// congruentToZero reports whether num is congruent to zero modulo the scaled
// modulus, matching on kind first.
func congruentToZero(num, modulus Number) bool {
	switch modulus.Kind {
	case NumberInt:
		if num.Kind != NumberInt || modulus.Int == 0 {
			return false
		}
		return num.Int%modulus.Int == 0
	case NumberUint:
		if num.Kind != NumberUint || modulus.Uint == 0 {
			return false
		}
		return num.Uint%modulus.Uint == 0
	case NumberFloat:
		if num.Kind != NumberFloat || modulus.Float == 0 {
			return false
		}
		return math.Mod(num.Float, modulus.Float) == 0
	}
	return false
}
