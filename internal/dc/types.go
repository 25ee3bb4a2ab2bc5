package dc

import (
	"github.com/dcnet-server/dcnet/internal/dc/hashgen"
	"github.com/dcnet-server/dcnet/internal/protocol"
)

// TypeKind tags the shape of a field type. The numeric codes are part of the
// fingerprint: they feed the hash accumulator and must stay stable across
// cooperating implementations.
type TypeKind uint8

const (
	TInt8    TypeKind = 0
	TInt16   TypeKind = 1
	TInt32   TypeKind = 2
	TInt64   TypeKind = 3
	TUInt8   TypeKind = 4
	TUInt16  TypeKind = 5
	TUInt32  TypeKind = 6
	TUInt64  TypeKind = 7
	TChar    TypeKind = 8
	TFloat32 TypeKind = 9
	TFloat64 TypeKind = 10

	// Sized kinds: fixed byte length, or variable when the declared size is 0.
	TString    TypeKind = 11
	TVarString TypeKind = 12
	TBlob      TypeKind = 13
	TVarBlob   TypeKind = 14
	TArray     TypeKind = 15
	TVarArray  TypeKind = 16

	// Composite kinds.
	TStruct TypeKind = 17
	TMethod TypeKind = 18

	TBlob32    TypeKind = 19
	TVarBlob32 TypeKind = 20
	TInvalid   TypeKind = 21
)

// FixedSize returns the wire size in bytes for kinds with an intrinsic size,
// or 0 for variable-length and composite kinds.
func (k TypeKind) FixedSize() protocol.DgSize {
	switch k {
	case TInt8, TUInt8, TChar:
		return 1
	case TInt16, TUInt16:
		return 2
	case TInt32, TUInt32, TFloat32:
		return 4
	case TInt64, TUInt64, TFloat64:
		return 8
	}
	return 0
}

// IsNumeric reports whether the kind has a numeric decode mapping.
func (k TypeKind) IsNumeric() bool {
	switch k {
	case TInt8, TInt16, TInt32, TInt64,
		TUInt8, TUInt16, TUInt32, TUInt64,
		TChar, TFloat32, TFloat64:
		return true
	}
	return false
}

// TypeDefinition describes the shape of a field: its kind tag, its declared
// byte size (0 means variable length), and an optional alias name.
type TypeDefinition struct {
	kind  TypeKind
	size  protocol.DgSize
	alias string
	// distinguishes an unset alias from an empty one
	hasAlias bool
}

// NewTypeDefinition returns a definition for kind with its intrinsic size.
func NewTypeDefinition(kind TypeKind) *TypeDefinition {
	return &TypeDefinition{kind: kind, size: kind.FixedSize()}
}

// Kind returns the type's tag.
func (t *TypeDefinition) Kind() TypeKind {
	return t.kind
}

// Size returns the declared byte size; 0 denotes variable length.
func (t *TypeDefinition) Size() protocol.DgSize {
	return t.size
}

// SetSize overrides the declared byte size for sized kinds.
func (t *TypeDefinition) SetSize(size protocol.DgSize) {
	t.size = size
}

// IsVariableLength reports whether the declared size is 0.
func (t *TypeDefinition) IsVariableLength() bool {
	return t.size == 0
}

// HasAlias reports whether an alias name was declared.
func (t *TypeDefinition) HasAlias() bool {
	return t.hasAlias
}

// Alias returns the alias name and whether one was declared.
func (t *TypeDefinition) Alias() (string, bool) {
	return t.alias, t.hasAlias
}

// SetAlias declares an alias name for the type.
func (t *TypeDefinition) SetAlias(alias string) {
	t.alias = alias
	t.hasAlias = true
}

// GenerateHash folds the kind's numeric code and, if declared, the alias.
func (t *TypeDefinition) GenerateHash(h *hashgen.Generator) {
	h.AddInt(uint32(t.kind))
	if t.hasAlias {
		h.AddString(t.alias)
	}
}

// Type is implemented by every field type descriptor.
type Type interface {
	Kind() TypeKind
	Size() protocol.DgSize
	IsVariableLength() bool
	GenerateHash(h *hashgen.Generator)
}
