package dc

import (
	"github.com/dcnet-server/dcnet/internal/dc/hashgen"
	"github.com/dcnet-server/dcnet/internal/protocol"
)

// MethodType is the composite type of an atomic field: an ordered parameter
// list forming a method signature.
type MethodType struct {
	base   *TypeDefinition
	params []Type
}

// NewMethodType returns an empty method signature.
func NewMethodType() *MethodType {
	return &MethodType{base: NewTypeDefinition(TMethod)}
}

func (t *MethodType) Kind() TypeKind         { return t.base.Kind() }
func (t *MethodType) Size() protocol.DgSize  { return t.base.Size() }
func (t *MethodType) IsVariableLength() bool { return t.base.IsVariableLength() }

// AddParameter appends a parameter type to the signature.
func (t *MethodType) AddParameter(param Type) {
	t.params = append(t.params, param)
}

// NumParameters returns the number of declared parameters.
func (t *MethodType) NumParameters() int {
	return len(t.params)
}

// Parameter returns the parameter type at a positional index.
func (t *MethodType) Parameter(index int) (Type, bool) {
	if index < 0 || index >= len(t.params) {
		return nil, false
	}
	return t.params[index], true
}

// GenerateHash folds the method tag, the parameter count and every parameter
// type in declaration order.
func (t *MethodType) GenerateHash(h *hashgen.Generator) {
	t.base.GenerateHash(h)
	h.AddInt(uint32(len(t.params)))
	for _, param := range t.params {
		param.GenerateHash(h)
	}
}

// StructType is a reference to a declared struct used as a field type.
type StructType struct {
	base   *TypeDefinition
	target *Struct
}

// NewStructType returns a type descriptor referencing target.
func NewStructType(target *Struct) *StructType {
	return &StructType{base: NewTypeDefinition(TStruct), target: target}
}

func (t *StructType) Kind() TypeKind         { return t.base.Kind() }
func (t *StructType) Size() protocol.DgSize  { return t.base.Size() }
func (t *StructType) IsVariableLength() bool { return t.base.IsVariableLength() }

// Target returns the referenced struct.
func (t *StructType) Target() *Struct {
	return t.target
}

// GenerateHash folds the struct tag and the referenced struct's name.
func (t *StructType) GenerateHash(h *hashgen.Generator) {
	t.base.GenerateHash(h)
	h.AddString(t.target.Name())
}
