package dc

import "github.com/dcnet-server/dcnet/internal/dc/hashgen"

// FieldID is a field identifier, unique across the entire schema file.
type FieldID uint16

// Field is a named member of a class or struct: a type descriptor, a
// file-global id assigned at registration, and the declared access keywords.
type Field struct {
	name     string
	id       FieldID
	typ      Type
	keywords KeywordSet
}

// NewField returns a field with the given name and type descriptor. The id
// is assigned when the field is registered with a File.
func NewField(name string, typ Type) *Field {
	return &Field{name: name, typ: typ}
}

// Name returns the declared field name.
func (f *Field) Name() string {
	return f.name
}

// ID returns the file-global field id.
func (f *Field) ID() FieldID {
	return f.id
}

func (f *Field) setID(id FieldID) {
	f.id = id
}

// Type returns the field's type descriptor.
func (f *Field) Type() Type {
	return f.typ
}

// Keywords returns the declared access keyword set.
func (f *Field) Keywords() KeywordSet {
	return f.keywords
}

// AddKeyword declares an access keyword on the field.
func (f *Field) AddKeyword(kw Keyword) {
	f.keywords = f.keywords.Add(kw)
}

// GenerateHash folds the field's name, keyword set and type into the
// fingerprint.
func (f *Field) GenerateHash(h *hashgen.Generator) {
	h.AddString(f.name)
	h.AddInt(uint32(f.keywords))
	f.typ.GenerateHash(h)
}
