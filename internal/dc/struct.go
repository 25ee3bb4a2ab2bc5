package dc

import (
	"sync"

	"github.com/dcnet-server/dcnet/internal/dc/hashgen"
)

// Struct is a named, non-polymorphic field grouping. Unlike a Class it has
// no network identity and its fields carry no access keywords; it is used as
// a field type, not a network entity.
type Struct struct {
	mu     sync.Mutex
	name   string
	fields []*Field
}

// NewStruct returns a struct with the given name.
func NewStruct(name string) *Struct {
	return &Struct{name: name}
}

// Name returns the declared struct name.
func (s *Struct) Name() string {
	return s.name
}

func (s *Struct) addField(f *Field) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fields = append(s.fields, f)
}

// NumFields returns the number of declared fields.
func (s *Struct) NumFields() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.fields)
}

// Field returns the field at a positional index in declaration order.
func (s *Struct) Field(index int) (*Field, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.fields) {
		return nil, false
	}
	return s.fields[index], true
}

// GenerateHash folds the struct name and its fields, in declaration order,
// into the fingerprint.
func (s *Struct) GenerateHash(h *hashgen.Generator) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h.AddString(s.name)
	h.AddInt(uint32(len(s.fields)))
	for _, f := range s.fields {
		f.GenerateHash(h)
	}
}
