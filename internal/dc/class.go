package dc

import (
	"sync"

	"github.com/dcnet-server/dcnet/internal/dc/hashgen"
)

// ClassID is a class identifier, assigned sequentially in declaration order.
type ClassID uint16

// Class is a named, network-visible entity owning an ordered list of fields.
// Each class carries its own lock, held only for the duration of a single
// read or its own hash contribution; after the compile phase classes are
// read-mostly and queried from many goroutines.
type Class struct {
	mu      sync.Mutex
	name    string
	id      ClassID
	parents []*Class
	fields  []*Field
}

// NewClass returns a class with the given name. The id is assigned when the
// class is registered with a File.
func NewClass(name string) *Class {
	return &Class{name: name}
}

// Name returns the declared class name.
func (c *Class) Name() string {
	return c.name
}

// ID returns the class id assigned at registration.
func (c *Class) ID() ClassID {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.id
}

func (c *Class) setID(id ClassID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.id = id
}

// AddParent declares inheritance from another class.
func (c *Class) AddParent(parent *Class) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.parents = append(c.parents, parent)
}

// Parents returns the declared parent classes in declaration order.
func (c *Class) Parents() []*Class {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*Class, len(c.parents))
	copy(out, c.parents)
	return out
}

func (c *Class) addField(f *Field) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fields = append(c.fields, f)
}

// NumFields returns the number of fields declared directly on the class.
func (c *Class) NumFields() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.fields)
}

// Field returns the field at a positional index in declaration order.
func (c *Class) Field(index int) (*Field, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if index < 0 || index >= len(c.fields) {
		return nil, false
	}
	return c.fields[index], true
}

// FieldByName returns the directly declared field with the given name.
func (c *Class) FieldByName(name string) (*Field, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, f := range c.fields {
		if f.name == name {
			return f, true
		}
	}
	return nil, false
}

// GenerateHash folds the class name and its fields, in declaration order,
// into the fingerprint.
func (c *Class) GenerateHash(h *hashgen.Generator) {
	c.mu.Lock()
	defer c.mu.Unlock()
	h.AddString(c.name)
	h.AddInt(uint32(len(c.fields)))
	for _, f := range c.fields {
		f.GenerateHash(h)
	}
}
