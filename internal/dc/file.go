package dc

import (
	"math"
	"sync"

	"github.com/dcnet-server/dcnet/internal/dc/hashgen"
)

// Import is an external-module import declaration. The core records it as
// opaque pass-through metadata and never interprets it.
type Import struct {
	Module  string
	Symbols []string
}

// FileOptions are the global schema-compatibility flags. Both are folded
// into the fingerprint so peers compiled with mismatched configurations are
// detected as a hash mismatch.
type FileOptions struct {
	VirtualInheritance    bool
	SortInheritanceByFile bool
}

// File is the compiled representation of one DC schema source file: the
// ordered class and struct registries, the import declarations, and the
// file-global field-id table. It is built once during the compile phase and
// read-only afterwards.
type File struct {
	opts FileOptions

	// mu guards the registries and cache flags. Mutation only happens during
	// the single-threaded compile phase; steady-state acquisitions are
	// uncontended.
	mu           sync.Mutex
	classes      []*Class
	classByName  map[string]*Class
	structs      []*Struct
	structByName map[string]*Struct
	imports      []Import
	keywords     []string
	fieldByID    []*Field

	allObjectValid       bool
	inheritedFieldsStale bool
}

// NewFile returns an empty schema file with the given compatibility flags.
func NewFile(opts FileOptions) *File {
	return &File{
		opts:           opts,
		classByName:    make(map[string]*Class),
		structByName:   make(map[string]*Struct),
		allObjectValid: true,
	}
}

// Options returns the file's compatibility flags.
func (f *File) Options() FileOptions {
	return f.opts
}

// markCachesStale flags the derived per-object validity and inherited-field
// caches for recomputation. Callers hold f.mu.
func (f *File) markCachesStale() {
	f.allObjectValid = false
	f.inheritedFieldsStale = true
}

// AllObjectValid reports whether the per-object validity cache is current.
func (f *File) AllObjectValid() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.allObjectValid
}

// InheritedFieldsStale reports whether inherited-field caches need
// recomputation after a mutation.
func (f *File) InheritedFieldsStale() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.inheritedFieldsStale
}

// AddImport records an external-module import declaration.
func (f *File) AddImport(imp Import) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.imports = append(f.imports, imp)
}

// NumImports returns the number of recorded import declarations.
func (f *File) NumImports() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.imports)
}

// Import returns the import declaration at a positional index.
func (f *File) Import(index int) (Import, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if index < 0 || index >= len(f.imports) {
		return Import{}, false
	}
	return f.imports[index], true
}

// DeclareKeyword records a `keyword name;` declaration.
func (f *File) DeclareKeyword(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.keywords = append(f.keywords, name)
}

// DeclaredKeywords returns the declared keyword names in declaration order.
func (f *File) DeclaredKeywords() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.keywords))
	copy(out, f.keywords)
	return out
}

// NextClassID returns the class id the next registered class will receive.
// Ids are assigned sequentially starting at 0 in declaration order; the call
// fails once the 16-bit id space is exhausted.
func (f *File) NextClassID() (ClassID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.nextClassIDLocked()
}

func (f *File) nextClassIDLocked() (ClassID, error) {
	if len(f.classes) >= math.MaxUint16 {
		return 0, ErrIDSpaceExhausted
	}
	return ClassID(len(f.classes)), nil
}

// AddClass registers a class, assigning its sequential id.
func (f *File) AddClass(c *Class) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	id, err := f.nextClassIDLocked()
	if err != nil {
		return err
	}
	c.setID(id)
	f.classes = append(f.classes, c)
	f.classByName[c.Name()] = c
	f.markCachesStale()
	return nil
}

// NumClasses returns the number of registered classes.
func (f *File) NumClasses() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.classes)
}

// Class returns the class at a positional index in declaration order.
func (f *File) Class(index int) (*Class, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if index < 0 || index >= len(f.classes) {
		return nil, false
	}
	return f.classes[index], true
}

// ClassByID returns the class with the given id. Ids are positional, so the
// id doubles as the declaration index.
func (f *File) ClassByID(id ClassID) (*Class, bool) {
	return f.Class(int(id))
}

// ClassByName returns the class with the given name.
func (f *File) ClassByName(name string) (*Class, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.classByName[name]
	return c, ok
}

// AddStruct registers a struct.
func (f *File) AddStruct(s *Struct) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.structs = append(f.structs, s)
	f.structByName[s.Name()] = s
	f.markCachesStale()
}

// NumStructs returns the number of registered structs.
func (f *File) NumStructs() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.structs)
}

// Struct returns the struct at a positional index in declaration order.
func (f *File) Struct(index int) (*Struct, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if index < 0 || index >= len(f.structs) {
		return nil, false
	}
	return f.structs[index], true
}

// StructByName returns the struct with the given name.
func (f *File) StructByName(name string) (*Struct, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.structByName[name]
	return s, ok
}

// fieldOwner is anything a field can be declared on.
type fieldOwner interface {
	addField(*Field)
}

// AddField assigns the next unused file-global field id, registers the field
// in the id table and appends it to the owner's field list. The id space is
// shared by every class and struct in the file; the call fails once the
// 16-bit space is exhausted.
func (f *File) AddField(owner fieldOwner, field *Field) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.fieldByID) >= math.MaxUint16 {
		return ErrIDSpaceExhausted
	}
	field.setID(FieldID(len(f.fieldByID)))
	f.fieldByID = append(f.fieldByID, field)
	owner.addField(field)
	f.markCachesStale()
	return nil
}

// FieldByID returns the field with the given file-global id.
func (f *File) FieldByID(id FieldID) (*Field, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if int(id) >= len(f.fieldByID) {
		return nil, false
	}
	return f.fieldByID[id], true
}

// NumFields returns the number of fields registered across the whole file.
func (f *File) NumFields() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.fieldByID)
}

// Hash computes the file's 32-bit fingerprint. The result is consistent as
// long as the file's contents have not changed, and very likely different if
// they have. Peers exchange it at connection time; a mismatch is a fatal
// incompatibility.
func (f *File) Hash() uint32 {
	h := hashgen.New()
	f.GenerateHash(h)
	return h.Hash()
}

// GenerateHash accumulates the elements of the file into the fingerprint:
// the compatibility flags first, then the class count, then every class in
// declaration order.
func (f *File) GenerateHash(h *hashgen.Generator) {
	f.mu.Lock()
	if f.opts.VirtualInheritance {
		// distinguishes the two inheritance-sorting configurations so files
		// with identical content but different flags hash differently
		if f.opts.SortInheritanceByFile {
			h.AddInt(1)
		} else {
			h.AddInt(2)
		}
	}
	classes := make([]*Class, len(f.classes))
	copy(classes, f.classes)
	f.mu.Unlock()

	h.AddInt(uint32(len(classes)))
	for _, c := range classes {
		c.GenerateHash(h)
	}
}
