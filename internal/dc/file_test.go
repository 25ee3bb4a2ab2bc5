package dc

import (
	"errors"
	"math"
	"testing"
)

func TestClassIDsAssignedSequentially(t *testing.T) {
	f := NewFile(FileOptions{})

	id, err := f.NextClassID()
	if err != nil || id != 0 {
		t.Fatalf("first id: got=%d err=%v", id, err)
	}

	names := []string{"DistributedObject", "DistributedAvatar", "DistributedPlayer"}
	for _, name := range names {
		if err := f.AddClass(NewClass(name)); err != nil {
			t.Fatalf("add %s: %v", name, err)
		}
	}
	if f.NumClasses() != 3 {
		t.Fatalf("class count: got=%d want=3", f.NumClasses())
	}
	for i, name := range names {
		byIndex, ok := f.Class(i)
		if !ok || byIndex.Name() != name {
			t.Fatalf("class at index %d: got=%v ok=%v", i, byIndex, ok)
		}
		if byIndex.ID() != ClassID(i) {
			t.Fatalf("class %s id: got=%d want=%d", name, byIndex.ID(), i)
		}
		byID, ok := f.ClassByID(ClassID(i))
		if !ok || byID != byIndex {
			t.Fatalf("lookup by id %d disagrees with index lookup", i)
		}
		byName, ok := f.ClassByName(name)
		if !ok || byName != byIndex {
			t.Fatalf("lookup by name %q disagrees with index lookup", name)
		}
	}
}

func TestFieldIDsGlobalAcrossClasses(t *testing.T) {
	f := NewFile(FileOptions{})
	a := NewClass("A")
	b := NewClass("B")
	for _, c := range []*Class{a, b} {
		if err := f.AddClass(c); err != nil {
			t.Fatalf("add class: %v", err)
		}
	}

	fa := NewField("setX", NewTypeDefinition(TUInt32))
	if err := f.AddField(a, fa); err != nil {
		t.Fatalf("add field: %v", err)
	}
	fb := NewField("setY", NewTypeDefinition(TUInt32))
	if err := f.AddField(b, fb); err != nil {
		t.Fatalf("add field: %v", err)
	}

	if fa.ID() != 0 || fb.ID() != 1 {
		t.Fatalf("field ids: got=%d,%d want=0,1", fa.ID(), fb.ID())
	}
	if f.NumFields() != 2 {
		t.Fatalf("file field count: got=%d want=2", f.NumFields())
	}
	got, ok := f.FieldByID(1)
	if !ok || got != fb {
		t.Fatalf("lookup by id 1: got=%v ok=%v", got, ok)
	}
	if a.NumFields() != 1 || b.NumFields() != 1 {
		t.Fatalf("per-class field counts: a=%d b=%d", a.NumFields(), b.NumFields())
	}
}

func TestFieldIDSpaceExhaustion(t *testing.T) {
	f := NewFile(FileOptions{})
	c := NewClass("Huge")
	if err := f.AddClass(c); err != nil {
		t.Fatalf("add class: %v", err)
	}
	typ := NewTypeDefinition(TUInt8)
	for i := 0; i < math.MaxUint16; i++ {
		if err := f.AddField(c, NewField("f", typ)); err != nil {
			t.Fatalf("add field %d: %v", i, err)
		}
	}
	err := f.AddField(c, NewField("overflow", typ))
	if !errors.Is(err, ErrIDSpaceExhausted) {
		t.Fatalf("expected ErrIDSpaceExhausted, got %v", err)
	}
}

func TestCacheFlagsTrackMutation(t *testing.T) {
	f := NewFile(FileOptions{})
	if !f.AllObjectValid() || f.InheritedFieldsStale() {
		t.Fatalf("fresh file: valid=%v stale=%v", f.AllObjectValid(), f.InheritedFieldsStale())
	}
	if err := f.AddClass(NewClass("A")); err != nil {
		t.Fatalf("add class: %v", err)
	}
	if f.AllObjectValid() || !f.InheritedFieldsStale() {
		t.Fatalf("after mutation: valid=%v stale=%v", f.AllObjectValid(), f.InheritedFieldsStale())
	}
}

func TestHashDeterministicAndContentSensitive(t *testing.T) {
	build := func() *File {
		f := NewFile(FileOptions{})
		c := NewClass("DistributedAvatar")
		if err := f.AddClass(c); err != nil {
			t.Fatalf("add class: %v", err)
		}
		field := NewField("setName", NewTypeDefinition(TVarString))
		field.AddKeyword(KeywordRequired)
		field.AddKeyword(KeywordBroadcast)
		if err := f.AddField(c, field); err != nil {
			t.Fatalf("add field: %v", err)
		}
		return f
	}

	a := build()
	b := build()
	if a.Hash() != b.Hash() {
		t.Fatalf("identical files hashed differently: %#x vs %#x", a.Hash(), b.Hash())
	}

	c, _ := b.Class(0)
	if err := b.AddField(c, NewField("setHp", NewTypeDefinition(TUInt16))); err != nil {
		t.Fatalf("add field: %v", err)
	}
	if a.Hash() == b.Hash() {
		t.Fatalf("added field did not change the hash")
	}
}

func TestHashFoldsCompatibilityFlags(t *testing.T) {
	build := func(opts FileOptions) *File {
		f := NewFile(opts)
		if err := f.AddClass(NewClass("A")); err != nil {
			t.Fatalf("add class: %v", err)
		}
		return f
	}

	plain := build(FileOptions{})
	virtual := build(FileOptions{VirtualInheritance: true})
	virtualSorted := build(FileOptions{VirtualInheritance: true, SortInheritanceByFile: true})

	if plain.Hash() == virtual.Hash() {
		t.Fatalf("virtual inheritance flag not folded into the hash")
	}
	if virtual.Hash() == virtualSorted.Hash() {
		t.Fatalf("sort-by-file flag not folded into the hash")
	}
}

func TestImportsRecordedInOrder(t *testing.T) {
	f := NewFile(FileOptions{})
	f.AddImport(Import{Module: "game", Symbols: []string{"Avatar", "AvatarAI"}})
	f.AddImport(Import{Module: "chat", Symbols: []string{"ChatManager"}})

	if f.NumImports() != 2 {
		t.Fatalf("import count: got=%d want=2", f.NumImports())
	}
	imp, ok := f.Import(0)
	if !ok || imp.Module != "game" || len(imp.Symbols) != 2 {
		t.Fatalf("first import: got=%+v ok=%v", imp, ok)
	}
	if _, ok := f.Import(2); ok {
		t.Fatalf("out-of-range import lookup succeeded")
	}
}
