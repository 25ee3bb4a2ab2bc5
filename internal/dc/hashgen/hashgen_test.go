package hashgen

import "testing"

func TestHashDeterministic(t *testing.T) {
	a := New()
	b := New()
	for _, gen := range []*Generator{a, b} {
		gen.AddInt(42)
		gen.AddString("dclass")
		gen.AddInt(7)
	}
	if a.Hash() != b.Hash() {
		t.Fatalf("same inputs hashed differently: %#x vs %#x", a.Hash(), b.Hash())
	}
}

func TestHashOrderSensitive(t *testing.T) {
	a := New()
	a.AddInt(1)
	a.AddInt(2)

	b := New()
	b.AddInt(2)
	b.AddInt(1)

	if a.Hash() == b.Hash() {
		t.Fatalf("reordered inputs produced the same hash %#x", a.Hash())
	}
}

func TestHashStringFoldsLength(t *testing.T) {
	empty := New()
	empty.AddString("")

	one := New()
	one.AddString("a")

	if empty.Hash() == one.Hash() {
		t.Fatalf("length not folded into string hash")
	}
	if empty.Hash() == New().Hash() {
		t.Fatalf("empty string hashed as no input")
	}
}
