// Package hashgen accumulates schema elements into a 32-bit fingerprint.
//
// The accumulator is deterministic and order-sensitive: identical input
// sequences always produce identical hashes, and any reordering or content
// change is very likely to change the result. Values are folded by their
// logical little-endian byte representation, never by host memory layout,
// so the fingerprint is independent of host endianness.
package hashgen

const (
	offsetBasis uint32 = 2166136261
	prime       uint32 = 16777619
)

// Generator is an incremental 32-bit FNV-1a style accumulator.
type Generator struct {
	hash uint32
}

// New returns a generator seeded with the FNV offset basis.
func New() *Generator {
	return &Generator{hash: offsetBasis}
}

// AddInt folds a 32-bit integer into the hash, low byte first.
func (g *Generator) AddInt(v uint32) {
	for i := 0; i < 4; i++ {
		g.hash ^= uint32(byte(v >> (8 * i)))
		g.hash *= prime
	}
}

// AddString folds a string's length and bytes into the hash.
func (g *Generator) AddString(s string) {
	g.AddInt(uint32(len(s)))
	for i := 0; i < len(s); i++ {
		g.hash ^= uint32(s[i])
		g.hash *= prime
	}
}

// Hash returns the accumulated 32-bit fingerprint.
func (g *Generator) Hash() uint32 {
	return g.hash
}
