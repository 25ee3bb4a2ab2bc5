// Package dc implements the distributed-class schema core: the lexer for DC
// source text, the compiled schema model (file, class, struct and field
// registries with their id spaces), the numeric type system with its
// divisor/modulus/range constraints, and the order-sensitive fingerprint
// computed over the whole schema.
//
// A File is built once during the compile phase and is read-mostly for the
// rest of the process lifetime. Cross-process compatibility is checked by
// exchanging File.Hash() fingerprints at connection time; a mismatch means
// the peers compiled different schemas and must not interoperate.
package dc
