// Package layout turns parsed struct declarations into concrete packed
// byte layouts.
//
// Resolution happens in two passes. Resolve builds the struct reference
// graph and produces a topological order, rejecting unknown type names
// and reference cycles. Compute then walks each declaration in that
// order with a running byte cursor, assigning every field its offset,
// flattened element count and element size, and every struct its total
// packed size.
//
// The layout deliberately ignores native compiler alignment: there is
// never implicit padding between or after fields. Bit-fields pack
// LSB-first into storage units sized to their declared base type; this
// ordering is a fixed convention of the format, not an emulation of
// any particular compiler ABI.
package layout
