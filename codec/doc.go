// Package codec converts between structured values and the packed
// binary layout computed by the layout package.
//
// Values are nested map[string]any records keyed by field name. Pack
// and Unpack are pure functions of (value, layout, byte order) and
// hold no state; they are safe to call concurrently against a shared
// layout.
//
// Pack is deliberately forgiving: missing fields encode as zero,
// undersized arrays are zero-padded, oversized arrays truncated, and
// bit-field values masked to their declared width. The output length
// always equals the struct's packed size. Unpack only fails when the
// input buffer is shorter than that size.
package codec
