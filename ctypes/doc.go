// Package ctypes is the static catalog of primitive C types.
//
// It maps every recognized type name, from the legacy char/int/long
// families through the stdint.h fixed-width, least, fast, pointer and
// maximum-width aliases, to a byte size and a numeric kind (signed
// integer, unsigned integer, or IEEE-754 float). The catalog is
// read-only after initialization and shared by all parse and layout
// operations.
package ctypes
