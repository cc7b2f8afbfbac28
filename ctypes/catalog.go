package ctypes

import "sort"

// Primitive describes one entry of the type catalog.
type Primitive struct {
	Name string
	Size int
	Kind Kind
}

// Bits returns the width of the type in bits. For bit-fields this is
// the storage unit width of the declared base type.
func (p Primitive) Bits() int {
	return p.Size * 8
}

// catalog maps every recognized primitive type name to its size and
// numeric kind. The layout is packed, so size is all that matters;
// there is no per-type alignment. Widths for long, intptr_t and
// friends follow the reference implementation (ILP32 long, 64-bit
// pointers), not any particular host ABI.
var catalog = map[string]Primitive{
	// Legacy C families
	"char":               {"char", 1, Signed},
	"signed char":        {"signed char", 1, Signed},
	"unsigned char":      {"unsigned char", 1, Unsigned},
	"short":              {"short", 2, Signed},
	"unsigned short":     {"unsigned short", 2, Unsigned},
	"int":                {"int", 4, Signed},
	"unsigned int":       {"unsigned int", 4, Unsigned},
	"long":               {"long", 4, Signed},
	"unsigned long":      {"unsigned long", 4, Unsigned},
	"long long":          {"long long", 8, Signed},
	"unsigned long long": {"unsigned long long", 8, Unsigned},
	"float":              {"float", 4, Float},
	"double":             {"double", 8, Float},
	"long double":        {"long double", 8, Float},
	"bool":               {"bool", 1, Unsigned},
	"_Bool":              {"_Bool", 1, Unsigned},

	// stdint.h fixed-width types
	"int8_t":   {"int8_t", 1, Signed},
	"uint8_t":  {"uint8_t", 1, Unsigned},
	"int16_t":  {"int16_t", 2, Signed},
	"uint16_t": {"uint16_t", 2, Unsigned},
	"int32_t":  {"int32_t", 4, Signed},
	"uint32_t": {"uint32_t", 4, Unsigned},
	"int64_t":  {"int64_t", 8, Signed},
	"uint64_t": {"uint64_t", 8, Unsigned},

	// stdint.h minimum-width types
	"int_least8_t":   {"int_least8_t", 1, Signed},
	"uint_least8_t":  {"uint_least8_t", 1, Unsigned},
	"int_least16_t":  {"int_least16_t", 2, Signed},
	"uint_least16_t": {"uint_least16_t", 2, Unsigned},
	"int_least32_t":  {"int_least32_t", 4, Signed},
	"uint_least32_t": {"uint_least32_t", 4, Unsigned},
	"int_least64_t":  {"int_least64_t", 8, Signed},
	"uint_least64_t": {"uint_least64_t", 8, Unsigned},

	// stdint.h fast types
	"int_fast8_t":   {"int_fast8_t", 1, Signed},
	"uint_fast8_t":  {"uint_fast8_t", 1, Unsigned},
	"int_fast16_t":  {"int_fast16_t", 2, Signed},
	"uint_fast16_t": {"uint_fast16_t", 2, Unsigned},
	"int_fast32_t":  {"int_fast32_t", 4, Signed},
	"uint_fast32_t": {"uint_fast32_t", 4, Unsigned},
	"int_fast64_t":  {"int_fast64_t", 8, Signed},
	"uint_fast64_t": {"uint_fast64_t", 8, Unsigned},

	// stdint.h pointer and maximum-width types
	"intptr_t":  {"intptr_t", 8, Signed},
	"uintptr_t": {"uintptr_t", 8, Unsigned},
	"intmax_t":  {"intmax_t", 8, Signed},
	"uintmax_t": {"uintmax_t", 8, Unsigned},
}

// Lookup returns the catalog entry for a primitive type name.
func Lookup(name string) (Primitive, bool) {
	p, ok := catalog[name]
	return p, ok
}

// IsPrimitive reports whether name is a recognized primitive type.
func IsPrimitive(name string) bool {
	_, ok := catalog[name]
	return ok
}

// Names returns all recognized primitive type names, sorted.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
