// Package cstruct translates C struct declarations into packed memory
// layouts and converts between those layouts' binary form and nested
// key-value records.
//
// # Pipeline
//
//	source text -> parser -> declarations -> layout (resolve, compute)
//	            -> Registry -> codec (Pack / Unpack)
//
// The grammar is a restricted C subset: typedef struct blocks, named
// member types from the ctypes catalog or other declared structs,
// multi-dimensional arrays, and unsigned-integer bit-fields. Quoted
// #include directives are followed through a caller-supplied Source.
//
// # Packed layout
//
// Layouts carry no implicit alignment padding: every non-bit-field
// member starts exactly where the previous one ended, and a struct's
// size is the end of its last field. Multi-dimensional arrays flatten
// row-major to a single element sequence. Consecutive bit-fields share
// a storage unit sized to their base type, LSB-first.
//
// # Usage
//
//	reg, err := cstruct.BuildRegistry([]cstruct.NamedSource{{Name: "sensor.h", Text: src}})
//	...
//	raw, err := reg.Pack("DeviceStatus", map[string]any{"error_flags": 3})
//	val, err := reg.Unpack("DeviceStatus", raw)
//
// A Registry is immutable after build; Pack and Unpack are safe for
// concurrent use.
//
// # Errors
//
// Failures are structured errors from the errors package, categorized
// by phase (parse, resolve, layout, pack, unpack) and kind (syntax,
// unknown_type, circular_dependency, duplicate_declaration,
// invalid_bitfield, buffer_too_small, invalid_data). All failures are
// deterministic functions of the input; there is nothing to retry.
package cstruct
