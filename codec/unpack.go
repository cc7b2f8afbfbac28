package codec

import (
	"encoding/binary"

	"github.com/structkit/cstruct/ctypes"
	"github.com/structkit/cstruct/errors"
	"github.com/structkit/cstruct/layout"
)

// Unpack decodes a byte buffer against a struct layout. The buffer
// must be at least st.Size bytes; trailing bytes are ignored. Signed
// integers decode to int64, unsigned integers and bit-fields to
// uint64, floats to float32 or float64 matching the stored width.
// Array fields decode to a flat []any of the flattened length, nested
// structs to nested maps.
func Unpack(data []byte, st *layout.Struct, order binary.ByteOrder) (map[string]any, error) {
	if len(data) < st.Size {
		return nil, errors.BufferTooSmall(st.Name, len(data), st.Size)
	}
	return unpackFrom(data[:st.Size], st, order), nil
}

func unpackFrom(buf []byte, st *layout.Struct, order binary.ByteOrder) map[string]any {
	out := make(map[string]any, len(st.Fields))

	for i := range st.Fields {
		f := &st.Fields[i]

		if f.IsBitField() {
			unit := getUint(buf[f.Offset:f.Offset+f.ElemSize], f.ElemSize, order)
			out[f.Name] = (unit >> uint(f.BitOffset)) & mask(f.BitWidth)
			continue
		}

		if f.Sub != nil {
			if !f.IsArray() {
				out[f.Name] = unpackFrom(buf[f.Offset:f.Offset+f.Sub.Size], f.Sub, order)
				continue
			}
			elems := make([]any, f.Count)
			for j := 0; j < f.Count; j++ {
				off := f.Offset + j*f.ElemSize
				elems[j] = unpackFrom(buf[off:off+f.Sub.Size], f.Sub, order)
			}
			out[f.Name] = elems
			continue
		}

		if !f.IsArray() {
			out[f.Name] = unpackScalar(buf[f.Offset:f.Offset+f.ElemSize], f.Prim, order)
			continue
		}
		elems := make([]any, f.Count)
		for j := 0; j < f.Count; j++ {
			off := f.Offset + j*f.ElemSize
			elems[j] = unpackScalar(buf[off:off+f.ElemSize], f.Prim, order)
		}
		out[f.Name] = elems
	}

	return out
}

func unpackScalar(src []byte, prim ctypes.Primitive, order binary.ByteOrder) any {
	bits := getUint(src, prim.Size, order)
	switch prim.Kind {
	case ctypes.Float:
		return bitsToFloat(bits, prim.Size)
	case ctypes.Signed:
		return signExtend(bits, prim.Size)
	default:
		return bits
	}
}
