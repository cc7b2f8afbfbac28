package codec

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"strconv"

	"github.com/structkit/cstruct/ctypes"
	"github.com/structkit/cstruct/errors"
	"github.com/structkit/cstruct/layout"
)

// Pack encodes a nested value against a struct layout. Missing keys
// encode as zero, short arrays are zero-padded, long arrays truncated
// to the flattened length, and bit-field values are masked to their
// declared width. The result is always exactly st.Size bytes.
func Pack(v map[string]any, st *layout.Struct, order binary.ByteOrder) ([]byte, error) {
	buf := make([]byte, st.Size)
	if err := packInto(buf, v, st, order, nil); err != nil {
		return nil, err
	}
	return buf, nil
}

func packInto(buf []byte, v map[string]any, st *layout.Struct, order binary.ByteOrder, path []string) error {
	for i := range st.Fields {
		f := &st.Fields[i]
		val, ok := v[f.Name]
		if !ok || val == nil {
			continue // zero default, buffer is already zeroed
		}

		fieldPath := append(append([]string(nil), path...), f.Name)

		if f.IsBitField() {
			if err := packBitField(buf, val, f, order, fieldPath); err != nil {
				return err
			}
			continue
		}

		if f.Sub != nil {
			if err := packStructField(buf, val, f, order, fieldPath); err != nil {
				return err
			}
			continue
		}

		if err := packPrimField(buf, val, f, order, fieldPath); err != nil {
			return err
		}
	}
	return nil
}

func packBitField(buf []byte, val any, f *layout.Field, order binary.ByteOrder, path []string) error {
	n, ok := coerceToUint64(val)
	if !ok {
		return errors.InvalidData(errors.PhasePack, path,
			fmt.Sprintf("bit-field expects an integer value, got %T", val))
	}
	unit := buf[f.Offset : f.Offset+f.ElemSize]
	cur := getUint(unit, f.ElemSize, order)
	cur |= (n & mask(f.BitWidth)) << uint(f.BitOffset)
	putUint(unit, f.ElemSize, cur, order)
	return nil
}

func packStructField(buf []byte, val any, f *layout.Field, order binary.ByteOrder, path []string) error {
	if !f.IsArray() {
		m, ok := val.(map[string]any)
		if !ok {
			return errors.InvalidData(errors.PhasePack, path,
				fmt.Sprintf("nested struct %s expects a map value, got %T", f.TypeName, val))
		}
		return packInto(buf[f.Offset:f.Offset+f.Sub.Size], m, f.Sub, order, path)
	}

	elems, err := sequenceOf(val, path)
	if err != nil {
		return err
	}
	for i := 0; i < f.Count && i < len(elems); i++ {
		if elems[i] == nil {
			continue
		}
		m, ok := elems[i].(map[string]any)
		if !ok {
			return errors.InvalidData(errors.PhasePack, append(path, "["+strconv.Itoa(i)+"]"),
				fmt.Sprintf("nested struct %s expects a map value, got %T", f.TypeName, elems[i]))
		}
		off := f.Offset + i*f.ElemSize
		if err := packInto(buf[off:off+f.Sub.Size], m, f.Sub, order, append(path, "["+strconv.Itoa(i)+"]")); err != nil {
			return err
		}
	}
	return nil
}

func packPrimField(buf []byte, val any, f *layout.Field, order binary.ByteOrder, path []string) error {
	if !f.IsArray() {
		return packScalar(buf[f.Offset:f.Offset+f.ElemSize], val, f.Prim, order, path)
	}

	elems, err := sequenceOf(val, path)
	if err != nil {
		return err
	}
	// Extra trailing elements are ignored, missing ones stay zero.
	for i := 0; i < f.Count && i < len(elems); i++ {
		if elems[i] == nil {
			continue
		}
		off := f.Offset + i*f.ElemSize
		if err := packScalar(buf[off:off+f.ElemSize], elems[i], f.Prim, order, append(path, "["+strconv.Itoa(i)+"]")); err != nil {
			return err
		}
	}
	return nil
}

func packScalar(dst []byte, val any, prim ctypes.Primitive, order binary.ByteOrder, path []string) error {
	switch prim.Kind {
	case ctypes.Float:
		fv, ok := coerceToFloat64(val)
		if !ok {
			return errors.InvalidData(errors.PhasePack, path,
				fmt.Sprintf("%s expects a numeric value, got %T", prim.Name, val))
		}
		putUint(dst, prim.Size, floatBits(fv, prim.Size), order)

	case ctypes.Signed:
		iv, ok := coerceToInt64(val)
		if !ok {
			return errors.InvalidData(errors.PhasePack, path,
				fmt.Sprintf("%s expects an integer value, got %T", prim.Name, val))
		}
		putUint(dst, prim.Size, uint64(iv), order)

	default:
		uv, ok := coerceToUint64(val)
		if !ok {
			return errors.InvalidData(errors.PhasePack, path,
				fmt.Sprintf("%s expects an integer value, got %T", prim.Name, val))
		}
		putUint(dst, prim.Size, uv, order)
	}
	return nil
}

// sequenceOf normalizes an array field's supplied value to []any.
// Any slice or array element type is accepted, so callers may pass
// []float64 or []int as naturally as []any.
func sequenceOf(val any, path []string) ([]any, error) {
	if s, ok := val.([]any); ok {
		return s, nil
	}
	rv := reflect.ValueOf(val)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, errors.InvalidData(errors.PhasePack, path,
			fmt.Sprintf("array field expects a sequence value, got %T", val))
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, nil
}
