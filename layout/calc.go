package layout

import (
	"github.com/structkit/cstruct/ctypes"
	"github.com/structkit/cstruct/errors"
	"github.com/structkit/cstruct/parser"
)

// Field is one resolved struct member with its computed placement.
type Field struct {
	Name     string
	TypeName string
	Prim     ctypes.Primitive // zero value when Sub != nil
	Sub      *Struct          // nil for primitive fields
	Dims     []int

	Offset   int // byte offset from struct start
	Count    int // flattened element count, 1 for scalars
	ElemSize int // bytes per element (storage unit size for bit-fields)

	BitWidth  int // 0 when not a bit-field
	BitOffset int // LSB-first offset within the storage unit
}

// IsBitField reports whether the field packs into a shared storage unit.
func (f *Field) IsBitField() bool {
	return f.BitWidth > 0
}

// IsArray reports whether the field was declared with array dimensions.
func (f *Field) IsArray() bool {
	return len(f.Dims) > 0
}

// Size returns the total byte span of the field. Bit-fields report
// their storage unit size; consecutive bit-fields in one unit share
// the same offset and size.
func (f *Field) Size() int {
	return f.Count * f.ElemSize
}

// End returns the last byte offset occupied by the field.
func (f *Field) End() int {
	return f.Offset + f.Size() - 1
}

// Struct is the computed packed layout of one declared struct.
// Immutable after Compute; safe for concurrent reads.
type Struct struct {
	Name   string
	Fields []Field
	Size   int
}

// Compute lays out declarations that are already in resolution order
// (see Resolve). Layouts are computed once per struct name; structs
// referencing an already laid out struct reuse its layout.
//
// The layout is packed: a non-bit-field member starts exactly where
// the previous member ended, with no alignment padding anywhere.
// Consecutive bit-fields share a storage unit sized to their declared
// base type, filled LSB-first; a width that would overflow the unit,
// a base type of a different width, or any non-bit-field member
// closes the unit.
func Compute(ordered []*parser.Decl) (map[string]*Struct, error) {
	layouts := make(map[string]*Struct, len(ordered))
	for _, d := range ordered {
		st, err := computeOne(d, layouts)
		if err != nil {
			return nil, err
		}
		layouts[d.Name] = st
	}
	return layouts, nil
}

func computeOne(d *parser.Decl, layouts map[string]*Struct) (*Struct, error) {
	st := &Struct{Name: d.Name, Fields: make([]Field, 0, len(d.Fields))}

	cursor := 0
	unitOpen := false
	unitStart := 0
	unitSize := 0
	bitsUsed := 0

	for _, fd := range d.Fields {
		if fd.BitWidth > 0 {
			prim, ok := ctypes.Lookup(fd.TypeName)
			if !ok {
				return nil, errors.UnknownType(errors.PhaseLayout, []string{d.Name, fd.Name}, fd.TypeName)
			}
			if unitOpen && (prim.Size != unitSize || bitsUsed+fd.BitWidth > unitSize*8) {
				unitOpen = false
			}
			if !unitOpen {
				unitStart = cursor
				unitSize = prim.Size
				bitsUsed = 0
				cursor += unitSize
				unitOpen = true
			}
			st.Fields = append(st.Fields, Field{
				Name:      fd.Name,
				TypeName:  fd.TypeName,
				Prim:      prim,
				Offset:    unitStart,
				Count:     1,
				ElemSize:  unitSize,
				BitWidth:  fd.BitWidth,
				BitOffset: bitsUsed,
			})
			bitsUsed += fd.BitWidth
			continue
		}

		unitOpen = false

		f := Field{
			Name:     fd.Name,
			TypeName: fd.TypeName,
			Dims:     fd.Dims,
			Offset:   cursor,
			Count:    fd.FlatLen(),
		}

		if isStructField(fd) {
			sub, ok := layouts[fd.TypeName]
			if !ok {
				return nil, errors.UnknownType(errors.PhaseLayout, []string{d.Name, fd.Name}, fd.TypeName)
			}
			f.Sub = sub
			f.ElemSize = sub.Size
		} else {
			prim, ok := ctypes.Lookup(fd.TypeName)
			if !ok {
				return nil, errors.UnknownType(errors.PhaseLayout, []string{d.Name, fd.Name}, fd.TypeName)
			}
			f.Prim = prim
			f.ElemSize = prim.Size
		}

		cursor += f.Size()
		st.Fields = append(st.Fields, f)
	}

	st.Size = cursor
	return st, nil
}
