package parser

import "github.com/structkit/cstruct/errors"

// FieldDecl is one member of a struct declaration, in source order.
type FieldDecl struct {
	Name      string
	TypeName  string // primitive name or struct name
	StructRef bool   // written with the struct keyword
	Dims      []int  // array dimensions, outermost first; nil if scalar
	BitWidth  int    // bit-field width; 0 if not a bit-field
	Line      int
}

// IsArray reports whether the field has at least one array dimension.
func (f *FieldDecl) IsArray() bool {
	return len(f.Dims) > 0
}

// FlatLen returns the flattened element count: the product of all
// declared dimensions, 1 for scalars.
func (f *FieldDecl) FlatLen() int {
	n := 1
	for _, d := range f.Dims {
		n *= d
	}
	return n
}

// Decl is an unresolved struct declaration.
type Decl struct {
	Name   string
	Unit   string // source unit the declaration came from
	Fields []*FieldDecl
}

// Set is a namespace of struct declarations, in first-seen order.
type Set struct {
	byName map[string]*Decl
	order  []*Decl
}

func NewSet() *Set {
	return &Set{byName: make(map[string]*Decl)}
}

// Add registers a declaration. Declaring the same struct name twice,
// in any unit, is an error.
func (s *Set) Add(d *Decl) error {
	if prev, ok := s.byName[d.Name]; ok {
		return errors.DuplicateDeclaration(d.Name, prev.Unit, d.Unit)
	}
	s.byName[d.Name] = d
	s.order = append(s.order, d)
	return nil
}

// Get returns the declaration for a struct name.
func (s *Set) Get(name string) (*Decl, bool) {
	d, ok := s.byName[name]
	return d, ok
}

// Decls returns all declarations in first-seen order.
func (s *Set) Decls() []*Decl {
	return s.order
}

// Len returns the number of declarations.
func (s *Set) Len() int {
	return len(s.order)
}
