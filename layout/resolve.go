package layout

import (
	"github.com/structkit/cstruct/ctypes"
	"github.com/structkit/cstruct/errors"
	"github.com/structkit/cstruct/parser"
)

// isStructField reports whether a field references a struct type
// rather than a catalog primitive.
func isStructField(f *parser.FieldDecl) bool {
	return f.StructRef || !ctypes.IsPrimitive(f.TypeName)
}

const (
	nodeVisiting = 1
	nodeDone     = 2
)

type resolver struct {
	set   *parser.Set
	state map[string]int
	stack []string
	order []*parser.Decl
}

// Resolve orders declarations so every struct appears after all struct
// types its fields reference. A reference to an undeclared name is an
// unknown type error, a reference cycle is a circular dependency error
// naming the participants.
func Resolve(set *parser.Set) ([]*parser.Decl, error) {
	r := &resolver{
		set:   set,
		state: make(map[string]int),
		order: make([]*parser.Decl, 0, set.Len()),
	}
	for _, d := range set.Decls() {
		if err := r.visit(d); err != nil {
			return nil, err
		}
	}
	return r.order, nil
}

func (r *resolver) visit(d *parser.Decl) error {
	switch r.state[d.Name] {
	case nodeDone:
		return nil
	case nodeVisiting:
		return errors.CircularDependency(errors.PhaseResolve, append(r.cycleFrom(d.Name), d.Name))
	}

	r.state[d.Name] = nodeVisiting
	r.stack = append(r.stack, d.Name)

	for _, f := range d.Fields {
		if !isStructField(f) {
			continue
		}
		dep, ok := r.set.Get(f.TypeName)
		if !ok {
			return errors.UnknownType(errors.PhaseResolve, []string{d.Name, f.Name}, f.TypeName)
		}
		if err := r.visit(dep); err != nil {
			return err
		}
	}

	r.stack = r.stack[:len(r.stack)-1]
	r.state[d.Name] = nodeDone
	r.order = append(r.order, d)
	return nil
}

func (r *resolver) cycleFrom(name string) []string {
	for i, n := range r.stack {
		if n == name {
			return append([]string(nil), r.stack[i:]...)
		}
	}
	return append([]string(nil), r.stack...)
}
