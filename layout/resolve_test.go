package layout

import (
	stderrors "errors"
	"testing"

	"github.com/structkit/cstruct/errors"
	"github.com/structkit/cstruct/parser"
)

func parseSet(t *testing.T, src string) *parser.Set {
	t.Helper()
	set, err := parser.ParseSources([]parser.NamedSource{{Name: "test.h", Text: src}})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return set
}

func TestResolveOrder(t *testing.T) {
	// C declares inner before outer.
	set := parseSet(t, `
		typedef struct { int8_t x; int8_t y; int8_t z; } Vector3D;
		typedef struct { Vector3D position; Vector3D velocity; } ObjectState;
		typedef struct { ObjectState state; uint32_t tick; } Frame;
	`)

	ordered, err := Resolve(set)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	pos := make(map[string]int, len(ordered))
	for i, d := range ordered {
		pos[d.Name] = i
	}
	if pos["Vector3D"] > pos["ObjectState"] {
		t.Error("Vector3D must resolve before ObjectState")
	}
	if pos["ObjectState"] > pos["Frame"] {
		t.Error("ObjectState must resolve before Frame")
	}
}

func TestResolveForwardReference(t *testing.T) {
	// Dependency declared after its user still resolves.
	set := parseSet(t, `
		typedef struct { Inner inner; } Outer;
		typedef struct { int32_t v; } Inner;
	`)

	ordered, err := Resolve(set)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if ordered[0].Name != "Inner" {
		t.Errorf("first: got %s, want Inner", ordered[0].Name)
	}
}

func TestResolveUnknownType(t *testing.T) {
	set := parseSet(t, `
		typedef struct { Missing m; } Outer;
	`)

	_, err := Resolve(set)
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseResolve, Kind: errors.KindUnknownType}) {
		t.Fatalf("expected unknown_type, got %v", err)
	}
}

func TestResolveCycle(t *testing.T) {
	set := parseSet(t, `
		typedef struct { B b; } A;
		typedef struct { A a; } B;
	`)

	_, err := Resolve(set)
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseResolve, Kind: errors.KindCircularDep}) {
		t.Fatalf("expected circular_dependency, got %v", err)
	}
	var e *errors.Error
	if stderrors.As(err, &e) {
		if e.Detail == "" {
			t.Error("cycle error should name participants")
		}
	}
}

func TestResolveSelfReference(t *testing.T) {
	set := parseSet(t, `
		typedef struct { Node next; } Node;
	`)

	_, err := Resolve(set)
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseResolve, Kind: errors.KindCircularDep}) {
		t.Fatalf("expected circular_dependency, got %v", err)
	}
}
